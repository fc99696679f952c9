package fetcher

import (
	"context"
	"fmt"
	"strings"

	"ewintr.nl/vidsum/model"
	"golang.org/x/exp/slog"
)

// Acquirer turns a video id into flattened transcript text. It first asks
// the source for the caller's preferred languages and, when that fails for
// any reason, falls back to every transcript the source advertises, in
// listed order, taking the first one that fetches.
type Acquirer struct {
	source TranscriptSource
	logger *slog.Logger
}

func NewAcquirer(source TranscriptSource, logger *slog.Logger) *Acquirer {
	return &Acquirer{
		source: source,
		logger: logger,
	}
}

func (a *Acquirer) Acquire(ctx context.Context, id model.YoutubeVideoID, languages []string) (string, error) {
	segments, err := a.source.Fetch(ctx, id, languages)
	if err != nil {
		a.logger.Info("preferred languages not available, trying any listed transcript",
			slog.String("id", string(id)), slog.String("reason", err.Error()))
		segments, err = a.fetchAnyListed(ctx, id)
		if err != nil {
			return "", err
		}
	}

	text := Flatten(segments)
	if text == "" {
		return "", fmt.Errorf("%w: transcript for video %s is empty", ErrNoTranscript, id)
	}

	return text, nil
}

// fetchAnyListed is a best effort fallback. It does not judge language
// suitability, a candidate that fails to fetch is skipped, not fatal.
func (a *Acquirer) fetchAnyListed(ctx context.Context, id model.YoutubeVideoID) ([]Segment, error) {
	transcripts, err := a.source.List(ctx, id)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &ProviderError{Err: ctx.Err()}
		}
		return nil, fmt.Errorf("%w: listing transcripts: %v", ErrNoTranscript, err)
	}

	for _, transcript := range transcripts {
		segments, err := transcript.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil, &ProviderError{Err: ctx.Err()}
			}
			a.logger.Info("listed transcript failed to fetch, skipping",
				slog.String("id", string(id)), slog.String("language", transcript.Language()),
				slog.String("reason", err.Error()))
			continue
		}
		a.logger.Info("found transcript",
			slog.String("id", string(id)), slog.String("language", transcript.Language()),
			slog.Bool("generated", transcript.Generated()))
		return segments, nil
	}

	return nil, fmt.Errorf("%w for video %s", ErrNoTranscript, id)
}

// Flatten joins segment texts in original order with single spaces and
// trims surrounding whitespace.
func Flatten(segments []Segment) string {
	var sb strings.Builder
	for _, segment := range segments {
		if segment.Text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(segment.Text)
	}

	return strings.TrimSpace(sb.String())
}
