package summarize

import (
	"context"

	"ewintr.nl/vidsum/fetcher"
	"ewintr.nl/vidsum/model"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// Pipeline chains resolve, acquire and generate. Each stage short-circuits
// on a typed failure, nothing is cached between requests.
type Pipeline struct {
	acquirer  *fetcher.Acquirer
	generator SummaryGenerator
	metadata  fetcher.MetadataFetcher
	languages []string
	logger    *slog.Logger
}

// NewPipeline wires the three stages. metadata may be nil, the summary is
// then returned without video metadata.
func NewPipeline(acquirer *fetcher.Acquirer, generator SummaryGenerator, metadata fetcher.MetadataFetcher, languages []string, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		acquirer:  acquirer,
		generator: generator,
		metadata:  metadata,
		languages: languages,
		logger:    logger,
	}
}

// Summarize runs the full chain for one url. A nil languages slice selects
// the pipeline's default preferred languages.
func (p *Pipeline) Summarize(ctx context.Context, rawURL string, style model.SummaryStyle, languages []string) (*model.Summary, error) {
	id, err := fetcher.ResolveVideoID(rawURL)
	if err != nil {
		return nil, err
	}
	if len(languages) == 0 {
		languages = p.languages
	}

	p.logger.Info("extracting transcript", slog.String("id", string(id)))
	transcript, err := p.acquirer.Acquire(ctx, id, languages)
	if err != nil {
		return nil, err
	}
	p.logger.Info("extracted transcript", slog.String("id", string(id)), slog.Int("length", len(transcript)))

	text, err := p.generator.Generate(ctx, transcript, style)
	if err != nil {
		return nil, err
	}

	summary := &model.Summary{
		ID:               uuid.New(),
		YoutubeID:        id,
		Style:            style,
		TranscriptLength: len(transcript),
		Text:             text,
	}

	if p.metadata != nil {
		video, err := p.metadata.FetchMetadata(ctx, id)
		if err != nil {
			p.logger.Warn("failed to fetch metadata", slog.String("id", string(id)), slog.String("error", err.Error()))
		} else {
			summary.Video = video
		}
	}

	p.logger.Info("generated summary", slog.String("id", string(id)), slog.String("style", string(style)))

	return summary, nil
}
