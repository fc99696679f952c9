package fetcher

import (
	"context"
	"errors"
	"fmt"

	"ewintr.nl/vidsum/model"
)

var (
	ErrInvalidURL   = errors.New("could not extract a video id from url")
	ErrNoTranscript = errors.New("no transcript available")
)

// ProviderError signals that the transcript provider itself malfunctioned,
// as opposed to the transcript simply not existing.
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("transcript provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

type Segment struct {
	Text     string
	Start    float64
	Duration float64
}

// Transcript is one fetchable transcript advertised by the provider.
type Transcript interface {
	Language() string
	Generated() bool
	Fetch(ctx context.Context) ([]Segment, error)
}

type TranscriptSource interface {
	Fetch(ctx context.Context, id model.YoutubeVideoID, languages []string) ([]Segment, error)
	List(ctx context.Context, id model.YoutubeVideoID) ([]Transcript, error)
}

type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, id model.YoutubeVideoID) (*model.Video, error)
}
