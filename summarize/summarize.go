package summarize

import (
	"context"
	"fmt"

	"ewintr.nl/vidsum/model"
)

// GenerationError signals that the text generation provider failed. The
// pipeline does not retry, the caller decides what to do with it.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("summary generation: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

type SummaryGenerator interface {
	Generate(ctx context.Context, transcript string, style model.SummaryStyle) (string, error)
}
