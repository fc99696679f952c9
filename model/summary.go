package model

import (
	"fmt"

	"github.com/google/uuid"
)

type SummaryStyle string

const (
	StyleBrief      SummaryStyle = "brief"
	StyleStructured SummaryStyle = "structured"
	StyleDetailed   SummaryStyle = "detailed"
)

// ParseSummaryStyle maps a caller supplied style name to a SummaryStyle.
// An empty name selects the structured style.
func ParseSummaryStyle(name string) (SummaryStyle, error) {
	switch SummaryStyle(name) {
	case "":
		return StyleStructured, nil
	case StyleBrief, StyleStructured, StyleDetailed:
		return SummaryStyle(name), nil
	}

	return "", fmt.Errorf("unknown summary style %q", name)
}

type Summary struct {
	ID               uuid.UUID
	YoutubeID        YoutubeVideoID
	Style            SummaryStyle
	TranscriptLength int
	Text             string

	Video *Video
}
