package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"ewintr.nl/vidsum/model"
)

// FileSummaryRepository writes each summary to its own text file,
// summary_<videoid>_<style>.txt, with a small header before the body.
type FileSummaryRepository struct {
	dir string
}

func NewFileSummaryRepository(dir string) *FileSummaryRepository {
	return &FileSummaryRepository{dir: dir}
}

func (f *FileSummaryRepository) Save(summary *model.Summary) error {
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("create summary dir: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("YouTube Video Summary (%s style)\n", summary.Style))
	sb.WriteString(fmt.Sprintf("Video ID: %s\n", summary.YoutubeID))
	if summary.Video != nil {
		sb.WriteString(fmt.Sprintf("Title: %s\n", summary.Video.YoutubeTitle))
	}
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")
	sb.WriteString(summary.Text)
	sb.WriteString("\n")

	path := filepath.Join(f.dir, fmt.Sprintf("summary_%s_%s.txt", summary.YoutubeID, summary.Style))
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write summary file: %w", err)
	}

	return nil
}
