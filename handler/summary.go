package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"ewintr.nl/vidsum/fetcher"
	"ewintr.nl/vidsum/model"
	"ewintr.nl/vidsum/summarize"
	"golang.org/x/exp/slog"
)

type Summarizer interface {
	Summarize(ctx context.Context, rawURL string, style model.SummaryStyle, languages []string) (*model.Summary, error)
}

type SummarizeAPI struct {
	summarizer Summarizer
	logger     *slog.Logger
}

func NewSummarizeAPI(summarizer Summarizer, logger *slog.Logger) *SummarizeAPI {
	return &SummarizeAPI{
		summarizer: summarizer,
		logger:     logger,
	}
}

func (s *SummarizeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sub, _ := ShiftPath(r.URL.Path)

	switch {
	case r.Method == http.MethodPost && sub == "":
		s.Create(w, r)
	default:
		Error(w, http.StatusNotFound, "not found", fmt.Errorf("method %s with subpath %q was not registered in the summarize api", r.Method, sub))
	}
}

func (s *SummarizeAPI) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL       string   `json:"url"`
		Style     string   `json:"style"`
		Languages []string `json:"languages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "could not decode request body", err)
		return
	}

	style, err := model.ParseSummaryStyle(req.Style)
	if err != nil {
		Error(w, http.StatusBadRequest, "invalid summary style", err)
		return
	}

	summary, err := s.summarizer.Summarize(r.Context(), req.URL, style, req.Languages)
	if err != nil {
		s.returnErr(w, req.URL, err)
		return
	}

	type respSummary struct {
		ID               string `json:"id"`
		YoutubeID        string `json:"youtube_id"`
		Style            string `json:"style"`
		TranscriptLength int    `json:"transcript_length"`
		Summary          string `json:"summary"`
		Title            string `json:"title,omitempty"`
	}
	resp := respSummary{
		ID:               summary.ID.String(),
		YoutubeID:        string(summary.YoutubeID),
		Style:            string(summary.Style),
		TranscriptLength: summary.TranscriptLength,
		Summary:          summary.Text,
	}
	if summary.Video != nil {
		resp.Title = summary.Video.YoutubeTitle
	}

	jsonBody, err := json.Marshal(resp)
	if err != nil {
		Error(w, http.StatusInternalServerError, "could not marshal response", err)
		return
	}

	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, string(jsonBody))
}

// returnErr maps the typed pipeline failures onto http statuses. The caller
// gets a stable message, the underlying detail only ends up in the log.
func (s *SummarizeAPI) returnErr(w http.ResponseWriter, url string, err error) {
	s.logger.Error("could not summarize video", err, slog.String("url", url))

	var provErr *fetcher.ProviderError
	var genErr *summarize.GenerationError
	switch {
	case errors.Is(err, fetcher.ErrInvalidURL):
		Error(w, http.StatusBadRequest, "not a valid youtube url", fetcher.ErrInvalidURL)
	case errors.Is(err, fetcher.ErrNoTranscript):
		Error(w, http.StatusNotFound, "video has no transcript", fetcher.ErrNoTranscript)
	case errors.As(err, &provErr):
		Error(w, http.StatusBadGateway, "transcript provider failed", errors.New("transcript provider failed"))
	case errors.As(err, &genErr):
		Error(w, http.StatusBadGateway, "summary generation failed", errors.New("summary generation failed"))
	default:
		Error(w, http.StatusInternalServerError, "could not summarize video", errors.New("internal error"))
	}
}
