package fetcher

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickTrack(t *testing.T) {
	manualEN := captionTrack{BaseURL: "http://example.com/en", LanguageCode: "en"}
	autoEN := captionTrack{BaseURL: "http://example.com/en-asr", LanguageCode: "en", Kind: "asr"}
	manualNL := captionTrack{BaseURL: "http://example.com/nl", LanguageCode: "nl"}

	for _, tc := range []struct {
		name      string
		tracks    []captionTrack
		languages []string
		exp       captionTrack
		expOK     bool
	}{
		{
			name:      "manual wins over auto in same language",
			tracks:    []captionTrack{autoEN, manualEN},
			languages: []string{"en"},
			exp:       manualEN,
			expOK:     true,
		},
		{
			name:      "auto used when no manual track",
			tracks:    []captionTrack{autoEN, manualNL},
			languages: []string{"en"},
			exp:       autoEN,
			expOK:     true,
		},
		{
			name:      "language order decides",
			tracks:    []captionTrack{manualEN, manualNL},
			languages: []string{"nl", "en"},
			exp:       manualNL,
			expOK:     true,
		},
		{
			name:      "no track in preferred languages",
			tracks:    []captionTrack{manualNL},
			languages: []string{"en"},
			expOK:     false,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			track, ok := pickTrack(tc.tracks, tc.languages)
			assert.Equal(t, tc.expOK, ok)
			if tc.expOK {
				assert.Equal(t, tc.exp, track)
			}
		})
	}
}

func TestCleanCaptionText(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		exp   string
	}{
		{name: "plain", input: "hello", exp: "hello"},
		{name: "html entities", input: "Tom &amp; Jerry&#39;s show", exp: "Tom & Jerry's show"},
		{name: "newline becomes space", input: "hello\nworld", exp: "hello world"},
		{name: "surrounding whitespace", input: "  hello ", exp: "hello"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.exp, cleanCaptionText(tc.input))
		})
	}
}

const testTimedText = `<?xml version="1.0" encoding="utf-8" ?><transcript><text start="0.32" dur="1.5">Hi</text><text start="1.82" dur="2.1">there</text><text start="3.92" dur="1.0"> </text></transcript>`

func testInnertubeServer(t *testing.T, playerJSON func(baseURL string) string) *Innertube {
	t.Helper()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/player", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		fmt.Fprint(w, playerJSON(srv.URL))
	})
	mux.HandleFunc("/timedtext", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("lang") {
		case "en":
			fmt.Fprint(w, testTimedText)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	return &Innertube{
		client:    srv.Client(),
		playerURL: srv.URL + "/player",
	}
}

func TestInnertubeFetch(t *testing.T) {
	innertube := testInnertubeServer(t, func(baseURL string) string {
		return fmt.Sprintf(`{"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[
			{"baseUrl":"%s/timedtext?lang=en","languageCode":"en","kind":"asr"}
		]}}}`, baseURL)
	})

	segments, err := innertube.Fetch(context.Background(), "abc123", []string{"en"})
	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, "Hi", segments[0].Text)
	assert.Equal(t, 0.32, segments[0].Start)
	assert.Equal(t, 1.5, segments[0].Duration)
	assert.Equal(t, "there", segments[1].Text)
}

func TestInnertubeFetchNoMatchingLanguage(t *testing.T) {
	innertube := testInnertubeServer(t, func(baseURL string) string {
		return fmt.Sprintf(`{"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[
			{"baseUrl":"%s/timedtext?lang=de","languageCode":"de"}
		]}}}`, baseURL)
	})

	_, err := innertube.Fetch(context.Background(), "abc123", []string{"en"})
	assert.Error(t, err)
}

func TestInnertubeList(t *testing.T) {
	innertube := testInnertubeServer(t, func(baseURL string) string {
		return fmt.Sprintf(`{"captions":{"playerCaptionsTracklistRenderer":{"captionTracks":[
			{"baseUrl":"%s/timedtext?lang=de","languageCode":"de"},
			{"baseUrl":"%s/timedtext?lang=en","languageCode":"en","kind":"asr"}
		]}}}`, baseURL, baseURL)
	})

	transcripts, err := innertube.List(context.Background(), "abc123")
	require.NoError(t, err)
	require.Len(t, transcripts, 2)

	// listed order is preserved
	assert.Equal(t, "de", transcripts[0].Language())
	assert.False(t, transcripts[0].Generated())
	assert.Equal(t, "en", transcripts[1].Language())
	assert.True(t, transcripts[1].Generated())

	// the de track 404s, the en track fetches
	_, err = transcripts[0].Fetch(context.Background())
	assert.Error(t, err)
	segments, err := transcripts[1].Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Hi", segments[0].Text)
}

func TestInnertubeListNoCaptions(t *testing.T) {
	innertube := testInnertubeServer(t, func(_ string) string {
		return `{"playabilityStatus":{"status":"ERROR","reason":"Video unavailable"}}`
	})

	_, err := innertube.List(context.Background(), "gone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Video unavailable")
}
