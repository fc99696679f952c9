package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"ewintr.nl/vidsum/model"
)

// Caption tracks come from the ANDROID Innertube /player endpoint, the
// track text itself from the timedtext url each track carries.
const (
	ytPlayerURL      = "https://www.youtube.com/youtubei/v1/player?prettyPrint=false"
	ytAndroidVersion = "19.09.37"
	ytAndroidUA      = "com.google.android.youtube/19.09.37 (Linux; U; Android 11) gzip"
)

type Innertube struct {
	client    *http.Client
	playerURL string
}

func NewInnertube(client *http.Client) *Innertube {
	return &Innertube{
		client:    client,
		playerURL: ytPlayerURL,
	}
}

type innertubeReq struct {
	VideoID        string       `json:"videoId"`
	Context        innertubeCtx `json:"context"`
	RacyCheckOk    bool         `json:"racyCheckOk"`
	ContentCheckOk bool         `json:"contentCheckOk"`
}

type innertubeCtx struct {
	Client innertubeClient `json:"client"`
}

type innertubeClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion"`
	Hl                string `json:"hl"`
	Gl                string `json:"gl"`
}

type playerResp struct {
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" marks an auto-generated track
}

// Fetch returns the segments of a transcript in the first preferred
// language the video has a track for. Within one language a manual track
// wins over an auto-generated one.
func (i *Innertube) Fetch(ctx context.Context, id model.YoutubeVideoID, languages []string) ([]Segment, error) {
	tracks, err := i.listTracks(ctx, id)
	if err != nil {
		return nil, err
	}

	track, ok := pickTrack(tracks, languages)
	if !ok {
		return nil, fmt.Errorf("no caption track for languages %s", strings.Join(languages, ","))
	}

	return i.fetchTimedText(ctx, track.BaseURL)
}

// List returns every advertised caption track in listed order, each one
// independently fetchable.
func (i *Innertube) List(ctx context.Context, id model.YoutubeVideoID) ([]Transcript, error) {
	tracks, err := i.listTracks(ctx, id)
	if err != nil {
		return nil, err
	}

	transcripts := make([]Transcript, 0, len(tracks))
	for _, track := range tracks {
		transcripts = append(transcripts, &innertubeTranscript{
			source: i,
			track:  track,
		})
	}

	return transcripts, nil
}

func (i *Innertube) listTracks(ctx context.Context, id model.YoutubeVideoID) ([]captionTrack, error) {
	reqBody, err := json.Marshal(innertubeReq{
		VideoID: string(id),
		Context: innertubeCtx{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     ytAndroidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.playerURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", ytAndroidUA)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", ytAndroidVersion)

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{Err: fmt.Errorf("player endpoint returned status %d", resp.StatusCode)}
	}

	var player playerResp
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, &ProviderError{Err: fmt.Errorf("decode player response: %w", err)}
	}

	if player.Captions == nil {
		if player.PlayabilityStatus != nil && player.PlayabilityStatus.Reason != "" {
			return nil, fmt.Errorf("captions unavailable: %s", player.PlayabilityStatus.Reason)
		}
		return nil, errors.New("no captions in player response")
	}
	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, errors.New("no caption tracks")
	}

	return tracks, nil
}

type timedText struct {
	Lines []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start    float64 `xml:"start,attr"`
	Duration float64 `xml:"dur,attr"`
	Text     string  `xml:",chardata"`
}

func (i *Innertube) fetchTimedText(ctx context.Context, baseURL string) ([]Segment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", ytAndroidUA)

	resp, err := i.client.Do(req)
	if err != nil {
		return nil, &ProviderError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{Err: fmt.Errorf("timedtext returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 512*1024))
	if err != nil {
		return nil, &ProviderError{Err: err}
	}

	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, &ProviderError{Err: fmt.Errorf("parse timedtext xml: %w", err)}
	}

	segments := make([]Segment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := cleanCaptionText(line.Text)
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Text:     text,
			Start:    line.Start,
			Duration: line.Duration,
		})
	}

	return segments, nil
}

func cleanCaptionText(text string) string {
	text = html.UnescapeString(text)
	text = strings.ReplaceAll(text, "\n", " ")

	return strings.TrimSpace(text)
}

func pickTrack(tracks []captionTrack, languages []string) (captionTrack, bool) {
	for _, lang := range languages {
		for _, track := range tracks {
			if track.LanguageCode == lang && track.Kind != "asr" {
				return track, true
			}
		}
		for _, track := range tracks {
			if track.LanguageCode == lang {
				return track, true
			}
		}
	}

	return captionTrack{}, false
}

type innertubeTranscript struct {
	source *Innertube
	track  captionTrack
}

func (t *innertubeTranscript) Language() string { return t.track.LanguageCode }

func (t *innertubeTranscript) Generated() bool { return t.track.Kind == "asr" }

func (t *innertubeTranscript) Fetch(ctx context.Context) ([]Segment, error) {
	return t.source.fetchTimedText(ctx, t.track.BaseURL)
}
