package fetcher

import (
	"net/url"
	"regexp"
	"strings"

	"ewintr.nl/vidsum/model"
)

// Known url shapes: watch page, short link, embed. The id runs until the
// next '&', newline, '?' or '#'.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&\n?#]+)`),
}

// ResolveVideoID normalizes a youtube url into the video id it points at.
// It is pure string parsing, no network access happens here.
func ResolveVideoID(rawURL string) (model.YoutubeVideoID, error) {
	for _, pattern := range videoIDPatterns {
		if m := pattern.FindStringSubmatch(rawURL); len(m) == 2 {
			return model.YoutubeVideoID(m[1]), nil
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return "", ErrInvalidURL
	}
	if !strings.Contains(u.Host, "youtube.com") {
		return "", ErrInvalidURL
	}
	if v := u.Query().Get("v"); v != "" {
		return model.YoutubeVideoID(v), nil
	}

	return "", ErrInvalidURL
}
