package fetcher_test

import (
	"testing"

	"ewintr.nl/vidsum/fetcher"
	"ewintr.nl/vidsum/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVideoID(t *testing.T) {
	for _, tc := range []struct {
		name string
		url  string
		exp  model.YoutubeVideoID
	}{
		{name: "watch url", url: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", exp: "dQw4w9WgXcQ"},
		{name: "short link", url: "https://youtu.be/abc123", exp: "abc123"},
		{name: "embed url", url: "https://www.youtube.com/embed/abc123", exp: "abc123"},
		{name: "mobile watch url", url: "https://m.youtube.com/watch?v=abc123", exp: "abc123"},
		{name: "watch url with extra params", url: "https://www.youtube.com/watch?v=abc123&t=42s", exp: "abc123"},
		{name: "watch url with params before v", url: "https://www.youtube.com/watch?list=PL0GnjTU&v=abc123", exp: "abc123"},
		{name: "watch url with fragment", url: "https://www.youtube.com/watch?v=abc123#t=1m", exp: "abc123"},
		{name: "no scheme", url: "youtube.com/watch?v=abc123", exp: "abc123"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			id, err := fetcher.ResolveVideoID(tc.url)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, id)
		})
	}
}

func TestResolveVideoIDInvalid(t *testing.T) {
	for _, tc := range []struct {
		name string
		url  string
	}{
		{name: "empty", url: ""},
		{name: "not a url", url: "certainly not a url"},
		{name: "different site", url: "https://example.com/watch?v=abc123"},
		{name: "watch url without id", url: "https://www.youtube.com/watch"},
		{name: "empty v param", url: "https://www.youtube.com/watch?v="},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := fetcher.ResolveVideoID(tc.url)
			assert.ErrorIs(t, err, fetcher.ErrInvalidURL)
		})
	}
}

func TestResolveVideoIDSameVideo(t *testing.T) {
	urls := []string{
		"https://www.youtube.com/watch?v=abc123",
		"https://youtu.be/abc123",
		"https://www.youtube.com/embed/abc123",
		"https://www.youtube.com/watch?v=abc123&list=PL0GnjTU",
	}
	for _, url := range urls {
		id, err := fetcher.ResolveVideoID(url)
		require.NoError(t, err)
		assert.Equal(t, model.YoutubeVideoID("abc123"), id)
	}
}
