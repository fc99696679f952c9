package fetcher

import (
	"context"
	"fmt"

	"ewintr.nl/vidsum/model"
	"google.golang.org/api/youtube/v3"
)

type YoutubeData struct {
	Client *youtube.Service
}

func NewYoutubeData(client *youtube.Service) *YoutubeData {
	return &YoutubeData{Client: client}
}

func (y *YoutubeData) FetchMetadata(ctx context.Context, id model.YoutubeVideoID) (*model.Video, error) {
	call := y.Client.Videos.
		List([]string{"snippet", "contentDetails"}).
		Id(string(id)).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, err
	}
	if len(response.Items) == 0 {
		return nil, fmt.Errorf("no metadata for video %s", id)
	}

	item := response.Items[0]
	video := &model.Video{
		YoutubeID:          id,
		YoutubeTitle:       item.Snippet.Title,
		YoutubeDescription: item.Snippet.Description,
		YoutubePublishedAt: item.Snippet.PublishedAt,
	}
	if item.ContentDetails != nil {
		video.YoutubeDuration = item.ContentDetails.Duration
	}

	return video, nil
}
