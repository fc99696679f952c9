package model

type YoutubeVideoID string

type Video struct {
	YoutubeID          YoutubeVideoID
	YoutubeTitle       string
	YoutubeDescription string
	YoutubeDuration    string
	YoutubePublishedAt string
}
