package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"injai_channel/internal/utils"
)

// ThumbnailResolver finds a thumbnail image for a YouTube video id
type ThumbnailResolver interface {
	Thumbnail(ctx context.Context, videoID string) string
}

// YouTubeOEmbed asks the YouTube oEmbed endpoint for the thumbnail and falls back to the
// static hqdefault image when the lookup fails.
type YouTubeOEmbed struct {
	client   *http.Client
	endpoint string
}

func NewYouTubeOEmbed(endpoint string) *YouTubeOEmbed {
	if endpoint == "" {
		endpoint = "https://www.youtube.com/oembed"
	}
	return &YouTubeOEmbed{
		client:   &http.Client{Timeout: 5 * time.Second},
		endpoint: endpoint,
	}
}

func (y *YouTubeOEmbed) Thumbnail(ctx context.Context, videoID string) string {
	fallback := utils.YouTubeThumbnail(videoID)

	q := url.Values{}
	q.Set("url", "https://www.youtube.com/watch?v="+videoID)
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, y.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return fallback
	}
	resp, err := y.client.Do(req)
	if err != nil {
		return fallback
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fallback
	}

	var body struct {
		ThumbnailURL string `json:"thumbnail_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.ThumbnailURL == "" {
		return fallback
	}
	return body.ThumbnailURL
}
