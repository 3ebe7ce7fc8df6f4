package youtube

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"

	"github.com/yt-trends/internal/models"
)

const maxTrendingResults = 30

// Client wraps the two YouTube Data API calls the trending page relies on.
type Client struct {
	service *ytapi.Service
	timeout time.Duration
}

// NewClient creates a client authenticated with the given API key. Extra
// options are mainly for tests (endpoint override).
func NewClient(ctx context.Context, apiKey string, timeout time.Duration, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}
	return &Client{service: service, timeout: timeout}, nil
}

// TrendingVideos fetches the most popular videos for a region in the order
// YouTube ranks them. Hidden statistics come through as zero values.
func (c *Client) TrendingVideos(ctx context.Context, region string) ([]models.Video, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.service.Videos.List([]string{"snippet", "statistics"}).
		Chart("mostPopular").
		RegionCode(region).
		MaxResults(maxTrendingResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapErr(err)
	}

	items := resp.Items
	if len(items) > maxTrendingResults {
		items = items[:maxTrendingResults]
	}

	videos := make([]models.Video, 0, len(items))
	for _, item := range items {
		v := models.Video{ID: item.Id}
		if item.Snippet != nil {
			v.Title = item.Snippet.Title
			v.ChannelID = item.Snippet.ChannelId
			v.ChannelTitle = item.Snippet.ChannelTitle
			v.Thumbnail = pickThumbnail(item.Snippet.Thumbnails)
		}
		if item.Statistics != nil {
			v.Views = int64(item.Statistics.ViewCount)
			v.Likes = int64(item.Statistics.LikeCount)
			v.Comments = int64(item.Statistics.CommentCount)
		}
		videos = append(videos, v)
	}
	return videos, nil
}

// ChannelStats fetches subscriber counts for the given channel ids in one
// batched request. An empty id set returns an empty map without a call.
func (c *Client) ChannelStats(ctx context.Context, ids []string) (map[string]models.ChannelStats, error) {
	stats := make(map[string]models.ChannelStats, len(ids))
	if len(ids) == 0 {
		return stats, nil
	}

	ctx, cancel := c.callContext(ctx)
	defer cancel()

	resp, err := c.service.Channels.List([]string{"statistics"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapErr(err)
	}

	for _, item := range resp.Items {
		cs := models.ChannelStats{ID: item.Id}
		if item.Statistics != nil {
			cs.Subscribers = int64(item.Statistics.SubscriberCount)
			cs.SubscribersHidden = item.Statistics.HiddenSubscriberCount
		}
		stats[item.Id] = cs
	}
	return stats, nil
}

func (c *Client) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

func pickThumbnail(t *ytapi.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, thumb := range []*ytapi.Thumbnail{t.Medium, t.High, t.Default} {
		if thumb != nil && thumb.Url != "" {
			return thumb.Url
		}
	}
	return ""
}
