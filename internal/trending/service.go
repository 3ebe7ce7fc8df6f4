package trending

import (
	"context"
	"strings"

	"github.com/yt-trends/internal/cache"
	"github.com/yt-trends/internal/config"
	"github.com/yt-trends/internal/models"
)

// Client is the subset of the YouTube Data API the trending page needs.
// *youtube.Client satisfies it; tests use counting fakes.
type Client interface {
	TrendingVideos(ctx context.Context, region string) ([]models.Video, error)
	ChannelStats(ctx context.Context, ids []string) (map[string]models.ChannelStats, error)
}

// Service runs one render cycle: trending fetch, channel enrichment, both
// short-circuited by the cache when inputs are unchanged.
type Service struct {
	client Client
	store  *cache.Store
}

// NewService creates a service over the given client and cache. A nil client
// means no API key is configured; Page then fails fast without any call.
func NewService(client Client, store *cache.Store) *Service {
	return &Service{client: client, store: store}
}

// Page assembles the merged video+channel data for a region. Any failure is
// terminal for the cycle: no partial result is returned.
func (s *Service) Page(ctx context.Context, region string) (models.TrendingPage, error) {
	region = NormalizeRegion(region)
	if s.client == nil {
		return models.TrendingPage{}, config.ErrMissingAPIKey
	}

	videos, ok := s.store.Videos(region)
	if !ok {
		fetched, err := s.client.TrendingVideos(ctx, region)
		if err != nil {
			return models.TrendingPage{}, err
		}
		s.store.SetVideos(region, fetched)
		videos = fetched
	}

	ids := distinctChannelIDs(videos)
	channels := map[string]models.ChannelStats{}
	if len(ids) > 0 {
		key := cache.ChannelKey(ids)
		cached, ok := s.store.Channels(key)
		if !ok {
			fetched, err := s.client.ChannelStats(ctx, ids)
			if err != nil {
				return models.TrendingPage{}, err
			}
			s.store.SetChannels(key, fetched)
			cached = fetched
		}
		channels = cached
	}

	return models.TrendingPage{Region: region, Videos: videos, Channels: channels}, nil
}

// Refresh discards all cached responses so the next Page call re-fetches.
func (s *Service) Refresh() {
	s.store.Invalidate()
}

// NormalizeRegion uppercases and trims a user-supplied region code.
func NormalizeRegion(region string) string {
	return strings.ToUpper(strings.TrimSpace(region))
}

// distinctChannelIDs returns the channel ids present in the list, deduplicated
// in first-appearance order. This is exactly the set the enricher looks up.
func distinctChannelIDs(videos []models.Video) []string {
	seen := make(map[string]struct{}, len(videos))
	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		if v.ChannelID == "" {
			continue
		}
		if _, ok := seen[v.ChannelID]; ok {
			continue
		}
		seen[v.ChannelID] = struct{}{}
		ids = append(ids, v.ChannelID)
	}
	return ids
}
