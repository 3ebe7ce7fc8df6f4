package cache

import (
	"sort"
	"strings"
	"sync"

	"github.com/yt-trends/internal/models"
)

// Store memoizes the two upstream fetches behind the trending page: the
// video list per region and the channel stats per distinct id set. Entries
// have no TTL; they live until Invalidate or until their key changes.
type Store struct {
	mu       sync.RWMutex
	videos   map[string][]models.Video
	channels map[string]map[string]models.ChannelStats
}

// New returns an empty store.
func New() *Store {
	return &Store{
		videos:   make(map[string][]models.Video),
		channels: make(map[string]map[string]models.ChannelStats),
	}
}

// Videos returns the cached trending list for a region, or false on a miss.
func (s *Store) Videos(region string) ([]models.Video, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.videos[region]
	return v, ok
}

// SetVideos stores the trending list for a region.
func (s *Store) SetVideos(region string, videos []models.Video) {
	s.mu.Lock()
	s.videos[region] = videos
	s.mu.Unlock()
}

// Channels returns the cached stats for a channel-id-set key, or false on a miss.
func (s *Store) Channels(key string) (map[string]models.ChannelStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.channels[key]
	return c, ok
}

// SetChannels stores the stats for a channel-id-set key.
func (s *Store) SetChannels(key string, stats map[string]models.ChannelStats) {
	s.mu.Lock()
	s.channels[key] = stats
	s.mu.Unlock()
}

// Invalidate drops both slots unconditionally, forcing the next page render
// to re-fetch video and channel data.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.videos = make(map[string][]models.Video)
	s.channels = make(map[string]map[string]models.ChannelStats)
	s.mu.Unlock()
}

// ChannelKey derives the cache key for a set of channel ids. The key is
// order-insensitive so the same set always hits the same slot.
func ChannelKey(ids []string) string {
	sorted := make([]string, len(ids))
	copy(sorted, ids)
	sort.Strings(sorted)
	return strings.Join(sorted, ",")
}
