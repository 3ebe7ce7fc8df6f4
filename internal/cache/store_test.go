package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yt-trends/internal/models"
)

func TestVideoSlotKeyedByRegion(t *testing.T) {
	s := New()
	s.SetVideos("KR", []models.Video{{ID: "a"}})

	got, ok := s.Videos("KR")
	assert.True(t, ok)
	assert.Len(t, got, 1)

	_, ok = s.Videos("US")
	assert.False(t, ok, "different region is a different key")
}

func TestChannelSlotIndependentOfVideoSlot(t *testing.T) {
	s := New()
	s.SetVideos("KR", []models.Video{{ID: "a", ChannelID: "c1"}})
	s.SetChannels("c1", map[string]models.ChannelStats{"c1": {ID: "c1", Subscribers: 10}})

	// Overwriting the video slot leaves the channel slot untouched.
	s.SetVideos("US", []models.Video{{ID: "b", ChannelID: "c1"}})

	got, ok := s.Channels("c1")
	assert.True(t, ok)
	assert.Equal(t, int64(10), got["c1"].Subscribers)
}

func TestInvalidateClearsBothSlots(t *testing.T) {
	s := New()
	s.SetVideos("KR", []models.Video{{ID: "a"}})
	s.SetChannels("c1,c2", map[string]models.ChannelStats{})

	s.Invalidate()

	_, ok := s.Videos("KR")
	assert.False(t, ok)
	_, ok = s.Channels("c1,c2")
	assert.False(t, ok)
}

func TestChannelKeyOrderInsensitive(t *testing.T) {
	assert.Equal(t, ChannelKey([]string{"b", "a", "c"}), ChannelKey([]string{"c", "b", "a"}))
	assert.Equal(t, "a,b,c", ChannelKey([]string{"b", "a", "c"}))
	assert.Equal(t, "", ChannelKey(nil))
}

func TestChannelKeyDoesNotMutateInput(t *testing.T) {
	ids := []string{"b", "a"}
	ChannelKey(ids)
	assert.Equal(t, []string{"b", "a"}, ids)
}
