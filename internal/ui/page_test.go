package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yt-trends/internal/models"
)

func samplePage() PageOptions {
	return PageOptions{
		Region: "US",
		Videos: []models.Video{
			{ID: "v1", Title: "First <video>", ChannelID: "c1", ChannelTitle: "Chan One",
				Thumbnail: "https://i.ytimg.com/vi/v1/mq.jpg", Views: 1234567, Likes: 8901, Comments: 234},
			{ID: "v2", Title: "Second", ChannelID: "c2", ChannelTitle: "Chan Two", Views: 99},
		},
		Channels: map[string]models.ChannelStats{
			"c1": {ID: "c1", Subscribers: 1000000},
			"c2": {ID: "c2", SubscribersHidden: true},
		},
	}
}

func TestRenderTrendingPageRows(t *testing.T) {
	html := RenderTrendingPage(samplePage())

	assert.Contains(t, html, `href="https://www.youtube.com/watch?v=v1"`)
	assert.Contains(t, html, "First &lt;video&gt;", "titles are escaped")
	assert.Contains(t, html, "Chan One")
	assert.Contains(t, html, `src="https://i.ytimg.com/vi/v1/mq.jpg"`)
	assert.Contains(t, html, "1,234,567")
	assert.Contains(t, html, "8,901")
	assert.Contains(t, html, "1,000,000")
	assert.Equal(t, 2, strings.Count(html, "<tr>")-1, "one row per video plus header")
}

func TestRenderTrendingPageHiddenSubscribers(t *testing.T) {
	html := RenderTrendingPage(samplePage())
	assert.Contains(t, html, "N/A", "hidden subscriber count renders as N/A")
}

func TestRenderTrendingPageErrorBannerReplacesTable(t *testing.T) {
	html := RenderTrendingPage(PageOptions{
		Region:       "US",
		Videos:       samplePage().Videos,
		ErrorMessage: "YouTube API error 403: quotaExceeded",
	})

	assert.Contains(t, html, "quotaExceeded")
	assert.NotContains(t, html, "<table", "error banner replaces the table entirely")
}

func TestRenderTrendingPageEmptyList(t *testing.T) {
	html := RenderTrendingPage(PageOptions{Region: "KR"})
	assert.Contains(t, html, "No videos available")
	assert.NotContains(t, html, "<table")
}

func TestRenderControlsSelectsRegion(t *testing.T) {
	html := RenderTrendingPage(PageOptions{Region: "JP"})
	assert.Contains(t, html, `<option value="JP" selected>`)
	assert.Contains(t, html, `action="/refresh" method="post"`)
	assert.Contains(t, html, `name="region" `)
}

func TestRenderControlsKeepsUnlistedRegion(t *testing.T) {
	html := RenderTrendingPage(PageOptions{Region: "XX"})
	assert.Contains(t, html, `<option value="XX" selected>`)
}

func TestSubscriberText(t *testing.T) {
	channels := map[string]models.ChannelStats{
		"known":  {ID: "known", Subscribers: 42},
		"hidden": {ID: "hidden", SubscribersHidden: true},
	}

	assert.Equal(t, "42", SubscriberText(channels, "known"))
	assert.Equal(t, "N/A", SubscriberText(channels, "hidden"))
	assert.Equal(t, "N/A", SubscriberText(channels, "absent"))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "0", FormatCount(0))
	assert.Equal(t, "1,234", FormatCount(1234))
}
