package ui

import (
	"fmt"
	"html"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/yt-trends/internal/models"
)

// AppVersion is shown in the page footer.
const AppVersion = "0.3.0"

// PageOptions controls RenderTrendingPage output. When ErrorMessage is set
// the table is replaced entirely by an error banner.
type PageOptions struct {
	Region       string
	Videos       []models.Video
	Channels     map[string]models.ChannelStats
	ErrorMessage string
}

// RenderTrendingPage renders the full trending page: region selector,
// refresh control and the results table or error banner.
func RenderTrendingPage(opts PageOptions) string {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8">
<title>Trending Videos</title>
<link rel="stylesheet" href="/style.css">
</head><body>`)

	b.WriteString(`<header class="head"><h1>YouTube Trending</h1></header>`)
	b.WriteString(renderControls(opts.Region))

	b.WriteString(`<main class="page">`)
	switch {
	case opts.ErrorMessage != "":
		fmt.Fprintf(&b, `<div class="banner error">%s</div>`, Escape(opts.ErrorMessage))
	case len(opts.Videos) == 0:
		b.WriteString(`<p class="empty">No videos available for this region right now.</p>`)
	default:
		b.WriteString(renderTable(opts.Videos, opts.Channels))
	}
	b.WriteString(`</main>`)

	fmt.Fprintf(&b, `<footer class="footer">v%s</footer>`, AppVersion)
	b.WriteString(`</body></html>`)
	return b.String()
}

func renderControls(region string) string {
	var b strings.Builder
	b.WriteString(`<div class="controls">`)

	b.WriteString(`<form class="region-form" action="/" method="get">`)
	b.WriteString(`<label for="region">Region</label>`)
	b.WriteString(`<select id="region" name="region" onchange="this.form.submit()">`)
	matched := false
	for _, r := range Regions {
		selected := ""
		if r.Code == region {
			selected = ` selected`
			matched = true
		}
		fmt.Fprintf(&b, `<option value="%s"%s>%s (%s)</option>`, EscapeAttr(r.Code), selected, Escape(r.Name), Escape(r.Code))
	}
	if !matched && region != "" {
		fmt.Fprintf(&b, `<option value="%s" selected>%s</option>`, EscapeAttr(region), Escape(region))
	}
	b.WriteString(`</select>`)
	b.WriteString(`<noscript><button type="submit">Go</button></noscript>`)
	b.WriteString(`</form>`)

	b.WriteString(`<form class="refresh-form" action="/refresh" method="post">`)
	fmt.Fprintf(&b, `<input type="hidden" name="region" value="%s">`, EscapeAttr(region))
	b.WriteString(`<button type="submit" class="refresh">Refresh</button>`)
	b.WriteString(`</form>`)

	b.WriteString(`</div>`)
	return b.String()
}

func renderTable(videos []models.Video, channels map[string]models.ChannelStats) string {
	var b strings.Builder
	b.WriteString(`<table class="trending"><thead><tr>` +
		`<th></th><th></th><th>Title</th><th>Channel</th>` +
		`<th>Views</th><th>Likes</th><th>Comments</th><th>Subscribers</th>` +
		`</tr></thead><tbody>`)

	for i, v := range videos {
		b.WriteString(`<tr>`)
		fmt.Fprintf(&b, `<td class="rank">%d</td>`, i+1)
		fmt.Fprintf(&b, `<td class="thumb"><img src="%s" alt="" loading="lazy"></td>`, EscapeAttr(v.Thumbnail))
		fmt.Fprintf(&b, `<td class="title"><a href="%s">%s</a></td>`, EscapeAttr(v.WatchURL()), Escape(v.Title))
		fmt.Fprintf(&b, `<td class="channel">%s</td>`, Escape(v.ChannelTitle))
		fmt.Fprintf(&b, `<td class="num">%s</td>`, FormatCount(v.Views))
		fmt.Fprintf(&b, `<td class="num">%s</td>`, FormatCount(v.Likes))
		fmt.Fprintf(&b, `<td class="num">%s</td>`, FormatCount(v.Comments))
		fmt.Fprintf(&b, `<td class="num">%s</td>`, SubscriberText(channels, v.ChannelID))
		b.WriteString(`</tr>`)
	}

	b.WriteString(`</tbody></table>`)
	return b.String()
}

// SubscriberText resolves the display value for a video's channel:
// "N/A" when the channel is unknown or hides its subscriber count.
func SubscriberText(channels map[string]models.ChannelStats, channelID string) string {
	ch, ok := channels[channelID]
	if !ok || ch.SubscribersHidden {
		return "N/A"
	}
	return FormatCount(ch.Subscribers)
}

// FormatCount renders a count with thousands separators.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}

// Escape ensures user content cannot break inline markup.
func Escape(s string) string {
	return html.EscapeString(s)
}

// EscapeAttr escapes content placed inside attribute values.
func EscapeAttr(s string) string {
	return html.EscapeString(s)
}
