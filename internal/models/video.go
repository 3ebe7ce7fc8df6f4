package models

// Video represents one entry in a region's trending list. Statistics the
// uploader has hidden come back from the API as absent fields and are kept
// as zero here.
type Video struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ChannelID    string `json:"channelId"`
	ChannelTitle string `json:"channelTitle"`
	Thumbnail    string `json:"thumbnailUrl"`
	Views        int64  `json:"viewCount"`
	Likes        int64  `json:"likeCount"`
	Comments     int64  `json:"commentCount"`
}

// WatchURL returns the canonical watch page for the video.
func (v Video) WatchURL() string {
	return "https://www.youtube.com/watch?v=" + v.ID
}
