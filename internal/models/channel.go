package models

// ChannelStats carries the subscriber count for a channel referenced by the
// trending list. Channels may hide their subscriber count, in which case
// SubscribersHidden is set and Subscribers is meaningless.
type ChannelStats struct {
	ID                string `json:"id"`
	Subscribers       int64  `json:"subscriberCount"`
	SubscribersHidden bool   `json:"subscribersHidden,omitempty"`
}

// TrendingPage is the merged result of one render cycle: the trending list
// for a region plus the subscriber stats for every distinct channel in it.
type TrendingPage struct {
	Region   string                  `json:"region"`
	Videos   []Video                 `json:"videos"`
	Channels map[string]ChannelStats `json:"channels"`
}
