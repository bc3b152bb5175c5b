package models

// ReminderConfig is the persisted per-guild reminder configuration.
// Changing IntervalHours or Enabled must affect the live reminder loop
// immediately, not just future cycles.
type ReminderConfig struct {
	Enabled             bool    `json:"enabled"`
	ChannelID           string  `json:"channel_id,omitempty"`
	DiscussionChannelID string  `json:"discussion_channel_id,omitempty"`
	IntervalHours       float64 `json:"interval_hours"`
}
