package models

import "time"

// MinigameState is the persisted scheduling state for one guild's trivia
// event. NextSpawn, once computed, is never recomputed opportunistically:
// reads return the stored value until ScheduleNext advances it after a
// round concludes.
type MinigameState struct {
	NextSpawn *time.Time `json:"next_spawn,omitempty"`
	LastSpawn *time.Time `json:"last_spawn,omitempty"`
	ChannelID string     `json:"channel_id,omitempty"`
}
