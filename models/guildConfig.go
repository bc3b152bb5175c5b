package models

// GuildConfig holds per-guild bot configuration. It is created when the bot
// first sees a guild and mutated only through the admin configuration layer.
//
// Channels maps a command name to the channels it may run in; an empty list
// means "allowed everywhere". Roles maps a permission tier ("admin",
// "moderator") to role IDs; an empty list falls back to native Discord
// permissions. NoRewardChannels lists channels where chatting never earns
// coins.
type GuildConfig struct {
	GuildID          string              `json:"guild_id"`
	GuildName        string              `json:"guild_name"`
	Channels         map[string][]string `json:"channels"`
	Roles            map[string][]string `json:"roles"`
	LogChannelID     string              `json:"log_channel_id,omitempty"`
	NoRewardChannels []string            `json:"no_reward_channels"`
}

// GuildCommands are the commands with configurable channel allow-lists.
var GuildCommands = []string{"balance", "packs", "collection"}

// NewGuildConfig returns the default configuration for a guild.
func NewGuildConfig(guildID, guildName string) *GuildConfig {
	channels := make(map[string][]string, len(GuildCommands))
	for _, cmd := range GuildCommands {
		channels[cmd] = []string{}
	}
	return &GuildConfig{
		GuildID:   guildID,
		GuildName: guildName,
		Channels:  channels,
		Roles: map[string][]string{
			"admin":     {},
			"moderator": {},
		},
		NoRewardChannels: []string{},
	}
}
