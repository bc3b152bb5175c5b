// Package common holds the Discord glue shared by every command handler:
// response helpers, permission checks and the error reporter. Delivery
// failures here are logged and dropped; they never unwind an economic
// mutation that already happened.
package common

import (
	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"dreamLeagueBot/services/guildService"
)

// Brand colors used across embeds.
const (
	ColorBlue  = 0x001F5B
	ColorRed   = 0xDA0037
	ColorGreen = 0x00D25B
	ColorGold  = 0xFFD700
)

// SendError logs a command failure and tells the user something went wrong.
func SendError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	log.Errorf("Command error: %v", err)
	if i == nil {
		return
	}
	RespondEphemeral(s, i, "Something went wrong. Please try again later.")
}

// RespondEphemeral answers an interaction with a private message.
func RespondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Errorf("Interaction response failed: %v", err)
	}
}

// RespondEmbed answers an interaction with an embed.
func RespondEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, ephemeral bool) {
	data := &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
	if ephemeral {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err != nil {
		log.Errorf("Interaction response failed: %v", err)
	}
}

// RespondEmbedWithComponents answers with an embed plus component rows.
func RespondEmbedWithComponents(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     []*discordgo.MessageEmbed{embed},
			Components: components,
		},
	})
	if err != nil {
		log.Errorf("Interaction response failed: %v", err)
	}
}

// IsAdmin checks the configured admin roles first, then falls back to
// native administrator permission.
func IsAdmin(i *discordgo.InteractionCreate, guilds *guildService.Service) bool {
	if i.Member == nil {
		return false
	}
	if guilds.HasConfiguredRole(i.GuildID, "admin", i.Member.Roles) {
		return true
	}
	return i.Member.Permissions&discordgo.PermissionAdministrator != 0
}

// IsModerator accepts moderators and admins alike.
func IsModerator(i *discordgo.InteractionCreate, guilds *guildService.Service) bool {
	if i.Member == nil {
		return false
	}
	if guilds.HasConfiguredRole(i.GuildID, "moderator", i.Member.Roles) {
		return true
	}
	if i.Member.Permissions&discordgo.PermissionModerateMembers != 0 {
		return true
	}
	return IsAdmin(i, guilds)
}

// NotifyLogChannel posts an audit line to the guild's log channel, if one is
// configured. Failures are logged only; the action being reported stands.
func NotifyLogChannel(s *discordgo.Session, guilds *guildService.Service, guildID, content string) {
	channelID := guilds.LogChannel(guildID)
	if channelID == "" {
		return
	}
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		log.Errorf("Log channel delivery failed for guild %s: %v", guildID, err)
	}
}
