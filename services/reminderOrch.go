package services

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"dreamLeagueBot/models"
	"dreamLeagueBot/services/common"
	"dreamLeagueBot/services/reminderService"
)

// BuildAnnouncer returns the reminder delivery closure bound to the session.
func BuildAnnouncer(s *discordgo.Session) reminderService.Announcer {
	return func(guildID string, cfg models.ReminderConfig) error {
		content := "Don't forget to check in and chat with the community!"
		if cfg.DiscussionChannelID != "" {
			content = fmt.Sprintf("Don't forget to check in! Join the discussion in <#%s>.", cfg.DiscussionChannelID)
		}
		_, err := s.ChannelMessageSend(cfg.ChannelID, content)
		return err
	}
}

// SetReminderChannel sets the announcement channel. Admin only.
func SetReminderChannel(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !common.IsAdmin(i, deps.Guilds) {
		common.RespondEphemeral(s, i, "You do not have permission to do that.")
		return
	}
	channel := optionMap(i)["channel"].ChannelValue(s)
	if err := deps.Reminders.SetChannel(i.GuildID, channel.ID); err != nil {
		common.SendError(s, i, err)
		return
	}
	common.RespondEphemeral(s, i, fmt.Sprintf("Reminders will be posted in <#%s>.", channel.ID))
}

// SetReminderDiscussionChannel sets the channel the reminder points to.
// Admin only.
func SetReminderDiscussionChannel(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !common.IsAdmin(i, deps.Guilds) {
		common.RespondEphemeral(s, i, "You do not have permission to do that.")
		return
	}
	channel := optionMap(i)["channel"].ChannelValue(s)
	if err := deps.Reminders.SetDiscussionChannel(i.GuildID, channel.ID); err != nil {
		common.SendError(s, i, err)
		return
	}
	common.RespondEphemeral(s, i, fmt.Sprintf("Reminders will point members to <#%s>.", channel.ID))
}

// SetReminderInterval changes the interval in hours. Admin only.
func SetReminderInterval(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !common.IsAdmin(i, deps.Guilds) {
		common.RespondEphemeral(s, i, "You do not have permission to do that.")
		return
	}
	hours := optionMap(i)["hours"].FloatValue()
	if err := deps.Reminders.SetInterval(i.GuildID, hours); err != nil {
		if errors.Is(err, reminderService.ErrIntervalTooShort) {
			common.RespondEphemeral(s, i, "The interval must be at least one minute.")
			return
		}
		common.SendError(s, i, err)
		return
	}
	common.RespondEphemeral(s, i, fmt.Sprintf("Reminder interval set to %g hours.", hours))
}

// EnableReminders turns the reminder loop on for this guild. Admin only.
func EnableReminders(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !common.IsAdmin(i, deps.Guilds) {
		common.RespondEphemeral(s, i, "You do not have permission to do that.")
		return
	}
	if err := deps.Reminders.Enable(i.GuildID); err != nil {
		if errors.Is(err, reminderService.ErrNoChannel) {
			common.RespondEphemeral(s, i, "Set a reminder channel first with /reminder-channel.")
			return
		}
		common.SendError(s, i, err)
		return
	}
	common.RespondEphemeral(s, i, "Automatic reminders enabled.")
}

// DisableReminders turns reminders off for this guild. Admin only.
func DisableReminders(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !common.IsAdmin(i, deps.Guilds) {
		common.RespondEphemeral(s, i, "You do not have permission to do that.")
		return
	}
	if err := deps.Reminders.Disable(i.GuildID); err != nil {
		common.SendError(s, i, err)
		return
	}
	common.RespondEphemeral(s, i, "Automatic reminders disabled.")
}

// ShowReminderStatus renders the guild's reminder configuration. Admin only.
func ShowReminderStatus(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !common.IsAdmin(i, deps.Guilds) {
		common.RespondEphemeral(s, i, "You do not have permission to do that.")
		return
	}
	cfg, ok, err := deps.Reminders.Config(i.GuildID)
	if err != nil {
		common.SendError(s, i, err)
		return
	}
	if !ok {
		common.RespondEphemeral(s, i, "No reminder configuration yet. Start with /reminder-channel.")
		return
	}

	status := "disabled"
	if cfg.Enabled {
		status = "enabled"
	}
	channel := "not set"
	if cfg.ChannelID != "" {
		channel = fmt.Sprintf("<#%s>", cfg.ChannelID)
	}
	discussion := "not set"
	if cfg.DiscussionChannelID != "" {
		discussion = fmt.Sprintf("<#%s>", cfg.DiscussionChannelID)
	}

	embed := &discordgo.MessageEmbed{
		Title: "Reminder Configuration",
		Color: common.ColorBlue,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Status", Value: status, Inline: true},
			{Name: "Interval", Value: fmt.Sprintf("%g hours", cfg.IntervalHours), Inline: true},
			{Name: "Channel", Value: channel, Inline: true},
			{Name: "Discussion", Value: discussion, Inline: true},
		},
	}
	common.RespondEmbed(s, i, embed, true)
}
