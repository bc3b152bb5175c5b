package services

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"dreamLeagueBot/config"
	"dreamLeagueBot/models"
	"dreamLeagueBot/services/economyService"
	"dreamLeagueBot/services/guildService"
	"dreamLeagueBot/services/minigameService"
	"dreamLeagueBot/services/packService"
	"dreamLeagueBot/services/reminderService"
)

// Deps bundles the core services the command layer renders for. Everything
// is injected from main; the command layer owns no state of its own.
type Deps struct {
	Config    *config.Config
	Economy   *economyService.Service
	Packs     *packService.Service
	Guilds    *guildService.Service
	Minigame  *minigameService.Service
	Reminders *reminderService.Service
}

func HandleSlashCommand(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	switch i.ApplicationCommandData().Name {
	case "balance":
		ShowBalance(s, i, deps)
	case "collection":
		ShowCollection(s, i, deps)
	case "packs":
		ShowPacks(s, i, deps)
	case "give-card":
		GiveCard(s, i, deps)
	case "set-balance":
		SetBalance(s, i, deps)
	case "add-coins":
		AdjustBalance(s, i, deps, 1)
	case "remove-coins":
		AdjustBalance(s, i, deps, -1)
	case "set-minigame-channel":
		SetMinigameChannel(s, i, deps)
	case "reminder-channel":
		SetReminderChannel(s, i, deps)
	case "reminder-discussion-channel":
		SetReminderDiscussionChannel(s, i, deps)
	case "reminder-interval":
		SetReminderInterval(s, i, deps)
	case "reminder-enable":
		EnableReminders(s, i, deps)
	case "reminder-disable":
		DisableReminders(s, i, deps)
	case "reminder-status":
		ShowReminderStatus(s, i, deps)
	case "allow-channel":
		AllowCommandChannel(s, i, deps)
	case "deny-channel":
		DenyCommandChannel(s, i, deps)
	case "add-no-reward-channel":
		AddNoRewardChannel(s, i, deps)
	case "remove-no-reward-channel":
		RemoveNoRewardChannel(s, i, deps)
	case "set-log-channel":
		SetLogChannel(s, i, deps)
	case "add-role":
		AddPermissionRole(s, i, deps)
	case "remove-role":
		RemovePermissionRole(s, i, deps)
	}
}

func HandleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	customID := i.MessageComponentData().CustomID
	switch {
	case strings.HasPrefix(customID, "shop_"):
		HandleShopButton(s, i, deps, customID)
	case strings.HasPrefix(customID, "minigame_answer_"):
		HandleMinigameAnswer(s, i, deps, customID)
	}
}

func RegisterCommands(s *discordgo.Session) error {
	channelOption := func(name, description string) *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Name:        name,
			Description: description,
			Type:        discordgo.ApplicationCommandOptionChannel,
			Required:    true,
		}
	}
	userOption := &discordgo.ApplicationCommandOption{
		Name:        "user",
		Description: "Target member",
		Type:        discordgo.ApplicationCommandOptionUser,
		Required:    true,
	}
	amountOption := &discordgo.ApplicationCommandOption{
		Name:        "amount",
		Description: "Amount of coins",
		Type:        discordgo.ApplicationCommandOptionInteger,
		Required:    true,
	}
	var commandChoices []*discordgo.ApplicationCommandOptionChoice
	for _, cmd := range models.GuildCommands {
		commandChoices = append(commandChoices, &discordgo.ApplicationCommandOptionChoice{Name: cmd, Value: cmd})
	}

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "balance",
			Description: "Show your coin balance",
		},
		{
			Name:        "collection",
			Description: "Show your card collection",
		},
		{
			Name:        "packs",
			Description: "Open the pack shop",
		},
		{
			Name:        "give-card",
			Description: "Grant a catalog card to a member (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				userOption,
				{
					Name:        "card-id",
					Description: "Catalog card ID",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
				},
			},
		},
		{
			Name:        "set-balance",
			Description: "Set a member's balance (admin)",
			Options:     []*discordgo.ApplicationCommandOption{userOption, amountOption},
		},
		{
			Name:        "add-coins",
			Description: "Add coins to a member's balance (admin)",
			Options:     []*discordgo.ApplicationCommandOption{userOption, amountOption},
		},
		{
			Name:        "remove-coins",
			Description: "Remove coins from a member's balance (admin)",
			Options:     []*discordgo.ApplicationCommandOption{userOption, amountOption},
		},
		{
			Name:        "set-minigame-channel",
			Description: "Set the channel where the trivia event spawns (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				channelOption("channel", "Event channel"),
			},
		},
		{
			Name:        "reminder-channel",
			Description: "Set the automatic reminder channel (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				channelOption("channel", "Reminder channel"),
			},
		},
		{
			Name:        "reminder-discussion-channel",
			Description: "Set the discussion channel the reminder points to (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				channelOption("channel", "Discussion channel"),
			},
		},
		{
			Name:        "reminder-interval",
			Description: "Set the reminder interval in hours (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "hours",
					Description: "Interval in hours (minimum one minute)",
					Type:        discordgo.ApplicationCommandOptionNumber,
					Required:    true,
				},
			},
		},
		{
			Name:        "reminder-enable",
			Description: "Enable automatic reminders (admin)",
		},
		{
			Name:        "reminder-disable",
			Description: "Disable automatic reminders (admin)",
		},
		{
			Name:        "reminder-status",
			Description: "Show the reminder configuration (admin)",
		},
		{
			Name:        "allow-channel",
			Description: "Allow a command in a channel (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "command",
					Description: "Command to configure",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
					Choices:     commandChoices,
				},
				channelOption("channel", "Channel to allow"),
			},
		},
		{
			Name:        "deny-channel",
			Description: "Remove a channel from a command's allow-list (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "command",
					Description: "Command to configure",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
					Choices:     commandChoices,
				},
				channelOption("channel", "Channel to remove"),
			},
		},
		{
			Name:        "add-no-reward-channel",
			Description: "Stop messages in a channel from earning coins (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				channelOption("channel", "Channel to suppress"),
			},
		},
		{
			Name:        "remove-no-reward-channel",
			Description: "Let messages in a channel earn coins again (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				channelOption("channel", "Channel to restore"),
			},
		},
		{
			Name:        "set-log-channel",
			Description: "Set the channel for admin action logs (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				channelOption("channel", "Log channel"),
			},
		},
		{
			Name:        "add-role",
			Description: "Grant a role admin or moderator rights (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "tier",
					Description: "Permission tier",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "admin", Value: "admin"},
						{Name: "moderator", Value: "moderator"},
					},
				},
				{
					Name:        "role",
					Description: "Role to grant",
					Type:        discordgo.ApplicationCommandOptionRole,
					Required:    true,
				},
			},
		},
		{
			Name:        "remove-role",
			Description: "Revoke a role's admin or moderator rights (admin)",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "tier",
					Description: "Permission tier",
					Type:        discordgo.ApplicationCommandOptionString,
					Required:    true,
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "admin", Value: "admin"},
						{Name: "moderator", Value: "moderator"},
					},
				},
				{
					Name:        "role",
					Description: "Role to revoke",
					Type:        discordgo.ApplicationCommandOptionRole,
					Required:    true,
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, "", cmd)
		if err != nil {
			return err
		}
	}
	return nil
}
