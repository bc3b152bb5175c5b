package services

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"dreamLeagueBot/services/common"
)

func optionMap(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	options := i.ApplicationCommandData().Options
	out := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		out[opt.Name] = opt
	}
	return out
}

// ShowBalance renders the caller's own balance.
func ShowBalance(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !deps.Guilds.IsChannelAllowed(i.GuildID, "balance", i.ChannelID) {
		common.RespondEphemeral(s, i, "That command is not allowed in this channel.")
		return
	}

	userID := i.Member.User.ID
	rec, err := deps.Economy.GetOrCreate(i.GuildID, userID)
	if err != nil {
		common.SendError(s, i, err)
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Your Balance",
		Description: fmt.Sprintf("<@%s> has **%d** coins.", userID, rec.Coins),
		Color:       common.ColorBlue,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d qualifying messages sent", rec.Messages),
		},
	}
	common.RespondEmbed(s, i, embed, true)
}

// SetBalance overwrites a member's balance. Admin only.
func SetBalance(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !common.IsAdmin(i, deps.Guilds) {
		common.RespondEphemeral(s, i, "You do not have permission to do that.")
		return
	}

	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	amount := int(opts["amount"].IntValue())

	if err := deps.Economy.SetBalance(i.GuildID, target.ID, amount); err != nil {
		common.SendError(s, i, err)
		return
	}

	common.RespondEphemeral(s, i, fmt.Sprintf("Set <@%s>'s balance to %d coins.", target.ID, amount))
	common.NotifyLogChannel(s, deps.Guilds, i.GuildID,
		fmt.Sprintf("<@%s> set <@%s>'s balance to %d coins.", i.Member.User.ID, target.ID, amount))
}

// AdjustBalance credits (sign=+1) or debits (sign=-1) a member's balance.
// Admin only.
func AdjustBalance(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps, sign int) {
	if !common.IsAdmin(i, deps.Guilds) {
		common.RespondEphemeral(s, i, "You do not have permission to do that.")
		return
	}

	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	amount := int(opts["amount"].IntValue())
	if amount < 0 {
		common.RespondEphemeral(s, i, "Amount must be positive.")
		return
	}

	var (
		balance int
		err     error
		verb    string
	)
	if sign >= 0 {
		balance, err = deps.Economy.Credit(i.GuildID, target.ID, amount)
		verb = "added"
	} else {
		balance, err = deps.Economy.Debit(i.GuildID, target.ID, amount)
		verb = "removed"
	}
	if err != nil {
		common.RespondEphemeral(s, i, fmt.Sprintf("Could not adjust the balance: %v", err))
		return
	}

	common.RespondEphemeral(s, i,
		fmt.Sprintf("%s %d coins for <@%s>. New balance: %d.", verb, amount, target.ID, balance))
	common.NotifyLogChannel(s, deps.Guilds, i.GuildID,
		fmt.Sprintf("<@%s> %s %d coins for <@%s>.", i.Member.User.ID, verb, amount, target.ID))
}
