package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"dreamLeagueBot/models"
	"dreamLeagueBot/services/common"
)

// ShowCollection renders the caller's collection grouped by card, rarest
// first.
func ShowCollection(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !deps.Guilds.IsChannelAllowed(i.GuildID, "collection", i.ChannelID) {
		common.RespondEphemeral(s, i, "That command is not allowed in this channel.")
		return
	}

	userID := i.Member.User.ID
	grouped, err := deps.Economy.GroupedCollection(i.GuildID, userID)
	if err != nil {
		common.SendError(s, i, err)
		return
	}
	if len(grouped) == 0 {
		common.RespondEphemeral(s, i, "Your collection is empty. Open a pack with /packs!")
		return
	}

	holdings := make([]models.CardHolding, 0, len(grouped))
	total := 0
	for _, h := range grouped {
		holdings = append(holdings, h)
		total += h.Count
	}
	sort.Slice(holdings, func(a, b int) bool {
		ra := rarityRank(holdings[a].Card.Rarity)
		rb := rarityRank(holdings[b].Card.Rarity)
		if ra != rb {
			return ra > rb
		}
		return holdings[a].Card.Name < holdings[b].Card.Name
	})

	var lines []string
	for _, h := range holdings {
		line := fmt.Sprintf("**%s** (%s)", h.Card.Name, rarityLabel(h.Card.Rarity))
		if h.Count > 1 {
			line += fmt.Sprintf(" x%d", h.Count)
		}
		lines = append(lines, line)
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Collection — %d cards", total),
		Description: strings.Join(lines, "\n"),
		Color:       common.ColorBlue,
	}
	common.RespondEmbed(s, i, embed, true)
}

func rarityRank(r models.Rarity) int {
	for idx, candidate := range models.RarityOrder() {
		if candidate == r {
			return idx
		}
	}
	return -1
}

// GiveCard grants a specific catalog card to a member. Admin only.
func GiveCard(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !common.IsAdmin(i, deps.Guilds) {
		common.RespondEphemeral(s, i, "You do not have permission to do that.")
		return
	}

	opts := optionMap(i)
	target := opts["user"].UserValue(s)
	cardID := opts["card-id"].StringValue()

	card, err := deps.Packs.GrantCard(i.GuildID, target.ID, cardID)
	if err != nil {
		common.RespondEphemeral(s, i, fmt.Sprintf("Could not grant the card: %v", err))
		return
	}

	embed := cardEmbed(fmt.Sprintf("Card granted to %s", target.Username), card)
	common.RespondEmbed(s, i, embed, true)
	common.NotifyLogChannel(s, deps.Guilds, i.GuildID,
		fmt.Sprintf("<@%s> granted card %q to <@%s>.", i.Member.User.ID, card.Name, target.ID))
}
