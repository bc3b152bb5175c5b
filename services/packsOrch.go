package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"dreamLeagueBot/models"
	"dreamLeagueBot/services/common"
)

func rarityLabel(r models.Rarity) string {
	switch r {
	case models.RarityBasic:
		return "Basic"
	case models.RarityAdvanced:
		return "Advanced"
	case models.RarityElite:
		return "Elite"
	case models.RarityLegend:
		return "Legend"
	case models.RarityUnique:
		return "Unique"
	}
	return string(r)
}

func rarityColor(r models.Rarity) int {
	switch r {
	case models.RarityElite, models.RarityLegend:
		return common.ColorGold
	case models.RarityUnique:
		return common.ColorRed
	default:
		return common.ColorBlue
	}
}

// cardEmbed renders one card the same way everywhere a card is revealed.
func cardEmbed(title string, card models.Card) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: title,
		Color: rarityColor(card.Rarity),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Card", Value: card.Name, Inline: true},
			{Name: "Rarity", Value: rarityLabel(card.Rarity), Inline: true},
		},
	}
	if card.Type == models.CardTypePlayer {
		embed.Fields = append(embed.Fields,
			&discordgo.MessageEmbedField{Name: "Position", Value: card.Position, Inline: true})
		if len(card.Stats) > 0 {
			names := make([]string, 0, len(card.Stats))
			for name := range card.Stats {
				names = append(names, name)
			}
			sort.Strings(names)
			var lines []string
			for _, name := range names {
				lines = append(lines, fmt.Sprintf("%s: %d", name, card.Stats[name]))
			}
			embed.Fields = append(embed.Fields,
				&discordgo.MessageEmbedField{Name: "Stats", Value: strings.Join(lines, "\n")})
		}
	}
	if card.Image != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: card.Image}
	}
	return embed
}

// ShowPacks renders the pack shop with one buy button per pack. The buttons
// are bound to the caller so nobody can spend someone else's coins.
func ShowPacks(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !deps.Guilds.IsChannelAllowed(i.GuildID, "packs", i.ChannelID) {
		common.RespondEphemeral(s, i, "That command is not allowed in this channel.")
		return
	}

	userID := i.Member.User.ID
	packs := deps.Packs.ShopPacks()

	embed := &discordgo.MessageEmbed{
		Title: "Card Pack Shop",
		Color: common.ColorBlue,
	}
	var buttons []discordgo.MessageComponent
	for _, def := range packs {
		price := fmt.Sprintf("%d coins", def.Price)
		if def.Price == 0 {
			price = "Free"
			if def.CooldownSeconds > 0 {
				price = fmt.Sprintf("Free (every %dh)", def.CooldownSeconds/3600)
			}
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s — %s", def.Name, price),
			Value: def.Description,
		})
		buttons = append(buttons, discordgo.Button{
			Label:    def.Name,
			Style:    discordgo.PrimaryButton,
			CustomID: fmt.Sprintf("shop_%s_%s", def.Key, userID),
		})
	}

	common.RespondEmbedWithComponents(s, i, embed, []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: buttons},
	})
}

// HandleShopButton opens the pack behind a shop button press.
func HandleShopButton(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps, customID string) {
	parts := strings.Split(customID, "_")
	if len(parts) < 3 {
		return
	}
	ownerID := parts[len(parts)-1]
	packKey := strings.Join(parts[1:len(parts)-1], "_")
	userID := i.Member.User.ID

	if userID != ownerID {
		common.RespondEphemeral(s, i, "Those buttons belong to someone else. Run /packs yourself.")
		return
	}

	result, err := deps.Packs.PurchasePack(i.GuildID, userID, packKey)
	if err != nil {
		var funds *models.InsufficientFundsError
		var cooldown *models.CooldownActiveError
		switch {
		case errors.As(err, &funds):
			common.RespondEphemeral(s, i,
				fmt.Sprintf("Not enough coins: that pack costs %d and you have %d (missing %d).",
					funds.Price, funds.Balance, funds.Shortfall()))
		case errors.As(err, &cooldown):
			common.RespondEphemeral(s, i,
				fmt.Sprintf("Your free pack is still on cooldown. Try again in %s.",
					cooldown.Remaining.Round(time.Second)))
		default:
			common.SendError(s, i, err)
		}
		return
	}

	embed := cardEmbed(fmt.Sprintf("%s opened!", result.Pack.Name), result.Card)
	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Balance: %d coins · Collection: %d cards", result.NewBalance, result.CollectionSize),
	}
	common.RespondEmbed(s, i, embed, true)
}
