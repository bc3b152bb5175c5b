package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"dreamLeagueBot/services/common"
	"dreamLeagueBot/services/minigameService"
)

// SetMinigameChannel configures where the trivia event spawns and shows when
// the next one is due. Admin only.
func SetMinigameChannel(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps) {
	if !common.IsAdmin(i, deps.Guilds) {
		common.RespondEphemeral(s, i, "You do not have permission to do that.")
		return
	}

	opts := optionMap(i)
	channel := opts["channel"].ChannelValue(s)

	if err := deps.Minigame.SetChannel(i.GuildID, channel.ID); err != nil {
		common.SendError(s, i, err)
		return
	}
	next, err := deps.Minigame.NextSpawnTime(i.GuildID)
	if err != nil {
		common.SendError(s, i, err)
		return
	}

	common.RespondEphemeral(s, i, fmt.Sprintf(
		"Trivia events will spawn in <#%s>. Next event: <t:%d:F>.", channel.ID, next.Unix()))
}

// SpawnMinigame starts a trivia round in the guild's event channel, posts the
// question with answer buttons, and waits out the round in the background.
func SpawnMinigame(s *discordgo.Session, deps *Deps, guildID string) {
	round, err := deps.Minigame.StartRound(guildID)
	if err != nil {
		log.Errorf("Could not start minigame on guild %s: %v", guildID, err)
		return
	}

	var buttons []discordgo.MessageComponent
	for idx, answer := range round.Question.Answers {
		buttons = append(buttons, discordgo.Button{
			Label:    answer,
			Style:    discordgo.SecondaryButton,
			CustomID: fmt.Sprintf("minigame_answer_%d", idx),
		})
	}
	embed := &discordgo.MessageEmbed{
		Title:       "Trivia Event!",
		Description: round.Question.Text,
		Color:       common.ColorGold,
		Footer: &discordgo.MessageEmbedFooter{
			Text: "First correct answer wins a special pack. One attempt each!",
		},
	}
	_, err = s.ChannelMessageSendComplex(round.ChannelID, &discordgo.MessageSend{
		Embeds: []*discordgo.MessageEmbed{embed},
		Components: []discordgo.MessageComponent{
			discordgo.ActionsRow{Components: buttons},
		},
	})
	if err != nil {
		log.Errorf("Could not post minigame question on guild %s: %v", guildID, err)
	}

	go func() {
		result, err := deps.Minigame.Conclude(round)
		if err != nil {
			log.Errorf("Minigame conclusion failed on guild %s: %v", guildID, err)
			return
		}
		announceRoundResult(s, round, result)
	}()
}

func announceRoundResult(s *discordgo.Session, round *minigameService.Round, result *minigameService.RoundResult) {
	if result.State == minigameService.RoundWon {
		if result.Reward != nil {
			embed := cardEmbed(fmt.Sprintf("We have a winner: congratulations <@%s>!", result.WinnerID), *result.Reward)
			embed.Description = fmt.Sprintf("<@%s> answered first and wins this card.", result.WinnerID)
			_, err := s.ChannelMessageSendEmbed(round.ChannelID, embed)
			if err != nil {
				log.Errorf("Could not announce minigame winner on guild %s: %v", round.GuildID, err)
			}
			return
		}
		_, err := s.ChannelMessageSend(round.ChannelID,
			fmt.Sprintf("<@%s> answered first! The reward could not be drawn; an admin should check the logs.", result.WinnerID))
		if err != nil {
			log.Errorf("Could not announce minigame winner on guild %s: %v", round.GuildID, err)
		}
		return
	}

	_, err := s.ChannelMessageSend(round.ChannelID,
		fmt.Sprintf("Time's up! Nobody found the right answer: **%s**.", result.CorrectAnswer))
	if err != nil {
		log.Errorf("Could not announce minigame timeout on guild %s: %v", round.GuildID, err)
	}
}

// HandleMinigameAnswer records one participant's button press.
func HandleMinigameAnswer(s *discordgo.Session, i *discordgo.InteractionCreate, deps *Deps, customID string) {
	idx, err := strconv.Atoi(strings.TrimPrefix(customID, "minigame_answer_"))
	if err != nil {
		return
	}

	result, err := deps.Minigame.SubmitAnswer(i.GuildID, i.Member.User.ID, idx)
	if err != nil {
		common.RespondEphemeral(s, i, "That round is already over.")
		return
	}

	switch result.Outcome {
	case minigameService.OutcomeWinner:
		common.RespondEphemeral(s, i, "Correct! You win this round.")
	case minigameService.OutcomeTooSlow:
		common.RespondEphemeral(s, i, "Correct, but someone beat you to it.")
	case minigameService.OutcomeIncorrect:
		common.RespondEphemeral(s, i, "Wrong answer. Better luck next time!")
	case minigameService.OutcomeAlreadyAnswered:
		common.RespondEphemeral(s, i, "You already used your attempt for this round.")
	case minigameService.OutcomeClosed:
		common.RespondEphemeral(s, i, "That round is already over.")
	}
}
