// Package scheduler runs the minute-resolution polling loop that decides
// when a guild's trivia event fires.
package scheduler

import (
	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"

	"dreamLeagueBot/services"
)

// SetupCron starts the polling schedule. Every minute each connected guild
// is checked; a guild whose spawn time has passed gets its event started.
func SetupCron(s *discordgo.Session, deps *services.Deps) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("* * * * *", func() {
		pollGuilds(s, deps)
	})
	if err != nil {
		log.Fatalf("Could not register minigame poll: %v", err)
	}

	c.Start()
	log.Info("Scheduler started")
	return c
}

func pollGuilds(s *discordgo.Session, deps *services.Deps) {
	for _, guild := range s.State.Guilds {
		due, err := deps.Minigame.PollDue(guild.ID)
		if err != nil {
			log.Errorf("Minigame poll failed for guild %s: %v", guild.ID, err)
			continue
		}
		if !due {
			continue
		}
		log.Infof("Minigame due on guild %s, spawning", guild.ID)
		services.SpawnMinigame(s, deps, guild.ID)
	}
}
