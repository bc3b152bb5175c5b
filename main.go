package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"dreamLeagueBot/config"
	"dreamLeagueBot/scheduler"
	"dreamLeagueBot/services"
	"dreamLeagueBot/services/economyService"
	"dreamLeagueBot/services/guildService"
	"dreamLeagueBot/services/minigameService"
	"dreamLeagueBot/services/packService"
	"dreamLeagueBot/services/reminderService"
	"dreamLeagueBot/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, relying on process environment")
	}

	cfg := config.Load()
	if cfg.Token == "" {
		log.Fatal("DISCORD_BOT_TOKEN is not set")
	}

	st, err := store.New(cfg.DataDir)
	if err != nil {
		log.Fatalf("Could not open data store: %v", err)
	}

	guilds := guildService.New(st)
	economy := economyService.New(st, cfg, guilds)
	packs, err := packService.New(cfg, economy)
	if err != nil {
		log.Fatalf("Card catalog failed to load: %v", err)
	}
	minigame := minigameService.New(st, cfg, packs, economy)
	reminders := reminderService.New(st)

	deps := &services.Deps{
		Config:    cfg,
		Economy:   economy,
		Packs:     packs,
		Guilds:    guilds,
		Minigame:  minigame,
		Reminders: reminders,
	}

	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatalf("Could not create Discord session: %v", err)
	}

	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Infof("Logged in as %s", s.State.User.Username)
		if err := s.UpdateGameStatus(0, "/packs"); err != nil {
			log.Errorf("Could not set status: %v", err)
		}
	})

	dg.AddHandler(func(s *discordgo.Session, g *discordgo.GuildCreate) {
		if _, err := guilds.GetOrCreate(g.ID, g.Name); err != nil {
			log.Errorf("Could not bootstrap guild %s: %v", g.ID, err)
		}
	})

	dg.AddHandler(func(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
		if m.User.Bot {
			return
		}
		if _, err := economy.GetOrCreate(m.GuildID, m.User.ID); err != nil {
			log.Errorf("Could not create record for joining member %s: %v", m.User.ID, err)
		}
	})

	dg.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot || m.GuildID == "" {
			return
		}
		err := economy.HandleMessage(m.GuildID, m.Author.ID, m.ChannelID, len(m.Content))
		if err != nil {
			log.Errorf("Message reward failed for %s: %v", m.Author.ID, err)
		}
	})

	dg.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			services.HandleSlashCommand(s, i, deps)
		case discordgo.InteractionMessageComponent:
			services.HandleComponentInteraction(s, i, deps)
		}
	})

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildMembers

	if err := dg.Open(); err != nil {
		log.Fatalf("Could not connect to Discord: %v", err)
	}
	defer dg.Close()

	if err := services.RegisterCommands(dg); err != nil {
		log.Fatalf("Could not register commands: %v", err)
	}

	cronRunner := scheduler.SetupCron(dg, deps)
	defer cronRunner.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go reminders.Run(ctx, services.BuildAnnouncer(dg))

	log.Info("Bot is running. Press CTRL-C to exit.")
	<-ctx.Done()
	log.Info("Shutting down")
}
