package config

import (
	"os"
	"strconv"
	"time"

	"dreamLeagueBot/models"
)

// MinigameConfig tunes the trivia event scheduler and round.
type MinigameConfig struct {
	MinIntervalDays int
	MaxIntervalDays int
	StartHour       int
	EndHour         int
	Timeout         time.Duration
	RewardPack      string
}

// Config carries everything the bot needs at runtime. It is built once in
// main and passed to every service explicitly.
type Config struct {
	Token   string
	DataDir string

	CoinsOnJoin        int
	CoinsPerMessageInt int
	MinMessageLength   int

	Packs    map[string]models.PackDefinition
	Minigame MinigameConfig
}

const (
	defaultDataDir          = "data"
	defaultCoinsOnJoin      = 10
	defaultRewardInterval   = 1
	defaultMinMessageLength = 10
	freePackCooldownSeconds = 86400
)

// Load reads environment overrides on top of the built-in defaults.
// The .env file itself is loaded by main via godotenv before this runs.
func Load() *Config {
	cfg := &Config{
		Token:              os.Getenv("DISCORD_BOT_TOKEN"),
		DataDir:            defaultDataDir,
		CoinsOnJoin:        defaultCoinsOnJoin,
		CoinsPerMessageInt: defaultRewardInterval,
		MinMessageLength:   defaultMinMessageLength,
		Packs:              defaultPacks(),
		Minigame: MinigameConfig{
			MinIntervalDays: 4,
			MaxIntervalDays: 7,
			StartHour:       7,
			EndHour:         24,
			Timeout:         30 * time.Second,
			RewardPack:      "pack_event",
		},
	}

	if dir := os.Getenv("DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	if v := os.Getenv("COINS_ON_JOIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.CoinsOnJoin = n
		}
	}
	if v := os.Getenv("COINS_PER_MESSAGE_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CoinsPerMessageInt = n
		}
	}
	if v := os.Getenv("MIN_MESSAGE_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MinMessageLength = n
		}
	}

	return cfg
}

// FreePackKey identifies the cooldown-gated free pack.
const FreePackKey = "free_pack"

func defaultPacks() map[string]models.PackDefinition {
	return map[string]models.PackDefinition{
		"psg_start": {
			Key:         "psg_start",
			Name:        "PSG Start",
			Price:       25,
			Description: "Base set of current-season players, up to Elite rarity.",
			CardFile:    "psg_start.json",
			DropRates: map[models.Rarity]int{
				models.RarityBasic:    70,
				models.RarityAdvanced: 25,
				models.RarityElite:    5,
				models.RarityUnique:   0,
			},
		},
		FreePackKey: {
			Key:             FreePackKey,
			Name:            "Daily Pack",
			Price:           0,
			Description:     "Free pack available every 24 hours, up to Advanced rarity.",
			CardFile:        "free_pack.json",
			CooldownSeconds: freePackCooldownSeconds,
			DropRates: map[models.Rarity]int{
				models.RarityBasic:    85,
				models.RarityAdvanced: 15,
			},
		},
		"pack_event": {
			Key:         "pack_event",
			Name:        "Event Pack",
			Price:       0,
			Description: "Exclusive minigame reward pack.",
			CardFile:    "pack_event.json",
			DropRates: map[models.Rarity]int{
				models.RarityElite:  60,
				models.RarityLegend: 40,
			},
		},
	}
}
