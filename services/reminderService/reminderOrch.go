// Package reminderService drives the repeating per-guild announcement. One
// shared loop announces for every enabled guild, then sleeps for the
// minimum configured interval; interval or enable changes wake the sleep
// immediately so a stale interval never has to run out first.
package reminderService

import (
	"context"
	"errors"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"dreamLeagueBot/models"
	"dreamLeagueBot/store"
)

const reminderDomain = "reminder_config"

// configDoc is the on-disk shape: guild ID -> reminder configuration.
type configDoc map[string]*models.ReminderConfig

const defaultIntervalHours = 6.0

// ErrNoChannel is returned when enabling reminders for a guild that has no
// announcement channel configured yet.
var ErrNoChannel = errors.New("no reminder channel configured")

// ErrIntervalTooShort rejects intervals below one minute.
var ErrIntervalTooShort = errors.New("interval must be at least one minute")

// Announcer performs the announcement action for one guild. Delivery
// failures are its own concern; the loop only logs them.
type Announcer func(guildID string, cfg models.ReminderConfig) error

type Service struct {
	store *store.Store
	wake  chan struct{}
}

func New(st *store.Store) *Service {
	return &Service{
		store: st,
		wake:  make(chan struct{}, 1),
	}
}

func (s *Service) update(guildID string, fn func(cfg *models.ReminderConfig)) error {
	doc := configDoc{}
	return s.store.Update(reminderDomain, &doc, func() error {
		cfg, ok := doc[guildID]
		if !ok {
			cfg = &models.ReminderConfig{IntervalHours: defaultIntervalHours}
			doc[guildID] = cfg
		}
		fn(cfg)
		return nil
	})
}

// Config returns the guild's reminder configuration.
func (s *Service) Config(guildID string) (models.ReminderConfig, bool, error) {
	doc := configDoc{}
	if err := s.store.Load(reminderDomain, &doc); err != nil {
		return models.ReminderConfig{}, false, err
	}
	cfg, ok := doc[guildID]
	if !ok {
		return models.ReminderConfig{}, false, nil
	}
	return *cfg, true, nil
}

// SetChannel sets the announcement channel.
func (s *Service) SetChannel(guildID, channelID string) error {
	return s.update(guildID, func(cfg *models.ReminderConfig) {
		cfg.ChannelID = channelID
	})
}

// SetDiscussionChannel sets the optional channel the announcement points to.
func (s *Service) SetDiscussionChannel(guildID, channelID string) error {
	return s.update(guildID, func(cfg *models.ReminderConfig) {
		cfg.DiscussionChannelID = channelID
	})
}

// SetInterval changes the reminder interval and wakes the loop so the new
// minimum takes effect immediately.
func (s *Service) SetInterval(guildID string, hours float64) error {
	if hours*60 < 1 {
		return ErrIntervalTooShort
	}
	err := s.update(guildID, func(cfg *models.ReminderConfig) {
		cfg.IntervalHours = hours
	})
	if err != nil {
		return err
	}
	s.wakeUp()
	return nil
}

// Enable turns reminders on for a guild with a configured channel and wakes
// the loop.
func (s *Service) Enable(guildID string) error {
	var missing bool
	err := s.update(guildID, func(cfg *models.ReminderConfig) {
		if cfg.ChannelID == "" {
			missing = true
			return
		}
		cfg.Enabled = true
	})
	if err != nil {
		return err
	}
	if missing {
		return ErrNoChannel
	}
	s.wakeUp()
	return nil
}

// Disable turns reminders off. It takes effect on the next natural cycle;
// no wake is needed.
func (s *Service) Disable(guildID string) error {
	return s.update(guildID, func(cfg *models.ReminderConfig) {
		cfg.Enabled = false
	})
}

// Remove drops the guild's reminder configuration entirely.
func (s *Service) Remove(guildID string) error {
	doc := configDoc{}
	return s.store.Update(reminderDomain, &doc, func() error {
		delete(doc, guildID)
		return nil
	})
}

// EnabledConfigs returns every enabled guild's configuration, in stable
// guild-ID order.
func (s *Service) EnabledConfigs() ([]string, map[string]models.ReminderConfig, error) {
	doc := configDoc{}
	if err := s.store.Load(reminderDomain, &doc); err != nil {
		return nil, nil, err
	}
	out := make(map[string]models.ReminderConfig)
	var ids []string
	for guildID, cfg := range doc {
		if cfg != nil && cfg.Enabled {
			out[guildID] = *cfg
			ids = append(ids, guildID)
		}
	}
	sort.Strings(ids)
	return ids, out, nil
}

// SleepInterval is the minimum interval across all enabled guilds, falling
// back to the default when none are enabled.
func (s *Service) SleepInterval() time.Duration {
	min := time.Duration(defaultIntervalHours * float64(time.Hour))
	_, configs, err := s.EnabledConfigs()
	if err != nil {
		return min
	}
	for _, cfg := range configs {
		d := time.Duration(cfg.IntervalHours * float64(time.Hour))
		if d < min {
			min = d
		}
	}
	return min
}

// wakeUp interrupts the current sleep without blocking.
func (s *Service) wakeUp() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run is the shared reminder loop. Each cycle announces for every enabled
// guild, then sleeps for the minimum enabled interval. The sleep ends early
// on a configuration wake or context cancellation.
func (s *Service) Run(ctx context.Context, announce Announcer) {
	log.Info("Reminder loop started")
	for {
		ids, configs, err := s.EnabledConfigs()
		if err != nil {
			log.Errorf("Could not load reminder configs: %v", err)
		}
		for _, guildID := range ids {
			if err := announce(guildID, configs[guildID]); err != nil {
				log.Errorf("Reminder delivery failed for guild %s: %v", guildID, err)
			}
		}

		interval := s.SleepInterval()
		log.Debugf("Next reminder cycle in %s", interval)
		select {
		case <-ctx.Done():
			log.Info("Reminder loop shutting down")
			return
		case <-s.wake:
			log.Debug("Reminder sleep interrupted by configuration change")
		case <-time.After(interval):
		}
	}
}
