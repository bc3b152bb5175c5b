// Package guildService manages per-guild configuration: command channel
// allow-lists, admin/moderator role lists, the log channel and the
// no-reward channel set. Each guild's config is its own JSON document.
package guildService

import (
	"dreamLeagueBot/models"
	"dreamLeagueBot/store"
)

type Service struct {
	store *store.Store
}

func New(st *store.Store) *Service {
	return &Service{store: st}
}

func domain(guildID string) string {
	return "servers/" + guildID
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func remove(list []string, v string) ([]string, bool) {
	for i, item := range list {
		if item == v {
			return append(list[:i], list[i+1:]...), true
		}
	}
	return list, false
}

// update runs one read-modify-write on a guild's config document,
// synthesizing the default config first if the guild is unknown.
func (s *Service) update(guildID string, fn func(cfg *models.GuildConfig) error) error {
	cfg := &models.GuildConfig{}
	return s.store.Update(domain(guildID), cfg, func() error {
		if cfg.GuildID == "" {
			*cfg = *models.NewGuildConfig(guildID, "")
		}
		return fn(cfg)
	})
}

// GetOrCreate returns the guild's config, writing the default on first sight.
func (s *Service) GetOrCreate(guildID, guildName string) (*models.GuildConfig, error) {
	cfg := &models.GuildConfig{}
	err := s.store.Update(domain(guildID), cfg, func() error {
		if cfg.GuildID == "" {
			*cfg = *models.NewGuildConfig(guildID, guildName)
		} else if guildName != "" && cfg.GuildName != guildName {
			cfg.GuildName = guildName
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// get returns the stored config without creating it. ok is false when the
// guild has never been configured.
func (s *Service) get(guildID string) (*models.GuildConfig, bool) {
	cfg := &models.GuildConfig{}
	if err := s.store.Load(domain(guildID), cfg); err != nil {
		return nil, false
	}
	if cfg.GuildID == "" {
		return nil, false
	}
	return cfg, true
}

// AddCommandChannel allows a command in a channel. Returns false if the
// channel was already listed.
func (s *Service) AddCommandChannel(guildID, command, channelID string) (bool, error) {
	added := false
	err := s.update(guildID, func(cfg *models.GuildConfig) error {
		if cfg.Channels == nil {
			cfg.Channels = map[string][]string{}
		}
		if !contains(cfg.Channels[command], channelID) {
			cfg.Channels[command] = append(cfg.Channels[command], channelID)
			added = true
		}
		return nil
	})
	return added, err
}

// RemoveCommandChannel removes a channel from a command's allow-list.
func (s *Service) RemoveCommandChannel(guildID, command, channelID string) (bool, error) {
	removed := false
	err := s.update(guildID, func(cfg *models.GuildConfig) error {
		cfg.Channels[command], removed = remove(cfg.Channels[command], channelID)
		return nil
	})
	return removed, err
}

// AllowedChannels lists the channels a command may run in. Empty means
// "everywhere".
func (s *Service) AllowedChannels(guildID, command string) []string {
	cfg, ok := s.get(guildID)
	if !ok {
		return nil
	}
	return cfg.Channels[command]
}

// IsChannelAllowed applies the allow-list rule: an unconfigured guild or an
// empty list allows the command everywhere.
func (s *Service) IsChannelAllowed(guildID, command, channelID string) bool {
	allowed := s.AllowedChannels(guildID, command)
	if len(allowed) == 0 {
		return true
	}
	return contains(allowed, channelID)
}

// AddRole grants a role a permission tier ("admin" or "moderator").
func (s *Service) AddRole(guildID, tier, roleID string) (bool, error) {
	added := false
	err := s.update(guildID, func(cfg *models.GuildConfig) error {
		if cfg.Roles == nil {
			cfg.Roles = map[string][]string{}
		}
		if !contains(cfg.Roles[tier], roleID) {
			cfg.Roles[tier] = append(cfg.Roles[tier], roleID)
			added = true
		}
		return nil
	})
	return added, err
}

// RemoveRole revokes a role from a permission tier.
func (s *Service) RemoveRole(guildID, tier, roleID string) (bool, error) {
	removed := false
	err := s.update(guildID, func(cfg *models.GuildConfig) error {
		cfg.Roles[tier], removed = remove(cfg.Roles[tier], roleID)
		return nil
	})
	return removed, err
}

// AllowedRoles lists the roles granted a permission tier.
func (s *Service) AllowedRoles(guildID, tier string) []string {
	cfg, ok := s.get(guildID)
	if !ok {
		return nil
	}
	return cfg.Roles[tier]
}

// HasConfiguredRole reports whether any of roleIDs is granted the tier.
// With no roles configured it returns false and the caller falls back to
// native permissions.
func (s *Service) HasConfiguredRole(guildID, tier string, roleIDs []string) bool {
	allowed := s.AllowedRoles(guildID, tier)
	for _, id := range roleIDs {
		if contains(allowed, id) {
			return true
		}
	}
	return false
}

// SetLogChannel designates the guild's log channel.
func (s *Service) SetLogChannel(guildID, channelID string) error {
	return s.update(guildID, func(cfg *models.GuildConfig) error {
		cfg.LogChannelID = channelID
		return nil
	})
}

// LogChannel returns the configured log channel, empty if none.
func (s *Service) LogChannel(guildID string) string {
	cfg, ok := s.get(guildID)
	if !ok {
		return ""
	}
	return cfg.LogChannelID
}

// AddNoRewardChannel suppresses message rewards in a channel.
func (s *Service) AddNoRewardChannel(guildID, channelID string) (bool, error) {
	added := false
	err := s.update(guildID, func(cfg *models.GuildConfig) error {
		if !contains(cfg.NoRewardChannels, channelID) {
			cfg.NoRewardChannels = append(cfg.NoRewardChannels, channelID)
			added = true
		}
		return nil
	})
	return added, err
}

// RemoveNoRewardChannel re-enables message rewards in a channel.
func (s *Service) RemoveNoRewardChannel(guildID, channelID string) (bool, error) {
	removed := false
	err := s.update(guildID, func(cfg *models.GuildConfig) error {
		cfg.NoRewardChannels, removed = remove(cfg.NoRewardChannels, channelID)
		return nil
	})
	return removed, err
}

// IsNoRewardChannel implements economyService.RewardGate.
func (s *Service) IsNoRewardChannel(guildID, channelID string) bool {
	cfg, ok := s.get(guildID)
	if !ok {
		return false
	}
	return contains(cfg.NoRewardChannels, channelID)
}
