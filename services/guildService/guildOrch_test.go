package guildService

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamLeagueBot/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	return New(st)
}

func TestGetOrCreateBootstrapsDefaults(t *testing.T) {
	s := newTestService(t)

	cfg, err := s.GetOrCreate("g1", "Test Guild")
	require.NoError(t, err)
	assert.Equal(t, "g1", cfg.GuildID)
	assert.Equal(t, "Test Guild", cfg.GuildName)

	// Second sighting with a renamed guild updates the name only.
	cfg, err = s.GetOrCreate("g1", "Renamed")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", cfg.GuildName)
}

func TestEmptyAllowListAllowsEverywhere(t *testing.T) {
	s := newTestService(t)

	assert.True(t, s.IsChannelAllowed("g1", "balance", "anywhere"))
}

func TestCommandChannelAllowList(t *testing.T) {
	s := newTestService(t)

	added, err := s.AddCommandChannel("g1", "balance", "c1")
	require.NoError(t, err)
	assert.True(t, added)

	added, err = s.AddCommandChannel("g1", "balance", "c1")
	require.NoError(t, err)
	assert.False(t, added, "duplicate adds are rejected")

	assert.True(t, s.IsChannelAllowed("g1", "balance", "c1"))
	assert.False(t, s.IsChannelAllowed("g1", "balance", "c2"))
	assert.True(t, s.IsChannelAllowed("g1", "packs", "c2"), "other commands stay unrestricted")

	removed, err := s.RemoveCommandChannel("g1", "balance", "c1")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.True(t, s.IsChannelAllowed("g1", "balance", "c2"), "emptied list re-allows everywhere")
}

func TestRoleTiers(t *testing.T) {
	s := newTestService(t)

	added, err := s.AddRole("g1", "admin", "r1")
	require.NoError(t, err)
	assert.True(t, added)

	assert.True(t, s.HasConfiguredRole("g1", "admin", []string{"r1", "r9"}))
	assert.False(t, s.HasConfiguredRole("g1", "admin", []string{"r9"}))
	assert.False(t, s.HasConfiguredRole("g1", "moderator", []string{"r1"}))

	removed, err := s.RemoveRole("g1", "admin", "r1")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, s.HasConfiguredRole("g1", "admin", []string{"r1"}))
}

func TestNoRewardChannels(t *testing.T) {
	s := newTestService(t)

	assert.False(t, s.IsNoRewardChannel("g1", "c1"))

	added, err := s.AddNoRewardChannel("g1", "c1")
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, s.IsNoRewardChannel("g1", "c1"))
	assert.False(t, s.IsNoRewardChannel("g2", "c1"), "suppression is per guild")

	removed, err := s.RemoveNoRewardChannel("g1", "c1")
	require.NoError(t, err)
	assert.True(t, removed)
	assert.False(t, s.IsNoRewardChannel("g1", "c1"))
}

func TestLogChannel(t *testing.T) {
	s := newTestService(t)

	assert.Empty(t, s.LogChannel("g1"))
	require.NoError(t, s.SetLogChannel("g1", "c-log"))
	assert.Equal(t, "c-log", s.LogChannel("g1"))
}
