package packService

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamLeagueBot/config"
	"dreamLeagueBot/models"
	"dreamLeagueBot/services/economyService"
	"dreamLeagueBot/store"
)

func newCooldownFixture(t *testing.T) (*Service, *economyService.Service, string) {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	cfg := config.Load()
	cfg.DataDir = st.Dir()
	economy := economyService.New(st, cfg, nil)
	packs, err := New(cfg, economy)
	require.NoError(t, err)
	return packs, economy, st.Dir()
}

func TestFreePackFirstClaimAllowed(t *testing.T) {
	packs, _, _ := newCooldownFixture(t)

	ok, err := packs.CanClaimFreePack("g1", "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	remaining, err := packs.FreePackRemaining("g1", "alice")
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestFreePackCooldownLifecycle(t *testing.T) {
	packs, economy, _ := newCooldownFixture(t)

	result, err := packs.ClaimFreePack("g1", "alice")
	require.NoError(t, err)
	assert.Equal(t, config.FreePackKey, result.Pack.Key)
	assert.Equal(t, 1, result.CollectionSize)
	assert.Equal(t, 10, result.NewBalance, "free pack never charges")

	// Second claim right away is declined with the remaining wait.
	_, err = packs.ClaimFreePack("g1", "alice")
	var cooldown *models.CooldownActiveError
	require.ErrorAs(t, err, &cooldown)
	assert.Greater(t, cooldown.Remaining, 23*time.Hour)

	// Move the clock past the cooldown and claim again.
	packs.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	ok, err := packs.CanClaimFreePack("g1", "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	result, err = packs.ClaimFreePack("g1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, result.CollectionSize)

	rec, err := economy.GetOrCreate("g1", "alice")
	require.NoError(t, err)
	assert.Len(t, rec.Collection, 2)
}

func TestFreePackRemainingFlooredAtZero(t *testing.T) {
	packs, economy, _ := newCooldownFixture(t)

	require.NoError(t, economy.MarkFreePackClaimed("g1", "alice"))
	packs.now = func() time.Time { return time.Now().Add(48 * time.Hour) }

	remaining, err := packs.FreePackRemaining("g1", "alice")
	require.NoError(t, err)
	assert.Zero(t, remaining)
}

func TestUnparseableTimestampFailsOpen(t *testing.T) {
	packs, _, dir := newCooldownFixture(t)

	ledger := map[string]map[string]*models.UserRecord{
		"g1": {"alice": {Coins: 10, Collection: []models.Card{}, LastFreePack: "not-a-timestamp"}},
	}
	raw, err := json.Marshal(ledger)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "economy.json"), raw, 0o644))

	ok, err := packs.CanClaimFreePack("g1", "alice")
	require.NoError(t, err)
	assert.True(t, ok, "a bad timestamp must not lock the user out")

	remaining, err := packs.FreePackRemaining("g1", "alice")
	require.NoError(t, err)
	assert.Zero(t, remaining)
}
