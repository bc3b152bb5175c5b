package economyService

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamLeagueBot/config"
	"dreamLeagueBot/models"
	"dreamLeagueBot/store"
)

type stubGate struct {
	blocked map[string]bool
}

func (g *stubGate) IsNoRewardChannel(guildID, channelID string) bool {
	return g.blocked[channelID]
}

func newTestService(t *testing.T, gate RewardGate) *Service {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	cfg := config.Load()
	return New(st, cfg, gate)
}

func TestGetOrCreateGrantsStartingCoins(t *testing.T) {
	s := newTestService(t, nil)

	rec, err := s.GetOrCreate("g1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 10, rec.Coins)
	assert.Empty(t, rec.Collection)
	assert.Zero(t, rec.Messages)
}

func TestGuildsAreIsolated(t *testing.T) {
	s := newTestService(t, nil)

	_, err := s.Credit("g1", "alice", 50)
	require.NoError(t, err)

	rec, err := s.GetOrCreate("g2", "alice")
	require.NoError(t, err)
	assert.Equal(t, 10, rec.Coins, "same user on another guild keeps the default")
}

func TestCreditAndDebit(t *testing.T) {
	s := newTestService(t, nil)

	balance, err := s.Credit("g1", "alice", 15)
	require.NoError(t, err)
	assert.Equal(t, 25, balance)

	balance, err = s.Debit("g1", "alice", 25)
	require.NoError(t, err)
	assert.Equal(t, 0, balance)
}

func TestDebitNeverGoesNegative(t *testing.T) {
	s := newTestService(t, nil)

	_, err := s.Debit("g1", "alice", 11)
	var funds *models.InsufficientFundsError
	require.ErrorAs(t, err, &funds)
	assert.Equal(t, 11, funds.Price)
	assert.Equal(t, 10, funds.Balance)
	assert.Equal(t, 1, funds.Shortfall())

	rec, err := s.GetOrCreate("g1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 10, rec.Coins, "declined debit must not change the balance")
}

func TestNegativeAmountsRejected(t *testing.T) {
	s := newTestService(t, nil)

	_, err := s.Credit("g1", "alice", -1)
	assert.ErrorIs(t, err, models.ErrNegativeAmount)

	_, err = s.Debit("g1", "alice", -1)
	assert.ErrorIs(t, err, models.ErrNegativeAmount)

	err = s.SetBalance("g1", "alice", -1)
	assert.ErrorIs(t, err, models.ErrNegativeAmount)
}

func TestSetBalanceOverwrites(t *testing.T) {
	s := newTestService(t, nil)

	require.NoError(t, s.SetBalance("g1", "alice", 500))
	rec, err := s.GetOrCreate("g1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 500, rec.Coins)
}

func TestHandleMessageRewardsEveryQualifyingMessage(t *testing.T) {
	s := newTestService(t, nil)

	require.NoError(t, s.HandleMessage("g1", "alice", "c1", 20))

	rec, err := s.GetOrCreate("g1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, rec.Messages)
	assert.Equal(t, 11, rec.Coins)
}

func TestHandleMessageIgnoresShortMessages(t *testing.T) {
	s := newTestService(t, nil)

	require.NoError(t, s.HandleMessage("g1", "alice", "c1", 5))

	rec, err := s.GetOrCreate("g1", "alice")
	require.NoError(t, err)
	assert.Zero(t, rec.Messages)
	assert.Equal(t, 10, rec.Coins)
}

func TestHandleMessageHonorsNoRewardChannels(t *testing.T) {
	gate := &stubGate{blocked: map[string]bool{"quiet": true}}
	s := newTestService(t, gate)

	require.NoError(t, s.HandleMessage("g1", "alice", "quiet", 50))

	rec, err := s.GetOrCreate("g1", "alice")
	require.NoError(t, err)
	assert.Zero(t, rec.Messages)
	assert.Equal(t, 10, rec.Coins)
}

func TestHandleMessageRewardInterval(t *testing.T) {
	s := newTestService(t, nil)
	s.cfg.CoinsPerMessageInt = 3

	for n := 0; n < 7; n++ {
		require.NoError(t, s.HandleMessage("g1", "alice", "c1", 20))
	}

	rec, err := s.GetOrCreate("g1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 7, rec.Messages)
	assert.Equal(t, 12, rec.Coins, "two coins for messages 3 and 6")
}

func TestAddCardAndGroupedCollection(t *testing.T) {
	s := newTestService(t, nil)
	card := models.Card{ID: "c1", Type: models.CardTypePlayer, Name: "Striker", Rarity: models.RarityBasic, Position: "ST"}

	size, err := s.AddCard("g1", "alice", card)
	require.NoError(t, err)
	assert.Equal(t, 1, size)

	size, err = s.AddCard("g1", "alice", card)
	require.NoError(t, err)
	assert.Equal(t, 2, size)

	grouped, err := s.GroupedCollection("g1", "alice")
	require.NoError(t, err)
	require.Len(t, grouped, 1)
	assert.Equal(t, 2, grouped["c1"].Count)
	assert.Equal(t, "Striker", grouped["c1"].Card.Name)
}

func TestMarkFreePackClaimedStampsNow(t *testing.T) {
	s := newTestService(t, nil)
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	require.NoError(t, s.MarkFreePackClaimed("g1", "alice"))

	stamp, err := s.FreePackClaimedAt("g1", "alice")
	require.NoError(t, err)
	assert.Equal(t, fixed.Format(time.RFC3339), stamp)
}
