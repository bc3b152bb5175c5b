package packService

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreamLeagueBot/config"
	"dreamLeagueBot/models"
	"dreamLeagueBot/services/economyService"
	"dreamLeagueBot/store"
)

func newTestServices(t *testing.T) (*Service, *economyService.Service) {
	t.Helper()
	st, err := store.New(t.TempDir())
	require.NoError(t, err)
	cfg := config.Load()
	cfg.DataDir = st.Dir()
	economy := economyService.New(st, cfg, nil)
	packs, err := New(cfg, economy)
	require.NoError(t, err)
	return packs, economy
}

func TestNewSeedsAndValidatesCatalog(t *testing.T) {
	packs, _ := newTestServices(t)

	for _, key := range []string{"psg_start", config.FreePackKey, "pack_event"} {
		assert.NotEmpty(t, packs.catalog[key], "pack %s should have cards", key)
	}
}

func TestShopPacksExcludesEventPack(t *testing.T) {
	packs, _ := newTestServices(t)

	shop := packs.ShopPacks()
	require.Len(t, shop, 2)
	assert.Equal(t, "psg_start", shop[0].Key, "priced pack comes first")
	assert.Equal(t, config.FreePackKey, shop[1].Key)
}

func TestDrawUnknownPack(t *testing.T) {
	packs, _ := newTestServices(t)

	_, err := packs.Draw("no_such_pack")
	var confErr *models.ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestDrawDistributionTracksWeights(t *testing.T) {
	packs, _ := newTestServices(t)
	def := packs.cfg.Packs["psg_start"]
	pool := packs.catalog["psg_start"]
	rng := rand.New(rand.NewSource(1))

	const draws = 10000
	counts := map[models.Rarity]int{}
	for n := 0; n < draws; n++ {
		card, err := drawFrom(def, pool, rng)
		require.NoError(t, err)
		counts[card.Rarity]++
	}

	assert.InDelta(t, 0.70, float64(counts[models.RarityBasic])/draws, 0.03)
	assert.InDelta(t, 0.25, float64(counts[models.RarityAdvanced])/draws, 0.03)
	assert.InDelta(t, 0.05, float64(counts[models.RarityElite])/draws, 0.03)
	assert.Zero(t, counts[models.RarityUnique], "zero-weight rarity must never drop")
}

func TestDrawFromEmptyPool(t *testing.T) {
	def := models.PackDefinition{Key: "empty", DropRates: map[models.Rarity]int{models.RarityBasic: 100}}
	rng := rand.New(rand.NewSource(1))

	_, err := drawFrom(def, nil, rng)
	var confErr *models.ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}

func TestDrawFromRarityWithoutCards(t *testing.T) {
	def := models.PackDefinition{Key: "broken", DropRates: map[models.Rarity]int{models.RarityLegend: 100}}
	pool := []models.Card{
		{ID: "c1", Type: models.CardTypePlayer, Name: "Striker", Rarity: models.RarityBasic, Position: "ST"},
	}
	rng := rand.New(rand.NewSource(1))

	_, err := drawFrom(def, pool, rng)
	var confErr *models.ConfigurationError
	require.ErrorAs(t, err, &confErr)
	assert.Contains(t, confErr.Reason, "no such cards")
}

func TestPurchasePackDebitsAndDelivers(t *testing.T) {
	packs, economy := newTestServices(t)
	require.NoError(t, economy.SetBalance("g1", "alice", 25))

	result, err := packs.PurchasePack("g1", "alice", "psg_start")
	require.NoError(t, err)
	assert.Equal(t, 0, result.NewBalance)
	assert.Equal(t, 1, result.CollectionSize)
	assert.NotEmpty(t, result.Card.ID)

	rec, err := economy.GetOrCreate("g1", "alice")
	require.NoError(t, err)
	assert.Len(t, rec.Collection, 1)
}

func TestPurchasePackDeclinesOnShortfall(t *testing.T) {
	packs, economy := newTestServices(t)
	require.NoError(t, economy.SetBalance("g1", "alice", 24))

	_, err := packs.PurchasePack("g1", "alice", "psg_start")
	var funds *models.InsufficientFundsError
	require.ErrorAs(t, err, &funds)
	assert.Equal(t, 1, funds.Shortfall())

	rec, err := economy.GetOrCreate("g1", "alice")
	require.NoError(t, err)
	assert.Equal(t, 24, rec.Coins, "declined purchase must not touch the balance")
	assert.Empty(t, rec.Collection, "declined purchase must not deliver a card")
}

func TestGrantCard(t *testing.T) {
	packs, economy := newTestServices(t)

	card, err := packs.GrantCard("g1", "alice", "att_mbappe_legend")
	require.NoError(t, err)
	assert.Equal(t, models.RarityLegend, card.Rarity)

	rec, err := economy.GetOrCreate("g1", "alice")
	require.NoError(t, err)
	require.Len(t, rec.Collection, 1)
	assert.Equal(t, "att_mbappe_legend", rec.Collection[0].ID)
	assert.Equal(t, 10, rec.Coins, "grants are free")
}

func TestGrantUnknownCard(t *testing.T) {
	packs, _ := newTestServices(t)

	_, err := packs.GrantCard("g1", "alice", "nope")
	var confErr *models.ConfigurationError
	assert.ErrorAs(t, err, &confErr)
}
