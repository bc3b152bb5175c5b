// Package packService owns the pack catalog and the randomized-reward
// engine: weighted rarity draws, the free-pack cooldown gate, and the
// purchase/claim/grant flows that feed drawn cards into the ledger.
package packService

import (
	"fmt"
	"math/rand"
	"path/filepath"
	"sync"
	"time"

	"dreamLeagueBot/config"
	"dreamLeagueBot/models"
	"dreamLeagueBot/services/economyService"
)

type Service struct {
	cfg     *config.Config
	economy *economyService.Service
	catalog map[string][]models.Card

	rngMu sync.Mutex
	rng   *rand.Rand

	now func() time.Time
}

// OpenResult is what the command layer renders after a pack is opened.
type OpenResult struct {
	Pack           models.PackDefinition
	Card           models.Card
	NewBalance     int
	CollectionSize int
}

// New loads and validates the card catalog. A broken catalog is fatal at
// startup rather than at draw time.
func New(cfg *config.Config, economy *economyService.Service) (*Service, error) {
	catalog, err := loadCatalog(filepath.Join(cfg.DataDir, "packs"), cfg.Packs)
	if err != nil {
		return nil, err
	}
	return &Service{
		cfg:     cfg,
		economy: economy,
		catalog: catalog,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}, nil
}

// Definition resolves a pack key.
func (s *Service) Definition(packKey string) (models.PackDefinition, error) {
	def, ok := s.cfg.Packs[packKey]
	if !ok {
		return models.PackDefinition{}, &models.ConfigurationError{Reason: fmt.Sprintf("unknown pack %q", packKey)}
	}
	return def, nil
}

// ShopPacks lists the packs shown in the shop, free pack last.
func (s *Service) ShopPacks() []models.PackDefinition {
	var out []models.PackDefinition
	for key, def := range s.cfg.Packs {
		if key == s.cfg.Minigame.RewardPack {
			continue
		}
		out = append(out, def)
	}
	// Stable order: priced packs before the free one, then by key.
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			a, b := out[i], out[j]
			if (a.Price < b.Price) || (a.Price == b.Price && a.Key > b.Key) {
				out[i], out[j] = b, a
			}
		}
	}
	return out
}

// Draw produces exactly one card from the pack's pool via a weighted rarity
// roll. It has no side effect on balances or collections.
func (s *Service) Draw(packKey string) (models.Card, error) {
	def, err := s.Definition(packKey)
	if err != nil {
		return models.Card{}, err
	}
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return drawFrom(def, s.catalog[packKey], s.rng)
}

// drawFrom picks a rarity proportionally to its weight, then a card of that
// rarity uniformly. A rarity with cards missing from the pool is a
// configuration error, not a silent reroll over the whole pool.
func drawFrom(def models.PackDefinition, pool []models.Card, rng *rand.Rand) (models.Card, error) {
	if len(pool) == 0 {
		return models.Card{}, &models.ConfigurationError{Reason: fmt.Sprintf("pack %q has no cards", def.Key)}
	}

	total := 0
	for _, rarity := range models.RarityOrder() {
		if w := def.DropRates[rarity]; w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return models.Card{}, &models.ConfigurationError{Reason: fmt.Sprintf("pack %q has no positive drop weights", def.Key)}
	}

	roll := rng.Intn(total)
	var chosen models.Rarity
	for _, rarity := range models.RarityOrder() {
		w := def.DropRates[rarity]
		if w <= 0 {
			continue
		}
		if roll < w {
			chosen = rarity
			break
		}
		roll -= w
	}

	var matching []models.Card
	for _, card := range pool {
		if card.Rarity == chosen {
			matching = append(matching, card)
		}
	}
	if len(matching) == 0 {
		return models.Card{}, &models.ConfigurationError{Reason: fmt.Sprintf("pack %q drew rarity %s but has no such cards", def.Key, chosen)}
	}
	return matching[rng.Intn(len(matching))].Clone(), nil
}

// PurchasePack debits the pack price and adds one drawn card to the
// buyer's collection. Insufficient funds decline the purchase with no
// mutation at all.
func (s *Service) PurchasePack(guildID, userID, packKey string) (*OpenResult, error) {
	if packKey == config.FreePackKey {
		return s.ClaimFreePack(guildID, userID)
	}
	def, err := s.Definition(packKey)
	if err != nil {
		return nil, err
	}

	card, err := s.Draw(packKey)
	if err != nil {
		return nil, err
	}
	balance, err := s.economy.Debit(guildID, userID, def.Price)
	if err != nil {
		return nil, err
	}
	size, err := s.economy.AddCard(guildID, userID, card)
	if err != nil {
		return nil, err
	}
	return &OpenResult{Pack: def, Card: card, NewBalance: balance, CollectionSize: size}, nil
}

// ClaimFreePack opens the cooldown-gated free pack. An active cooldown
// declines the claim with the remaining wait.
func (s *Service) ClaimFreePack(guildID, userID string) (*OpenResult, error) {
	def, err := s.Definition(config.FreePackKey)
	if err != nil {
		return nil, err
	}

	ok, err := s.CanClaimFreePack(guildID, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		remaining, err := s.FreePackRemaining(guildID, userID)
		if err != nil {
			return nil, err
		}
		return nil, &models.CooldownActiveError{Remaining: remaining}
	}

	if err := s.economy.MarkFreePackClaimed(guildID, userID); err != nil {
		return nil, err
	}
	card, err := s.Draw(config.FreePackKey)
	if err != nil {
		return nil, err
	}
	size, err := s.economy.AddCard(guildID, userID, card)
	if err != nil {
		return nil, err
	}
	rec, err := s.economy.GetOrCreate(guildID, userID)
	if err != nil {
		return nil, err
	}
	return &OpenResult{Pack: def, Card: card, NewBalance: rec.Coins, CollectionSize: size}, nil
}

// GrantCard adds a specific catalog card to a user's collection (admin
// operation, no charge).
func (s *Service) GrantCard(guildID, userID, cardID string) (models.Card, error) {
	card, ok := s.FindCard(cardID)
	if !ok {
		return models.Card{}, &models.ConfigurationError{Reason: fmt.Sprintf("card %q is not in the catalog", cardID)}
	}
	if _, err := s.economy.AddCard(guildID, userID, card); err != nil {
		return models.Card{}, err
	}
	return card, nil
}

// FindCard looks a card up by ID across every pack's pool.
func (s *Service) FindCard(cardID string) (models.Card, bool) {
	for _, pool := range s.catalog {
		for _, card := range pool {
			if card.ID == cardID {
				return card.Clone(), true
			}
		}
	}
	return models.Card{}, false
}
