// Package economyService is the coin-and-collection ledger. Every operation
// is scoped to (guild, user) and performs a full read-modify-write against
// the economy document; the store serializes those per domain.
package economyService

import (
	"time"

	log "github.com/sirupsen/logrus"

	"dreamLeagueBot/config"
	"dreamLeagueBot/models"
	"dreamLeagueBot/store"
)

const economyDomain = "economy"

// ledger is the on-disk shape: guild ID -> user ID -> record.
type ledger map[string]map[string]*models.UserRecord

// RewardGate reports whether a channel is excluded from message rewards.
type RewardGate interface {
	IsNoRewardChannel(guildID, channelID string) bool
}

type Service struct {
	store *store.Store
	cfg   *config.Config
	gate  RewardGate
	now   func() time.Time
}

func New(st *store.Store, cfg *config.Config, gate RewardGate) *Service {
	return &Service{store: st, cfg: cfg, gate: gate, now: time.Now}
}

func (s *Service) defaultRecord() *models.UserRecord {
	return &models.UserRecord{
		Coins:      s.cfg.CoinsOnJoin,
		Collection: []models.Card{},
	}
}

// ensure returns the record for (guild, user) inside doc, synthesizing the
// default lazily. Absence of a record is never an error.
func (s *Service) ensure(doc ledger, guildID, userID string) *models.UserRecord {
	guild, ok := doc[guildID]
	if !ok {
		guild = make(map[string]*models.UserRecord)
		doc[guildID] = guild
	}
	rec, ok := guild[userID]
	if !ok {
		rec = s.defaultRecord()
		guild[userID] = rec
	}
	return rec
}

// GetOrCreate returns the user's record, creating and persisting the default
// (starting grant, empty collection) on first access.
func (s *Service) GetOrCreate(guildID, userID string) (models.UserRecord, error) {
	var out models.UserRecord
	doc := ledger{}
	err := s.store.Update(economyDomain, &doc, func() error {
		out = s.ensure(doc, guildID, userID).Clone()
		return nil
	})
	return out, err
}

// Credit adds amount to the balance and returns the new balance.
func (s *Service) Credit(guildID, userID string, amount int) (int, error) {
	if amount < 0 {
		return 0, models.ErrNegativeAmount
	}
	var balance int
	doc := ledger{}
	err := s.store.Update(economyDomain, &doc, func() error {
		rec := s.ensure(doc, guildID, userID)
		rec.Coins += amount
		balance = rec.Coins
		return nil
	})
	return balance, err
}

// Debit subtracts amount if the balance covers it. On a shortfall it returns
// an InsufficientFundsError and leaves the record untouched; the balance
// never goes negative.
func (s *Service) Debit(guildID, userID string, amount int) (int, error) {
	if amount < 0 {
		return 0, models.ErrNegativeAmount
	}
	var balance int
	doc := ledger{}
	err := s.store.Update(economyDomain, &doc, func() error {
		rec := s.ensure(doc, guildID, userID)
		if rec.Coins < amount {
			return &models.InsufficientFundsError{Price: amount, Balance: rec.Coins}
		}
		rec.Coins -= amount
		balance = rec.Coins
		return nil
	})
	return balance, err
}

// SetBalance overwrites the balance unconditionally.
func (s *Service) SetBalance(guildID, userID string, amount int) error {
	if amount < 0 {
		return models.ErrNegativeAmount
	}
	doc := ledger{}
	return s.store.Update(economyDomain, &doc, func() error {
		s.ensure(doc, guildID, userID).Coins = amount
		return nil
	})
}

// AddCard appends a copy of card to the collection (duplicates permitted)
// and returns the new collection size.
func (s *Service) AddCard(guildID, userID string, card models.Card) (int, error) {
	var size int
	doc := ledger{}
	err := s.store.Update(economyDomain, &doc, func() error {
		rec := s.ensure(doc, guildID, userID)
		rec.Collection = append(rec.Collection, card.Clone())
		size = len(rec.Collection)
		return nil
	})
	return size, err
}

// GroupedCollection aggregates duplicate holdings by card ID.
func (s *Service) GroupedCollection(guildID, userID string) (map[string]models.CardHolding, error) {
	rec, err := s.GetOrCreate(guildID, userID)
	if err != nil {
		return nil, err
	}
	grouped := make(map[string]models.CardHolding)
	for _, card := range rec.Collection {
		holding, ok := grouped[card.ID]
		if !ok {
			holding = models.CardHolding{Card: card}
		}
		holding.Count++
		grouped[card.ID] = holding
	}
	return grouped, nil
}

// FreePackClaimedAt returns the raw last-claim timestamp, empty if never.
func (s *Service) FreePackClaimedAt(guildID, userID string) (string, error) {
	rec, err := s.GetOrCreate(guildID, userID)
	if err != nil {
		return "", err
	}
	return rec.LastFreePack, nil
}

// MarkFreePackClaimed stamps the record with the current time. It does not
// grant a card; that is a separate draw by the caller.
func (s *Service) MarkFreePackClaimed(guildID, userID string) error {
	doc := ledger{}
	return s.store.Update(economyDomain, &doc, func() error {
		s.ensure(doc, guildID, userID).LastFreePack = s.now().Format(time.RFC3339)
		return nil
	})
}

// HandleMessage is the fire-and-forget chat hook: it counts qualifying
// messages and credits one coin every Nth. Messages in no-reward channels or
// below the minimum length never count.
func (s *Service) HandleMessage(guildID, userID, channelID string, messageLength int) error {
	if messageLength < s.cfg.MinMessageLength {
		return nil
	}
	if s.gate != nil && s.gate.IsNoRewardChannel(guildID, channelID) {
		return nil
	}

	doc := ledger{}
	return s.store.Update(economyDomain, &doc, func() error {
		rec := s.ensure(doc, guildID, userID)
		rec.Messages++
		if rec.Messages%s.cfg.CoinsPerMessageInt == 0 {
			rec.Coins++
			log.Debugf("User %s earned 1 coin on guild %s (message %d)", userID, guildID, rec.Messages)
		}
		return nil
	})
}
