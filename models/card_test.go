package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardValidate(t *testing.T) {
	player := Card{
		ID:       "p1",
		Type:     CardTypePlayer,
		Name:     "Striker",
		Rarity:   RarityBasic,
		Position: "Forward",
		Stats:    map[string]int{"shooting": 80},
	}
	collectible := Card{
		ID:     "c1",
		Type:   CardTypeCollectible,
		Name:   "Trophy",
		Rarity: RarityUnique,
		Stats:  map[string]int{"prestige": 100},
	}

	tests := []struct {
		name    string
		mutate  func(c Card) Card
		card    Card
		wantErr bool
	}{
		{name: "valid player", card: player},
		{name: "valid collectible", card: collectible},
		{name: "missing id", card: player, mutate: func(c Card) Card { c.ID = ""; return c }, wantErr: true},
		{name: "missing name", card: player, mutate: func(c Card) Card { c.Name = ""; return c }, wantErr: true},
		{name: "unknown rarity", card: player, mutate: func(c Card) Card { c.Rarity = "Mythic"; return c }, wantErr: true},
		{name: "unknown type", card: player, mutate: func(c Card) Card { c.Type = "sticker"; return c }, wantErr: true},
		{name: "player without position", card: player, mutate: func(c Card) Card { c.Position = ""; return c }, wantErr: true},
		{name: "player without stats", card: player, mutate: func(c Card) Card { c.Stats = nil; return c }, wantErr: true},
		{name: "collectible without stats", card: collectible, mutate: func(c Card) Card { c.Stats = nil; return c }, wantErr: true},
		{name: "collectible without position is fine", card: collectible, mutate: func(c Card) Card { c.Position = ""; return c }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := tt.card
			if tt.mutate != nil {
				card = tt.mutate(card)
			}
			err := card.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCardCloneIsDeep(t *testing.T) {
	card := Card{ID: "p1", Type: CardTypePlayer, Name: "Striker", Rarity: RarityBasic, Position: "ST", Stats: map[string]int{"shooting": 80}}

	clone := card.Clone()
	clone.Stats["shooting"] = 1

	assert.Equal(t, 80, card.Stats["shooting"])
}

func TestUserRecordCloneIsDeep(t *testing.T) {
	rec := UserRecord{
		Coins:      10,
		Collection: []Card{{ID: "p1", Stats: map[string]int{"shooting": 80}}},
	}

	clone := rec.Clone()
	clone.Collection[0].Stats["shooting"] = 1
	clone.Collection = append(clone.Collection, Card{ID: "p2"})

	assert.Equal(t, 80, rec.Collection[0].Stats["shooting"])
	assert.Len(t, rec.Collection, 1)
}
