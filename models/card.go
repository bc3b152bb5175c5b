package models

import "fmt"

// CardType discriminates the two card variants in the catalog.
type CardType string

const (
	CardTypePlayer      CardType = "player"
	CardTypeCollectible CardType = "collectible"
)

// Rarity classifies card desirability, ordered from common to rarest.
type Rarity string

const (
	RarityBasic    Rarity = "Basic"
	RarityAdvanced Rarity = "Advanced"
	RarityElite    Rarity = "Elite"
	RarityLegend   Rarity = "Legend"
	RarityUnique   Rarity = "Unique"
)

// RarityOrder lists all rarities from common to rarest.
func RarityOrder() []Rarity {
	return []Rarity{RarityBasic, RarityAdvanced, RarityElite, RarityLegend, RarityUnique}
}

func (r Rarity) Valid() bool {
	for _, known := range RarityOrder() {
		if r == known {
			return true
		}
	}
	return false
}

// Card is a single catalog entry. Copies of it are stored in user
// collections, so a Card handed out by the drop engine must never share
// mutable state with the catalog.
type Card struct {
	ID       string         `json:"id"`
	Type     CardType       `json:"type"`
	Name     string         `json:"name"`
	Rarity   Rarity         `json:"rarity"`
	Position string         `json:"position,omitempty"`
	Stats    map[string]int `json:"stats"`
	Image    string         `json:"image,omitempty"`
}

// Validate checks the tagged variant rules at catalog load time so malformed
// entries are rejected eagerly rather than at draw time.
func (c Card) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("card has no id")
	}
	if c.Name == "" {
		return fmt.Errorf("card %q has no name", c.ID)
	}
	if !c.Rarity.Valid() {
		return fmt.Errorf("card %q has unknown rarity %q", c.ID, c.Rarity)
	}
	switch c.Type {
	case CardTypePlayer:
		if c.Position == "" {
			return fmt.Errorf("player card %q has no position", c.ID)
		}
		if len(c.Stats) == 0 {
			return fmt.Errorf("player card %q has no stats", c.ID)
		}
	case CardTypeCollectible:
		if len(c.Stats) == 0 {
			return fmt.Errorf("collectible card %q has no stats", c.ID)
		}
	default:
		return fmt.Errorf("card %q has unknown type %q", c.ID, c.Type)
	}
	return nil
}

// Clone returns a deep copy of the card.
func (c Card) Clone() Card {
	out := c
	if c.Stats != nil {
		out.Stats = make(map[string]int, len(c.Stats))
		for k, v := range c.Stats {
			out.Stats[k] = v
		}
	}
	return out
}

// PackDefinition is static pack configuration; it is never persisted.
// DropRates maps rarity to a relative weight. Weights need not sum to 100,
// and a rarity absent from the map (or with weight zero) is never selected.
type PackDefinition struct {
	Key             string
	Name            string
	Price           int
	Description     string
	CooldownSeconds int
	DropRates       map[Rarity]int
	CardFile        string
}
