package packService

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"dreamLeagueBot/models"
)

// loadCatalog reads every pack's card file from dir, seeding the default
// catalog on first run, and validates each pool eagerly: tagged variant
// rules, unique IDs, and at least one card for every positive-weight rarity
// so draws can't dead-end on a rarity/pool mismatch.
func loadCatalog(dir string, packs map[string]models.PackDefinition) (map[string][]models.Card, error) {
	if err := seedDefaultCatalog(dir); err != nil {
		return nil, err
	}

	catalog := make(map[string][]models.Card, len(packs))
	for key, def := range packs {
		path := filepath.Join(dir, def.CardFile)
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading card file for pack %q: %w", key, err)
		}
		var cards []models.Card
		if err := json.Unmarshal(raw, &cards); err != nil {
			return nil, fmt.Errorf("parsing card file for pack %q: %w", key, err)
		}
		if err := validatePool(def, cards); err != nil {
			return nil, err
		}
		catalog[key] = cards
		log.Infof("Loaded pack %q: %d cards", key, len(cards))
	}
	return catalog, nil
}

func validatePool(def models.PackDefinition, pool []models.Card) error {
	seen := make(map[string]bool, len(pool))
	byRarity := make(map[models.Rarity]int)
	for _, card := range pool {
		if err := card.Validate(); err != nil {
			return &models.ConfigurationError{Reason: fmt.Sprintf("pack %q: %v", def.Key, err)}
		}
		if seen[card.ID] {
			return &models.ConfigurationError{Reason: fmt.Sprintf("pack %q: duplicate card id %q", def.Key, card.ID)}
		}
		seen[card.ID] = true
		byRarity[card.Rarity]++
	}
	total := 0
	for rarity, weight := range def.DropRates {
		if weight <= 0 {
			continue
		}
		total += weight
		if byRarity[rarity] == 0 {
			return &models.ConfigurationError{Reason: fmt.Sprintf("pack %q: rarity %s has weight %d but no cards", def.Key, rarity, weight)}
		}
	}
	if total <= 0 {
		return &models.ConfigurationError{Reason: fmt.Sprintf("pack %q has no positive drop weights", def.Key)}
	}
	return nil
}

// seedDefaultCatalog writes the built-in card files for any that are
// missing, so a fresh deployment works without hand-authored data.
func seedDefaultCatalog(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating packs dir: %w", err)
	}
	for filename, cards := range defaultCatalog() {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		raw, err := json.MarshalIndent(cards, "", "    ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, raw, 0o644); err != nil {
			return fmt.Errorf("seeding %s: %w", filename, err)
		}
		log.Infof("Seeded default card file %s", filename)
	}
	return nil
}

func defaultCatalog() map[string][]models.Card {
	return map[string][]models.Card{
		"psg_start.json": {
			{ID: "gk_donnarumma_basic", Type: models.CardTypePlayer, Name: "Gianluigi Donnarumma 24/25", Rarity: models.RarityBasic, Position: "Goalkeeper", Stats: map[string]int{"physical": 83, "agility": 85, "saves": 85}},
			{ID: "def_hakimi_basic", Type: models.CardTypePlayer, Name: "Achraf Hakimi 24/25 Home", Rarity: models.RarityBasic, Position: "Defender", Stats: map[string]int{"intellect": 83, "pressure": 83, "physical": 85}},
			{ID: "def_mendes_basic", Type: models.CardTypePlayer, Name: "Nuno Mendes 25/26 Home", Rarity: models.RarityBasic, Position: "Defender", Stats: map[string]int{"intellect": 83, "pressure": 85, "physical": 83}},
			{ID: "mid_vitinha_basic", Type: models.CardTypePlayer, Name: "Vitinha 25/26 Fourth", Rarity: models.RarityBasic, Position: "Midfielder", Stats: map[string]int{"technique": 83, "intellect": 84, "control": 85}},
			{ID: "att_dembele_basic", Type: models.CardTypePlayer, Name: "Ousmane Dembele 25/26 Home", Rarity: models.RarityBasic, Position: "Forward", Stats: map[string]int{"shooting": 83, "technique": 86, "control": 85}},
			{ID: "gk_donnarumma_adv", Type: models.CardTypePlayer, Name: "Gianluigi Donnarumma 24/25", Rarity: models.RarityAdvanced, Position: "Goalkeeper", Stats: map[string]int{"physical": 86, "agility": 88, "saves": 88}},
			{ID: "mid_vitinha_adv", Type: models.CardTypePlayer, Name: "Vitinha 25/26 Fourth", Rarity: models.RarityAdvanced, Position: "Midfielder", Stats: map[string]int{"technique": 86, "intellect": 87, "control": 88}},
			{ID: "def_hakimi_elite", Type: models.CardTypePlayer, Name: "Achraf Hakimi 24/25 Home", Rarity: models.RarityElite, Position: "Defender", Stats: map[string]int{"intellect": 89, "pressure": 90, "physical": 91}},
			{ID: "att_dembele_elite", Type: models.CardTypePlayer, Name: "Ousmane Dembele 25/26 Home", Rarity: models.RarityElite, Position: "Forward", Stats: map[string]int{"shooting": 89, "technique": 92, "control": 91}},
			{ID: "coll_enrique", Type: models.CardTypeCollectible, Name: "Luis Enrique", Rarity: models.RarityUnique, Stats: map[string]int{"prestige": 95, "year": 2024, "scarcity": 99}},
			{ID: "coll_ucl", Type: models.CardTypeCollectible, Name: "The Champions League 2024/2025", Rarity: models.RarityUnique, Stats: map[string]int{"prestige": 100, "year": 2025, "scarcity": 100}},
		},
		"free_pack.json": {
			{ID: "gk_tenas_basic", Type: models.CardTypePlayer, Name: "Arnau Tenas 24/25", Rarity: models.RarityBasic, Position: "Goalkeeper", Stats: map[string]int{"physical": 71, "agility": 75, "saves": 72}},
			{ID: "mid_zaire_basic", Type: models.CardTypePlayer, Name: "Warren Zaire-Emery 25/26", Rarity: models.RarityBasic, Position: "Midfielder", Stats: map[string]int{"technique": 79, "intellect": 80, "control": 81}},
			{ID: "att_barcola_basic", Type: models.CardTypePlayer, Name: "Bradley Barcola 25/26 Home", Rarity: models.RarityBasic, Position: "Forward", Stats: map[string]int{"shooting": 80, "technique": 82, "control": 81}},
			{ID: "def_beraldo_adv", Type: models.CardTypePlayer, Name: "Lucas Beraldo 25/26", Rarity: models.RarityAdvanced, Position: "Defender", Stats: map[string]int{"intellect": 82, "pressure": 83, "physical": 84}},
			{ID: "mid_neves_adv", Type: models.CardTypePlayer, Name: "Joao Neves 25/26 Home", Rarity: models.RarityAdvanced, Position: "Midfielder", Stats: map[string]int{"technique": 85, "intellect": 86, "control": 86}},
		},
		"pack_event.json": {
			{ID: "att_dembele_event", Type: models.CardTypePlayer, Name: "Ousmane Dembele 25/26 Home", Rarity: models.RarityElite, Position: "Forward", Stats: map[string]int{"shooting": 89, "technique": 92, "control": 91}},
			{ID: "mid_vitinha_event", Type: models.CardTypePlayer, Name: "Vitinha 25/26 Fourth", Rarity: models.RarityElite, Position: "Midfielder", Stats: map[string]int{"technique": 90, "intellect": 91, "control": 92}},
			{ID: "gk_donnarumma_legend", Type: models.CardTypePlayer, Name: "Gianluigi Donnarumma UCL Final", Rarity: models.RarityLegend, Position: "Goalkeeper", Stats: map[string]int{"physical": 93, "agility": 95, "saves": 96}},
			{ID: "att_mbappe_legend", Type: models.CardTypePlayer, Name: "Kylian Mbappe 23/24 Icon", Rarity: models.RarityLegend, Position: "Forward", Stats: map[string]int{"shooting": 96, "technique": 95, "control": 95}},
		},
	}
}
