// Package minigameService runs the timed trivia event: a per-guild state
// machine that persists the next spawn time inside a randomized window,
// gates the polling loop, and plays a single round with exactly one winner.
package minigameService

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"dreamLeagueBot/config"
	"dreamLeagueBot/models"
	"dreamLeagueBot/services/economyService"
	"dreamLeagueBot/services/packService"
	"dreamLeagueBot/store"
)

const minigameDomain = "event_state"

// stateDoc is the on-disk shape: guild ID -> scheduling state.
type stateDoc map[string]*models.MinigameState

type Service struct {
	store   *store.Store
	cfg     *config.Config
	packs   *packService.Service
	economy *economyService.Service

	now func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand

	mu     sync.Mutex
	active map[string]*Round
}

// RoundResult is the terminal outcome of one round.
type RoundResult struct {
	State         RoundState
	WinnerID      string
	Reward        *models.Card
	CorrectAnswer string
}

func New(st *store.Store, cfg *config.Config, packs *packService.Service, economy *economyService.Service) *Service {
	return &Service{
		store:   st,
		cfg:     cfg,
		packs:   packs,
		economy: economy,
		now:     time.Now,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		active:  make(map[string]*Round),
	}
}

// SetChannel configures (or clears, with an empty ID) the guild's event
// channel. A guild without a channel is never polled into a round.
func (s *Service) SetChannel(guildID, channelID string) error {
	doc := stateDoc{}
	return s.store.Update(minigameDomain, &doc, func() error {
		state, ok := doc[guildID]
		if !ok {
			state = &models.MinigameState{}
			doc[guildID] = state
		}
		state.ChannelID = channelID
		return nil
	})
}

// Channel returns the configured event channel, empty if none.
func (s *Service) Channel(guildID string) (string, error) {
	doc := stateDoc{}
	if err := s.store.Load(minigameDomain, &doc); err != nil {
		return "", err
	}
	state, ok := doc[guildID]
	if !ok {
		return "", nil
	}
	return state.ChannelID, nil
}

// NextSpawnTime returns the stored spawn time, computing and persisting one
// only if the guild has never been scheduled. Repeated reads return the same
// value: the spawn time is never recomputed opportunistically.
func (s *Service) NextSpawnTime(guildID string) (time.Time, error) {
	var next time.Time
	doc := stateDoc{}
	err := s.store.Update(minigameDomain, &doc, func() error {
		state, ok := doc[guildID]
		if !ok {
			state = &models.MinigameState{}
			doc[guildID] = state
		}
		if state.NextSpawn == nil {
			t := s.randomSpawnTime()
			state.NextSpawn = &t
		}
		next = *state.NextSpawn
		return nil
	})
	return next, err
}

// ScheduleNext unconditionally recomputes the spawn time and records the
// current time as the last spawn. It runs exactly once per concluded round.
func (s *Service) ScheduleNext(guildID string) (time.Time, error) {
	var next time.Time
	doc := stateDoc{}
	err := s.store.Update(minigameDomain, &doc, func() error {
		state, ok := doc[guildID]
		if !ok {
			state = &models.MinigameState{}
			doc[guildID] = state
		}
		t := s.randomSpawnTime()
		nowT := s.now()
		state.NextSpawn = &t
		state.LastSpawn = &nowT
		next = t
		return nil
	})
	return next, err
}

// randomSpawnTime picks now + random(minDays, maxDays), at a uniformly
// random hour within [StartHour, EndHour) and minute within [0, 59].
func (s *Service) randomSpawnTime() time.Time {
	mg := s.cfg.Minigame

	s.rngMu.Lock()
	days := mg.MinIntervalDays + s.rng.Intn(mg.MaxIntervalDays-mg.MinIntervalDays+1)
	hour := mg.StartHour + s.rng.Intn(mg.EndHour-mg.StartHour)
	minute := s.rng.Intn(60)
	s.rngMu.Unlock()

	t := s.now().AddDate(0, 0, days)
	return time.Date(t.Year(), t.Month(), t.Day(), hour, minute, 0, 0, t.Location())
}

// PollDue is the polling-loop gate: due only when a channel is configured,
// no round is in flight, and the stored spawn time has passed.
func (s *Service) PollDue(guildID string) (bool, error) {
	channelID, err := s.Channel(guildID)
	if err != nil {
		return false, err
	}
	if channelID == "" {
		return false, nil
	}

	s.mu.Lock()
	_, running := s.active[guildID]
	s.mu.Unlock()
	if running {
		return false, nil
	}

	next, err := s.NextSpawnTime(guildID)
	if err != nil {
		return false, err
	}
	return !s.now().Before(next), nil
}

// StartRound registers a new active round for the guild and arms its
// timeout. At most one round per guild may be in flight.
func (s *Service) StartRound(guildID string) (*Round, error) {
	channelID, err := s.Channel(guildID)
	if err != nil {
		return nil, err
	}
	if channelID == "" {
		return nil, &models.ConfigurationError{Reason: fmt.Sprintf("guild %s has no minigame channel", guildID)}
	}

	s.rngMu.Lock()
	question := questionBank[s.rng.Intn(len(questionBank))]
	s.rngMu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, running := s.active[guildID]; running {
		return nil, fmt.Errorf("guild %s already has an active round", guildID)
	}
	round := newRound(guildID, channelID, question)
	s.active[guildID] = round
	round.arm(s.cfg.Minigame.Timeout)
	return round, nil
}

// ActiveRound returns the in-flight round for a guild, if any.
func (s *Service) ActiveRound(guildID string) (*Round, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	round, ok := s.active[guildID]
	return round, ok
}

// SubmitAnswer routes a participant's answer to the guild's active round.
func (s *Service) SubmitAnswer(guildID, userID string, answerIndex int) (SubmitResult, error) {
	round, ok := s.ActiveRound(guildID)
	if !ok {
		return SubmitResult{Outcome: OutcomeClosed}, fmt.Errorf("guild %s has no active round", guildID)
	}
	return round.Submit(userID, answerIndex), nil
}

// Conclude blocks until the round ends, awards the winner (if any) one draw
// from the event pack, schedules the next spawn exactly once, and releases
// the guild for future polls.
func (s *Service) Conclude(round *Round) (*RoundResult, error) {
	<-round.Done()

	result := &RoundResult{
		State:         round.State(),
		CorrectAnswer: round.CorrectAnswer(),
	}

	if winnerID, won := round.Winner(); won {
		result.WinnerID = winnerID
		card, err := s.packs.Draw(s.cfg.Minigame.RewardPack)
		if err != nil {
			log.Errorf("Minigame reward draw failed for guild %s: %v", round.GuildID, err)
		} else if _, err := s.economy.AddCard(round.GuildID, winnerID, card); err != nil {
			log.Errorf("Could not add minigame reward to %s on guild %s: %v", winnerID, round.GuildID, err)
		} else {
			result.Reward = &card
		}
	}

	if _, err := s.ScheduleNext(round.GuildID); err != nil {
		log.Errorf("Could not schedule next minigame for guild %s: %v", round.GuildID, err)
	}

	s.mu.Lock()
	delete(s.active, round.GuildID)
	s.mu.Unlock()

	return result, nil
}
