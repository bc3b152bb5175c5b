package minigameService

import (
	"sync"
	"time"
)

// RoundState is the lifecycle of a trivia round.
type RoundState int

const (
	RoundActive RoundState = iota
	RoundWon
	RoundTimedOut
)

// Outcome classifies what a submission meant for the submitter.
type Outcome int

const (
	OutcomeWinner Outcome = iota
	OutcomeTooSlow
	OutcomeIncorrect
	OutcomeAlreadyAnswered
	OutcomeClosed
)

// SubmitResult is returned to the command layer for rendering.
type SubmitResult struct {
	Accepted bool
	Correct  bool
	IsWinner bool
	Outcome  Outcome
}

// Round is a single timed trivia round. All submissions funnel through one
// mutex so two simultaneous correct answers can never both win: the winner
// slot is a check-and-set under the lock.
type Round struct {
	GuildID   string
	ChannelID string
	Question  Question

	mu       sync.Mutex
	state    RoundState
	winnerID string
	answered map[string]bool
	done     chan struct{}
	timer    *time.Timer
}

func newRound(guildID, channelID string, q Question) *Round {
	return &Round{
		GuildID:   guildID,
		ChannelID: channelID,
		Question:  q,
		answered:  make(map[string]bool),
		done:      make(chan struct{}),
	}
}

// Submit records one participant's answer. Each participant gets exactly one
// attempt; repeats are rejected with no state change.
func (r *Round) Submit(userID string, answerIndex int) SubmitResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == RoundTimedOut {
		return SubmitResult{Outcome: OutcomeClosed}
	}
	if r.answered[userID] {
		return SubmitResult{Outcome: OutcomeAlreadyAnswered}
	}
	r.answered[userID] = true

	if answerIndex != r.Question.Correct {
		return SubmitResult{Accepted: true, Outcome: OutcomeIncorrect}
	}
	if r.state == RoundActive {
		r.state = RoundWon
		r.winnerID = userID
		if r.timer != nil {
			r.timer.Stop()
		}
		close(r.done)
		return SubmitResult{Accepted: true, Correct: true, IsWinner: true, Outcome: OutcomeWinner}
	}
	// Correct, but someone got there first.
	return SubmitResult{Accepted: true, Correct: true, Outcome: OutcomeTooSlow}
}

// timeOut transitions an active round to TimedOut. Returns false if the
// round already ended.
func (r *Round) timeOut() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != RoundActive {
		return false
	}
	r.state = RoundTimedOut
	close(r.done)
	return true
}

func (r *Round) arm(timeout time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.timer = time.AfterFunc(timeout, func() { r.timeOut() })
}

// State returns the current round state.
func (r *Round) State() RoundState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Winner returns the winner's user ID, if any.
func (r *Round) Winner() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.winnerID, r.state == RoundWon
}

// Done closes when the round reaches a terminal state (won or timed out).
func (r *Round) Done() <-chan struct{} {
	return r.done
}

// CorrectAnswer is the text of the right option, for the timeout reveal.
func (r *Round) CorrectAnswer() string {
	return r.Question.Answers[r.Question.Correct]
}
