package minigameService

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestion() Question {
	return Question{
		Text:    "Which answer is right?",
		Answers: []string{"wrong", "right", "also wrong", "nope"},
		Correct: 1,
	}
}

func TestFirstCorrectAnswerWins(t *testing.T) {
	r := newRound("g1", "c1", testQuestion())

	result := r.Submit("alice", 1)
	assert.True(t, result.IsWinner)
	assert.Equal(t, OutcomeWinner, result.Outcome)

	winner, won := r.Winner()
	assert.True(t, won)
	assert.Equal(t, "alice", winner)
	assert.Equal(t, RoundWon, r.State())

	select {
	case <-r.Done():
	default:
		t.Fatal("done channel should be closed after a win")
	}
}

func TestSecondCorrectAnswerIsTooSlow(t *testing.T) {
	r := newRound("g1", "c1", testQuestion())

	r.Submit("alice", 1)
	result := r.Submit("bob", 1)

	assert.True(t, result.Correct)
	assert.False(t, result.IsWinner)
	assert.Equal(t, OutcomeTooSlow, result.Outcome)

	winner, _ := r.Winner()
	assert.Equal(t, "alice", winner)
}

func TestIncorrectAnswerNeverWins(t *testing.T) {
	r := newRound("g1", "c1", testQuestion())

	result := r.Submit("alice", 0)
	assert.Equal(t, OutcomeIncorrect, result.Outcome)
	assert.False(t, result.IsWinner)

	_, won := r.Winner()
	assert.False(t, won)
	assert.Equal(t, RoundActive, r.State())
}

func TestOneAttemptPerParticipant(t *testing.T) {
	r := newRound("g1", "c1", testQuestion())

	r.Submit("alice", 0)
	result := r.Submit("alice", 1)

	assert.Equal(t, OutcomeAlreadyAnswered, result.Outcome)
	_, won := r.Winner()
	assert.False(t, won, "a second attempt must not win even if correct")
}

func TestConcurrentCorrectAnswersHaveExactlyOneWinner(t *testing.T) {
	r := newRound("g1", "c1", testQuestion())

	const players = 50
	results := make([]SubmitResult, players)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for n := 0; n < players; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			<-start
			results[n] = r.Submit(string(rune('a'+n%26))+string(rune('0'+n/26)), 1)
		}(n)
	}
	close(start)
	wg.Wait()

	winners := 0
	for _, result := range results {
		if result.IsWinner {
			winners++
		} else if result.Correct {
			assert.Equal(t, OutcomeTooSlow, result.Outcome)
		}
	}
	assert.Equal(t, 1, winners)
}

func TestTimeoutClosesRound(t *testing.T) {
	r := newRound("g1", "c1", testQuestion())
	r.arm(10 * time.Millisecond)

	select {
	case <-r.Done():
	case <-time.After(time.Second):
		t.Fatal("round did not time out")
	}

	assert.Equal(t, RoundTimedOut, r.State())
	result := r.Submit("alice", 1)
	assert.Equal(t, OutcomeClosed, result.Outcome)
	_, won := r.Winner()
	assert.False(t, won)
}

func TestWinStopsTimeout(t *testing.T) {
	r := newRound("g1", "c1", testQuestion())
	r.arm(20 * time.Millisecond)

	result := r.Submit("alice", 1)
	require.True(t, result.IsWinner)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, RoundWon, r.State(), "timeout must not overwrite a win")
}

func TestCorrectAnswerText(t *testing.T) {
	r := newRound("g1", "c1", testQuestion())
	assert.Equal(t, "right", r.CorrectAnswer())
}
