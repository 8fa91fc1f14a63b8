package session_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/abhilash/crammer/internal/deck"
	"github.com/abhilash/crammer/internal/progress"
	"github.com/abhilash/crammer/internal/quizgen"
	"github.com/abhilash/crammer/internal/session"
)

// Full run over a five-card set, multiple-choice only: generate, answer,
// submit, then derive the per-card deltas the tracker would push.
func TestFiveCardRun(t *testing.T) {
	cards := make([]deck.Card, 5)
	for i := range cards {
		n := strconv.Itoa(i + 1)
		cards[i] = deck.Card{
			ID:    "card-" + n,
			Front: "front " + n,
			Back:  "back " + n,
			MultipleChoice: &deck.MultipleChoice{
				Question: "question " + n,
				Choices:  []string{"right " + n, "wrong " + n},
				Answer:   "right " + n,
			},
		}
	}

	rng := rand.New(rand.NewSource(1))
	questions := quizgen.Build(cards, quizgen.Options{Types: []quizgen.QuestionType{quizgen.TypeMultipleChoice}}, rng)
	if len(questions) != 5 {
		t.Fatalf("Build returned %d questions, want 5", len(questions))
	}

	s := session.New("test-1", "set-1")
	if err := s.Start(questions); err != nil {
		t.Fatalf("start: %v", err)
	}
	for i, q := range questions {
		ans := q.Expected
		if i == 4 {
			ans = q.Options[1]
		}
		if err := s.Answer(i, ans); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
	}

	res, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if res.Correct != 4 || res.Incorrect != 1 {
		t.Errorf("Correct/Incorrect = %d/%d, want 4/1", res.Correct, res.Incorrect)
	}
	if res.Score != 80 {
		t.Errorf("Score = %d, want 80", res.Score)
	}

	incorrect := 0
	for _, q := range s.Questions {
		if !q.IsCorrect {
			incorrect++
		}
	}
	if incorrect != 1 {
		t.Errorf("incorrect-flagged questions = %d, want 1", incorrect)
	}

	deltas := progress.Deltas(s.Questions)
	if len(deltas) != 5 {
		t.Errorf("delta entries = %d, want 5", len(deltas))
	}
	for id, d := range deltas {
		if d.Correct+d.Incorrect != 1 {
			t.Errorf("card %s delta total = %d, want 1", id, d.Correct+d.Incorrect)
		}
	}
}
