package progress

import (
	"context"
	"errors"
	"testing"

	"github.com/abhilash/crammer/internal/quizgen"
	"github.com/abhilash/crammer/internal/session"
)

type cardUpdate struct {
	cardID    string
	correct   int
	incorrect int
}

type fakeBackend struct {
	cardUpdates []cardUpdate
	scores      []int
	cardErr     error
	scoreErr    error
}

func (f *fakeBackend) UpdateCardProgress(_ context.Context, cardID string, correct, incorrect int) error {
	if f.cardErr != nil {
		return f.cardErr
	}
	f.cardUpdates = append(f.cardUpdates, cardUpdate{cardID, correct, incorrect})
	return nil
}

func (f *fakeBackend) UpdateSetScore(_ context.Context, _ string, score int) error {
	if f.scoreErr != nil {
		return f.scoreErr
	}
	f.scores = append(f.scores, score)
	return nil
}

func TestDeltasAccumulatePerCard(t *testing.T) {
	questions := []*quizgen.Question{
		{CardID: "c1", IsCorrect: true},
		{CardID: "c1", IsCorrect: false},
		{CardID: "c2", IsCorrect: true},
	}

	deltas := Deltas(questions)
	if len(deltas) != 2 {
		t.Fatalf("len(deltas) = %d, want 2", len(deltas))
	}
	if d := deltas["c1"]; d.Correct != 1 || d.Incorrect != 1 {
		t.Errorf("deltas[c1] = %+v, want {1 1}", d)
	}
	if d := deltas["c2"]; d.Correct != 1 || d.Incorrect != 0 {
		t.Errorf("deltas[c2] = %+v, want {1 0}", d)
	}
}

func TestPublish(t *testing.T) {
	backend := &fakeBackend{}
	tracker := NewTracker(backend)

	// Five cards, four correct: score 80.
	var questions []*quizgen.Question
	for i, correct := range []bool{true, true, true, true, false} {
		questions = append(questions, &quizgen.Question{
			CardID:    string(rune('a' + i)),
			IsCorrect: correct,
		})
	}
	result := &session.Result{Correct: 4, Incorrect: 1, Total: 5, Score: 80, HasScore: true}

	report := tracker.Publish(context.Background(), "set-1", questions, result)
	if !report.Ok() {
		t.Fatalf("report errors: %v", report.Err())
	}

	if len(backend.cardUpdates) != 5 {
		t.Fatalf("len(cardUpdates) = %d, want 5", len(backend.cardUpdates))
	}
	// One update per card, sorted by card ID.
	for i, u := range backend.cardUpdates {
		wantID := string(rune('a' + i))
		if u.cardID != wantID {
			t.Errorf("cardUpdates[%d].cardID = %q, want %q", i, u.cardID, wantID)
		}
	}
	if u := backend.cardUpdates[4]; u.correct != 0 || u.incorrect != 1 {
		t.Errorf("cardUpdates[4] = %+v, want {0 1}", u)
	}

	if len(backend.scores) != 1 || backend.scores[0] != 80 {
		t.Errorf("scores = %v, want [80]", backend.scores)
	}
}

func TestPublishSkipsScoreWithoutOne(t *testing.T) {
	backend := &fakeBackend{}
	tracker := NewTracker(backend)

	report := tracker.Publish(context.Background(), "set-1", nil, &session.Result{})
	if !report.Ok() {
		t.Fatalf("report errors: %v", report.Err())
	}
	if len(backend.scores) != 0 {
		t.Errorf("scores = %v, want none for a scoreless result", backend.scores)
	}
}

func TestPublishCollectsFailures(t *testing.T) {
	backend := &fakeBackend{cardErr: errors.New("backend down")}
	tracker := NewTracker(backend)

	questions := []*quizgen.Question{
		{CardID: "c1", IsCorrect: true},
		{CardID: "c2", IsCorrect: false},
	}
	result := &session.Result{Correct: 1, Incorrect: 1, Total: 2, Score: 50, HasScore: true}

	report := tracker.Publish(context.Background(), "set-1", questions, result)
	if report.Ok() {
		t.Fatal("expected failures in report")
	}
	// Both card updates failed; the score update still ran.
	if len(report.Errors) != 2 {
		t.Errorf("len(report.Errors) = %d, want 2", len(report.Errors))
	}
	if len(backend.scores) != 1 {
		t.Errorf("scores = %v, want the score pushed despite card failures", backend.scores)
	}
}

func TestPublishOverride(t *testing.T) {
	backend := &fakeBackend{}
	tracker := NewTracker(backend)

	result := &session.Result{Correct: 3, Incorrect: 0, Total: 3, Score: 100, HasScore: true}
	report := tracker.PublishOverride(context.Background(), "set-1", "c3", result)
	if !report.Ok() {
		t.Fatalf("report errors: %v", report.Err())
	}

	if len(backend.cardUpdates) != 1 {
		t.Fatalf("len(cardUpdates) = %d, want 1", len(backend.cardUpdates))
	}
	if u := backend.cardUpdates[0]; u.cardID != "c3" || u.correct != 1 || u.incorrect != -1 {
		t.Errorf("cardUpdates[0] = %+v, want {c3 1 -1}", u)
	}
	if len(backend.scores) != 1 || backend.scores[0] != 100 {
		t.Errorf("scores = %v, want [100]", backend.scores)
	}
}

// TestOverrideNetContribution walks the full flow: a submit publishes the
// initial deltas, a later override publishes the adjustment, and the card's
// net contribution across both passes flips from {2 correct, 1 incorrect}
// to {3 correct, 0 incorrect}.
func TestOverrideNetContribution(t *testing.T) {
	backend := &fakeBackend{}
	tracker := NewTracker(backend)
	ctx := context.Background()

	questions := []*quizgen.Question{
		{CardID: "c1", IsCorrect: true},
		{CardID: "c1", IsCorrect: true},
		{CardID: "c1", IsCorrect: false},
	}
	submitResult := &session.Result{Correct: 2, Incorrect: 1, Total: 3, Score: 67, HasScore: true}
	if report := tracker.Publish(ctx, "set-1", questions, submitResult); !report.Ok() {
		t.Fatalf("publish: %v", report.Err())
	}

	overrideResult := &session.Result{Correct: 3, Incorrect: 0, Total: 3, Score: 100, HasScore: true}
	if report := tracker.PublishOverride(ctx, "set-1", "c1", overrideResult); !report.Ok() {
		t.Fatalf("publish override: %v", report.Err())
	}

	var net cardUpdate
	for _, u := range backend.cardUpdates {
		if u.cardID != "c1" {
			t.Fatalf("unexpected card %q", u.cardID)
		}
		net.correct += u.correct
		net.incorrect += u.incorrect
	}
	if net.correct != 3 || net.incorrect != 0 {
		t.Errorf("net contribution = {%d %d}, want {3 0}", net.correct, net.incorrect)
	}
	if got := backend.scores[len(backend.scores)-1]; got != 100 {
		t.Errorf("final score = %d, want 100", got)
	}
}
