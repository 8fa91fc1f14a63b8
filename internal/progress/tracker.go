package progress

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/abhilash/crammer/internal/quizgen"
	"github.com/abhilash/crammer/internal/session"
)

// Backend is the slice of the remote API the tracker needs. Satisfied by
// api.Client.
type Backend interface {
	// UpdateCardProgress applies a correct/incorrect delta to one card.
	UpdateCardProgress(ctx context.Context, cardID string, correct, incorrect int) error

	// UpdateSetScore records the latest 0-100 test score on the set.
	UpdateSetScore(ctx context.Context, setID string, score int) error
}

// Delta is the accumulated counter change for one card within a session.
type Delta struct {
	Correct   int
	Incorrect int
}

// Deltas folds graded questions into one delta per distinct card. A card
// appearing in several questions accumulates into a single entry, so the
// backend sees one update per card rather than one per question.
func Deltas(questions []*quizgen.Question) map[string]Delta {
	deltas := make(map[string]Delta)
	for _, q := range questions {
		d := deltas[q.CardID]
		if q.IsCorrect {
			d.Correct++
		} else {
			d.Incorrect++
		}
		deltas[q.CardID] = d
	}
	return deltas
}

// Report collects the non-fatal failures of a publish pass. Persistence is
// best effort: partial failure is tolerated, nothing is rolled back, and the
// local session result stays valid regardless.
type Report struct {
	Errors []error
}

// Ok reports whether every update went through.
func (r *Report) Ok() bool {
	return len(r.Errors) == 0
}

// Err returns the joined failures, nil when everything succeeded.
func (r *Report) Err() error {
	return errors.Join(r.Errors...)
}

// Tracker pushes per-card deltas and the set-level score to the backend
// after a submitted test.
type Tracker struct {
	backend Backend
}

// NewTracker creates a tracker over the given backend.
func NewTracker(backend Backend) *Tracker {
	return &Tracker{backend: backend}
}

// Publish sends one update per distinct card touched in the session, then
// the set-level score. Updates are independent calls; the external store is
// authoritative and last-write-wins, so no batching or rollback is
// attempted. Failures are collected into the report, never fatal.
func (t *Tracker) Publish(ctx context.Context, setID string, questions []*quizgen.Question, result *session.Result) *Report {
	report := &Report{}

	deltas := Deltas(questions)
	ids := make([]string, 0, len(deltas))
	for id := range deltas {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		d := deltas[id]
		if err := t.backend.UpdateCardProgress(ctx, id, d.Correct, d.Incorrect); err != nil {
			report.Errors = append(report.Errors, fmt.Errorf("card %s: %w", id, err))
		}
	}

	if result != nil && result.HasScore {
		if err := t.backend.UpdateSetScore(ctx, setID, result.Score); err != nil {
			report.Errors = append(report.Errors, fmt.Errorf("set score: %w", err))
		}
	}

	return report
}

// PublishOverride corrects a card's persisted counters after a "mark as
// correct anyway" override: +1 correct, -1 incorrect, plus the recomputed
// set score. The incorrect tally the answer previously contributed is
// retroactively withdrawn, keeping aggregates consistent.
func (t *Tracker) PublishOverride(ctx context.Context, setID, cardID string, result *session.Result) *Report {
	report := &Report{}

	if err := t.backend.UpdateCardProgress(ctx, cardID, 1, -1); err != nil {
		report.Errors = append(report.Errors, fmt.Errorf("card %s: %w", cardID, err))
	}

	if result != nil && result.HasScore {
		if err := t.backend.UpdateSetScore(ctx, setID, result.Score); err != nil {
			report.Errors = append(report.Errors, fmt.Errorf("set score: %w", err))
		}
	}

	return report
}
