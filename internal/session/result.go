package session

import (
	"math"

	"github.com/abhilash/crammer/internal/quizgen"
)

// Result is the graded outcome of a submitted test.
type Result struct {
	Correct   int
	Incorrect int

	// Skipped counts questions flagged skipped. Skipped questions are also
	// counted in Incorrect; the flag exists for reporting, not scoring.
	Skipped int

	Total int

	// Score is the rounded 0-100 percentage. Only meaningful when HasScore
	// is true; a zero-question test has no score rather than a zero score.
	Score    int
	HasScore bool
}

// buildResult tallies graded questions into a Result.
func buildResult(questions []*quizgen.Question) *Result {
	r := &Result{Total: len(questions)}
	for _, q := range questions {
		if q.IsCorrect {
			r.Correct++
		} else {
			r.Incorrect++
		}
		if q.IsSkipped {
			r.Skipped++
		}
	}
	if r.Total > 0 {
		r.Score = int(math.Round(float64(r.Correct) / float64(r.Total) * 100))
		r.HasScore = true
	}
	return r
}
