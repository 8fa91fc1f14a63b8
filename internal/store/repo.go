package store

import (
	"context"
	"time"
)

// TestEventData captures one submitted test for the history log.
type TestEventData struct {
	TestID       string
	SetID        string
	SetTitle     string
	Total        int
	Correct      int
	Incorrect    int
	Skipped      int
	Score        int // -1 when the test produced no score
	DurationSecs int
}

// AnswerEventData captures one graded answer within a test.
type AnswerEventData struct {
	TestID       string
	CardID       string
	QuestionType string
	Prompt       string
	Expected     string
	Given        string
	Correct      bool
	Skipped      bool
	Overridden   bool
}

// TestRecord is a stored test with its timestamp, as returned by queries.
type TestRecord struct {
	TestID       string
	SetID        string
	SetTitle     string
	Total        int
	Correct      int
	Incorrect    int
	Skipped      int
	Score        int
	DurationSecs int
	Timestamp    time.Time
}

// SetStats aggregates a set's stored test history.
type SetStats struct {
	SetID     string
	SetTitle  string
	Tests     int
	BestScore int
	LastScore int
	LastTest  time.Time
}

// EventRepo provides append and query access to the local test history.
type EventRepo interface {
	// AppendTest records a submitted test summary.
	AppendTest(ctx context.Context, data TestEventData) error

	// AppendAnswer records one graded answer.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// MarkOverridden flips the stored answer for a card in a test to
	// correct and tags it as overridden.
	MarkOverridden(ctx context.Context, testID, cardID string) error

	// RecentTests returns the most recent tests, newest first.
	RecentTests(ctx context.Context, limit int) ([]TestRecord, error)

	// StatsBySet aggregates stored tests per set, most recently tested
	// first.
	StatsBySet(ctx context.Context) ([]SetStats, error)

	// PurgeAll deletes all stored history.
	PurgeAll(ctx context.Context) error
}
