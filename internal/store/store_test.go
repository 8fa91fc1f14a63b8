package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func sampleTest(testID, setID string, score int) TestEventData {
	return TestEventData{
		TestID:       testID,
		SetID:        setID,
		SetTitle:     "JS Basics",
		Total:        5,
		Correct:      3,
		Incorrect:    1,
		Skipped:      1,
		Score:        score,
		DurationSecs: 90,
	}
}

func TestAppendAndRecentTests(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendTest(ctx, sampleTest("t1", "s1", 60)); err != nil {
		t.Fatalf("append test: %v", err)
	}
	if err := repo.AppendTest(ctx, sampleTest("t2", "s1", 80)); err != nil {
		t.Fatalf("append test: %v", err)
	}

	records, err := repo.RecentTests(ctx, 10)
	if err != nil {
		t.Fatalf("recent tests: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	// Newest first.
	if records[0].TestID != "t2" {
		t.Errorf("records[0].TestID = %q, want %q", records[0].TestID, "t2")
	}
	if records[0].Score != 80 {
		t.Errorf("records[0].Score = %d, want 80", records[0].Score)
	}
	if records[1].TestID != "t1" {
		t.Errorf("records[1].TestID = %q, want %q", records[1].TestID, "t1")
	}
}

func TestRecentTestsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, id := range []string{"t1", "t2", "t3"} {
		if err := repo.AppendTest(ctx, sampleTest(id, "s1", i*10)); err != nil {
			t.Fatalf("append test: %v", err)
		}
	}

	records, err := repo.RecentTests(ctx, 2)
	if err != nil {
		t.Fatalf("recent tests: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("len(records) = %d, want 2", len(records))
	}
	if records[0].TestID != "t3" {
		t.Errorf("records[0].TestID = %q, want %q", records[0].TestID, "t3")
	}
}

func TestMarkOverridden(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAnswer(ctx, AnswerEventData{
		TestID:       "t1",
		CardID:       "c1",
		QuestionType: "written",
		Prompt:       "What is a promise?",
		Expected:     "An object representing eventual completion",
		Given:        "a future value",
		Correct:      false,
	})
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}

	if err := repo.MarkOverridden(ctx, "t1", "c1"); err != nil {
		t.Fatalf("mark overridden: %v", err)
	}

	if err := repo.MarkOverridden(ctx, "t1", "missing"); err == nil {
		t.Error("expected error for unknown card, got nil")
	}
}

func TestStatsBySet(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendTest(ctx, sampleTest("t1", "s1", 60)); err != nil {
		t.Fatalf("append test: %v", err)
	}
	if err := repo.AppendTest(ctx, sampleTest("t2", "s2", 40)); err != nil {
		t.Fatalf("append test: %v", err)
	}
	if err := repo.AppendTest(ctx, sampleTest("t3", "s1", 80)); err != nil {
		t.Fatalf("append test: %v", err)
	}

	stats, err := repo.StatsBySet(ctx)
	if err != nil {
		t.Fatalf("stats by set: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}

	// s1 was tested last, so it comes first.
	if stats[0].SetID != "s1" {
		t.Errorf("stats[0].SetID = %q, want %q", stats[0].SetID, "s1")
	}
	if stats[0].Tests != 2 {
		t.Errorf("stats[0].Tests = %d, want 2", stats[0].Tests)
	}
	if stats[0].BestScore != 80 {
		t.Errorf("stats[0].BestScore = %d, want 80", stats[0].BestScore)
	}
	if stats[0].LastScore != 80 {
		t.Errorf("stats[0].LastScore = %d, want 80", stats[0].LastScore)
	}
	if stats[1].SetID != "s2" {
		t.Errorf("stats[1].SetID = %q, want %q", stats[1].SetID, "s2")
	}
}

func TestPurgeAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendTest(ctx, sampleTest("t1", "s1", 60)); err != nil {
		t.Fatalf("append test: %v", err)
	}
	if err := repo.PurgeAll(ctx); err != nil {
		t.Fatalf("purge: %v", err)
	}

	records, err := repo.RecentTests(ctx, 0)
	if err != nil {
		t.Fatalf("recent tests: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d after purge, want 0", len(records))
	}
}

func TestSequenceMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next sequence: %v", err)
		}
		if seq <= prev && i > 0 {
			t.Errorf("sequence %d not greater than previous %d", seq, prev)
		}
		prev = seq
	}
}
