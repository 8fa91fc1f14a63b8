package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/abhilash/crammer/ent"
	"github.com/abhilash/crammer/ent/answerevent"
	"github.com/abhilash/crammer/ent/testevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	db     *sql.DB
	seq    *sequenceCounter
}

func (r *eventRepo) AppendTest(ctx context.Context, data TestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.TestEvent.Create().
		SetSequence(seqNum).
		SetTestID(data.TestID).
		SetSetID(data.SetID).
		SetSetTitle(data.SetTitle).
		SetTotal(data.Total).
		SetCorrect(data.Correct).
		SetIncorrect(data.Incorrect).
		SetSkipped(data.Skipped).
		SetScore(data.Score).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save test event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetTestID(data.TestID).
		SetCardID(data.CardID).
		SetQuestionType(data.QuestionType).
		SetPrompt(data.Prompt).
		SetExpected(data.Expected).
		SetGiven(data.Given).
		SetCorrect(data.Correct).
		SetSkipped(data.Skipped).
		SetOverridden(data.Overridden).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) MarkOverridden(ctx context.Context, testID, cardID string) error {
	n, err := r.client.AnswerEvent.Update().
		Where(
			answerevent.TestID(testID),
			answerevent.CardID(cardID),
		).
		SetCorrect(true).
		SetOverridden(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark overridden: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("mark overridden: no answer for card %s in test %s", cardID, testID)
	}
	return nil
}

func (r *eventRepo) RecentTests(ctx context.Context, limit int) ([]TestRecord, error) {
	q := r.client.TestEvent.Query().
		Order(ent.Desc(testevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent tests: %w", err)
	}

	records := make([]TestRecord, 0, len(events))
	for _, e := range events {
		records = append(records, TestRecord{
			TestID:       e.TestID,
			SetID:        e.SetID,
			SetTitle:     e.SetTitle,
			Total:        e.Total,
			Correct:      e.Correct,
			Incorrect:    e.Incorrect,
			Skipped:      e.Skipped,
			Score:        e.Score,
			DurationSecs: e.DurationSecs,
			Timestamp:    e.Timestamp,
		})
	}
	return records, nil
}

func (r *eventRepo) StatsBySet(ctx context.Context) ([]SetStats, error) {
	events, err := r.client.TestEvent.Query().
		Order(ent.Asc(testevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query test events: %w", err)
	}

	bySet := make(map[string]*SetStats)
	var order []string
	for _, e := range events {
		st, ok := bySet[e.SetID]
		if !ok {
			st = &SetStats{SetID: e.SetID, BestScore: -1, LastScore: -1}
			bySet[e.SetID] = st
		}
		st.SetTitle = e.SetTitle
		st.Tests++
		if e.Score > st.BestScore {
			st.BestScore = e.Score
		}
		st.LastScore = e.Score
		st.LastTest = e.Timestamp
		order = append(order, e.SetID)
	}

	// Most recently tested set first; later events rewrite a set's
	// position, so walk the order backwards and dedupe.
	seen := make(map[string]bool)
	var stats []SetStats
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		if seen[id] {
			continue
		}
		seen[id] = true
		stats = append(stats, *bySet[id])
	}
	return stats, nil
}

func (r *eventRepo) PurgeAll(ctx context.Context) error {
	if _, err := r.client.AnswerEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("purge answer events: %w", err)
	}
	if _, err := r.client.TestEvent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("purge test events: %w", err)
	}
	if _, err := r.db.Exec(`UPDATE global_sequence SET next_val = 1 WHERE id = 1`); err != nil {
		return fmt.Errorf("reset sequence: %w", err)
	}
	return nil
}
