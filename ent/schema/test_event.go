package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TestEvent records one completed (submitted) test over a flashcard set.
type TestEvent struct {
	ent.Schema
}

func (TestEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TestEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("test_id").
			NotEmpty().
			Comment("UUID grouping this test's answer events"),
		field.String("set_id").
			NotEmpty().
			Comment("Flashcard set the test covered"),
		field.String("set_title").
			Comment("Set title at test time, for display without a fetch"),
		field.Int("total").
			Comment("Questions in the test"),
		field.Int("correct").
			Comment("Correct answers at submit time"),
		field.Int("incorrect").
			Comment("Incorrect answers at submit time"),
		field.Int("skipped").
			Comment("Questions left unanswered"),
		field.Int("score").
			Comment("Percentage score, -1 when the test had no questions"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall time from start to submit"),
	}
}

func (TestEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("test_id"),
		index.Fields("set_id"),
	}
}
