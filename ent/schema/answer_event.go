package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a single graded answer within a test.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("test_id").
			NotEmpty().
			Comment("Links to TestEvent"),
		field.String("card_id").
			NotEmpty().
			Comment("Card the question was generated from"),
		field.String("question_type").
			NotEmpty().
			Comment("multiple_choice, true_false, or written"),
		field.String("prompt").
			NotEmpty().
			Comment("The question shown"),
		field.String("expected").
			NotEmpty().
			Comment("The authored correct answer"),
		field.String("given").
			Comment("What the user entered, empty when skipped"),
		field.Bool("correct").
			Comment("Whether the answer was graded correct"),
		field.Bool("skipped").
			Default(false).
			Comment("Whether the question was left unanswered"),
		field.Bool("overridden").
			Default(false).
			Comment("Whether the user marked the grade as correct afterwards"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("test_id"),
		index.Fields("card_id"),
		index.Fields("correct"),
	}
}
