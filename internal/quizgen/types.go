package quizgen

// QuestionType describes how the learner answers a question.
type QuestionType string

const (
	// TypeMultipleChoice means the learner picks one of the authored choices.
	TypeMultipleChoice QuestionType = "multiple_choice"

	// TypeTrueFalse means the learner picks "True" or "False".
	TypeTrueFalse QuestionType = "true_false"

	// TypeWritten means the learner types a free-text answer.
	TypeWritten QuestionType = "written"
)

// AllTypes is every question type, in display order.
var AllTypes = []QuestionType{TypeMultipleChoice, TypeTrueFalse, TypeWritten}

// Question is one test question generated from a flashcard.
//
// Questions are ephemeral: they live for a single test session and are never
// persisted. Only their effect on card counters and the set score survives,
// via the progress package.
type Question struct {
	// CardID references the card this question was generated from.
	// A back-reference only; the question does not own the card.
	CardID string

	Type   QuestionType
	Prompt string

	// Expected is the canonical correct answer.
	// Multiple choice: the text of the correct choice.
	// True/false: "True" or "False".
	// Written: the authored reference answer.
	Expected string

	// Options is populated for multiple choice (authored order, never
	// reshuffled here) and true/false (always ["True", "False"]).
	// Nil for written questions.
	Options []string

	// Answer state, filled in as the session progresses.
	UserAnswer string
	IsCorrect  bool
	IsSkipped  bool

	// Overridden is set when the learner marks a written answer correct
	// after the grader rejected it.
	Overridden bool
}

// Options configures how a full test is built from a card set.
type Options struct {
	// Types is the set of permitted question types. Empty means all types.
	Types []QuestionType

	// Limit caps the number of questions. Zero or negative means no cap.
	// The effective count is always capped at the number of eligible cards.
	Limit int

	// Shuffle randomizes card order before the limit is applied.
	Shuffle bool
}

// permits reports whether t is allowed by the options.
func (o Options) permits(t QuestionType) bool {
	if len(o.Types) == 0 {
		return true
	}
	for _, allowed := range o.Types {
		if allowed == t {
			return true
		}
	}
	return false
}
