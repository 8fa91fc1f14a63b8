package deck

// Card is a single flashcard within a set.
//
// The Correct/Incorrect counters are the durable per-card statistics held by
// the backend. They accumulate across test sessions and are only ever moved
// by delta updates; the client never writes absolute values.
type Card struct {
	// ID is the backend identifier for this card.
	ID string

	// Front and Back are the base flashcard faces. A card always has these,
	// even when no authored question variants exist.
	Front string
	Back  string

	// Correct and Incorrect are the running answer counters, non-negative.
	Correct   int
	Incorrect int

	// Authored question variants. Each is optional and independently
	// present or absent.
	MultipleChoice *MultipleChoice
	TrueFalse      *TrueFalse
	FreeResponse   *FreeResponse
}

// MultipleChoice is an authored multiple-choice variant of a card.
type MultipleChoice struct {
	Question string

	// Choices in authored order. Answer is always one of them.
	Choices []string
	Answer  string
}

// TrueFalse is an authored true/false variant of a card.
type TrueFalse struct {
	Question string
	Answer   bool
}

// FreeResponse is an authored written-answer variant of a card.
type FreeResponse struct {
	Question string

	// Answer is the reference answer the learner's text is graded against.
	Answer string
}

// Set is an ordered collection of cards belonging to a course or
// quick-learn session.
type Set struct {
	ID    string
	Title string
	Cards []Card

	// LastTestScore is the 0-100 score of the most recently submitted test,
	// or -1 if the set has never been tested.
	LastTestScore int
}
