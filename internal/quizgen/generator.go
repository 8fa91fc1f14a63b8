package quizgen

import (
	"math/rand"

	"github.com/abhilash/crammer/internal/deck"
)

// Labels for true/false options. The grader compares against these exact
// strings, so they are fixed here rather than left to the UI.
const (
	LabelTrue  = "True"
	LabelFalse = "False"
)

// Generate produces one question from a card, choosing uniformly at random
// among the permitted types the card actually has authored content for.
// Returns (nil, false) when no permitted type is authored — the card is
// excluded from the test, which the caller must treat as normal.
//
// Generation is a pure transformation over the card: choice order is
// preserved as authored, and nothing on the card is mutated.
func Generate(card deck.Card, opts Options, rng *rand.Rand) (*Question, bool) {
	eligible := eligibleTypes(card, opts)
	if len(eligible) == 0 {
		return nil, false
	}

	t := eligible[0]
	if len(eligible) > 1 {
		t = eligible[rng.Intn(len(eligible))]
	}

	switch t {
	case TypeMultipleChoice:
		mc := card.MultipleChoice
		options := make([]string, len(mc.Choices))
		copy(options, mc.Choices)
		return &Question{
			CardID:   card.ID,
			Type:     TypeMultipleChoice,
			Prompt:   mc.Question,
			Expected: mc.Answer,
			Options:  options,
		}, true

	case TypeTrueFalse:
		tf := card.TrueFalse
		expected := LabelFalse
		if tf.Answer {
			expected = LabelTrue
		}
		return &Question{
			CardID:   card.ID,
			Type:     TypeTrueFalse,
			Prompt:   tf.Question,
			Expected: expected,
			Options:  []string{LabelTrue, LabelFalse},
		}, true

	default:
		fr := card.FreeResponse
		return &Question{
			CardID:   card.ID,
			Type:     TypeWritten,
			Prompt:   fr.Question,
			Expected: fr.Answer,
		}, true
	}
}

// Build generates a full test from a card set: filter to eligible cards,
// optionally shuffle, take up to Limit, one question per card. An empty
// result is not an error; the caller decides how to surface "no questions
// available".
func Build(cards []deck.Card, opts Options, rng *rand.Rand) []*Question {
	var pool []deck.Card
	for _, c := range cards {
		if len(eligibleTypes(c, opts)) > 0 {
			pool = append(pool, c)
		}
	}

	if opts.Shuffle {
		rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
	}

	n := len(pool)
	if opts.Limit > 0 && opts.Limit < n {
		n = opts.Limit
	}

	questions := make([]*Question, 0, n)
	for _, c := range pool[:n] {
		q, ok := Generate(c, opts, rng)
		if !ok {
			continue
		}
		questions = append(questions, q)
	}
	return questions
}

// eligibleTypes returns the permitted types for which the card has authored
// content, in the fixed AllTypes order.
func eligibleTypes(card deck.Card, opts Options) []QuestionType {
	var eligible []QuestionType
	if opts.permits(TypeMultipleChoice) && card.MultipleChoice != nil {
		eligible = append(eligible, TypeMultipleChoice)
	}
	if opts.permits(TypeTrueFalse) && card.TrueFalse != nil {
		eligible = append(eligible, TypeTrueFalse)
	}
	if opts.permits(TypeWritten) && card.FreeResponse != nil {
		eligible = append(eligible, TypeWritten)
	}
	return eligible
}
