package quizgen

import (
	"math/rand"
	"testing"

	"github.com/abhilash/crammer/internal/deck"
)

func fullCard(id string) deck.Card {
	return deck.Card{
		ID:    id,
		Front: "What is a closure?",
		Back:  "A function plus its captured scope",
		MultipleChoice: &deck.MultipleChoice{
			Question: "What is a closure?",
			Choices:  []string{"A loop", "A function plus scope", "A class"},
			Answer:   "A function plus scope",
		},
		TrueFalse: &deck.TrueFalse{
			Question: "A closure captures its defining scope",
			Answer:   true,
		},
		FreeResponse: &deck.FreeResponse{
			Question: "Explain what a closure is",
			Answer:   "A function plus its captured scope",
		},
	}
}

func TestGenerateMultipleChoice(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	card := fullCard("c1")

	q, ok := Generate(card, Options{Types: []QuestionType{TypeMultipleChoice}}, rng)
	if !ok {
		t.Fatal("Generate returned ok=false for a card with authored multiple choice")
	}

	if q.Type != TypeMultipleChoice {
		t.Errorf("q.Type = %q, want %q", q.Type, TypeMultipleChoice)
	}
	if q.CardID != "c1" {
		t.Errorf("q.CardID = %q, want %q", q.CardID, "c1")
	}

	// Authored order, never reshuffled.
	want := []string{"A loop", "A function plus scope", "A class"}
	if len(q.Options) != len(want) {
		t.Fatalf("len(q.Options) = %d, want %d", len(q.Options), len(want))
	}
	for i := range want {
		if q.Options[i] != want[i] {
			t.Errorf("q.Options[%d] = %q, want %q", i, q.Options[i], want[i])
		}
	}

	// Expected answer must be one of the options.
	found := false
	for _, o := range q.Options {
		if o == q.Expected {
			found = true
		}
	}
	if !found {
		t.Errorf("expected answer %q not among options %v", q.Expected, q.Options)
	}
}

func TestGenerateTrueFalse(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name   string
		answer bool
		want   string
	}{
		{"true answer", true, LabelTrue},
		{"false answer", false, LabelFalse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := deck.Card{
				ID:    "c1",
				Front: "f",
				TrueFalse: &deck.TrueFalse{
					Question: "let is block scoped",
					Answer:   tt.answer,
				},
			}

			q, ok := Generate(card, Options{}, rng)
			if !ok {
				t.Fatal("Generate returned ok=false")
			}
			if q.Expected != tt.want {
				t.Errorf("q.Expected = %q, want %q", q.Expected, tt.want)
			}
			if len(q.Options) != 2 || q.Options[0] != LabelTrue || q.Options[1] != LabelFalse {
				t.Errorf("q.Options = %v, want [%s %s]", q.Options, LabelTrue, LabelFalse)
			}
		})
	}
}

func TestGenerateWritten(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	card := deck.Card{
		ID:    "c1",
		Front: "f",
		FreeResponse: &deck.FreeResponse{
			Question: "Explain promises",
			Answer:   "An object representing eventual completion",
		},
	}

	q, ok := Generate(card, Options{}, rng)
	if !ok {
		t.Fatal("Generate returned ok=false")
	}
	if q.Type != TypeWritten {
		t.Errorf("q.Type = %q, want %q", q.Type, TypeWritten)
	}
	if q.Options != nil {
		t.Errorf("q.Options = %v, want nil for written questions", q.Options)
	}
}

func TestGenerateExcludesCardWithoutEligibleTypes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	t.Run("no variants authored", func(t *testing.T) {
		card := deck.Card{ID: "c1", Front: "f", Back: "b"}
		if _, ok := Generate(card, Options{}, rng); ok {
			t.Error("expected ok=false for a card with no authored variants")
		}
	})

	t.Run("permitted types not authored", func(t *testing.T) {
		card := deck.Card{
			ID:    "c1",
			Front: "f",
			TrueFalse: &deck.TrueFalse{
				Question: "q",
				Answer:   true,
			},
		}
		opts := Options{Types: []QuestionType{TypeMultipleChoice, TypeWritten}}
		if _, ok := Generate(card, opts, rng); ok {
			t.Error("expected ok=false when no permitted type is authored")
		}
	})
}

func TestGeneratePicksAmongEligibleOnly(t *testing.T) {
	// Over many draws with a full card restricted to two types, both should
	// appear and nothing else.
	rng := rand.New(rand.NewSource(42))
	card := fullCard("c1")
	opts := Options{Types: []QuestionType{TypeTrueFalse, TypeWritten}}

	seen := make(map[QuestionType]int)
	for i := 0; i < 200; i++ {
		q, ok := Generate(card, opts, rng)
		if !ok {
			t.Fatal("Generate returned ok=false")
		}
		seen[q.Type]++
	}

	if seen[TypeMultipleChoice] != 0 {
		t.Errorf("generated %d multiple choice questions despite type filter", seen[TypeMultipleChoice])
	}
	if seen[TypeTrueFalse] == 0 || seen[TypeWritten] == 0 {
		t.Errorf("expected both permitted types over 200 draws, got %v", seen)
	}
}

func TestBuild(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	cards := []deck.Card{
		fullCard("c1"),
		{ID: "c2", Front: "f", Back: "b"}, // no variants, excluded
		fullCard("c3"),
		fullCard("c4"),
	}

	t.Run("one question per eligible card", func(t *testing.T) {
		questions := Build(cards, Options{}, rng)
		if len(questions) != 3 {
			t.Fatalf("len(questions) = %d, want 3", len(questions))
		}
		want := []string{"c1", "c3", "c4"}
		for i, q := range questions {
			if q.CardID != want[i] {
				t.Errorf("questions[%d].CardID = %q, want %q", i, q.CardID, want[i])
			}
		}
	})

	t.Run("limit caps count", func(t *testing.T) {
		questions := Build(cards, Options{Limit: 2}, rng)
		if len(questions) != 2 {
			t.Errorf("len(questions) = %d, want 2", len(questions))
		}
	})

	t.Run("limit above pool is harmless", func(t *testing.T) {
		questions := Build(cards, Options{Limit: 50}, rng)
		if len(questions) != 3 {
			t.Errorf("len(questions) = %d, want 3", len(questions))
		}
	})

	t.Run("no eligible cards yields empty", func(t *testing.T) {
		bare := []deck.Card{{ID: "c1", Front: "f", Back: "b"}}
		questions := Build(bare, Options{}, rng)
		if len(questions) != 0 {
			t.Errorf("len(questions) = %d, want 0", len(questions))
		}
	})

	t.Run("shuffle preserves the question set", func(t *testing.T) {
		questions := Build(cards, Options{Shuffle: true}, rng)
		if len(questions) != 3 {
			t.Fatalf("len(questions) = %d, want 3", len(questions))
		}
		seen := make(map[string]bool)
		for _, q := range questions {
			seen[q.CardID] = true
		}
		for _, id := range []string{"c1", "c3", "c4"} {
			if !seen[id] {
				t.Errorf("card %s missing after shuffle", id)
			}
		}
	})
}
