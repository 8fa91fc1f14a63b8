package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhilash/crammer/internal/deck"
)

// setSchema is the JSON Schema a fetched flashcard set must satisfy before
// any question is generated from it. Variants are optional per card, but a
// present variant must be complete: a multiple-choice block without its
// answer is rejected, not papered over.
var setSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":    map[string]any{"type": "string", "minLength": 1},
		"title": map[string]any{"type": "string"},
		"last_test_score": map[string]any{
			"type":    []any{"integer", "null"},
			"minimum": 0,
			"maximum": 100,
		},
		"cards": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":        map[string]any{"type": "string", "minLength": 1},
					"front":     map[string]any{"type": "string", "minLength": 1},
					"back":      map[string]any{"type": "string"},
					"correct":   map[string]any{"type": "integer", "minimum": 0},
					"incorrect": map[string]any{"type": "integer", "minimum": 0},
					"multiple_choice": map[string]any{
						"type": []any{"object", "null"},
						"properties": map[string]any{
							"question": map[string]any{"type": "string", "minLength": 1},
							"choices": map[string]any{
								"type":     "array",
								"items":    map[string]any{"type": "string"},
								"minItems": 2,
							},
							"answer": map[string]any{"type": "string", "minLength": 1},
						},
						"required": []any{"question", "choices", "answer"},
					},
					"true_false": map[string]any{
						"type": []any{"object", "null"},
						"properties": map[string]any{
							"question": map[string]any{"type": "string", "minLength": 1},
							"answer":   map[string]any{"type": "boolean"},
						},
						"required": []any{"question", "answer"},
					},
					"free_response": map[string]any{
						"type": []any{"object", "null"},
						"properties": map[string]any{
							"question": map[string]any{"type": "string", "minLength": 1},
							"answer":   map[string]any{"type": "string", "minLength": 1},
						},
						"required": []any{"question", "answer"},
					},
				},
				"required": []any{"id", "front", "back"},
			},
		},
	},
	"required": []any{"id", "title", "cards"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateSetPayload checks a raw set response against setSchema.
func validateSetPayload(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := getCompiledSchema()
	if err != nil {
		return fmt.Errorf("compile set schema: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// getCompiledSchema compiles setSchema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not raw
		// bytes. Marshal then unmarshal to get a clean any representation.
		defBytes, err := json.Marshal(setSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://flashcard-set.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// setPayload is the wire shape of a fetched set.
type setPayload struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	LastTestScore *int          `json:"last_test_score"`
	Cards         []cardPayload `json:"cards"`
}

type cardPayload struct {
	ID             string `json:"id"`
	Front          string `json:"front"`
	Back           string `json:"back"`
	Correct        int    `json:"correct"`
	Incorrect      int    `json:"incorrect"`
	MultipleChoice *struct {
		Question string   `json:"question"`
		Choices  []string `json:"choices"`
		Answer   string   `json:"answer"`
	} `json:"multiple_choice"`
	TrueFalse *struct {
		Question string `json:"question"`
		Answer   bool   `json:"answer"`
	} `json:"true_false"`
	FreeResponse *struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	} `json:"free_response"`
}

// toSet converts the wire payload into the domain model.
func (p *setPayload) toSet() *deck.Set {
	set := &deck.Set{
		ID:            p.ID,
		Title:         p.Title,
		LastTestScore: -1,
		Cards:         make([]deck.Card, 0, len(p.Cards)),
	}
	if p.LastTestScore != nil {
		set.LastTestScore = *p.LastTestScore
	}

	for _, cp := range p.Cards {
		card := deck.Card{
			ID:        cp.ID,
			Front:     cp.Front,
			Back:      cp.Back,
			Correct:   cp.Correct,
			Incorrect: cp.Incorrect,
		}
		if cp.MultipleChoice != nil {
			card.MultipleChoice = &deck.MultipleChoice{
				Question: cp.MultipleChoice.Question,
				Choices:  cp.MultipleChoice.Choices,
				Answer:   cp.MultipleChoice.Answer,
			}
		}
		if cp.TrueFalse != nil {
			card.TrueFalse = &deck.TrueFalse{
				Question: cp.TrueFalse.Question,
				Answer:   cp.TrueFalse.Answer,
			}
		}
		if cp.FreeResponse != nil {
			card.FreeResponse = &deck.FreeResponse{
				Question: cp.FreeResponse.Question,
				Answer:   cp.FreeResponse.Answer,
			}
		}
		set.Cards = append(set.Cards, card)
	}
	return set
}
