package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/abhilash/crammer/internal/deck"
)

var (
	// ErrUnauthorized means the bearer token was missing, expired, or
	// rejected. The flow aborts before any engine logic runs.
	ErrUnauthorized = errors.New("unauthorized: invalid or expired token")

	// ErrNotFound means the requested set or card does not exist (or is not
	// visible to this user).
	ErrNotFound = errors.New("not found")

	// ErrBadPayload means the backend response did not match the expected
	// shape. The fetch layer fails closed: no partial data reaches the
	// question generator.
	ErrBadPayload = errors.New("malformed backend payload")
)

// Client talks to the course backend's flashcard endpoints.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewClient creates a Client from a validated config.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		client:  &http.Client{Timeout: cfg.Timeout},
	}
}

// SetSummary is one row of the set listing.
type SetSummary struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	CardCount     int    `json:"card_count"`
	LastTestScore *int   `json:"last_test_score"`
}

// ListSets returns the user's flashcard sets.
func (c *Client) ListSets(ctx context.Context) ([]SetSummary, error) {
	var payload struct {
		Sets []SetSummary `json:"sets"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/flashcards/sets", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Sets, nil
}

// GetSet fetches a full flashcard set, including authored question variants
// and running counters. The raw payload is validated against a schema before
// decoding; anything malformed is reported as ErrBadPayload so the caller
// blocks test start instead of generating questions from partial data.
func (c *Client) GetSet(ctx context.Context, setID string) (*deck.Set, error) {
	raw, err := c.doRaw(ctx, http.MethodGet, "/api/flashcards/sets/"+setID, nil)
	if err != nil {
		return nil, err
	}

	if err := validateSetPayload(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	var payload setPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return payload.toSet(), nil
}

// UpdateCardProgress applies a correct/incorrect delta to one card's
// counters. Deltas may be negative (override corrections); the backend
// clamps at zero.
func (c *Client) UpdateCardProgress(ctx context.Context, cardID string, correct, incorrect int) error {
	body := map[string]int{
		"correct_delta":   correct,
		"incorrect_delta": incorrect,
	}
	return c.doJSON(ctx, http.MethodPatch, "/api/flashcards/cards/"+cardID+"/progress", body, nil)
}

// UpdateSetScore records the latest test score (0-100) on the set.
func (c *Client) UpdateSetScore(ctx context.Context, setID string, score int) error {
	body := map[string]int{"last_test_score": score}
	return c.doJSON(ctx, http.MethodPatch, "/api/flashcards/sets/"+setID+"/score", body, nil)
}

// doJSON performs a request with an optional JSON body, decoding the
// response into out when non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	raw, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, path)
	}

	return io.ReadAll(resp.Body)
}
