package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL: srv.URL,
		Token:   "test-token",
		Timeout: 5 * time.Second,
	})
}

func TestListSets(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/flashcards/sets", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"sets":[
			{"id":"s1","title":"JS Basics","card_count":12,"last_test_score":80},
			{"id":"s2","title":"Promises","card_count":5,"last_test_score":null}
		]}`))
	}))

	sets, err := c.ListSets(context.Background())
	require.NoError(t, err)
	require.Len(t, sets, 2)

	assert.Equal(t, "s1", sets[0].ID)
	assert.Equal(t, 12, sets[0].CardCount)
	require.NotNil(t, sets[0].LastTestScore)
	assert.Equal(t, 80, *sets[0].LastTestScore)
	assert.Nil(t, sets[1].LastTestScore)
}

func TestGetSet(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/flashcards/sets/s1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "s1",
			"title": "JS Basics",
			"last_test_score": null,
			"cards": [
				{
					"id": "c1",
					"front": "What is a closure?",
					"back": "A function plus its captured scope",
					"correct": 3,
					"incorrect": 1,
					"multiple_choice": {
						"question": "What is a closure?",
						"choices": ["A loop", "A function plus scope", "A class"],
						"answer": "A function plus scope"
					},
					"true_false": null,
					"free_response": null
				},
				{
					"id": "c2",
					"front": "let is block scoped",
					"back": "True",
					"true_false": {"question": "let is block scoped", "answer": true}
				}
			]
		}`))
	}))

	set, err := c.GetSet(context.Background(), "s1")
	require.NoError(t, err)

	assert.Equal(t, "s1", set.ID)
	assert.Equal(t, "JS Basics", set.Title)
	assert.Equal(t, -1, set.LastTestScore)
	require.Len(t, set.Cards, 2)

	c1 := set.Cards[0]
	assert.Equal(t, 3, c1.Correct)
	require.NotNil(t, c1.MultipleChoice)
	assert.Equal(t, []string{"A loop", "A function plus scope", "A class"}, c1.MultipleChoice.Choices)
	assert.Nil(t, c1.TrueFalse)

	c2 := set.Cards[1]
	require.NotNil(t, c2.TrueFalse)
	assert.True(t, c2.TrueFalse.Answer)
	assert.Nil(t, c2.MultipleChoice)
}

func TestGetSetRejectsMalformedPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "not json",
			body: `<!doctype html><html>login page</html>`,
		},
		{
			name: "missing cards",
			body: `{"id":"s1","title":"JS Basics"}`,
		},
		{
			name: "card without id",
			body: `{"id":"s1","title":"t","cards":[{"front":"q","back":"a"}]}`,
		},
		{
			name: "multiple choice without answer",
			body: `{"id":"s1","title":"t","cards":[{
				"id":"c1","front":"q","back":"a",
				"multiple_choice":{"question":"q","choices":["x","y"]}
			}]}`,
		},
		{
			name: "single choice option",
			body: `{"id":"s1","title":"t","cards":[{
				"id":"c1","front":"q","back":"a",
				"multiple_choice":{"question":"q","choices":["x"],"answer":"x"}
			}]}`,
		},
		{
			name: "score out of range",
			body: `{"id":"s1","title":"t","last_test_score":140,"cards":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))

			set, err := c.GetSet(context.Background(), "s1")
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadPayload)
			assert.Nil(t, set)
		})
	}
}

func TestUpdateCardProgress(t *testing.T) {
	var gotPath, gotBody string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, http.MethodPatch, r.Method)
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusNoContent)
	}))

	err := c.UpdateCardProgress(context.Background(), "c1", 1, -1)
	require.NoError(t, err)
	assert.Equal(t, "/api/flashcards/cards/c1/progress", gotPath)
	assert.JSONEq(t, `{"correct_delta":1,"incorrect_delta":-1}`, gotBody)
}

func TestUpdateSetScore(t *testing.T) {
	var gotBody string
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/flashcards/sets/s1/score", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, c.UpdateSetScore(context.Background(), "s1", 60))
	assert.JSONEq(t, `{"last_test_score":60}`, gotBody)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrUnauthorized},
		{"not found", http.StatusNotFound, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			_, err := c.ListSets(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("server error", func(t *testing.T) {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		_, err := c.ListSets(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 500")
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{BaseURL: "https://api.example.com", Token: "tok", Timeout: time.Second}, false},
		{"missing url", Config{Token: "tok", Timeout: time.Second}, true},
		{"bad scheme", Config{BaseURL: "ftp://api.example.com", Token: "tok", Timeout: time.Second}, true},
		{"missing token", Config{BaseURL: "https://api.example.com", Timeout: time.Second}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
