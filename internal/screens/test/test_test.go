package test

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhilash/crammer/internal/quizgen"
	"github.com/abhilash/crammer/internal/session"
)

func writtenQuestions(n int) []*quizgen.Question {
	qs := make([]*quizgen.Question, n)
	for i := range qs {
		qs[i] = &quizgen.Question{
			CardID:   "card-" + string(rune('a'+i)),
			Type:     quizgen.TypeWritten,
			Prompt:   "explain it",
			Expected: "an object representing eventual completion",
		}
	}
	return qs
}

func startedSession(t *testing.T, qs []*quizgen.Question) *session.Session {
	t.Helper()
	s := session.New("test-1", "set-1")
	if err := s.Start(qs); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestNewRestoresRecordedAnswers(t *testing.T) {
	qs := []*quizgen.Question{
		{CardID: "c1", Type: quizgen.TypeMultipleChoice, Prompt: "pick one",
			Expected: "b", Options: []string{"a", "b", "c"}},
		{CardID: "c2", Type: quizgen.TypeWritten, Prompt: "explain it",
			Expected: "an object"},
	}
	sess := startedSession(t, qs)
	if err := sess.Answer(0, "b"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := sess.Answer(1, "my notes"); err != nil {
		t.Fatalf("answer: %v", err)
	}

	m := New(sess)

	if got := m.choices[0].Value(); got != "b" {
		t.Errorf("choices[0].Value() = %q, want %q", got, "b")
	}
	if got := m.inputs[1].Value(); got != "my notes" {
		t.Errorf("inputs[1].Value() = %q, want %q", got, "my notes")
	}
}

func TestWrittenAnswerCommittedOnNavigation(t *testing.T) {
	sess := startedSession(t, writtenQuestions(2))
	m := New(sess)

	m.inputs[0].SetValue("first thought")
	m, _ = m.Update(specialKey(tea.KeyRight))

	if got := sess.Questions[0].UserAnswer; got != "first thought" {
		t.Errorf("UserAnswer = %q, want %q", got, "first thought")
	}
	if sess.Index != 1 {
		t.Errorf("Index = %d, want 1", sess.Index)
	}
}

func TestWrittenAnswerRetractedWhenCleared(t *testing.T) {
	sess := startedSession(t, writtenQuestions(2))
	m := New(sess)

	m.inputs[0].SetValue("first thought")
	m, _ = m.Update(specialKey(tea.KeyRight))
	m, _ = m.Update(specialKey(tea.KeyLeft))

	m.inputs[0].SetValue("")
	m, _ = m.Update(specialKey(tea.KeyRight))

	if got := sess.Questions[0].UserAnswer; got != "" {
		t.Errorf("UserAnswer = %q, want empty after clearing", got)
	}

	res, err := sess.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !sess.Questions[0].IsSkipped {
		t.Error("cleared question not flagged skipped at submit")
	}
	if res.Correct != 0 {
		t.Errorf("Correct = %d, want 0", res.Correct)
	}
}

func TestEmptyInputLeavesSkipAlone(t *testing.T) {
	sess := startedSession(t, writtenQuestions(2))
	m := New(sess)

	if err := sess.Skip(0); err != nil {
		t.Fatalf("skip: %v", err)
	}
	m, _ = m.Update(specialKey(tea.KeyRight))

	if !sess.Questions[0].IsSkipped {
		t.Error("navigating away from an untouched question dropped its skip flag")
	}
}
