package session

import (
	"errors"
	"testing"

	"github.com/abhilash/crammer/internal/quizgen"
)

func threeQuestions() []*quizgen.Question {
	return []*quizgen.Question{
		{CardID: "c1", Type: quizgen.TypeTrueFalse, Expected: quizgen.LabelTrue,
			Options: []string{quizgen.LabelTrue, quizgen.LabelFalse}},
		{CardID: "c2", Type: quizgen.TypeMultipleChoice, Expected: "b",
			Options: []string{"a", "b", "c"}},
		{CardID: "c3", Type: quizgen.TypeWritten, Expected: "an object representing eventual completion"},
	}
}

func startedSession(t *testing.T) *Session {
	t.Helper()
	s := New("test-1", "set-1")
	if err := s.Start(threeQuestions()); err != nil {
		t.Fatalf("start: %v", err)
	}
	return s
}

func TestNewStartsConfiguring(t *testing.T) {
	s := New("test-1", "set-1")
	if s.Status != StatusConfiguring {
		t.Errorf("Status = %v, want StatusConfiguring", s.Status)
	}
}

func TestStartRequiresQuestions(t *testing.T) {
	s := New("test-1", "set-1")
	err := s.Start(nil)
	if !errors.Is(err, ErrNoQuestions) {
		t.Errorf("Start(nil) error = %v, want ErrNoQuestions", err)
	}
	if s.Status != StatusConfiguring {
		t.Errorf("Status = %v after failed start, want StatusConfiguring", s.Status)
	}
}

func TestStartTwice(t *testing.T) {
	s := startedSession(t)
	if err := s.Start(threeQuestions()); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("second Start error = %v, want ErrAlreadyStarted", err)
	}
}

func TestAnswerOutsideInProgress(t *testing.T) {
	s := New("test-1", "set-1")
	if err := s.Answer(0, "x"); !errors.Is(err, ErrNotInProgress) {
		t.Errorf("Answer error = %v, want ErrNotInProgress", err)
	}
}

func TestNavigation(t *testing.T) {
	s := startedSession(t)

	if s.Current().CardID != "c1" {
		t.Errorf("Current().CardID = %q, want c1", s.Current().CardID)
	}
	if !s.Next() {
		t.Error("Next() = false at question 0")
	}
	if !s.Next() {
		t.Error("Next() = false at question 1")
	}
	if s.Next() {
		t.Error("Next() = true at the last question")
	}
	if s.Current().CardID != "c3" {
		t.Errorf("Current().CardID = %q, want c3", s.Current().CardID)
	}
	if !s.Prev() {
		t.Error("Prev() = false at the last question")
	}
	s.Prev()
	if s.Prev() {
		t.Error("Prev() = true at question 0")
	}
}

func TestAnswerClearsSkip(t *testing.T) {
	s := startedSession(t)

	if err := s.Skip(0); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if !s.Questions[0].IsSkipped {
		t.Fatal("question 0 not marked skipped")
	}

	if err := s.Answer(0, quizgen.LabelTrue); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if s.Questions[0].IsSkipped {
		t.Error("skip mark survived a later answer")
	}
}

func TestSkipDiscardsAnswer(t *testing.T) {
	s := startedSession(t)

	if err := s.Answer(1, "b"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := s.Skip(1); err != nil {
		t.Fatalf("skip: %v", err)
	}
	if s.Questions[1].UserAnswer != "" {
		t.Errorf("UserAnswer = %q after skip, want empty", s.Questions[1].UserAnswer)
	}
}

func TestSubmit(t *testing.T) {
	s := startedSession(t)

	// c1 correct, c2 wrong, c3 never answered.
	if err := s.Answer(0, quizgen.LabelTrue); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := s.Answer(1, "a"); err != nil {
		t.Fatalf("answer: %v", err)
	}

	result, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if s.Status != StatusSubmitted {
		t.Errorf("Status = %v, want StatusSubmitted", s.Status)
	}
	if result.Correct != 1 || result.Incorrect != 2 {
		t.Errorf("result = %d correct / %d incorrect, want 1/2", result.Correct, result.Incorrect)
	}
	if result.Skipped != 1 {
		t.Errorf("result.Skipped = %d, want 1", result.Skipped)
	}
	if !s.Questions[2].IsSkipped {
		t.Error("unanswered question not flagged skipped at submit")
	}
	if !result.HasScore {
		t.Fatal("result.HasScore = false for a 3-question test")
	}
	if result.Score != 33 {
		t.Errorf("result.Score = %d, want 33", result.Score)
	}
}

func TestSubmitExactlyOnce(t *testing.T) {
	s := startedSession(t)
	if err := s.Answer(0, quizgen.LabelTrue); err != nil {
		t.Fatalf("answer: %v", err)
	}

	first, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	second, err := s.Submit()
	if !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("second submit error = %v, want ErrAlreadySubmitted", err)
	}
	if second != first {
		t.Error("second submit returned a different result")
	}
}

func TestScoreRounding(t *testing.T) {
	tests := []struct {
		name    string
		answers []bool
		want    int
	}{
		{"three of five", []bool{true, true, true, false, false}, 60},
		{"one of three rounds down", []bool{true, false, false}, 33},
		{"two of three rounds up", []bool{true, true, false}, 67},
		{"all correct", []bool{true, true}, 100},
		{"none correct", []bool{false, false}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var questions []*quizgen.Question
			for _, correct := range tt.answers {
				q := &quizgen.Question{Type: quizgen.TypeTrueFalse, Expected: quizgen.LabelTrue}
				if correct {
					q.UserAnswer = quizgen.LabelTrue
				} else {
					q.UserAnswer = quizgen.LabelFalse
				}
				questions = append(questions, q)
			}

			s := New("test-1", "set-1")
			if err := s.Start(questions); err != nil {
				t.Fatalf("start: %v", err)
			}
			result, err := s.Submit()
			if err != nil {
				t.Fatalf("submit: %v", err)
			}
			if result.Score != tt.want {
				t.Errorf("Score = %d, want %d", result.Score, tt.want)
			}
		})
	}
}

func TestRestart(t *testing.T) {
	s := startedSession(t)
	if err := s.Answer(0, quizgen.LabelTrue); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if _, err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}

	if err := s.Restart(); err != nil {
		t.Fatalf("restart: %v", err)
	}

	if s.Status != StatusInProgress {
		t.Errorf("Status = %v after restart, want StatusInProgress", s.Status)
	}
	if s.Result != nil {
		t.Error("Result survived restart")
	}
	for i, q := range s.Questions {
		if q.UserAnswer != "" || q.IsCorrect || q.IsSkipped || q.Overridden {
			t.Errorf("question %d kept answer state after restart: %+v", i, q)
		}
	}
}

func TestReset(t *testing.T) {
	s := startedSession(t)
	s.Reset()

	if s.Status != StatusConfiguring {
		t.Errorf("Status = %v after reset, want StatusConfiguring", s.Status)
	}
	if s.Questions != nil {
		t.Error("Questions survived reset")
	}
}

func TestOverride(t *testing.T) {
	s := startedSession(t)

	// c3 written: close in meaning, rejected by the substring heuristic.
	if err := s.Answer(0, quizgen.LabelTrue); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := s.Answer(1, "b"); err != nil {
		t.Fatalf("answer: %v", err)
	}
	if err := s.Answer(2, "a future value wrapper"); err != nil {
		t.Fatalf("answer: %v", err)
	}

	result, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Correct != 2 || result.Incorrect != 1 {
		t.Fatalf("pre-override result = %d/%d, want 2/1", result.Correct, result.Incorrect)
	}

	q, err := s.Override(2)
	if err != nil {
		t.Fatalf("override: %v", err)
	}
	if !q.IsCorrect || !q.Overridden {
		t.Errorf("overridden question flags = correct:%v overridden:%v, want both true", q.IsCorrect, q.Overridden)
	}

	if s.Result.Correct != 3 || s.Result.Incorrect != 0 {
		t.Errorf("post-override result = %d/%d, want 3/0", s.Result.Correct, s.Result.Incorrect)
	}
	if s.Result.Score != 100 {
		t.Errorf("post-override score = %d, want 100", s.Result.Score)
	}
}

func TestOverrideGuards(t *testing.T) {
	t.Run("before submit", func(t *testing.T) {
		s := startedSession(t)
		if _, err := s.Override(0); !errors.Is(err, ErrNotSubmitted) {
			t.Errorf("Override error = %v, want ErrNotSubmitted", err)
		}
	})

	t.Run("already correct", func(t *testing.T) {
		s := startedSession(t)
		if err := s.Answer(0, quizgen.LabelTrue); err != nil {
			t.Fatalf("answer: %v", err)
		}
		if _, err := s.Submit(); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if _, err := s.Override(0); !errors.Is(err, ErrNotIncorrect) {
			t.Errorf("Override error = %v, want ErrNotIncorrect", err)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		s := startedSession(t)
		if _, err := s.Submit(); err != nil {
			t.Fatalf("submit: %v", err)
		}
		if _, err := s.Override(99); err == nil {
			t.Error("expected error for out-of-range index")
		}
	})
}

