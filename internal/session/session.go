package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhilash/crammer/internal/quizgen"
)

var (
	// ErrNoQuestions means the configured filters left nothing to ask.
	ErrNoQuestions = errors.New("no questions available for this test")

	// ErrAlreadyStarted is returned when starting a session that is not in
	// the Configuring state.
	ErrAlreadyStarted = errors.New("test already started")

	// ErrAlreadySubmitted guards the submit-exactly-once transition.
	ErrAlreadySubmitted = errors.New("test already submitted")

	// ErrNotSubmitted is returned for operations that only make sense on a
	// graded test, such as overrides.
	ErrNotSubmitted = errors.New("test not submitted yet")

	// ErrNotInProgress is returned for answer/navigation operations outside
	// the in-progress state.
	ErrNotInProgress = errors.New("test not in progress")

	// ErrNotIncorrect is returned when overriding an answer the grader
	// already accepted.
	ErrNotIncorrect = errors.New("answer is not marked incorrect")
)

// Status is the lifecycle state of a test session.
//
// Configuring -> InProgress -> Submitted. Submitted is terminal except for
// an explicit reset back to Configuring, which discards all question state.
type Status int

const (
	StatusConfiguring Status = iota
	StatusInProgress
	StatusSubmitted
)

// Session is one test pass over a subset of a flashcard set.
//
// Entirely in-memory and ephemeral: abandoning a session before submit has
// no persisted effect anywhere. Only the Submit transition grades answers
// and produces the Result whose deltas the caller pushes to the backend.
type Session struct {
	// ID is a UUID identifying this session in the local history log.
	ID string

	// SetID is the flashcard set under test.
	SetID string

	// Questions in serving order. Populated by Start.
	Questions []*quizgen.Question

	// Index is the current question position.
	Index int

	// StartTime and Elapsed track session timing. Elapsed is advanced by
	// the caller (timer ticks) and frozen at submit.
	StartTime time.Time
	Elapsed   time.Duration

	Status Status

	// Result is set once the session is submitted, nil before.
	Result *Result
}

// New creates a session in the Configuring state.
func New(id, setID string) *Session {
	return &Session{ID: id, SetID: setID}
}

// Start enters InProgress with the given question sequence.
// Fails with ErrNoQuestions on an empty sequence so callers surface
// "no questions available" instead of an unanswerable test.
func (s *Session) Start(questions []*quizgen.Question) error {
	if s.Status == StatusInProgress {
		return ErrAlreadyStarted
	}
	if len(questions) == 0 {
		return ErrNoQuestions
	}
	s.Questions = questions
	s.Index = 0
	s.StartTime = time.Now()
	s.Elapsed = 0
	s.Result = nil
	s.Status = StatusInProgress
	return nil
}

// Current returns the question at the current index, nil when out of range.
func (s *Session) Current() *quizgen.Question {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return s.Questions[s.Index]
}

// Answer records the learner's answer for question i. Clears any earlier
// skip mark; answers may be revised freely until submit.
func (s *Session) Answer(i int, answer string) error {
	if s.Status != StatusInProgress {
		return ErrNotInProgress
	}
	q, err := s.question(i)
	if err != nil {
		return err
	}
	q.UserAnswer = answer
	q.IsSkipped = false
	return nil
}

// Skip marks question i as skipped, discarding any earlier answer.
func (s *Session) Skip(i int) error {
	if s.Status != StatusInProgress {
		return ErrNotInProgress
	}
	q, err := s.question(i)
	if err != nil {
		return err
	}
	q.UserAnswer = ""
	q.IsSkipped = true
	return nil
}

// Next advances to the next question. Returns false at the end.
func (s *Session) Next() bool {
	if s.Status != StatusInProgress || s.Index >= len(s.Questions)-1 {
		return false
	}
	s.Index++
	return true
}

// Prev moves back one question. Returns false at the start.
func (s *Session) Prev() bool {
	if s.Status != StatusInProgress || s.Index <= 0 {
		return false
	}
	s.Index--
	return true
}

// Submit grades every question and enters Submitted. Grading runs exactly
// once: a second call returns ErrAlreadySubmitted with the original result
// untouched. Questions never answered are flagged skipped and graded
// incorrect, not silently passed.
func (s *Session) Submit() (*Result, error) {
	if s.Status == StatusSubmitted {
		return s.Result, ErrAlreadySubmitted
	}
	if s.Status != StatusInProgress {
		return nil, ErrNotInProgress
	}

	for _, q := range s.Questions {
		if q.UserAnswer == "" {
			q.IsSkipped = true
		}
		q.IsCorrect = quizgen.Grade(q)
	}

	s.Elapsed = time.Since(s.StartTime)
	s.Result = buildResult(s.Questions)
	s.Status = StatusSubmitted
	return s.Result, nil
}

// Restart clears all answer state for a fresh grading pass over the same
// questions. Counters already persisted from the previous submit are not
// touched; only the next submit produces new deltas.
func (s *Session) Restart() error {
	if len(s.Questions) == 0 {
		return ErrNoQuestions
	}
	for _, q := range s.Questions {
		q.UserAnswer = ""
		q.IsCorrect = false
		q.IsSkipped = false
		q.Overridden = false
	}
	s.Index = 0
	s.StartTime = time.Now()
	s.Elapsed = 0
	s.Result = nil
	s.Status = StatusInProgress
	return nil
}

// Reset returns to Configuring, discarding all ephemeral question state.
func (s *Session) Reset() {
	s.Questions = nil
	s.Index = 0
	s.Result = nil
	s.Status = StatusConfiguring
}

// Override marks question i correct after grading rejected it ("mark as
// correct anyway"). The session result is rebuilt in place; the caller must
// propagate the returned question's card as a {+1 correct, -1 incorrect}
// adjustment so the persisted counters match, not merely flip the flag.
func (s *Session) Override(i int) (*quizgen.Question, error) {
	if s.Status != StatusSubmitted {
		return nil, ErrNotSubmitted
	}
	q, err := s.question(i)
	if err != nil {
		return nil, err
	}
	if q.IsCorrect {
		return nil, ErrNotIncorrect
	}

	q.IsCorrect = true
	q.IsSkipped = false
	q.Overridden = true
	s.Result = buildResult(s.Questions)
	return q, nil
}

func (s *Session) question(i int) (*quizgen.Question, error) {
	if i < 0 || i >= len(s.Questions) {
		return nil, fmt.Errorf("question index %d out of range [0,%d)", i, len(s.Questions))
	}
	return s.Questions[i], nil
}
