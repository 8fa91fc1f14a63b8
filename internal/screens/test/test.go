package test

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhilash/crammer/internal/quizgen"
	"github.com/abhilash/crammer/internal/session"
	"github.com/abhilash/crammer/internal/ui/components"
	"github.com/abhilash/crammer/internal/ui/theme"
)

// SubmitMsg asks the app to grade the session and move to results.
type SubmitMsg struct{}

// Model drives one in-progress test: it renders the current question and
// records answers and skips on the shared session as the learner moves
// around. Grading never happens here; only the app's submit does that.
type Model struct {
	sess *session.Session

	// One input widget per question, kept so answers survive navigation.
	choices []components.Choices
	inputs  []components.TextInput
}

// New builds the screen for a started session.
func New(sess *session.Session) Model {
	m := Model{
		sess:    sess,
		choices: make([]components.Choices, len(sess.Questions)),
		inputs:  make([]components.TextInput, len(sess.Questions)),
	}
	for i, q := range sess.Questions {
		if q.Options != nil {
			c := components.NewChoices(q.Options)
			if q.UserAnswer != "" {
				c.Select(q.UserAnswer)
			}
			m.choices[i] = c
		} else {
			in := components.NewTextInput("type your answer", false, 0)
			if q.UserAnswer != "" {
				in.SetValue(q.UserAnswer)
			}
			m.inputs[i] = in
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	i := m.sess.Index
	q := m.sess.Current()
	if q == nil {
		return m, nil
	}

	switch kmsg.String() {
	case "ctrl+s":
		m.commitWritten(i)
		return m, submit()

	case "ctrl+k":
		_ = m.sess.Skip(i)
		if q.Options == nil {
			m.inputs[i].SetValue("")
		}
		if !m.sess.Next() {
			return m, submit()
		}
		return m, nil

	case "left":
		m.commitWritten(i)
		m.sess.Prev()
		return m, nil

	case "right":
		m.commitWritten(i)
		m.sess.Next()
		return m, nil
	}

	if q.Options != nil {
		var cmd tea.Cmd
		m.choices[i], cmd = m.choices[i].Update(kmsg)
		if v := m.choices[i].Value(); v != "" && kmsg.String() == "enter" {
			_ = m.sess.Answer(i, v)
			if !m.sess.Next() {
				return m, submit()
			}
		}
		return m, cmd
	}

	if kmsg.String() == "enter" {
		m.commitWritten(i)
		if !m.sess.Next() {
			return m, submit()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[i], cmd = m.inputs[i].Update(kmsg)
	return m, cmd
}

// commitWritten records the typed text for a written question before the
// learner moves away, so nothing typed is lost at submit. An emptied input
// is committed too when the question was answered before, so the learner
// can take an answer back; an untouched question stays as it is.
func (m *Model) commitWritten(i int) {
	q := m.sess.Questions[i]
	if q.Options != nil {
		return
	}
	v := m.inputs[i].Value()
	if v == "" && q.UserAnswer == "" {
		return
	}
	_ = m.sess.Answer(i, v)
}

func submit() tea.Cmd {
	return func() tea.Msg { return SubmitMsg{} }
}

func (m Model) View() string {
	q := m.sess.Current()
	if q == nil {
		return ""
	}
	i := m.sess.Index

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(
		fmt.Sprintf("Question %d of %d", i+1, len(m.sess.Questions))) + "\n\n")
	b.WriteString(theme.Body.Bold(true).Render(q.Prompt) + "\n\n")

	if q.Options != nil {
		b.WriteString(m.choices[i].View())
	} else {
		b.WriteString("  " + m.inputs[i].View() + "\n")
	}

	b.WriteString("\n" + m.statusLine(q))
	return b.String()
}

func (m Model) statusLine(q *quizgen.Question) string {
	switch {
	case q.IsSkipped:
		return theme.Skipped.Render("Skipped — it will count as incorrect.")
	case q.UserAnswer != "":
		return theme.Hint.Render("Answered. You can change it until you submit.")
	default:
		return theme.Hint.Render("Enter records your answer.")
	}
}

// Title is the header title for this screen.
func (m Model) Title() string {
	return "Test in progress"
}
