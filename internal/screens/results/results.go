package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhilash/crammer/internal/quizgen"
	"github.com/abhilash/crammer/internal/session"
	"github.com/abhilash/crammer/internal/ui/theme"
)

// OverrideMsg asks the app to mark the question at Index correct anyway and
// push the counter adjustment to the backend.
type OverrideMsg struct {
	Index int
}

// RetryMsg asks the app to restart the same test with cleared answers.
type RetryMsg struct{}

// NewTestMsg asks the app to go back to test setup.
type NewTestMsg struct{}

// Model shows the graded result: the score, the tallies, and a reviewable
// list of every question with the learner's answer next to the expected one.
type Model struct {
	sess   *session.Session
	cursor int

	// PublishWarning is set by the app when pushing progress to the
	// backend partially failed. Shown, never fatal.
	PublishWarning string

	// MasteryLine summarizes where the tested cards now stand, computed
	// by the app from the cards' counters plus this test's deltas.
	MasteryLine string
}

// New builds the screen for a submitted session.
func New(sess *session.Session) Model {
	return Model{sess: sess}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sess.Questions)-1 {
			m.cursor++
		}
	case "o":
		q := m.sess.Questions[m.cursor]
		if !q.IsCorrect {
			i := m.cursor
			return m, func() tea.Msg { return OverrideMsg{Index: i} }
		}
	case "r":
		return m, func() tea.Msg { return RetryMsg{} }
	case "n":
		return m, func() tea.Msg { return NewTestMsg{} }
	}
	return m, nil
}

func (m Model) View() string {
	r := m.sess.Result
	if r == nil {
		return ""
	}

	var b strings.Builder

	score := "no score — the test had no questions"
	if r.HasScore {
		score = fmt.Sprintf("%d%%", r.Score)
	}
	b.WriteString(theme.Title.Render("Score: "+score) + "\n")
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
		"%d correct · %d incorrect · %d skipped · %s",
		r.Correct, r.Incorrect, r.Skipped, formatElapsed(m.sess.Elapsed.Seconds()))) + "\n")

	if m.MasteryLine != "" {
		b.WriteString(theme.Subtitle.Render(m.MasteryLine) + "\n")
	}
	if m.PublishWarning != "" {
		b.WriteString(theme.Incorrect.Render("⚠ "+m.PublishWarning) + "\n")
	}
	b.WriteString("\n")

	for i, q := range m.sess.Questions {
		b.WriteString(m.renderQuestion(i, q))
	}

	b.WriteString("\n" + theme.Hint.Render("o marks the selected answer correct anyway."))
	return b.String()
}

func (m Model) renderQuestion(i int, q *quizgen.Question) string {
	prefix := "  "
	if i == m.cursor {
		prefix = "▸ "
	}

	var mark, detail string
	switch {
	case q.IsCorrect && q.Overridden:
		mark = theme.Correct.Render("✓")
		detail = theme.Hint.Render("(marked correct by you)")
	case q.IsCorrect:
		mark = theme.Correct.Render("✓")
	case q.IsSkipped:
		mark = theme.Skipped.Render("–")
		detail = theme.Skipped.Render("skipped · expected: " + q.Expected)
	default:
		mark = theme.Incorrect.Render("✗")
		detail = theme.Incorrect.Render(
			fmt.Sprintf("you said %q · expected: %s", q.UserAnswer, q.Expected))
	}

	line := fmt.Sprintf("%s%s %s", prefix, mark, q.Prompt)
	if i == m.cursor {
		line = theme.Selected.Render(line)
	} else {
		line = theme.Unselected.Render(line)
	}

	out := line + "\n"
	if detail != "" {
		out += "      " + detail + "\n"
	}
	return out
}

func formatElapsed(secs float64) string {
	total := int(secs)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Title is the header title for this screen.
func (m Model) Title() string {
	return "Results"
}
