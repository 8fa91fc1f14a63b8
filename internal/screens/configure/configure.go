package configure

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhilash/crammer/internal/api"
	"github.com/abhilash/crammer/internal/quizgen"
	"github.com/abhilash/crammer/internal/ui/components"
	"github.com/abhilash/crammer/internal/ui/theme"
)

// StartMsg asks the app to fetch the chosen set and start a test with the
// given generation options.
type StartMsg struct {
	SetID    string
	SetTitle string
	Opts     quizgen.Options
}

type step int

const (
	stepSet step = iota
	stepTypes
	stepCount
	stepShuffle
)

var typeLabels = map[quizgen.QuestionType]string{
	quizgen.TypeMultipleChoice: "Multiple choice",
	quizgen.TypeTrueFalse:      "True / false",
	quizgen.TypeWritten:        "Written",
}

// Model walks the learner through test setup: pick a set, pick question
// types, cap the question count, choose card order.
type Model struct {
	sets []api.SetSummary

	step    step
	cursor  int
	set     api.SetSummary
	enabled map[quizgen.QuestionType]bool
	count   components.TextInput
	shuffle bool
}

// New creates the configure screen over the fetched set listing.
func New(sets []api.SetSummary) Model {
	enabled := make(map[quizgen.QuestionType]bool, len(quizgen.AllTypes))
	for _, t := range quizgen.AllTypes {
		enabled[t] = true
	}
	return Model{
		sets:    sets,
		enabled: enabled,
		count:   components.NewTextInput("all", true, 3),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.step {
	case stepSet:
		return m.updateSetStep(kmsg)
	case stepTypes:
		return m.updateTypesStep(kmsg)
	case stepCount:
		return m.updateCountStep(kmsg)
	default:
		return m.updateShuffleStep(kmsg)
	}
}

func (m Model) updateSetStep(kmsg tea.KeyMsg) (Model, tea.Cmd) {
	switch kmsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sets)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.sets) == 0 {
			return m, nil
		}
		m.set = m.sets[m.cursor]
		m.step = stepTypes
		m.cursor = 0
	}
	return m, nil
}

func (m Model) updateTypesStep(kmsg tea.KeyMsg) (Model, tea.Cmd) {
	switch kmsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(quizgen.AllTypes)-1 {
			m.cursor++
		}
	case " ", "space":
		t := quizgen.AllTypes[m.cursor]
		m.enabled[t] = !m.enabled[t]
	case "enter":
		if len(m.permittedTypes()) == 0 {
			return m, nil
		}
		m.step = stepCount
	case "esc":
		m.step = stepSet
		m.cursor = 0
	}
	return m, nil
}

func (m Model) updateCountStep(kmsg tea.KeyMsg) (Model, tea.Cmd) {
	switch kmsg.String() {
	case "enter":
		m.step = stepShuffle
		return m, nil
	case "esc":
		m.step = stepTypes
		m.cursor = 0
		return m, nil
	}
	var cmd tea.Cmd
	m.count, cmd = m.count.Update(kmsg)
	return m, cmd
}

func (m Model) updateShuffleStep(kmsg tea.KeyMsg) (Model, tea.Cmd) {
	switch kmsg.String() {
	case "up", "down", "k", "j", " ", "space":
		m.shuffle = !m.shuffle
	case "enter":
		return m, m.start()
	case "esc":
		m.step = stepCount
	}
	return m, nil
}

func (m Model) start() tea.Cmd {
	opts := quizgen.Options{
		Types:   m.permittedTypes(),
		Shuffle: m.shuffle,
	}
	if n, err := m.count.NumericValue(); err == nil && n > 0 {
		opts.Limit = n
	}

	msg := StartMsg{SetID: m.set.ID, SetTitle: m.set.Title, Opts: opts}
	return func() tea.Msg { return msg }
}

// permittedTypes returns the enabled types, nil when all are enabled so the
// generator's "empty means all" default applies.
func (m Model) permittedTypes() []quizgen.QuestionType {
	var types []quizgen.QuestionType
	for _, t := range quizgen.AllTypes {
		if m.enabled[t] {
			types = append(types, t)
		}
	}
	if len(types) == len(quizgen.AllTypes) {
		return nil
	}
	return types
}

func (m Model) View() string {
	switch m.step {
	case stepSet:
		return m.viewSetStep()
	case stepTypes:
		return m.viewTypesStep()
	case stepCount:
		return m.viewCountStep()
	default:
		return m.viewShuffleStep()
	}
}

func (m Model) viewSetStep() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Pick a set to test yourself on") + "\n\n")

	if len(m.sets) == 0 {
		b.WriteString(theme.Hint.Render("No flashcard sets found. Create some in the web app first.") + "\n")
		return b.String()
	}

	for i, s := range m.sets {
		prefix := "  "
		if i == m.cursor {
			prefix = "▸ "
		}

		score := "not tested yet"
		if s.LastTestScore != nil {
			score = fmt.Sprintf("last score %d%%", *s.LastTestScore)
		}
		line := fmt.Sprintf("%s%s  (%d cards, %s)", prefix, s.Title, s.CardCount, score)

		if i == m.cursor {
			b.WriteString(theme.Selected.Render(line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render(line) + "\n")
		}
	}
	return b.String()
}

func (m Model) viewTypesStep() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Question types") + "\n")
	b.WriteString(theme.Subtitle.Render(m.set.Title) + "\n\n")

	for i, t := range quizgen.AllTypes {
		check := "[ ]"
		if m.enabled[t] {
			check = "[x]"
		}
		prefix := "  "
		if i == m.cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s %s", prefix, check, typeLabels[t])
		if i == m.cursor {
			b.WriteString(theme.Selected.Render(line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + theme.Hint.Render("Cards without a selected variant are left out of the test."))
	if len(m.permittedTypes()) == 0 {
		b.WriteString("\n" + theme.Incorrect.Render("Select at least one type."))
	}
	return b.String()
}

func (m Model) viewCountStep() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("How many questions?") + "\n")
	b.WriteString(theme.Subtitle.Render(m.set.Title) + "\n\n")
	b.WriteString("  " + m.count.View() + "\n\n")
	b.WriteString(theme.Hint.Render("Leave empty to use every eligible card."))
	return b.String()
}

func (m Model) viewShuffleStep() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Card order") + "\n")
	b.WriteString(theme.Subtitle.Render(m.set.Title) + "\n\n")

	order := "In order"
	if m.shuffle {
		order = "Shuffled"
	}
	b.WriteString("  " + theme.Selected.Render(order) + "\n\n")
	b.WriteString(theme.Hint.Render("Space toggles, enter starts the test."))
	return b.String()
}

// Title is the header title for this screen.
func (m Model) Title() string {
	return "New test"
}
