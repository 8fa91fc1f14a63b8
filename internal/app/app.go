package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhilash/crammer/internal/api"
	"github.com/abhilash/crammer/internal/deck"
	"github.com/abhilash/crammer/internal/mastery"
	"github.com/abhilash/crammer/internal/progress"
	"github.com/abhilash/crammer/internal/quizgen"
	"github.com/abhilash/crammer/internal/screens/configure"
	"github.com/abhilash/crammer/internal/screens/results"
	"github.com/abhilash/crammer/internal/screens/test"
	"github.com/abhilash/crammer/internal/session"
	"github.com/abhilash/crammer/internal/store"
	"github.com/abhilash/crammer/internal/ui/layout"
	"github.com/abhilash/crammer/internal/ui/theme"
)

// Options configures the interactive test flow.
type Options struct {
	Client *api.Client

	// Store is the local history log. Nil disables history without
	// affecting the test flow.
	Store *store.Store

	// SetID, when non-empty, skips the set picker and tests that set
	// directly with default generation options.
	SetID string
}

type state int

const (
	stateLoading state = iota
	stateConfigure
	stateFetching
	stateTest
	stateResults
	stateError
)

// Model is the root Bubble Tea model: a linear flow from test setup through
// answering to the graded result.
type Model struct {
	opts    Options
	tracker *progress.Tracker
	rng     *rand.Rand

	state  state
	width  int
	height int

	errMsg   string
	setTitle string

	// pendingOpts carries generation options between the configure
	// screen's StartMsg and the set fetch completing.
	pendingOpts quizgen.Options

	// cards indexes the fetched set's cards by ID, for the post-test
	// mastery breakdown.
	cards map[string]deck.Card

	sess      *session.Session
	configure configure.Model
	test      test.Model
	results   results.Model
}

func newModel(opts Options) Model {
	return Model{
		opts:    opts,
		tracker: progress.NewTracker(opts.Client),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		state:   stateLoading,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadSets()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			// Plain q quits everywhere except mid-answer, where it is
			// ordinary input.
			if m.state != stateTest {
				return m, tea.Quit
			}
		}

	case setsLoadedMsg:
		return m.onSetsLoaded(msg)

	case setLoadedMsg:
		return m.onSetLoaded(msg)

	case configure.StartMsg:
		m.setTitle = msg.SetTitle
		m.state = stateFetching
		return m, m.loadSet(msg.SetID, msg.Opts)

	case test.SubmitMsg:
		return m.onSubmit()

	case results.OverrideMsg:
		return m.onOverride(msg.Index)

	case results.RetryMsg:
		return m.onRetry()

	case results.NewTestMsg:
		m.state = stateLoading
		return m, m.loadSets()

	case publishDoneMsg:
		if msg.Err != nil {
			m.results.PublishWarning = "Some progress updates failed; your local result is unaffected."
		}
		return m, nil

	case overrideDoneMsg:
		if msg.Err != nil {
			m.results.PublishWarning = "The override adjustment could not be pushed to the backend."
		}
		return m, nil

	case timerTickMsg:
		if m.state == stateTest {
			m.sess.Elapsed = time.Since(m.sess.StartTime)
			return m, tick()
		}
		return m, nil
	}

	return m.updateScreen(msg)
}

func (m Model) updateScreen(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case stateConfigure:
		m.configure, cmd = m.configure.Update(msg)
	case stateTest:
		m.test, cmd = m.test.Update(msg)
	case stateResults:
		m.results, cmd = m.results.Update(msg)
	}
	return m, cmd
}

func (m Model) onSetsLoaded(msg setsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.state = stateError
		m.errMsg = msg.Err.Error()
		return m, nil
	}

	if m.opts.SetID != "" {
		for _, s := range msg.Sets {
			if s.ID == m.opts.SetID {
				m.setTitle = s.Title
			}
		}
		m.state = stateFetching
		return m, m.loadSet(m.opts.SetID, quizgen.Options{})
	}

	m.configure = configure.New(msg.Sets)
	m.state = stateConfigure
	return m, nil
}

func (m Model) onSetLoaded(msg setLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.state = stateError
		m.errMsg = msg.Err.Error()
		return m, nil
	}

	questions := quizgen.Build(msg.Set.Cards, m.pendingOpts, m.rng)

	sess := session.New(uuid.NewString(), msg.Set.ID)
	if err := sess.Start(questions); err != nil {
		m.state = stateError
		m.errMsg = "No questions could be generated: none of the cards have a variant matching your filters."
		return m, nil
	}

	m.sess = sess
	m.setTitle = msg.Set.Title
	m.cards = make(map[string]deck.Card, len(msg.Set.Cards))
	for _, c := range msg.Set.Cards {
		m.cards[c.ID] = c
	}
	m.test = test.New(sess)
	m.state = stateTest
	return m, tick()
}

func (m Model) onSubmit() (tea.Model, tea.Cmd) {
	result, err := m.sess.Submit()
	if err != nil {
		return m, nil
	}

	m.results = results.New(m.sess)
	m.results.MasteryLine = m.masteryLine()
	m.state = stateResults
	return m, tea.Batch(m.publish(result), m.logTest(result))
}

func (m Model) onOverride(i int) (tea.Model, tea.Cmd) {
	q, err := m.sess.Override(i)
	if err != nil {
		return m, nil
	}
	return m, tea.Batch(m.publishOverride(q.CardID), m.logOverride(q.CardID))
}

// masteryLine classifies every tested card under its counters plus this
// test's deltas and summarizes the buckets.
func (m Model) masteryLine() string {
	deltas := progress.Deltas(m.sess.Questions)
	counts := make(map[mastery.Bucket]int)
	for id, d := range deltas {
		card := m.cards[id]
		bucket := mastery.Classify(card.Correct+d.Correct, card.Incorrect+d.Incorrect, nil)
		counts[bucket]++
	}
	if len(counts) == 0 {
		return ""
	}
	return fmt.Sprintf("Cards: %d %s · %d %s · %d %s",
		counts[mastery.BucketMastered], mastery.BucketMastered,
		counts[mastery.BucketStudying], mastery.BucketStudying,
		counts[mastery.BucketLearning], mastery.BucketLearning)
}

func (m Model) onRetry() (tea.Model, tea.Cmd) {
	if err := m.sess.Restart(); err != nil {
		return m, nil
	}
	m.test = test.New(m.sess)
	m.state = stateTest
	return m, tick()
}

func (m *Model) loadSets() tea.Cmd {
	client := m.opts.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		sets, err := client.ListSets(ctx)
		return setsLoadedMsg{Sets: sets, Err: err}
	}
}

func (m *Model) loadSet(setID string, opts quizgen.Options) tea.Cmd {
	m.pendingOpts = opts
	client := m.opts.Client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		set, err := client.GetSet(ctx, setID)
		return setLoadedMsg{Set: set, Err: err}
	}
}

func (m *Model) publish(result *session.Result) tea.Cmd {
	tracker := m.tracker
	sess := m.sess
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		report := tracker.Publish(ctx, sess.SetID, sess.Questions, result)
		return publishDoneMsg{Err: report.Err()}
	}
}

func (m *Model) publishOverride(cardID string) tea.Cmd {
	tracker := m.tracker
	sess := m.sess
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		report := tracker.PublishOverride(ctx, sess.SetID, cardID, sess.Result)
		return overrideDoneMsg{Err: report.Err()}
	}
}

// logTest appends the submitted test and its answers to the local history.
// Best effort: a failed write never disturbs the flow.
func (m *Model) logTest(result *session.Result) tea.Cmd {
	if m.opts.Store == nil {
		return nil
	}
	repo := m.opts.Store.EventRepo()
	sess := m.sess
	title := m.setTitle
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		score := -1
		if result.HasScore {
			score = result.Score
		}
		_ = repo.AppendTest(ctx, store.TestEventData{
			TestID:       sess.ID,
			SetID:        sess.SetID,
			SetTitle:     title,
			Total:        result.Total,
			Correct:      result.Correct,
			Incorrect:    result.Incorrect,
			Skipped:      result.Skipped,
			Score:        score,
			DurationSecs: int(sess.Elapsed.Seconds()),
		})
		for _, q := range sess.Questions {
			_ = repo.AppendAnswer(ctx, store.AnswerEventData{
				TestID:       sess.ID,
				CardID:       q.CardID,
				QuestionType: string(q.Type),
				Prompt:       q.Prompt,
				Expected:     q.Expected,
				Given:        q.UserAnswer,
				Correct:      q.IsCorrect,
				Skipped:      q.IsSkipped,
				Overridden:   q.Overridden,
			})
		}
		return nil
	}
}

func (m *Model) logOverride(cardID string) tea.Cmd {
	if m.opts.Store == nil {
		return nil
	}
	repo := m.opts.Store.EventRepo()
	testID := m.sess.ID
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = repo.MarkOverridden(ctx, testID, cardID)
		return nil
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.title(), m.status(), m.width)
	footer := layout.RenderFooter(m.hints(), m.width)
	frame := layout.RenderFrame(header, m.content(), footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m Model) title() string {
	switch m.state {
	case stateLoading, stateFetching:
		return "Loading"
	case stateConfigure:
		return m.configure.Title()
	case stateTest:
		return m.test.Title()
	case stateResults:
		return m.results.Title()
	default:
		return "Error"
	}
}

func (m Model) status() string {
	switch m.state {
	case stateTest:
		return m.setTitle + "  " + formatClock(m.sess.Elapsed)
	case stateResults:
		return m.setTitle
	default:
		return ""
	}
}

func (m Model) content() string {
	switch m.state {
	case stateLoading:
		return theme.Subtitle.Render("Fetching your flashcard sets...")
	case stateFetching:
		return theme.Subtitle.Render("Fetching " + m.setTitle + "...")
	case stateConfigure:
		return m.configure.View()
	case stateTest:
		return m.test.View()
	case stateResults:
		return m.results.View()
	default:
		return theme.Incorrect.Render("Error: " + m.errMsg + "\n\n") +
			theme.Hint.Render("Press q to quit.")
	}
}

func (m Model) hints() []layout.KeyHint {
	switch m.state {
	case stateConfigure:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "q", Description: "Quit"},
		}
	case stateTest:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Answer"},
			{Key: "←→", Description: "Move"},
			{Key: "Ctrl+K", Description: "Skip"},
			{Key: "Ctrl+S", Description: "Submit"},
		}
	case stateResults:
		return []layout.KeyHint{
			{Key: "o", Description: "Mark correct"},
			{Key: "r", Description: "Retry"},
			{Key: "n", Description: "New test"},
			{Key: "q", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
}

func formatClock(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// Run starts the interactive test flow.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
