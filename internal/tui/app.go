package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hmuraoka/shinkoku-navi/internal/advice"
	"github.com/hmuraoka/shinkoku-navi/internal/table"
	"github.com/hmuraoka/shinkoku-navi/internal/wizard"
)

// Screen identifies which of the three screens is active.
type Screen int

const (
	// ScreenWelcome is the landing screen.
	ScreenWelcome Screen = iota
	// ScreenWizard is the question/answer flow.
	ScreenWizard
	// ScreenPlan is the final checklist with advice.
	ScreenPlan
)

// AppConfig holds the dependencies the TUI needs.
type AppConfig struct {
	// Version is the semantic version shown in the title.
	Version string
	// Table is the loaded decision table.
	Table *table.Table
	// Fetcher produces the advice shown on the plan screen.
	Fetcher advice.Fetcher
}

// App is the top-level Bubble Tea model. It implements tea.Model; all
// fields are value state so Update can return modified copies.
type App struct {
	cfg      AppConfig
	theme    Theme
	keys     KeyMap
	help     help.Model
	progress progress.Model
	spin     spinner.Model

	screen   Screen
	session  wizard.Session
	resolver *wizard.Resolver

	cursor    int // option index on the wizard screen, task index on the plan screen
	showGuide bool

	tasks     []table.Task
	groups    []wizard.Group
	completed map[string]bool

	adv      *advice.Advice
	fetching bool

	width    int
	height   int
	ready    bool
	quitting bool
}

// NewApp constructs the TUI model positioned on the welcome screen.
func NewApp(cfg AppConfig) App {
	th := DefaultTheme()
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(ColorPrimary)),
	)
	return App{
		cfg:       cfg,
		theme:     th,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		progress:  progress.New(progress.WithDefaultGradient()),
		spin:      sp,
		screen:    ScreenWelcome,
		session:   wizard.New(cfg.Table),
		resolver:  wizard.NewResolver(cfg.Table),
		completed: map[string]bool{},
	}
}

// Init returns no command; bubbletea v1.x sends the initial WindowSizeMsg
// on its own.
func (a App) Init() tea.Cmd {
	return nil
}

// Update dispatches incoming messages to the active screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.progress.Width = clampInt(m.Width-8, 10, 72)
		a.ready = true
		return a, nil

	case adviceReadyMsg:
		adv := m.Advice
		a.adv = &adv
		a.fetching = false
		return a, nil

	case spinner.TickMsg:
		if !a.fetching {
			return a, nil
		}
		var cmd tea.Cmd
		a.spin, cmd = a.spin.Update(m)
		return a, cmd

	case tea.KeyMsg:
		if key.Matches(m, a.keys.Quit) {
			a.quitting = true
			return a, tea.Quit
		}
		if key.Matches(m, a.keys.Help) {
			a.help.ShowAll = !a.help.ShowAll
			return a, nil
		}
		switch a.screen {
		case ScreenWelcome:
			return a.updateWelcome(m)
		case ScreenWizard:
			return a.updateWizard(m)
		case ScreenPlan:
			return a.updatePlan(m)
		}
	}

	return a, nil
}

// updateWelcome handles keys on the landing screen: any confirm key starts
// the questionnaire.
func (a App) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Select) {
		return a.startWizard()
	}
	return a, nil
}

// startWizard resets all questionnaire state and switches to the wizard
// screen. The reset swaps whole values, so no partial state survives.
func (a App) startWizard() (tea.Model, tea.Cmd) {
	a.session = a.session.Restart()
	a.screen = ScreenWizard
	a.cursor = 0
	a.showGuide = false
	a.tasks = nil
	a.groups = nil
	a.completed = map[string]bool{}
	a.adv = nil
	a.fetching = false
	return a, nil
}

// updateWizard handles keys on the question screen.
func (a App) updateWizard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, ok := a.session.Current()
	if !ok {
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(q.Options)-1 {
			a.cursor++
		}
		return a, nil

	case key.Matches(msg, a.keys.Guide):
		a.showGuide = !a.showGuide
		return a, nil

	case key.Matches(msg, a.keys.Back):
		if s, err := a.session.Back(); err == nil {
			a.session = s
			a.cursor = 0
			a.showGuide = false
		}
		return a, nil

	case key.Matches(msg, a.keys.Select):
		return a.selectOption(q, a.cursor)
	}

	// Digits pick an option directly: 1 is the first option.
	if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(q.Options) {
		return a.selectOption(q, n-1)
	}

	return a, nil
}

// selectOption dispatches one option choice into the session and, when the
// questionnaire completes, resolves the checklist and kicks off the advice
// fetch in the background.
func (a App) selectOption(q table.Question, idx int) (tea.Model, tea.Cmd) {
	if idx < 0 || idx >= len(q.Options) {
		return a, nil
	}
	s, err := a.session.Select(q.Options[idx].ID)
	if err != nil {
		return a, nil
	}
	a.session = s
	a.cursor = 0
	a.showGuide = false

	if !s.Done() {
		return a, nil
	}

	answers := s.Answers()
	a.tasks = a.resolver.Resolve(answers)
	a.groups = wizard.Grouped(a.tasks)
	a.screen = ScreenPlan
	a.fetching = true

	profile := wizard.BuildProfile(a.cfg.Table, answers)
	return a, tea.Batch(a.spin.Tick, fetchAdviceCmd(a.cfg.Fetcher, profile))
}

// updatePlan handles keys on the checklist screen.
func (a App) updatePlan(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.tasks)-1 {
			a.cursor++
		}
		return a, nil

	case key.Matches(msg, a.keys.Toggle):
		if a.cursor >= 0 && a.cursor < len(a.tasks) {
			id := a.tasks[a.cursor].ID
			if a.completed[id] {
				delete(a.completed, id)
			} else {
				a.completed[id] = true
			}
		}
		return a, nil

	case key.Matches(msg, a.keys.Restart):
		a.screen = ScreenWelcome
		a.cursor = 0
		return a, nil
	}
	return a, nil
}

// fetchAdviceCmd runs the advice fetch off the UI loop. The fetch boundary
// absorbs failures, so the command always delivers a payload.
func fetchAdviceCmd(fetcher advice.Fetcher, profile string) tea.Cmd {
	return func() tea.Msg {
		return adviceReadyMsg{Advice: fetcher.Fetch(context.Background(), profile)}
	}
}

// View renders the active screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}
	if !a.ready {
		return "起動中..."
	}

	switch a.screen {
	case ScreenWizard:
		return a.viewWizard()
	case ScreenPlan:
		return a.viewPlan()
	default:
		return a.viewWelcome()
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
