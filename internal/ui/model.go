package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/marquee/internal/catalog"
	"github.com/five82/marquee/internal/logging"
	"github.com/five82/marquee/internal/prefs"
	"github.com/five82/marquee/internal/state"
)

// Options configures the catalog view.
type Options struct {
	Context   context.Context
	Fetcher   catalog.MovieFetcher
	Logger    *logging.Logger
	ThemeName string
	Compact   bool
	PrefsPath string // empty disables saving preferences
}

var nextViewID atomic.Uint64

// Model is the movie catalog view. It owns one ViewState and performs one
// fetch per instance.
type Model struct {
	id        uint64
	ctx       context.Context
	fetcher   catalog.MovieFetcher
	logger    *logging.Logger
	prefsPath string
	keys      keyMap

	state state.ViewState

	theme    Theme
	styles   Styles
	compact  bool
	showHelp bool

	width    int
	height   int
	ready    bool
	viewport viewport.Model
}

// New creates a catalog view in the initial loading state.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	theme := GetTheme(opts.ThemeName)
	id := nextViewID.Add(1)
	return Model{
		id:        id,
		ctx:       ctx,
		fetcher:   opts.Fetcher,
		logger:    logger.With("view", id),
		prefsPath: opts.PrefsPath,
		keys:      defaultKeyMap(),
		state:     state.Initial(),
		theme:     theme,
		styles:    theme.Styles(),
		compact:   opts.Compact,
	}
}

// State returns the current view state.
func (m Model) State() state.ViewState {
	return m.state
}

// Init implements tea.Model. Bubble Tea calls it once per program, which
// makes it the view's one and only fetch trigger.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(catalogTitle),
		fetchMoviesCmd(m.ctx, m.fetcher, m.id),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, 0)
			m.ready = true
		}
		m.syncViewport()
		return m, nil

	case moviesLoadedMsg:
		if msg.viewID != m.id {
			return m, nil
		}
		m.state = state.Settle(m.state, msg.movies, nil)
		m.logger.Info("movies loaded", "count", len(msg.movies))
		m.syncViewport()
		m.viewport.GotoTop()
		return m, nil

	case moviesFailedMsg:
		if msg.viewID != m.id {
			return m, nil
		}
		m.state = state.Settle(m.state, nil, msg.err)
		m.logger.Error("fetch movies failed", "error", msg.err)
		m.syncViewport()
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready || m.state.Loading() {
		return render(m.state, m.styles, m.layout())
	}

	parts := []string{renderHeader(m.state, m.styles)}
	if len(m.state.Movies()) > 0 {
		parts = append(parts, m.viewport.View())
	}
	if m.showHelp {
		parts = append(parts, m.renderHelp())
	}
	return strings.Join(parts, "\n")
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		m.syncViewport()
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles()
		m.syncViewport()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleCompact):
		m.compact = !m.compact
		m.syncViewport()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	if !m.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) layout() layout {
	return layout{Width: m.width, Compact: m.compact}
}

// syncViewport re-renders the cards into the viewport and fits it between
// the header and the optional help footer.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	used := lipgloss.Height(renderHeader(m.state, m.styles)) + 1
	if m.showHelp {
		used += lipgloss.Height(m.renderHelp()) + 1
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-used, 1)
	m.viewport.SetContent(renderCards(m.state.Movies(), m.styles, m.layout()))
}

func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Compact: m.compact}); err != nil {
		m.logger.Warn("save prefs failed", "error", err)
	}
}

// Messages

type moviesLoadedMsg struct {
	viewID uint64
	movies []catalog.Movie
}

type moviesFailedMsg struct {
	viewID uint64
	err    error
}

// Commands

// fetchMoviesCmd issues the view's single fetch. Whatever happens inside the
// fetcher, including a panic, the command settles with exactly one message.
func fetchMoviesCmd(ctx context.Context, fetcher catalog.MovieFetcher, viewID uint64) tea.Cmd {
	return func() (msg tea.Msg) {
		defer func() {
			if r := recover(); r != nil {
				msg = moviesFailedMsg{viewID: viewID, err: fmt.Errorf("%w: fetcher panicked: %v", catalog.ErrFetchFailed, r)}
			}
		}()
		if fetcher == nil {
			return moviesFailedMsg{viewID: viewID, err: fmt.Errorf("%w: no fetcher configured", catalog.ErrFetchFailed)}
		}
		movies, err := fetcher.FetchMovies(ctx)
		if err != nil {
			return moviesFailedMsg{viewID: viewID, err: err}
		}
		return moviesLoadedMsg{viewID: viewID, movies: movies}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx is
// cancelled. It returns the view's final state.
func Run(ctx context.Context, opts Options) (state.ViewState, error) {
	if opts.Context == nil {
		opts.Context = ctx
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return nil, fmt.Errorf("run catalog view: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.state, nil
	}
	return m.state, nil
}
