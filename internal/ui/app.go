package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shopflow/internal/events"
	"github.com/five82/shopflow/internal/prefs"
	"github.com/five82/shopflow/internal/shop"
	"github.com/five82/shopflow/internal/state"
)

// Options configures the UI.
type Options struct {
	Context        context.Context
	ViewModel      *shop.ViewModel
	ThemeName      string
	PrefsPath      string
	BannerInterval time.Duration
	Logger         *slog.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	vm             *shop.ViewModel
	logger         *slog.Logger
	prefsPath      string
	bannerInterval time.Duration
	keys           keyMap

	// Streams from the view-model
	snapshots <-chan state.ScreenState
	events    <-chan events.UserEvent

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool

	// Data state
	snapshot state.ScreenState

	// Focus and per-section selection
	focus    section
	banner   int
	category int
	product  int
	topBar   int

	feed viewport.Model

	// Toast overlay
	toast    string
	toastSeq int
}

// New creates a new Bubble Tea model bound to vm. The model starts watching
// the store and the event bus immediately, so no toast raised after New is
// lost.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	interval := opts.BannerInterval
	if interval <= 0 {
		interval = DefaultBannerInterval
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "ShopFlow"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return Model{
		vm:             opts.ViewModel,
		logger:         logger,
		prefsPath:      prefsPath,
		bannerInterval: interval,
		keys:           DefaultKeyMap(),
		snapshots:      opts.ViewModel.Store().Watch(ctx),
		events:         opts.ViewModel.Events().Listen(ctx),
		theme:          GetTheme(themeName),
		snapshot:       opts.ViewModel.Store().Snapshot(),
		focus:          focusProducts,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		waitForSnapshot(m.snapshots),
		waitForEvent(m.events),
		bannerTickCmd(m.bannerInterval),
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
			m.feed = viewport.New(m.width, m.feedHeight())
		}
		m.ready = true
		m.feed.Width = m.width
		m.feed.Height = m.feedHeight()
		m.refreshFeed()
		return m, nil

	case snapshotMsg:
		m.snapshot = state.ScreenState(msg)
		m.clampSelection()
		m.refreshFeed()
		return m, waitForSnapshot(m.snapshots)

	case eventMsg:
		return m.handleEvent(msg.event)

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case bannerTickMsg:
		if n := len(m.snapshot.Promotions); n > 1 {
			m.banner = (m.banner + 1) % n
			m.refreshFeed()
		}
		return m, bannerTickCmd(m.bannerInterval)

	case streamClosedMsg:
		m.logger.Debug("view-model closed, leaving UI")
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, k.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
				m.logger.Warn("save theme preference", slog.Any("error", err))
			}
		}
		m.refreshFeed()
		return m, nil

	case key.Matches(msg, k.Tab):
		m.focus = m.focus.next()
		m.refreshFeed()
		return m, nil

	case key.Matches(msg, k.ShiftTab):
		m.focus = m.focus.prev()
		m.refreshFeed()
		return m, nil

	case key.Matches(msg, k.Search):
		return m, action(m.vm.Search)

	case key.Matches(msg, k.Back):
		return m, action(m.vm.Back)

	case key.Matches(msg, k.OpenFavorites):
		return m, action(m.vm.TopBarFavorites)

	case key.Matches(msg, k.OpenCart):
		return m, action(m.vm.TopBarCart)

	case key.Matches(msg, k.Up):
		m.moveVertical(-1)
	case key.Matches(msg, k.Down):
		m.moveVertical(1)
	case key.Matches(msg, k.Left):
		m.moveHorizontal(-1)
	case key.Matches(msg, k.Right):
		m.moveHorizontal(1)

	case key.Matches(msg, k.Click):
		return m, m.clickFocused()

	case key.Matches(msg, k.SeeAll):
		switch m.focus {
		case focusCategories:
			return m, action(m.vm.SeeAllCategories)
		case focusProducts:
			return m, action(m.vm.SeeAllProducts)
		}
		return m, nil

	case key.Matches(msg, k.Favorite):
		if p, ok := m.focusedProduct(); ok {
			return m, action(func() { m.vm.ToggleFavorite(p.ID) })
		}
		return m, nil

	case key.Matches(msg, k.Cart):
		if p, ok := m.focusedProduct(); ok {
			return m, action(func() { m.vm.ToggleCart(p.ID) })
		}
		return m, nil

	case key.Matches(msg, k.Reviews):
		if p, ok := m.focusedProduct(); ok {
			return m, action(func() { m.vm.ReviewClicked(p.ID) })
		}
		return m, nil

	default:
		return m, nil
	}

	m.refreshFeed()
	return m, nil
}

// handleEvent surfaces one-shot events. Unknown event kinds are ignored.
func (m Model) handleEvent(ev events.UserEvent) (tea.Model, tea.Cmd) {
	switch ev := ev.(type) {
	case events.ToastMessage:
		m.toastSeq++
		m.toast = ev.Text
		return m, tea.Batch(waitForEvent(m.events), toastExpireCmd(m.toastSeq))
	default:
		return m, waitForEvent(m.events)
	}
}

// renderMain renders the top bar, the scrollable feed and the footer.
func (m Model) renderMain() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.feed.View(),
		m.renderFooter(),
	)
}

// feedHeight is the viewport height left after the top bar and footer.
func (m Model) feedHeight() int {
	return max(1, m.height-headerHeight-footerHeight)
}

// refreshFeed re-renders the feed and scrolls the focused item into view.
func (m *Model) refreshFeed() {
	if !m.ready {
		return
	}
	content, top, bottom := m.renderFeed()
	m.feed.SetContent(content)

	switch {
	case m.focus == focusTopBar:
		return
	case top < m.feed.YOffset:
		m.feed.SetYOffset(top)
	case bottom > m.feed.YOffset+m.feed.Height:
		m.feed.SetYOffset(bottom - m.feed.Height)
	}
}

// Messages

type snapshotMsg state.ScreenState

type eventMsg struct {
	event events.UserEvent
}

type toastExpiredMsg struct {
	seq int
}

type bannerTickMsg time.Time

type streamClosedMsg struct{}

// Commands

func waitForSnapshot(ch <-chan state.ScreenState) tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return streamClosedMsg{}
		}
		return snapshotMsg(snap)
	}
}

func waitForEvent(ch <-chan events.UserEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return streamClosedMsg{}
		}
		return eventMsg{event: ev}
	}
}

func bannerTickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return bannerTickMsg(t)
	})
}

func toastExpireCmd(seq int) tea.Cmd {
	return tea.Tick(ToastLifetime, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

// action runs a view-model handler off the UI goroutine. Its effects come
// back through the snapshot and event streams.
func action(fn func()) tea.Cmd {
	return func() tea.Msg {
		fn()
		return nil
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.ViewModel == nil {
		return errors.New("ui: view-model is required")
	}
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
