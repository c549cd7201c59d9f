package tui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/garrettladley/ecoscan/internal/apperr"
	"github.com/garrettladley/ecoscan/internal/auth"
	"github.com/garrettladley/ecoscan/internal/scan"
	"github.com/garrettladley/ecoscan/internal/toast"
	authcomp "github.com/garrettladley/ecoscan/internal/tui/components/auth"
	"github.com/garrettladley/ecoscan/internal/tui/components/footer"
	"github.com/garrettladley/ecoscan/internal/tui/components/toasts"
	"github.com/garrettladley/ecoscan/internal/tui/page/history"
	"github.com/garrettladley/ecoscan/internal/tui/page/home"
	processingpage "github.com/garrettladley/ecoscan/internal/tui/page/processing"
	"github.com/garrettladley/ecoscan/internal/tui/page/results"
	scanpage "github.com/garrettladley/ecoscan/internal/tui/page/scan"
	"github.com/garrettladley/ecoscan/internal/tui/page/splash"
	"github.com/garrettladley/ecoscan/internal/tui/page/tips"
	"github.com/garrettladley/ecoscan/internal/tui/theme"
	"github.com/garrettladley/ecoscan/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	splashPage page = iota
	homePage
	processingPage
	resultsPage
	historyPage
	scanPage
	tipsPage
)

func (p page) String() string {
	switch p {
	case splashPage:
		return "splash"
	case homePage:
		return "home"
	case processingPage:
		return "processing"
	case resultsPage:
		return "results"
	case historyPage:
		return "history"
	case scanPage:
		return "scan"
	case tipsPage:
		return "tips"
	default:
		return "unknown"
	}
}

type state struct {
	auth       authcomp.Indicator
	home       home.State
	processing processingpage.State
	results    results.State
	history    history.State
	scan       scanpage.State
	tips       tips.State
}

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	state          state
	deps           Deps
	// runID numbers processing runs so ticks from an abandoned run are dropped.
	runID uint64
}

func New(deps Deps) Model {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	if deps.Logger == nil {
		deps.Logger = xslog.Discard()
	}
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.NewID == nil {
		deps.NewID = uuid.NewString
	}
	if deps.Toasts == nil {
		deps.Toasts = toast.New(
			toast.WithClock(deps.Clock),
			toast.WithTTL(deps.Config.ToastTTL),
			toast.WithLogger(deps.Logger),
		)
	}
	if deps.AuthChecker == nil {
		deps.AuthChecker = auth.NewEnvChecker(deps.Config.APIKey)
	}

	return Model{
		page:  splashPage,
		theme: theme.New(),
		deps:  deps,
		state: state{
			home: home.State{ImagePath: deps.ImagePath},
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		splash.TickCmd(),
		checkAuthCmd(m.deps.Ctx, m.deps.AuthChecker),
		home.LoadCmd(m.deps.Ctx, m.deps.Repository),
		listenToastsCmd(m.deps.Toasts),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.page == scanPage {
			return m, m.handleScanKey(msg)
		}
		return m, m.handleKey(msg.String())

	// splash timer expired, go home or straight into the scan
	case splash.TickMsg:
		if m.page != splashPage {
			return m, nil
		}
		m.navigate(homePage)
		if m.deps.ImagePath != "" {
			return m, m.startScan()
		}

	case AuthStatusMsg:
		m.state.auth.Checked = true
		m.state.auth.Authenticated = msg.Err == nil && msg.Authenticated
		switch appErr := apperr.AsError(msg.Err); {
		case appErr != nil && appErr.Kind == apperr.KindUnauthorized:
			m.deps.Logger.WarnContext(m.deps.Ctx, "session rejected", xslog.Error(msg.Err))
			m.deps.Toasts.Enqueue("Unauthorized", toast.WithDescription(appErr.Message), toast.Destructive())
		case msg.Err != nil:
			m.deps.Logger.WarnContext(m.deps.Ctx, "auth check failed", xslog.Error(msg.Err))
			m.deps.Toasts.Enqueue("Could not verify session", toast.WithDescription(msg.Err.Error()), toast.Destructive())
		case !msg.Authenticated:
			m.deps.Toasts.Enqueue("Unauthorized",
				toast.WithDescription("You are logged out. Logging in again..."),
				toast.Destructive(),
			)
		}

	case ToastsChangedMsg:
		return m, listenToastsCmd(m.deps.Toasts)

	case home.LoadMsg:
		m.state.home.Apply(msg)
		if msg.Err != nil {
			m.deps.Logger.ErrorContext(m.deps.Ctx, "failed to load home", xslog.Error(msg.Err))
			m.deps.Toasts.Enqueue("Could not load scans", toast.Destructive())
		}

	case history.LoadMsg:
		m.state.history.Apply(msg)
		if msg.Err != nil {
			m.deps.Logger.ErrorContext(m.deps.Ctx, "failed to load history", xslog.Error(msg.Err))
			m.deps.Toasts.Enqueue("Could not load history", toast.Destructive())
		}

	case results.LoadMsg:
		if msg.Err != nil {
			m.deps.Logger.ErrorContext(m.deps.Ctx, "failed to load scan", xslog.ScanID(msg.ID), xslog.Error(msg.Err))
		}
		m.state.results = results.Resolve(msg, m.deps.Clock.Now())
		m.navigate(resultsPage)

	case processingpage.TickMsg:
		if m.page != processingPage {
			return m, nil
		}
		return m, m.state.processing.Tick(msg)

	case processingpage.CompleteMsg:
		if m.page != processingPage || !m.state.processing.Owns(msg) {
			return m, nil
		}
		s := scan.Sample(m.deps.NewID(), m.state.processing.ImagePath, m.deps.Clock.Now())
		m.deps.Logger.InfoContext(m.deps.Ctx, "processing complete", xslog.ScanID(s.ID))
		m.state.processing.Cancel()
		m.state.results = results.State{Scan: s}
		m.navigate(resultsPage)
		return m, saveScanCmd(m.deps.Ctx, m.deps.Repository, s)

	case ScanSavedMsg:
		if msg.Err != nil {
			m.deps.Logger.ErrorContext(m.deps.Ctx, "failed to save scan", xslog.ScanID(msg.Scan.ID), xslog.Error(msg.Err))
			m.deps.Toasts.Enqueue("Could not save scan", toast.WithDescription(describe(msg.Err)), toast.Destructive())
			return m, nil
		}
		m.deps.Toasts.Enqueue("Receipt processed", toast.WithDescription(
			fmt.Sprintf("%s scored %d (%s)", msg.Scan.StoreName, msg.Scan.Score, scan.Rating(msg.Scan.Score)),
		))
		return m, home.LoadCmd(m.deps.Ctx, m.deps.Repository)

	case ScanDeletedMsg:
		switch {
		case apperr.IsNotFound(msg.Err):
			m.deps.Toasts.Enqueue("Scan already deleted")
		case msg.Err != nil:
			m.deps.Logger.ErrorContext(m.deps.Ctx, "failed to delete scan", xslog.ScanID(msg.ID), xslog.Error(msg.Err))
			m.deps.Toasts.Enqueue("Could not delete scan", toast.WithDescription(describe(msg.Err)), toast.Destructive())
			return m, nil
		default:
			m.deps.Logger.InfoContext(m.deps.Ctx, "scan deleted", xslog.ScanID(msg.ID))
			m.deps.Toasts.Enqueue("Scan deleted")
		}
		return m, history.LoadCmd(m.deps.Ctx, m.deps.Repository)

	default:
		// cursor blinks and pastes belong to the path input
		if m.page == scanPage {
			return m, m.state.scan.Update(msg)
		}
	}

	return m, nil
}

func (m *Model) handleKey(key string) tea.Cmd {
	switch m.page {
	case splashPage:
		if key == "q" {
			return tea.Quit
		}

	case homePage:
		switch key {
		case "q":
			return tea.Quit
		case "s":
			return m.openScan()
		case "h":
			return m.openHistory()
		case "t":
			m.state.tips = tips.State{}
			m.navigate(tipsPage)
		}

	case processingPage:
		if key == "esc" {
			m.deps.Logger.InfoContext(m.deps.Ctx, "processing cancelled",
				xslog.Percent(m.state.processing.Snapshot().Percent),
			)
			m.state.processing.Cancel()
			return m.goHome()
		}

	case resultsPage:
		switch key {
		case "q":
			return tea.Quit
		case "up", "k":
			m.state.results.ScrollUp()
		case "down", "j":
			m.state.results.ScrollDown(m.theme, m.bodyHeight())
		case "s":
			return m.openScan()
		case "h":
			return m.openHistory()
		case "esc":
			return m.goHome()
		}

	case historyPage:
		switch key {
		case "q":
			return tea.Quit
		case "up", "k":
			m.state.history.Up()
		case "down", "j":
			m.state.history.Down()
		case "enter":
			if s, ok := m.state.history.Selected(); ok {
				return results.LoadCmd(m.deps.Ctx, m.deps.Repository, s.ID)
			}
		case "d":
			if s, ok := m.state.history.Selected(); ok {
				return deleteScanCmd(m.deps.Ctx, m.deps.Repository, s.ID)
			}
		case "esc":
			return m.goHome()
		}

	case tipsPage:
		switch key {
		case "q":
			return tea.Quit
		case "up", "k":
			m.state.tips.ScrollUp()
		case "down", "j":
			m.state.tips.ScrollDown(m.theme, m.bodyHeight())
		case "s":
			return m.openScan()
		case "esc":
			return m.goHome()
		}
	}
	return nil
}

// handleScanKey routes keys on the receipt picker. Everything but esc and
// enter is typed into the path input while editing.
func (m *Model) handleScanKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		if m.state.scan.Editing() {
			return m.goHome()
		}
		return m.state.scan.Edit()

	case "enter":
		if !m.state.scan.Editing() {
			m.deps.ImagePath = m.state.scan.Selected
			m.state.home.ImagePath = m.state.scan.Selected
			return m.startScan()
		}
		if err := m.state.scan.Submit(); err != nil {
			m.rejectReceipt(m.state.scan.Value(), err)
		}
		return nil

	default:
		return m.state.scan.Update(msg)
	}
}

func (m *Model) startScan() tea.Cmd {
	if m.deps.ImagePath == "" {
		m.deps.Toasts.Enqueue("No receipt selected",
			toast.WithDescription("Press s and enter the path to a photo of your receipt."),
			toast.Destructive(),
		)
		return nil
	}

	path, err := scan.ValidateImage(m.deps.ImagePath)
	if err != nil {
		m.rejectReceipt(m.deps.ImagePath, err)
		return nil
	}

	m.runID++
	st, cmd, err := processingpage.Start(m.runID, path, m.deps.Config.TickInterval, m.deps.Config.ResultsDelay)
	if err != nil {
		m.deps.Logger.ErrorContext(m.deps.Ctx, "failed to start processing", xslog.Error(err))
		m.deps.Toasts.Enqueue("Could not start processing", toast.Destructive())
		return nil
	}

	m.deps.Logger.InfoContext(m.deps.Ctx, "processing started", xslog.Path(path))
	m.state.processing = st
	m.navigate(processingPage)
	return cmd
}

func (m *Model) rejectReceipt(path string, err error) {
	if appErr := apperr.AsError(err); appErr != nil && appErr.Code == "no_receipt" {
		m.deps.Toasts.Enqueue("No receipt selected",
			toast.WithDescription("Enter the path to a photo of your receipt."),
			toast.Destructive(),
		)
		return
	}
	m.deps.Logger.WarnContext(m.deps.Ctx, "invalid receipt image", xslog.Path(path), xslog.Error(err))
	m.deps.Toasts.Enqueue("Invalid receipt", toast.WithDescription(describe(err)), toast.Destructive())
}

// openScan shows the receipt picker, prefilled with the last receipt.
func (m *Model) openScan() tea.Cmd {
	st, cmd := scanpage.New(m.deps.ImagePath)
	m.state.scan = st
	m.navigate(scanPage)
	return cmd
}

func (m *Model) openHistory() tea.Cmd {
	m.navigate(historyPage)
	return history.LoadCmd(m.deps.Ctx, m.deps.Repository)
}

func (m *Model) goHome() tea.Cmd {
	m.navigate(homePage)
	return home.LoadCmd(m.deps.Ctx, m.deps.Repository)
}

func (m *Model) navigate(p page) {
	if m.page == p {
		return
	}
	m.deps.Logger.DebugContext(m.deps.Ctx, "navigate", xslog.Page(p.String()))
	m.page = p
}

// describe returns the user-facing part of err.
func describe(err error) string {
	if appErr := apperr.AsError(err); appErr != nil {
		return appErr.Message
	}
	return err.Error()
}

func (m *Model) hints() []string {
	switch m.page {
	case homePage:
		return []string{"s scan", "h history", "t tips", "q quit"}
	case processingPage:
		return []string{"esc cancel"}
	case resultsPage:
		return []string{"↑/↓ scroll", "s scan again", "h history", "esc home", "q quit"}
	case historyPage:
		return []string{"↑/↓ select", "enter open", "d delete", "esc home", "q quit"}
	case scanPage:
		if m.state.scan.Editing() {
			return []string{"enter preview", "esc home"}
		}
		return []string{"enter process", "esc change"}
	case tipsPage:
		return []string{"↑/↓ scroll", "s scan", "esc home", "q quit"}
	default:
		return nil
	}
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	// splash uses pure black BG, everything else uses default dark
	if m.page == splashPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	view.SetContent(m.render())
	return view
}

// render composes the page body, footer and toast overlay.
func (m *Model) render() string {
	var (
		width      = m.viewportWidth
		height     = m.viewportHeight
		foot       = m.footer()
		footHeight = lipgloss.Height(foot)
		bodyHeight = max(height-footHeight, 0)
		body       string
	)

	switch m.page {
	case splashPage:
		body = splash.View(m.theme, width, height)
	case homePage:
		body = home.View(m.theme, m.state.home, width, bodyHeight)
	case processingPage:
		body = processingpage.View(m.theme, m.state.processing, width, bodyHeight)
	case resultsPage:
		body = results.View(m.theme, m.state.results, width, bodyHeight)
	case historyPage:
		body = history.View(m.theme, m.state.history, width, bodyHeight)
	case scanPage:
		body = scanpage.View(m.theme, m.state.scan, width, bodyHeight)
	case tipsPage:
		body = tips.View(m.theme, m.state.tips, width, bodyHeight)
	}

	content := body
	if foot != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, body, foot)
	}

	// toasts float above the footer at the bottom right
	return overlayBottomRight(content, toasts.Render(m.deps.Toasts.Entries()), width, 2, footHeight)
}

func (m *Model) footer() string {
	if m.page == splashPage {
		return ""
	}
	return footer.New(m.state.auth.Render(), m.viewportWidth, m.hints()...).
		WithDBPath(m.deps.DBPath).
		Render()
}

// bodyHeight is the space left for the page above the footer.
func (m *Model) bodyHeight() int {
	return max(m.viewportHeight-lipgloss.Height(m.footer()), 0)
}
