package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/kdash/internal/commands"
	"github.com/renato0307/kdash/internal/components"
	"github.com/renato0307/kdash/internal/k8s"
	"github.com/renato0307/kdash/internal/keyboard"
	"github.com/renato0307/kdash/internal/logging"
	"github.com/renato0307/kdash/internal/messages"
	"github.com/renato0307/kdash/internal/screens"
	"github.com/renato0307/kdash/internal/types"
	"github.com/renato0307/kdash/internal/ui"
	"github.com/renato0307/kdash/internal/workloads"
)

const (
	// AppName is shown in the header
	AppName = "kdash"

	// DefaultRefreshInterval is how often services and workloads are refetched
	DefaultRefreshInterval = 10 * time.Second

	// statusBufferSize bounds the status messages queued by row handlers
	statusBufferSize = 8

	// chromeLines is the header, blank line, summary, help and status bar
	chromeLines = 5
)

// Config holds what the dashboard needs to run
type Config struct {
	Fetcher         k8s.Fetcher
	Context         string
	Namespace       string
	Theme           *ui.Theme
	RefreshInterval time.Duration
}

type tickMsg time.Time

type workloadsFetchedMsg struct {
	fetched  workloads.Fetched
	err      error
	duration time.Duration
}

type statusReceivedMsg struct {
	status types.StatusMsg
}

type Model struct {
	cfg     Config
	actions *workloads.Actions
	store   *workloads.Store

	header    *components.Header
	summary   *components.WorkloadsSummary
	statusBar *components.StatusBar
	services  *screens.ServicesScreen
	helpStyle lipgloss.Style
	keys      *keyboard.Keys

	statusCh chan types.StatusMsg

	width   int
	height  int
	syncing bool
	now     func() time.Time

	// manual is set by the refresh key and reported once the sync completes
	manual bool
}

func NewModel(cfg Config) Model {
	if cfg.Theme == nil {
		cfg.Theme = ui.GetTheme(ui.DefaultTheme)
	}
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = DefaultRefreshInterval
	}

	actions := workloads.NewActions()
	statusCh := make(chan types.StatusMsg, statusBufferSize)

	header := components.NewHeader(AppName, cfg.Theme)
	header.SetContext(cfg.Context)
	header.SetNamespace(cfg.Namespace)

	m := Model{
		cfg:       cfg,
		actions:   actions,
		store:     workloads.NewStore(actions),
		header:    header,
		summary:   components.NewWorkloadsSummary(cfg.Theme),
		statusBar: components.NewStatusBar(cfg.Theme),
		services: screens.NewServicesScreen(
			cfg.Fetcher,
			cfg.Namespace,
			cfg.Theme,
			commands.CopyClusterIP(notifier(statusCh)),
		),
		helpStyle: lipgloss.NewStyle().Foreground(cfg.Theme.Muted).PaddingLeft(1),
		keys:      keyboard.Default(),
		statusCh:  statusCh,
		syncing:   true,
		now:       time.Now,
	}
	m.summary.SetSummaries(m.store.Summaries())
	m.resize(80, 24)

	return m
}

// notifier queues status messages without blocking the caller. Messages are
// dropped when the queue is full.
func notifier(ch chan<- types.StatusMsg) commands.NotifyFunc {
	return func(msg types.StatusMsg) {
		select {
		case ch <- msg:
		default:
			logging.Warn("status message dropped", "message", msg.Message)
		}
	}
}

// Init starts the first fetch of services and workloads
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.services.Init(),
		m.fetchWorkloads(),
		m.waitForStatus(),
		m.tick(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.store.Close()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh):
			m.manual = true
			return m, tea.Batch(m.refresh(), messages.InfoCmd("Refreshing…"))
		}
		_, cmd := m.services.Update(msg)
		return m, cmd

	case tickMsg:
		m.services.Rerender()
		return m, tea.Batch(m.refresh(), m.tick())

	case workloadsFetchedMsg:
		m.syncing = false
		msg.fetched.Publish(m.actions)
		m.summary.SetSummaries(m.store.Summaries())
		m.header.SetLastRefresh(m.now())
		logging.Debug("workloads refreshed", "duration", msg.duration)
		complete := types.RefreshCompleteMsg{Duration: msg.duration, Err: msg.err}
		return m, func() tea.Msg { return complete }

	case types.RefreshCompleteMsg:
		manual := m.manual
		m.manual = false
		if msg.Err != nil {
			return m, messages.ErrorCmd("Some workloads failed to load: %v", msg.Err)
		}
		if manual {
			return m, messages.SuccessCmd("Workloads refreshed in %s", msg.Duration.Round(time.Millisecond))
		}
		return m, nil

	case statusReceivedMsg:
		return m, tea.Batch(m.showStatus(msg.status), m.waitForStatus())

	case types.StatusMsg:
		return m, m.showStatus(msg)

	case types.ClearStatusMsg:
		m.statusBar.Clear(msg.MessageID)
		return m, nil
	}

	_, cmd := m.services.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		"",
		m.summary.View(),
		m.services.View(),
		m.helpStyle.Render(m.services.HelpText()),
		m.statusBar.View(),
	)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.header.SetWidth(width)
	m.summary.SetWidth(width)
	m.statusBar.SetWidth(width)
	m.services.SetSize(width, height-chromeLines)
}

// refresh refetches services and, unless a sync is running, workloads
func (m *Model) refresh() tea.Cmd {
	cmds := []tea.Cmd{m.services.Refresh()}
	if !m.syncing {
		m.syncing = true
		cmds = append(cmds, m.fetchWorkloads())
	}
	return tea.Batch(cmds...)
}

// fetchWorkloads lists the workloads in the background. Publishing happens in
// Update so subscribers always run on the event loop.
func (m Model) fetchWorkloads() tea.Cmd {
	fetcher, namespace := m.cfg.Fetcher, m.cfg.Namespace
	return func() tea.Msg {
		start := time.Now()
		fetched, err := workloads.Fetch(context.Background(), fetcher, namespace)
		return workloadsFetchedMsg{fetched: fetched, err: err, duration: time.Since(start)}
	}
}

func (m Model) waitForStatus() tea.Cmd {
	ch := m.statusCh
	return func() tea.Msg {
		return statusReceivedMsg{status: <-ch}
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.RefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) showStatus(msg types.StatusMsg) tea.Cmd {
	id := m.statusBar.SetMessage(msg)
	return tea.Tick(components.StatusBarDisplayDuration, func(time.Time) tea.Msg {
		return types.ClearStatusMsg{MessageID: id}
	})
}

// Store returns the workloads store fed by the dashboard
func (m Model) Store() *workloads.Store {
	return m.store
}
