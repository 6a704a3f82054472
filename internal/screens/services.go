package screens

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	corev1 "k8s.io/api/core/v1"

	"github.com/renato0307/kdash/internal/components"
	"github.com/renato0307/kdash/internal/k8s"
	"github.com/renato0307/kdash/internal/keyboard"
	"github.com/renato0307/kdash/internal/logging"
	"github.com/renato0307/kdash/internal/messages"
	"github.com/renato0307/kdash/internal/resources"
	"github.com/renato0307/kdash/internal/services"
	"github.com/renato0307/kdash/internal/ui"
)

// ServicesFetchedMsg carries the result of a services fetch
type ServicesFetchedMsg struct {
	List     *corev1.ServiceList
	Err      error
	Duration time.Duration
}

// ServicesScreen lists the services of a namespace
type ServicesScreen struct {
	fetcher       k8s.Fetcher
	namespace     string
	onItemInvoked services.ItemInvokedFunc

	model    *services.ServicesList
	list     *components.List[services.ServiceRow]
	renderer *services.CellRenderer
}

// NewServicesScreen creates the screen. onItemInvoked runs when a row is
// activated and may be nil.
func NewServicesScreen(fetcher k8s.Fetcher, namespace string, theme *ui.Theme, onItemInvoked services.ItemInvokedFunc) *ServicesScreen {
	s := &ServicesScreen{
		fetcher:       fetcher,
		namespace:     namespace,
		onItemInvoked: onItemInvoked,
		renderer:      services.NewCellRenderer(nil),
	}

	s.list = components.NewList(
		theme,
		resources.ServicesDetailsText,
		services.Columns(),
		s.renderer.Render,
		func(row *services.ServiceRow) string { return row.UID },
	)
	s.list.SetOnItemInvoked(func(item *services.ServiceRow, index int, event any) {
		if s.model == nil {
			return
		}
		if row := s.model.Row(index); row != nil {
			item = row
		}
		s.model.Invoke(item, index, event)
	})

	return s
}

func (s *ServicesScreen) ID() string {
	return "services"
}

func (s *ServicesScreen) Title() string {
	return resources.ServicesDetailsText
}

func (s *ServicesScreen) HelpText() string {
	return keyboard.HelpLine(keyboard.Default().ShortHelp()...)
}

func (s *ServicesScreen) Init() tea.Cmd {
	return s.Refresh()
}

// Refresh fetches the services in the background
func (s *ServicesScreen) Refresh() tea.Cmd {
	fetcher, namespace := s.fetcher, s.namespace
	return func() tea.Msg {
		start := time.Now()
		list, err := fetcher.ListServices(context.Background(), namespace)
		return ServicesFetchedMsg{List: list, Err: err, Duration: time.Since(start)}
	}
}

func (s *ServicesScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ServicesFetchedMsg:
		if msg.Err != nil {
			logging.Error("failed to fetch services", "namespace", s.namespace, "error", msg.Err)
			return s, messages.ErrorCmd("Failed to fetch services: %v", msg.Err)
		}
		s.model = logging.TimeWithResult("build services list", func() *services.ServicesList {
			return services.NewServicesList(msg.List, s.onItemInvoked)
		})
		s.list.SetItems(s.model.Rows)
		logging.Debug("services refreshed", "count", len(s.model.Rows), "duration", msg.Duration)
		return s, nil

	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		return s, nil
	}

	return s, s.list.Update(msg)
}

func (s *ServicesScreen) View() string {
	return s.list.View()
}

func (s *ServicesScreen) SetSize(width, height int) {
	s.list.SetSize(width, height)
}

// Rerender redraws the rows so ages stay current
func (s *ServicesScreen) Rerender() {
	s.list.Rerender()
}

// Model returns the list model of the last successful fetch, or nil
func (s *ServicesScreen) Model() *services.ServicesList {
	return s.model
}

// Selected returns the row under the cursor, or nil
func (s *ServicesScreen) Selected() *services.ServiceRow {
	if s.model == nil {
		return nil
	}
	_, index := s.list.Selected()
	return s.model.Row(index)
}
