package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"k8s.io/apimachinery/pkg/util/duration"

	"github.com/renato0307/kdash/internal/ui"
)

// Header shows the app name, cluster context and last refresh time
type Header struct {
	appName     string
	context     string
	namespace   string
	lastRefresh time.Time
	width       int
	theme       *ui.Theme
	now         func() time.Time
}

func NewHeader(appName string, theme *ui.Theme) *Header {
	return &Header{
		appName: appName,
		theme:   theme,
		now:     time.Now,
	}
}

func (h *Header) SetContext(context string) {
	h.context = context
}

func (h *Header) SetNamespace(namespace string) {
	h.namespace = namespace
}

func (h *Header) SetLastRefresh(t time.Time) {
	h.lastRefresh = t
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

func (h *Header) View() string {
	timingStyle := lipgloss.NewStyle().
		Foreground(h.theme.Muted).
		Padding(0, 1)

	// "kdash • context: kind-dev • namespace: all"
	parts := []string{h.appName}
	if h.context != "" {
		parts = append(parts, fmt.Sprintf("context: %s", h.context))
	}
	namespace := h.namespace
	if namespace == "" {
		namespace = "all"
	}
	parts = append(parts, fmt.Sprintf("namespace: %s", namespace))
	left := h.theme.Header.Render(strings.Join(parts, " • "))

	var right string
	if !h.lastRefresh.IsZero() {
		elapsed := duration.HumanDuration(h.now().Sub(h.lastRefresh))
		right = timingStyle.Render(fmt.Sprintf("Last refresh: %s ago", elapsed))
	}

	spacing := max(h.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	spacer := lipgloss.NewStyle().
		Width(spacing).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, spacer, right)
}
