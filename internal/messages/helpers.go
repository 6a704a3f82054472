package messages

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/kdash/internal/types"
)

func statusCmd(build func(string) types.StatusMsg, format string, args []any) tea.Cmd {
	msg := build(fmt.Sprintf(format, args...))
	return func() tea.Msg { return msg }
}

// ErrorCmd reports a failure in the status bar
//
//	return s, messages.ErrorCmd("Failed to fetch services: %v", err)
func ErrorCmd(format string, args ...any) tea.Cmd {
	return statusCmd(types.ErrorStatusMsg, format, args)
}

// SuccessCmd reports a completed action in the status bar
func SuccessCmd(format string, args ...any) tea.Cmd {
	return statusCmd(types.SuccessMsg, format, args)
}

// InfoCmd shows a neutral message in the status bar
func InfoCmd(format string, args ...any) tea.Cmd {
	return statusCmd(types.InfoMsg, format, args)
}

// WrapError prefixes err with a formatted description, keeping it
// reachable through errors.Is and errors.As.
//
//	return nil, messages.WrapError(err, "failed to list pods in namespace %q", namespace)
func WrapError(err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
