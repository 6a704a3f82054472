package components

import (
	"github.com/renato0307/kdash/internal/types"
	"github.com/renato0307/kdash/internal/ui"
)

// StatusBar displays status messages (success, errors, info)
type StatusBar struct {
	message     string
	messageType types.MessageType
	messageID   int
	width       int
	theme       *ui.Theme
}

// NewStatusBar creates a new status bar
func NewStatusBar(theme *ui.Theme) *StatusBar {
	return &StatusBar{
		theme: theme,
	}
}

// SetMessage shows msg and returns its ID, to be passed back in
// types.ClearStatusMsg
func (sb *StatusBar) SetMessage(msg types.StatusMsg) int {
	sb.messageID++
	sb.message = msg.Message
	sb.messageType = msg.Type
	return sb.messageID
}

// Clear clears the message if id is still the current one. A newer message
// stays until its own clear arrives.
func (sb *StatusBar) Clear(id int) {
	if id != sb.messageID {
		return
	}
	sb.message = ""
	sb.messageType = types.MessageTypeInfo
}

// Message returns the current message text
func (sb *StatusBar) Message() string {
	return sb.message
}

// SetWidth sets the status bar width
func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

// View renders the status bar. An empty bar still takes one line.
func (sb *StatusBar) View() string {
	baseStyle := sb.theme.StatusBar.Width(sb.width)

	if sb.message == "" {
		return baseStyle.Render("")
	}

	var prefix string
	style := baseStyle.
		Foreground(sb.theme.Background).
		Bold(true)

	switch sb.messageType {
	case types.MessageTypeSuccess:
		style = style.Background(sb.theme.Success)
		prefix = "✓ "
	case types.MessageTypeError:
		style = style.Background(sb.theme.Error)
		prefix = "✗ "
	default:
		style = style.Background(sb.theme.Primary)
		prefix = "ℹ "
	}

	return style.Render(prefix + sb.message)
}
