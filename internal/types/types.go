package types

import "time"

// MessageType defines the type of status message
type MessageType int

const (
	MessageTypeInfo MessageType = iota
	MessageTypeSuccess
	MessageTypeError
)

func (t MessageType) String() string {
	switch t {
	case MessageTypeSuccess:
		return "success"
	case MessageTypeError:
		return "error"
	default:
		return "info"
	}
}

// StatusMsg is shown in the status bar until a matching ClearStatusMsg arrives
type StatusMsg struct {
	Message string
	Type    MessageType
}

// ClearStatusMsg clears the status bar
type ClearStatusMsg struct {
	MessageID int // Only clear if this matches the current message ID
}

// RefreshCompleteMsg reports the end of a workloads refresh
type RefreshCompleteMsg struct {
	Duration time.Duration
	Err      error
}

// InfoMsg creates an info status message
func InfoMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeInfo}
}

// SuccessMsg creates a success status message
func SuccessMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeSuccess}
}

// ErrorStatusMsg creates an error status message
func ErrorStatusMsg(message string) StatusMsg {
	return StatusMsg{Message: message, Type: MessageTypeError}
}
