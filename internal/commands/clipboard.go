package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// writeClipboard is replaced in tests
var writeClipboard = clipboard.WriteAll

// CopyToClipboard copies text to system clipboard and returns a user-friendly message
func CopyToClipboard(text string) (string, error) {
	if err := writeClipboard(text); err != nil {
		return "", fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return fmt.Sprintf("Copied %s to clipboard", text), nil
}
