// Package testutil runs Bubble Tea programs in tests.
package testutil

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TestProgram wraps a Bubble Tea program for testing
type TestProgram struct {
	program *tea.Program
	output  *syncBuffer
	done    chan struct{}
	t       *testing.T
}

// syncBuffer is written by the renderer and read by the test
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// idleInput never delivers a key press
type idleInput struct{}

func (idleInput) Read([]byte) (int, error) {
	return 0, io.EOF
}

// NewTestProgram starts model in the background with the given terminal size.
// The program is stopped when the test ends.
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()

	output := &syncBuffer{}
	p := tea.NewProgram(
		model,
		tea.WithInput(idleInput{}),
		tea.WithOutput(output),
	)

	tp := &TestProgram{
		program: p,
		output:  output,
		done:    make(chan struct{}),
		t:       t,
	}

	go func() {
		defer close(tp.done)
		if _, err := p.Run(); err != nil {
			t.Logf("Program error: %v", err)
		}
	}()
	t.Cleanup(tp.Quit)

	tp.Send(tea.WindowSizeMsg{Width: width, Height: height})

	return tp
}

// Send sends a message to the program
func (tp *TestProgram) Send(msg tea.Msg) {
	tp.program.Send(msg)
}

// Type simulates typing a string
func (tp *TestProgram) Type(s string) {
	for _, r := range s {
		tp.Send(tea.KeyMsg{
			Type:  tea.KeyRunes,
			Runes: []rune{r},
		})
	}
}

// SendKey sends a specific key press
func (tp *TestProgram) SendKey(key tea.KeyType) {
	tp.Send(tea.KeyMsg{Type: key})
}

// Output returns everything rendered so far
func (tp *TestProgram) Output() string {
	return tp.output.String()
}

// WaitForOutput waits for specific text to appear in output
func (tp *TestProgram) WaitForOutput(needle string, timeout time.Duration) bool {
	tp.t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(tp.Output(), needle) {
			return true
		}
		time.Sleep(20 * time.Millisecond)
	}
	return false
}

// AssertContains waits up to a second for expected to be rendered
func (tp *TestProgram) AssertContains(expected string) {
	tp.t.Helper()

	if !tp.WaitForOutput(expected, time.Second) {
		tp.t.Errorf("Output does not contain %q\nGot:\n%s", expected, tp.Output())
	}
}

// WaitForExit waits for the program to stop
func (tp *TestProgram) WaitForExit(timeout time.Duration) bool {
	select {
	case <-tp.done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Quit stops the program
func (tp *TestProgram) Quit() {
	tp.program.Quit()
}
