package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/kdash/internal/keyboard"
	"github.com/renato0307/kdash/internal/services"
	"github.com/renato0307/kdash/internal/ui"
)

// CellFunc renders the cell of item in column
type CellFunc[T any] func(item *T, column *services.ColumnSpec) services.RenderDirective

// KeyFunc returns a stable identity for item, used to keep the selection
// across refreshes
type KeyFunc[T any] func(item *T) string

// InvokeFunc is called when the selected row is activated
type InvokeFunc[T any] func(item *T, index int, event any)

// List is a table of items driven by a column schema
type List[T any] struct {
	heading  string
	columns  []services.ColumnSpec
	items    []T
	cell     CellFunc[T]
	key      KeyFunc[T]
	onInvoke InvokeFunc[T]

	table  table.Model
	keys   *keyboard.Keys
	theme  *ui.Theme
	width  int
	height int

	selectedKey string
}

// NewList creates an empty list. key may be nil, in which case the cursor
// keeps its index across SetItems calls.
func NewList[T any](theme *ui.Theme, heading string, columns []services.ColumnSpec, cell CellFunc[T], keyFn KeyFunc[T]) *List[T] {
	t := table.New(
		table.WithColumns(tableColumns(columns, 0)),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	t.SetStyles(theme.ToTableStyles())

	return &List[T]{
		heading: heading,
		columns: columns,
		cell:    cell,
		key:     keyFn,
		table:   t,
		keys:    keyboard.Default(),
		theme:   theme,
	}
}

// SetOnItemInvoked sets the row activation handler. nil disables activation.
func (l *List[T]) SetOnItemInvoked(fn InvokeFunc[T]) {
	l.onInvoke = fn
}

// SetItems replaces the items and redraws every cell
func (l *List[T]) SetItems(items []T) {
	l.items = items
	l.Rerender()
	l.restoreCursor()
}

// Items returns the current items
func (l *List[T]) Items() []T {
	return l.items
}

// Rerender redraws every cell without changing the items. Cells with
// time-dependent content (ages) change on each call.
func (l *List[T]) Rerender() {
	rows := make([]table.Row, len(l.items))
	for i := range l.items {
		row := make(table.Row, len(l.columns))
		for j := range l.columns {
			row[j] = l.cell(&l.items[i], &l.columns[j]).String()
		}
		rows[i] = row
	}

	l.table.SetRows(rows)
	if len(rows) > 0 && l.table.Cursor() >= len(rows) {
		l.table.SetCursor(len(rows) - 1)
	}
}

// Selected returns the item under the cursor and its index, or nil and -1
// when the list is empty
func (l *List[T]) Selected() (*T, int) {
	cursor := l.table.Cursor()
	if cursor < 0 || cursor >= len(l.items) {
		return nil, -1
	}
	return &l.items[cursor], cursor
}

// SetSize updates dimensions and recalculates column widths
func (l *List[T]) SetSize(width, height int) {
	l.width = width
	l.height = height

	// One line for the heading
	tableHeight := height - 1
	if tableHeight < MinListHeight {
		tableHeight = MinListHeight
	}
	l.table.SetHeight(tableHeight)
	l.table.SetColumns(tableColumns(l.columns, width))
	l.table.SetWidth(width)
}

// Update handles navigation and row activation
func (l *List[T]) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, l.keys.Invoke) {
		if item, index := l.Selected(); item != nil && l.onInvoke != nil {
			l.onInvoke(item, index, msg)
		}
		return nil
	}

	var cmd tea.Cmd
	l.table, cmd = l.table.Update(msg)
	l.trackSelection()
	return cmd
}

// View renders the heading followed by the table
func (l *List[T]) View() string {
	heading := l.theme.Header.Render(l.heading)
	return lipgloss.JoinVertical(lipgloss.Left, heading, l.table.View())
}

func (l *List[T]) trackSelection() {
	if l.key == nil {
		return
	}
	if item, _ := l.Selected(); item != nil {
		l.selectedKey = l.key(item)
	}
}

func (l *List[T]) restoreCursor() {
	if l.key == nil || l.selectedKey == "" {
		l.trackSelection()
		return
	}
	for i := range l.items {
		if l.key(&l.items[i]) == l.selectedKey {
			l.table.SetCursor(i)
			return
		}
	}
	l.trackSelection()
}

// tableColumns converts pixel widths to cells. Space left over in width goes
// to the first column.
func tableColumns(specs []services.ColumnSpec, width int) []table.Column {
	columns := make([]table.Column, len(specs))
	total := 0
	for i, spec := range specs {
		w := max(spec.MinWidth/PixelsPerCell, lipgloss.Width(spec.Name))
		columns[i] = table.Column{Title: spec.Name, Width: w}
		total += w + CellPadding
	}

	if len(columns) > 0 && width > total {
		columns[0].Width += width - total
	}
	return columns
}
