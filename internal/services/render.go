package services

import (
	"time"

	"k8s.io/apimachinery/pkg/util/duration"
)

// RenderKind tells a list widget how to draw a cell
type RenderKind int

const (
	// RenderNone means nothing is drawn for the cell
	RenderNone RenderKind = iota
	// RenderText draws Text as-is
	RenderText
	// RenderDuration draws the time elapsed between StartDate and EndDate
	RenderDuration
)

// RenderDirective is the result of rendering a single cell
type RenderDirective struct {
	Kind      RenderKind
	Text      string
	StartDate time.Time
	EndDate   time.Time
}

// String returns the display text of the directive
func (d RenderDirective) String() string {
	switch d.Kind {
	case RenderText:
		return d.Text
	case RenderDuration:
		if d.StartDate.IsZero() {
			return "<unknown>"
		}
		return duration.HumanDuration(d.EndDate.Sub(d.StartDate))
	default:
		return ""
	}
}

// CellRenderer renders service rows cell by cell
type CellRenderer struct {
	now func() time.Time
}

// NewCellRenderer creates a renderer reading the current time from now.
// A nil now uses time.Now.
func NewCellRenderer(now func() time.Time) *CellRenderer {
	if now == nil {
		now = time.Now
	}
	return &CellRenderer{now: now}
}

var defaultRenderer = NewCellRenderer(nil)

// RenderCell renders a cell with the wall clock
func RenderCell(row *ServiceRow, column *ColumnSpec) RenderDirective {
	return defaultRenderer.Render(row, column)
}

// Render returns the directive for the given row and column. A missing row or
// column, or an unknown column key, renders nothing. The age column reads the
// clock on every call.
func (r *CellRenderer) Render(row *ServiceRow, column *ColumnSpec) RenderDirective {
	if row == nil || column == nil {
		return RenderDirective{Kind: RenderNone}
	}

	var text string
	switch column.Key {
	case PackageKey:
		text = row.Package
	case TypeKey:
		text = row.Type
	case ClusterIPKey:
		text = row.ClusterIP
	case ExternalIPKey:
		text = row.ExternalIP
	case PortKey:
		text = row.Port
	case AgeKey:
		return RenderDirective{
			Kind:      RenderDuration,
			StartDate: row.CreationTimestamp,
			EndDate:   r.now(),
		}
	default:
		return RenderDirective{Kind: RenderNone}
	}

	return RenderDirective{Kind: RenderText, Text: text}
}
