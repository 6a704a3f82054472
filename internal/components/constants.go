package components

import "time"

// UI component constants
const (
	// StatusBarDisplayDuration is how long status messages (success, error,
	// info) are displayed before automatically clearing.
	StatusBarDisplayDuration = 5 * time.Second

	// PixelsPerCell converts column widths given in pixels to terminal cells
	PixelsPerCell = 7

	// CellPadding is the horizontal padding the table adds around each cell
	CellPadding = 2

	// MinListHeight is the smallest number of table lines a list renders
	MinListHeight = 3
)
