package tui

// Rect represents a rectangular region of the terminal.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Layout holds the computed panel geometry for a given terminal size.
type Layout struct {
	Header, Footer Rect
	Nav            Rect
	Widget, Log    Rect
	TooSmall       bool // true when terminal is below the minimum 80×24
}

// Calculate computes the panel layout for a terminal of the given dimensions.
// Returns a Layout with TooSmall=true if width < 80 or height < 24.
//
// Algorithm:
//   - Header: full width, 1 row at top
//   - Footer: full width, 1 row at bottom
//   - Nav: 25% of width, clamped to [24, 35], full body height
//   - Widget: remaining width × 60% of body height (top-right)
//   - Log: remaining width × remaining body height (bottom-right)
func Calculate(width, height int) Layout {
	if width < 80 || height < 24 {
		return Layout{TooSmall: true}
	}

	bodyH := height - 2 // subtract header + footer rows

	navW := width * 25 / 100
	if navW < 24 {
		navW = 24
	}
	if navW > 35 {
		navW = 35
	}
	rightW := width - navW

	widgetH := bodyH * 60 / 100
	logH := bodyH - widgetH

	return Layout{
		Header: Rect{X: 0, Y: 0, Width: width, Height: 1},
		Footer: Rect{X: 0, Y: height - 1, Width: width, Height: 1},
		Nav:    Rect{X: 0, Y: 1, Width: navW, Height: bodyH},
		Widget: Rect{X: navW, Y: 1, Width: rightW, Height: widgetH},
		Log:    Rect{X: navW, Y: 1 + widgetH, Width: rightW, Height: logH},
	}
}

// innerDims returns the content dimensions for a panel rect accounting for
// the 1-character border on each side (2 total per dimension).
func innerDims(r Rect) (w, h int) {
	w = r.Width - 2
	if w < 1 {
		w = 1
	}
	h = r.Height - 2
	if h < 1 {
		h = 1
	}
	return
}
