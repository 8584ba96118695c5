package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal frontend.
type Color uint8

// Colors used by the renderers.
const (
	ColorDefault Color = iota
	ColorGreen
	ColorDarkGreen
	ColorYellow
	ColorWhite
	ColorRed
	ColorCyan
	ColorGray
)
