package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the platform renderer.
type Color uint8

// Predefined colors for game elements. The classic vector-arcade look is
// green on black, with white for the pad, yellow for exhaust and red for
// crashes.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorCyan
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
)
