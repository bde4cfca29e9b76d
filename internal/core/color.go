package core

// Color represents a foreground color for a screen cell.
// Backends translate it to lipgloss or tcell colors.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorGray
	ColorBrightGreen
)
