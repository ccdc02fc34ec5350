package core

// Color is a palette entry for a screen cell's foreground. The terminal
// renderer decides the actual shade.
type Color uint8

// Palette. Food kinds use Orange, Yellow, Red and BrightYellow; the player
// shifts from BrightGreen to BrightRed as health fills up.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorBrown
	ColorGray
)
