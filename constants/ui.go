package constants

// Terminal Layout
const (
	// HUDRows is the number of rows reserved at the bottom for status text
	HUDRows = 2

	// CellAspect is the height/width ratio of a terminal cell
	CellAspect = 2.0

	// KeyHoldFrames is how many frames a terminal key press counts as held,
	// terminals report no key release
	KeyHoldFrames = 8
)

// Terminal Glyphs
const (
	EnemyShadeChar  = '▓'
	EnemyMarkerChar = '◆'
	BulletChar      = '•'
	CrosshairChar   = '+'
)

// Window Layout
const (
	WindowWidth  = 1024
	WindowHeight = 768
)
