package tui

// Color constants for the ChronoDesk TUI theme
const (
	// Base Colors
	ColorCardBackground = "#151A2E" // Dark navy
	ColorBorder         = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2"
	ColorSecondaryText = "#B1B8C7"
	ColorDisabledText  = "#6D7383"
	ColorHelpText      = "240"

	// Accent Colors (Indigo theme)
	ColorAccentMain   = "#6366F1" // Titles, accent elements, active borders
	ColorAccentBright = "#A5B4FC" // Highlights

	// State Colors
	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"
)
