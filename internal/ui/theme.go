// Package ui provides the presentation layer for projgen: themed console
// notifications, interactive prompts, progress reporting, and headless-mode
// detection. Generation logic never prints directly; it talks to the
// interfaces defined here.
package ui

// Brand colors (dark-terminal values).
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#8B5CF6"
	ColorSuccess   = "#10B981"
	ColorWarning   = "#F59E0B"
	ColorError     = "#EF4444"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#9CA3AF"
	ColorBorder    = "#4B5563"
)

// ThemeConfig configures theme construction.
type ThemeConfig struct {
	// NoColor disables all ANSI styling.
	NoColor bool
	// Mode selects the palette; currently only "dark" is defined.
	Mode string
}

// Colors is the palette used by all UI components.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Text      string
	Muted     string
	Border    string
}

// Theme carries the palette and styling switches shared by notifier,
// prompter, and progress components.
type Theme struct {
	NoColor bool
	Mode    string
	Colors  Colors
}

// NewTheme creates a Theme from the given config.
func NewTheme(cfg ThemeConfig) *Theme {
	mode := cfg.Mode
	if mode == "" {
		mode = "dark"
	}
	return &Theme{
		NoColor: cfg.NoColor,
		Mode:    mode,
		Colors: Colors{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
			Success:   ColorSuccess,
			Warning:   ColorWarning,
			Error:     ColorError,
			Text:      ColorText,
			Muted:     ColorMuted,
			Border:    ColorBorder,
		},
	}
}
