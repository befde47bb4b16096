package tui

import "github.com/charmbracelet/log"

// Option configures a Model at construction time.
type Option func(*Model)

// WithTheme selects the active theme by name; unknown names fall back to dark.
func WithTheme(name string) Option {
	return func(m *Model) {
		m.setTheme(name)
	}
}

// WithDateFormat sets the layout used to render due dates and timestamps.
func WithDateFormat(layout string) Option {
	return func(m *Model) {
		if layout != "" {
			m.dateFormat = layout
		}
	}
}

// WithShowDescriptions toggles the description line under each task row.
func WithShowDescriptions(show bool) Option {
	return func(m *Model) {
		m.showDescriptions = show
	}
}

// WithConfirmDeletions toggles the delete confirmation dialogs.
func WithConfirmDeletions(confirm bool) Option {
	return func(m *Model) {
		m.confirmDeletions = confirm
	}
}

// WithThemeSaver installs the callback that persists a saved theme choice.
func WithThemeSaver(save func(name string) error) Option {
	return func(m *Model) {
		m.saveTheme = save
	}
}

// WithLogger installs the logger used for non-fatal runtime diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}
