package tui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Cursor and hover rows blend the accent token over the background token at
// two fixed strengths so the two highlights stay distinguishable.
const (
	cursorBlendStrength = 0.35
	hoverBlendStrength  = 0.15
)

// paneWidths splits a frame width into the task-list, detail, and project
// columns at ratio 1:3:2. The three widths always sum to total; cumulative
// boundaries keep every column within one cell of its exact share.
func paneWidths(total int) (list, detail, side int) {
	if total <= 0 {
		return 0, 0, 0
	}
	b1 := total / 6
	b2 := total * 4 / 6
	return b1, b2 - b1, total - b2
}

// dialogWidth returns the width of a modal dialog, which spans exactly the
// detail and project columns of the grid.
func dialogWidth(total int) int {
	_, detail, side := paneWidths(total)
	return detail + side
}

// styles bundles every style derived from the active theme tokens.
type styles struct {
	theme Theme

	header lipgloss.Style
	status lipgloss.Style
	hint   lipgloss.Style

	pane             lipgloss.Style
	paneFocused      lipgloss.Style
	paneTitle        lipgloss.Style
	paneTitleFocused lipgloss.Style

	row       lipgloss.Style
	cursorRow lipgloss.Style
	hoverRow  lipgloss.Style
	completed lipgloss.Style
	overdue   lipgloss.Style

	dialog        lipgloss.Style
	dialogTitle   lipgloss.Style
	field         lipgloss.Style
	fieldFocused  lipgloss.Style
	fieldLabel    lipgloss.Style
	selectorLabel lipgloss.Style

	button             lipgloss.Style
	buttonFocused      lipgloss.Style
	destructive        lipgloss.Style
	destructiveFocused lipgloss.Style
}

// newStyles derives the full style set from one theme.
func newStyles(theme Theme) styles {
	cursorBG := blend(theme.Background, theme.Accent, cursorBlendStrength)
	hoverBG := blend(theme.Background, theme.Accent, hoverBlendStrength)

	return styles{
		theme: theme,

		header: lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		status: lipgloss.NewStyle().Foreground(theme.Muted),
		hint:   lipgloss.NewStyle().Foreground(theme.Muted),

		pane: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Muted).
			Padding(0, 1),
		paneFocused: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),
		paneTitle:        lipgloss.NewStyle().Foreground(theme.Muted),
		paneTitleFocused: lipgloss.NewStyle().Bold(true).Foreground(theme.Accent),

		row:       lipgloss.NewStyle().Foreground(theme.Text),
		cursorRow: lipgloss.NewStyle().Foreground(theme.Text).Background(cursorBG),
		hoverRow:  lipgloss.NewStyle().Foreground(theme.Text).Background(hoverBG),
		completed: lipgloss.NewStyle().Strikethrough(true).Foreground(theme.Muted),
		overdue:   lipgloss.NewStyle().Bold(true).Foreground(theme.Error),

		dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Background(theme.Surface).
			Padding(0, 1),
		dialogTitle: lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		field: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Muted).
			Padding(0, 1),
		fieldFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(theme.Accent).
			Padding(0, 1),
		fieldLabel:    lipgloss.NewStyle().Foreground(theme.Muted),
		selectorLabel: lipgloss.NewStyle().Foreground(theme.Muted).PaddingLeft(1),

		button: lipgloss.NewStyle().
			Foreground(theme.Text).
			Background(blend(theme.Surface, theme.Text, 0.08)).
			Padding(0, 2),
		buttonFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(contrastText(theme.Primary)).
			Background(theme.Primary).
			Padding(0, 2),
		destructive: lipgloss.NewStyle().
			Foreground(contrastText(theme.Error)).
			Background(theme.Error).
			Padding(0, 2),
		destructiveFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(contrastText(theme.Error)).
			Background(theme.Error).
			Padding(0, 2),
	}
}

// rowStyle resolves the style for one table row. Completed rows always keep
// strikethrough and muted text; the cursor highlight only renders while the
// table holds focus, the hover highlight follows the pointer regardless.
func (s styles) rowStyle(completed, cursor, hover, focused bool) lipgloss.Style {
	style := s.row
	if completed {
		style = s.completed
	}
	switch {
	case cursor && focused:
		style = style.Background(s.cursorRow.GetBackground())
	case hover:
		style = style.Background(s.hoverRow.GetBackground())
	}
	return style
}

// dialogButton describes one entry of a dialog button row.
type dialogButton struct {
	Label       string
	Destructive bool
	Focused     bool
}

// renderButtons lays out a right-aligned dialog button row. The last button
// gets extra left margin to separate it from its neighbors.
func (s styles) renderButtons(width int, buttons ...dialogButton) string {
	parts := make([]string, 0, len(buttons)*2)
	for idx, button := range buttons {
		style := s.button
		switch {
		case button.Destructive:
			style = s.destructive
			if button.Focused {
				style = s.destructiveFocused
			}
		case button.Focused:
			style = s.buttonFocused
		}
		rendered := style.Render(button.Label)
		if idx == len(buttons)-1 && len(buttons) > 1 {
			rendered = lipgloss.NewStyle().MarginLeft(3).Render(rendered)
		} else if idx > 0 {
			rendered = lipgloss.NewStyle().MarginLeft(1).Render(rendered)
		}
		parts = append(parts, rendered)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return lipgloss.NewStyle().
		Width(max(0, width)).
		Align(lipgloss.Right).
		PaddingRight(1).
		Render(row)
}

// clamp bounds v into [minV, maxV].
func clamp(v, minV, maxV int) int {
	if maxV < minV {
		return minV
	}
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}

// windowBounds returns an inclusive-exclusive list window keeping selected visible.
func windowBounds(total, selected, windowSize int) (int, int) {
	if total <= 0 || windowSize <= 0 {
		return 0, 0
	}
	if total <= windowSize {
		return 0, total
	}
	selected = clamp(selected, 0, total-1)
	half := windowSize / 2
	start := selected - half
	if start < 0 {
		start = 0
	}
	end := start + windowSize
	if end > total {
		end = total
		start = max(0, end-windowSize)
	}
	return start, end
}

// fitLines pads or trims content to exactly maxLines lines.
func fitLines(content string, maxLines int) string {
	if maxLines <= 0 {
		return ""
	}
	lines := strings.Split(content, "\n")
	switch {
	case len(lines) > maxLines:
		if maxLines == 1 {
			lines = []string{"…"}
		} else {
			lines = append(lines[:maxLines-1], "…")
		}
	case len(lines) < maxLines:
		padding := make([]string, maxLines-len(lines))
		lines = append(lines, padding...)
	}
	return strings.Join(lines, "\n")
}

// truncate shortens s to max runes, ending with an ellipsis when cut.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	if max <= 1 {
		return string(rs[:max])
	}
	return string(rs[:max-1]) + "…"
}
