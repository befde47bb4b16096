package tui

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

// TestPaneWidthsRatio verifies the 1:3:2 split holds within rounding at any width.
func TestPaneWidthsRatio(t *testing.T) {
	for total := 18; total <= 300; total++ {
		list, detail, side := paneWidths(total)
		if list+detail+side != total {
			t.Fatalf("paneWidths(%d) sums to %d", total, list+detail+side)
		}
		for name, got := range map[string]struct {
			width int
			share float64
		}{
			"list":   {list, 1.0 / 6.0},
			"detail": {detail, 3.0 / 6.0},
			"side":   {side, 2.0 / 6.0},
		} {
			exact := float64(total) * got.share
			diff := float64(got.width) - exact
			if diff < -1 || diff > 1 {
				t.Fatalf("paneWidths(%d) %s = %d, off exact share %.2f by more than one cell", total, name, got.width, exact)
			}
		}
	}
}

// TestPaneWidthsDegenerate verifies zero and negative totals collapse cleanly.
func TestPaneWidthsDegenerate(t *testing.T) {
	for _, total := range []int{0, -5} {
		list, detail, side := paneWidths(total)
		if list != 0 || detail != 0 || side != 0 {
			t.Fatalf("paneWidths(%d) = %d,%d,%d, want zeros", total, list, detail, side)
		}
	}
}

// TestDialogWidthSpansTwoColumns verifies dialogs cover exactly the detail and
// project columns.
func TestDialogWidthSpansTwoColumns(t *testing.T) {
	for _, total := range []int{24, 80, 120, 199} {
		list, detail, side := paneWidths(total)
		if got := dialogWidth(total); got != detail+side {
			t.Fatalf("dialogWidth(%d) = %d, want %d", total, got, detail+side)
		}
		if got := dialogWidth(total); got+list != total {
			t.Fatalf("dialogWidth(%d)+list = %d, want %d", total, got+list, total)
		}
	}
}

// TestRowStyleCompleted verifies completed rows always carry strikethrough and
// muted text, whatever the highlight state.
func TestRowStyleCompleted(t *testing.T) {
	s := newStyles(ThemeByName("dark"))
	for _, cursor := range []bool{false, true} {
		for _, hover := range []bool{false, true} {
			for _, focused := range []bool{false, true} {
				style := s.rowStyle(true, cursor, hover, focused)
				if !style.GetStrikethrough() {
					t.Fatalf("completed row (cursor=%v hover=%v focused=%v) lost strikethrough", cursor, hover, focused)
				}
				if style.GetForeground() != s.theme.Muted {
					t.Fatalf("completed row (cursor=%v hover=%v focused=%v) not muted", cursor, hover, focused)
				}
			}
		}
	}
	if s.rowStyle(false, false, false, true).GetStrikethrough() {
		t.Fatal("open row rendered with strikethrough")
	}
}

// TestRowStyleHighlights verifies cursor and hover use two distinguishable
// blends and cursor only renders while the table holds focus.
func TestRowStyleHighlights(t *testing.T) {
	s := newStyles(ThemeByName("dark"))

	cursorBG := s.cursorRow.GetBackground()
	hoverBG := s.hoverRow.GetBackground()
	if cursorBG == hoverBG {
		t.Fatal("cursor and hover highlight share one background")
	}
	if got := s.rowStyle(false, true, false, true).GetBackground(); got != cursorBG {
		t.Fatalf("focused cursor row background = %v, want %v", got, cursorBG)
	}
	if got := s.rowStyle(false, true, false, false).GetBackground(); got == cursorBG {
		t.Fatal("cursor highlight rendered without table focus")
	}
	if got := s.rowStyle(false, false, true, false).GetBackground(); got != hoverBG {
		t.Fatalf("hover row background = %v, want %v", got, hoverBG)
	}
	if got := s.rowStyle(false, true, true, true).GetBackground(); got != cursorBG {
		t.Fatalf("cursor+hover row background = %v, want cursor blend", got)
	}
}

// TestDestructiveButtonUsesErrorToken verifies destructive buttons resolve the
// error background with contrasted text under every theme.
func TestDestructiveButtonUsesErrorToken(t *testing.T) {
	for _, name := range ThemeNames() {
		theme := ThemeByName(name)
		s := newStyles(theme)
		for _, style := range []lipgloss.Style{s.destructive, s.destructiveFocused} {
			if got := style.GetBackground(); got != theme.Error {
				t.Fatalf("theme %q destructive background = %v, want error token %v", name, got, theme.Error)
			}
			if got := style.GetForeground(); got != contrastText(theme.Error) {
				t.Fatalf("theme %q destructive foreground = %v, want auto-contrast %v", name, got, contrastText(theme.Error))
			}
		}
	}
}

// TestFocusedPaneBorderDiffers verifies the focused pane style is visibly
// heavier than the unfocused one.
func TestFocusedPaneBorderDiffers(t *testing.T) {
	s := newStyles(ThemeByName("dark"))
	plain := s.pane.Width(18).Height(4).Render("x")
	focused := s.paneFocused.Width(18).Height(4).Render("x")
	if plain == focused {
		t.Fatal("focused and unfocused pane render identically")
	}
	if !strings.Contains(focused, "┃") {
		t.Fatal("focused pane missing thick border")
	}
	if strings.Contains(plain, "┃") {
		t.Fatal("unfocused pane drawn with thick border")
	}
}

// TestRenderButtonsLayout verifies the button row fills its width right-aligned.
func TestRenderButtonsLayout(t *testing.T) {
	s := newStyles(ThemeByName("dark"))
	row := s.renderButtons(48,
		dialogButton{Label: "Cancel"},
		dialogButton{Label: "Delete", Destructive: true, Focused: true},
	)
	if got := lipgloss.Width(row); got != 48 {
		t.Fatalf("button row width = %d, want 48", got)
	}
	if !strings.Contains(row, "Cancel") || !strings.Contains(row, "Delete") {
		t.Fatalf("button row missing labels: %q", row)
	}
	if !strings.HasPrefix(stripANSI(row), " ") {
		t.Fatal("button row is not right-aligned")
	}
}

// stripANSI drops escape sequences for plain-text assertions.
func stripANSI(s string) string {
	var out strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			out.WriteRune(r)
		}
	}
	return out.String()
}

// TestWindowBounds verifies the visible window keeps the selection in range.
func TestWindowBounds(t *testing.T) {
	cases := []struct {
		name                        string
		total, selected, window     int
		wantStart, wantEnd          int
	}{
		{"fits entirely", 4, 2, 10, 0, 4},
		{"window at top", 20, 0, 5, 0, 5},
		{"window follows selection", 20, 10, 5, 8, 13},
		{"window at bottom", 20, 19, 5, 15, 20},
		{"empty", 0, 0, 5, 0, 0},
	}
	for _, tc := range cases {
		start, end := windowBounds(tc.total, tc.selected, tc.window)
		if start != tc.wantStart || end != tc.wantEnd {
			t.Fatalf("%s: windowBounds(%d,%d,%d) = %d,%d, want %d,%d",
				tc.name, tc.total, tc.selected, tc.window, start, end, tc.wantStart, tc.wantEnd)
		}
	}
}

// TestTruncate verifies rune-aware truncation.
func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Fatalf("truncate short = %q", got)
	}
	if got := truncate("hello world", 5); got != "hell…" {
		t.Fatalf("truncate cut = %q", got)
	}
	if got := truncate("åäö", 2); got != "å…" {
		t.Fatalf("truncate multibyte = %q", got)
	}
	if got := truncate("hello", 0); got != "" {
		t.Fatalf("truncate zero = %q", got)
	}
}

// TestFitLines verifies padding and trimming to a fixed height.
func TestFitLines(t *testing.T) {
	if got := fitLines("a\nb\nc", 2); got != "a\n…" {
		t.Fatalf("fitLines trim = %q", got)
	}
	if got := fitLines("a", 3); got != "a\n\n" {
		t.Fatalf("fitLines pad = %q", got)
	}
	if got := fitLines("a\nb", 0); got != "" {
		t.Fatalf("fitLines zero = %q", got)
	}
}
