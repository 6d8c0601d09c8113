package palette

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color is one selectable palette entry. Code is an ANSI-256 index; entries
// below 16 are the classic ANSI colors and render with their classic escape
// sequences.
type Color struct {
	Name string
	Code uint8
}

// Termenv returns the termenv value for this color, suitable for sequence
// generation and profile degradation.
func (c Color) Termenv() termenv.Color {
	if c.Code < 16 {
		return termenv.ANSIColor(c.Code)
	}
	return termenv.ANSI256Color(c.Code)
}

// Lipgloss returns the lipgloss value for this color.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(int(c.Code)))
}

// Default is the fixed palette patterns are colored from. Order matters:
// pattern i is assigned Default[i mod len(Default)].
var Default = []Color{
	{Name: "red", Code: 1},
	{Name: "yellow", Code: 3},
	{Name: "blue", Code: 4},
	{Name: "green", Code: 2},
	{Name: "magenta", Code: 5},
	{Name: "cyan", Code: 6},
	{Name: "light cyan", Code: 49},
	{Name: "light yellow", Code: 220},
	{Name: "light blue", Code: 51},
	{Name: "yellow green", Code: 106},
	{Name: "pink", Code: 207},
	{Name: "purple", Code: 165},
}

// ForIndex returns the palette color for the pattern at position i, wrapping
// around when there are more patterns than colors.
func ForIndex(i int) Color {
	return Default[i%len(Default)]
}
