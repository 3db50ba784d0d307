package components

import (
	"github.com/charmbracelet/lipgloss"

	tokens "github.com/alexisbeaulieu97/spectrum/internal/theme"
)

const swatchWidth = 26

// Swatch is a colour chip showing a token label and its value, drawn on the
// token colour itself.
type Swatch struct {
	BaseComponent
	swatch tokens.Swatch
	width  int
}

// NewSwatch wraps a projected swatch.
func NewSwatch(s tokens.Swatch) *Swatch {
	return &Swatch{
		BaseComponent: NewBaseComponent(),
		swatch:        s,
		width:         swatchWidth,
	}
}

func (s *Swatch) View() string {
	return s.ViewWithContext(DefaultContext())
}

func (s *Swatch) ViewWithContext(ctx RenderContext) string {
	style := s.ComputeStyle(ctx.Theme).
		Background(lipgloss.Color(tokens.Hex(s.swatch.Value))).
		Foreground(lipgloss.Color(tokens.Hex(s.swatch.TextColor))).
		Width(s.width).
		Padding(0, 1)

	return lipgloss.JoinVertical(lipgloss.Left,
		style.Bold(true).Render(s.swatch.Label),
		style.Render(s.swatch.Value),
	)
}

// WithWidth sets the chip width in cells.
func (s *Swatch) WithWidth(width int) *Swatch {
	if width > 0 {
		s.width = width
	}
	return s
}

// Swatch returns the wrapped token swatch.
func (s *Swatch) Swatch() tokens.Swatch {
	return s.swatch
}

// SwatchGrid lays swatches out in rows of perRow.
func SwatchGrid(swatches []tokens.Swatch, perRow int) *Stack {
	if perRow <= 0 {
		perRow = len(swatches)
	}
	grid := VStack().WithGap(1)
	for start := 0; start < len(swatches); start += perRow {
		end := min(start+perRow, len(swatches))
		row := HStack().WithGap(1)
		for _, sw := range swatches[start:end] {
			row.Add(NewSwatch(sw))
		}
		grid.Add(row)
	}
	return grid
}
