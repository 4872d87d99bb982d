package grid

import (
	"iter"

	"github.com/matzehuels/panelgrid/pkg/errors"
	"github.com/matzehuels/panelgrid/pkg/units"
)

// Size is a width and height pair in some length unit.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect is a normalized figure rectangle. X and Y locate the bottom-left
// corner as fractions of the figure width and height.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the normalized x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.Width }

// Top returns the normalized y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.Height }

// Position pairs a panel's grid index with its rectangle.
type Position struct {
	Row    int  `json:"row"`
	Column int  `json:"column"`
	Rect   Rect `json:"rect"`
}

// Padding is the gap between the panel grid and each figure edge.
type Padding struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// Horizontal returns Left + Right.
func (p Padding) Horizontal() float64 { return p.Left + p.Right }

// Vertical returns Top + Bottom.
func (p Padding) Vertical() float64 { return p.Top + p.Bottom }

func (p Padding) validate() error {
	for _, side := range []struct {
		name string
		v    float64
	}{
		{"padleft", p.Left},
		{"padright", p.Right},
		{"padtop", p.Top},
		{"padbottom", p.Bottom},
	} {
		if err := errors.ValidateNonNegative(side.name, side.v); err != nil {
			return err
		}
	}
	return nil
}

// Order selects how [Locator.PanelPositions] walks the grid.
type Order string

const (
	// OrderRow visits every column of row 0, then row 1, and so on.
	OrderRow Order = "row"
	// OrderColumn visits every row of column 0, then column 1, and so on.
	OrderColumn Order = "column"
)

// ParseOrder maps "row", "column" or "" (row) to an Order.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case "", OrderRow:
		return OrderRow, nil
	case OrderColumn:
		return OrderColumn, nil
	}
	return "", errors.New(errors.ErrCodeValidation, "the order must be either %q or %q, got %q", OrderRow, OrderColumn, s)
}

// Locator answers geometric queries about a panel grid.
type Locator interface {
	Rows() int
	Columns() int
	Units() units.Unit
	Padding() Padding
	HSep() []float64
	VSep() []float64

	// PanelSize is the size shared by every panel, in Units.
	PanelSize() Size
	// NativeFigSize is the figure size in Units.
	NativeFigSize() Size
	// FigSize is the figure size in inches.
	FigSize() Size
	// FigSizeIn is the figure size converted to u.
	FigSizeIn(u units.Unit) (Size, error)

	PanelPosition(row, column int) (Rect, error)
	SpanPanelPosition(row1, column1, row2, column2 int) (Rect, error)
	PanelPositions(order Order) (iter.Seq[Position], error)
}
