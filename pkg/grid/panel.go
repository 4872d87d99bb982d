package grid

import (
	"iter"
	"slices"

	"github.com/matzehuels/panelgrid/pkg/errors"
	"github.com/matzehuels/panelgrid/pkg/units"
)

// PanelSizeLocator is a grid whose panel size is given explicitly.
// The figure size is derived from it at construction.
type PanelSizeLocator struct {
	rows, columns int
	panel         Size
	hsep, vsep    []float64
	padding       Padding
	units         units.Unit

	fig       Size // native units
	figInches Size
	frac      Size // panel size as a fraction of the figure

	// hsepBefore[c] = sum(hsep[:c]), vsepAbove[r] = sum(vsep[:r])
	hsepBefore []float64
	vsepAbove  []float64
}

var _ Locator = (*PanelSizeLocator)(nil)

// NewPanelSizeLocator builds a locator for a rows × columns grid of panels
// that are panelWidth × panelHeight each.
func NewPanelSizeLocator(rows, columns int, panelWidth, panelHeight float64, opts ...Option) (*PanelSizeLocator, error) {
	o := newOptions(opts)

	if err := errors.ValidatePositiveInt("rows", rows); err != nil {
		return nil, err
	}
	if err := errors.ValidatePositiveInt("columns", columns); err != nil {
		return nil, err
	}
	if err := errors.ValidatePositive("panelwidth", panelWidth); err != nil {
		return nil, err
	}
	if err := errors.ValidatePositive("panelheight", panelHeight); err != nil {
		return nil, err
	}
	if err := o.units.Validate(); err != nil {
		return nil, err
	}
	if err := o.padding.validate(); err != nil {
		return nil, err
	}
	hsep, err := o.hsep.Resolve("hsep", columns-1)
	if err != nil {
		return nil, err
	}
	vsep, err := o.vsep.Resolve("vsep", rows-1)
	if err != nil {
		return nil, err
	}

	l := &PanelSizeLocator{
		rows:       rows,
		columns:    columns,
		panel:      Size{Width: panelWidth, Height: panelHeight},
		hsep:       hsep,
		vsep:       vsep,
		padding:    o.padding,
		units:      o.units,
		hsepBefore: prefixSums(hsep),
		vsepAbove:  prefixSums(vsep),
	}
	l.fig = Size{
		Width:  o.padding.Left + float64(columns)*panelWidth + l.hsepBefore[columns-1] + o.padding.Right,
		Height: o.padding.Top + float64(rows)*panelHeight + l.vsepAbove[rows-1] + o.padding.Bottom,
	}
	l.figInches = Size{
		Width:  units.MustConvert(l.fig.Width, l.units, units.Inches),
		Height: units.MustConvert(l.fig.Height, l.units, units.Inches),
	}
	l.frac = Size{
		Width:  panelWidth / l.fig.Width,
		Height: panelHeight / l.fig.Height,
	}

	o.logger.Debug("panel locator",
		"rows", rows, "columns", columns,
		"panel", l.panel, "figure", l.fig, "units", l.units)
	return l, nil
}

// Rows returns the number of panel rows.
func (l *PanelSizeLocator) Rows() int { return l.rows }

// Columns returns the number of panel columns.
func (l *PanelSizeLocator) Columns() int { return l.columns }

// Units returns the unit all lengths are expressed in.
func (l *PanelSizeLocator) Units() units.Unit { return l.units }

// Padding returns the figure padding.
func (l *PanelSizeLocator) Padding() Padding { return l.padding }

// HSep returns a copy of the columns-1 horizontal gaps.
func (l *PanelSizeLocator) HSep() []float64 { return slices.Clone(l.hsep) }

// VSep returns a copy of the rows-1 vertical gaps.
func (l *PanelSizeLocator) VSep() []float64 { return slices.Clone(l.vsep) }

// PanelSize returns the size shared by every panel.
func (l *PanelSizeLocator) PanelSize() Size { return l.panel }

// NativeFigSize returns the figure size in the locator's unit.
func (l *PanelSizeLocator) NativeFigSize() Size { return l.fig }

// FigSize returns the figure size in inches.
func (l *PanelSizeLocator) FigSize() Size { return l.figInches }

// FigSizeIn returns the figure size converted to u.
func (l *PanelSizeLocator) FigSizeIn(u units.Unit) (Size, error) {
	w, err := units.Convert(l.fig.Width, l.units, u)
	if err != nil {
		return Size{}, err
	}
	h, err := units.Convert(l.fig.Height, l.units, u)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: w, Height: h}, nil
}

// PanelPosition returns the rectangle of the panel at (row, column), counted
// from 0 at the top-left of the grid.
func (l *PanelSizeLocator) PanelPosition(row, column int) (Rect, error) {
	if err := l.checkCell(row, column); err != nil {
		return Rect{}, err
	}
	return l.rect(row, column), nil
}

// SpanPanelPosition returns the rectangle covering both panels and
// everything between them.
func (l *PanelSizeLocator) SpanPanelPosition(row1, column1, row2, column2 int) (Rect, error) {
	if err := l.checkCell(row1, column1); err != nil {
		return Rect{}, err
	}
	if err := l.checkCell(row2, column2); err != nil {
		return Rect{}, err
	}
	left := min(l.left(column1), l.left(column2))
	right := max(l.left(column1), l.left(column2)) + l.panel.Width
	bottom := min(l.bottom(row1), l.bottom(row2))
	top := max(l.bottom(row1), l.bottom(row2)) + l.panel.Height
	return Rect{
		X:      left / l.fig.Width,
		Y:      bottom / l.fig.Height,
		Width:  (right - left) / l.fig.Width,
		Height: (top - bottom) / l.fig.Height,
	}, nil
}

// PanelPositions returns a sequence visiting every panel exactly once in the
// given order. An empty order means OrderRow. The sequence holds no state and
// may be ranged over any number of times.
func (l *PanelSizeLocator) PanelPositions(order Order) (iter.Seq[Position], error) {
	order, err := ParseOrder(string(order))
	if err != nil {
		return nil, err
	}
	outer, inner := l.rows, l.columns
	if order == OrderColumn {
		outer, inner = l.columns, l.rows
	}
	return func(yield func(Position) bool) {
		for i := 0; i < outer; i++ {
			for j := 0; j < inner; j++ {
				row, column := i, j
				if order == OrderColumn {
					row, column = j, i
				}
				if !yield(Position{Row: row, Column: column, Rect: l.rect(row, column)}) {
					return
				}
			}
		}
	}, nil
}

func (l *PanelSizeLocator) checkCell(row, column int) error {
	if err := errors.ValidateIndex("row", row, l.rows); err != nil {
		return err
	}
	return errors.ValidateIndex("column", column, l.columns)
}

func (l *PanelSizeLocator) rect(row, column int) Rect {
	return Rect{
		X:      l.left(column) / l.fig.Width,
		Y:      l.bottom(row) / l.fig.Height,
		Width:  l.frac.Width,
		Height: l.frac.Height,
	}
}

// left is the distance from the figure's left edge to the column's left edge.
func (l *PanelSizeLocator) left(column int) float64 {
	return l.padding.Left + l.panel.Width*float64(column) + l.hsepBefore[column]
}

// bottom is the distance from the figure's bottom edge to the row's bottom
// edge. Row 0 is the top row.
func (l *PanelSizeLocator) bottom(row int) float64 {
	return l.fig.Height - l.padding.Top - l.panel.Height*float64(row+1) - l.vsepAbove[row]
}
