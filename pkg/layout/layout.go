// Package layout provides the serialization format for computed panel grids.
//
// A [Layout] is a flat, JSON-friendly snapshot of a [grid.Locator]: the grid
// shape, the resolved separations and padding, the figure size, and one
// [Panel] rectangle per cell in iteration order. It is what the CLI prints
// and what a plotting front-end reads to place its axes.
//
//	l, _ := grid.NewPanelSizeLocator(2, 3, 60, 40)
//	out, _ := layout.Export(l, grid.OrderRow)
//	data, _ := layout.MarshalLayout(out)
package layout

import (
	"encoding/json"
	"os"

	"github.com/matzehuels/panelgrid/pkg/errors"
	"github.com/matzehuels/panelgrid/pkg/grid"
	"github.com/matzehuels/panelgrid/pkg/units"
)

// Layout is the serialized form of a panel grid.
type Layout struct {
	Rows    int        `json:"rows"`
	Columns int        `json:"columns"`
	Units   units.Unit `json:"units"`
	Order   grid.Order `json:"order"`

	PanelWidth  float64      `json:"panel_width"`
	PanelHeight float64      `json:"panel_height"`
	HSep        []float64    `json:"hsep,omitempty"`
	VSep        []float64    `json:"vsep,omitempty"`
	Padding     grid.Padding `json:"padding"`

	// Figure size in Units and in inches.
	FigWidth      float64   `json:"fig_width"`
	FigHeight     float64   `json:"fig_height"`
	FigSizeInches grid.Size `json:"figsize_inches"`

	Panels      []Panel           `json:"panels"`
	Diagnostics []grid.Diagnostic `json:"diagnostics,omitempty"`
}

// Panel is one normalized panel rectangle, origin bottom-left.
type Panel struct {
	Row    int     `json:"row"`
	Column int     `json:"column"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rect returns the panel's rectangle.
func (p Panel) Rect() grid.Rect {
	return grid.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

// Panel looks up the panel at (row, column).
func (l *Layout) Panel(row, column int) (Panel, bool) {
	for _, p := range l.Panels {
		if p.Row == row && p.Column == column {
			return p, true
		}
	}
	return Panel{}, false
}

type diagnoser interface {
	Diagnostics() []grid.Diagnostic
}

// Export snapshots loc, listing panels in the given order.
func Export(loc grid.Locator, order grid.Order) (Layout, error) {
	positions, err := loc.PanelPositions(order)
	if err != nil {
		return Layout{}, err
	}
	if order == "" {
		order = grid.OrderRow
	}

	panel := loc.PanelSize()
	fig := loc.NativeFigSize()
	out := Layout{
		Rows:          loc.Rows(),
		Columns:       loc.Columns(),
		Units:         loc.Units(),
		Order:         order,
		PanelWidth:    panel.Width,
		PanelHeight:   panel.Height,
		HSep:          loc.HSep(),
		VSep:          loc.VSep(),
		Padding:       loc.Padding(),
		FigWidth:      fig.Width,
		FigHeight:     fig.Height,
		FigSizeInches: loc.FigSize(),
		Panels:        make([]Panel, 0, loc.Rows()*loc.Columns()),
	}
	for p := range positions {
		out.Panels = append(out.Panels, Panel{
			Row:    p.Row,
			Column: p.Column,
			X:      p.Rect.X,
			Y:      p.Rect.Y,
			Width:  p.Rect.Width,
			Height: p.Rect.Height,
		})
	}
	if d, ok := loc.(diagnoser); ok {
		out.Diagnostics = d.Diagnostics()
	}
	return out, nil
}

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// Validates that the grid shape and panel list agree.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unmarshal layout")
	}
	if l.Rows < 1 || l.Columns < 1 {
		return Layout{}, errors.New(errors.ErrCodeInvalidFormat, "layout must have at least one row and column")
	}
	if l.Units == "" {
		l.Units = units.Default
	}
	if l.Order == "" {
		l.Order = grid.OrderRow
	}
	if want := l.Rows * l.Columns; len(l.Panels) != want {
		return Layout{}, errors.New(errors.ErrCodeInvalidFormat,
			"layout has %d panels, want %d for a %d×%d grid", len(l.Panels), want, l.Rows, l.Columns)
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Layout{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return Layout{}, err
	}
	return UnmarshalLayout(data)
}
