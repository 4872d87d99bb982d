// Package pkg provides the core libraries for panelgrid figure layout.
//
// # Overview
//
// Panelgrid computes where each panel of a rows × columns grid sits inside a
// figure. The pkg directory is organized as:
//
//  1. [units] - Length units (mm, cm, inches) and conversion
//  2. [grid] - The locators: panel-size driven and figure-size driven
//  3. [layout] - JSON serialization of a computed grid
//  4. [config] - TOML and YAML grid descriptions
//  5. [errors] - Structured errors with machine-readable codes
//
// # Architecture
//
// The typical data flow through panelgrid:
//
//	flags or grid.toml
//	         ↓
//	    [config] package (decode and validate a description)
//	         ↓
//	    [grid] package (solve sizes, locate panels)
//	         ↓
//	    [layout] package (snapshot for output)
//	         ↓
//	    table or JSON
//
// # Quick Start
//
//	l, err := grid.NewPanelSizeLocator(2, 3, 60, 40,
//	    grid.WithHSep(grid.Uniform(5)),
//	    grid.WithPadding(grid.Padding{Left: 15, Bottom: 12}),
//	)
//	if err != nil {
//	    return err
//	}
//	rect, _ := l.PanelPosition(0, 1)
//	fmt.Println(l.FigSize(), rect)
//
// [units]: https://pkg.go.dev/github.com/matzehuels/panelgrid/pkg/units
// [grid]: https://pkg.go.dev/github.com/matzehuels/panelgrid/pkg/grid
// [layout]: https://pkg.go.dev/github.com/matzehuels/panelgrid/pkg/layout
// [config]: https://pkg.go.dev/github.com/matzehuels/panelgrid/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/panelgrid/pkg/errors
package pkg
