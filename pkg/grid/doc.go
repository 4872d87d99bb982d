// Package grid places a grid of equally sized panels inside a figure.
//
// # Overview
//
// A figure is a canvas holding rows × columns panels. Every panel has the same
// size. Adjacent panels are separated by horizontal (hsep) and vertical (vsep)
// gaps, and the whole grid is surrounded by padding on each side:
//
//	┌──────────────────────────────── figwidth ───────────────────────────────┐
//	│                               padtop                                    │
//	│ padleft ┌───────┐ hsep[0] ┌───────┐ hsep[1] ┌───────┐ padright          │
//	│         │ (0,0) │         │ (0,1) │         │ (0,2) │                   │
//	│         └───────┘         └───────┘         └───────┘                   │
//	│                               vsep[0]                                   │
//	│         ┌───────┐         ┌───────┐         ┌───────┐                   │
//	│         │ (1,0) │         │ (1,1) │         │ (1,2) │                   │
//	│         └───────┘         └───────┘         └───────┘                   │
//	│                              padbottom                                  │
//	└─────────────────────────────────────────────────────────────────────────┘
//
// Positions are returned as normalized rectangles (x, y, width, height) in
// figure-fraction coordinates with the origin at the bottom-left, the form
// plotting libraries expect for axis placement. Row 0 is the TOP row, so the
// y coordinate is measured from the figure height downward.
//
// # Locators
//
// Two locators share the [Locator] interface:
//
//   - [PanelSizeLocator]: the panel size is given, the figure size follows.
//   - [FigureSizeLocator]: the figure width and/or height is given, the panel
//     size is solved for (see [PanelSize]) and a [PanelSizeLocator] is built
//     from it.
//
//	l, err := grid.NewPanelSizeLocator(2, 3, 60, 40,
//	    grid.WithHSep(grid.Uniform(5)),
//	    grid.WithVSep(grid.Uniform(8)),
//	    grid.WithPadding(grid.Padding{Left: 15, Right: 5, Top: 5, Bottom: 12}),
//	)
//	if err != nil {
//	    return err
//	}
//	panels, _ := l.PanelPositions(grid.OrderRow)
//	for p := range panels {
//	    fmt.Println(p.Row, p.Column, p.Rect)
//	}
//
// # Separations
//
// [Separation] is either [Uniform] (one gap broadcast to every slot) or
// [Sequence] (one explicit gap per slot). A sequence must have exactly
// columns-1 (hsep) or rows-1 (vsep) elements.
//
// # Units
//
// All lengths are in the locator's unit ([WithUnits], default millimeters).
// [Locator.FigSize] always reports inches; [Locator.FigSizeIn] converts to any
// supported unit.
//
// # Immutability
//
// Locators are immutable after construction and every query is a pure
// function of the construction inputs, so a locator may be shared between
// goroutines without synchronization.
package grid
