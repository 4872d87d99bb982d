package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/panelgrid/pkg/grid"
)

// panelCommand creates the panel command for grids with a fixed panel size.
func (c *CLI) panelCommand() *cobra.Command {
	var (
		panelWidth  float64
		panelHeight float64
		gf          gridFlags
		of          outputFlags
	)

	cmd := &cobra.Command{
		Use:   "panel ROWS COLUMNS",
		Short: "Lay out a grid of panels with a fixed panel size",
		Long: `Lay out a grid of panels with a fixed panel size.

The figure size follows from the panel size, the separations and the padding:

  width  = pad-left + columns × panel-width + sum(hsep) + pad-right
  height = pad-top  + rows × panel-height   + sum(vsep) + pad-bottom

Example:
  panelgrid panel 2 3 --panel-width 60 --panel-height 40 --hsep 5 --vsep 8 --pad-left 15`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := of.validate(); err != nil {
				return err
			}
			rows, columns, err := parseShape(args)
			if err != nil {
				return err
			}
			opts, err := gf.options(loggerFromContext(cmd.Context()))
			if err != nil {
				return err
			}
			loc, err := grid.NewPanelSizeLocator(rows, columns, panelWidth, panelHeight, opts...)
			if err != nil {
				return err
			}
			return writeLayout(cmd, loc, of)
		},
	}

	cmd.Flags().Float64Var(&panelWidth, "panel-width", 0, "width of every panel")
	cmd.Flags().Float64Var(&panelHeight, "panel-height", 0, "height of every panel")
	_ = cmd.MarkFlagRequired("panel-width")
	_ = cmd.MarkFlagRequired("panel-height")
	c.addGridFlags(cmd, &gf)
	c.addOutputFlags(cmd, &of)

	return cmd
}
