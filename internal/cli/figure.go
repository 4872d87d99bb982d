package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/panelgrid/pkg/grid"
)

// figureCommand creates the figure command for grids that fill a given figure size.
func (c *CLI) figureCommand() *cobra.Command {
	var (
		fig grid.FigureSize
		gf  gridFlags
		of  outputFlags
	)

	cmd := &cobra.Command{
		Use:   "figure ROWS COLUMNS",
		Short: "Lay out a grid of panels that fills a given figure size",
		Long: `Lay out a grid of panels that fills a given figure size.

Give the figure width, the figure height, or both. With only one of them the
other panel dimension follows from --panel-ratio (width / height, default 1).
With both, the panel ratio is ignored and a warning is printed.

Example:
  panelgrid figure 2 3 --fig-width 180 --panel-ratio 1.5 --hsep 5 --units mm`,
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
			loc, err := grid.NewFigureSizeLocator(rows, columns, fig, opts...)
			if err != nil {
				return err
			}
			return writeLayout(cmd, loc, of)
		},
	}

	cmd.Flags().Float64Var(&fig.Width, "fig-width", 0, "total figure width")
	cmd.Flags().Float64Var(&fig.Height, "fig-height", 0, "total figure height")
	cmd.Flags().Float64Var(&fig.PanelRatio, "panel-ratio", 0, "panel width / height when only one figure dimension is given (default 1)")
	cmd.MarkFlagsOneRequired("fig-width", "fig-height")
	c.addGridFlags(cmd, &gf)
	c.addOutputFlags(cmd, &of)

	return cmd
}
