package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/panelgrid/pkg/config"
)

// buildCommand creates the build command for grids described in a config file.
func (c *CLI) buildCommand() *cobra.Command {
	var of outputFlags

	cmd := &cobra.Command{
		Use:   "build [grid.toml|grid.yaml]",
		Short: "Lay out a grid described in a TOML or YAML file",
		Long: `Lay out a grid described in a TOML or YAML file.

The file uses the same parameters as the panel and figure commands:

  mode         = "figure"   # or "panel"; inferred when omitted
  rows         = 2
  columns      = 3
  fig_width    = 180
  panel_ratio  = 1.5
  hsep         = 5          # or a list: [5, 10]
  vsep         = 8
  pad_left     = 15
  units        = "mm"
  order        = "row"

--order overrides the order given in the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			file, err := config.Load(args[0])
			if err != nil {
				return err
			}
			logger.Debug("loaded grid description", "path", args[0], "mode", file.Mode)

			if !cmd.Flags().Changed("order") {
				of.order = string(file.GridOrder())
			}
			if err := of.validate(); err != nil {
				return err
			}

			loc, err := file.Locator(logger)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			return writeLayout(cmd, loc, of)
		},
	}

	c.addOutputFlags(cmd, &of)

	return cmd
}
