package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/panelgrid/pkg/errors"
	"github.com/matzehuels/panelgrid/pkg/units"
)

// convertCommand creates the convert command for length unit conversion.
func (c *CLI) convertCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a length between mm, cm and inches",
		Example: `  panelgrid convert 180 mm inches
  panelgrid convert 3.5 inches cm`,
		Args:      cobra.ExactArgs(3),
		ValidArgs: []string{"mm", "cm", "inches"},
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return errors.New(errors.ErrCodeValidation, "value must be a number, got %q", args[0])
			}
			from, err := units.Parse(args[1])
			if err != nil {
				return err
			}
			to, err := units.Parse(args[2])
			if err != nil {
				return err
			}
			out, err := units.Convert(value, from, to)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%g %s\n", out, to)
			return nil
		},
	}

	return cmd
}
