package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/panelgrid/pkg/errors"
	"github.com/matzehuels/panelgrid/pkg/grid"
	"github.com/matzehuels/panelgrid/pkg/layout"
	"github.com/matzehuels/panelgrid/pkg/units"
)

// =============================================================================
// Grid Flags
// =============================================================================

// gridFlags are the flags shared by the panel and figure commands.
type gridFlags struct {
	hsep    string
	vsep    string
	padding grid.Padding
	units   string
}

func (c *CLI) addGridFlags(cmd *cobra.Command, f *gridFlags) {
	cmd.Flags().StringVar(&f.hsep, "hsep", "0", "gap between columns: one value, or a comma-separated list of columns-1 values")
	cmd.Flags().StringVar(&f.vsep, "vsep", "0", "gap between rows: one value, or a comma-separated list of rows-1 values")
	cmd.Flags().Float64Var(&f.padding.Left, "pad-left", 0, "gap between the grid and the left figure edge")
	cmd.Flags().Float64Var(&f.padding.Right, "pad-right", 0, "gap between the grid and the right figure edge")
	cmd.Flags().Float64Var(&f.padding.Top, "pad-top", 0, "gap between the grid and the top figure edge")
	cmd.Flags().Float64Var(&f.padding.Bottom, "pad-bottom", 0, "gap between the grid and the bottom figure edge")
	cmd.Flags().StringVarP(&f.units, "units", "u", c.env.GetString("units"), "length units: mm, cm, inches (env PANELGRID_UNITS)")
}

// options converts the flags into locator options.
func (f *gridFlags) options(logger *log.Logger) ([]grid.Option, error) {
	u, err := units.Parse(f.units)
	if err != nil {
		return nil, err
	}
	hsep, err := parseSeparation("hsep", f.hsep)
	if err != nil {
		return nil, err
	}
	vsep, err := parseSeparation("vsep", f.vsep)
	if err != nil {
		return nil, err
	}
	return []grid.Option{
		grid.WithHSep(hsep),
		grid.WithVSep(vsep),
		grid.WithPadding(f.padding),
		grid.WithUnits(u),
		grid.WithLogger(logger),
	}, nil
}

// parseSeparation reads "4" as a uniform gap and "1,2,3" or "[1,2,3]" as a
// per-slot sequence. "[4]" is a one-element sequence.
func parseSeparation(name, s string) (grid.Separation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return grid.Uniform(0), nil
	}
	bracketed := strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]")
	if bracketed {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	if !bracketed && !strings.Contains(s, ",") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return grid.Separation{}, errors.New(errors.ErrCodeValidation, "%s must be a number or a comma-separated list, got %q", name, s)
		}
		return grid.Uniform(v), nil
	}

	var vals []float64
	if s != "" {
		for _, part := range strings.Split(s, ",") {
			v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
			if err != nil {
				return grid.Separation{}, errors.New(errors.ErrCodeValidation, "%s element %q is not a number", name, part)
			}
			vals = append(vals, v)
		}
	}
	return grid.Sequence(vals...), nil
}

// =============================================================================
// Output Flags
// =============================================================================

// outputFlags control how a computed layout is written.
type outputFlags struct {
	format string
	output string
	order  string
}

func (c *CLI) addOutputFlags(cmd *cobra.Command, f *outputFlags) {
	cmd.Flags().StringVarP(&f.format, "format", "f", c.env.GetString("format"), "output format: table, json (env PANELGRID_FORMAT)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write the layout to a file instead of stdout")
	cmd.Flags().StringVar(&f.order, "order", string(grid.OrderRow), "panel order: row, column")
}

func (f *outputFlags) validate() error {
	switch f.format {
	case formatTable, formatJSON:
	default:
		return errors.New(errors.ErrCodeValidation, "unsupported format %q (must be %s or %s)", f.format, formatTable, formatJSON)
	}
	_, err := grid.ParseOrder(f.order)
	return err
}

// writeLayout exports loc and writes it in the requested format.
func writeLayout(cmd *cobra.Command, loc grid.Locator, f outputFlags) error {
	logger := loggerFromContext(cmd.Context())
	prog := newProgress(logger)

	out, err := layout.Export(loc, grid.Order(f.order))
	if err != nil {
		return err
	}
	prog.done("Located " + strconv.Itoa(len(out.Panels)) + " panels")

	w := cmd.OutOrStdout()
	if f.output == "" {
		if f.format == formatJSON {
			data, err := layout.MarshalLayout(out)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInternal, err, "marshal layout")
			}
			_, err = w.Write(append(data, '\n'))
			return err
		}
		printLayout(w, out)
		return nil
	}

	if f.format == formatJSON {
		err = layout.WriteLayoutFile(out, f.output)
	} else {
		var b strings.Builder
		printLayout(&b, out)
		err = os.WriteFile(f.output, []byte(b.String()), 0644)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write output %s", f.output)
	}
	for _, d := range out.Diagnostics {
		printWarning(w, "%s", d.Message)
	}
	printSuccess(w, "Layout written")
	printFile(w, f.output)
	return nil
}
