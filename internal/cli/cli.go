package cli

import (
	"context"
	"io"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/matzehuels/panelgrid/pkg/buildinfo"
	"github.com/matzehuels/panelgrid/pkg/errors"
	"github.com/matzehuels/panelgrid/pkg/units"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display and completions.
	appName = "panelgrid"

	// envPrefix prefixes the environment variables that set flag defaults.
	envPrefix = "PANELGRID"
)

// Output formats.
const (
	formatTable = "table"
	formatJSON  = "json"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// env supplies flag defaults from PANELGRID_* variables.
	env *viper.Viper
}

// New creates a new CLI instance with a default logger.
// Environment defaults are read once, here.
func New(w io.Writer, level log.Level) *CLI {
	env := viper.New()
	env.SetEnvPrefix(envPrefix)
	env.AutomaticEnv()
	env.SetDefault("units", string(units.Default))
	env.SetDefault("format", formatTable)

	return &CLI{
		Logger: newLogger(w, level),
		env:    env,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Panelgrid lays out grids of plot panels inside a figure",
		Long: `Panelgrid computes where each panel of a rows × columns grid sits inside a
figure, given either the panel size or the overall figure size, the gaps
between panels and the padding around the grid.

Positions are reported as normalized rectangles (0..1, origin bottom-left),
ready to hand to a plotting library.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.panelCommand())
	root.AddCommand(c.figureCommand())
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.convertCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Argument Helpers
// =============================================================================

// parseShape parses the ROWS COLUMNS positional arguments.
func parseShape(args []string) (rows, columns int, err error) {
	if rows, err = parseCount("rows", args[0]); err != nil {
		return 0, 0, err
	}
	if columns, err = parseCount("columns", args[1]); err != nil {
		return 0, 0, err
	}
	return rows, columns, nil
}

func parseCount(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeValidation, "%s must be an integer, got %q", name, s)
	}
	return n, nil
}
