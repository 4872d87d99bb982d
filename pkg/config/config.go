// Package config loads panel grid descriptions from TOML or YAML files.
//
// A description names the grid shape, either the panel size (panel mode) or
// the figure size (figure mode), and the separations, padding and units:
//
//	# figure.toml
//	mode       = "figure"
//	rows       = 2
//	columns    = 3
//	fig_width  = 180
//	panel_ratio = 1.5
//	hsep       = 4
//	vsep       = [8]
//	pad_left   = 15
//	pad_bottom = 12
//	units      = "mm"
//
// The same keys are used in YAML. When mode is omitted it is inferred:
// panel mode if a panel dimension is present, figure mode otherwise.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/panelgrid/pkg/errors"
	"github.com/matzehuels/panelgrid/pkg/grid"
	"github.com/matzehuels/panelgrid/pkg/units"
)

// Format is a config file syntax.
type Format string

// Supported formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Grid modes.
const (
	ModePanel  = "panel"
	ModeFigure = "figure"
)

// File is a decoded grid description.
type File struct {
	Mode    string `toml:"mode" yaml:"mode"`
	Rows    int    `toml:"rows" yaml:"rows"`
	Columns int    `toml:"columns" yaml:"columns"`

	// panel mode
	PanelWidth  float64 `toml:"panel_width" yaml:"panel_width"`
	PanelHeight float64 `toml:"panel_height" yaml:"panel_height"`

	// figure mode
	FigWidth   float64 `toml:"fig_width" yaml:"fig_width"`
	FigHeight  float64 `toml:"fig_height" yaml:"fig_height"`
	PanelRatio float64 `toml:"panel_ratio" yaml:"panel_ratio"`

	HSep Sep `toml:"hsep" yaml:"hsep"`
	VSep Sep `toml:"vsep" yaml:"vsep"`

	PadLeft   float64 `toml:"pad_left" yaml:"pad_left"`
	PadRight  float64 `toml:"pad_right" yaml:"pad_right"`
	PadTop    float64 `toml:"pad_top" yaml:"pad_top"`
	PadBottom float64 `toml:"pad_bottom" yaml:"pad_bottom"`

	Units string `toml:"units" yaml:"units"`
	Order string `toml:"order" yaml:"order"`
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat,
		"unsupported config file %q (must end in .toml, .yaml or .yml)", filepath.Base(path))
}

// Load reads and validates the description at path.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return nil, err
	}
	f, err := Decode(data, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return f, nil
}

// Decode parses and validates a description. Unknown keys are rejected.
func Decode(data []byte, format Format) (*File, error) {
	var f File
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&f); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported config format %q", format)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate fills in the mode and checks that the keys fit it. Numeric
// ranges are left to the grid constructors.
func (f *File) Validate() error {
	hasPanel := f.PanelWidth != 0 || f.PanelHeight != 0
	hasFigure := f.FigWidth != 0 || f.FigHeight != 0 || f.PanelRatio != 0

	if f.Mode == "" {
		f.Mode = ModeFigure
		if hasPanel {
			f.Mode = ModePanel
		}
	}
	switch f.Mode {
	case ModePanel:
		if hasFigure {
			return errors.New(errors.ErrCodeInvalidConfig, "fig_width, fig_height and panel_ratio are only valid in figure mode")
		}
	case ModeFigure:
		if hasPanel {
			return errors.New(errors.ErrCodeInvalidConfig, "panel_width and panel_height are only valid in panel mode")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "mode must be %q or %q, got %q", ModePanel, ModeFigure, f.Mode)
	}

	if f.Units != "" {
		u, err := units.Parse(f.Units)
		if err != nil {
			return err
		}
		f.Units = string(u)
	}
	if _, err := grid.ParseOrder(f.Order); err != nil {
		return err
	}
	return nil
}

// GridOrder returns the configured iteration order.
func (f *File) GridOrder() grid.Order {
	o, err := grid.ParseOrder(f.Order)
	if err != nil {
		return grid.OrderRow
	}
	return o
}

// Options converts the shared keys into locator options.
func (f *File) Options(logger *log.Logger) []grid.Option {
	opts := []grid.Option{
		grid.WithHSep(f.HSep.Separation),
		grid.WithVSep(f.VSep.Separation),
		grid.WithPadding(grid.Padding{
			Left:   f.PadLeft,
			Right:  f.PadRight,
			Top:    f.PadTop,
			Bottom: f.PadBottom,
		}),
		grid.WithLogger(logger),
	}
	if f.Units != "" {
		opts = append(opts, grid.WithUnits(units.Unit(f.Units)))
	}
	return opts
}

// Locator builds the locator the description asks for.
func (f *File) Locator(logger *log.Logger) (grid.Locator, error) {
	if f.Mode == ModePanel {
		return grid.NewPanelSizeLocator(f.Rows, f.Columns, f.PanelWidth, f.PanelHeight, f.Options(logger)...)
	}
	return grid.NewFigureSizeLocator(f.Rows, f.Columns, grid.FigureSize{
		Width:      f.FigWidth,
		Height:     f.FigHeight,
		PanelRatio: f.PanelRatio,
	}, f.Options(logger)...)
}
