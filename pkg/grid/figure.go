package grid

import (
	"slices"

	"github.com/matzehuels/panelgrid/pkg/errors"
)

// FigureSize constrains the total figure size. A zero field is "not given".
// At least one of Width and Height must be set. PanelRatio (width/height)
// only matters when exactly one of them is set; it defaults to 1.
type FigureSize struct {
	Width      float64 `json:"width,omitempty"`
	Height     float64 `json:"height,omitempty"`
	PanelRatio float64 `json:"panel_ratio,omitempty"`
}

func (f FigureSize) validate() error {
	if err := errors.ValidateNonNegative("figwidth", f.Width); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("figheight", f.Height); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative("panelratio", f.PanelRatio); err != nil {
		return err
	}
	if f.Width == 0 && f.Height == 0 {
		return errors.New(errors.ErrCodeValidation, "one or both of figwidth and figheight must be given")
	}
	return nil
}

func (f FigureSize) ratio() float64 {
	if f.PanelRatio == 0 {
		return 1
	}
	return f.PanelRatio
}

// DiagnosticCode identifies a non-fatal condition found while building a locator.
type DiagnosticCode string

// DiagPanelRatioIgnored is reported when PanelRatio is set together with both
// Width and Height, which already fix the panel aspect.
const DiagPanelRatioIgnored DiagnosticCode = "PANEL_RATIO_IGNORED"

// Diagnostic is a warning that did not stop construction.
type Diagnostic struct {
	Code    DiagnosticCode `json:"code"`
	Message string         `json:"message"`
}

// String implements fmt.Stringer.
func (d Diagnostic) String() string { return string(d.Code) + ": " + d.Message }

// PanelSize solves for the panel size that makes a rows × columns grid fill
// fig, given the separations and padding in opts. Warnings are returned as
// diagnostics and also logged at warn level.
func PanelSize(rows, columns int, fig FigureSize, opts ...Option) (Size, []Diagnostic, error) {
	o := newOptions(opts)

	if err := errors.ValidatePositiveInt("rows", rows); err != nil {
		return Size{}, nil, err
	}
	if err := errors.ValidatePositiveInt("columns", columns); err != nil {
		return Size{}, nil, err
	}
	if err := fig.validate(); err != nil {
		return Size{}, nil, err
	}
	if err := o.padding.validate(); err != nil {
		return Size{}, nil, err
	}
	hsep, err := o.hsep.Resolve("hsep", columns-1)
	if err != nil {
		return Size{}, nil, err
	}
	vsep, err := o.vsep.Resolve("vsep", rows-1)
	if err != nil {
		return Size{}, nil, err
	}

	width := func() (float64, error) {
		w := (fig.Width - sum(hsep) - o.padding.Left - o.padding.Right) / float64(columns)
		if w <= 0 {
			return 0, errors.New(errors.ErrCodeValidation,
				"the figure width %g is not wide enough to locate %d columns with the desired separation and padding",
				fig.Width, columns)
		}
		return w, nil
	}
	height := func() (float64, error) {
		h := (fig.Height - sum(vsep) - o.padding.Top - o.padding.Bottom) / float64(rows)
		if h <= 0 {
			return 0, errors.New(errors.ErrCodeValidation,
				"the figure height %g is not tall enough to locate %d rows with the desired separation and padding",
				fig.Height, rows)
		}
		return h, nil
	}

	var (
		panel Size
		diags []Diagnostic
	)
	switch {
	case fig.Width > 0 && fig.Height > 0:
		if fig.PanelRatio != 0 {
			d := Diagnostic{
				Code:    DiagPanelRatioIgnored,
				Message: "the panelratio is ignored when both figwidth and figheight are given",
			}
			o.logger.Warn(d.Message, "panelratio", fig.PanelRatio)
			diags = append(diags, d)
		}
		if panel.Width, err = width(); err != nil {
			return Size{}, nil, err
		}
		if panel.Height, err = height(); err != nil {
			return Size{}, nil, err
		}
	case fig.Height > 0:
		if panel.Height, err = height(); err != nil {
			return Size{}, nil, err
		}
		panel.Width = panel.Height * fig.ratio()
	default:
		if panel.Width, err = width(); err != nil {
			return Size{}, nil, err
		}
		panel.Height = panel.Width / fig.ratio()
	}

	o.logger.Debug("solved panel size", "figure", fig, "panel", panel)
	return panel, diags, nil
}

// FigureSizeLocator is a grid specified by its total figure size. It solves
// for the panel size once and then answers every query through the embedded
// PanelSizeLocator.
type FigureSizeLocator struct {
	*PanelSizeLocator

	requested   FigureSize
	diagnostics []Diagnostic
}

var _ Locator = (*FigureSizeLocator)(nil)

// NewFigureSizeLocator builds a locator whose panels fill fig.
func NewFigureSizeLocator(rows, columns int, fig FigureSize, opts ...Option) (*FigureSizeLocator, error) {
	panel, diags, err := PanelSize(rows, columns, fig, opts...)
	if err != nil {
		return nil, err
	}
	inner, err := NewPanelSizeLocator(rows, columns, panel.Width, panel.Height, opts...)
	if err != nil {
		return nil, err
	}
	return &FigureSizeLocator{
		PanelSizeLocator: inner,
		requested:        fig,
		diagnostics:      diags,
	}, nil
}

// Requested returns the figure constraint the locator was built from.
func (l *FigureSizeLocator) Requested() FigureSize { return l.requested }

// Diagnostics returns the warnings raised while solving for the panel size.
func (l *FigureSizeLocator) Diagnostics() []Diagnostic { return slices.Clone(l.diagnostics) }

func sum(vs []float64) float64 {
	var s float64
	for _, v := range vs {
		s += v
	}
	return s
}
