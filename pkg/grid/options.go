package grid

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/panelgrid/pkg/units"
)

// Option configures a locator.
type Option func(*options)

type options struct {
	hsep    Separation
	vsep    Separation
	padding Padding
	units   units.Unit
	logger  *log.Logger
}

func newOptions(opts []Option) options {
	o := options{units: units.Default}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return o
}

// WithHSep sets the horizontal gap between neighbouring columns (default 0).
func WithHSep(s Separation) Option { return func(o *options) { o.hsep = s } }

// WithVSep sets the vertical gap between neighbouring rows (default 0).
func WithVSep(s Separation) Option { return func(o *options) { o.vsep = s } }

// WithPadding sets the gaps between the grid and the figure edges (default 0).
func WithPadding(p Padding) Option { return func(o *options) { o.padding = p } }

// WithUnits sets the unit every length is expressed in (default millimeters).
func WithUnits(u units.Unit) Option { return func(o *options) { o.units = u } }

// WithLogger routes construction logs and diagnostics to l. A nil logger
// discards them.
func WithLogger(l *log.Logger) Option { return func(o *options) { o.logger = l } }
