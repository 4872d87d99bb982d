package grid

import (
	"fmt"
	"slices"

	"github.com/matzehuels/panelgrid/pkg/errors"
)

// Separation is the gap between adjacent panels along one axis.
// It is either a single value broadcast to every slot or an explicit
// per-slot sequence. The zero value is Uniform(0).
type Separation struct {
	values   []float64
	sequence bool
}

// Uniform returns a Separation that puts v between every pair of neighbours.
func Uniform(v float64) Separation {
	return Separation{values: []float64{v}}
}

// Sequence returns a Separation with one gap per slot. Its length must match
// the grid: columns-1 for hsep, rows-1 for vsep.
func Sequence(vs ...float64) Separation {
	return Separation{values: slices.Clone(vs), sequence: true}
}

// IsSequence reports whether s was built with Sequence.
func (s Separation) IsSequence() bool { return s.sequence }

// Values returns a copy of the raw values.
func (s Separation) Values() []float64 { return slices.Clone(s.values) }

// String formats s for logs and CLI output.
func (s Separation) String() string {
	if s.sequence {
		return fmt.Sprint(s.values)
	}
	if len(s.values) == 0 {
		return "0"
	}
	return fmt.Sprint(s.values[0])
}

// Resolve expands s to exactly n gaps. name is used in error messages
// ("hsep" or "vsep").
func (s Separation) Resolve(name string, n int) ([]float64, error) {
	var out []float64
	switch {
	case s.sequence:
		if len(s.values) != n {
			return nil, errors.New(errors.ErrCodeValidation,
				"%s must have exactly %d elements, got %d", name, n, len(s.values))
		}
		out = slices.Clone(s.values)
	default:
		v := 0.0
		if len(s.values) > 0 {
			v = s.values[0]
		}
		out = make([]float64, n)
		for i := range out {
			out[i] = v
		}
		if n == 0 {
			// a single row or column has no gaps, but the value must still be sane
			if err := errors.ValidateNonNegative(name, v); err != nil {
				return nil, err
			}
		}
	}
	for i, v := range out {
		if err := errors.ValidateNonNegative(fmt.Sprintf("%s[%d]", name, i), v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// prefixSums returns p with p[i] = sum(gaps[:i]) for i in [0, len(gaps)].
func prefixSums(gaps []float64) []float64 {
	p := make([]float64, len(gaps)+1)
	for i, g := range gaps {
		p[i+1] = p[i] + g
	}
	return p
}
