package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/panelgrid/pkg/grid"
)

// Sep decodes a separation written either as a single number or as an array
// of numbers.
//
//	hsep = 4           # every column gap is 4
//	vsep = [2, 6, 2]   # one gap per row boundary
type Sep struct {
	grid.Separation
}

// UnmarshalTOML implements toml.Unmarshaler.
func (s *Sep) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case int64:
		s.Separation = grid.Uniform(float64(v))
	case float64:
		s.Separation = grid.Uniform(v)
	case []any:
		vals := make([]float64, len(v))
		for i, e := range v {
			f, err := number(e)
			if err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
			vals[i] = f
		}
		s.Separation = grid.Sequence(vals...)
	default:
		return fmt.Errorf("separation must be a number or an array of numbers, got %T", v)
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Sep) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		s.Separation = grid.Uniform(f)
	case yaml.SequenceNode:
		var vals []float64
		if err := node.Decode(&vals); err != nil {
			return err
		}
		s.Separation = grid.Sequence(vals...)
	default:
		return fmt.Errorf("line %d: separation must be a number or a list of numbers", node.Line)
	}
	return nil
}

func number(v any) (float64, error) {
	switch v := v.(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	}
	return 0, fmt.Errorf("expected a number, got %T", v)
}
