package errors

import "math"

// ValidatePositiveInt checks that a count argument such as rows or columns is at least 1.
func ValidatePositiveInt(name string, v int) error {
	if v < 1 {
		return New(ErrCodeValidation, "%s must be at least 1, got %d", name, v)
	}
	return nil
}

// ValidatePositive checks that a length is finite and strictly greater than zero.
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeValidation, "%s must be a finite number, got %v", name, v)
	}
	if v <= 0 {
		return New(ErrCodeValidation, "%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidateNonNegative checks that a length is finite and not below zero.
// Separations and paddings use this rule.
func ValidateNonNegative(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeValidation, "%s must be a finite number, got %v", name, v)
	}
	if v < 0 {
		return New(ErrCodeValidation, "%s must not be negative, got %g", name, v)
	}
	return nil
}

// ValidateIndex checks that i addresses one of n slots.
func ValidateIndex(name string, i, n int) error {
	if i < 0 || i >= n {
		return New(ErrCodeIndexOutOfRange, "%s index %d out of range [0, %d)", name, i, n)
	}
	return nil
}
