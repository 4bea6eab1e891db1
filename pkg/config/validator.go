package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validator provides a fluent interface for validating configuration values.
// It collects all violations rather than failing on the first one.
type Validator struct {
	name   string
	errors []error
}

// NewValidator creates a new validator with the given config name.
func NewValidator(name string) *Validator {
	return &Validator{name: name}
}

// MinInt validates that an int field is at least the minimum value.
func (v *Validator) MinInt(field string, value, min int) *Validator {
	if value < min {
		v.errors = append(v.errors, fmt.Errorf("%s.%s: value %d is below minimum %d", v.name, field, value, min))
	}
	return v
}

// MaxInt validates that an int field does not exceed the maximum value.
func (v *Validator) MaxInt(field string, value, max int) *Validator {
	if value > max {
		v.errors = append(v.errors, fmt.Errorf("%s.%s: value %d exceeds maximum %d", v.name, field, value, max))
	}
	return v
}

// MinInt64 validates that an int64 field is at least the minimum value.
func (v *Validator) MinInt64(field string, value, min int64) *Validator {
	if value < min {
		v.errors = append(v.errors, fmt.Errorf("%s.%s: value %d is below minimum %d", v.name, field, value, min))
	}
	return v
}

// FloatRange validates that a float field lies within [min, max].
func (v *Validator) FloatRange(field string, value, min, max float64) *Validator {
	if value < min || value > max {
		v.errors = append(v.errors, fmt.Errorf("%s.%s: value %g outside range [%g, %g]", v.name, field, value, min, max))
	}
	return v
}

// PositiveDuration validates that a duration is greater than zero.
func (v *Validator) PositiveDuration(field string, value time.Duration) *Validator {
	if value <= 0 {
		v.errors = append(v.errors, fmt.Errorf("%s.%s: duration must be positive, got %v", v.name, field, value))
	}
	return v
}

// PortRange validates that a value is a usable TCP port.
func (v *Validator) PortRange(field string, value int) *Validator {
	if value < 1 || value > 65535 {
		v.errors = append(v.errors, fmt.Errorf("%s.%s: port %d outside range [1, 65535]", v.name, field, value))
	}
	return v
}

// Err returns all collected violations joined into one error, or nil.
func (v *Validator) Err() error {
	if len(v.errors) == 0 {
		return nil
	}
	messages := make([]string, len(v.errors))
	for i, err := range v.errors {
		messages[i] = err.Error()
	}
	return errors.New(strings.Join(messages, "; "))
}
