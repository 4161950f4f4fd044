package design

import (
	"fmt"

	"github.com/alexiusacademia/rcalc/internal/ec2"
)

// ValidationError represents an input field that failed validation
type ValidationError struct {
	Field string
	msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.msg)
}

// Invalidf builds a ValidationError for a field
func Invalidf(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, msg: fmt.Sprintf(format, args...)}
}

// Positive fails when v is not strictly positive
func Positive(field string, v float64) error {
	if !(v > 0) {
		return Invalidf(field, "must be positive, got %g", v)
	}
	return nil
}

// NonNegative fails when v is negative
func NonNegative(field string, v float64) error {
	if !(v >= 0) {
		return Invalidf(field, "must not be negative, got %g", v)
	}
	return nil
}

// Materials checks the material ids against the catalog. Unknown ids are
// reported as validation failures here so that the procedures only see
// ids the catalog knows.
func Materials(concrete, steel, exposure string) error {
	if _, err := ec2.LookupConcrete(concrete); err != nil {
		return Invalidf("concrete_class", "%v", err)
	}
	if _, err := ec2.LookupSteel(steel); err != nil {
		return Invalidf("steel_grade", "%v", err)
	}
	if exposure != "" {
		if _, err := ec2.LookupExposure(exposure); err != nil {
			return Invalidf("exposure_class", "%v", err)
		}
	}
	return nil
}

// First returns the first non-nil error
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
