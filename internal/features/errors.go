package features

import "fmt"

// ValidationError reports a field outside its declared bounds.
type ValidationError struct {
	Field Field
	Value float64
	Min   float64
	Max   float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be between %s and %s, got %s",
		e.Field, formatNum(e.Min), formatNum(e.Max), formatNum(e.Value))
}

// UnmappedCategoryError reports a categorical value with no numeric code.
// The enums are closed, so hitting this is a programming defect.
type UnmappedCategoryError struct {
	Field Field
	Value string
}

func (e *UnmappedCategoryError) Error() string {
	return fmt.Sprintf("no code for %s %q", e.Field, e.Value)
}

func formatNum(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
