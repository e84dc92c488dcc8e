// Package schema validates credit action inputs before evaluation.
package schema

import (
	"fmt"

	"github.com/dshills/creditimpact/internal/impact"
)

// Declared bounds for a utilization change, in percentage points.
const (
	MinUtilizationChange = -100
	MaxUtilizationChange = 100
)

// ValidationError describes a single schema violation.
type ValidationError struct {
	Path    string
	Message string
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

// Validate checks an Input against its declared ranges.
// prefix is prepended to each error path (empty for a bare input).
func Validate(in impact.Input, prefix string) []ValidationError {
	var errs []ValidationError
	if in.UtilizationChange < MinUtilizationChange || in.UtilizationChange > MaxUtilizationChange {
		errs = append(errs, ValidationError{
			path(prefix, "utilization_change"),
			fmt.Sprintf("%d outside [%d, %d]", in.UtilizationChange, MinUtilizationChange, MaxUtilizationChange),
		})
	}
	return errs
}

// Clamp returns a copy of in with UtilizationChange forced into range,
// and whether anything changed.
func Clamp(in impact.Input) (impact.Input, bool) {
	switch {
	case in.UtilizationChange < MinUtilizationChange:
		in.UtilizationChange = MinUtilizationChange
		return in, true
	case in.UtilizationChange > MaxUtilizationChange:
		in.UtilizationChange = MaxUtilizationChange
		return in, true
	}
	return in, false
}

func path(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}
