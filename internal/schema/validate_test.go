package schema

import (
	"testing"

	"github.com/dshills/creditimpact/internal/impact"
)

func TestValidateValid(t *testing.T) {
	for _, v := range []int{-100, -20, 0, 20, 100} {
		errs := Validate(impact.Input{UtilizationChange: v}, "")
		for _, e := range errs {
			t.Errorf("utilization %d: unexpected error: %s", v, e)
		}
	}
}

func TestValidateOutOfRange(t *testing.T) {
	tests := []struct {
		value  int
		prefix string
		path   string
	}{
		{101, "", "utilization_change"},
		{-101, "", "utilization_change"},
		{500, "scenarios[2]", "scenarios[2].utilization_change"},
	}
	for _, tt := range tests {
		errs := Validate(impact.Input{UtilizationChange: tt.value}, tt.prefix)
		if len(errs) != 1 {
			t.Fatalf("utilization %d: expected 1 error, got %d", tt.value, len(errs))
		}
		if errs[0].Path != tt.path {
			t.Errorf("path = %q, want %q", errs[0].Path, tt.path)
		}
	}
}

func TestValidationErrorString(t *testing.T) {
	e := ValidationError{Path: "utilization_change", Message: "150 outside [-100, 100]"}
	if got := e.Error(); got != "utilization_change: 150 outside [-100, 100]" {
		t.Errorf("Error() = %q", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in      int
		want    int
		changed bool
	}{
		{150, 100, true},
		{-150, -100, true},
		{100, 100, false},
		{-35, -35, false},
	}
	for _, tt := range tests {
		in := impact.Input{LatePayment: true, UtilizationChange: tt.in}
		got, changed := Clamp(in)
		if got.UtilizationChange != tt.want || changed != tt.changed {
			t.Errorf("Clamp(%d) = (%d, %v), want (%d, %v)", tt.in, got.UtilizationChange, changed, tt.want, tt.changed)
		}
		if !got.LatePayment {
			t.Error("Clamp dropped other fields")
		}
		if in.UtilizationChange != tt.in {
			t.Error("Clamp mutated its argument")
		}
	}
}
