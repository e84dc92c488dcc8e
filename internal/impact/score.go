package impact

import "fmt"

// Rule contributions.
const (
	LatePaymentPoints       = -80
	NewAccountPoints        = -15
	HardInquiryPoints       = -10
	UtilizationHighPoints   = -40
	UtilizationLowPoints    = -15
	UtilizationDropPoints   = 30
	UtilizationDipPoints    = 15
	utilizationBandBoundary = 20
)

// NoActionsFactor is reported when no rule fired.
var NoActionsFactor = Factor{
	Action: "No actions selected",
	Impact: DirectionNeutral,
	Weight: WeightNone,
	Tag:    TagNeutral,
}

// Evaluate computes the impact estimate for in. It never fails and does not
// clamp UtilizationChange; values outside [-100, 100] score like any other.
func Evaluate(in Input) Result {
	total := 0
	var factors []Factor

	if in.LatePayment {
		total += LatePaymentPoints
		factors = append(factors, Factor{"Late Payment (30+ days)", DirectionDecrease, WeightHigh, TagNegativeSevere})
	}
	if in.NewAccount {
		total += NewAccountPoints
		factors = append(factors, Factor{"New Credit Account", DirectionSlightDecrease, WeightLow, TagNegativeMild})
	}
	if in.HardInquiry {
		total += HardInquiryPoints
		factors = append(factors, Factor{"Hard Inquiry", DirectionSlightDecrease, WeightLow, TagNegativeMild})
	}

	// The positive band includes 20, the negative band includes -20.
	v := in.UtilizationChange
	switch {
	case v > utilizationBandBoundary:
		total += UtilizationHighPoints
		factors = append(factors, Factor{utilizationAction(v), DirectionDecrease, WeightMedium, TagNegativeSevere})
	case v > 0:
		total += UtilizationLowPoints
		factors = append(factors, Factor{utilizationAction(v), DirectionSlightDecrease, WeightLow, TagNegativeMild})
	case v < -utilizationBandBoundary:
		total += UtilizationDropPoints
		factors = append(factors, Factor{utilizationAction(v), DirectionIncrease, WeightMedium, TagPositive})
	case v < 0:
		total += UtilizationDipPoints
		factors = append(factors, Factor{utilizationAction(v), DirectionSlightIncrease, WeightLow, TagPositive})
	}

	if len(factors) == 0 {
		factors = []Factor{NoActionsFactor}
	}

	c := Classify(total)
	return Result{
		TotalImpact: total,
		Label:       c.Label,
		LabelTag:    c.LabelTag,
		Risk:        c.Risk,
		RiskTag:     c.RiskTag,
		Factors:     factors,
	}
}

func utilizationAction(v int) string {
	if v > 0 {
		return fmt.Sprintf("Utilization +%d%%", v)
	}
	return fmt.Sprintf("Utilization %d%%", v)
}
