package impact

// Classification is the label and risk bucket for a total score.
type Classification struct {
	Label    Label
	LabelTag Tag
	Risk     RiskLevel
	RiskTag  Tag
}

// Classify maps a total score to its label and risk level.
// Thresholds are checked in order: <=-50, <=-20, <0, >=20, >0, then neutral.
func Classify(total int) Classification {
	switch {
	case total <= -50:
		return Classification{LabelSignificantDecrease, TagNegativeSevere, RiskHigh, TagNegativeSevere}
	case total <= -20:
		return Classification{LabelModerateDecrease, TagNegativeMild, RiskMedium, TagNegativeMild}
	case total < 0:
		return Classification{LabelSlightDecrease, TagNegativeMild, RiskLow, TagPositive}
	case total >= 20:
		return Classification{LabelModerateIncrease, TagPositive, RiskLow, TagPositive}
	case total > 0:
		return Classification{LabelSlightIncrease, TagPositive, RiskLow, TagPositive}
	default:
		return Classification{LabelNeutral, TagNeutral, RiskLow, TagPositive}
	}
}
