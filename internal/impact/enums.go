package impact

// Direction is the categorical effect a factor has on the score.
type Direction string

const (
	DirectionDecrease       Direction = "Decrease"
	DirectionSlightDecrease Direction = "Slight Decrease"
	DirectionNeutral        Direction = "Neutral"
	DirectionSlightIncrease Direction = "Slight Increase"
	DirectionIncrease       Direction = "Increase"
)

func (d Direction) Valid() bool {
	switch d {
	case DirectionDecrease, DirectionSlightDecrease, DirectionNeutral,
		DirectionSlightIncrease, DirectionIncrease:
		return true
	}
	return false
}

// Weight is the severity tier of a factor.
type Weight string

const (
	WeightNone   Weight = "None"
	WeightLow    Weight = "Low"
	WeightMedium Weight = "Medium"
	WeightHigh   Weight = "High"
)

func (w Weight) Valid() bool {
	switch w {
	case WeightNone, WeightLow, WeightMedium, WeightHigh:
		return true
	}
	return false
}

// Tag is a semantic severity marker. Renderers decide how a tag looks.
type Tag string

const (
	TagNegativeSevere Tag = "negative-severe"
	TagNegativeMild   Tag = "negative-mild"
	TagPositive       Tag = "positive"
	TagNeutral        Tag = "neutral"
)

func (t Tag) Valid() bool {
	switch t {
	case TagNegativeSevere, TagNegativeMild, TagPositive, TagNeutral:
		return true
	}
	return false
}

// Label buckets the net direction and magnitude of a total score.
type Label string

const (
	LabelSignificantDecrease Label = "Significant Decrease"
	LabelModerateDecrease    Label = "Moderate Decrease"
	LabelSlightDecrease      Label = "Slight Decrease"
	LabelNeutral             Label = "Neutral"
	LabelSlightIncrease      Label = "Slight Increase"
	LabelModerateIncrease    Label = "Moderate Increase"
)

func (l Label) Valid() bool {
	switch l {
	case LabelSignificantDecrease, LabelModerateDecrease, LabelSlightDecrease,
		LabelNeutral, LabelSlightIncrease, LabelModerateIncrease:
		return true
	}
	return false
}

// RiskLevel buckets the downside severity of a total score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Order returns a comparison key (higher = riskier), or -1 for unknown levels.
func (r RiskLevel) Order() int {
	switch r {
	case RiskLow:
		return 0
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	default:
		return -1
	}
}
