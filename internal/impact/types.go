// Package impact defines the credit action inputs and the heuristic impact
// estimate derived from them.
package impact

// Input is the set of credit actions under consideration.
type Input struct {
	LatePayment bool `json:"late_payment" yaml:"late_payment"`
	NewAccount  bool `json:"new_account" yaml:"new_account"`
	HardInquiry bool `json:"hard_inquiry" yaml:"hard_inquiry"`
	// UtilizationChange is a percentage-point delta; negative is an improvement.
	UtilizationChange int `json:"utilization_change" yaml:"utilization_change"`
}

// Factor is one triggered rule in the breakdown.
type Factor struct {
	Action string    `json:"action"`
	Impact Direction `json:"impact"`
	Weight Weight    `json:"weight"`
	Tag    Tag       `json:"tag"`
}

// Result is the estimate for a single Input.
type Result struct {
	TotalImpact int       `json:"total_impact"`
	Label       Label     `json:"impact_label"`
	LabelTag    Tag       `json:"impact_tag"`
	Risk        RiskLevel `json:"risk_level"`
	RiskTag     Tag       `json:"risk_tag"`
	Factors     []Factor  `json:"factors"`
}

// Report is the top-level output object for one evaluated scenario.
type Report struct {
	Tool       string   `json:"tool"`
	Version    string   `json:"version"`
	Source     Source   `json:"source"`
	Input      Input    `json:"input"`
	Result     Result   `json:"result"`
	Title      string   `json:"title,omitempty"`
	Subtitle   string   `json:"subtitle,omitempty"`
	Tips       []string `json:"tips,omitempty"`
	Disclaimer string   `json:"disclaimer,omitempty"`
	Notes      []string `json:"notes,omitempty"`
	Copyright  string   `json:"copyright,omitempty"`
}

// Source records where the input came from and how it was adjusted.
type Source struct {
	File     string `json:"file,omitempty"`
	Hash     string `json:"hash,omitempty"`
	Scenario string `json:"scenario,omitempty"`
	Clamped  bool   `json:"clamped"`
}
