package domain

// AnalysisProgress is a milestone reported to a caller-supplied sink
type AnalysisProgress struct {
	Step    string `json:"step"`
	Percent int    `json:"progress"`
}

// ProgressSink receives progress milestones. A nil sink is valid and ignored.
type ProgressSink func(AnalysisProgress)

// Report sends a milestone to the sink, clamping percent to [0, 100]
func (s ProgressSink) Report(step string, percent int) {
	if s == nil {
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	s(AnalysisProgress{Step: step, Percent: percent})
}
