package scoring

// TrendDelta compares the most recent window of results against the window
// before it. Input must be ordered newest-first. The delta is the difference
// of the two windows' mean per-record success rates; if either window is
// empty there is no signal and the delta is 0.
func TrendDelta(newestFirst []Result, window int, penalty float64) float64 {
	if window <= 0 {
		return 0
	}
	recent := slice(newestFirst, 0, window)
	previous := slice(newestFirst, window, 2*window)
	if len(recent) == 0 || len(previous) == 0 {
		return 0
	}
	return MeanRate(recent, penalty) - MeanRate(previous, penalty)
}

func slice(results []Result, from, to int) []Result {
	if from > len(results) {
		from = len(results)
	}
	if to > len(results) {
		to = len(results)
	}
	return results[from:to]
}

// RiskThresholds configure the tier boundaries. Zero values are never
// meaningful; callers load these from configuration.
type RiskThresholds struct {
	HighAverage float64 // at or above this with a non-negative trend: low risk
	MidAverage  float64 // at or above this with a bounded decline: medium risk
	MaxDecline  float64 // largest tolerated negative delta for medium risk
}

// RiskTier is the coarse classification shown on the dashboard gauge.
type RiskTier struct {
	Label string
	Gauge int
	Color string
}

var (
	lowRisk    = RiskTier{Label: "low", Gauge: 25, Color: "green"}
	mediumRisk = RiskTier{Label: "medium", Gauge: 60, Color: "orange"}
	highRisk   = RiskTier{Label: "high", Gauge: 90, Color: "red"}
)

// ClassifyRisk maps the overall average rate and the trend delta onto one of
// three tiers.
func ClassifyRisk(average, delta float64, t RiskThresholds) RiskTier {
	switch {
	case average >= t.HighAverage && delta >= 0:
		return lowRisk
	case average >= t.MidAverage && delta >= -t.MaxDecline:
		return mediumRisk
	default:
		return highRisk
	}
}
