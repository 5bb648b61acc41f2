package scoring

import "math"

// Projection is the distance-to-goal readout for the target score card. It
// is a plain ratio, not a forecast.
type Projection struct {
	Current     float64
	Target      float64
	Remaining   float64
	Probability int // clamped to [0, 100]
}

// Project maps a mean success rate (0..100) onto the exam point scale
// (0..scale, LGS uses 500) and relates it to the target score. Probability
// is current/target as a percentage, clamped to [0, 100]; remaining never
// goes negative.
func Project(meanRate, target, scale float64) Projection {
	current := meanRate / 100 * scale

	probability := 0.0
	if target > 0 {
		probability = current / target * 100
	}
	probability = math.Min(100, math.Max(0, probability))

	return Projection{
		Current:     current,
		Target:      target,
		Remaining:   math.Max(0, target-current),
		Probability: int(math.Round(probability)),
	}
}
