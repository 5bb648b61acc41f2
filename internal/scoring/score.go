package scoring

import (
	"math"
	"time"
)

// Penalty divisors for wrong answers. Practice tests follow the 4-option
// convention (4 wrongs cancel 1 correct); LGS mock exams use 3. The two
// values are intentionally different and must stay that way.
const (
	PracticePenalty = 4.0
	ExamPenalty     = 3.0
)

// Result is the scoring layer's view of a single record. Services convert
// stored records into Results before calling any function in this package,
// keeping the computations free of persistence concerns.
type Result struct {
	UserID    string
	UserEmail string
	Subject   string
	Correct   int
	Wrong     int
	Blank     int
	CreatedAt time.Time
}

// Score is the derived value for one (correct, wrong, blank) triple.
type Score struct {
	Correct     int
	Wrong       int
	Blank       int
	Total       int
	Net         float64
	SuccessRate int
}

// Calculate is the single source of truth for net and success-rate
// semantics. Net may go negative and is reported raw; the success rate
// clamps negative nets to zero before taking the ratio, rounds half-up to
// the nearest integer percent, and is 0 whenever the total is 0.
func Calculate(correct, wrong, blank int, penalty float64) Score {
	total := correct + wrong + blank
	net := float64(correct) - float64(wrong)/penalty

	rate := 0
	if total > 0 {
		rate = int(math.Round(math.Max(0, net) / float64(total) * 100))
	}

	return Score{
		Correct:     correct,
		Wrong:       wrong,
		Blank:       blank,
		Total:       total,
		Net:         net,
		SuccessRate: rate,
	}
}

// Rate is a shorthand for the success rate of a single result.
func (r Result) Rate(penalty float64) int {
	return Calculate(r.Correct, r.Wrong, r.Blank, penalty).SuccessRate
}

// MeanRate is the arithmetic mean of each result's own success rate. This is
// deliberately NOT the pooled rate: the dashboard's overall average weighs
// every sitting equally regardless of its question count. Returns 0 for an
// empty slice.
func MeanRate(results []Result, penalty float64) float64 {
	if len(results) == 0 {
		return 0
	}
	sum := 0
	for _, r := range results {
		sum += r.Rate(penalty)
	}
	return float64(sum) / float64(len(results))
}
