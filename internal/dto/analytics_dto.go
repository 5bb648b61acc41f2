package dto

// RiskDTO is the dashboard risk gauge: a label, a numeric gauge position
// and a color name. Rendering stays with the client.
type RiskDTO struct {
	Label string `json:"label"`
	Gauge int    `json:"gauge"`
	Color string `json:"color"`
}

// TargetDTO is the distance-to-goal projection on the 0..500 LGS scale.
type TargetDTO struct {
	Current     float64 `json:"current"`
	Target      float64 `json:"target"`
	Remaining   float64 `json:"remaining"`
	Probability int     `json:"probability"`
}

// DashboardResponse is the single-call summary for the dashboard view.
// AverageScore is the arithmetic mean of per-record rates (0..100), which
// is intentionally different from the pooled subject rates.
type DashboardResponse struct {
	AverageScore float64   `json:"average_score"`
	TrendDelta   float64   `json:"trend_delta"`
	Risk         RiskDTO   `json:"risk"`
	StreakDays   int       `json:"streak_days"`
	Badges       []string  `json:"badges"`
	Target       TargetDTO `json:"target"`
	RecordCount  int       `json:"record_count"`
}

// BucketDTO is one pooled aggregation bucket (per subject or per day).
type BucketDTO struct {
	Key         string  `json:"key"`
	Records     int     `json:"records"`
	Correct     int     `json:"correct"`
	Wrong       int     `json:"wrong"`
	Blank       int     `json:"blank"`
	Total       int     `json:"total"`
	Net         float64 `json:"net"`
	SuccessRate int     `json:"success_rate"`
}

// SubjectRankDTO is the current user's standing in one subject. Rank is
// either "#R / N" or "no data" when the user has no records there.
type SubjectRankDTO struct {
	Subject     string `json:"subject"`
	Rank        string `json:"rank"`
	SuccessRate *int   `json:"success_rate,omitempty"`
}

// ExamAnalyticsResponse summarizes the user's mock exams: pooled per-branch
// buckets, the trend over recent exams and each exam's overall figures.
type ExamAnalyticsResponse struct {
	ExamCount    int           `json:"exam_count"`
	AverageScore float64       `json:"average_score"`
	TrendDelta   float64       `json:"trend_delta"`
	Branches     []BucketDTO   `json:"branches"`
	Exams        []ExamSummary `json:"exams"`
}

// ExamSummary is one exam's overall pooled figures, newest first.
type ExamSummary struct {
	ID          string  `json:"id"`
	Name        string  `json:"name,omitempty"`
	TotalNet    float64 `json:"total_net"`
	SuccessRate int     `json:"success_rate"`
	CreatedAt   string  `json:"created_at"`
}
