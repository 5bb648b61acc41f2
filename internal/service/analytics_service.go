package service

import (
	"fmt"
	"time"

	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"github.com/selimyuksel/NetTakip/config"
	"github.com/selimyuksel/NetTakip/internal/dto"
	"github.com/selimyuksel/NetTakip/internal/model"
	"github.com/selimyuksel/NetTakip/internal/repository"
	"github.com/selimyuksel/NetTakip/internal/scoring"
)

// Scope selects whose records feed an aggregation. It is a read-time
// filter; records carry no scope of their own.
const (
	ScopeSelf   = "self"
	ScopeSchool = "school"
)

// AnalyticsService recomputes every derived statistic from a full record
// snapshot on each call. Nothing is cached or stored; the repositories are
// the only inputs and the scoring package does all the arithmetic.
type AnalyticsService interface {
	Dashboard(userID string) (*dto.DashboardResponse, error)
	SubjectBreakdown(userID, scope string) ([]dto.BucketDTO, error)
	DailyBreakdown(userID string) ([]dto.BucketDTO, error)
	Rankings(userID string) ([]dto.SubjectRankDTO, error)
	ExamAnalytics(userID string) (*dto.ExamAnalyticsResponse, error)
}

type analyticsService struct {
	testRepo repository.TestRecordRepository
	examRepo repository.ExamRepository
	cfg      config.Analytics
}

func NewAnalyticsService(testRepo repository.TestRecordRepository, examRepo repository.ExamRepository, cfg *config.Config) AnalyticsService {
	return &analyticsService{testRepo: testRepo, examRepo: examRepo, cfg: cfg.Analytics}
}

func (s *analyticsService) Dashboard(userID string) (*dto.DashboardResponse, error) {
	records, err := s.testRepo.FindByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to load records for dashboard")
		return nil, fmt.Errorf("error loading records: %w", err)
	}

	results := toResults(records)
	average := scoring.MeanRate(results, scoring.PracticePenalty)
	delta := scoring.TrendDelta(results, s.cfg.PracticeTrendWindow, scoring.PracticePenalty)
	risk := scoring.ClassifyRisk(average, delta, scoring.RiskThresholds{
		HighAverage: s.cfg.RiskHighAverage,
		MidAverage:  s.cfg.RiskMidAverage,
		MaxDecline:  s.cfg.RiskMaxDecline,
	})

	timestamps := make([]time.Time, len(results))
	for i, r := range results {
		timestamps[i] = r.CreatedAt
	}
	streak := scoring.Streak(timestamps, time.Now(), s.cfg.StreakHorizonDays)
	projection := scoring.Project(average, s.cfg.TargetScore, s.cfg.ScoreScale)

	return &dto.DashboardResponse{
		AverageScore: average,
		TrendDelta:   delta,
		Risk:         dto.RiskDTO{Label: risk.Label, Gauge: risk.Gauge, Color: risk.Color},
		StreakDays:   streak,
		Badges:       scoring.Badges(len(results), streak),
		Target: dto.TargetDTO{
			Current:     projection.Current,
			Target:      projection.Target,
			Remaining:   projection.Remaining,
			Probability: projection.Probability,
		},
		RecordCount: len(results),
	}, nil
}

func (s *analyticsService) SubjectBreakdown(userID, scope string) ([]dto.BucketDTO, error) {
	results, err := s.snapshot(userID, scope)
	if err != nil {
		return nil, err
	}
	return toBucketDTOs(scoring.Aggregate(results, scoring.BySubject, scoring.PracticePenalty))
}

func (s *analyticsService) DailyBreakdown(userID string) ([]dto.BucketDTO, error) {
	results, err := s.snapshot(userID, ScopeSelf)
	if err != nil {
		return nil, err
	}
	return toBucketDTOs(scoring.Aggregate(results, scoring.ByDay, scoring.PracticePenalty))
}

func (s *analyticsService) Rankings(userID string) ([]dto.SubjectRankDTO, error) {
	results, err := s.snapshot(userID, ScopeSchool)
	if err != nil {
		return nil, err
	}

	ranks := scoring.Rankings(results, userID, scoring.PracticePenalty)
	out := make([]dto.SubjectRankDTO, 0, len(ranks))
	for _, r := range ranks {
		item := dto.SubjectRankDTO{Subject: r.Subject, Rank: "no data"}
		if r.HasData {
			item.Rank = fmt.Sprintf("#%d / %d", r.Position, r.Participants)
			rate := r.SuccessRate
			item.SuccessRate = &rate
		}
		out = append(out, item)
	}
	return out, nil
}

func (s *analyticsService) ExamAnalytics(userID string) (*dto.ExamAnalyticsResponse, error) {
	exams, err := s.examRepo.FindByUser(userID)
	if err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to load exams for analytics")
		return nil, fmt.Errorf("error loading exam records: %w", err)
	}

	// One overall result per exam (newest-first, matching the repo order)
	// for the average and trend; one result per branch for the pooled
	// per-subject buckets.
	overall := make([]scoring.Result, 0, len(exams))
	var branches []scoring.Result
	summaries := make([]dto.ExamSummary, 0, len(exams))

	for i := range exams {
		exam := &exams[i]
		totals := exam.Totals()
		overall = append(overall, scoring.Result{
			UserID:    exam.UserID,
			Correct:   totals.Correct,
			Wrong:     totals.Wrong,
			Blank:     totals.Blank,
			CreatedAt: exam.CreatedAt,
		})
		for _, b := range exam.Branches() {
			branches = append(branches, scoring.Result{
				UserID:    exam.UserID,
				Subject:   b.Subject,
				Correct:   b.Score.Correct,
				Wrong:     b.Score.Wrong,
				Blank:     b.Score.Blank,
				CreatedAt: exam.CreatedAt,
			})
		}

		score := scoring.Calculate(totals.Correct, totals.Wrong, totals.Blank, scoring.ExamPenalty)
		summaries = append(summaries, dto.ExamSummary{
			ID:          exam.ID.String(),
			Name:        exam.Name,
			TotalNet:    score.Net,
			SuccessRate: score.SuccessRate,
			CreatedAt:   exam.CreatedAt.Format(time.RFC3339),
		})
	}

	buckets, err := toBucketDTOs(scoring.Aggregate(branches, scoring.BySubject, scoring.ExamPenalty))
	if err != nil {
		return nil, err
	}

	return &dto.ExamAnalyticsResponse{
		ExamCount:    len(exams),
		AverageScore: scoring.MeanRate(overall, scoring.ExamPenalty),
		TrendDelta:   scoring.TrendDelta(overall, s.cfg.ExamTrendWindow, scoring.ExamPenalty),
		Branches:     buckets,
		Exams:        summaries,
	}, nil
}

func (s *analyticsService) snapshot(userID, scope string) ([]scoring.Result, error) {
	var (
		records []model.TestRecord
		err     error
	)
	if scope == ScopeSchool {
		records, err = s.testRepo.FindAll()
	} else {
		records, err = s.testRepo.FindByUser(userID)
	}
	if err != nil {
		log.Error().Err(err).Str("scope", scope).Msg("Failed to load record snapshot")
		return nil, fmt.Errorf("error loading records: %w", err)
	}
	return toResults(records), nil
}

func toResults(records []model.TestRecord) []scoring.Result {
	results := make([]scoring.Result, 0, len(records))
	for _, r := range records {
		results = append(results, scoring.Result{
			UserID:    r.UserID,
			UserEmail: r.UserEmail,
			Subject:   r.Subject,
			Correct:   r.Correct,
			Wrong:     r.Wrong,
			Blank:     r.Blank,
			CreatedAt: r.CreatedAt,
		})
	}
	return results
}

func toBucketDTOs(buckets []scoring.Bucket) ([]dto.BucketDTO, error) {
	out := make([]dto.BucketDTO, 0, len(buckets))
	if err := copier.Copy(&out, buckets); err != nil {
		return nil, fmt.Errorf("error mapping aggregation buckets: %w", err)
	}
	return out, nil
}
