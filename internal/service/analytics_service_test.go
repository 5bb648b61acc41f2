package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/selimyuksel/NetTakip/config"
	"github.com/selimyuksel/NetTakip/internal/model"
	"github.com/selimyuksel/NetTakip/internal/service"
	"gorm.io/gorm"
)

// in-memory TestRecordRepository holding a fixed newest-first snapshot
type fakeTestRepo struct {
	records []model.TestRecord
}

func (f *fakeTestRepo) Create(r *model.TestRecord) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	f.records = append(f.records, *r)
	return nil
}

func (f *fakeTestRepo) FindByID(id uuid.UUID) (*model.TestRecord, error) {
	for i := range f.records {
		if f.records[i].ID == id {
			out := f.records[i]
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeTestRepo) FindByUser(userID string) ([]model.TestRecord, error) {
	var out []model.TestRecord
	for _, r := range f.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (f *fakeTestRepo) FindAll() ([]model.TestRecord, error) { return f.records, nil }

func (f *fakeTestRepo) Update(r *model.TestRecord) error {
	for i := range f.records {
		if f.records[i].ID == r.ID {
			f.records[i] = *r
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeTestRepo) Delete(id uuid.UUID) error {
	for i := range f.records {
		if f.records[i].ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeExamRepo struct {
	exams []model.ExamRecord
}

func (f *fakeExamRepo) Create(e *model.ExamRecord) error { f.exams = append(f.exams, *e); return nil }
func (f *fakeExamRepo) FindByID(uuid.UUID) (*model.ExamRecord, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeExamRepo) FindByUser(string) ([]model.ExamRecord, error) { return f.exams, nil }
func (f *fakeExamRepo) Update(*model.ExamRecord) error                { return nil }
func (f *fakeExamRepo) Delete(uuid.UUID) error                        { return nil }

func analyticsConfig() *config.Config {
	return &config.Config{
		Analytics: config.Analytics{
			PracticeTrendWindow: 5,
			ExamTrendWindow:     3,
			RiskHighAverage:     70,
			RiskMidAverage:      50,
			RiskMaxDecline:      10,
			StreakHorizonDays:   30,
			TargetScore:         480,
			ScoreScale:          500,
		},
	}
}

func record(user, subject string, correct, blank int, createdAt time.Time) model.TestRecord {
	return model.TestRecord{
		ID:        uuid.New(),
		UserID:    user,
		Subject:   subject,
		Correct:   correct,
		Blank:     blank,
		CreatedAt: createdAt,
	}
}

func TestAnalyticsService_Dashboard(t *testing.T) {
	now := time.Now()
	testRepo := &fakeTestRepo{records: []model.TestRecord{
		record("u1", "Matematik", 20, 0, now),                  // 100%
		record("u1", "Türkçe", 12, 8, now.AddDate(0, 0, -1)),   // 60%
		record("u1", "Türkçe", 16, 4, now.AddDate(0, 0, -2)),   // 80%
	}}
	svc := service.NewAnalyticsService(testRepo, &fakeExamRepo{}, analyticsConfig())

	dash, err := svc.Dashboard("u1")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if dash.AverageScore != 80 {
		t.Errorf("average = %v, want 80", dash.AverageScore)
	}
	if dash.StreakDays != 3 {
		t.Errorf("streak = %d, want 3", dash.StreakDays)
	}
	if dash.RecordCount != 3 {
		t.Errorf("record count = %d, want 3", dash.RecordCount)
	}
	if len(dash.Badges) != 1 || dash.Badges[0] != "first_test" {
		t.Errorf("badges = %v, want only first_test", dash.Badges)
	}
	// 80% of 500 = 400 points toward a 480 target
	if dash.Target.Current != 400 || dash.Target.Remaining != 80 {
		t.Errorf("target = %+v", dash.Target)
	}
	if dash.Risk.Label != "low" {
		t.Errorf("risk = %q, want low (avg 80, trend stable)", dash.Risk.Label)
	}
}

func TestAnalyticsService_DashboardEmpty(t *testing.T) {
	svc := service.NewAnalyticsService(&fakeTestRepo{}, &fakeExamRepo{}, analyticsConfig())

	dash, err := svc.Dashboard("u1")
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if dash.AverageScore != 0 || dash.StreakDays != 0 || len(dash.Badges) != 0 {
		t.Errorf("empty dashboard = %+v, want all zero", dash)
	}
	if dash.Risk.Label != "high" {
		t.Errorf("risk = %q, want high with no data", dash.Risk.Label)
	}
}

func TestAnalyticsService_SubjectBreakdownScopes(t *testing.T) {
	now := time.Now()
	testRepo := &fakeTestRepo{records: []model.TestRecord{
		record("u1", "Matematik", 10, 10, now),
		record("u2", "Matematik", 20, 0, now),
	}}
	svc := service.NewAnalyticsService(testRepo, &fakeExamRepo{}, analyticsConfig())

	selfBuckets, err := svc.SubjectBreakdown("u1", service.ScopeSelf)
	if err != nil {
		t.Fatalf("self: %v", err)
	}
	if len(selfBuckets) != 1 || selfBuckets[0].Records != 1 {
		t.Fatalf("self buckets = %+v", selfBuckets)
	}
	if selfBuckets[0].SuccessRate != 50 {
		t.Errorf("self rate = %d, want 50", selfBuckets[0].SuccessRate)
	}

	schoolBuckets, err := svc.SubjectBreakdown("u1", service.ScopeSchool)
	if err != nil {
		t.Fatalf("school: %v", err)
	}
	if len(schoolBuckets) != 1 || schoolBuckets[0].Records != 2 {
		t.Fatalf("school buckets = %+v", schoolBuckets)
	}
	// pooled 30/40 = 75%
	if schoolBuckets[0].SuccessRate != 75 {
		t.Errorf("school pooled rate = %d, want 75", schoolBuckets[0].SuccessRate)
	}
}

func TestAnalyticsService_Rankings(t *testing.T) {
	now := time.Now()
	testRepo := &fakeTestRepo{records: []model.TestRecord{
		record("ayse", "Matematik", 18, 2, now),
		record("u1", "Matematik", 14, 6, now),
		record("zeynep", "Matematik", 10, 10, now),
	}}
	svc := service.NewAnalyticsService(testRepo, &fakeExamRepo{}, analyticsConfig())

	ranks, err := svc.Rankings("u1")
	if err != nil {
		t.Fatalf("rankings: %v", err)
	}
	if len(ranks) != 1 {
		t.Fatalf("ranks = %+v", ranks)
	}
	if ranks[0].Rank != "#2 / 3" {
		t.Errorf("rank = %q, want \"#2 / 3\"", ranks[0].Rank)
	}

	ranks, err = svc.Rankings("deniz")
	if err != nil {
		t.Fatalf("rankings: %v", err)
	}
	if ranks[0].Rank != "no data" {
		t.Errorf("rank = %q, want \"no data\"", ranks[0].Rank)
	}
	if ranks[0].SuccessRate != nil {
		t.Error("no-data rank should carry no success rate")
	}
}

func TestAnalyticsService_ExamAnalytics(t *testing.T) {
	now := time.Now()
	examRepo := &fakeExamRepo{exams: []model.ExamRecord{
		{
			ID:     uuid.New(),
			UserID: "u1",
			Name:   "Deneme 2",
			// 60 correct, 15 wrong, 15 blank overall: net 55, rate 61%
			Turkish:   model.BranchScore{Correct: 14, Wrong: 3, Blank: 3},
			Math:      model.BranchScore{Correct: 10, Wrong: 6, Blank: 4},
			Science:   model.BranchScore{Correct: 16, Wrong: 2, Blank: 2},
			History:   model.BranchScore{Correct: 8, Wrong: 1, Blank: 1},
			Religion:  model.BranchScore{Correct: 7, Wrong: 1, Blank: 2},
			Foreign:   model.BranchScore{Correct: 5, Wrong: 2, Blank: 3},
			CreatedAt: now,
		},
	}}
	svc := service.NewAnalyticsService(&fakeTestRepo{}, examRepo, analyticsConfig())

	out, err := svc.ExamAnalytics("u1")
	if err != nil {
		t.Fatalf("exam analytics: %v", err)
	}
	if out.ExamCount != 1 || len(out.Exams) != 1 {
		t.Fatalf("out = %+v", out)
	}
	if out.Exams[0].TotalNet != 55 {
		t.Errorf("total net = %v, want 55 (exam penalty /3)", out.Exams[0].TotalNet)
	}
	if len(out.Branches) != 6 {
		t.Errorf("branches = %d, want 6", len(out.Branches))
	}
	if out.TrendDelta != 0 {
		t.Errorf("trend = %v, want 0 with a single exam", out.TrendDelta)
	}
}
