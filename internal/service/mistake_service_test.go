package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/selimyuksel/NetTakip/internal/dto"
	"github.com/selimyuksel/NetTakip/internal/model"
	"github.com/selimyuksel/NetTakip/internal/service"
	"gorm.io/gorm"
)

// in-memory MistakeRepository
type fakeMistakeRepo struct {
	mistakes map[uuid.UUID]*model.MistakeRecord
}

func newFakeMistakeRepo() *fakeMistakeRepo {
	return &fakeMistakeRepo{mistakes: make(map[uuid.UUID]*model.MistakeRecord)}
}

func (f *fakeMistakeRepo) Create(m *model.MistakeRecord) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = model.MistakeOpen
	}
	m.CreatedAt = time.Now()
	copy := *m
	f.mistakes[m.ID] = &copy
	return nil
}

func (f *fakeMistakeRepo) FindByID(id uuid.UUID) (*model.MistakeRecord, error) {
	m, ok := f.mistakes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *m
	return &copy, nil
}

func (f *fakeMistakeRepo) FindByUser(userID string) ([]model.MistakeRecord, error) {
	var out []model.MistakeRecord
	for _, m := range f.mistakes {
		if m.UserID == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMistakeRepo) FindDue(userID string, now time.Time) ([]model.MistakeRecord, error) {
	var out []model.MistakeRecord
	for _, m := range f.mistakes {
		if m.UserID == userID && m.Status != model.MistakeArchived &&
			m.NextReviewAt != nil && !m.NextReviewAt.After(now) {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (f *fakeMistakeRepo) Update(m *model.MistakeRecord) error {
	copy := *m
	f.mistakes[m.ID] = &copy
	return nil
}

func (f *fakeMistakeRepo) Delete(id uuid.UUID) error {
	delete(f.mistakes, id)
	return nil
}

func createMistake(t *testing.T, svc service.MistakeService, userID string) *dto.MistakeResponse {
	t.Helper()
	resp, err := svc.Create(userID, dto.MistakeCreateRequest{
		Subject: "Matematik",
		Topics:  []string{"Üslü İfadeler"},
		Note:    "üs işareti ters",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	return resp
}

func TestMistakeService_CreateStartsOpen(t *testing.T) {
	svc := service.NewMistakeService(newFakeMistakeRepo())
	resp := createMistake(t, svc, "u1")

	if resp.Status != string(model.MistakeOpen) {
		t.Errorf("status = %q, want open", resp.Status)
	}
	if resp.NextReviewAt != nil {
		t.Error("new mistake should have no scheduled review")
	}
	if len(resp.Topics) != 1 || resp.Topics[0] != "Üslü İfadeler" {
		t.Errorf("topics = %v", resp.Topics)
	}
}

func TestMistakeService_ReviewSchedulesNextReview(t *testing.T) {
	svc := service.NewMistakeService(newFakeMistakeRepo())
	resp := createMistake(t, svc, "u1")

	updated, err := svc.UpdateStatus("u1", resp.ID, model.MistakeReviewed)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != string(model.MistakeReviewed) {
		t.Errorf("status = %q, want reviewed", updated.Status)
	}
	if updated.ReviewCount != 1 {
		t.Errorf("review count = %d, want 1", updated.ReviewCount)
	}
	if updated.NextReviewAt == nil {
		t.Fatal("expected a scheduled next review")
	}
	in := time.Until(*updated.NextReviewAt)
	if in < 23*time.Hour || in > 25*time.Hour {
		t.Errorf("first review scheduled %v out, want about a day", in)
	}
}

func TestMistakeService_ArchiveClearsReview(t *testing.T) {
	svc := service.NewMistakeService(newFakeMistakeRepo())
	resp := createMistake(t, svc, "u1")

	if _, err := svc.UpdateStatus("u1", resp.ID, model.MistakeReviewed); err != nil {
		t.Fatalf("review: %v", err)
	}
	archived, err := svc.UpdateStatus("u1", resp.ID, model.MistakeArchived)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if archived.NextReviewAt != nil {
		t.Error("archived mistake should have no pending review")
	}
}

func TestMistakeService_IllegalTransitionRejected(t *testing.T) {
	svc := service.NewMistakeService(newFakeMistakeRepo())
	resp := createMistake(t, svc, "u1")

	if _, err := svc.UpdateStatus("u1", resp.ID, model.MistakeArchived); err != nil {
		t.Fatalf("archive: %v", err)
	}
	_, err := svc.UpdateStatus("u1", resp.ID, model.MistakeReviewed)
	if !errors.Is(err, service.ErrInvalidTransition) {
		t.Errorf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestMistakeService_OwnerGating(t *testing.T) {
	svc := service.NewMistakeService(newFakeMistakeRepo())
	resp := createMistake(t, svc, "u1")

	if _, err := svc.UpdateStatus("intruder", resp.ID, model.MistakeReviewed); !errors.Is(err, service.ErrForbidden) {
		t.Errorf("update err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete("intruder", resp.ID); !errors.Is(err, service.ErrForbidden) {
		t.Errorf("delete err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete("u1", uuid.New()); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("missing err = %v, want ErrNotFound", err)
	}
}
