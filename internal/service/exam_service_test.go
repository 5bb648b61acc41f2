package service_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/selimyuksel/NetTakip/internal/dto"
	"github.com/selimyuksel/NetTakip/internal/model"
	"github.com/selimyuksel/NetTakip/internal/service"
	"gorm.io/gorm"
)

// mutable in-memory ExamRepository
type fakeExamStore struct {
	exams map[uuid.UUID]*model.ExamRecord
}

func newFakeExamStore() *fakeExamStore {
	return &fakeExamStore{exams: make(map[uuid.UUID]*model.ExamRecord)}
}

func (f *fakeExamStore) Create(e *model.ExamRecord) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	e.CreatedAt = time.Now()
	copy := *e
	f.exams[e.ID] = &copy
	return nil
}

func (f *fakeExamStore) FindByID(id uuid.UUID) (*model.ExamRecord, error) {
	e, ok := f.exams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := *e
	return &copy, nil
}

func (f *fakeExamStore) FindByUser(userID string) ([]model.ExamRecord, error) {
	var out []model.ExamRecord
	for _, e := range f.exams {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeExamStore) Update(e *model.ExamRecord) error {
	copy := *e
	f.exams[e.ID] = &copy
	return nil
}

func (f *fakeExamStore) Delete(id uuid.UUID) error {
	delete(f.exams, id)
	return nil
}

func validExamRequest() dto.ExamRecordRequest {
	return dto.ExamRecordRequest{
		Name:     "Okul Geneli Deneme 1",
		Turkish:  dto.BranchScoreRequest{Correct: 15, Wrong: 3, Blank: 2},
		Math:     dto.BranchScoreRequest{Correct: 12, Wrong: 6, Blank: 2},
		Science:  dto.BranchScoreRequest{Correct: 18, Wrong: 2, Blank: 0},
		History:  dto.BranchScoreRequest{Correct: 8, Wrong: 1, Blank: 1},
		Religion: dto.BranchScoreRequest{Correct: 9, Wrong: 0, Blank: 1},
		Foreign:  dto.BranchScoreRequest{Correct: 7, Wrong: 2, Blank: 1},
	}
}

func TestExamService_CreateDerivesBranchScores(t *testing.T) {
	svc := service.NewExamService(newFakeExamStore())

	resp, err := svc.Create("u1", validExamRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Turkish: net = 15 - 3/3 = 14, rate = 14/20 = 70%
	if resp.Turkish.Net != 14 || resp.Turkish.SuccessRate != 70 {
		t.Errorf("turkish = %+v, want net 14 rate 70", resp.Turkish)
	}
	// overall: 69 correct, 14 wrong -> net 64.33...
	if resp.TotalNet < 64.3 || resp.TotalNet > 64.4 {
		t.Errorf("total net = %v, want about 64.33", resp.TotalNet)
	}
}

func TestExamService_BranchOverflowRejected(t *testing.T) {
	svc := service.NewExamService(newFakeExamStore())

	req := validExamRequest()
	req.Religion = dto.BranchScoreRequest{Correct: 8, Wrong: 2, Blank: 2} // 12 > 10
	_, err := svc.Create("u1", req)
	if err == nil {
		t.Fatal("expected validation error for overflowing branch")
	}
	if !strings.Contains(err.Error(), "Din Kültürü") {
		t.Errorf("err = %v, want the offending branch named", err)
	}
}

func TestExamService_DeleteIsOwnerScoped(t *testing.T) {
	svc := service.NewExamService(newFakeExamStore())

	resp, err := svc.Create("u1", validExamRequest())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete("intruder", resp.ID); !errors.Is(err, service.ErrForbidden) {
		t.Errorf("err = %v, want ErrForbidden", err)
	}
	if err := svc.Delete("u1", resp.ID); err != nil {
		t.Errorf("owner delete err = %v", err)
	}
}
