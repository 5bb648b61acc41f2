package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/selimyuksel/NetTakip/internal/catalog"
	"github.com/selimyuksel/NetTakip/internal/dto"
	"github.com/selimyuksel/NetTakip/internal/model"
	"github.com/selimyuksel/NetTakip/internal/repository"
	"github.com/selimyuksel/NetTakip/internal/scoring"
	"gorm.io/gorm"
)

// ExamService owns the mock-exam record lifecycle. All writes are
// owner-gated, including delete. Branch triples are validated against the
// fixed per-branch question counts before anything is stored.
type ExamService interface {
	Create(userID string, req dto.ExamRecordRequest) (*dto.ExamRecordResponse, error)
	Update(userID string, id uuid.UUID, req dto.ExamRecordRequest) (*dto.ExamRecordResponse, error)
	Delete(userID string, id uuid.UUID) error
	ListMine(userID string) ([]dto.ExamRecordResponse, error)
}

type examService struct {
	repo repository.ExamRepository
}

func NewExamService(repo repository.ExamRepository) ExamService {
	return &examService{repo: repo}
}

func (s *examService) Create(userID string, req dto.ExamRecordRequest) (*dto.ExamRecordResponse, error) {
	if err := validateExamRequest(req); err != nil {
		return nil, err
	}

	exam := &model.ExamRecord{UserID: userID}
	applyExamRequest(exam, req)

	if err := s.repo.Create(exam); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to create exam record")
		return nil, fmt.Errorf("error creating exam record: %w", err)
	}
	return toExamResponse(exam), nil
}

func (s *examService) Update(userID string, id uuid.UUID, req dto.ExamRecordRequest) (*dto.ExamRecordResponse, error) {
	if err := validateExamRequest(req); err != nil {
		return nil, err
	}

	exam, err := s.findOwned(userID, id)
	if err != nil {
		return nil, err
	}

	applyExamRequest(exam, req)
	if err := s.repo.Update(exam); err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to update exam record")
		return nil, fmt.Errorf("error updating exam record: %w", err)
	}
	return toExamResponse(exam), nil
}

func (s *examService) Delete(userID string, id uuid.UUID) error {
	if _, err := s.findOwned(userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to delete exam record")
		return fmt.Errorf("error deleting exam record: %w", err)
	}
	return nil
}

func (s *examService) ListMine(userID string) ([]dto.ExamRecordResponse, error) {
	exams, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching exam records: %w", err)
	}
	responses := make([]dto.ExamRecordResponse, 0, len(exams))
	for i := range exams {
		responses = append(responses, *toExamResponse(&exams[i]))
	}
	return responses, nil
}

func (s *examService) findOwned(userID string, id uuid.UUID) (*model.ExamRecord, error) {
	exam, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching exam record: %w", err)
	}
	if exam.UserID != userID {
		return nil, ErrForbidden
	}
	return exam, nil
}

func validateExamRequest(req dto.ExamRecordRequest) error {
	branches := []struct {
		subject string
		score   dto.BranchScoreRequest
	}{
		{catalog.SubjectTurkish, req.Turkish},
		{catalog.SubjectMath, req.Math},
		{catalog.SubjectScience, req.Science},
		{catalog.SubjectHistory, req.History},
		{catalog.SubjectReligion, req.Religion},
		{catalog.SubjectForeign, req.Foreign},
	}
	for _, b := range branches {
		max := catalog.MaxFor(b.subject)
		if b.score.Correct+b.score.Wrong+b.score.Blank > max {
			return fmt.Errorf("%s: counts exceed %d questions", b.subject, max)
		}
	}
	return nil
}

func applyExamRequest(exam *model.ExamRecord, req dto.ExamRecordRequest) {
	exam.Name = req.Name
	exam.Turkish = toBranchScore(req.Turkish)
	exam.Math = toBranchScore(req.Math)
	exam.Science = toBranchScore(req.Science)
	exam.History = toBranchScore(req.History)
	exam.Religion = toBranchScore(req.Religion)
	exam.Foreign = toBranchScore(req.Foreign)
}

func toBranchScore(req dto.BranchScoreRequest) model.BranchScore {
	return model.BranchScore{Correct: req.Correct, Wrong: req.Wrong, Blank: req.Blank}
}

func toBranchResponse(b model.BranchScore) dto.BranchScoreResponse {
	score := scoring.Calculate(b.Correct, b.Wrong, b.Blank, scoring.ExamPenalty)
	return dto.BranchScoreResponse{
		Correct:     b.Correct,
		Wrong:       b.Wrong,
		Blank:       b.Blank,
		Net:         score.Net,
		SuccessRate: score.SuccessRate,
	}
}

func toExamResponse(exam *model.ExamRecord) *dto.ExamRecordResponse {
	totals := exam.Totals()
	overall := scoring.Calculate(totals.Correct, totals.Wrong, totals.Blank, scoring.ExamPenalty)

	return &dto.ExamRecordResponse{
		ID:          exam.ID,
		UserID:      exam.UserID,
		Name:        exam.Name,
		Turkish:     toBranchResponse(exam.Turkish),
		Math:        toBranchResponse(exam.Math),
		Science:     toBranchResponse(exam.Science),
		History:     toBranchResponse(exam.History),
		Religion:    toBranchResponse(exam.Religion),
		Foreign:     toBranchResponse(exam.Foreign),
		TotalNet:    overall.Net,
		SuccessRate: overall.SuccessRate,
		CreatedAt:   exam.CreatedAt,
	}
}
