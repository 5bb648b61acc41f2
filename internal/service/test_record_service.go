package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/selimyuksel/NetTakip/internal/catalog"
	"github.com/selimyuksel/NetTakip/internal/dto"
	"github.com/selimyuksel/NetTakip/internal/model"
	"github.com/selimyuksel/NetTakip/internal/repository"
	"github.com/selimyuksel/NetTakip/internal/scoring"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TestRecordService owns the practice-test record lifecycle. Writes are
// owner-gated; counts are clamped to the subject's question count here, the
// same way the entry forms clamp them, so the aggregators never need to.
type TestRecordService interface {
	Create(userID, userEmail string, req dto.TestRecordRequest) (*dto.TestRecordResponse, error)
	Update(userID string, id uuid.UUID, req dto.TestRecordRequest) (*dto.TestRecordResponse, error)
	Delete(userID string, id uuid.UUID) error
	ListMine(userID string) ([]dto.TestRecordResponse, error)
	ListAll() ([]dto.TestRecordResponse, error)
}

type testRecordService struct {
	repo repository.TestRecordRepository
}

func NewTestRecordService(repo repository.TestRecordRepository) TestRecordService {
	return &testRecordService{repo: repo}
}

func (s *testRecordService) Create(userID, userEmail string, req dto.TestRecordRequest) (*dto.TestRecordResponse, error) {
	record := &model.TestRecord{
		UserID:    userID,
		UserEmail: userEmail,
	}
	applyTestRecordRequest(record, req)

	if err := s.repo.Create(record); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to create test record")
		return nil, fmt.Errorf("error creating test record: %w", err)
	}
	return toTestRecordResponse(record), nil
}

func (s *testRecordService) Update(userID string, id uuid.UUID, req dto.TestRecordRequest) (*dto.TestRecordResponse, error) {
	record, err := s.findOwned(userID, id)
	if err != nil {
		return nil, err
	}

	applyTestRecordRequest(record, req)
	if err := s.repo.Update(record); err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to update test record")
		return nil, fmt.Errorf("error updating test record: %w", err)
	}
	return toTestRecordResponse(record), nil
}

func (s *testRecordService) Delete(userID string, id uuid.UUID) error {
	if _, err := s.findOwned(userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to delete test record")
		return fmt.Errorf("error deleting test record: %w", err)
	}
	return nil
}

func (s *testRecordService) ListMine(userID string) ([]dto.TestRecordResponse, error) {
	records, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching test records: %w", err)
	}
	return toTestRecordResponses(records), nil
}

func (s *testRecordService) ListAll() ([]dto.TestRecordResponse, error) {
	records, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("error fetching school-wide test records: %w", err)
	}
	return toTestRecordResponses(records), nil
}

func (s *testRecordService) findOwned(userID string, id uuid.UUID) (*model.TestRecord, error) {
	record, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching test record: %w", err)
	}
	if record.UserID != userID {
		return nil, ErrForbidden
	}
	return record, nil
}

// applyTestRecordRequest is a full-field overwrite of the five scoring
// fields and the topic list. A missing blank count defaults to 0; all
// counts clamp to [0, subject max].
func applyTestRecordRequest(record *model.TestRecord, req dto.TestRecordRequest) {
	max := catalog.MaxFor(req.Subject)
	blank := 0
	if req.Blank != nil {
		blank = *req.Blank
	}

	record.Subject = req.Subject
	record.Correct = clampCount(req.Correct, max)
	record.Wrong = clampCount(req.Wrong, max)
	record.Blank = clampCount(blank, max)
	record.Topics = marshalTopics(req.Topics)
}

func clampCount(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

func marshalTopics(topics []string) datatypes.JSON {
	if len(topics) == 0 {
		return nil
	}
	raw, err := json.Marshal(topics)
	if err != nil {
		return nil
	}
	return datatypes.JSON(raw)
}

func unmarshalTopics(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var topics []string
	if err := json.Unmarshal(raw, &topics); err != nil {
		return nil
	}
	return topics
}

func toTestRecordResponse(record *model.TestRecord) *dto.TestRecordResponse {
	score := scoring.Calculate(record.Correct, record.Wrong, record.Blank, scoring.PracticePenalty)
	return &dto.TestRecordResponse{
		ID:          record.ID,
		UserID:      record.UserID,
		UserEmail:   record.UserEmail,
		Subject:     record.Subject,
		Correct:     record.Correct,
		Wrong:       record.Wrong,
		Blank:       record.Blank,
		Total:       score.Total,
		Net:         score.Net,
		SuccessRate: score.SuccessRate,
		Topics:      unmarshalTopics(record.Topics),
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func toTestRecordResponses(records []model.TestRecord) []dto.TestRecordResponse {
	responses := make([]dto.TestRecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, *toTestRecordResponse(&records[i]))
	}
	return responses
}
