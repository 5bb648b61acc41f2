package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/selimyuksel/NetTakip/internal/dto"
	"github.com/selimyuksel/NetTakip/internal/model"
	"github.com/selimyuksel/NetTakip/internal/repository"
	"gorm.io/gorm"
)

// reviewIntervals is the spacing ladder for repeat reviews: the first
// review comes back after a day, then three, then seven for every review
// after that.
var reviewIntervals = []time.Duration{
	24 * time.Hour,
	3 * 24 * time.Hour,
	7 * 24 * time.Hour,
}

// MistakeService owns the mistake-notebook lifecycle: logging mistakes,
// walking them through the forward-only review state machine and surfacing
// the ones due for another look.
type MistakeService interface {
	Create(userID string, req dto.MistakeCreateRequest) (*dto.MistakeResponse, error)
	ListMine(userID string) ([]dto.MistakeResponse, error)
	ListDue(userID string, now time.Time) ([]dto.MistakeResponse, error)
	UpdateStatus(userID string, id uuid.UUID, status model.MistakeStatus) (*dto.MistakeResponse, error)
	Delete(userID string, id uuid.UUID) error
}

type mistakeService struct {
	repo repository.MistakeRepository
}

func NewMistakeService(repo repository.MistakeRepository) MistakeService {
	return &mistakeService{repo: repo}
}

func (s *mistakeService) Create(userID string, req dto.MistakeCreateRequest) (*dto.MistakeResponse, error) {
	mistake := &model.MistakeRecord{
		UserID:       userID,
		TestRecordID: req.TestRecordID,
		Subject:      req.Subject,
		Topics:       marshalTopics(req.Topics),
		Note:         req.Note,
		ImageURL:     req.ImageURL,
		Status:       model.MistakeOpen,
	}

	if err := s.repo.Create(mistake); err != nil {
		log.Error().Err(err).Str("userID", userID).Msg("Failed to create mistake record")
		return nil, fmt.Errorf("error creating mistake: %w", err)
	}
	return toMistakeResponse(mistake), nil
}

func (s *mistakeService) ListMine(userID string) ([]dto.MistakeResponse, error) {
	mistakes, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("error fetching mistakes: %w", err)
	}
	return toMistakeResponses(mistakes), nil
}

func (s *mistakeService) ListDue(userID string, now time.Time) ([]dto.MistakeResponse, error) {
	mistakes, err := s.repo.FindDue(userID, now)
	if err != nil {
		return nil, fmt.Errorf("error fetching due mistakes: %w", err)
	}
	return toMistakeResponses(mistakes), nil
}

// UpdateStatus moves a mistake forward through open → reviewed → archived.
// Marking reviewed bumps the review count and schedules the next review on
// the interval ladder; archiving clears any pending review.
func (s *mistakeService) UpdateStatus(userID string, id uuid.UUID, status model.MistakeStatus) (*dto.MistakeResponse, error) {
	mistake, err := s.findOwned(userID, id)
	if err != nil {
		return nil, err
	}

	if !mistake.Status.CanTransition(status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, mistake.Status, status)
	}

	mistake.Status = status
	switch status {
	case model.MistakeReviewed:
		interval := reviewIntervals[len(reviewIntervals)-1]
		if mistake.ReviewCount < len(reviewIntervals) {
			interval = reviewIntervals[mistake.ReviewCount]
		}
		next := time.Now().Add(interval)
		mistake.ReviewCount++
		mistake.NextReviewAt = &next
	case model.MistakeArchived:
		mistake.NextReviewAt = nil
	}

	if err := s.repo.Update(mistake); err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to update mistake status")
		return nil, fmt.Errorf("error updating mistake: %w", err)
	}
	return toMistakeResponse(mistake), nil
}

func (s *mistakeService) Delete(userID string, id uuid.UUID) error {
	if _, err := s.findOwned(userID, id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		log.Error().Err(err).Str("id", id.String()).Msg("Failed to delete mistake")
		return fmt.Errorf("error deleting mistake: %w", err)
	}
	return nil
}

func (s *mistakeService) findOwned(userID string, id uuid.UUID) (*model.MistakeRecord, error) {
	mistake, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching mistake: %w", err)
	}
	if mistake.UserID != userID {
		return nil, ErrForbidden
	}
	return mistake, nil
}

func toMistakeResponse(mistake *model.MistakeRecord) *dto.MistakeResponse {
	return &dto.MistakeResponse{
		ID:           mistake.ID,
		UserID:       mistake.UserID,
		TestRecordID: mistake.TestRecordID,
		Subject:      mistake.Subject,
		Topics:       unmarshalTopics(mistake.Topics),
		Note:         mistake.Note,
		ImageURL:     mistake.ImageURL,
		Status:       string(mistake.Status),
		ReviewCount:  mistake.ReviewCount,
		NextReviewAt: mistake.NextReviewAt,
		CreatedAt:    mistake.CreatedAt,
	}
}

func toMistakeResponses(mistakes []model.MistakeRecord) []dto.MistakeResponse {
	responses := make([]dto.MistakeResponse, 0, len(mistakes))
	for i := range mistakes {
		responses = append(responses, *toMistakeResponse(&mistakes[i]))
	}
	return responses
}
