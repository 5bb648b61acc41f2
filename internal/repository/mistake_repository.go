package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/selimyuksel/NetTakip/internal/model"
	"gorm.io/gorm"
)

type MistakeRepository interface {
	Create(mistake *model.MistakeRecord) error
	FindByID(id uuid.UUID) (*model.MistakeRecord, error)
	FindByUser(userID string) ([]model.MistakeRecord, error)
	FindDue(userID string, now time.Time) ([]model.MistakeRecord, error)
	Update(mistake *model.MistakeRecord) error
	Delete(id uuid.UUID) error
}

type mistakeRepository struct {
	db *gorm.DB
}

func NewMistakeRepository(db *gorm.DB) MistakeRepository {
	return &mistakeRepository{db: db}
}

func (r *mistakeRepository) Create(mistake *model.MistakeRecord) error {
	return r.db.Create(mistake).Error
}

func (r *mistakeRepository) FindByID(id uuid.UUID) (*model.MistakeRecord, error) {
	var mistake model.MistakeRecord
	if err := r.db.First(&mistake, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &mistake, nil
}

func (r *mistakeRepository) FindByUser(userID string) ([]model.MistakeRecord, error) {
	var mistakes []model.MistakeRecord
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&mistakes).Error
	return mistakes, err
}

// FindDue returns non-archived mistakes whose next review time has passed.
func (r *mistakeRepository) FindDue(userID string, now time.Time) ([]model.MistakeRecord, error) {
	var mistakes []model.MistakeRecord
	err := r.db.
		Where("user_id = ? AND status <> ? AND next_review_at IS NOT NULL AND next_review_at <= ?",
			userID, model.MistakeArchived, now).
		Order("next_review_at ASC").
		Find(&mistakes).Error
	return mistakes, err
}

func (r *mistakeRepository) Update(mistake *model.MistakeRecord) error {
	return r.db.Save(mistake).Error
}

func (r *mistakeRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.MistakeRecord{}, "id = ?", id).Error
}
