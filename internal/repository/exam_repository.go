package repository

import (
	"github.com/google/uuid"
	"github.com/selimyuksel/NetTakip/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	Create(exam *model.ExamRecord) error
	FindByID(id uuid.UUID) (*model.ExamRecord, error)
	FindByUser(userID string) ([]model.ExamRecord, error)
	Update(exam *model.ExamRecord) error
	Delete(id uuid.UUID) error
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) Create(exam *model.ExamRecord) error {
	return r.db.Create(exam).Error
}

func (r *examRepository) FindByID(id uuid.UUID) (*model.ExamRecord, error) {
	var exam model.ExamRecord
	if err := r.db.First(&exam, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &exam, nil
}

func (r *examRepository) FindByUser(userID string) ([]model.ExamRecord, error) {
	var exams []model.ExamRecord
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&exams).Error
	return exams, err
}

func (r *examRepository) Update(exam *model.ExamRecord) error {
	return r.db.Save(exam).Error
}

func (r *examRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.ExamRecord{}, "id = ?", id).Error
}
