package repository

import (
	"github.com/google/uuid"
	"github.com/selimyuksel/NetTakip/internal/model"
	"gorm.io/gorm"
)

// TestRecordRepository reads and writes practice-test records. List methods
// return full newest-first snapshots; every analytics read recomputes from
// one of these snapshots, nothing derived is stored.
type TestRecordRepository interface {
	Create(record *model.TestRecord) error
	FindByID(id uuid.UUID) (*model.TestRecord, error)
	FindByUser(userID string) ([]model.TestRecord, error)
	FindAll() ([]model.TestRecord, error)
	Update(record *model.TestRecord) error
	Delete(id uuid.UUID) error
}

type testRecordRepository struct {
	db *gorm.DB
}

func NewTestRecordRepository(db *gorm.DB) TestRecordRepository {
	return &testRecordRepository{db: db}
}

func (r *testRecordRepository) Create(record *model.TestRecord) error {
	return r.db.Create(record).Error
}

func (r *testRecordRepository) FindByID(id uuid.UUID) (*model.TestRecord, error) {
	var record model.TestRecord
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *testRecordRepository) FindByUser(userID string) ([]model.TestRecord, error) {
	var records []model.TestRecord
	err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *testRecordRepository) FindAll() ([]model.TestRecord, error) {
	var records []model.TestRecord
	err := r.db.Order("created_at DESC").Find(&records).Error
	return records, err
}

func (r *testRecordRepository) Update(record *model.TestRecord) error {
	return r.db.Save(record).Error
}

func (r *testRecordRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.TestRecord{}, "id = ?", id).Error
}
