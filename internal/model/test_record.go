package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TestRecord is one practice-test sitting: a (correct, wrong, blank) triple
// for a single subject, owned by the student who logged it. Counts are
// clamped to the subject's question count at the entry boundary, not here.
// Deletion is hard; there is no soft-delete for records.
type TestRecord struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string         `gorm:"not null;index" json:"user_id"`
	UserEmail string         `gorm:"not null" json:"user_email"`
	Subject   string         `gorm:"not null;index" json:"subject"`
	Correct   int            `gorm:"not null" json:"correct"`
	Wrong     int            `gorm:"not null" json:"wrong"`
	Blank     int            `gorm:"not null" json:"blank"`
	Topics    datatypes.JSON `json:"topics,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (r *TestRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
