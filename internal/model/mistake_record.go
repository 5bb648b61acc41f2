package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MistakeStatus is the review state of a logged mistake. Transitions are
// forward-only: open → reviewed → archived, with open → archived allowed as
// a shortcut. Nothing moves a mistake backward.
type MistakeStatus string

const (
	MistakeOpen     MistakeStatus = "open"
	MistakeReviewed MistakeStatus = "reviewed"
	MistakeArchived MistakeStatus = "archived"
)

var mistakeTransitions = map[MistakeStatus][]MistakeStatus{
	MistakeOpen:     {MistakeReviewed, MistakeArchived},
	MistakeReviewed: {MistakeArchived},
	MistakeArchived: {},
}

// Valid reports whether s is a known status value.
func (s MistakeStatus) Valid() bool {
	_, ok := mistakeTransitions[s]
	return ok
}

// CanTransition reports whether the state machine allows moving to the
// given status.
func (s MistakeStatus) CanTransition(to MistakeStatus) bool {
	for _, next := range mistakeTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// MistakeRecord is one question a student got wrong and wants to revisit.
// Topics holds at most one label today; it stays list-shaped so more labels
// can be attached later without a migration.
type MistakeRecord struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       string         `gorm:"not null;index" json:"user_id"`
	TestRecordID *uuid.UUID     `gorm:"type:uuid;index" json:"test_record_id,omitempty"`
	Subject      string         `gorm:"not null;index" json:"subject"`
	Topics       datatypes.JSON `json:"topics,omitempty"`
	Note         string         `gorm:"size:500" json:"note"`
	ImageURL     *string        `json:"image_url,omitempty"`
	Status       MistakeStatus  `gorm:"not null;default:'open'" json:"status"`
	ReviewCount  int            `gorm:"not null;default:0" json:"review_count"`
	NextReviewAt *time.Time     `json:"next_review_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

func (m *MistakeRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Status == "" {
		m.Status = MistakeOpen
	}
	return nil
}
