package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/selimyuksel/NetTakip/internal/catalog"
	"gorm.io/gorm"
)

// BranchScore is one subject branch of a mock exam.
type BranchScore struct {
	Correct int `gorm:"not null" json:"correct"`
	Wrong   int `gorm:"not null" json:"wrong"`
	Blank   int `gorm:"not null" json:"blank"`
}

// ExamRecord is one full LGS mock exam with the six fixed branches. Branch
// triples are bounded by the subject question counts (20/20/20/10/10/10),
// enforced at the entry boundary.
type ExamRecord struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    string      `gorm:"not null;index" json:"user_id"`
	Name      string      `json:"name,omitempty"` // exam name or publisher
	Turkish   BranchScore `gorm:"embedded;embeddedPrefix:turkish_" json:"turkish"`
	Math      BranchScore `gorm:"embedded;embeddedPrefix:math_" json:"math"`
	Science   BranchScore `gorm:"embedded;embeddedPrefix:science_" json:"science"`
	History   BranchScore `gorm:"embedded;embeddedPrefix:history_" json:"history"`
	Religion  BranchScore `gorm:"embedded;embeddedPrefix:religion_" json:"religion"`
	Foreign   BranchScore `gorm:"embedded;embeddedPrefix:foreign_" json:"foreign"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (e *ExamRecord) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// Branches returns the six branch triples in exam-sheet order, keyed by
// canonical subject name.
func (e *ExamRecord) Branches() []struct {
	Subject string
	Score   BranchScore
} {
	return []struct {
		Subject string
		Score   BranchScore
	}{
		{catalog.SubjectTurkish, e.Turkish},
		{catalog.SubjectMath, e.Math},
		{catalog.SubjectScience, e.Science},
		{catalog.SubjectHistory, e.History},
		{catalog.SubjectReligion, e.Religion},
		{catalog.SubjectForeign, e.Foreign},
	}
}

// Totals pools the six branches into one exam-wide triple.
func (e *ExamRecord) Totals() BranchScore {
	var t BranchScore
	for _, b := range e.Branches() {
		t.Correct += b.Score.Correct
		t.Wrong += b.Score.Wrong
		t.Blank += b.Score.Blank
	}
	return t
}
