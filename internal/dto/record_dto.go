package dto

import (
	"time"

	"github.com/google/uuid"
)

// TestRecordRequest creates or fully overwrites a practice-test record.
// Blank is a pointer so an absent field defaults to 0 instead of being
// rejected; counts are additionally clamped to the subject's question count
// at the service boundary, mirroring the entry forms.
type TestRecordRequest struct {
	Subject string   `json:"subject" binding:"required"`
	Correct int      `json:"correct" binding:"gte=0"`
	Wrong   int      `json:"wrong" binding:"gte=0"`
	Blank   *int     `json:"blank" binding:"omitempty,gte=0"`
	Topics  []string `json:"topics" binding:"omitempty,max=10,dive,required"`
}

// TestRecordResponse is a stored record plus its derived score values.
type TestRecordResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	UserEmail   string    `json:"user_email"`
	Subject     string    `json:"subject"`
	Correct     int       `json:"correct"`
	Wrong       int       `json:"wrong"`
	Blank       int       `json:"blank"`
	Total       int       `json:"total"`
	Net         float64   `json:"net"`
	SuccessRate int       `json:"success_rate"`
	Topics      []string  `json:"topics,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// MistakeCreateRequest logs a new mistake. Topics carries at most one label
// for now; the list shape is kept for forward compatibility.
type MistakeCreateRequest struct {
	TestRecordID *uuid.UUID `json:"test_record_id"`
	Subject      string     `json:"subject" binding:"required"`
	Topics       []string   `json:"topics" binding:"omitempty,max=1,dive,required"`
	Note         string     `json:"note" binding:"max=500"`
	ImageURL     *string    `json:"image_url" binding:"omitempty,url"`
}

// MistakeStatusRequest moves a mistake through the review state machine.
// "open" is never a legal target, so it is excluded at the binding level.
type MistakeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=reviewed archived"`
}

type MistakeResponse struct {
	ID           uuid.UUID  `json:"id"`
	UserID       string     `json:"user_id"`
	TestRecordID *uuid.UUID `json:"test_record_id,omitempty"`
	Subject      string     `json:"subject"`
	Topics       []string   `json:"topics,omitempty"`
	Note         string     `json:"note"`
	ImageURL     *string    `json:"image_url,omitempty"`
	Status       string     `json:"status"`
	ReviewCount  int        `json:"review_count"`
	NextReviewAt *time.Time `json:"next_review_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// BranchScoreRequest is one subject branch of a mock-exam submission. Upper
// bounds differ per branch (20/20/20/10/10/10) and are validated against the
// subject catalog in the service.
type BranchScoreRequest struct {
	Correct int `json:"correct" binding:"gte=0"`
	Wrong   int `json:"wrong" binding:"gte=0"`
	Blank   int `json:"blank" binding:"gte=0"`
}

// ExamRecordRequest creates or fully overwrites a mock-exam record.
type ExamRecordRequest struct {
	Name     string             `json:"name"`
	Turkish  BranchScoreRequest `json:"turkish"`
	Math     BranchScoreRequest `json:"math"`
	Science  BranchScoreRequest `json:"science"`
	History  BranchScoreRequest `json:"history"`
	Religion BranchScoreRequest `json:"religion"`
	Foreign  BranchScoreRequest `json:"foreign"`
}

// BranchScoreResponse is a branch triple with its derived exam-penalty score.
type BranchScoreResponse struct {
	Correct     int     `json:"correct"`
	Wrong       int     `json:"wrong"`
	Blank       int     `json:"blank"`
	Net         float64 `json:"net"`
	SuccessRate int     `json:"success_rate"`
}

type ExamRecordResponse struct {
	ID          uuid.UUID           `json:"id"`
	UserID      string              `json:"user_id"`
	Name        string              `json:"name,omitempty"`
	Turkish     BranchScoreResponse `json:"turkish"`
	Math        BranchScoreResponse `json:"math"`
	Science     BranchScoreResponse `json:"science"`
	History     BranchScoreResponse `json:"history"`
	Religion    BranchScoreResponse `json:"religion"`
	Foreign     BranchScoreResponse `json:"foreign"`
	TotalNet    float64             `json:"total_net"`
	SuccessRate int                 `json:"success_rate"`
	CreatedAt   time.Time           `json:"created_at"`
}
