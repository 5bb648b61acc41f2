package model_test

import (
	"testing"

	"github.com/selimyuksel/NetTakip/internal/model"
)

func TestMistakeStatus_Transitions(t *testing.T) {
	tests := []struct {
		from model.MistakeStatus
		to   model.MistakeStatus
		ok   bool
	}{
		{model.MistakeOpen, model.MistakeReviewed, true},
		{model.MistakeOpen, model.MistakeArchived, true},
		{model.MistakeReviewed, model.MistakeArchived, true},
		{model.MistakeReviewed, model.MistakeOpen, false},
		{model.MistakeArchived, model.MistakeOpen, false},
		{model.MistakeArchived, model.MistakeReviewed, false},
		{model.MistakeOpen, model.MistakeOpen, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.ok {
			t.Errorf("%s -> %s = %v, want %v", tt.from, tt.to, got, tt.ok)
		}
	}
}

func TestMistakeStatus_Valid(t *testing.T) {
	for _, s := range []model.MistakeStatus{model.MistakeOpen, model.MistakeReviewed, model.MistakeArchived} {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}
	if model.MistakeStatus("deleted").Valid() {
		t.Error("unknown status should be invalid")
	}
}

func TestExamRecord_Totals(t *testing.T) {
	exam := model.ExamRecord{
		Turkish:  model.BranchScore{Correct: 15, Wrong: 3, Blank: 2},
		Math:     model.BranchScore{Correct: 10, Wrong: 6, Blank: 4},
		Science:  model.BranchScore{Correct: 18, Wrong: 2, Blank: 0},
		History:  model.BranchScore{Correct: 8, Wrong: 1, Blank: 1},
		Religion: model.BranchScore{Correct: 9, Wrong: 0, Blank: 1},
		Foreign:  model.BranchScore{Correct: 7, Wrong: 2, Blank: 1},
	}

	total := exam.Totals()
	if total.Correct != 67 || total.Wrong != 14 || total.Blank != 9 {
		t.Errorf("totals = %+v, want 67/14/9", total)
	}
	if len(exam.Branches()) != 6 {
		t.Errorf("branches = %d, want 6", len(exam.Branches()))
	}
}
