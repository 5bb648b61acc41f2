package catalog_test

import (
	"testing"

	"github.com/selimyuksel/NetTakip/internal/catalog"
)

func TestSubjects_FixedSixBranches(t *testing.T) {
	subjects := catalog.Subjects()
	if len(subjects) != 6 {
		t.Fatalf("got %d subjects, want 6", len(subjects))
	}

	wantMax := map[string]int{
		catalog.SubjectTurkish:  20,
		catalog.SubjectMath:     20,
		catalog.SubjectScience:  20,
		catalog.SubjectHistory:  10,
		catalog.SubjectReligion: 10,
		catalog.SubjectForeign:  10,
	}
	for _, s := range subjects {
		if want, ok := wantMax[s.Name]; !ok {
			t.Errorf("unexpected subject %q", s.Name)
		} else if s.MaxQuestions != want {
			t.Errorf("%s max = %d, want %d", s.Name, s.MaxQuestions, want)
		}
		if len(s.Topics) == 0 {
			t.Errorf("%s has no topics", s.Name)
		}
	}
}

func TestMaxFor_UnknownSubjectFallsBack(t *testing.T) {
	if got := catalog.MaxFor("Deneme Genel"); got != catalog.DefaultMaxQuestions {
		t.Errorf("max = %d, want default %d", got, catalog.DefaultMaxQuestions)
	}
}

func TestTopicsFor(t *testing.T) {
	if topics := catalog.TopicsFor(catalog.SubjectMath); len(topics) == 0 {
		t.Error("expected math topics")
	}
	if topics := catalog.TopicsFor("bilinmeyen"); topics != nil {
		t.Errorf("expected nil topics for unknown subject, got %v", topics)
	}
}
