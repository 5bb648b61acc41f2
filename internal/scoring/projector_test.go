package scoring_test

import (
	"testing"

	"github.com/selimyuksel/NetTakip/internal/scoring"
)

func TestProject(t *testing.T) {
	tests := []struct {
		name            string
		meanRate        float64
		target          float64
		wantCurrent     float64
		wantRemaining   float64
		wantProbability int
	}{
		{"halfway there", 48, 480, 240, 240, 50},
		{"past the target clamps to 100", 100, 480, 500, 0, 100},
		{"nothing yet", 0, 480, 0, 480, 0},
		{"exactly on target", 96, 480, 480, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := scoring.Project(tt.meanRate, tt.target, 500)

			if p.Current != tt.wantCurrent {
				t.Errorf("current = %v, want %v", p.Current, tt.wantCurrent)
			}
			if p.Remaining != tt.wantRemaining {
				t.Errorf("remaining = %v, want %v", p.Remaining, tt.wantRemaining)
			}
			if p.Probability != tt.wantProbability {
				t.Errorf("probability = %d, want %d", p.Probability, tt.wantProbability)
			}
		})
	}
}

func TestProject_ZeroTargetDoesNotDivide(t *testing.T) {
	p := scoring.Project(50, 0, 500)
	if p.Probability != 0 {
		t.Errorf("probability = %d, want 0 for zero target", p.Probability)
	}
}
