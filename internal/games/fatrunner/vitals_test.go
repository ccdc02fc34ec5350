package fatrunner

import (
	"testing"

	"github.com/vovakirdan/fat-runner/internal/config"
)

func newTestVitals() Vitals {
	cfg := config.DefaultFatRunnerConfig()
	return NewVitals(cfg, config.NewDifficultyManager(cfg.Difficulty))
}

func TestVitalsInitial(t *testing.T) {
	v := newTestVitals()
	if v.Health != 30 || v.Max != 100 || v.Score != 0 || v.Difficulty != 1.0 {
		t.Errorf("initial vitals = %+v", v)
	}
}

func TestDecayStopsAtZero(t *testing.T) {
	v := newTestVitals()
	v.Health = 0.05
	v.Decay()
	if v.Health != 0 {
		t.Errorf("health = %v, want 0", v.Health)
	}
	v.Decay()
	if v.Health != 0 {
		t.Errorf("health = %v after second decay, want 0", v.Health)
	}
}

func TestHealClampsAtMax(t *testing.T) {
	tests := []struct {
		name   string
		health float64
		heal   float64
		want   float64
		full   bool
	}{
		{"coxinha from start", 30, 20, 50, false},
		{"exactly max", 75, 25, 100, true},
		{"overflow clamps", 90, 25, 100, true},
		{"just short", 89, 10, 99, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestVitals()
			v.Health = tt.health
			full := v.Heal(tt.heal)
			if v.Health != tt.want {
				t.Errorf("health = %v, want %v", v.Health, tt.want)
			}
			if full != tt.full {
				t.Errorf("full = %v, want %v", full, tt.full)
			}
		})
	}
}

func TestBookkeepScoresEveryTenTicks(t *testing.T) {
	v := newTestVitals()
	scored := 0
	for tick := 1; tick <= 35; tick++ {
		if v.Bookkeep(tick) {
			scored++
		}
	}
	if v.Score != 3 || scored != 3 {
		t.Errorf("score = %d (changes %d), want 3", v.Score, scored)
	}
}
