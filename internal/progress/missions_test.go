package progress

import (
	"testing"

	"github.com/vovakirdan/neon-drone/internal/profile"
)

func TestEvaluateGrantsRewards(t *testing.T) {
	tests := []struct {
		name      string
		stats     SessionStats
		completed []string
		reward    int
	}{
		{"nothing", SessionStats{}, nil, 0},
		{"score10", SessionStats{Score: 10}, []string{"score10"}, 20},
		{"score50 implies score10", SessionStats{Score: 50}, []string{"score10", "score50"}, 120},
		{"collect5", SessionStats{BitsCollected: 5}, []string{"collect5"}, 15},
		{"shield", SessionStats{ShieldsUsed: 1, PowerUpsUsed: 1}, []string{"useShield"}, 10},
		{"slow-mo is not a shield", SessionStats{PowerUpsUsed: 3}, nil, 0},
		{"everything", SessionStats{Score: 60, BitsCollected: 9, ShieldsUsed: 2}, []string{"score10", "score50", "collect5", "useShield"}, 145},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := profile.Default()
			got := Evaluate(&p, tc.stats)

			if len(got) != len(tc.completed) {
				t.Fatalf("Evaluate() completed %d missions, expected %d", len(got), len(tc.completed))
			}
			for i, m := range got {
				if m.ID != tc.completed[i] {
					t.Errorf("completed[%d] = %s, expected %s", i, m.ID, tc.completed[i])
				}
				if !p.Missions[m.ID] {
					t.Errorf("mission %s should be marked completed", m.ID)
				}
			}
			if p.DataBits != tc.reward {
				t.Errorf("DataBits = %d, expected %d", p.DataBits, tc.reward)
			}
		})
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	p := profile.Default()
	stats := SessionStats{Score: 12, BitsCollected: 5}

	first := Evaluate(&p, stats)
	balance := p.DataBits
	second := Evaluate(&p, stats)

	if len(first) != 2 {
		t.Fatalf("first Evaluate() completed %d missions, expected 2", len(first))
	}
	if len(second) != 0 {
		t.Errorf("second Evaluate() completed %d missions, expected 0", len(second))
	}
	if p.DataBits != balance {
		t.Errorf("reward granted twice: balance %d -> %d", balance, p.DataBits)
	}
}

func TestEvaluateSkipsPreviouslyCompleted(t *testing.T) {
	p := profile.Default()
	p.Missions["score10"] = true

	got := Evaluate(&p, SessionStats{Score: 15})
	if len(got) != 0 || p.DataBits != 0 {
		t.Errorf("completed mission was re-evaluated: %v, balance %d", got, p.DataBits)
	}
}

func TestEvaluateNilMissionMap(t *testing.T) {
	p := profile.Profile{}
	got := Evaluate(&p, SessionStats{ShieldsUsed: 1})
	if len(got) != 1 || !p.Missions["useShield"] {
		t.Errorf("Evaluate() with nil map = %v, missions %v", got, p.Missions)
	}
}

func TestStatuses(t *testing.T) {
	p := profile.Default()
	p.Missions["collect5"] = true

	statuses := Statuses(p)
	if len(statuses) != len(Missions()) {
		t.Fatalf("Statuses() returned %d rows, expected %d", len(statuses), len(Missions()))
	}
	for _, s := range statuses {
		if s.Completed != (s.ID == "collect5") {
			t.Errorf("mission %s completed = %v", s.ID, s.Completed)
		}
	}

	if _, ok := Lookup("score50"); !ok {
		t.Error("Lookup(score50) should succeed")
	}
	if _, ok := Lookup("nope"); ok {
		t.Error("Lookup(nope) should fail")
	}
}
