package eco

import (
	"testing"

	"github.com/karbhat74/Aikyam/internal/model"
)

func TestRewardStatusBoundaries(t *testing.T) {
	tests := []struct {
		name      string
		trips     int
		claimed   map[int]bool
		eligible1 bool
		eligible2 bool
	}{
		{"no trips", 0, nil, false, false},
		{"just below first", 9, nil, false, false},
		{"exactly first", 10, nil, true, false},
		{"between", 15, nil, true, false},
		{"exactly second", 20, nil, true, true},
		{"beyond second", 100, nil, true, true},
		{"first claimed", 20, map[int]bool{1: true}, false, true},
		{"both claimed", 100, map[int]bool{1: true, 2: true}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := RewardStatus(tt.trips, tt.claimed)
			if len(status) != 2 {
				t.Fatalf("expected 2 rewards, got %d", len(status))
			}
			if status[0].Eligible != tt.eligible1 {
				t.Errorf("reward 1 eligible=%v want %v", status[0].Eligible, tt.eligible1)
			}
			if status[1].Eligible != tt.eligible2 {
				t.Errorf("reward 2 eligible=%v want %v", status[1].Eligible, tt.eligible2)
			}
			for _, rp := range status {
				if rp.Progress != tt.trips {
					t.Errorf("progress=%d want %d", rp.Progress, tt.trips)
				}
				if rp.Eligible && tt.trips < rp.Reward.TripCount {
					t.Errorf("reward %d eligible below its trip count", rp.Reward.ID)
				}
			}
		})
	}
}

func TestRewardByID(t *testing.T) {
	r, err := RewardByID(1)
	if err != nil || r.Name != "Free Coffee" {
		t.Fatalf("RewardByID(1)=%v,%v", r, err)
	}
	if _, err := RewardByID(99); err != ErrUnknownReward {
		t.Fatalf("RewardByID(99) err=%v want ErrUnknownReward", err)
	}
}

func TestPersonalizedTip(t *testing.T) {
	if got := PersonalizedTip(nil); got != onboardingTip {
		t.Errorf("empty trips should return onboarding tip, got %q", got)
	}

	busHeavy := []model.Trip{
		{Mode: model.ModeBus}, {Mode: model.ModeTrain}, {Mode: model.ModeBus},
	}
	if got := PersonalizedTip(busHeavy); got == onboardingTip || got == PersonalizedTip([]model.Trip{{Mode: model.ModeTrain}}) {
		t.Errorf("bus-heavy trips got %q", got)
	}

	// On a tie the first-encountered mode wins.
	tied := []model.Trip{{Mode: model.ModeTrain}, {Mode: model.ModeBus}}
	trainOnly := []model.Trip{{Mode: model.ModeTrain}}
	if PersonalizedTip(tied) != PersonalizedTip(trainOnly) {
		t.Error("tie should resolve to the first-encountered mode")
	}
}
