package eco

import "errors"

// Reward is a redeemable perk unlocked after logging enough trips.
// The table is fixed at build time; claim state lives per user in the
// reward_claims table, never here.
type Reward struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	TripCount   int    `json:"tripCount"`
}

var rewards = []Reward{
	{ID: 1, Name: "Free Coffee", Description: "Get a free coffee at EcoCafe", TripCount: 10},
	{ID: 2, Name: "Tree Planted", Description: "We'll plant a tree in your name", TripCount: 20},
}

var ErrUnknownReward = errors.New("unknown reward")

// Rewards returns the full reward table.
func Rewards() []Reward {
	out := make([]Reward, len(rewards))
	copy(out, rewards)
	return out
}

// RewardByID looks up a reward in the static table.
func RewardByID(id int) (Reward, error) {
	for _, r := range rewards {
		if r.ID == id {
			return r, nil
		}
	}
	return Reward{}, ErrUnknownReward
}

// RewardProgress reports one user's standing against a reward. Progress
// counts every logged trip, whatever the mode.
type RewardProgress struct {
	Reward   Reward
	Progress int
	Claimed  bool
	Eligible bool
}

// RewardStatus evaluates the whole table against a trip count and the set
// of already-claimed reward ids. Eligibility is boundary inclusive:
// exactly tripCount == TripCount qualifies.
func RewardStatus(tripCount int, claimed map[int]bool) []RewardProgress {
	out := make([]RewardProgress, 0, len(rewards))
	for _, r := range rewards {
		out = append(out, RewardProgress{
			Reward:   r,
			Progress: tripCount,
			Claimed:  claimed[r.ID],
			Eligible: tripCount >= r.TripCount && !claimed[r.ID],
		})
	}
	return out
}
