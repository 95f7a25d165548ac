package eco

// Badge is a named milestone on the cumulative-points ladder.
type Badge struct {
	Name      string `json:"name"`
	Threshold int    `json:"threshold"`
	Icon      string `json:"icon"`
}

// badges is ordered by strictly increasing threshold and always starts at
// zero, so CurrentBadge has a tier for any non-negative point count.
var badges = []Badge{
	{Name: "Eco Starter", Threshold: 0, Icon: "🌱"},
	{Name: "Eco Star", Threshold: 50, Icon: "⭐"},
	{Name: "Planet Hero", Threshold: 100, Icon: "🌍"},
	{Name: "Climate Champion", Threshold: 200, Icon: "👑"},
}

// Badges returns the full badge ladder.
func Badges() []Badge {
	out := make([]Badge, len(badges))
	copy(out, badges)
	return out
}

// CurrentBadge returns the highest tier whose threshold is at or below
// points. Thresholds are boundary inclusive: exactly reaching one earns it.
func CurrentBadge(points int) Badge {
	current := badges[0]
	for _, b := range badges {
		if points >= b.Threshold {
			current = b
		}
	}
	return current
}

// NextBadge returns the next tier above points, or false when the top
// tier is already reached.
func NextBadge(points int) (Badge, bool) {
	for _, b := range badges {
		if points < b.Threshold {
			return b, true
		}
	}
	return Badge{}, false
}
