package eco

import "github.com/karbhat74/Aikyam/internal/model"

// Tip is one entry in the rotating generic-tips carousel.
type Tip struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var tips = []Tip{
	{
		ID:          1,
		Title:       "Bus vs Car Impact",
		Description: "Did you know? A bus emits 75% less CO2 per passenger than a car. Your bus rides are making a real difference!",
		Icon:        "🚌",
	},
	{
		ID:          2,
		Title:       "Train Travel Benefits",
		Description: "Trains are one of the most eco-friendly ways to travel, producing about 90% less emissions than planes for the same journey.",
		Icon:        "🚂",
	},
	{
		ID:          3,
		Title:       "Peak Hours",
		Description: "Traveling during off-peak hours not only reduces crowding but also helps transport systems operate more efficiently.",
		Icon:        "⏰",
	},
	{
		ID:          4,
		Title:       "Walking Impact",
		Description: "For trips under 2km, walking can save up to 0.5kg of CO2 emissions compared to driving!",
		Icon:        "👣",
	},
}

const onboardingTip = "Start your green journey today! Every public transport trip helps reduce carbon emissions."

// Tips returns the rotating tip table.
func Tips() []Tip {
	out := make([]Tip, len(tips))
	copy(out, tips)
	return out
}

// PersonalizedTip picks a message from the user's dominant transport mode.
// Ties go to the mode encountered first in the list.
func PersonalizedTip(trips []model.Trip) string {
	if len(trips) == 0 {
		return onboardingTip
	}
	counts := map[model.TransportMode]int{}
	for _, t := range trips {
		counts[t.Mode]++
	}
	best := trips[0].Mode
	for _, t := range trips {
		if counts[t.Mode] > counts[best] {
			best = t.Mode
		}
	}
	if best == model.ModeBus {
		return "Great job using the bus! Did you know that trains might save even more CO2 for longer journeys?"
	}
	return "You're a train champion! For shorter trips, buses are also an excellent low-carbon option."
}
