package catalog

import (
	"github.com/kolecko-ai/travel-assistant/internal/model"
)

var allActivities = []model.Activity{
	{
		ID:            "a1",
		Image:         "assets/activities/a1.jpeg",
		Title:         "Let balónem pro 2 osoby nad Krkonošemi",
		Price:         4990,
		OriginalPrice: 5990,
		Discount:      16,
		Rating:        4.8,
		ReviewCount:   214,
		Provider:      "Balóny nad Krkonošemi",
		Location:      "Špindlerův Mlýn",
	},
	{
		ID:            "a2",
		Image:         "assets/activities/a2.jpeg",
		Title:         "2 hodiny bowlingu s občerstvením ve Špindlu",
		Price:         690,
		OriginalPrice: 890,
		Discount:      22,
		Rating:        4.5,
		ReviewCount:   87,
		Provider:      "Bowling Špindl Arena",
		Location:      "Špindlerův Mlýn",
	},
}

// ActivityStore serves the nearby-activity offers.
type ActivityStore struct{}

// NewActivityStore creates an activity store.
func NewActivityStore() *ActivityStore {
	return &ActivityStore{}
}

// All returns every activity in the catalog.
func (s *ActivityStore) All() []model.Activity {
	out := make([]model.Activity, len(allActivities))
	copy(out, allActivities)
	return out
}
