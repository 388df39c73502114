// Package catalog holds the mock deal and activity repositories the
// assistant draws its recommendations from.
package catalog

import (
	"math/rand"
	"sync"

	"github.com/kolecko-ai/travel-assistant/internal/model"
)

// allDeals is the full accommodation pool. The assistant picks five at
// random for each recommendation.
var allDeals = []model.Deal{
	{
		ID:          "d1",
		Image:       "assets/deals/d1.jpg",
		Title:       "Pobyt ve Špindlerově Mlýně s polopenzí a wellness",
		Price:       2290,
		Rating:      4.4,
		ReviewCount: 3330,
		Provider:    "Hotel Lesana",
		Location:    "Špindlerův Mlýn",
		Distance:    "cca 40 km / 45 min",
	},
	{
		ID:            "d2",
		Image:         "assets/deals/d2.jpg",
		Title:         "Relax ve Špindlu: jídlo, bazén a neomezený wellness",
		Price:         3980,
		OriginalPrice: 4200,
		Discount:      5,
		Rating:        4.6,
		RatingLabel:   "Skvělé",
		ReviewCount:   261,
		Provider:      "Hotel Adam",
		Location:      "Špindlerův Mlýn",
		Distance:      "cca 40 km / 45 min",
	},
	{
		ID:            "d3",
		Image:         "assets/deals/d3.jpg",
		Title:         "Pobyt ve Vrchlabí: možnost wellness i romantické večeře",
		Price:         2540,
		OriginalPrice: 2978,
		Discount:      14,
		Rating:        4.7,
		RatingLabel:   "Skvělé",
		ReviewCount:   309,
		Provider:      "Wellness hotel Gendorf",
		Location:      "Krkonoše",
		Distance:      "cca 25 km / 30 min",
	},
	{
		ID:          "d4",
		Image:       "assets/deals/d4.jpg",
		Title:       "Pobyt ve Špindlerově Mlýně s polopenzí i wellness",
		Price:       6580,
		Rating:      4.7,
		RatingLabel: "Skvělé",
		ReviewCount: 455,
		Provider:    "Hotel Astra",
		Location:    "Špindlerův Mlýn",
		Distance:    "cca 40 km / 45 min",
	},
	{
		ID:            "d5",
		Image:         "assets/deals/d5.jpg",
		Title:         "Horský hotel u Pece pod Sněžkou s jídlem a wellness",
		Price:         1899,
		OriginalPrice: 2900,
		Discount:      34,
		Rating:        4.7,
		RatingLabel:   "Skvělé",
		ReviewCount:   67,
		Provider:      "Hotel Tetřeví Boudy",
		Location:      "Krkonoše",
		Distance:      "cca 30 km / 30 min",
	},
	{
		ID:            "d6",
		Image:         "assets/deals/d6.jpg",
		Title:         "Pobyt ve Špindlu s polopenzí a neomezeným wellness",
		Price:         5990,
		OriginalPrice: 6660,
		Discount:      10,
		Rating:        4.5,
		ReviewCount:   928,
		Provider:      "Hotel Praha****",
		Location:      "Špindlerův Mlýn",
		Distance:      "cca 40 km / 45 min",
	},
	{
		ID:          "d7",
		Image:       "assets/deals/d7.jpg",
		Title:       "Wellness pobyt v Peci pod Sněžkou s polopenzí",
		Price:       3290,
		Rating:      4.7,
		RatingLabel: "Skvělé",
		ReviewCount: 457,
		Provider:    "Bouda Máma",
		Location:    "Pec pod Sněžkou",
		Distance:    "cca 60 km / 1 h 15 min",
	},
	{
		ID:          "d8",
		Image:       "assets/deals/d8.jpg",
		Title:       "Resort Špindl pod Medvědínem: jídlo i aquapark",
		Price:       2600,
		Rating:      4.6,
		ReviewCount: 2,
		Provider:    "Resort Špindl (ex. Hotel Aqua Park)",
		Location:    "Špindlerův Mlýn",
		Distance:    "cca 40 km / 45 min",
	},
	{
		ID:          "d9",
		Image:       "assets/deals/d9.jpg",
		Title:       "Pobyt ve Špindlu až pro 5 osob: jídlo i wellness",
		Price:       1790,
		Rating:      4.6,
		RatingLabel: "Skvělé",
		ReviewCount: 619,
		Provider:    "Alpský Hotel",
		Location:    "Špindlerův Mlýn",
		Distance:    "cca 40 km / 45 min",
	},
	{
		ID:            "d10",
		Image:         "assets/deals/d10.jpg",
		Title:         "Pobyt v Krkonoších: jídlo i neomezený wellness",
		Price:         2290,
		OriginalPrice: 2744,
		Discount:      16,
		Rating:        4.5,
		ReviewCount:   695,
		Provider:      "Grund Resort ****",
		Location:      "Krkonoše",
		Distance:      "cca 45 km / 1 h",
	},
	{
		ID:            "d11",
		Image:         "assets/deals/d11.jpg",
		Title:         "Harrachov: apartmán s vlastní vířivkou i saunou, jídlo",
		Price:         8190,
		OriginalPrice: 8506,
		Discount:      3,
		Rating:        4.9,
		RatingLabel:   "Mimořádné",
		ReviewCount:   310,
		Provider:      "GRAND Harrachov Pension",
		Location:      "Harrachov",
		Distance:      "cca 35 km / 30 min",
	},
}

// DealStore serves random deal selections without repetition within a draw.
type DealStore struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewDealStore creates a deal store drawing from the given random source.
func NewDealStore(rnd *rand.Rand) *DealStore {
	return &DealStore{rnd: rnd}
}

// PickRandom returns count distinct deals from the pool.
func (s *DealStore) PickRandom(count int) []model.Deal {
	s.mu.Lock()
	defer s.mu.Unlock()

	shuffled := make([]model.Deal, len(allDeals))
	copy(shuffled, allDeals)
	s.rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

// Size returns the number of deals in the pool.
func (s *DealStore) Size() int {
	return len(allDeals)
}
