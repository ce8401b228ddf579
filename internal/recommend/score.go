// Package recommend scores catalog destinations against a user's preferences
// and ranks them.
package recommend

import (
	"math"
	"slices"
	"sort"

	"github.com/neexbeast/travel-companion/internal/destination"
	"github.com/neexbeast/travel-companion/internal/preference"
	"github.com/neexbeast/travel-companion/internal/rating"
)

// Weights of each factor in the total score.
const (
	activityWeight = 0.25
	cuisineWeight  = 0.25
	weatherWeight  = 0.20
	accomWeight    = 0.15
	ratingWeight   = 0.15
)

const (
	accomMatch     = 1.0
	accomMismatch  = 0.5
	weatherIdeal   = 1.5
	weatherOther   = 0.8
	neutralRating  = 1.0
	maxDisplay     = 100
	displayPercent = 100
)

// Recommendation is one scored destination.
type Recommendation struct {
	DestinationID     string
	Name              string
	Location          string
	Price             int
	Score             int
	MatchedActivities []string
	MatchedCuisines   []string
	WeatherMatch      bool
	Accommodation     []string
}

// Score filters catalog by prefs and returns the survivors ordered by
// descending score. Ties keep catalog order. ledger holds every user's
// ratings; userID selects whose own rating takes precedence.
//
// A destination whose activities share nothing with the user's is still kept
// when it lists at least one activity: its first activity counts as the match.
func Score(catalog []destination.Destination, prefs preference.Preferences, ledger rating.Ledger, userID string) []Recommendation {
	weather := prefs.Season.Weather()
	recs := make([]Recommendation, 0, len(catalog))

	for _, d := range catalog {
		if !prefs.Budget.Contains(d.Price) || d.Category != prefs.TripType {
			continue
		}

		activities := intersect(d.Activities, prefs.Activities)
		if len(activities) == 0 {
			if len(d.Activities) == 0 {
				continue
			}
			activities = []string{d.Activities[0]}
		}

		cuisines := intersect(d.Cuisines, prefs.Cuisines)
		accom := d.Offers(prefs.Accommodation)
		if len(activities) == 0 && len(cuisines) == 0 && !accom {
			continue
		}

		weatherMatch := d.HasWeather(weather)

		total := activityWeight*ratio(len(activities), len(prefs.Activities)) +
			cuisineWeight*ratio(len(cuisines), len(prefs.Cuisines)) +
			weatherWeight*pick(weatherMatch, weatherIdeal, weatherOther) +
			accomWeight*pick(accom, accomMatch, accomMismatch) +
			ratingWeight*ratingScore(ledger, userID, d.ID)

		recs = append(recs, Recommendation{
			DestinationID:     d.ID,
			Name:              d.Name,
			Location:          d.Location,
			Price:             d.Price,
			Score:             display(total),
			MatchedActivities: activities,
			MatchedCuisines:   cuisines,
			WeatherMatch:      weatherMatch,
			Accommodation:     slices.Clone(d.Accommodation),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	return recs
}

// Top returns at most the first n recommendations.
func Top(recs []Recommendation, n int) []Recommendation {
	if n < 0 {
		n = 0
	}
	if len(recs) > n {
		return recs[:n]
	}
	return recs
}

// IDs returns the destination IDs of recs in order.
func IDs(recs []Recommendation) []string {
	ids := make([]string, len(recs))
	for i, r := range recs {
		ids[i] = r.DestinationID
	}
	return ids
}

// ratingScore prefers the user's own rating, then the cross-user mean, then a
// neutral 1.0 for unrated destinations.
func ratingScore(ledger rating.Ledger, userID, destID string) float64 {
	if v, ok := ledger.UserRating(userID, destID); ok {
		return float64(v) / rating.MaxRating
	}
	if mean, count := ledger.Average(destID); count > 0 {
		return mean / rating.MaxRating
	}
	return neutralRating
}

// intersect returns the members of have that appear in want, in have's order.
func intersect(have, want []string) []string {
	out := make([]string, 0, len(have))
	for _, s := range have {
		if slices.Contains(want, s) {
			out = append(out, s)
		}
	}
	return out
}

func ratio(matched, total int) float64 {
	return float64(matched) / float64(max(1, total))
}

func pick(cond bool, yes, no float64) float64 {
	if cond {
		return yes
	}
	return no
}

// display converts a weighted total to the 0-100 integer shown to users.
// Halves round to even.
func display(total float64) int {
	score := int(math.RoundToEven(total * displayPercent))
	return min(maxDisplay, max(0, score))
}
