package recommend_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/travel-companion/internal/destination"
	"github.com/neexbeast/travel-companion/internal/preference"
	"github.com/neexbeast/travel-companion/internal/rating"
	"github.com/neexbeast/travel-companion/internal/recommend"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func builtinCatalog(t *testing.T) []destination.Destination {
	t.Helper()
	c, err := destination.NewBuiltinProvider(discardLogger()).Load(context.Background())
	require.NoError(t, err)
	return c.All()
}

func catalogOf(t *testing.T, records ...destination.Destination) []destination.Destination {
	t.Helper()
	c, err := destination.NewCatalog(records, discardLogger())
	require.NoError(t, err)
	return c.All()
}

func beachPrefs() preference.Preferences {
	return preference.Preferences{
		TripType:      destination.Beach,
		Budget:        preference.Budget{Min: 0, Max: 300},
		Activities:    []string{"snorkeling"},
		Accommodation: "hotel",
		Cuisines:      []string{"local"},
		Season:        preference.Summer,
	}
}

func place(id string, activities, cuisines, accommodation, weather []string) destination.Destination {
	return destination.Destination{
		ID:            id,
		Name:          "Place " + id,
		Category:      destination.Beach,
		Region:        "asia",
		Location:      "Somewhere",
		Price:         100,
		IdealWeather:  weather,
		Activities:    activities,
		Accommodation: accommodation,
		Cuisines:      cuisines,
	}
}

func TestScore_WorkedExample(t *testing.T) {
	recs := recommend.Score(builtinCatalog(t), beachPrefs(), rating.Ledger{}, "alice")
	require.NotEmpty(t, recs)

	top := recs[0]
	assert.Equal(t, "d1", top.DestinationID)
	assert.Equal(t, 100, top.Score)
	assert.Equal(t, []string{"snorkeling"}, top.MatchedActivities)
	assert.Equal(t, []string{"local"}, top.MatchedCuisines)
	assert.True(t, top.WeatherMatch)
	assert.Equal(t, []string{"hotel"}, top.Accommodation)
}

func TestScore_TiesKeepCatalogOrder(t *testing.T) {
	recs := recommend.Score(builtinCatalog(t), beachPrefs(), rating.Ledger{}, "alice")

	// Every cheap beach destination reaches the clamp; catalog order decides.
	assert.Equal(t, []string{"d1", "d4", "d7"}, recommend.IDs(recs))
	for _, r := range recs {
		assert.Equal(t, 100, r.Score)
	}
}

func TestScore_FiltersBudgetAndCategory(t *testing.T) {
	catalog := builtinCatalog(t)
	byID := make(map[string]destination.Destination, len(catalog))
	for _, d := range catalog {
		byID[d.ID] = d
	}

	for _, category := range destination.Categories {
		for _, tier := range preference.BudgetTiers {
			prefs := preference.Preferences{
				TripType:      category,
				Budget:        tier,
				Activities:    destination.NormalizeLabels(preference.ActivitiesFor(category)),
				Accommodation: "villa",
				Cuisines:      []string{"vegan"},
				Season:        preference.Fall,
			}
			for _, r := range recommend.Score(catalog, prefs, rating.Ledger{}, "alice") {
				d := byID[r.DestinationID]
				assert.Equal(t, category, d.Category, "destination %s", d.ID)
				assert.True(t, tier.Contains(d.Price), "destination %s price %d", d.ID, d.Price)
			}
		}
	}
}

func TestScore_ExcludesOutOfBudget(t *testing.T) {
	prefs := beachPrefs()
	prefs.Budget = preference.Budget{Min: 300, Max: 500}

	ids := recommend.IDs(recommend.Score(builtinCatalog(t), prefs, rating.Ledger{}, "alice"))
	assert.Equal(t, []string{"d2", "d5", "d8"}, ids)
}

func TestScore_DisplayScoreInRange(t *testing.T) {
	catalog := builtinCatalog(t)
	ledger := rating.Ledger{"bob": {"d1": 1, "d12": 5, "d25": 3}}

	for _, category := range destination.Categories {
		for _, tier := range preference.BudgetTiers {
			for _, season := range preference.Seasons {
				for _, accom := range preference.AccommodationTypes {
					prefs := preference.Preferences{
						TripType:      category,
						Budget:        tier,
						Activities:    destination.NormalizeLabels(preference.ActivitiesFor(category)),
						Accommodation: destination.NormalizeLabel(accom),
						Cuisines:      destination.NormalizeLabels(preference.Cuisines),
						Season:        season,
					}.Normalize()
					for _, r := range recommend.Score(catalog, prefs, ledger, "alice") {
						assert.GreaterOrEqual(t, r.Score, 0)
						assert.LessOrEqual(t, r.Score, 100)
					}
				}
			}
		}
	}
}

func TestScore_RankedDescending(t *testing.T) {
	weak := place("weak", []string{"surfing"}, []string{"seafood"}, []string{"villa"}, []string{"warm"})
	strong := place("strong", []string{"spa"}, []string{"local"}, []string{"hotel"}, []string{"sunny"})

	prefs := beachPrefs()
	prefs.Activities = []string{"spa", "snorkeling", "surfing"}

	recs := recommend.Score(catalogOf(t, weak, strong), prefs, rating.Ledger{}, "alice")
	require.Len(t, recs, 2)

	// strong: 0.25/3 + 0.25 + 0.30 + 0.15 + 0.15
	assert.Equal(t, "strong", recs[0].DestinationID)
	assert.Equal(t, 93, recs[0].Score)

	// weak: 0.25/3 + 0 + 0.16 + 0.075 + 0.15
	assert.Equal(t, "weak", recs[1].DestinationID)
	assert.Equal(t, 47, recs[1].Score)
	assert.Empty(t, recs[1].MatchedCuisines)
	assert.False(t, recs[1].WeatherMatch)
}

func TestScore_FirstActivityFallback(t *testing.T) {
	d := place("x", []string{"surfing", "spa"}, []string{"local"}, []string{"hotel"}, []string{"sunny"})

	recs := recommend.Score(catalogOf(t, d), beachPrefs(), rating.Ledger{}, "alice")
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"surfing"}, recs[0].MatchedActivities)
	assert.Equal(t, 100, recs[0].Score)
}

func TestScore_KeepsDestinationWithOnlyFallbackAndAccommodation(t *testing.T) {
	d := place("x", []string{"surfing"}, []string{"gourmet"}, []string{"hotel"}, []string{"sunny"})

	recs := recommend.Score(catalogOf(t, d), beachPrefs(), rating.Ledger{}, "alice")
	require.Len(t, recs, 1)
	assert.Equal(t, []string{"surfing"}, recs[0].MatchedActivities)
	assert.Empty(t, recs[0].MatchedCuisines)
	// 0.25 + 0 + 0.30 + 0.15 + 0.15
	assert.Equal(t, 85, recs[0].Score)
}

func TestScore_NoActivitiesExcluded(t *testing.T) {
	d := place("bare", nil, []string{"local"}, []string{"hotel"}, []string{"sunny"})

	recs := recommend.Score(catalogOf(t, d), beachPrefs(), rating.Ledger{}, "alice")
	assert.Empty(t, recs)
	assert.NotNil(t, recs)
}

func TestScore_OwnRatingTakesPrecedence(t *testing.T) {
	prefs := beachPrefs()
	prefs.Season = preference.Winter // snowy: no weather boost, keeps totals under the clamp

	ledger := rating.Ledger{
		"alice": {"d1": 1},
		"bob":   {"d1": 5},
	}
	scoreFor := func(user string) int {
		for _, r := range recommend.Score(builtinCatalog(t), prefs, ledger, user) {
			if r.DestinationID == "d1" {
				return r.Score
			}
		}
		t.Fatalf("d1 missing for %s", user)
		return 0
	}

	// 0.25 + 0.25 + 0.16 + 0.15 = 0.81 before the rating term.
	assert.Equal(t, 84, scoreFor("alice"), "alice's own 1/5")
	assert.Equal(t, 96, scoreFor("bob"), "bob's own 5/5")
	assert.Equal(t, 90, scoreFor("carol"), "mean of 3/5")
}

func TestScore_UnratedIsNeutral(t *testing.T) {
	prefs := beachPrefs()
	prefs.Season = preference.Winter

	ledger := rating.Ledger{"bob": {"d4": 1}}
	recs := recommend.Score(builtinCatalog(t), prefs, ledger, "alice")

	scores := map[string]int{}
	for _, r := range recs {
		scores[r.DestinationID] = r.Score
	}
	assert.Equal(t, 96, scores["d1"])
	assert.Equal(t, 84, scores["d4"])
	assert.Equal(t, []string{"d1", "d7", "d4"}, recommend.IDs(recs))
}

func TestScore_EmptyPreferenceSetsDoNotDivideByZero(t *testing.T) {
	d := place("x", []string{"spa"}, []string{"local"}, []string{"hotel"}, []string{"sunny"})
	prefs := beachPrefs()
	prefs.Activities = nil
	prefs.Cuisines = nil

	recs := recommend.Score(catalogOf(t, d), prefs, rating.Ledger{}, "alice")
	require.Len(t, recs, 1)
	// fallback activity 1/1, no cuisines, sunny, hotel, neutral rating
	assert.Equal(t, 85, recs[0].Score)
}

func TestScore_NoMatches(t *testing.T) {
	prefs := beachPrefs()
	prefs.Budget = preference.Budget{Min: 0, Max: 10}

	recs := recommend.Score(builtinCatalog(t), prefs, rating.Ledger{}, "alice")
	assert.Empty(t, recs)
}

func TestTop(t *testing.T) {
	recs := []recommend.Recommendation{{DestinationID: "a"}, {DestinationID: "b"}, {DestinationID: "c"}, {DestinationID: "d"}}

	assert.Equal(t, []string{"a", "b", "c"}, recommend.IDs(recommend.Top(recs, 3)))
	assert.Len(t, recommend.Top(recs, 10), 4)
	assert.Empty(t, recommend.Top(recs, 0))
	assert.Empty(t, recommend.Top(recs, -1))
}
