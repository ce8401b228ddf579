package preference

import "github.com/neexbeast/travel-companion/internal/destination"

// BudgetTiers are the budget ranges offered by the questionnaire.
var BudgetTiers = []Budget{
	{Label: "Low ($0-$300)", Min: 0, Max: 300},
	{Label: "Medium ($300-$500)", Min: 300, Max: 500},
	{Label: "High ($500+)", Min: 500, Max: 9999},
}

// AccommodationTypes are the accommodation answers offered.
var AccommodationTypes = []string{"Hotel", "Villa", "Apartment"}

// Cuisines are the cuisine answers offered.
var Cuisines = []string{"Local", "Vegetarian", "Seafood", "Street food", "Meat", "Vegan"}

var activityGroups = map[destination.Category][]string{
	destination.Beach:    {"Surfing", "Snorkeling", "Spa"},
	destination.Mountain: {"Skiing", "Snowboarding", "Mountain climbing"},
	destination.City:     {"Shopping", "Museums", "City tours"},
}

// ActivitiesFor returns the activities offered for a trip type, or nil for an
// unknown one.
func ActivitiesFor(c destination.Category) []string {
	return activityGroups[c]
}
