// Package preference holds a user's questionnaire answers and the option
// lists the questionnaire offers.
package preference

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/neexbeast/travel-companion/internal/destination"
	"github.com/neexbeast/travel-companion/internal/validation"
)

// Season is the planned travel season.
type Season string

const (
	Summer Season = "summer"
	Winter Season = "winter"
	Spring Season = "spring"
	Fall   Season = "fall"
)

// Seasons lists the seasons in questionnaire order.
var Seasons = []Season{Summer, Winter, Spring, Fall}

// fallbackWeather is used for any season outside the table.
const fallbackWeather = "mild"

var seasonWeather = map[Season]string{
	Summer: "sunny",
	Winter: "snowy",
	Spring: "mild",
	Fall:   "rainy",
}

// Weather maps the season to the weather label destinations are matched on.
func (s Season) Weather() string {
	if w, ok := seasonWeather[Season(destination.NormalizeLabel(string(s)))]; ok {
		return w
	}
	return fallbackWeather
}

// Budget is an inclusive price range.
type Budget struct {
	Label string
	Min   int `validate:"gte=0"`
	Max   int `validate:"gtefield=Min"`
}

// Contains reports whether price lies within the range, bounds included.
func (b Budget) Contains(price int) bool {
	return b.Min <= price && price <= b.Max
}

type budgetJSON struct {
	Choice     string `json:"choice"`
	PriceRange [2]int `json:"price_range"`
}

// MarshalJSON writes the budget as {"choice": ..., "price_range": [min, max]},
// the layout users.json has always used.
func (b Budget) MarshalJSON() ([]byte, error) {
	return json.Marshal(budgetJSON{Choice: b.Label, PriceRange: [2]int{b.Min, b.Max}})
}

// UnmarshalJSON reads the layout written by MarshalJSON.
func (b *Budget) UnmarshalJSON(data []byte) error {
	var raw budgetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding budget: %w", err)
	}
	b.Label = raw.Choice
	b.Min = raw.PriceRange[0]
	b.Max = raw.PriceRange[1]
	return nil
}

// Preferences is one user's complete set of answers. It is always replaced as a
// whole, never merged.
type Preferences struct {
	TripType      destination.Category `json:"trip_type" validate:"oneof=beach mountain city"`
	Budget        Budget               `json:"budget"`
	Activities    []string             `json:"activities" validate:"min=1,dive,required"`
	Accommodation string               `json:"accommodation" validate:"required"`
	Cuisines      []string             `json:"cuisine" validate:"min=1,dive,required"`
	Season        Season               `json:"travel_season" validate:"oneof=summer winter spring fall"`
}

// Normalize returns a copy with every label in canonical form and the
// activity and cuisine sets de-duplicated.
func (p Preferences) Normalize() Preferences {
	out := p
	out.TripType = destination.Category(destination.NormalizeLabel(string(p.TripType)))
	out.Activities = destination.NormalizeLabels(p.Activities)
	out.Accommodation = destination.NormalizeLabel(p.Accommodation)
	out.Cuisines = destination.NormalizeLabels(p.Cuisines)
	out.Season = Season(destination.NormalizeLabel(string(p.Season)))
	return out
}

// Validate checks a normalized Preferences value.
func (p Preferences) Validate() error {
	if err := validation.Struct(p); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}
	return nil
}
