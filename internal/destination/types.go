package destination

import (
	"slices"
	"strings"
)

// Category is the kind of trip a destination serves.
type Category string

const (
	Beach    Category = "beach"
	Mountain Category = "mountain"
	City     Category = "city"
)

// Categories lists every known category in questionnaire order.
var Categories = []Category{Beach, Mountain, City}

// Destination is a single catalog record. Labels are normalized to lower case
// when the catalog is built and the record is not modified afterwards.
type Destination struct {
	ID            string             `json:"id" validate:"required"`
	Name          string             `json:"name" validate:"required"`
	Category      Category           `json:"type" validate:"oneof=beach mountain city"`
	Region        string             `json:"region" validate:"required"`
	Location      string             `json:"location" validate:"required"`
	Price         int                `json:"price" validate:"gt=0"`
	Tags          map[string]float64 `json:"tags" validate:"dive,keys,required,endkeys,gte=0,lte=1"`
	IdealWeather  []string           `json:"ideal_weather" validate:"dive,required"`
	Activities    []string           `json:"activities" validate:"dive,required"`
	Accommodation []string           `json:"accommodation" validate:"dive,required"`
	Cuisines      []string           `json:"cuisines" validate:"dive,required"`
}

// HasWeather reports whether w is one of the destination's ideal weather labels.
func (d Destination) HasWeather(w string) bool {
	return slices.Contains(d.IdealWeather, w)
}

// Offers reports whether the destination lists the given accommodation type.
func (d Destination) Offers(accommodation string) bool {
	return slices.Contains(d.Accommodation, accommodation)
}

// NormalizeLabel is the canonical form used for every matchable label.
func NormalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeLabels normalizes each label, dropping blanks and duplicates while
// keeping first-seen order.
func NormalizeLabels(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		n := NormalizeLabel(s)
		if n == "" || slices.Contains(out, n) {
			continue
		}
		out = append(out, n)
	}
	return out
}

// normalize returns a copy of d with labels in canonical form. Display fields
// (name, location, region) are only trimmed.
func normalize(d Destination) Destination {
	out := d
	out.ID = strings.TrimSpace(d.ID)
	out.Name = strings.TrimSpace(d.Name)
	out.Region = NormalizeLabel(d.Region)
	out.Location = strings.TrimSpace(d.Location)
	out.Category = Category(NormalizeLabel(string(d.Category)))
	out.IdealWeather = NormalizeLabels(d.IdealWeather)
	out.Activities = NormalizeLabels(d.Activities)
	out.Accommodation = NormalizeLabels(d.Accommodation)
	out.Cuisines = NormalizeLabels(d.Cuisines)

	if d.Tags != nil {
		out.Tags = make(map[string]float64, len(d.Tags))
		for k, v := range d.Tags {
			out.Tags[NormalizeLabel(k)] = v
		}
	}
	return out
}
