package destination

// builtin returns the default catalog: three budget tiers per category in
// Asia, Europe and Africa.
func builtin() []Destination {
	return []Destination{
		{
			ID:            "d1",
			Name:          "Phuket Backpackers Hostel",
			Category:      Beach,
			Region:        "asia",
			Location:      "Phuket, Thailand",
			Price:         80,
			Tags:          map[string]float64{"beach": 0.9, "backpacking": 0.8},
			IdealWeather:  []string{"sunny", "warm"},
			Activities:    []string{"Snorkeling", "Spa"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Local", "Street food"},
		},
		{
			ID:            "d2",
			Name:          "Bali Beach Resort",
			Category:      Beach,
			Region:        "asia",
			Location:      "Bali, Indonesia",
			Price:         350,
			Tags:          map[string]float64{"beach": 0.9, "luxury": 0.7},
			IdealWeather:  []string{"sunny", "warm"},
			Activities:    []string{"Surfing", "Spa"},
			Accommodation: []string{"Hotel", "Villa"},
			Cuisines:      []string{"Seafood", "Local"},
		},
		{
			ID:            "d3",
			Name:          "Maldives Overwater Villa",
			Category:      Beach,
			Region:        "asia",
			Location:      "Maldives",
			Price:         800,
			Tags:          map[string]float64{"beach": 0.95, "luxury": 0.9},
			IdealWeather:  []string{"sunny", "warm"},
			Activities:    []string{"Surfing", "Spa"},
			Accommodation: []string{"Villa"},
			Cuisines:      []string{"Seafood", "Vegetarian"},
		},
		{
			ID:            "d4",
			Name:          "Algarve Surf Hostel",
			Category:      Beach,
			Region:        "europe",
			Location:      "Portugal",
			Price:         70,
			Tags:          map[string]float64{"beach": 0.8, "surfing": 0.9},
			IdealWeather:  []string{"sunny", "warm"},
			Activities:    []string{"Surfing"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Seafood", "Local"},
		},
		{
			ID:            "d5",
			Name:          "Santorini Cliff Hotel",
			Category:      Beach,
			Region:        "europe",
			Location:      "Greece",
			Price:         350,
			Tags:          map[string]float64{"beach": 0.85, "romantic": 0.9},
			IdealWeather:  []string{"sunny", "warm"},
			Activities:    []string{"Spa"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Local", "Vegetarian"},
		},
		{
			ID:            "d6",
			Name:          "French Riviera Villa",
			Category:      Beach,
			Region:        "europe",
			Location:      "France",
			Price:         900,
			Tags:          map[string]float64{"beach": 0.9, "luxury": 0.95},
			IdealWeather:  []string{"sunny", "warm"},
			Activities:    []string{"Spa"},
			Accommodation: []string{"Villa"},
			Cuisines:      []string{"Local", "Gourmet"},
		},
		{
			ID:            "d7",
			Name:          "Zanzibar Guesthouse",
			Category:      Beach,
			Region:        "africa",
			Location:      "Tanzania",
			Price:         60,
			Tags:          map[string]float64{"beach": 0.85, "cultural": 0.7},
			IdealWeather:  []string{"sunny", "warm"},
			Activities:    []string{"Snorkeling"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Local", "Seafood"},
		},
		{
			ID:            "d8",
			Name:          "Diani Beach Resort",
			Category:      Beach,
			Region:        "africa",
			Location:      "Kenya",
			Price:         350,
			Tags:          map[string]float64{"beach": 0.9, "wildlife": 0.6},
			IdealWeather:  []string{"sunny", "warm"},
			Activities:    []string{"Snorkeling", "Spa"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Seafood", "Local"},
		},
		{
			ID:            "d9",
			Name:          "Seychelles Private Island",
			Category:      Beach,
			Region:        "africa",
			Location:      "Seychelles",
			Price:         1200,
			Tags:          map[string]float64{"beach": 0.95, "exclusive": 0.9},
			IdealWeather:  []string{"sunny", "warm"},
			Activities:    []string{"Spa"},
			Accommodation: []string{"Villa"},
			Cuisines:      []string{"Seafood", "Vegetarian"},
		},
		{
			ID:            "d10",
			Name:          "Pokhara Trekking Lodge",
			Category:      Mountain,
			Region:        "asia",
			Location:      "Nepal",
			Price:         40,
			Tags:          map[string]float64{"mountain": 0.9, "trekking": 0.8},
			IdealWeather:  []string{"cool", "dry"},
			Activities:    []string{"Mountain climbing"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Vegetarian", "Local"},
		},
		{
			ID:            "d11",
			Name:          "Himalayan Eco Resort",
			Category:      Mountain,
			Region:        "asia",
			Location:      "Bhutan",
			Price:         320,
			Tags:          map[string]float64{"mountain": 0.9, "spiritual": 0.7},
			IdealWeather:  []string{"cool", "dry"},
			Activities:    []string{"Mountain climbing"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Vegetarian", "Local"},
		},
		{
			ID:            "d12",
			Name:          "Japanese Alps Ryokan",
			Category:      Mountain,
			Region:        "asia",
			Location:      "Japan",
			Price:         500,
			Tags:          map[string]float64{"mountain": 0.9, "luxury": 0.8},
			IdealWeather:  []string{"snowy", "cold"},
			Activities:    []string{"Skiing"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Local", "Vegetarian"},
		},
		{
			ID:            "d13",
			Name:          "Slovakian Mountain Hut",
			Category:      Mountain,
			Region:        "europe",
			Location:      "Slovakia",
			Price:         50,
			Tags:          map[string]float64{"mountain": 0.8, "hiking": 0.9},
			IdealWeather:  []string{"cool", "sunny"},
			Activities:    []string{"Mountain climbing"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Local", "Meat"},
		},
		{
			ID:            "d14",
			Name:          "Austrian Alpine Hotel",
			Category:      Mountain,
			Region:        "europe",
			Location:      "Austria",
			Price:         400,
			Tags:          map[string]float64{"mountain": 0.9, "skiing": 0.8},
			IdealWeather:  []string{"snowy", "cold"},
			Activities:    []string{"Skiing"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Local", "Meat"},
		},
		{
			ID:            "d15",
			Name:          "Swiss Luxury Chalet",
			Category:      Mountain,
			Region:        "europe",
			Location:      "Switzerland",
			Price:         1000,
			Tags:          map[string]float64{"mountain": 0.95, "luxury": 0.9},
			IdealWeather:  []string{"snowy", "cold"},
			Activities:    []string{"Skiing"},
			Accommodation: []string{"Villa"},
			Cuisines:      []string{"Local", "Vegetarian"},
		},
		{
			ID:            "d16",
			Name:          "Atlas Mountain Camp",
			Category:      Mountain,
			Region:        "africa",
			Location:      "Morocco",
			Price:         60,
			Tags:          map[string]float64{"mountain": 0.8, "cultural": 0.7},
			IdealWeather:  []string{"cool", "dry"},
			Activities:    []string{"Mountain climbing"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Local", "Vegetarian"},
		},
		{
			ID:            "d17",
			Name:          "Mount Kenya Lodge",
			Category:      Mountain,
			Region:        "africa",
			Location:      "Kenya",
			Price:         450,
			Tags:          map[string]float64{"mountain": 0.85, "wildlife": 0.6},
			IdealWeather:  []string{"cool", "dry"},
			Activities:    []string{"Mountain climbing"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Local", "Meat"},
		},
		{
			ID:            "d18",
			Name:          "Kilimanjaro Luxury Camp",
			Category:      Mountain,
			Region:        "africa",
			Location:      "Tanzania",
			Price:         700,
			Tags:          map[string]float64{"mountain": 0.9, "luxury": 0.8},
			IdealWeather:  []string{"cool", "dry"},
			Activities:    []string{"Mountain climbing"},
			Accommodation: []string{"Villa"},
			Cuisines:      []string{"Local", "Vegetarian"},
		},
		{
			ID:            "d19",
			Name:          "Hanoi Backpackers",
			Category:      City,
			Region:        "asia",
			Location:      "Vietnam",
			Price:         175,
			Tags:          map[string]float64{"city": 0.8, "cultural": 0.9},
			IdealWeather:  []string{"warm", "humid"},
			Activities:    []string{"Shopping", "Museums"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Local", "Street food"},
		},
		{
			ID:            "d20",
			Name:          "Bangkok City Hotel",
			Category:      City,
			Region:        "asia",
			Location:      "Thailand",
			Price:         420,
			Tags:          map[string]float64{"city": 0.85, "shopping": 0.8},
			IdealWeather:  []string{"warm", "humid"},
			Activities:    []string{"Shopping", "City tours"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Local", "Street food"},
		},
		{
			ID:            "d21",
			Name:          "Tokyo Luxury Tower",
			Category:      City,
			Region:        "asia",
			Location:      "Japan",
			Price:         850,
			Tags:          map[string]float64{"city": 0.95, "luxury": 0.9},
			IdealWeather:  []string{"mild", "seasonal"},
			Activities:    []string{"Shopping", "Museums"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Local", "Vegetarian"},
		},
		{
			ID:            "d22",
			Name:          "Krakow Hostel",
			Category:      City,
			Region:        "europe",
			Location:      "Poland",
			Price:         100,
			Tags:          map[string]float64{"city": 0.8, "historical": 0.9},
			IdealWeather:  []string{"mild", "seasonal"},
			Activities:    []string{"Museums", "City tours"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Local", "Meat"},
		},
		{
			ID:            "d23",
			Name:          "Barcelona City Flat",
			Category:      City,
			Region:        "europe",
			Location:      "Spain",
			Price:         470,
			Tags:          map[string]float64{"city": 0.9, "cultural": 0.8},
			IdealWeather:  []string{"warm", "sunny"},
			Activities:    []string{"Museums", "City tours"},
			Accommodation: []string{"Apartment"},
			Cuisines:      []string{"Local", "Seafood"},
		},
		{
			ID:            "d24",
			Name:          "Paris Luxury Suite",
			Category:      City,
			Region:        "europe",
			Location:      "France",
			Price:         850,
			Tags:          map[string]float64{"city": 0.95, "luxury": 0.9},
			IdealWeather:  []string{"mild", "seasonal"},
			Activities:    []string{"Museums", "Shopping"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Local", "Vegetarian"},
		},
		{
			ID:            "d25",
			Name:          "Marrakech Hostel",
			Category:      City,
			Region:        "africa",
			Location:      "Morocco",
			Price:         40,
			Tags:          map[string]float64{"city": 0.8, "cultural": 0.9},
			IdealWeather:  []string{"warm", "dry"},
			Activities:    []string{"Shopping", "Museums"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Local", "Street food"},
		},
		{
			ID:            "d26",
			Name:          "Cape Town Boutique Hotel",
			Category:      City,
			Region:        "africa",
			Location:      "South Africa",
			Price:         180,
			Tags:          map[string]float64{"city": 0.85, "scenic": 0.8},
			IdealWeather:  []string{"warm", "sunny"},
			Activities:    []string{"Shopping", "City tours"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Local", "Seafood"},
		},
		{
			ID:            "d27",
			Name:          "Dubai Skyscraper Hotel",
			Category:      City,
			Region:        "asia",
			Location:      "UAE",
			Price:         900,
			Tags:          map[string]float64{"city": 0.95, "luxury": 0.9},
			IdealWeather:  []string{"warm", "dry"},
			Activities:    []string{"Shopping", "Museums"},
			Accommodation: []string{"Hotel"},
			Cuisines:      []string{"Local", "Vegetarian"},
		},
	}
}
