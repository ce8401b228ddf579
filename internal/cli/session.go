// Package cli runs the interactive menu: login or registration, the
// preference questionnaire, recommendations and ratings.
package cli

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/neexbeast/travel-companion/internal/account"
	"github.com/neexbeast/travel-companion/internal/destination"
	"github.com/neexbeast/travel-companion/internal/preference"
	"github.com/neexbeast/travel-companion/internal/rating"
	"github.com/neexbeast/travel-companion/internal/recommend"
)

// Session is one interactive run for a single logged-in user.
type Session struct {
	in       *lineReader
	out      io.Writer
	accounts *account.Registry
	catalog  *destination.Catalog
	topN     int
	log      *slog.Logger

	user string
	last []recommend.Recommendation
}

// NewSession wires a session to its input, output and collaborators. topN is
// the number of recommendations shown and kept for rating.
func NewSession(in io.Reader, out io.Writer, accounts *account.Registry, catalog *destination.Catalog, topN int, log *slog.Logger) *Session {
	return &Session{
		in:       newLineReader(in),
		out:      out,
		accounts: accounts,
		catalog:  catalog,
		topN:     topN,
		log:      log.With("session", uuid.NewString()),
	}
}

// Run drives the menus until the user exits or logs out. Exhausted input ends
// the session without error; cancellation returns ctx.Err().
func (s *Session) Run(ctx context.Context) error {
	err := s.run(ctx)
	if errors.Is(err, io.EOF) {
		s.log.Debug("input closed, ending session")
		return nil
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	loggedIn, err := s.welcome(ctx)
	if err != nil || !loggedIn {
		return err
	}
	return s.mainMenu(ctx)
}

// welcome loops over login/register/exit. It reports whether a user is now
// logged in.
func (s *Session) welcome(ctx context.Context) (bool, error) {
	for {
		s.header("SMART TRAVEL COMPANION")
		s.printf("1. Login\n2. Register\n3. Exit\n")

		choice, err := s.prompt(ctx, "\nChoose an option (1-3): ")
		if err != nil {
			return false, err
		}

		switch choice {
		case "1":
			ok, err := s.login(ctx)
			if err != nil || ok {
				return ok, err
			}
		case "2":
			ok, err := s.register(ctx)
			if err != nil || ok {
				return ok, err
			}
		case "3":
			s.printf("\nThank you for using Smart Travel Companion!\n")
			return false, nil
		default:
			s.printf("\nInvalid choice. Please try again.\n")
		}
	}
}

func (s *Session) mainMenu(ctx context.Context) error {
	for {
		s.header("MAIN MENU")
		s.printf("1. Get Recommendations\n2. Update Preferences\n3. Rate a Destination\n4. Logout\n")

		choice, err := s.prompt(ctx, "\nChoose an option (1-4): ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			s.recommend()
		case "2":
			err = s.setPreferences(ctx)
		case "3":
			err = s.rate(ctx)
		case "4":
			s.log.Info("user logged out", "user", s.user)
			s.printf("\nLogged out successfully. Goodbye!\n")
			return nil
		default:
			s.printf("\nInvalid choice. Please try again.\n")
		}
		if err != nil {
			return err
		}
	}
}

// register creates an account and runs the questionnaire for it. It reports
// whether the new user is logged in.
func (s *Session) register(ctx context.Context) (bool, error) {
	s.header("NEW USER REGISTRATION")

	var username string
	for {
		name, err := s.prompt(ctx, "\nChoose a username: ")
		if err != nil {
			return false, err
		}
		if name == "" {
			s.printf("Username cannot be empty!\n")
			continue
		}
		if s.accounts.Exists(name) {
			s.printf("Username already exists!\n")
			continue
		}
		username = name
		break
	}

	password, err := s.prompt(ctx, "Choose a password: ")
	if err != nil {
		return false, err
	}

	if err := s.accounts.Register(ctx, username, password); err != nil {
		s.log.Error("registering user", "user", username, "err", err)
		if !s.accounts.Exists(username) {
			s.printf("\nRegistration failed. Please try again.\n")
			return false, nil
		}
		s.printf("\nWarning: your account could not be saved.\n")
	}

	s.user = username
	s.printf("\nWelcome, %s! Let's set your travel preferences.\n", username)
	return true, s.setPreferences(ctx)
}

func (s *Session) login(ctx context.Context) (bool, error) {
	s.header("USER LOGIN")

	username, err := s.prompt(ctx, "\nUsername: ")
	if err != nil {
		return false, err
	}
	password, err := s.prompt(ctx, "Password: ")
	if err != nil {
		return false, err
	}

	if err := s.accounts.Authenticate(ctx, username, password); err != nil {
		s.log.Info("login failed", "user", username)
		s.printf("\nInvalid credentials or user doesn't exist.\n")
		return false, nil
	}

	s.user = username
	s.log.Info("user logged in", "user", username)
	s.printf("\nWelcome back, %s!\n", username)

	if _, ok := s.accounts.Preferences(username); !ok {
		s.printf("Please complete your travel preferences first.\n")
		if err := s.setPreferences(ctx); err != nil {
			return false, err
		}
	}
	return true, nil
}

// setPreferences runs the questionnaire and replaces the user's preferences.
func (s *Session) setPreferences(ctx context.Context) error {
	s.header("TRAVEL PREFERENCES")
	s.printf("\nWe'll ask a few questions to personalize your experience:\n")

	tripNames := make([]string, len(destination.Categories))
	for i, c := range destination.Categories {
		tripNames[i] = capitalize(string(c))
	}
	trip, err := s.askChoice(ctx, "What type of trip do you prefer?", tripNames)
	if err != nil {
		return err
	}
	tripType := destination.Categories[trip]

	budgetNames := make([]string, len(preference.BudgetTiers))
	for i, b := range preference.BudgetTiers {
		budgetNames[i] = b.Label
	}
	budget, err := s.askChoice(ctx, "What's your budget range?", budgetNames)
	if err != nil {
		return err
	}

	activities, err := s.askMany(ctx, "activities", "activity", preference.ActivitiesFor(tripType))
	if err != nil {
		return err
	}

	accom, err := s.askChoice(ctx, "Preferred accommodation type:", preference.AccommodationTypes)
	if err != nil {
		return err
	}

	cuisines, err := s.askMany(ctx, "cuisines", "cuisine", preference.Cuisines)
	if err != nil {
		return err
	}

	s.header("TRAVEL PLANNING")
	seasonNames := make([]string, len(preference.Seasons))
	for i, season := range preference.Seasons {
		seasonNames[i] = capitalize(string(season))
	}
	season, err := s.askChoice(ctx, "When are you planning to travel?", seasonNames)
	if err != nil {
		return err
	}

	tier := preference.BudgetTiers[budget]
	tier.Label = strings.ToLower(tier.Label)

	prefs := preference.Preferences{
		TripType:      tripType,
		Budget:        tier,
		Activities:    activities,
		Accommodation: preference.AccommodationTypes[accom],
		Cuisines:      cuisines,
		Season:        preference.Seasons[season],
	}
	if err := s.accounts.SetPreferences(ctx, s.user, prefs); err != nil {
		s.log.Error("saving preferences", "user", s.user, "err", err)
		s.printf("\nCould not save your preferences.\n")
		return nil
	}

	s.printf("\nPreferences saved successfully!\n")
	return nil
}

// recommend scores the catalog for the current user and keeps the top batch
// for rating.
func (s *Session) recommend() {
	s.header("TRAVEL RECOMMENDATIONS")

	prefs, ok := s.accounts.Preferences(s.user)
	if !ok {
		s.printf("Please set your preferences first!\n")
		return
	}

	season := capitalize(string(prefs.Season))
	s.printf("\nSearching for %s weather options (for %s travel)...\n\n", prefs.Season.Weather(), season)

	ledger := s.accounts.Ledger()
	recs := recommend.Score(s.catalog.All(), prefs, ledger, s.user)
	s.log.Debug("scored catalog", "user", s.user, "matches", len(recs))
	if len(recs) == 0 {
		s.printf("\nNo destinations match your criteria. Try adjusting preferences.\n")
		return
	}

	s.last = recommend.Top(recs, s.topN)

	s.header("TOP RECOMMENDATIONS")
	s.printf("\n")
	for i, r := range s.last {
		s.printf("%d. %s (%s)\n", i+1, r.Name, r.Location)
		s.printf("   Match Score: %d%%\n", r.Score)
		s.printf("   Price: $%d\n", r.Price)
		if mean, count := ledger.Average(r.DestinationID); count > 0 {
			s.printf("   Rating: %.1f/5\n", mean)
		}
		weather := "Good"
		if r.WeatherMatch {
			weather = "Ideal"
		}
		s.printf("   Weather: %s for %s\n", weather, season)
		s.printf("   Activities: %s\n", strings.Join(r.MatchedActivities, ", "))
		cuisines := "-"
		if len(r.MatchedCuisines) > 0 {
			cuisines = strings.Join(r.MatchedCuisines, ", ")
		}
		s.printf("   Cuisines: %s\n", cuisines)
		s.printf("   Accommodation: %s\n\n", strings.Join(r.Accommodation, ", "))
	}
}

// rate asks for one destination of the last batch and a 1-5 rating.
func (s *Session) rate(ctx context.Context) error {
	s.header("RATE A DESTINATION")

	if len(s.last) == 0 {
		s.printf("No recent recommendations to rate. Please get recommendations first.\n")
		return nil
	}

	s.printf("Available destinations to rate:\n")
	for _, r := range s.last {
		s.printf("%s: %s (%s)\n", r.DestinationID, r.Name, r.Location)
	}

	recent := recommend.IDs(s.last)
	var destID string
	for {
		id, err := s.prompt(ctx, "\nEnter destination ID to rate: ")
		if err != nil {
			return err
		}
		if slices.Contains(recent, id) {
			destID = id
			break
		}
		s.printf("Invalid destination ID! Please choose from your recent recommendations.\n")
	}

	for {
		answer, err := s.prompt(ctx, "Your rating (1-5 stars): ")
		if err != nil {
			return err
		}
		value, convErr := strconv.Atoi(answer)
		if convErr != nil {
			s.printf("Please enter a number between 1-5\n")
			continue
		}

		err = s.accounts.Rate(ctx, s.user, destID, value, recent)
		switch {
		case err == nil:
			s.printf("Rating saved successfully!\n")
			return nil
		case errors.Is(err, rating.ErrInvalidRating):
			s.printf("Please enter a number between 1-5\n")
		default:
			s.log.Error("saving rating", "user", s.user, "destination", destID, "err", err)
			s.printf("Could not save your rating.\n")
			return nil
		}
	}
}
