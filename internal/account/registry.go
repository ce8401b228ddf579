// Package account keeps registered users, their preferences and their
// ratings, and persists them through a Store after every change.
package account

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/neexbeast/travel-companion/internal/preference"
	"github.com/neexbeast/travel-companion/internal/rating"
)

var (
	ErrEmptyUsername      = errors.New("username cannot be empty")
	ErrUserExists         = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials or user doesn't exist")
	ErrUnknownUser        = errors.New("unknown user")
)

// User is one persisted account.
type User struct {
	PasswordHash string                  `json:"password"`
	Preferences  *preference.Preferences `json:"preferences"`
	Ratings      map[string]int          `json:"ratings"`
}

// Users maps username to account.
type Users map[string]*User

// Store loads and saves the full users mapping. Implementations return an
// empty mapping, not an error, when the source is missing or unreadable.
type Store interface {
	Load(ctx context.Context) (Users, error)
	Save(ctx context.Context, users Users) error
}

// Registry is the in-memory view of all accounts for one session.
type Registry struct {
	store  Store
	users  Users
	ledger rating.Ledger
	log    *slog.Logger
}

// Open loads all accounts from store. A load failure is logged and the
// session starts with no accounts.
func Open(ctx context.Context, store Store, log *slog.Logger) *Registry {
	users, err := store.Load(ctx)
	if err != nil {
		log.Warn("could not load users, starting fresh", "err", err)
		users = nil
	}
	if users == nil {
		users = Users{}
	}

	r := &Registry{store: store, users: users, ledger: rating.Ledger{}, log: log}
	for name, u := range users {
		if u == nil {
			log.Warn("dropping empty user record", "user", name)
			delete(users, name)
			continue
		}
		sanitize(u, name, log)
		r.ledger[name] = u.Ratings
	}

	log.Debug("users loaded", "count", len(users))
	return r
}

// sanitize brings a loaded record up to the invariants enforced on input:
// ratings outside [MinRating, MaxRating] are dropped and preferences are
// normalized, or cleared when they no longer validate.
func sanitize(u *User, name string, log *slog.Logger) {
	if u.Ratings == nil {
		u.Ratings = map[string]int{}
	}
	for dest, v := range u.Ratings {
		if v < rating.MinRating || v > rating.MaxRating {
			log.Warn("dropping out-of-range rating", "user", name, "destination", dest, "rating", v)
			delete(u.Ratings, dest)
		}
	}

	if u.Preferences == nil {
		return
	}
	p := u.Preferences.Normalize()
	if err := p.Validate(); err != nil {
		log.Warn("clearing invalid preferences", "user", name, "err", err)
		u.Preferences = nil
		return
	}
	u.Preferences = &p
}

// Register creates a new account. The account stays in memory even when the
// save fails; the returned error reports only the persistence failure.
func (r *Registry) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}
	if _, ok := r.users[username]; ok {
		return ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	u := &User{PasswordHash: string(hash), Ratings: map[string]int{}}
	r.users[username] = u
	r.ledger[username] = u.Ratings

	r.log.Info("user registered", "user", username)
	return r.save(ctx)
}

// Exists reports whether username is registered.
func (r *Registry) Exists(username string) bool {
	_, ok := r.users[strings.TrimSpace(username)]
	return ok
}

// Authenticate checks a username/password pair. A legacy SHA-256 hash is
// replaced with a bcrypt hash on success.
func (r *Registry) Authenticate(ctx context.Context, username, password string) error {
	u, ok := r.users[strings.TrimSpace(username)]
	if !ok {
		return ErrInvalidCredentials
	}

	if isLegacyHash(u.PasswordHash) {
		sum := sha256.Sum256([]byte(password))
		if subtle.ConstantTimeCompare([]byte(hex.EncodeToString(sum[:])), []byte(strings.ToLower(u.PasswordHash))) != 1 {
			return ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashing password: %w", err)
		}
		u.PasswordHash = string(hash)
		r.log.Info("upgraded legacy password hash", "user", username)
		if err := r.save(ctx); err != nil {
			r.log.Warn("saving upgraded password hash failed", "user", username, "err", err)
		}
		return nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Preferences returns the stored preferences of username, if any.
func (r *Registry) Preferences(username string) (preference.Preferences, bool) {
	u, ok := r.users[username]
	if !ok || u.Preferences == nil {
		return preference.Preferences{}, false
	}
	return *u.Preferences, true
}

// SetPreferences normalizes and validates p and replaces the user's
// preferences with it.
func (r *Registry) SetPreferences(ctx context.Context, username string, p preference.Preferences) error {
	u, ok := r.users[username]
	if !ok {
		return ErrUnknownUser
	}

	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return err
	}

	u.Preferences = &p
	return r.save(ctx)
}

// Ledger returns every user's ratings. The returned ledger is live: it
// reflects later calls to Rate.
func (r *Registry) Ledger() rating.Ledger {
	return r.ledger
}

// Rate records username's rating of destID. recent is the destination IDs of
// the user's last recommendation batch. A recorded rating stays in memory
// even when the save fails.
func (r *Registry) Rate(ctx context.Context, username, destID string, value int, recent []string) error {
	if _, ok := r.users[username]; !ok {
		return ErrUnknownUser
	}
	if err := r.ledger.Record(username, destID, value, recent); err != nil {
		return err
	}

	r.log.Info("destination rated", "user", username, "destination", destID, "rating", value)
	return r.save(ctx)
}

func (r *Registry) save(ctx context.Context) error {
	if err := r.store.Save(ctx, r.users); err != nil {
		return fmt.Errorf("saving users: %w", err)
	}
	return nil
}

// isLegacyHash recognizes the unsalted hex SHA-256 digests older user files
// contain.
func isLegacyHash(h string) bool {
	if len(h) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(h)
	return err == nil
}
