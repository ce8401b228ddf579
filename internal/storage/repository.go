package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/neexbeast/travel-companion/internal/account"
	"github.com/neexbeast/travel-companion/internal/preference"
)

// Querier abstracts the subset of pgxpool.Pool used by PostgresStore.
// This allows injection of a mock in tests.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// PostgresStore keeps one row per user in the travel_users table.
type PostgresStore struct {
	q   Querier
	log *slog.Logger
}

// NewPostgresStore constructs a PostgresStore backed by the given pool.
func NewPostgresStore(pool *pgxpool.Pool, log *slog.Logger) *PostgresStore {
	return &PostgresStore{q: pool, log: log}
}

// NewPostgresStoreWithQuerier constructs a PostgresStore with a custom Querier (for tests).
func NewPostgresStoreWithQuerier(q Querier, log *slog.Logger) *PostgresStore {
	return &PostgresStore{q: q, log: log}
}

// Load reads every user. Rows whose JSON columns cannot be decoded are logged
// and skipped.
func (s *PostgresStore) Load(ctx context.Context) (account.Users, error) {
	const q = `
		SELECT username, password_hash, preferences, ratings
		FROM travel_users
		ORDER BY username
	`

	rows, err := s.q.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("querying users: %w", err)
	}
	defer rows.Close()

	users := account.Users{}
	for rows.Next() {
		var name, hash string
		var prefsJSON, ratingsJSON []byte

		if err := rows.Scan(&name, &hash, &prefsJSON, &ratingsJSON); err != nil {
			return nil, fmt.Errorf("scanning user row: %w", err)
		}

		u := &account.User{PasswordHash: hash, Ratings: map[string]int{}}
		if len(prefsJSON) > 0 && string(prefsJSON) != "null" {
			var p preference.Preferences
			if err := json.Unmarshal(prefsJSON, &p); err != nil {
				s.log.Warn("skipping user with unreadable preferences", "user", name, "err", err)
				continue
			}
			u.Preferences = &p
		}
		if len(ratingsJSON) > 0 {
			if err := json.Unmarshal(ratingsJSON, &u.Ratings); err != nil {
				s.log.Warn("skipping user with unreadable ratings", "user", name, "err", err)
				continue
			}
		}
		users[name] = u
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating user rows: %w", err)
	}

	return users, nil
}

// Save upserts every user in a single transaction.
func (s *PostgresStore) Save(ctx context.Context, users account.Users) error {
	const q = `
		INSERT INTO travel_users (username, password_hash, preferences, ratings, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (username) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    preferences   = EXCLUDED.preferences,
		    ratings       = EXCLUDED.ratings,
		    updated_at    = EXCLUDED.updated_at
	`

	err := runInTx(ctx, s.q, func(tx pgx.Tx) error {
		for name, u := range users {
			var prefsJSON []byte
			if u.Preferences != nil {
				b, err := json.Marshal(u.Preferences)
				if err != nil {
					return fmt.Errorf("marshaling preferences for user %s: %w", name, err)
				}
				prefsJSON = b
			}

			ratings := u.Ratings
			if ratings == nil {
				ratings = map[string]int{}
			}
			ratingsJSON, err := json.Marshal(ratings)
			if err != nil {
				return fmt.Errorf("marshaling ratings for user %s: %w", name, err)
			}

			if _, err := tx.Exec(ctx, q, name, u.PasswordHash, prefsJSON, ratingsJSON); err != nil {
				return fmt.Errorf("upserting user %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("saving users: %w", err)
	}

	return nil
}
