package database

import (
	"context"
	_ "embed"
	"fmt"
	"time"
)

//go:embed schema.sql
var schemaSQL string

// Migrate creates the movies and bookings tables when they do not exist yet.
func Migrate(ctx context.Context, db PgxIface) error {
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

type seedMovie struct {
	title          string
	description    *string
	duration       int
	showtime       time.Time
	price          float64
	availableSeats int
}

func strPtr(s string) *string { return &s }

// Seed inserts a small catalogue of movies when the movies table is empty.
// It reports how many rows were inserted.
func Seed(ctx context.Context, db PgxIface) (int, error) {
	var count int64
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	day := time.Now().UTC().Truncate(24 * time.Hour).Add(24 * time.Hour)
	movies := []seedMovie{
		{"The Shawshank Redemption", strPtr("Two imprisoned men bond over a number of years."), 142, day.Add(18 * time.Hour), 9.50, 50},
		{"The Godfather", strPtr("The aging patriarch of an organized crime dynasty transfers control to his son."), 175, day.Add(20 * time.Hour), 10.00, 40},
		{"The Dark Knight", strPtr("Batman faces the Joker, a criminal mastermind."), 152, day.Add(21 * time.Hour), 11.25, 60},
		{"Pulp Fiction", nil, 154, day.Add(22 * time.Hour), 8.75, 30},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, m := range movies {
		_, err := tx.Exec(ctx, `
			INSERT INTO movies (title, description, duration_minutes, showtime, price, available_seats)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, m.title, m.description, m.duration, m.showtime, m.price, m.availableSeats)
		if err != nil {
			return 0, fmt.Errorf("seed movie %q: %w", m.title, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit seed: %w", err)
	}

	return len(movies), nil
}
