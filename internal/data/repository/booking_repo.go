package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Create reserves booking.SeatsBooked seats on the movie and inserts the booking
	// in one transaction, filling in ID and CreatedAt. It returns ErrMovieNotFound or
	// ErrInsufficientSeats without touching the store when the reservation cannot be made.
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id int64) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Booking, error)
	FindByCustomerName(ctx context.Context, name string) ([]*entity.Booking, error)
}

const bookingColumns = `id, movie_id, customer_name, seats_booked, created_at`

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin booking transaction", zap.Error(err))
		return fmt.Errorf("begin booking tx: %w", err)
	}
	defer tx.Rollback(ctx)

	// The conditional decrement row-locks the movie, so competing bookings
	// for the same movie queue behind each other and re-check the seat count.
	var remaining int
	err = tx.QueryRow(ctx, `
		UPDATE movies
		SET available_seats = available_seats - $2
		WHERE id = $1 AND available_seats >= $2
		RETURNING available_seats
	`, booking.MovieID, booking.SeatsBooked).Scan(&remaining)

	if errors.Is(err, pgx.ErrNoRows) {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM movies WHERE id = $1)`, booking.MovieID).Scan(&exists); err != nil {
			r.log.Error("Failed to check movie existence",
				zap.Error(err),
				zap.Int64("movie_id", booking.MovieID),
			)
			return fmt.Errorf("check movie %d: %w", booking.MovieID, err)
		}
		if !exists {
			return ErrMovieNotFound
		}
		return ErrInsufficientSeats
	}
	if err != nil {
		r.log.Error("Failed to reserve seats",
			zap.Error(err),
			zap.Int64("movie_id", booking.MovieID),
			zap.Int("seats_booked", booking.SeatsBooked),
		)
		return fmt.Errorf("reserve seats on movie %d: %w", booking.MovieID, err)
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (movie_id, customer_name, seats_booked)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, booking.MovieID, booking.CustomerName, booking.SeatsBooked).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.Int64("movie_id", booking.MovieID),
			zap.String("customer_name", booking.CustomerName),
		)
		return fmt.Errorf("insert booking for movie %d: %w", booking.MovieID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking", zap.Error(err), zap.Int64("movie_id", booking.MovieID))
		return fmt.Errorf("commit booking: %w", err)
	}

	r.log.Debug("Seats reserved",
		zap.Int64("booking_id", booking.ID),
		zap.Int64("movie_id", booking.MovieID),
		zap.Int("remaining_seats", remaining),
	)

	return nil
}

// FindByID returns nil, nil when the booking does not exist.
func (r *bookingRepository) FindByID(ctx context.Context, id int64) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.MovieID,
		&booking.CustomerName,
		&booking.SeatsBooked,
		&booking.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.Int64("booking_id", id),
		)
		return nil, fmt.Errorf("find booking %d: %w", id, err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings ORDER BY id ASC`
	return r.list(ctx, "find bookings", query)
}

func (r *bookingRepository) FindByMovieID(ctx context.Context, movieID int64) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE movie_id = $1 ORDER BY id ASC`
	return r.list(ctx, fmt.Sprintf("find bookings for movie %d", movieID), query, movieID)
}

func (r *bookingRepository) FindByCustomerName(ctx context.Context, name string) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE customer_name = $1 ORDER BY id ASC`
	return r.list(ctx, "find bookings for customer", query, name)
}

func (r *bookingRepository) list(ctx context.Context, op, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query bookings", zap.Error(err), zap.String("operation", op))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	bookings := make([]*entity.Booking, 0)
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.MovieID,
			&booking.CustomerName,
			&booking.SeatsBooked,
			&booking.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err), zap.String("operation", op))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return bookings, nil
}
