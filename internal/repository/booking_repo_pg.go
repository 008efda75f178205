package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/travelgo/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	GetOwned(ctx context.Context, userID, id string) (*domain.Booking, error)
	Update(ctx context.Context, booking *domain.Booking) error
	Delete(ctx context.Context, userID, id string) error
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

const bookingColumns = `id, user_id, traveler_name, passport_num, destination, flight_date, hotel_name, status, price, created_at, updated_at`

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	err := r.db.QueryRow(ctx, `INSERT INTO bookings (id, user_id, traveler_name, passport_num, destination, flight_date, hotel_name, status, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at, updated_at`,
		booking.ID, booking.UserID, booking.TravelerName, booking.PassportNum, booking.Destination,
		booking.FlightDate, booking.HotelName, booking.Status, booking.Price).
		Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		return mapPGError(err)
	}
	return nil
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID string) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id=$1 ORDER BY flight_date`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := scanBookingFields(rows, &b); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// GetOwned fetches a booking only when it belongs to userID. A booking owned by
// someone else is indistinguishable from a missing one.
func (r *PGBookingRepository) GetOwned(ctx context.Context, userID, id string) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1 AND user_id=$2`, id, userID)
	var b domain.Booking
	if err := scanBookingFields(row, &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGBookingRepository) Update(ctx context.Context, booking *domain.Booking) error {
	row := r.db.QueryRow(ctx, `UPDATE bookings
		SET traveler_name=$1, passport_num=$2, destination=$3, flight_date=$4, hotel_name=$5, status=$6, price=$7, updated_at=now()
		WHERE id=$8 AND user_id=$9
		RETURNING created_at, updated_at`,
		booking.TravelerName, booking.PassportNum, booking.Destination, booking.FlightDate,
		booking.HotelName, booking.Status, booking.Price, booking.ID, booking.UserID)
	if err := row.Scan(&booking.CreatedAt, &booking.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return mapPGError(err)
	}
	return nil
}

func (r *PGBookingRepository) Delete(ctx context.Context, userID, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id=$1 AND user_id=$2`, id, userID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanBookingFields(row pgx.Row, b *domain.Booking) error {
	return row.Scan(&b.ID, &b.UserID, &b.TravelerName, &b.PassportNum, &b.Destination,
		&b.FlightDate, &b.HotelName, &b.Status, &b.Price, &b.CreatedAt, &b.UpdatedAt)
}

var _ BookingRepository = (*PGBookingRepository)(nil)
