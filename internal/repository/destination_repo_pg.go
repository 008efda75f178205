package repository

import (
	"context"

	"github.com/Domenick1991/travelgo/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DestinationRepository interface {
	List(ctx context.Context) ([]domain.Destination, error)
	Upsert(ctx context.Context, name string) error
}

type PGDestinationRepository struct {
	db *pgxpool.Pool
}

func NewDestinationRepository(db *pgxpool.Pool) DestinationRepository {
	return &PGDestinationRepository{db: db}
}

func (r *PGDestinationRepository) List(ctx context.Context) ([]domain.Destination, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM destinations ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	destinations := make([]domain.Destination, 0)
	for rows.Next() {
		var d domain.Destination
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, err
		}
		destinations = append(destinations, d)
	}
	return destinations, rows.Err()
}

func (r *PGDestinationRepository) Upsert(ctx context.Context, name string) error {
	_, err := r.db.Exec(ctx, `INSERT INTO destinations (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
	return err
}

var _ DestinationRepository = (*PGDestinationRepository)(nil)
