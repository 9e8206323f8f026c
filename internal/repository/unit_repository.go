package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/leaselink/leaselink/internal/domain"
)

// UnitRepository encapsulates unit persistence.
type UnitRepository interface {
	Create(ctx context.Context, unit *domain.Unit) error
	GetByID(ctx context.Context, id int64) (*domain.Unit, error)
	List(ctx context.Context, propertyID *int64) ([]domain.Unit, error)
}

type unitRepository struct {
	pool *pgxpool.Pool
}

// NewUnitRepository instantiates the repository.
func NewUnitRepository(pool *pgxpool.Pool) UnitRepository {
	return &unitRepository{pool: pool}
}

func (r *unitRepository) Create(ctx context.Context, unit *domain.Unit) error {
	const query = `
        INSERT INTO units (property_id, unit_number, beds, baths, sqft, status)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		unit.PropertyID,
		unit.UnitNumber,
		unit.Beds,
		unit.Baths,
		unit.Sqft,
		unit.Status,
	).Scan(&unit.ID, &unit.CreatedAt, &unit.UpdatedAt)
}

func (r *unitRepository) GetByID(ctx context.Context, id int64) (*domain.Unit, error) {
	const query = `
        SELECT id, property_id, unit_number, beds, baths, sqft, status, created_at, updated_at
        FROM units WHERE id=$1`
	var unit domain.Unit
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&unit.ID,
		&unit.PropertyID,
		&unit.UnitNumber,
		&unit.Beds,
		&unit.Baths,
		&unit.Sqft,
		&unit.Status,
		&unit.CreatedAt,
		&unit.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) List(ctx context.Context, propertyID *int64) ([]domain.Unit, error) {
	const base = `
        SELECT id, property_id, unit_number, beds, baths, sqft, status, created_at, updated_at
        FROM units`

	var (
		rows pgx.Rows
		err  error
	)
	if propertyID != nil {
		rows, err = r.pool.Query(ctx, base+` WHERE property_id=$1 ORDER BY id`, *propertyID)
	} else {
		rows, err = r.pool.Query(ctx, base+` ORDER BY id`)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Unit
	for rows.Next() {
		var unit domain.Unit
		if err := rows.Scan(
			&unit.ID,
			&unit.PropertyID,
			&unit.UnitNumber,
			&unit.Beds,
			&unit.Baths,
			&unit.Sqft,
			&unit.Status,
			&unit.CreatedAt,
			&unit.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, unit)
	}
	return result, rows.Err()
}
