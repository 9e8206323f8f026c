package persistence

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// RunSeed loads the demo dataset the dashboard expects. It is a no-op when
// any user already exists.
//
// The seeded user rows carry legacy plaintext credentials on purpose: they
// exercise the pre-hashing migration path in the password verifier. Accounts
// created through the register endpoint are always bcrypt-hashed.
func RunSeed(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if pool == nil {
		logger.Warn("no postgres pool available; skipping seed")
		return nil
	}

	var userCount int64
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		return fmt.Errorf("seed precheck: %w", err)
	}
	if userCount > 0 {
		logger.Info("seed skipped; users already present")
		return nil
	}

	var adminID, staffID int64
	if err := pool.QueryRow(ctx, `
        INSERT INTO users (email, password, role) VALUES ($1,$2,$3) RETURNING id`,
		"admin@leaselink.com", "hashed_password_123", "ADMIN").Scan(&adminID); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if _, err := pool.Exec(ctx, `
        INSERT INTO users (email, password, role) VALUES ($1,$2,$3)`,
		"manager@leaselink.com", "hashed_password_456", "MANAGER"); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := pool.QueryRow(ctx, `
        INSERT INTO users (email, password, role) VALUES ($1,$2,$3) RETURNING id`,
		"staff@leaselink.com", "hashed_password_789", "STAFF").Scan(&staffID); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	var propertyA, propertyB int64
	if err := pool.QueryRow(ctx, `
        INSERT INTO properties (name, address, city, state, zip)
        VALUES ('Sunset Villas', '123 Main St', 'San Antonio', 'TX', '78249') RETURNING id`).Scan(&propertyA); err != nil {
		return fmt.Errorf("seed properties: %w", err)
	}
	if err := pool.QueryRow(ctx, `
        INSERT INTO properties (name, address, city, state, zip)
        VALUES ('Riverwalk Lofts', '500 Riverwalk Ave', 'San Antonio', 'TX', '78205') RETURNING id`).Scan(&propertyB); err != nil {
		return fmt.Errorf("seed properties: %w", err)
	}

	var unit101, unit201 int64
	if err := pool.QueryRow(ctx, `
        INSERT INTO units (property_id, unit_number, status, beds, baths, sqft)
        VALUES ($1, '101', 'OCCUPIED', 2, 1, 850) RETURNING id`, propertyA).Scan(&unit101); err != nil {
		return fmt.Errorf("seed units: %w", err)
	}
	if _, err := pool.Exec(ctx, `
        INSERT INTO units (property_id, unit_number, status, beds, baths, sqft)
        VALUES ($1, '102', 'VACANT', 1, 1, 650)`, propertyA); err != nil {
		return fmt.Errorf("seed units: %w", err)
	}
	if err := pool.QueryRow(ctx, `
        INSERT INTO units (property_id, unit_number, status, beds, baths, sqft)
        VALUES ($1, '201', 'VACANT', 1, 1, 700) RETURNING id`, propertyB).Scan(&unit201); err != nil {
		return fmt.Errorf("seed units: %w", err)
	}

	var tenant1 int64
	if err := pool.QueryRow(ctx, `
        INSERT INTO tenants (name, email, phone, unit_id)
        VALUES ('John Doe', 'john.doe@email.com', '210-555-0101', $1) RETURNING id`, unit101).Scan(&tenant1); err != nil {
		return fmt.Errorf("seed tenants: %w", err)
	}
	if _, err := pool.Exec(ctx, `
        INSERT INTO tenants (name, email, phone, unit_id)
        VALUES ('Jane Smith', 'jane.smith@email.com', '210-555-0102', $1)`, unit201); err != nil {
		return fmt.Errorf("seed tenants: %w", err)
	}

	var ticket1 int64
	if err := pool.QueryRow(ctx, `
        INSERT INTO tickets (unit_id, tenant_id, title, description, status, priority, assigned_to_id)
        VALUES ($1, $2, 'Leaking kitchen faucet', 'Dripping constantly for two days', 'OPEN', 'HIGH', $3)
        RETURNING id`, unit101, tenant1, staffID).Scan(&ticket1); err != nil {
		return fmt.Errorf("seed tickets: %w", err)
	}
	if _, err := pool.Exec(ctx, `
        INSERT INTO comments (ticket_id, author_id, body)
        VALUES ($1, $2, 'Scheduled plumber for tomorrow morning')`, ticket1, staffID); err != nil {
		return fmt.Errorf("seed comments: %w", err)
	}

	logger.Info("seed data loaded", zap.Int64("admin_user_id", adminID))
	return nil
}
