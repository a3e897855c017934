package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the schema; every statement is idempotent
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
			username TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			password_hash TEXT,
			role TEXT NOT NULL DEFAULT 'staff',
			login_enabled BOOLEAN NOT NULL DEFAULT true,
			allowed_projects TEXT[],
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			location TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'planned',
			start_date DATE,
			end_date DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS schedules (
			id BIGSERIAL PRIMARY KEY,
			title TEXT NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			project TEXT NOT NULL,
			attendees TEXT[] NOT NULL DEFAULT '{}',
			time_of_day TEXT,
			type TEXT,
			description TEXT,
			as_request_id BIGINT,
			created_by TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_schedules_dates ON schedules(start_date, end_date)`,
		`CREATE INDEX IF NOT EXISTS idx_schedules_project ON schedules(project)`,
		`CREATE TABLE IF NOT EXISTS as_requests (
			id BIGSERIAL PRIMARY KEY,
			project TEXT NOT NULL,
			assigned_to TEXT[] NOT NULL DEFAULT '{}',
			scheduled_visit_date DATE,
			scheduled_visit_time TEXT,
			description TEXT,
			status TEXT NOT NULL DEFAULT 'open',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS construction_payments (
			id BIGSERIAL PRIMARY KEY,
			project TEXT NOT NULL,
			total_amount BIGINT NOT NULL DEFAULT 0,
			vat_type TEXT NOT NULL DEFAULT 'included',
			vat_percentage INT NOT NULL DEFAULT 10,
			vat_amount BIGINT NOT NULL DEFAULT 0,
			expected_contract DATE,
			expected_start DATE,
			expected_middle DATE,
			expected_final DATE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS payment_entries (
			id BIGSERIAL PRIMARY KEY,
			payment_id BIGINT NOT NULL REFERENCES construction_payments(id) ON DELETE CASCADE,
			type TEXT NOT NULL,
			amount BIGINT NOT NULL DEFAULT 0,
			received_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS teams (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			members TEXT[] NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS user_preferences (
			user_id uuid NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			key TEXT NOT NULL,
			value JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_id, key)
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id BIGSERIAL PRIMARY KEY,
			category TEXT NOT NULL,
			name TEXT NOT NULL,
			vendor TEXT,
			unit_price BIGINT NOT NULL DEFAULT 0,
			unit TEXT NOT NULL DEFAULT 'EA',
			image_url TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS estimates (
			id BIGSERIAL PRIMARY KEY,
			project TEXT NOT NULL,
			vat_type TEXT NOT NULL DEFAULT 'separate',
			subtotal BIGINT NOT NULL DEFAULT 0,
			vat_amount BIGINT NOT NULL DEFAULT 0,
			grand_total BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS execution_entries (
			id BIGSERIAL PRIMARY KEY,
			project TEXT NOT NULL,
			entry_date DATE NOT NULL,
			category TEXT NOT NULL,
			vendor TEXT,
			description TEXT,
			amount BIGINT NOT NULL DEFAULT 0,
			payment_method TEXT,
			created_by TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ
		)`,
		`CREATE INDEX IF NOT EXISTS idx_execution_entries_project ON execution_entries(project)`,
		`CREATE TABLE IF NOT EXISTS estimate_items (
			id BIGSERIAL PRIMARY KEY,
			estimate_id BIGINT NOT NULL REFERENCES estimates(id) ON DELETE CASCADE,
			product_id BIGINT,
			name TEXT NOT NULL,
			quantity DOUBLE PRECISION NOT NULL DEFAULT 1,
			unit_price BIGINT NOT NULL DEFAULT 0,
			total BIGINT NOT NULL DEFAULT 0
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
