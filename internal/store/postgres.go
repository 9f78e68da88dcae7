package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TejaswiBhavani/EVStockMaster/internal/contracts"
)

// DemandRepository persists the demand history in Postgres.
type DemandRepository struct {
	pool *pgxpool.Pool
}

// NewDemandRepository creates a new demand repository.
func NewDemandRepository(pool *pgxpool.Pool) *DemandRepository {
	return &DemandRepository{pool: pool}
}

// EnsureSchema creates the demand table when it is missing.
func (r *DemandRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS parts_demand (
			part_name TEXT NOT NULL,
			demand_date DATE NOT NULL,
			demand INTEGER NOT NULL,
			lead_time_days INTEGER NOT NULL,
			PRIMARY KEY (part_name, demand_date)
		)
	`
	_, err := r.pool.Exec(ctx, query)
	return err
}

// All retrieves the full history ordered by part then date.
func (r *DemandRepository) All(ctx context.Context) ([]contracts.DemandRecord, error) {
	query := `
		SELECT part_name, demand_date, demand, lead_time_days
		FROM parts_demand
		ORDER BY part_name, demand_date ASC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Part retrieves one part's history ordered by date.
func (r *DemandRepository) Part(ctx context.Context, partName string) ([]contracts.DemandRecord, error) {
	query := `
		SELECT part_name, demand_date, demand, lead_time_days
		FROM parts_demand
		WHERE part_name = $1
		ORDER BY demand_date ASC
	`
	rows, err := r.pool.Query(ctx, query, partName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// Parts retrieves the distinct part names.
func (r *DemandRepository) Parts(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT part_name FROM parts_demand ORDER BY part_name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var parts []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, rows.Err()
}

// ReplaceAll swaps the stored dataset for a new one in a single
// transaction.
func (r *DemandRepository) ReplaceAll(ctx context.Context, records []contracts.DemandRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `TRUNCATE parts_demand`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	query := `
		INSERT INTO parts_demand (part_name, demand_date, demand, lead_time_days)
		VALUES ($1, $2, $3, $4)
	`
	for _, rec := range records {
		if _, err := tx.Exec(ctx, query, rec.PartName, rec.Date, rec.Demand, rec.LeadTime); err != nil {
			return fmt.Errorf("insert %s/%s: %w", rec.PartName, rec.Date.Format("2006-01-02"), err)
		}
	}

	return tx.Commit(ctx)
}

func scanRecords(rows pgx.Rows) ([]contracts.DemandRecord, error) {
	var records []contracts.DemandRecord
	for rows.Next() {
		var rec contracts.DemandRecord
		if err := rows.Scan(&rec.PartName, &rec.Date, &rec.Demand, &rec.LeadTime); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
