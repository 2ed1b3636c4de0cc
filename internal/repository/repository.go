package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"company-export/internal/model"
)

const companyColumns = "id, name, country, industry, website, traded_as, number_of_employees, revenue"

// resultLimit caps every name lookup; exports never return more than
// ten companies.
const resultLimit = 10

type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// FindByNameExact matches the full company name, case-insensitively.
func (r *CompanyRepository) FindByNameExact(ctx context.Context, name string) ([]model.Company, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM companies WHERE LOWER(name) = LOWER(?) LIMIT %d",
		companyColumns, resultLimit,
	)

	return r.queryCompanies(ctx, query, name)
}

// FindByNameContains matches any company whose name contains the given
// text, case-insensitively. Used as the fallback when the exact match
// comes up empty.
func (r *CompanyRepository) FindByNameContains(ctx context.Context, name string) ([]model.Company, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM companies WHERE INSTR(LOWER(name), LOWER(?)) > 0 LIMIT %d",
		companyColumns, resultLimit,
	)

	return r.queryCompanies(ctx, query, name)
}

func (r *CompanyRepository) queryCompanies(ctx context.Context, query string, args ...any) ([]model.Company, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("company query failed: %w", err)
	}
	defer rows.Close()

	var companies []model.Company
	for rows.Next() {
		var (
			c         model.Company
			country   sql.NullString
			industry  sql.NullString
			website   sql.NullString
			tradedAs  sql.NullString
			employees sql.NullInt64
			revenue   sql.NullString
		)

		err := rows.Scan(&c.ID, &c.Name, &country, &industry, &website, &tradedAs, &employees, &revenue)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}

		c.Country = country.String
		c.Industry = industry.String
		c.Website = website.String
		c.TradedAs = tradedAs.String
		c.NumberOfEmployees = employees.Int64
		c.Revenue = revenue.String

		companies = append(companies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return companies, nil
}

// EstimatedCount reports how many companies the database holds.
func (r *CompanyRepository) EstimatedCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM companies").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("company count failed: %w", err)
	}

	return count, nil
}

// Ping verifies the database connection is still alive.
func (r *CompanyRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping error: %w", err)
	}
	return nil
}

// InsertIngestLog stores one received payload under the given id.
func (r *CompanyRepository) InsertIngestLog(ctx context.Context, id string, receivedAt time.Time, payload []byte) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO ingest_logs (id, received_at, payload) VALUES (?, ?, ?)",
		id, receivedAt.UTC().Format(time.RFC3339Nano), string(payload),
	)
	if err != nil {
		return fmt.Errorf("ingest insert failed: %w", err)
	}

	return nil
}
