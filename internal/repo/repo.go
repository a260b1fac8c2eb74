package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// FilterProduct is one row of the filter_products table.
type FilterProduct struct {
	Code           string
	NominalSize    string
	ActualSize     string
	AirflowLs      float64
	InitialResPa   float64
	Classification string
}

// Repository is the read-only view of the catalogue table. The filters
// package loads its postgres source through it.
type Repository interface {
	ListFilterProducts(ctx context.Context) ([]FilterProduct, error)
}

var _ Repository = (*PostgresFilterRepository)(nil)

type PostgresFilterRepository struct {
	db *sql.DB
}

func NewPostgresFilterDB(db *sql.DB) *PostgresFilterRepository {
	return &PostgresFilterRepository{db: db}
}

const listQuery = `SELECT product_code, nominal_size, actual_size, airflow_ls, initial_resistance_pa, classification
FROM filter_products ORDER BY product_code`

func (r *PostgresFilterRepository) ListFilterProducts(ctx context.Context) ([]FilterProduct, error) {
	rows, err := r.db.QueryContext(ctx, listQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FilterProduct
	for rows.Next() {
		var p FilterProduct
		var class sql.NullString
		if err := rows.Scan(&p.Code, &p.NominalSize, &p.ActualSize, &p.AirflowLs, &p.InitialResPa, &class); err != nil {
			return nil, err
		}
		p.Classification = class.String
		out = append(out, p)
	}
	return out, rows.Err()
}

// ConnString adds sslmode=require unless the string already sets sslmode.
func ConnString(connStr string) string {
	if strings.Contains(connStr, "sslmode=") {
		return connStr
	}
	if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
		if strings.Contains(connStr, "?") {
			return connStr + "&sslmode=require"
		}
		return connStr + "?sslmode=require"
	}
	return connStr + " sslmode=require"
}

// InitDB opens and pings a read-only pool for the catalogue.
func InitDB(ctx context.Context, connStr string) (*sql.DB, error) {
	if connStr == "" {
		return nil, errors.New("postgres catalogue needs DATABASE_URL or catalog path")
	}
	db, err := sql.Open("postgres", ConnString(connStr))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
