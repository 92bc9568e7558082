package inquiry

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/mohteeflair/storefront/internal/dbx"
)

// SQLiteRepository persists inquiries in the local database. Schema lives in
// the kv package's embedded migrations.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Create inserts the inquiry header and its lines in one transaction.
func (r *SQLiteRepository) Create(ctx context.Context, inq *Inquiry) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO inquiries (id, address, total, created_at) VALUES (?, ?, ?, ?)`,
			inq.ID, inq.Address, inq.Total, inq.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert inquiry: %w", err)
		}

		for _, l := range inq.Lines {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO inquiry_lines (inquiry_id, product_id, name, variant, unit_price, quantity)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				inq.ID, l.ProductID, l.Name, l.Variant, l.UnitPrice, l.Quantity)
			if err != nil {
				return fmt.Errorf("failed to insert inquiry line: %w", err)
			}
		}
		return nil
	})
}

// GetAll lists inquiries newest first with their lines.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]Inquiry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, address, total, created_at FROM inquiries ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select inquiries: %w", err)
	}
	defer rows.Close()

	var result []Inquiry
	index := map[string]int{}
	for rows.Next() {
		var inq Inquiry
		if err := rows.Scan(&inq.ID, &inq.Address, &inq.Total, &inq.CreatedAt); err != nil {
			return nil, err
		}
		index[inq.ID] = len(result)
		result = append(result, inq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	lineRows, err := r.db.QueryContext(ctx,
		`SELECT inquiry_id, product_id, name, variant, unit_price, quantity FROM inquiry_lines`)
	if err != nil {
		return nil, fmt.Errorf("failed to select inquiry lines: %w", err)
	}
	defer lineRows.Close()

	for lineRows.Next() {
		var id string
		var l Line
		if err := lineRows.Scan(&id, &l.ProductID, &l.Name, &l.Variant, &l.UnitPrice, &l.Quantity); err != nil {
			return nil, err
		}
		if i, ok := index[id]; ok {
			result[i].Lines = append(result[i].Lines, l)
		}
	}
	if err := lineRows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
