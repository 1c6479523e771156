package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Log is the service's own record of a dispatched order. The WhatsApp thread
// is the customer-facing record; this row is what the admin dashboard lists.
type Log struct {
	Ref           string    `json:"ref" db:"order_ref"`
	CustomerName  string    `json:"customerName" db:"customer_name"`
	CustomerPhone string    `json:"customerPhone" db:"customer_phone"`
	CustomerEmail string    `json:"customerEmail" db:"customer_email"`
	Total         int       `json:"total" db:"total"`
	Message       string    `json:"message" db:"message"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

func Insert(ctx context.Context, db sqlx.ExtContext, l Log) error {
	const q = `
	INSERT INTO order_logs
		(order_ref, customer_name, customer_phone, customer_email, total, message, created_at)
	VALUES
		(:order_ref, :customer_name, :customer_phone, :customer_email, :total, :message, :created_at)`

	if _, err := sqlx.NamedExecContext(ctx, db, q, l); err != nil {
		return fmt.Errorf("inserting order log[%s]: %w", l.Ref, err)
	}

	return nil
}

func FetchAll(ctx context.Context, db sqlx.ExtContext) ([]Log, error) {
	const q = `SELECT * FROM order_logs ORDER BY created_at DESC`

	ls := []Log{}
	if err := sqlx.SelectContext(ctx, db, &ls, q); err != nil {
		return nil, fmt.Errorf("selecting order logs: %w", err)
	}

	return ls, nil
}
