package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// ErrDuplicateName is reported when a category with the same name already
// exists; names are unique case-sensitively at the database level.
var ErrDuplicateName = errors.New("category with this name already exists")

func Fetch(ctx context.Context, db sqlx.ExtContext, id string) (Category, error) {
	const q = `SELECT * FROM categories WHERE category_id = $1`

	var c Category
	if err := sqlx.GetContext(ctx, db, &c, q, id); err != nil {
		return Category{}, fmt.Errorf("selecting category[%s]: %w", id, err)
	}

	return c, nil
}

func FetchActive(ctx context.Context, db sqlx.ExtContext) ([]Category, error) {
	const q = `SELECT * FROM categories WHERE is_active ORDER BY sort_order ASC`

	cs := []Category{}
	if err := sqlx.SelectContext(ctx, db, &cs, q); err != nil {
		return nil, fmt.Errorf("selecting active categories: %w", err)
	}

	return cs, nil
}

func FetchAll(ctx context.Context, db sqlx.ExtContext) ([]Category, error) {
	const q = `SELECT * FROM categories ORDER BY sort_order ASC`

	cs := []Category{}
	if err := sqlx.SelectContext(ctx, db, &cs, q); err != nil {
		return nil, fmt.Errorf("selecting categories: %w", err)
	}

	return cs, nil
}

func Create(ctx context.Context, db sqlx.ExtContext, c Category) error {
	const q = `
	INSERT INTO categories
		(category_id, name, description, is_active, sort_order, created_at, updated_at)
	VALUES
		(:category_id, :name, :description, :is_active, :sort_order, :created_at, :updated_at)`

	if _, err := sqlx.NamedExecContext(ctx, db, q, c); err != nil {
		var pqe *pq.Error
		if errors.As(err, &pqe) && pqe.Code == "23505" {
			return ErrDuplicateName
		}
		return fmt.Errorf("inserting category: %w", err)
	}

	return nil
}

func Update(ctx context.Context, db sqlx.ExtContext, c Category) error {
	const q = `
	UPDATE categories SET
		name = :name,
		description = :description,
		is_active = :is_active,
		sort_order = :sort_order,
		updated_at = :updated_at
	WHERE category_id = :category_id`

	if _, err := sqlx.NamedExecContext(ctx, db, q, c); err != nil {
		var pqe *pq.Error
		if errors.As(err, &pqe) && pqe.Code == "23505" {
			return ErrDuplicateName
		}
		return fmt.Errorf("updating category[%s]: %w", c.ID, err)
	}

	return nil
}

func Delete(ctx context.Context, db sqlx.ExtContext, id string) error {
	const q = `DELETE FROM categories WHERE category_id = $1`

	if _, err := db.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("deleting category[%s]: %w", id, err)
	}

	return nil
}
