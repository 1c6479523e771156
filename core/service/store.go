package service

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

func Fetch(ctx context.Context, db sqlx.ExtContext, id string) (Service, error) {
	const q = `SELECT * FROM services WHERE service_id = $1`

	var s Service
	if err := sqlx.GetContext(ctx, db, &s, q, id); err != nil {
		return Service{}, fmt.Errorf("selecting service[%s]: %w", id, err)
	}

	return s, nil
}

func FetchActive(ctx context.Context, db sqlx.ExtContext) ([]Service, error) {
	const q = `SELECT * FROM services WHERE is_active ORDER BY sort_order ASC`

	ss := []Service{}
	if err := sqlx.SelectContext(ctx, db, &ss, q); err != nil {
		return nil, fmt.Errorf("selecting active services: %w", err)
	}

	return ss, nil
}

func FetchAll(ctx context.Context, db sqlx.ExtContext) ([]Service, error) {
	const q = `SELECT * FROM services ORDER BY sort_order ASC`

	ss := []Service{}
	if err := sqlx.SelectContext(ctx, db, &ss, q); err != nil {
		return nil, fmt.Errorf("selecting services: %w", err)
	}

	return ss, nil
}

func Create(ctx context.Context, db sqlx.ExtContext, s Service) error {
	const q = `
	INSERT INTO services
		(service_id, title, description, image_url, is_active, sort_order, created_at, updated_at)
	VALUES
		(:service_id, :title, :description, :image_url, :is_active, :sort_order, :created_at, :updated_at)`

	if _, err := sqlx.NamedExecContext(ctx, db, q, s); err != nil {
		return fmt.Errorf("inserting service: %w", err)
	}

	return nil
}

func Update(ctx context.Context, db sqlx.ExtContext, s Service) error {
	const q = `
	UPDATE services SET
		title = :title,
		description = :description,
		image_url = :image_url,
		is_active = :is_active,
		sort_order = :sort_order,
		updated_at = :updated_at
	WHERE service_id = :service_id`

	if _, err := sqlx.NamedExecContext(ctx, db, q, s); err != nil {
		return fmt.Errorf("updating service[%s]: %w", s.ID, err)
	}

	return nil
}

func Delete(ctx context.Context, db sqlx.ExtContext, id string) error {
	const q = `DELETE FROM services WHERE service_id = $1`

	if _, err := db.ExecContext(ctx, q, id); err != nil {
		return fmt.Errorf("deleting service[%s]: %w", id, err)
	}

	return nil
}
