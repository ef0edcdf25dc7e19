package postgres

import (
	"context"
	"errors"

	"go-consulting-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type serviceRepo struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) domain.ServiceRepository {
	return &serviceRepo{db: db}
}

func (r *serviceRepo) GetActiveByID(ctx context.Context, id string) (*domain.ServiceType, error) {
	query := `
		SELECT id, slug, name, COALESCE(description, ''), duration_minutes, price_cents, is_active
		FROM service_types
		WHERE id = $1 AND is_active = true`

	var st domain.ServiceType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&st.ID, &st.Slug, &st.Name, &st.Description,
		&st.DurationMinutes, &st.PriceCents, &st.IsActive,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}
