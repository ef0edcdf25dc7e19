package postgres

import (
	"context"
	"errors"
	"strings"

	"go-consulting-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type discountRepo struct {
	db *pgxpool.Pool
}

func NewDiscountRepository(db *pgxpool.Pool) domain.DiscountRepository {
	return &discountRepo{db: db}
}

func (r *discountRepo) GetActiveByCode(ctx context.Context, code string) (*domain.DiscountCode, error) {
	query := `
		SELECT id, code, discount_type, discount_value, is_active,
			valid_from, valid_until, max_uses, current_uses,
			applicable_service_ids, minimum_purchase_cents
		FROM discount_codes
		WHERE code = $1 AND is_active = true`

	var d domain.DiscountCode
	err := r.db.QueryRow(ctx, query, strings.ToUpper(code)).Scan(
		&d.ID, &d.Code, &d.DiscountType, &d.DiscountValue, &d.IsActive,
		&d.ValidFrom, &d.ValidUntil, &d.MaxUses, &d.CurrentUses,
		&d.ApplicableServiceIDs, &d.MinimumPurchaseCents,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *discountRepo) IncrementUse(ctx context.Context, id string) error {
	query := `UPDATE discount_codes SET current_uses = current_uses + 1 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
