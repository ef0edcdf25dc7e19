package domain

import (
	"context"
	"time"
)

// Discount types
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// DiscountCode is a promotional code applicable to bookings
type DiscountCode struct {
	ID                   string     `json:"id"`
	Code                 string     `json:"code"`
	DiscountType         string     `json:"discount_type"`
	DiscountValue        int        `json:"discount_value"` // percent or cents
	IsActive             bool       `json:"is_active"`
	ValidFrom            time.Time  `json:"valid_from"`
	ValidUntil           *time.Time `json:"valid_until,omitempty"`
	MaxUses              *int       `json:"max_uses,omitempty"`
	CurrentUses          int        `json:"current_uses"`
	ApplicableServiceIDs []string   `json:"applicable_service_ids,omitempty"`
	MinimumPurchaseCents *int       `json:"minimum_purchase_cents,omitempty"`
}

// ValidFor reports whether the code can be applied to the given service at
// the given price right now.
func (d *DiscountCode) ValidFor(serviceTypeID string, priceCents int, now time.Time) bool {
	if !d.IsActive || now.Before(d.ValidFrom) {
		return false
	}
	if d.ValidUntil != nil && now.After(*d.ValidUntil) {
		return false
	}
	if d.MaxUses != nil && d.CurrentUses >= *d.MaxUses {
		return false
	}
	if len(d.ApplicableServiceIDs) > 0 {
		found := false
		for _, id := range d.ApplicableServiceIDs {
			if id == serviceTypeID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if d.MinimumPurchaseCents != nil && priceCents < *d.MinimumPurchaseCents {
		return false
	}
	return true
}

// Apply returns the discount amount in cents for the given price
func (d *DiscountCode) Apply(priceCents int) int {
	if d.DiscountType == DiscountPercentage {
		return int(float64(priceCents)*float64(d.DiscountValue)/100 + 0.5)
	}
	if d.DiscountValue > priceCents {
		return priceCents
	}
	return d.DiscountValue
}

// DiscountRepository reads and updates discount codes
type DiscountRepository interface {
	// GetActiveByCode resolves an active code (case-insensitive) or ErrNotFound
	GetActiveByCode(ctx context.Context, code string) (*DiscountCode, error)
	IncrementUse(ctx context.Context, id string) error
}
