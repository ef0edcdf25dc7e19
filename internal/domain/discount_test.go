package domain_test

import (
	"testing"
	"time"

	"go-consulting-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func activeCode() *domain.DiscountCode {
	return &domain.DiscountCode{
		ID:            "disc-1",
		Code:          "PROMO20",
		DiscountType:  domain.DiscountPercentage,
		DiscountValue: 20,
		IsActive:      true,
		ValidFrom:     time.Now().Add(-24 * time.Hour),
	}
}

func TestDiscountValidFor(t *testing.T) {
	now := time.Now()

	t.Run("active code within window applies", func(t *testing.T) {
		assert.True(t, activeCode().ValidFor("svc-1", 50000, now))
	})

	t.Run("inactive code rejected", func(t *testing.T) {
		d := activeCode()
		d.IsActive = false
		assert.False(t, d.ValidFor("svc-1", 50000, now))
	})

	t.Run("not yet valid rejected", func(t *testing.T) {
		d := activeCode()
		d.ValidFrom = now.Add(time.Hour)
		assert.False(t, d.ValidFor("svc-1", 50000, now))
	})

	t.Run("expired rejected", func(t *testing.T) {
		d := activeCode()
		past := now.Add(-time.Minute)
		d.ValidUntil = &past
		assert.False(t, d.ValidFor("svc-1", 50000, now))
	})

	t.Run("exhausted uses rejected", func(t *testing.T) {
		d := activeCode()
		d.MaxUses = intPtr(100)
		d.CurrentUses = 100
		assert.False(t, d.ValidFor("svc-1", 50000, now))
	})

	t.Run("service restriction honored", func(t *testing.T) {
		d := activeCode()
		d.ApplicableServiceIDs = []string{"svc-2", "svc-3"}
		assert.False(t, d.ValidFor("svc-1", 50000, now))
		assert.True(t, d.ValidFor("svc-2", 50000, now))
	})

	t.Run("minimum purchase honored", func(t *testing.T) {
		d := activeCode()
		d.MinimumPurchaseCents = intPtr(60000)
		assert.False(t, d.ValidFor("svc-1", 50000, now))
		assert.True(t, d.ValidFor("svc-1", 60000, now))
	})
}

func TestDiscountApply(t *testing.T) {
	t.Run("percentage rounds to nearest cent", func(t *testing.T) {
		d := activeCode()
		assert.Equal(t, 10000, d.Apply(50000))
		d.DiscountValue = 15
		assert.Equal(t, 7500, d.Apply(50000))
	})

	t.Run("fixed amount is capped at the price", func(t *testing.T) {
		d := activeCode()
		d.DiscountType = domain.DiscountFixed
		d.DiscountValue = 2000
		assert.Equal(t, 2000, d.Apply(50000))
		d.DiscountValue = 99999
		assert.Equal(t, 50000, d.Apply(50000))
	})
}

func TestRecipientResolution(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	t.Run("participant address wins", func(t *testing.T) {
		d := &domain.BookingDetail{
			Booking: domain.Booking{ParticipantEmail: strPtr("guest@example.com")},
			Profile: domain.ContactProfile{Email: strPtr("owner@example.com")},
		}
		assert.Equal(t, "guest@example.com", d.RecipientEmail())
	})

	t.Run("empty participant falls through to profile", func(t *testing.T) {
		d := &domain.BookingDetail{
			Booking: domain.Booking{ParticipantEmail: strPtr("")},
			Profile: domain.ContactProfile{Email: strPtr("owner@example.com")},
		}
		assert.Equal(t, "owner@example.com", d.RecipientEmail())
	})

	t.Run("no address anywhere yields empty", func(t *testing.T) {
		d := &domain.BookingDetail{}
		assert.Equal(t, "", d.RecipientEmail())
	})

	t.Run("name falls back to generic salutation", func(t *testing.T) {
		d := &domain.BookingDetail{}
		assert.Equal(t, "Cliente", d.RecipientName())
	})
}
