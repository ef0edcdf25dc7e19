package validation_test

import (
	"testing"

	"go-consulting-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notificationInput struct {
	BookingID string `validate:"required,uuid"`
	Kind      string `validate:"required,oneof=confirmation reminder_24h reminder_1h cancellation reschedule"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestFormatValidationErrorsEnumeratesAllFields(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(notificationInput{})
	require.Error(t, err)

	messages := validation.FormatValidationErrors(err)
	require.Len(t, messages, 2)
	assert.Contains(t, messages[0], "ID do agendamento")
	assert.Contains(t, messages[0], "obrigatório")
	assert.Contains(t, messages[1], "Tipo de notificação")
}

func TestFormatValidationErrorsPerTag(t *testing.T) {
	v := newValidator(t)

	t.Run("invalid uuid", func(t *testing.T) {
		err := v.Struct(notificationInput{BookingID: "nope", Kind: "confirmation"})
		require.Error(t, err)
		messages := validation.FormatValidationErrors(err)
		require.Len(t, messages, 1)
		assert.Contains(t, messages[0], "identificador inválido")
	})

	t.Run("unknown kind", func(t *testing.T) {
		err := v.Struct(notificationInput{
			BookingID: "b7f3a1c2-4d5e-4f60-8a9b-0c1d2e3f4a5b",
			Kind:      "welcome",
		})
		require.Error(t, err)
		messages := validation.FormatValidationErrors(err)
		require.Len(t, messages, 1)
		assert.Contains(t, messages[0], "deve ser um de")
		assert.Contains(t, messages[0], "confirmation")
	})

	t.Run("valid input passes", func(t *testing.T) {
		err := v.Struct(notificationInput{
			BookingID: "b7f3a1c2-4d5e-4f60-8a9b-0c1d2e3f4a5b",
			Kind:      "reminder_24h",
		})
		assert.NoError(t, err)
	})
}

func TestCustomValidators(t *testing.T) {
	v := newValidator(t)

	type form struct {
		Phone string `validate:"omitempty,valid_phone"`
		Clock string `validate:"omitempty,valid_clock"`
	}

	t.Run("valid phone formats", func(t *testing.T) {
		for _, phone := range []string{"+5511999990000", "11 99999-0000", "(11) 99999-0000"} {
			assert.NoError(t, v.Struct(form{Phone: phone}), phone)
		}
	})

	t.Run("invalid phone formats", func(t *testing.T) {
		for _, phone := range []string{"abc", "123", "++55"} {
			assert.Error(t, v.Struct(form{Phone: phone}), phone)
		}
	})

	t.Run("clock accepts HH:MM and HH:MM:SS", func(t *testing.T) {
		assert.NoError(t, v.Struct(form{Clock: "14:00"}))
		assert.NoError(t, v.Struct(form{Clock: "14:00:00"}))
		assert.Error(t, v.Struct(form{Clock: "2pm"}))
	})
}
