package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly Portuguese labels
var FieldLabels = map[string]string{
	"BookingID":        "ID do agendamento",
	"Kind":             "Tipo de notificação",
	"Name":             "Nome",
	"Email":            "Email",
	"Phone":            "Telefone",
	"Company":          "Empresa",
	"Message":          "Mensagem",
	"Segment":          "Segmento",
	"Source":           "Origem",
	"CampaignID":       "ID da campanha",
	"CampaignSlug":     "Slug da campanha",
	"ServiceTypeID":    "Tipo de consultoria",
	"ScheduledDate":    "Data",
	"ScheduledTime":    "Horário",
	"Challenge":        "Desafio principal",
	"Budget":           "Orçamento",
	"Urgency":          "Urgência",
	"DiscountCode":     "Código de desconto",
	"ParticipantInfo":  "Dados do participante",
	"MonthlyRevenue":   "Faturamento mensal",
	"BiggestChallenge": "Maior desafio",
}

// FormatValidationErrors converts validator.ValidationErrors to per-field
// messages. Every violated field is reported, not just the first.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: obrigatório", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: mínimo de %s caracteres", label, param)
		}
		return fmt.Sprintf("%s: mínimo %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: máximo de %s caracteres", label, param)
		}
		return fmt.Sprintf("%s: máximo %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s: deve ser um de: %s", label, strings.Join(strings.Split(param, " "), ", "))
	case "email":
		return fmt.Sprintf("%s: formato de email inválido", label)
	case "uuid", "uuid4":
		return fmt.Sprintf("%s: identificador inválido", label)
	case "datetime":
		return fmt.Sprintf("%s: formato de data/hora inválido", label)
	case "valid_name":
		return fmt.Sprintf("%s: apenas letras, espaços e pontuação comum (. ' -)", label)
	case "valid_phone":
		return fmt.Sprintf("%s: formato de telefone inválido (7-15 dígitos, com/sem +)", label)
	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: validação falhou (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
