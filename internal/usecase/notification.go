package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-consulting-backend/internal/domain"
	"go-consulting-backend/internal/mail"
	"go-consulting-backend/pkg/apperror"
	"go-consulting-backend/pkg/email"
	"go-consulting-backend/pkg/logger"
	"go-consulting-backend/pkg/metrics"
)

type notificationUsecase struct {
	bookings  domain.BookingRepository
	mailer    email.Sender
	analytics domain.AnalyticsSink

	from         string
	baseURL      string
	contactEmail string
}

// NewNotificationUsecase wires the booking email flow. The sender identity is
// fixed per deployment, not per request.
func NewNotificationUsecase(
	bookings domain.BookingRepository,
	mailer email.Sender,
	analytics domain.AnalyticsSink,
	from, baseURL, contactEmail string,
) domain.NotificationUsecase {
	return &notificationUsecase{
		bookings:     bookings,
		mailer:       mailer,
		analytics:    analytics,
		from:         from,
		baseURL:      baseURL,
		contactEmail: contactEmail,
	}
}

// SendBookingEmail runs the flow strictly in sequence: read the joined
// booking, resolve the recipient, render the kind-specific email, dispatch it
// through the provider, then record the outcome without blocking the response.
func (uc *notificationUsecase) SendBookingEmail(ctx context.Context, req *domain.SendBookingEmailRequest) (*domain.SendBookingEmailResult, error) {
	kind, ok := mail.ParseKind(req.Kind)
	if !ok {
		// Binding already rejects unknown kinds; reaching here is a bug
		return nil, apperror.Internal(fmt.Errorf("unhandled notification kind %q", req.Kind))
	}

	detail, err := uc.bookings.GetDetailByID(ctx, req.BookingID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("not found")
	}
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("fetch booking: %w", err))
	}

	recipient := detail.RecipientEmail()
	if recipient == "" {
		return nil, apperror.BadRequest("no recipient address")
	}

	msg, err := uc.buildMessage(kind, detail)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	rendered, err := mail.Render(msg)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	providerID, err := uc.mailer.Send(ctx, &email.Message{
		From:    uc.from,
		To:      recipient,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Tags:    map[string]string{"email_type": string(kind)},
	})
	if err != nil {
		metrics.EmailsFailed.WithLabelValues(string(kind)).Inc()
		uc.logOutcome(detail, kind, domain.EventEmailFailed, map[string]interface{}{
			"booking_id": detail.ID,
			"email_type": string(kind),
			"error":      err.Error(),
		})
		return nil, apperror.New(http.StatusInternalServerError, "failed to send email", err).
			WithDetails(map[string]string{"provider": err.Error()})
	}

	metrics.EmailsSent.WithLabelValues(string(kind)).Inc()
	uc.logOutcome(detail, kind, domain.EventEmailSent, map[string]interface{}{
		"booking_id":  detail.ID,
		"email_type":  string(kind),
		"provider_id": providerID,
	})

	return &domain.SendBookingEmailResult{
		ProviderMessageID: providerID,
		SentTo:            recipient,
		Kind:              string(kind),
	}, nil
}

func (uc *notificationUsecase) buildMessage(kind mail.Kind, detail *domain.BookingDetail) (mail.Message, error) {
	when, err := mail.ParseSchedule(detail.ScheduledDate, detail.ScheduledTime)
	if err != nil {
		return nil, fmt.Errorf("parse booking schedule: %w", err)
	}

	session := mail.Session{
		RecipientName:   detail.RecipientName(),
		ServiceName:     detail.Service.Name,
		FormattedDate:   mail.FormatDate(when),
		FormattedTime:   mail.FormatTime(when),
		DurationMinutes: detail.Service.DurationMinutes,
	}
	confirmationURL := fmt.Sprintf("%s/agendamentos/confirmacao/%s", uc.baseURL, detail.ID)

	switch kind {
	case mail.KindConfirmation:
		ref := detail.ID
		if len(ref) > 8 {
			ref = ref[:8]
		}
		return mail.Confirmation{
			Session:         session,
			BookingRef:      ref,
			ConfirmationURL: confirmationURL,
			ContactEmail:    uc.contactEmail,
		}, nil
	case mail.KindReminder24h, mail.KindReminder1h:
		hours := 24
		if kind == mail.KindReminder1h {
			hours = 1
		}
		meetingURL := ""
		if detail.MeetingURL != nil {
			meetingURL = *detail.MeetingURL
		}
		return mail.Reminder{Session: session, HoursUntil: hours, MeetingURL: meetingURL}, nil
	case mail.KindCancellation:
		reason := "Cancelamento solicitado"
		if detail.CancellationReason != nil && *detail.CancellationReason != "" {
			reason = *detail.CancellationReason
		}
		return mail.Cancellation{Session: session, Reason: reason}, nil
	case mail.KindReschedule:
		return mail.Reschedule{Session: session, ConfirmationURL: confirmationURL}, nil
	}
	return nil, fmt.Errorf("unhandled notification kind %q", kind)
}

// logOutcome records the dispatch result as an analytics event. The insert
// runs detached from the request lifecycle; a failure to log never reaches
// the caller.
func (uc *notificationUsecase) logOutcome(detail *domain.BookingDetail, kind mail.Kind, eventType string, data map[string]interface{}) {
	userID := detail.UserID
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Log.Error("analytics logging panicked", "panic", r)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := uc.analytics.Insert(ctx, &domain.AnalyticsEvent{
			EventType: eventType,
			UserID:    &userID,
			EventData: data,
		})
		if err != nil {
			logger.Log.Warn("failed to record analytics event",
				"event", eventType, "booking_id", detail.ID, "error", err)
		}
	}()
}
