package email

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
)

// Message is a transactional email handed to the provider
type Message struct {
	From    string
	To      string
	Subject string
	HTML    string
	ReplyTo string
	Tags    map[string]string
}

// Sender is the narrow contract over the transactional email provider.
// Send returns the provider-assigned message id.
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)
}

// ProviderError carries the provider's failure detail for operator diagnosis
type ProviderError struct {
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("email provider: %v", e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Service sends emails via Resend
type Service struct {
	client *resend.Client
	apiKey string
}

// NewService creates the Resend-backed sender. Constructed once at process
// start and reused across requests; the client pools its own connections.
func NewService(apiKey string) *Service {
	return &Service{
		client: resend.NewClient(apiKey),
		apiKey: apiKey,
	}
}

// IsConfigured checks whether the provider API key is present
func (s *Service) IsConfigured() bool {
	return s.apiKey != ""
}

// Send dispatches a single email and returns the provider message id.
// No retry here; a retry queue, if ever needed, sits above this call.
func (s *Service) Send(ctx context.Context, msg *Message) (string, error) {
	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	if msg.ReplyTo != "" {
		params.ReplyTo = msg.ReplyTo
	}
	for name, value := range msg.Tags {
		params.Tags = append(params.Tags, resend.Tag{Name: name, Value: value})
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return "", &ProviderError{Err: err}
	}
	return sent.Id, nil
}
