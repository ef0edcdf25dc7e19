package domain

import (
	"context"
	"time"
)

// Lead statuses
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusQualified = "qualified"
)

// Lead is a captured contact from a landing-page form
type Lead struct {
	ID          string                 `json:"id"`
	FullName    string                 `json:"full_name"`
	Email       string                 `json:"email"`
	Phone       *string                `json:"phone,omitempty"`
	CompanyName *string                `json:"company_name,omitempty"`
	Source      string                 `json:"source"`
	Status      string                 `json:"status"`
	CampaignID  *string                `json:"campaign_id,omitempty"`
	UTMSource   *string                `json:"utm_source,omitempty"`
	UTMMedium   *string                `json:"utm_medium,omitempty"`
	UTMCampaign *string                `json:"utm_campaign,omitempty"`
	UTMTerm     *string                `json:"utm_term,omitempty"`
	UTMContent  *string                `json:"utm_content,omitempty"`
	Score       int                    `json:"score"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt   time.Time              `json:"created_at"`
}

// Campaign ties leads to a marketing campaign
type Campaign struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Name       string `json:"name"`
	TotalLeads int    `json:"total_leads"`
}

// LeadCaptureRequest is the landing-page form payload
type LeadCaptureRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"omitempty,valid_phone"`
	Segment string `json:"segment" binding:"omitempty,oneof=ecommerce saas marketplace servicos outro"`

	CampaignSlug string `json:"campaign_slug" binding:"omitempty,max=80"`
	CampaignID   string `json:"campaign_id" binding:"omitempty,uuid"`
	Source       string `json:"source" binding:"omitempty,max=80"`

	UTMSource   string `json:"utm_source" binding:"omitempty,max=120"`
	UTMMedium   string `json:"utm_medium" binding:"omitempty,max=120"`
	UTMCampaign string `json:"utm_campaign" binding:"omitempty,max=120"`
	UTMTerm     string `json:"utm_term" binding:"omitempty,max=120"`
	UTMContent  string `json:"utm_content" binding:"omitempty,max=120"`

	// Segmentation answers used for lead quality scoring
	BiggestChallenge string `json:"biggest_challenge" binding:"omitempty,max=200"`
	Urgency          string `json:"urgency" binding:"omitempty,max=40"`
	MonthlyRevenue   string `json:"monthly_revenue" binding:"omitempty,max=40"`
	AdExperience     string `json:"ad_experience" binding:"omitempty,max=40"`

	Message string `json:"message" binding:"omitempty,max=2000"`
	Company string `json:"company" binding:"omitempty,max=100"`
}

// ClientMeta carries request context stored with the lead
type ClientMeta struct {
	IP        string
	UserAgent string
}

// LeadRepository persists leads and campaign counters
type LeadRepository interface {
	Insert(ctx context.Context, lead *Lead) error
	UpdateScore(ctx context.Context, id string, score int) error
	// GetCampaign resolves by id when set, otherwise by slug; ErrNotFound when absent
	GetCampaign(ctx context.Context, id, slug string) (*Campaign, error)
	IncrementCampaignLeads(ctx context.Context, id string) error
}

// LeadUsecase captures a lead and triggers its side effects
type LeadUsecase interface {
	Capture(ctx context.Context, req *LeadCaptureRequest, meta ClientMeta) (*Lead, error)
}
