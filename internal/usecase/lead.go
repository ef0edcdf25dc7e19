package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-consulting-backend/internal/domain"
	"go-consulting-backend/internal/mail"
	"go-consulting-backend/pkg/apperror"
	"go-consulting-backend/pkg/email"
	"go-consulting-backend/pkg/logger"
	"go-consulting-backend/pkg/metrics"
)

type leadUsecase struct {
	leads     domain.LeadRepository
	analytics domain.AnalyticsSink
	mailer    email.Sender

	leadsFrom string
	notifyTo  string
	siteURL   string
}

// NewLeadUsecase wires the landing-page lead capture flow
func NewLeadUsecase(
	leads domain.LeadRepository,
	analytics domain.AnalyticsSink,
	mailer email.Sender,
	leadsFrom, notifyTo, siteURL string,
) domain.LeadUsecase {
	return &leadUsecase{
		leads:     leads,
		analytics: analytics,
		mailer:    mailer,
		leadsFrom: leadsFrom,
		notifyTo:  notifyTo,
		siteURL:   siteURL,
	}
}

// Capture persists the lead, then runs scoring, counters, analytics and
// emails as best-effort enhancements. Only the insert itself can fail the
// request; everything after the lead is saved degrades to a log line.
func (uc *leadUsecase) Capture(ctx context.Context, req *domain.LeadCaptureRequest, meta domain.ClientMeta) (*domain.Lead, error) {
	campaign := uc.resolveCampaign(ctx, req)

	lead := buildLead(req, campaign, meta)
	if err := uc.leads.Insert(ctx, lead); err != nil {
		return nil, apperror.New(500, "failed to save lead", fmt.Errorf("insert lead: %w", err))
	}

	if score := scoreLead(req); score > 0 {
		lead.Score = score
		if err := uc.leads.UpdateScore(ctx, lead.ID, score); err != nil {
			logger.Log.Warn("failed to score lead", "lead_id", lead.ID, "error", err)
		}
	}

	uc.trackCapture(lead, req, campaign)

	if campaign != nil {
		if err := uc.leads.IncrementCampaignLeads(ctx, campaign.ID); err != nil {
			logger.Log.Warn("failed to bump campaign counter", "campaign_id", campaign.ID, "error", err)
		}
	}

	uc.sendWelcomeEmail(ctx, req, campaign)
	uc.sendInternalAlert(ctx, lead, req, campaign)

	metrics.LeadsCaptured.Inc()
	return lead, nil
}

func (uc *leadUsecase) resolveCampaign(ctx context.Context, req *domain.LeadCaptureRequest) *domain.Campaign {
	if req.CampaignID == "" && req.CampaignSlug == "" {
		return nil
	}
	campaign, err := uc.leads.GetCampaign(ctx, req.CampaignID, req.CampaignSlug)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Log.Warn("campaign lookup failed", "campaign_slug", req.CampaignSlug, "error", err)
		}
		return nil
	}
	return campaign
}

func buildLead(req *domain.LeadCaptureRequest, campaign *domain.Campaign, meta domain.ClientMeta) *domain.Lead {
	source := req.Source
	if source == "" {
		source = "landing_page"
	}

	lead := &domain.Lead{
		FullName:    strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       optional(req.Phone),
		CompanyName: optional(req.Company),
		Source:      source,
		Status:      domain.LeadStatusNew,
		UTMSource:   optional(req.UTMSource),
		UTMMedium:   optional(req.UTMMedium),
		UTMCampaign: optional(req.UTMCampaign),
		UTMTerm:     optional(req.UTMTerm),
		UTMContent:  optional(req.UTMContent),
		Metadata: map[string]interface{}{
			"campaign_slug":     req.CampaignSlug,
			"segment":           req.Segment,
			"message":           req.Message,
			"ip":                meta.IP,
			"user_agent":        meta.UserAgent,
			"submitted_at":      time.Now().UTC().Format(time.RFC3339),
			"biggest_challenge": req.BiggestChallenge,
			"urgency":           req.Urgency,
			"monthly_revenue":   req.MonthlyRevenue,
			"ad_experience":     req.AdExperience,
		},
	}
	if campaign != nil {
		lead.CampaignID = &campaign.ID
	}
	return lead
}

// scoreLead estimates lead quality (0-100) from the segmentation answers.
// All fields are optional; an empty form scores zero.
func scoreLead(req *domain.LeadCaptureRequest) int {
	score := 0

	revenueScore := map[string]int{
		"less_than_10k":  5,
		"10k_to_50k":     15,
		"50k_to_100k":    25,
		"more_than_100k": 35,
	}
	score += revenueScore[req.MonthlyRevenue]

	urgencyScore := map[string]int{
		"not_urgent":   5,
		"within_month": 15,
		"within_week":  20,
		"urgent":       25,
	}
	score += urgencyScore[req.Urgency]

	experienceScore := map[string]int{
		"none":     5,
		"beginner": 10,
		"running":  20,
	}
	score += experienceScore[req.AdExperience]

	if req.Phone != "" {
		score += 10
	}
	if req.Company != "" {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

func (uc *leadUsecase) trackCapture(lead *domain.Lead, req *domain.LeadCaptureRequest, campaign *domain.Campaign) {
	data := map[string]interface{}{
		"lead_id":   lead.ID,
		"source":    lead.Source,
		"segment":   req.Segment,
		"has_phone": req.Phone != "",
	}
	if campaign != nil {
		data["campaign_id"] = campaign.ID
		data["campaign_slug"] = campaign.Slug
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Log.Error("analytics logging panicked", "panic", r)
			}
		}()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.analytics.Insert(ctx, &domain.AnalyticsEvent{
			EventType: domain.EventLeadCaptured,
			EventData: data,
		}); err != nil {
			logger.Log.Warn("failed to record analytics event",
				"event", domain.EventLeadCaptured, "lead_id", lead.ID, "error", err)
		}
	}()
}

func (uc *leadUsecase) sendWelcomeEmail(ctx context.Context, req *domain.LeadCaptureRequest, campaign *domain.Campaign) {
	campaignName := "ARCO"
	if campaign != nil {
		campaignName = campaign.Name
	}
	rendered, err := mail.RenderLeadWelcome(mail.LeadWelcome{
		FirstName:    firstName(req.Name),
		CampaignName: campaignName,
		SiteURL:      uc.siteURL,
	})
	if err != nil {
		logger.Log.Warn("failed to render welcome email", "error", err)
		return
	}
	_, err = uc.mailer.Send(ctx, &email.Message{
		From:    uc.leadsFrom,
		To:      req.Email,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Tags:    map[string]string{"type": "lead-welcome"},
	})
	if err != nil {
		// Lead is saved; the welcome email is not critical
		logger.Log.Warn("failed to send welcome email", "to", req.Email, "error", err)
	}
}

func (uc *leadUsecase) sendInternalAlert(ctx context.Context, lead *domain.Lead, req *domain.LeadCaptureRequest, campaign *domain.Campaign) {
	alert := mail.LeadAlert{
		LeadID:      lead.ID,
		Name:        lead.FullName,
		Email:       lead.Email,
		Phone:       req.Phone,
		Company:     req.Company,
		UTMSource:   req.UTMSource,
		UTMCampaign: req.UTMCampaign,
		CreatedAt:   lead.CreatedAt.Format("02/01/2006 15:04"),
	}
	if campaign != nil {
		alert.CampaignName = campaign.Name
		alert.CampaignSlug = campaign.Slug
	}
	rendered, err := mail.RenderLeadAlert(alert)
	if err != nil {
		logger.Log.Warn("failed to render lead alert", "error", err)
		return
	}
	_, err = uc.mailer.Send(ctx, &email.Message{
		From:    uc.leadsFrom,
		To:      uc.notifyTo,
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Tags:    map[string]string{"type": "lead-alert"},
	})
	if err != nil {
		logger.Log.Warn("failed to send lead alert", "error", err)
	}
}

func firstName(full string) string {
	fields := strings.Fields(strings.TrimSpace(full))
	if len(fields) == 0 {
		return full
	}
	return fields[0]
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
