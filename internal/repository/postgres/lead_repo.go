package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-consulting-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type leadRepo struct {
	db *pgxpool.Pool
}

func NewLeadRepository(db *pgxpool.Pool) domain.LeadRepository {
	return &leadRepo{db: db}
}

func (r *leadRepo) Insert(ctx context.Context, lead *domain.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.NewString()
	}
	lead.CreatedAt = time.Now().UTC()

	metadata, err := json.Marshal(lead.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO leads (
			id, full_name, email, phone, company_name, source, status, campaign_id,
			utm_source, utm_medium, utm_campaign, utm_term, utm_content,
			metadata, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err = r.db.Exec(ctx, query,
		lead.ID, lead.FullName, lead.Email, lead.Phone, lead.CompanyName,
		lead.Source, lead.Status, lead.CampaignID,
		lead.UTMSource, lead.UTMMedium, lead.UTMCampaign, lead.UTMTerm, lead.UTMContent,
		metadata, lead.CreatedAt,
	)
	return err
}

func (r *leadRepo) UpdateScore(ctx context.Context, id string, score int) error {
	query := `UPDATE leads SET score = $1 WHERE id = $2`
	_, err := r.db.Exec(ctx, query, score, id)
	return err
}

// GetCampaign resolves by id when provided, otherwise by slug
func (r *leadRepo) GetCampaign(ctx context.Context, id, slug string) (*domain.Campaign, error) {
	query := `SELECT id, slug, name, total_leads FROM campaigns WHERE id::text = $1 OR ($1 = '' AND slug = $2)`

	var c domain.Campaign
	err := r.db.QueryRow(ctx, query, id, slug).Scan(&c.ID, &c.Slug, &c.Name, &c.TotalLeads)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *leadRepo) IncrementCampaignLeads(ctx context.Context, id string) error {
	query := `UPDATE campaigns SET total_leads = total_leads + 1 WHERE id = $1`
	_, err := r.db.Exec(ctx, query, id)
	return err
}
