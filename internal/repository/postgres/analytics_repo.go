package postgres

import (
	"context"
	"encoding/json"

	"go-consulting-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type analyticsRepo struct {
	db *pgxpool.Pool
}

func NewAnalyticsRepository(db *pgxpool.Pool) domain.AnalyticsSink {
	return &analyticsRepo{db: db}
}

func (r *analyticsRepo) Insert(ctx context.Context, event *domain.AnalyticsEvent) error {
	data, err := json.Marshal(event.EventData)
	if err != nil {
		return err
	}
	query := `INSERT INTO analytics_events (event_type, user_id, event_data, created_at) VALUES ($1, $2, $3, now())`
	_, err = r.db.Exec(ctx, query, event.EventType, event.UserID, data)
	return err
}
