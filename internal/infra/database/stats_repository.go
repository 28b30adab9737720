package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xavierca1/outreach-guardian/internal/entity"
)

type StatsRepository struct {
	DB *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

// GetByDate returns zeroed counters for a day nobody has written yet. Rows
// only appear on the first increment.
func (r *StatsRepository) GetByDate(ctx context.Context, date string) (entity.DailyStats, error) {
	stats := entity.DailyStats{Date: date}

	err := r.DB.QueryRowContext(ctx, `
		SELECT ig_messages_sent, wa_messages_sent, ai_replies_sent
		FROM daily_stats
		WHERE date = $1
	`, date).Scan(&stats.IGMessagesSent, &stats.WAMessagesSent, &stats.AIRepliesSent)
	if errors.Is(err, sql.ErrNoRows) {
		return stats, nil
	}
	if err != nil {
		return stats, fmt.Errorf("get daily stats: %w", err)
	}
	return stats, nil
}

// IncrementAIReplies bumps the day's AI reply counter atomically.
func (r *StatsRepository) IncrementAIReplies(ctx context.Context, date string) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO daily_stats (date, ai_replies_sent)
		VALUES ($1, 1)
		ON CONFLICT (date) DO UPDATE SET ai_replies_sent = daily_stats.ai_replies_sent + 1
	`, date)
	if err != nil {
		return fmt.Errorf("increment ai replies: %w", err)
	}
	return nil
}
