package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/xavierca1/outreach-guardian/internal/entity"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var leadColumns = []string{
	"id", "channel", "handle", "status", "intent", "score",
	"interaction_count", "last_contacted_at", "created_at",
}

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// FindByKey returns (nil, nil) when the lead does not exist. An eligibility
// check must never create a record.
func (r *LeadRepository) FindByKey(ctx context.Context, channel, handle string) (*entity.Lead, error) {
	query, args, err := psql.Select(leadColumns...).
		From("leads").
		Where(sq.Eq{"id": entity.LeadID(channel, handle)}).
		ToSql()
	if err != nil {
		return nil, err
	}

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find lead: %w", err)
	}
	return lead, nil
}

// RecordAttempt commits the lead mutation and the daily counter bump in one
// transaction. A half-applied attempt would desynchronize eligibility
// decisions from reality, so either both rows change or neither does.
//
// The status row lock (FOR UPDATE) also serializes concurrent attempts for
// the same key, so interaction_count moves by exactly one per call.
func (r *LeadRepository) RecordAttempt(ctx context.Context, channel, handle, newStatus, date string, allowTerminalOverwrite bool) error {
	statsColumn, err := sentColumn(channel)
	if err != nil {
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin attempt tx: %w", err)
	}
	defer tx.Rollback()

	id := entity.LeadID(channel, handle)

	if !allowTerminalOverwrite {
		var status string
		err := tx.QueryRowContext(ctx,
			`SELECT status FROM leads WHERE id = $1 FOR UPDATE`, id,
		).Scan(&status)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("lock lead: %w", err)
		}
		if err == nil && entity.IsTerminal(status) {
			return entity.ErrTerminalStatus
		}
	}

	// Insert takes the first-contact default, the conflict branch the
	// follow-up default, matching the lazy-creation contract.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO leads (id, channel, handle, status, interaction_count, last_contacted_at)
		VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), $5), 1, NOW())
		ON CONFLICT (id) DO UPDATE SET
			interaction_count = leads.interaction_count + 1,
			last_contacted_at = NOW(),
			status            = COALESCE(NULLIF($4, ''), $6)
	`, id, channel, handle, newStatus, entity.StatusFirstSent, entity.StatusFollowupSent)
	if err != nil {
		return fmt.Errorf("upsert lead attempt: %w", err)
	}

	_, err = tx.ExecContext(ctx, fmt.Sprintf(`
		INSERT INTO daily_stats (date, %[1]s)
		VALUES ($1, 1)
		ON CONFLICT (date) DO UPDATE SET %[1]s = daily_stats.%[1]s + 1
	`, statsColumn), date)
	if err != nil {
		return fmt.Errorf("increment daily counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit attempt tx: %w", err)
	}
	return nil
}

// UpsertStatus overwrites the status unconditionally, creating the record
// when absent. last_contacted_at is never touched here.
func (r *LeadRepository) UpsertStatus(ctx context.Context, channel, handle, status string) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO leads (id, channel, handle, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status
	`, entity.LeadID(channel, handle), channel, handle, status)
	if err != nil {
		return fmt.Errorf("upsert status: %w", err)
	}
	return nil
}

// SetIntent stores a classification label. Silently ignores unknown leads:
// classification may run before the first attempt is ever logged.
func (r *LeadRepository) SetIntent(ctx context.Context, channel, handle, intent string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET intent = $1 WHERE id = $2`,
		intent, entity.LeadID(channel, handle),
	)
	if err != nil {
		return fmt.Errorf("set intent: %w", err)
	}
	return nil
}

func (r *LeadRepository) UpdateScore(ctx context.Context, channel, handle, intent string, score int) (string, error) {
	var id string
	err := r.DB.QueryRowContext(ctx, `
		UPDATE leads
		SET score = $1, intent = COALESCE(NULLIF($2, ''), intent)
		WHERE id = $3
		RETURNING id
	`, score, intent, entity.LeadID(channel, handle)).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return "", entity.ErrLeadNotFound
	}
	if err != nil {
		return "", fmt.Errorf("update score: %w", err)
	}
	return id, nil
}

// List returns leads most-recently-contacted first, optionally filtered by
// status.
func (r *LeadRepository) List(ctx context.Context, status string, limit uint64) ([]entity.Lead, error) {
	builder := psql.Select(leadColumns...).
		From("leads").
		OrderBy("last_contacted_at DESC NULLS LAST", "created_at DESC").
		Limit(limit)

	if status != "" {
		builder = builder.Where(sq.Eq{"status": status})
	}

	return r.queryLeads(ctx, builder)
}

// ListHot returns the highest-scoring leads at or above minScore.
func (r *LeadRepository) ListHot(ctx context.Context, minScore int, limit uint64) ([]entity.Lead, error) {
	builder := psql.Select(leadColumns...).
		From("leads").
		Where(sq.GtOrEq{"score": minScore}).
		OrderBy("score DESC", "last_contacted_at DESC NULLS LAST").
		Limit(limit)

	return r.queryLeads(ctx, builder)
}

func (r *LeadRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count leads: %w", err)
	}
	return count, nil
}

func (r *LeadRepository) queryLeads(ctx context.Context, builder sq.SelectBuilder) ([]entity.Lead, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, *lead)
	}
	return leads, rows.Err()
}

func sentColumn(channel string) (string, error) {
	switch channel {
	case entity.ChannelInstagram:
		return "ig_messages_sent", nil
	case entity.ChannelWhatsApp:
		return "wa_messages_sent", nil
	}
	return "", fmt.Errorf("unknown channel %q", channel)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var intent sql.NullString
	var lastContacted sql.NullTime

	err := row.Scan(
		&lead.ID,
		&lead.Channel,
		&lead.Handle,
		&lead.Status,
		&intent,
		&lead.Score,
		&lead.InteractionCount,
		&lastContacted,
		&lead.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Intent = intent.String
	if lastContacted.Valid {
		t := lastContacted.Time
		lead.LastContactedAt = &t
	}
	return &lead, nil
}
