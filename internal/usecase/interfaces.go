package usecase

import (
	"context"

	"github.com/xavierca1/outreach-guardian/internal/entity"
	"github.com/xavierca1/outreach-guardian/internal/infra/queue"
)

// LeadStoreInterface is the durable keyed store of lead records.
type LeadStoreInterface interface {
	// FindByKey returns (nil, nil) when no lead exists for the key.
	FindByKey(ctx context.Context, channel, handle string) (*entity.Lead, error)

	// RecordAttempt commits the lead upsert and the daily counter increment
	// in one transaction: insert with interaction_count=1 or bump by exactly
	// one, refresh last_contacted_at, set status (falling back to the
	// first-contact/follow-up defaults), and increment today's channel
	// counter. When allowTerminalOverwrite is false and the lead sits in a
	// stop/dnd status, nothing is written and entity.ErrTerminalStatus is
	// returned.
	RecordAttempt(ctx context.Context, channel, handle, newStatus, date string, allowTerminalOverwrite bool) error

	// UpsertStatus overwrites the status, creating the lead if absent so an
	// opt-out webhook for a never-contacted handle is not lost.
	UpsertStatus(ctx context.Context, channel, handle, status string) error

	// SetIntent stores a classification label. No-op when the lead is absent.
	SetIntent(ctx context.Context, channel, handle, intent string) error

	// UpdateScore persists a computed score (and intent) onto an existing
	// lead and returns its id. entity.ErrLeadNotFound when absent.
	UpdateScore(ctx context.Context, channel, handle, intent string, score int) (string, error)

	List(ctx context.Context, status string, limit uint64) ([]entity.Lead, error)
	ListHot(ctx context.Context, minScore int, limit uint64) ([]entity.Lead, error)
	CountAll(ctx context.Context) (int, error)
}

// StatsStoreInterface tracks the per-day counters.
type StatsStoreInterface interface {
	// GetByDate returns a zero-valued row (not an error) for unseen dates.
	GetByDate(ctx context.Context, date string) (entity.DailyStats, error)

	// IncrementAIReplies bumps the day's AI reply counter, creating the row
	// if absent.
	IncrementAIReplies(ctx context.Context, date string) error
}

// ChatClientInterface is the external text-completion service.
type ChatClientInterface interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// EventPublisherInterface emits lead lifecycle events to the broker.
type EventPublisherInterface interface {
	PublishLeadEvent(ctx context.Context, payload queue.LeadEventPayload) error
}
