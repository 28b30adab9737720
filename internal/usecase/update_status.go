package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/outreach-guardian/internal/entity"
	"github.com/xavierca1/outreach-guardian/internal/infra/queue"
)

// UpdateStatusUseCase applies inbound reply/opt-out signals. The overwrite
// is unconditional: any string is accepted, including re-entering a
// non-terminal state from a terminal one. Unknown handles get a record so a
// webhook opt-out is never lost.
type UpdateStatusUseCase struct {
	Leads  LeadStoreInterface
	Events EventPublisherInterface // optional
}

func NewUpdateStatusUseCase(leads LeadStoreInterface, events EventPublisherInterface) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{Leads: leads, Events: events}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, input UpdateStatusInput) error {
	if err := uc.Leads.UpsertStatus(ctx, input.Channel, input.Handle, input.Status); err != nil {
		return storageError(err)
	}

	if uc.Events != nil && entity.IsTerminal(input.Status) {
		payload := queue.LeadEventPayload{
			EventID:    uuid.NewString(),
			Event:      queue.EventLeadOptedOut,
			Channel:    input.Channel,
			Handle:     input.Handle,
			Status:     input.Status,
			OccurredAt: time.Now().UTC(),
		}
		// The status write already committed; a broker hiccup must not fail
		// the webhook.
		if err := uc.Events.PublishLeadEvent(ctx, payload); err != nil {
			log.Printf("update-status: opt-out event not published for %s: %v",
				entity.LeadID(input.Channel, input.Handle), err)
		}
	}

	return nil
}
