package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/xavierca1/outreach-guardian/internal/entity"
	"github.com/xavierca1/outreach-guardian/internal/infra/queue"
)

// Intent labels the classifier may assign.
const (
	IntentSystems   = "systems"
	IntentLearn     = "learn"
	IntentHasBroker = "has_broker"
	IntentPromises  = "promises"
	IntentNoCapital = "no_capital"
	IntentUnknown   = "unknown"
)

// CalculateScore derives the 0-10 interest score from intent and behavioral
// signals. Deterministic and side-effect-free; persistence is separate.
func CalculateScore(intent string, hasCapital, respondsFast bool, interactionCount int) int {
	score := 0

	switch intent {
	case IntentSystems:
		score += 3
	case IntentLearn:
		score += 2
	case IntentHasBroker:
		score += 2
	case IntentPromises:
		score -= 3
	case IntentNoCapital:
		score -= 2
	}

	if hasCapital {
		score += 3
	}
	if respondsFast {
		score++
	}
	if interactionCount >= 2 {
		score++
	}

	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

// UpdateScoreUseCase recomputes a lead's score and persists it. Idempotent:
// identical inputs always store the identical value.
type UpdateScoreUseCase struct {
	Leads             LeadStoreInterface
	Events            EventPublisherInterface // optional
	HotScoreThreshold int
}

func NewUpdateScoreUseCase(leads LeadStoreInterface, events EventPublisherInterface, hotThreshold int) *UpdateScoreUseCase {
	return &UpdateScoreUseCase{Leads: leads, Events: events, HotScoreThreshold: hotThreshold}
}

func (uc *UpdateScoreUseCase) Execute(ctx context.Context, input UpdateScoreInput) (*UpdateScoreOutput, error) {
	lead, err := uc.Leads.FindByKey(ctx, input.Channel, input.Handle)
	if err != nil {
		return nil, storageError(err)
	}
	if lead == nil {
		return nil, &DomainError{Code: CodeLeadNotFound, Message: "lead not found"}
	}

	score := CalculateScore(input.Intent, input.HasCapital, input.RespondsFast, lead.InteractionCount)

	id, err := uc.Leads.UpdateScore(ctx, input.Channel, input.Handle, input.Intent, score)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &DomainError{Code: CodeLeadNotFound, Message: "lead not found"}
		}
		return nil, storageError(err)
	}

	if uc.Events != nil && uc.HotScoreThreshold > 0 && score >= uc.HotScoreThreshold {
		payload := queue.LeadEventPayload{
			EventID:    uuid.NewString(),
			Event:      queue.EventLeadHot,
			Channel:    input.Channel,
			Handle:     input.Handle,
			Status:     lead.Status,
			Intent:     input.Intent,
			Score:      score,
			OccurredAt: time.Now().UTC(),
		}
		if err := uc.Events.PublishLeadEvent(ctx, payload); err != nil {
			log.Printf("update-score: hot-lead event not published for %s: %v", id, err)
		}
	}

	return &UpdateScoreOutput{Score: score, ID: id}, nil
}
