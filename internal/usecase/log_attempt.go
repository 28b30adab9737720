package usecase

import (
	"context"
	"errors"

	"github.com/xavierca1/outreach-guardian/internal/entity"
)

// LogAttemptUseCase records one successful send: lead upsert plus the day's
// channel counter, committed together by the store. Not idempotent — calling
// it twice for one logical send double-counts both.
type LogAttemptUseCase struct {
	Leads  LeadStoreInterface
	Policy ContactPolicy
}

func NewLogAttemptUseCase(leads LeadStoreInterface, policy ContactPolicy) *LogAttemptUseCase {
	return &LogAttemptUseCase{Leads: leads, Policy: policy}
}

func (uc *LogAttemptUseCase) Execute(ctx context.Context, input LogAttemptInput) error {
	err := uc.Leads.RecordAttempt(
		ctx,
		input.Channel,
		input.Handle,
		input.NewStatus,
		uc.Policy.Today(),
		uc.Policy.AllowTerminalOverwrite,
	)
	if err != nil {
		if errors.Is(err, entity.ErrTerminalStatus) {
			return &DomainError{
				Code:    CodeLeadOptOut,
				Message: "lead has opted out; attempt not recorded",
			}
		}
		return storageError(err)
	}
	return nil
}
