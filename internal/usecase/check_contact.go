package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/outreach-guardian/internal/entity"
)

// Decision reasons returned by /can-contact.
const (
	ReasonDailyLimit   = "daily_limit_reached"
	ReasonCleanSlate   = "clean_slate"
	ReasonOptOut       = "lead_opt_out"
	ReasonConversation = "ongoing_conversation"
	ReasonTooSoon      = "too_soon_for_followup"
)

// CheckContactUseCase decides whether a lead may be contacted right now.
// Pure read: it never creates a lead and never touches a counter.
type CheckContactUseCase struct {
	Leads  LeadStoreInterface
	Stats  StatsStoreInterface
	Policy ContactPolicy
}

func NewCheckContactUseCase(leads LeadStoreInterface, stats StatsStoreInterface, policy ContactPolicy) *CheckContactUseCase {
	return &CheckContactUseCase{Leads: leads, Stats: stats, Policy: policy}
}

// Execute applies, in order: ongoing-conversation bypass, daily channel cap,
// clean slate, sticky opt-out, 24h cooldown. A responded lead wins over an
// exhausted quota because a live two-way conversation is not cold outreach.
func (uc *CheckContactUseCase) Execute(ctx context.Context, input CheckContactInput) (*ContactDecision, error) {
	today := uc.Policy.Today()

	stats, err := uc.Stats.GetByDate(ctx, today)
	if err != nil {
		return nil, storageError(err)
	}

	lead, err := uc.Leads.FindByKey(ctx, input.Channel, input.Handle)
	if err != nil {
		return nil, storageError(err)
	}

	if lead != nil && lead.Status == entity.StatusResponded {
		return &ContactDecision{Allowed: true, Reason: ReasonConversation}, nil
	}

	if limit := uc.Policy.CapFor(input.Channel); limit > 0 {
		if sent := stats.SentOn(input.Channel); sent >= limit {
			return &ContactDecision{
				Allowed: false,
				Reason:  ReasonDailyLimit,
				Current: &sent,
				Max:     &limit,
			}, nil
		}
	}

	if lead == nil {
		return &ContactDecision{Allowed: true, Status: entity.StatusNew, Reason: ReasonCleanSlate}, nil
	}

	if entity.IsTerminal(lead.Status) {
		return &ContactDecision{Allowed: false, Reason: ReasonOptOut}, nil
	}

	if lead.LastContactedAt != nil {
		elapsed := time.Since(*lead.LastContactedAt).Hours()
		if elapsed < uc.Policy.CooldownHours {
			wait := uc.Policy.CooldownHours - elapsed
			return &ContactDecision{
				Allowed:   false,
				Reason:    ReasonTooSoon,
				WaitHours: &wait,
			}, nil
		}
	}

	return &ContactDecision{Allowed: true, Status: lead.Status}, nil
}
