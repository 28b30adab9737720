package usecase

import (
	"context"
	"log"
	"strings"
)

const classifySystemPrompt = `You classify the intent of a prospect replying to a trading-education outreach message.
Answer with exactly one word from this list and nothing else:
systems, learn, has_broker, promises, no_capital, unknown.
- systems: asks about trading systems, automation or signals
- learn: wants to learn how to trade
- has_broker: already trades with a broker
- promises: asks for guaranteed returns or gets promised profits
- no_capital: says they have no money to invest
- unknown: anything else`

var knownIntents = map[string]bool{
	IntentSystems:   true,
	IntentLearn:     true,
	IntentHasBroker: true,
	IntentPromises:  true,
	IntentNoCapital: true,
	IntentUnknown:   true,
}

// ClassifyIntentUseCase labels an inbound message via the text-completion
// service and, when the caller identifies the lead, persists the label.
type ClassifyIntentUseCase struct {
	Chat  ChatClientInterface
	Leads LeadStoreInterface
}

func NewClassifyIntentUseCase(chat ChatClientInterface, leads LeadStoreInterface) *ClassifyIntentUseCase {
	return &ClassifyIntentUseCase{Chat: chat, Leads: leads}
}

func (uc *ClassifyIntentUseCase) Execute(ctx context.Context, input ClassifyIntentInput) (*ClassifyIntentOutput, error) {
	raw, err := uc.Chat.Complete(ctx, classifySystemPrompt, input.Message)
	if err != nil {
		return nil, completionError(err)
	}

	intent := normalizeIntent(raw)

	if input.Handle != "" && input.Channel != "" {
		if err := uc.Leads.SetIntent(ctx, input.Channel, input.Handle, intent); err != nil {
			return nil, storageError(err)
		}
	}

	return &ClassifyIntentOutput{Intent: intent, Message: input.Message}, nil
}

// normalizeIntent tolerates models that decorate the label with punctuation
// or casing; anything outside the known set collapses to unknown.
func normalizeIntent(raw string) string {
	intent := strings.ToLower(strings.TrimSpace(raw))
	intent = strings.Trim(intent, `."'`)
	if !knownIntents[intent] {
		log.Printf("classify-intent: unexpected label %q from model, using %s", raw, IntentUnknown)
		return IntentUnknown
	}
	return intent
}
