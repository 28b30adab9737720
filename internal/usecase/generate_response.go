package usecase

import (
	"context"
	"fmt"
	"log"
)

const responseSystemPrompt = `You write the next reply in an ongoing direct-message conversation with a sales lead.
Keep it short (2-4 sentences), warm and concrete. Never promise returns.
Answer in the language the lead writes in.`

// GenerateResponseUseCase drafts a reply for an ongoing conversation and
// bumps the day's AI reply counter.
type GenerateResponseUseCase struct {
	Chat   ChatClientInterface
	Stats  StatsStoreInterface
	Policy ContactPolicy
}

func NewGenerateResponseUseCase(chat ChatClientInterface, stats StatsStoreInterface, policy ContactPolicy) *GenerateResponseUseCase {
	return &GenerateResponseUseCase{Chat: chat, Stats: stats, Policy: policy}
}

func (uc *GenerateResponseUseCase) Execute(ctx context.Context, input GenerateResponseInput) (*GenerateResponseOutput, error) {
	prompt := fmt.Sprintf("Lead context: %s\nDetected intent: %s\nLead says: %s",
		orDash(input.LeadContext), orDash(input.Intent), input.UserMessage)

	response, err := uc.Chat.Complete(ctx, responseSystemPrompt, prompt)
	if err != nil {
		return nil, completionError(err)
	}

	// The reply was already generated; losing the counter bump is the lesser
	// failure, so it does not fail the request.
	if err := uc.Stats.IncrementAIReplies(ctx, uc.Policy.Today()); err != nil {
		log.Printf("generate-response: ai_replies counter not incremented: %v", err)
	}

	return &GenerateResponseOutput{Response: response, Intent: input.Intent}, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
