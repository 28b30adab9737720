package usecase

import (
	"fmt"
	"strings"

	"github.com/xavierca1/outreach-guardian/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validateKey(channel, handle string) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(channel) == "" {
		errors = append(errors, ValidationError{"channel", "is required"})
	} else if !entity.IsValidChannel(channel) {
		errors = append(errors, ValidationError{"channel", "must be instagram or whatsapp"})
	}

	if strings.TrimSpace(handle) == "" {
		errors = append(errors, ValidationError{"handle", "is required"})
	} else if len(handle) > 200 {
		errors = append(errors, ValidationError{"handle", "must not exceed 200 characters"})
	}

	return errors
}

func ValidateCheckContactInput(input CheckContactInput) []ValidationError {
	return validateKey(input.Channel, input.Handle)
}

func ValidateLogAttemptInput(input LogAttemptInput) []ValidationError {
	errors := validateKey(input.Channel, input.Handle)
	if len(input.NewStatus) > 100 {
		errors = append(errors, ValidationError{"new_status", "must not exceed 100 characters"})
	}
	return errors
}

func ValidateUpdateStatusInput(input UpdateStatusInput) []ValidationError {
	errors := validateKey(input.Channel, input.Handle)
	if strings.TrimSpace(input.Status) == "" {
		errors = append(errors, ValidationError{"status", "is required"})
	} else if len(input.Status) > 100 {
		errors = append(errors, ValidationError{"status", "must not exceed 100 characters"})
	}
	return errors
}

func ValidateUpdateScoreInput(input UpdateScoreInput) []ValidationError {
	return validateKey(input.Channel, input.Handle)
}

func ValidateClassifyIntentInput(input ClassifyIntentInput) []ValidationError {
	var errors []ValidationError
	if strings.TrimSpace(input.Message) == "" {
		errors = append(errors, ValidationError{"message", "is required"})
	}
	// handle/channel are optional, but when both are present they must form
	// a valid key so the intent can be persisted.
	if input.Handle != "" && input.Channel != "" {
		errors = append(errors, validateKey(input.Channel, input.Handle)...)
	}
	return errors
}

func ValidateGenerateResponseInput(input GenerateResponseInput) []ValidationError {
	var errors []ValidationError
	if strings.TrimSpace(input.UserMessage) == "" {
		errors = append(errors, ValidationError{"user_message", "is required"})
	}
	return errors
}
