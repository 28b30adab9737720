package entity

import (
	"errors"
	"time"
)

const (
	ChannelInstagram = "instagram"
	ChannelWhatsApp  = "whatsapp"
)

// Lead statuses. The column is free-form on purpose: webhooks may write
// statuses this service never defined, and the engine must still gate them.
const (
	StatusNew          = "new"
	StatusFirstSent    = "first_message_sent"
	StatusFollowupSent = "followup_sent"
	StatusResponded    = "responded"
	StatusStop         = "stop"
	StatusDND          = "dnd"
)

// ErrTerminalStatus is returned by the store when a logged attempt would
// overwrite a stop/dnd lead and the overwrite policy forbids it.
var ErrTerminalStatus = errors.New("lead is in a terminal opt-out status")

// ErrLeadNotFound is returned when an operation requires an existing lead.
var ErrLeadNotFound = errors.New("lead not found")

type Lead struct {
	ID               string     `json:"id"`
	Channel          string     `json:"channel"`
	Handle           string     `json:"handle"`
	Status           string     `json:"status"`
	Intent           string     `json:"intent,omitempty"`
	Score            int        `json:"score"`
	InteractionCount int        `json:"interaction_count"`
	LastContactedAt  *time.Time `json:"last_contacted_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// LeadID builds the composite primary key. One lead per (channel, handle).
func LeadID(channel, handle string) string {
	return channel + "_" + handle
}

// IsTerminal reports whether a status is a sticky opt-out that no cooldown
// or elapsed time overrides.
func IsTerminal(status string) bool {
	return status == StatusStop || status == StatusDND
}

// IsValidChannel reports whether the channel is one of the two supported
// outreach platforms.
func IsValidChannel(channel string) bool {
	return channel == ChannelInstagram || channel == ChannelWhatsApp
}
