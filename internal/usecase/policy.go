package usecase

import (
	"time"

	"github.com/xavierca1/outreach-guardian/internal/entity"
)

// ContactPolicy gathers the knobs of the eligibility engine. A cap of 0
// means the channel is deliberately uncapped (the WhatsApp default): only
// Instagram carries an anti-spam platform limit out of the box.
type ContactPolicy struct {
	IGDailyCap             int
	WADailyCap             int
	CooldownHours          float64
	AllowTerminalOverwrite bool
	Location               *time.Location
}

// CapFor returns the daily cap for a channel, 0 when uncapped.
func (p ContactPolicy) CapFor(channel string) int {
	switch channel {
	case entity.ChannelInstagram:
		return p.IGDailyCap
	case entity.ChannelWhatsApp:
		return p.WADailyCap
	}
	return 0
}

// Today resolves the current calendar day under the canonical clock. Every
// quota read and increment must key on this value so the day boundary is
// one policy, not scattered time.Now() calls.
func (p ContactPolicy) Today() string {
	return p.DateOf(time.Now())
}

// DateOf formats an instant as a calendar day in the policy timezone.
func (p ContactPolicy) DateOf(t time.Time) string {
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("2006-01-02")
}
