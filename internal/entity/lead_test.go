package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeadID(t *testing.T) {
	assert.Equal(t, "instagram_ana", LeadID(ChannelInstagram, "ana"))
	assert.Equal(t, "whatsapp_+5511999", LeadID(ChannelWhatsApp, "+5511999"))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusStop))
	assert.True(t, IsTerminal(StatusDND))
	assert.False(t, IsTerminal(StatusResponded))
	assert.False(t, IsTerminal(StatusNew))
	assert.False(t, IsTerminal("some_webhook_status"))
}

func TestDailyStatsCounters(t *testing.T) {
	stats := DailyStats{IGMessagesSent: 12, WAMessagesSent: 5}

	assert.Equal(t, 12, stats.SentOn(ChannelInstagram))
	assert.Equal(t, 5, stats.SentOn(ChannelWhatsApp))
	assert.Equal(t, 0, stats.SentOn("unknown"))
	assert.Equal(t, 17, stats.TotalSent())
}
