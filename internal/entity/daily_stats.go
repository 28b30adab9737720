package entity

// DailyStats carries one calendar day's outbound counters. Rows are created
// lazily on the first increment of a day and counters never decrease within
// that day; the implicit reset is just a new row keyed on the next date.
type DailyStats struct {
	Date           string `json:"date"` // YYYY-MM-DD in the canonical timezone
	IGMessagesSent int    `json:"ig_messages_sent"`
	WAMessagesSent int    `json:"wa_messages_sent"`
	AIRepliesSent  int    `json:"ai_replies_sent"`
}

// SentOn returns the sent counter for a channel.
func (s DailyStats) SentOn(channel string) int {
	switch channel {
	case ChannelInstagram:
		return s.IGMessagesSent
	case ChannelWhatsApp:
		return s.WAMessagesSent
	}
	return 0
}

// TotalSent is the day's outbound volume across both channels.
func (s DailyStats) TotalSent() int {
	return s.IGMessagesSent + s.WAMessagesSent
}
