package usecase

type CheckContactInput struct {
	Channel string `json:"channel"`
	Handle  string `json:"handle"`
}

// ContactDecision is the eligibility verdict. Optional fields only appear
// for the reasons that carry them.
type ContactDecision struct {
	Allowed   bool     `json:"allowed"`
	Status    string   `json:"status,omitempty"`
	Reason    string   `json:"reason,omitempty"`
	Current   *int     `json:"current,omitempty"`
	Max       *int     `json:"max,omitempty"`
	WaitHours *float64 `json:"wait_hours,omitempty"`
}

type LogAttemptInput struct {
	Channel   string `json:"channel"`
	Handle    string `json:"handle"`
	NewStatus string `json:"new_status"`
}

type UpdateStatusInput struct {
	Channel string `json:"channel"`
	Handle  string `json:"handle"`
	Status  string `json:"status"`
}

type UpdateScoreInput struct {
	Channel      string `json:"channel"`
	Handle       string `json:"handle"`
	Intent       string `json:"intent"`
	HasCapital   bool   `json:"has_capital"`
	RespondsFast bool   `json:"responds_fast"`
}

type UpdateScoreOutput struct {
	Score int    `json:"score"`
	ID    string `json:"id"`
}

type ClassifyIntentInput struct {
	Message string `json:"message"`
	Handle  string `json:"handle,omitempty"`
	Channel string `json:"channel,omitempty"`
}

type ClassifyIntentOutput struct {
	Intent  string `json:"intent"`
	Message string `json:"message"`
}

type GenerateResponseInput struct {
	LeadContext string `json:"lead_context"`
	UserMessage string `json:"user_message"`
	Intent      string `json:"intent"`
}

type GenerateResponseOutput struct {
	Response string `json:"response"`
	Intent   string `json:"intent"`
}
