package dto

// AssistantRequest represents the API request for the gold assistant
type AssistantRequest struct {
	UserID uint64 `json:"user_id" binding:"required"`
	Query  string `json:"query" binding:"required"`
}

// AssistantResponse represents the classifier-driven assistant reply.
// Nudge and NextStep are only present for gold-related queries.
type AssistantResponse struct {
	Response    string `json:"response"`
	Nudge       string `json:"nudge,omitempty"`
	NextStep    string `json:"next_step,omitempty"`
	IsGoldQuery bool   `json:"is_gold_query"`
}
