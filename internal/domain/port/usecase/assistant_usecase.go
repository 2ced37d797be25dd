package usecase

import "context"

// AssistantReply is the composed assistant response. For gold-related queries
// Nudge and NextStep are populated; otherwise only Response is set.
type AssistantReply struct {
	Response    string
	Nudge       string
	NextStep    string
	IsGoldQuery bool
}

// AssistantUseCase defines the keyword-driven assistant operations
type AssistantUseCase interface {
	// Ask verifies the user exists, classifies the query and returns the
	// canned reply for its class. This backs the POST /gold-assistant endpoint.
	//
	// Possible errors:
	// - ErrUserNotFound: If the user doesn't exist
	Ask(ctx context.Context, userID uint64, query string) (*AssistantReply, error)
}
