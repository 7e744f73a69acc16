package model

// Scope carries the caller identity for a single request.
type Scope struct {
	// ConversationID groups messages belonging to one chat thread; it keys
	// the runner session cache.
	ConversationID string
	// UserID identifies the end user, when the transport provides one.
	UserID string
}
