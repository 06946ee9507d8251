package types

import "time"

// ChatMessage represents one immutable message in the chat log. Ordering is
// insertion order; Timestamp is a display label, not a sort key.
type ChatMessage struct {
	ID            string    `json:"id"`
	SenderName    string    `json:"sender_name"`
	SenderRole    UserRole  `json:"sender_role"`
	RecipientName string    `json:"recipient_name"`
	Text          string    `json:"text"`
	Timestamp     string    `json:"timestamp"`
	SentAt        time.Time `json:"sent_at"`
}
