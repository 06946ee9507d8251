package interfaces

import "github.com/yuvasree15/healthpuls/pkg/types"

// Notifier is the narrow fan-out surface other components depend on.
type Notifier interface {
	Notify(recipientUsername, title, message string, severity types.NotificationSeverity) (*types.Notification, error)
}

// NotificationService is the append-only notification log: directed entries,
// most-recent-first, with a monotonic read flag as the only mutation.
type NotificationService interface {
	Notifier

	// MarkRead flips the read flag false to true. There is no un-read.
	MarkRead(id string) error

	ListForUser(username string) ([]*types.Notification, error)
	UnreadCount(username string) (int, error)
}

// ChatService is the append-only per-pair message channel. Messages are
// immutable; ordering is insertion order only.
type ChatService interface {
	Send(sender *types.UserProfile, recipientName, text string) (*types.ChatMessage, error)

	// History returns messages between the two names regardless of which was
	// sender and which recipient.
	History(nameA, nameB string) ([]*types.ChatMessage, error)

	All() ([]*types.ChatMessage, error)
}
