package notification

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yuvasree15/healthpuls/pkg/interfaces"
	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/store"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Service implements the NotificationService interface over the persistent
// store. The log is append-only, most-recent-first; the only mutation ever
// applied to an entry is the read flag flipping false to true.
type Service struct {
	mu      sync.RWMutex
	entries []*types.Notification
	store   store.Store
	logger  *logger.Logger
}

// New creates the notification service, loading the persisted log.
func New(st store.Store, log *logger.Logger) (*Service, error) {
	s := &Service{
		store:  st,
		logger: log,
	}

	if err := st.Get(store.KeyNotifications, &s.entries); err != nil {
		if err != store.ErrKeyNotFound {
			return nil, fmt.Errorf("failed to load notification log: %w", err)
		}
		s.entries = []*types.Notification{}
	}

	return s, nil
}

// Notify prepends a directed entry to the log and persists it.
func (s *Service) Notify(recipientUsername, title, message string, severity types.NotificationSeverity) (*types.Notification, error) {
	if recipientUsername == "" {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "recipient username is required", nil)
	}
	if severity == "" {
		severity = types.SeverityInfo
	}

	n := &types.Notification{
		ID:                uuid.New().String(),
		RecipientUsername: recipientUsername,
		Title:             title,
		Message:           message,
		Severity:          severity,
		Read:              false,
		CreatedAt:         time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append([]*types.Notification{n}, s.entries...)
	if err := s.store.Put(store.KeyNotifications, entries); err != nil {
		return nil, fmt.Errorf("failed to persist notification log: %w", err)
	}
	s.entries = entries

	s.logger.WithFields(map[string]interface{}{
		"recipient": recipientUsername,
		"title":     title,
		"severity":  string(severity),
	}).Info("Notification fanned out")

	return n, nil
}

// MarkRead flips the read flag false to true. There is no un-read.
func (s *Service) MarkRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.entries {
		if n.ID == id {
			if n.Read {
				return nil
			}
			n.Read = true
			if err := s.store.Put(store.KeyNotifications, s.entries); err != nil {
				n.Read = false
				return fmt.Errorf("failed to persist notification log: %w", err)
			}
			return nil
		}
	}

	return types.NewNotFoundError(types.ErrCodeNotFound, fmt.Sprintf("notification not found: %s", id))
}

// ListForUser returns the entries directed at username, most recent first.
func (s *Service) ListForUser(username string) ([]*types.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*types.Notification
	for _, n := range s.entries {
		if n.RecipientUsername == username {
			out = append(out, n)
		}
	}
	return out, nil
}

// UnreadCount returns the number of unread entries for username.
func (s *Service) UnreadCount(username string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.entries {
		if n.RecipientUsername == username && !n.Read {
			count++
		}
	}
	return count, nil
}

var _ interfaces.NotificationService = (*Service)(nil)
