package chat

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yuvasree15/healthpuls/pkg/interfaces"
	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/store"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Service implements an append-only chat channel. The full log persists as
// one collection; an in-memory index keyed by unordered participant pair
// serves direction-agnostic history lookups without scanning the log.
type Service struct {
	mu     sync.RWMutex
	log    []*types.ChatMessage
	byPair map[[2]string][]*types.ChatMessage
	store  store.Store
	logger *logger.Logger
}

// New creates the chat service and rebuilds the pair index from the
// persisted log.
func New(st store.Store, log *logger.Logger) (*Service, error) {
	s := &Service{
		byPair: make(map[[2]string][]*types.ChatMessage),
		store:  st,
		logger: log,
	}

	if err := st.Get(store.KeyChatLog, &s.log); err != nil {
		if err != store.ErrKeyNotFound {
			return nil, fmt.Errorf("failed to load chat log: %w", err)
		}
		s.log = []*types.ChatMessage{}
	}

	for _, msg := range s.log {
		key := pairKey(msg.SenderName, msg.RecipientName)
		s.byPair[key] = append(s.byPair[key], msg)
	}

	return s, nil
}

// Send appends a message from the given identity to the named recipient.
func (s *Service) Send(sender *types.UserProfile, recipientName, text string) (*types.ChatMessage, error) {
	if sender == nil {
		return nil, types.NewAuthenticationError(types.ErrCodeUnauthorized, "no active session")
	}
	if strings.TrimSpace(text) == "" {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "message text is required", nil)
	}
	if recipientName == "" {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "recipient is required", nil)
	}

	now := time.Now()
	msg := &types.ChatMessage{
		ID:            uuid.New().String(),
		SenderName:    sender.FullName,
		SenderRole:    sender.Role,
		RecipientName: recipientName,
		Text:          text,
		Timestamp:     now.Format("3:04 PM"),
		SentAt:        now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := append(s.log, msg)
	if err := s.store.Put(store.KeyChatLog, updated); err != nil {
		return nil, fmt.Errorf("failed to persist chat log: %w", err)
	}
	s.log = updated

	key := pairKey(msg.SenderName, msg.RecipientName)
	s.byPair[key] = append(s.byPair[key], msg)

	s.logger.WithFields(map[string]interface{}{
		"sender":    msg.SenderName,
		"recipient": msg.RecipientName,
	}).Info("Chat message sent")

	return msg, nil
}

// History returns the conversation between two participants regardless of
// which side sent each message, in insertion order.
func (s *Service) History(nameA, nameB string) ([]*types.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.byPair[pairKey(nameA, nameB)]
	out := make([]*types.ChatMessage, len(msgs))
	copy(out, msgs)
	return out, nil
}

// All returns the full message log in insertion order.
func (s *Service) All() ([]*types.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.ChatMessage, len(s.log))
	copy(out, s.log)
	return out, nil
}

// pairKey builds an order-independent key for a two-party conversation. An
// array key avoids ambiguity when a participant name contains a separator
// character.
func pairKey(a, b string) [2]string {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a > b {
		a, b = b, a
	}
	return [2]string{a, b}
}

var _ interfaces.ChatService = (*Service)(nil)
