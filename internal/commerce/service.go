package commerce

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yuvasree15/healthpuls/pkg/interfaces"
	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/monitoring"
	"github.com/yuvasree15/healthpuls/pkg/store"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Service implements the pharmacy cart and checkout. The cart lives in
// memory; the order history persists, most recent first. Checkout holds the
// lock across the persist-and-clear so no interleaving can observe an order
// without an emptied cart or vice versa.
type Service struct {
	mu     sync.RWMutex
	cart   []*types.CartItem
	orders []*types.Order

	payments interfaces.PaymentProcessor
	store    store.Store
	logger   *logger.Logger
	metrics  *monitoring.MetricsCollector
}

// New creates the commerce service, loading the persisted order history.
func New(st store.Store, payments interfaces.PaymentProcessor, log *logger.Logger, metrics *monitoring.MetricsCollector) (*Service, error) {
	s := &Service{
		payments: payments,
		store:    st,
		logger:   log,
		metrics:  metrics,
	}

	if err := st.Get(store.KeyOrderHistory, &s.orders); err != nil {
		if err != store.ErrKeyNotFound {
			return nil, fmt.Errorf("failed to load order history: %w", err)
		}
		s.orders = []*types.Order{}
	}

	return s, nil
}

// AddToCart merges by medicine id, incrementing the quantity of an existing
// line rather than adding a duplicate.
func (s *Service) AddToCart(m *types.Medicine) {
	if m == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.cart {
		if item.ID == m.ID {
			item.Quantity++
			return
		}
	}

	s.cart = append(s.cart, &types.CartItem{Medicine: *m, Quantity: 1})
}

// Decrement lowers a line's quantity by one, removing the line at zero.
// Decrementing an absent id is a no-op.
func (s *Service) Decrement(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.cart {
		if item.ID == id {
			if item.Quantity > 1 {
				item.Quantity--
			} else {
				s.cart = append(s.cart[:i], s.cart[i+1:]...)
			}
			return
		}
	}
}

// Remove drops a line regardless of quantity.
func (s *Service) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.cart {
		if item.ID == id {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return
		}
	}
}

// Cart returns a snapshot of the current cart lines.
func (s *Service) Cart() []*types.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.CartItem, len(s.cart))
	for i, item := range s.cart {
		cp := *item
		out[i] = &cp
	}
	return out
}

// Total returns the sum of price times quantity across the cart.
func (s *Service) Total() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.total()
}

func (s *Service) total() float64 {
	sum := 0.0
	for _, item := range s.cart {
		sum += item.Price * float64(item.Quantity)
	}
	return sum
}

// Checkout charges the card, snapshots the cart into an order, prepends it to
// the history and empties the cart as one atomic step. An empty cart is a
// no-op returning (nil, nil).
func (s *Service) Checkout(ctx context.Context, card *types.CardDetails) (*types.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return nil, nil
	}

	amount := s.total()
	if err := s.payments.Charge(ctx, card, amount); err != nil {
		return nil, err
	}

	items := make([]types.CartItem, len(s.cart))
	for i, item := range s.cart {
		items[i] = *item
	}

	order := &types.Order{
		ID:       newOrderID(),
		Items:    items,
		Total:    amount,
		PlacedAt: time.Now(),
	}

	updated := append([]*types.Order{order}, s.orders...)
	if err := s.store.Put(store.KeyOrderHistory, updated); err != nil {
		return nil, fmt.Errorf("failed to persist order history: %w", err)
	}
	s.orders = updated
	s.cart = nil

	s.metrics.RecordOrder()
	s.logger.WithFields(map[string]interface{}{
		"order_id": order.ID,
		"total":    order.Total,
		"lines":    len(order.Items),
	}).Info("Order placed")

	return order, nil
}

// Orders returns the persisted order history, most recent first.
func (s *Service) Orders() ([]*types.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

// newOrderID builds the short uppercase order reference.
func newOrderID() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "ORD-" + raw[:9]
}

var _ interfaces.CartService = (*Service)(nil)
