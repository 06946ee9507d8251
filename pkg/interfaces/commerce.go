package interfaces

import (
	"context"

	"github.com/yuvasree15/healthpuls/pkg/types"
)

// PaymentProcessor authorizes a card charge. The portal ships a simulated
// processor with a fixed delay; a cancelled context aborts with no side effect.
type PaymentProcessor interface {
	Charge(ctx context.Context, card *types.CardDetails, amount float64) error
}

// CartService is the in-memory cart plus the persisted order history.
// Checkout is atomic: either an order is appended and the cart emptied, or
// neither happens.
type CartService interface {
	AddToCart(m *types.Medicine)
	Decrement(id int)
	Remove(id int)
	Cart() []*types.CartItem
	Total() float64

	// Checkout no-ops on an empty cart, returning (nil, nil).
	Checkout(ctx context.Context, card *types.CardDetails) (*types.Order, error)

	Orders() ([]*types.Order, error)
}

// LabService owns the lab test catalog and persisted bookings.
type LabService interface {
	Catalog() []*types.LabTest
	Book(ctx context.Context, testID int, patientName, date, location string, card *types.CardDetails) (*types.LabBooking, error)
	Complete(id string) (*types.LabBooking, error)
	ListForPatient(name string) ([]*types.LabBooking, error)
}
