package labs

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yuvasree15/healthpuls/pkg/interfaces"
	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/store"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Service owns the lab test catalog and the persisted booking list. Booking
// charges the card through the payment processor before anything persists.
type Service struct {
	mu       sync.RWMutex
	bookings []*types.LabBooking

	payments interfaces.PaymentProcessor
	store    store.Store
	logger   *logger.Logger
}

// New creates the lab service, loading the persisted bookings.
func New(st store.Store, payments interfaces.PaymentProcessor, log *logger.Logger) (*Service, error) {
	s := &Service{
		payments: payments,
		store:    st,
		logger:   log,
	}

	if err := st.Get(store.KeyLabBookings, &s.bookings); err != nil {
		if err != store.ErrKeyNotFound {
			return nil, fmt.Errorf("failed to load lab bookings: %w", err)
		}
		s.bookings = []*types.LabBooking{}
	}

	return s, nil
}

// Catalog returns the diagnostic test catalog.
func (s *Service) Catalog() []*types.LabTest {
	out := make([]*types.LabTest, len(labTests))
	copy(out, labTests)
	return out
}

// Book charges the test fee and persists a Scheduled booking. An aborted
// charge leaves no booking behind.
func (s *Service) Book(ctx context.Context, testID int, patientName, date, location string, card *types.CardDetails) (*types.LabBooking, error) {
	test, ok := testByID(testID)
	if !ok {
		return nil, types.NewNotFoundError(types.ErrCodeNotFound, fmt.Sprintf("lab test not found: %d", testID))
	}
	if patientName == "" || date == "" || location == "" {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "patient name, date and location are required", nil)
	}

	if err := s.payments.Charge(ctx, card, test.Price); err != nil {
		return nil, err
	}

	booking := &types.LabBooking{
		ID:          uuid.New().String(),
		TestName:    test.Name,
		PatientName: patientName,
		Date:        date,
		Location:    fmt.Sprintf("Health Hub Plaza, %s", location),
		Status:      types.LabScheduled,
		CreatedAt:   time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := append(s.bookings, booking)
	if err := s.store.Put(store.KeyLabBookings, updated); err != nil {
		return nil, fmt.Errorf("failed to persist lab bookings: %w", err)
	}
	s.bookings = updated

	s.logger.WithFields(map[string]interface{}{
		"booking_id": booking.ID,
		"test":       booking.TestName,
		"patient":    booking.PatientName,
	}).Info("Lab test booked")

	return booking, nil
}

// Complete marks a booking done.
func (s *Service) Complete(id string) (*types.LabBooking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.ID == id {
			prev := b.Status
			b.Status = types.LabCompleted
			if err := s.store.Put(store.KeyLabBookings, s.bookings); err != nil {
				b.Status = prev
				return nil, fmt.Errorf("failed to persist lab bookings: %w", err)
			}
			cp := *b
			return &cp, nil
		}
	}

	return nil, types.NewNotFoundError(types.ErrCodeNotFound, fmt.Sprintf("lab booking not found: %s", id))
}

// ListForPatient returns the patient's bookings in insertion order.
func (s *Service) ListForPatient(name string) ([]*types.LabBooking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*types.LabBooking
	for _, b := range s.bookings {
		if b.PatientName == name {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

var _ interfaces.LabService = (*Service)(nil)
