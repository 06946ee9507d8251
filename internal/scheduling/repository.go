package scheduling

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/yuvasree15/healthpuls/pkg/interfaces"
	"github.com/yuvasree15/healthpuls/pkg/store"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Repository persists the appointment collection through the key-value store.
// Every mutation rewrites the collection wholesale.
type Repository struct {
	mu           sync.RWMutex
	appointments []*types.Appointment
	store        store.Store
}

// NewRepository creates the repository, loading the persisted collection and
// seeding the demo rows on first run.
func NewRepository(st store.Store) (*Repository, error) {
	r := &Repository{store: st}

	err := st.Get(store.KeyAppointments, &r.appointments)
	switch err {
	case nil:
	case store.ErrKeyNotFound:
		r.appointments = seedAppointments()
		if err := st.Put(store.KeyAppointments, r.appointments); err != nil {
			return nil, fmt.Errorf("failed to persist seed appointments: %w", err)
		}
	default:
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	return r, nil
}

// Create appends a new appointment and persists the collection.
func (r *Repository) Create(apt *types.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	updated := append(r.appointments, apt)
	if err := r.store.Put(store.KeyAppointments, updated); err != nil {
		return fmt.Errorf("failed to persist appointments: %w", err)
	}
	r.appointments = updated
	return nil
}

// GetByID returns a copy of the appointment with the given id.
func (r *Repository) GetByID(id string) (*types.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, apt := range r.appointments {
		if apt.ID == id {
			cp := *apt
			return &cp, nil
		}
	}

	return nil, types.NewNotFoundError(types.ErrCodeNotFound, fmt.Sprintf("appointment not found: %s", id))
}

// Update replaces the stored appointment with the same id.
func (r *Repository) Update(apt *types.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.appointments {
		if existing.ID == apt.ID {
			updated := make([]*types.Appointment, len(r.appointments))
			copy(updated, r.appointments)
			cp := *apt
			updated[i] = &cp

			if err := r.store.Put(store.KeyAppointments, updated); err != nil {
				return fmt.Errorf("failed to persist appointments: %w", err)
			}
			r.appointments = updated
			return nil
		}
	}

	return types.NewNotFoundError(types.ErrCodeNotFound, fmt.Sprintf("appointment not found: %s", apt.ID))
}

// List returns copies of appointments matching the filters, in insertion
// order. A nil filter returns everything.
func (r *Repository) List(filters *types.AppointmentFilters) ([]*types.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*types.Appointment
	for _, apt := range r.appointments {
		if filters != nil {
			if filters.PatientUsername != "" && apt.PatientUsername != filters.PatientUsername {
				continue
			}
			if filters.DoctorName != "" && apt.DoctorName != filters.DoctorName {
				continue
			}
			if filters.Status != "" && apt.Status != filters.Status {
				continue
			}
		}
		cp := *apt
		out = append(out, &cp)
	}

	return out, nil
}

// seedAppointments builds the demo rows written on first run.
func seedAppointments() []*types.Appointment {
	now := time.Now()
	return []*types.Appointment{
		{
			ID:              uuid.New().String(),
			DoctorName:      "Dr. Gokul Nair",
			DoctorUsername:  "doctor1",
			PatientName:     "Yuvashree",
			PatientUsername: "user1",
			PatientPhone:    "+91 6369151414",
			PatientAge:      20,
			City:            "Chennai",
			Date:            "2024-06-20",
			Time:            "10:00 AM",
			Status:          types.StatusAccepted,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              uuid.New().String(),
			DoctorName:      "Dr. Pooja Sharma",
			DoctorUsername:  "doctor2",
			PatientName:     "Yuvashree",
			PatientUsername: "user1",
			PatientPhone:    "+91 6369151414",
			PatientAge:      20,
			City:            "Chennai",
			Date:            "2024-06-21",
			Time:            "11:30 AM",
			Status:          types.StatusPending,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
		{
			ID:              uuid.New().String(),
			DoctorName:      "Dr. Gokul Nair",
			DoctorUsername:  "doctor1",
			PatientName:     "Sarah Jones",
			PatientUsername: "user2",
			PatientPhone:    "9000000000",
			PatientAge:      35,
			City:            "Mumbai",
			Date:            "2024-06-22",
			Time:            "02:00 PM",
			Status:          types.StatusAccepted,
			CreatedAt:       now,
			UpdatedAt:       now,
		},
	}
}

var _ interfaces.AppointmentRepository = (*Repository)(nil)
