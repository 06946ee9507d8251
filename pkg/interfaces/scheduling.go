package interfaces

import "github.com/yuvasree15/healthpuls/pkg/types"

// AppointmentService owns appointment records and their status state machine.
// Transitions along disallowed edges are rejected with a typed error;
// Cancelled and Completed are terminal. Appointments are never deleted.
type AppointmentService interface {
	// Book creates a Pending appointment and notifies the doctor inbox.
	Book(req *types.BookingRequest) (*types.Appointment, error)

	// Accept and Confirm move the appointment forward and notify the patient.
	Accept(id string) (*types.Appointment, error)
	Confirm(id string) (*types.Appointment, error)

	// Reschedule moves the appointment to a new date and notifies the patient.
	Reschedule(id, newDate string) (*types.Appointment, error)

	// Cancel moves the appointment to Cancelled and notifies the patient.
	Cancel(id string) (*types.Appointment, error)

	// Complete marks the appointment done. No notification is emitted.
	Complete(id string) (*types.Appointment, error)

	Get(id string) (*types.Appointment, error)
	List(filters *types.AppointmentFilters) ([]*types.Appointment, error)
}

// AppointmentRepository persists the appointment collection. Mutations rewrite
// the collection wholesale through the key-value store.
type AppointmentRepository interface {
	Create(apt *types.Appointment) error
	GetByID(id string) (*types.Appointment, error)
	Update(apt *types.Appointment) error
	List(filters *types.AppointmentFilters) ([]*types.Appointment, error)
}
