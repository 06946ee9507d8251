package types

import "time"

// AppointmentStatus represents appointment status values
type AppointmentStatus string

const (
	StatusPending     AppointmentStatus = "Pending"
	StatusAccepted    AppointmentStatus = "Accepted"
	StatusConfirmed   AppointmentStatus = "Confirmed"
	StatusRescheduled AppointmentStatus = "Rescheduled"
	StatusCancelled   AppointmentStatus = "Cancelled"
	StatusCompleted   AppointmentStatus = "Completed"
)

// appointmentTransitions is the set of allowed status edges. Cancelled and
// Completed are terminal: no edge leaves them.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:     {StatusAccepted, StatusConfirmed, StatusRescheduled, StatusCancelled},
	StatusAccepted:    {StatusConfirmed, StatusCompleted, StatusRescheduled, StatusCancelled},
	StatusConfirmed:   {StatusCompleted, StatusRescheduled, StatusCancelled},
	StatusRescheduled: {StatusAccepted, StatusConfirmed, StatusRescheduled, StatusCancelled},
	StatusCancelled:   {},
	StatusCompleted:   {},
}

// Terminal reports whether no transition leaves this status.
func (s AppointmentStatus) Terminal() bool {
	return len(appointmentTransitions[s]) == 0 && (s == StatusCancelled || s == StatusCompleted)
}

// CanTransitionTo reports whether the edge from s to target is allowed.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, t := range appointmentTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Appointment represents a consultation booking. People are referenced both by
// stable username and by denormalized display name; the username is the key
// used for notification routing and lookups.
type Appointment struct {
	ID              string            `json:"id"`
	DoctorName      string            `json:"doctor_name"`
	DoctorUsername  string            `json:"doctor_username"`
	PatientName     string            `json:"patient_name"`
	PatientUsername string            `json:"patient_username"`
	PatientPhone    string            `json:"patient_phone"`
	PatientAge      int               `json:"patient_age"`
	City            string            `json:"city"`
	Date            string            `json:"date"`
	Time            string            `json:"time"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// BookingRequest represents the data needed to book an appointment
type BookingRequest struct {
	DoctorName      string `json:"doctor_name"`
	DoctorUsername  string `json:"doctor_username,omitempty"`
	PatientName     string `json:"patient_name"`
	PatientUsername string `json:"patient_username"`
	PatientPhone    string `json:"patient_phone"`
	PatientAge      int    `json:"patient_age"`
	City            string `json:"city"`
	Date            string `json:"date"`
	Time            string `json:"time"`
}

// AppointmentFilters represents filters for appointment queries
type AppointmentFilters struct {
	PatientUsername string            `json:"patient_username,omitempty"`
	DoctorName      string            `json:"doctor_name,omitempty"`
	Status          AppointmentStatus `json:"status,omitempty"`
}
