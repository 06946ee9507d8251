package types

import "time"

// LabTest represents a lab test catalog entry
type LabTest struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
}

// LabBookingStatus represents the state of a lab test booking
type LabBookingStatus string

const (
	LabScheduled LabBookingStatus = "Scheduled"
	LabCompleted LabBookingStatus = "Completed"
)

// LabBooking represents one scheduled lab test
type LabBooking struct {
	ID          string           `json:"id"`
	TestName    string           `json:"test_name"`
	PatientName string           `json:"patient_name"`
	Date        string           `json:"date"`
	Location    string           `json:"location"`
	Status      LabBookingStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}
