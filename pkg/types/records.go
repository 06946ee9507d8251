package types

// RecordType represents the kind of clinical document
type RecordType string

const (
	RecordPrescription RecordType = "Prescription"
	RecordReport       RecordType = "Report"
)

// RecordStatus is a free-form review marker on a health record. Any status is
// reachable from any other; this is deliberately not a state machine.
type RecordStatus string

const (
	RecordNew      RecordStatus = "New"
	RecordReviewed RecordStatus = "Reviewed"
	RecordSigned   RecordStatus = "Signed"
)

// Valid reports whether the status is one of the known markers.
func (s RecordStatus) Valid() bool {
	return s == RecordNew || s == RecordReviewed || s == RecordSigned
}

// HealthRecord represents one clinical document. Records are appended and
// re-marked, never deleted.
type HealthRecord struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Date            string       `json:"date"`
	Type            RecordType   `json:"type"`
	DoctorName      string       `json:"doctor_name"`
	PatientUsername string       `json:"patient_username"`
	Content         string       `json:"content"`
	Status          RecordStatus `json:"status"`
}
