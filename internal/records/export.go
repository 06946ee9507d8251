package records

import (
	"fmt"
	"strings"
)

// Export renders the plain-text download artifact for a record. The output is
// derived from the stored entity on every call and never persisted.
func (s *Service) Export(id string) (string, error) {
	rec, err := s.Get(id)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("HEALTHPULS MEDICAL RECORD\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")
	fmt.Fprintf(&b, "Record ID: %s\n", rec.ID)
	fmt.Fprintf(&b, "Title:     %s\n", rec.Title)
	fmt.Fprintf(&b, "Type:      %s\n", rec.Type)
	fmt.Fprintf(&b, "Date:      %s\n", rec.Date)
	fmt.Fprintf(&b, "Doctor:    %s\n", rec.DoctorName)
	fmt.Fprintf(&b, "Patient:   %s\n", rec.PatientUsername)
	fmt.Fprintf(&b, "Status:    %s\n", rec.Status)
	b.WriteString("\n" + strings.Repeat("-", 40) + "\n\n")
	b.WriteString(rec.Content)
	b.WriteString("\n")

	return b.String(), nil
}
