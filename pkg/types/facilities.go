package types

// FacilityType distinguishes full hospitals from walk-in clinics.
type FacilityType string

const (
	FacilityHospital FacilityType = "Hospital"
	FacilityClinic   FacilityType = "Clinic"
)

// Valid reports whether the type is one the finder knows about.
func (t FacilityType) Valid() bool {
	return t == FacilityHospital || t == FacilityClinic
}

// Facility is one entry of the clinic and hospital finder. Distance is a
// display string ("1.2 km"); DistanceKM carries the sortable value.
type Facility struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	Type        FacilityType `json:"type"`
	Rating      float64      `json:"rating"`
	Distance    string       `json:"distance"`
	DistanceKM  float64      `json:"distance_km"`
	Timings     string       `json:"timings"`
	Contact     string       `json:"contact"`
	Specialties []string     `json:"specialties"`
}
