package facilities

import (
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// catalog is the static facility dataset served by the finder.
var catalog = []*types.Facility{
	{ID: 1, Name: "City General Hospital", Type: types.FacilityHospital, Rating: 4.8, Distance: "1.2 km", DistanceKM: 1.2, Timings: "24/7", Contact: "555-0101", Specialties: []string{"Emergency", "Surgery", "Cardiology"}},
	{ID: 2, Name: "Wellness Family Clinic", Type: types.FacilityClinic, Rating: 4.5, Distance: "0.8 km", DistanceKM: 0.8, Timings: "08:00 - 20:00", Contact: "555-0102", Specialties: []string{"GP", "Pediatrics"}},
	{ID: 3, Name: "St. Jude Children Hospital", Type: types.FacilityHospital, Rating: 4.9, Distance: "3.5 km", DistanceKM: 3.5, Timings: "24/7", Contact: "555-0103", Specialties: []string{"Pediatrics", "Oncology"}},
	{ID: 4, Name: "Northside Medical Center", Type: types.FacilityClinic, Rating: 4.2, Distance: "2.1 km", DistanceKM: 2.1, Timings: "09:00 - 18:00", Contact: "555-0104", Specialties: []string{"Dermatology", "Dental"}},
	{ID: 5, Name: "Ortho-Care Specialty Clinic", Type: types.FacilityClinic, Rating: 4.7, Distance: "1.5 km", DistanceKM: 1.5, Timings: "10:00 - 19:00", Contact: "555-0105", Specialties: []string{"Orthopedics"}},
}

// Service serves the clinic and hospital finder dataset.
type Service struct{}

func New() *Service {
	return &Service{}
}

// List filters the catalog by facility type and maximum distance. An empty
// type matches everything; maxDistanceKM <= 0 means no distance cap.
func (s *Service) List(facilityType types.FacilityType, maxDistanceKM float64) ([]*types.Facility, error) {
	if facilityType != "" && !facilityType.Valid() {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "unknown facility type", nil)
	}

	var out []*types.Facility
	for _, f := range catalog {
		if facilityType != "" && f.Type != facilityType {
			continue
		}
		if maxDistanceKM > 0 && f.DistanceKM > maxDistanceKM {
			continue
		}
		cp := *f
		out = append(out, &cp)
	}

	return out, nil
}
