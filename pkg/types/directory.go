package types

// DoctorListing is one entry of the doctor directory. The directory is an
// external dataset; its string-typed rating and price fields are kept as the
// endpoint serves them.
type DoctorListing struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Specialty     string   `json:"specialty"`
	Bio           string   `json:"bio"`
	Keywords      []string `json:"keywords"`
	Experience    string   `json:"experience"`
	Rating        string   `json:"rating"`
	Price         string   `json:"price"`
	BookingNumber string   `json:"bookingNumber"`
	Location      string   `json:"location"`
	Available     bool     `json:"available"`
	Symptoms      []string `json:"symptoms"`
}
