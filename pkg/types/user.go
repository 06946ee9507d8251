package types

// UserRole represents the two actor roles in the portal
type UserRole string

const (
	RoleDoctor  UserRole = "doctor"
	RolePatient UserRole = "patient"
)

// Valid reports whether the role is one the portal knows about.
func (r UserRole) Valid() bool {
	return r == RoleDoctor || r == RolePatient
}

// UserProfile represents the active identity of a session. Doctor-only and
// patient-only fields are left empty for the other role.
type UserProfile struct {
	Username string   `json:"username"`
	Role     UserRole `json:"role"`
	FullName string   `json:"full_name"`
	Age      int      `json:"age,omitempty"`
	Phone    string   `json:"phone,omitempty"`
	Email    string   `json:"email,omitempty"`

	// Doctor fields
	Fee           string `json:"fee,omitempty"`
	ClinicAddress string `json:"clinic_address,omitempty"`
	Specialty     string `json:"specialty,omitempty"`
	Experience    string `json:"experience,omitempty"`
	Bio           string `json:"bio,omitempty"`

	// Patient fields
	DOB              string `json:"dob,omitempty"`
	Address          string `json:"address,omitempty"`
	BloodGroup       string `json:"blood_group,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	Allergies        string `json:"allergies,omitempty"`
}

// ProfileUpdates carries partial profile changes; empty fields are left as-is.
type ProfileUpdates struct {
	FullName         string `json:"full_name,omitempty"`
	Age              int    `json:"age,omitempty"`
	Phone            string `json:"phone,omitempty"`
	Email            string `json:"email,omitempty"`
	Fee              string `json:"fee,omitempty"`
	ClinicAddress    string `json:"clinic_address,omitempty"`
	Specialty        string `json:"specialty,omitempty"`
	Experience       string `json:"experience,omitempty"`
	Bio              string `json:"bio,omitempty"`
	DOB              string `json:"dob,omitempty"`
	Address          string `json:"address,omitempty"`
	BloodGroup       string `json:"blood_group,omitempty"`
	EmergencyContact string `json:"emergency_contact,omitempty"`
	Allergies        string `json:"allergies,omitempty"`
}

// Credentials represents user login credentials
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthToken represents the authentication token response
type AuthToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Session is the login/impersonation result: the active identity and its token.
type Session struct {
	User  *UserProfile `json:"user"`
	Token *AuthToken   `json:"token,omitempty"`
}
