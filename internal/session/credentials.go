package session

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/yuvasree15/healthpuls/pkg/types"
)

// credentialEntry is one row of the demo allow-list. Passwords are hashed at
// construction so the table never holds plaintext after startup.
type credentialEntry struct {
	username     string
	passwordHash []byte
	role         types.UserRole
}

// credentialTable is the fixed demo allow-list. Email identifiers are aliases
// for their canonical usernames.
type credentialTable struct {
	entries map[string]*credentialEntry
	aliases map[string]string
}

func newCredentialTable() (*credentialTable, error) {
	seed := []struct {
		username string
		password string
		role     types.UserRole
	}{
		{"doctor1", "doctor123", types.RoleDoctor},
		{"doctor2", "doctor123", types.RoleDoctor},
		{"user1", "user123", types.RolePatient},
		{"user2", "user123", types.RolePatient},
	}

	table := &credentialTable{
		entries: make(map[string]*credentialEntry, len(seed)),
		aliases: map[string]string{
			"doctor@healthplus.com": "doctor1",
			"yuva@gmail.com":        "user1",
		},
	}

	for _, s := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		table.entries[s.username] = &credentialEntry{
			username:     s.username,
			passwordHash: hash,
			role:         s.role,
		}
	}

	return table, nil
}

// Authenticate resolves the identifier (username or email alias) and checks
// the password. Returns the canonical username and role on success.
func (t *credentialTable) Authenticate(identifier, password string) (string, types.UserRole, error) {
	username := strings.ToLower(strings.TrimSpace(identifier))
	if canonical, ok := t.aliases[username]; ok {
		username = canonical
	}

	entry, ok := t.entries[username]
	if ok {
		if err := bcrypt.CompareHashAndPassword(entry.passwordHash, []byte(password)); err == nil {
			return entry.username, entry.role, nil
		}
	} else {
		// Burn a comparison so hits and misses take similar time.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
	}

	return "", "", types.NewAuthenticationError(types.ErrCodeInvalidCredentials, "invalid username or password")
}

var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-password"), bcrypt.DefaultCost)

// buildProfile constructs the demo profile for an authenticated user, filling
// in the well-known identities and falling back to a generic one.
func buildProfile(username string, role types.UserRole) *types.UserProfile {
	fullName := capitalize(username)

	profile := &types.UserProfile{
		Username: username,
		Role:     role,
		FullName: fullName,
		Age:      20,
		Phone:    "7358318322",
	}

	switch role {
	case types.RoleDoctor:
		switch username {
		case "doctor1":
			profile.FullName = "Dr. Gokul Nair"
		case "doctor2":
			profile.FullName = "Dr. Pooja Sharma"
		default:
			if !strings.HasPrefix(profile.FullName, "Dr.") {
				profile.FullName = "Dr. " + profile.FullName
			}
		}
		profile.Fee = "800"
		profile.ClinicAddress = "Floor 4, Wellness Heights, Medical Square, Mumbai"
		profile.Specialty = "Senior Consultant"
		profile.Experience = "12"
		profile.Bio = "Dedicated medical professional with over a decade of experience in providing high-quality patient care."

	case types.RolePatient:
		if username == "user1" || username == "gokul" {
			profile.FullName = "Yuvashree"
			profile.Email = "yuva@gmail.com"
			profile.Phone = "+91 6369151414"
			profile.DOB = "12-04-2005"
			profile.Address = "24 ragavendra nagar,villivakkam,chennai-600049"
			profile.BloodGroup = "O+"
			profile.EmergencyContact = "Srimathi (+91 9884980015)"
			profile.Allergies = "None"
		}
	}

	return profile
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// buildOverrideProfile constructs the identity activated by an impersonation.
func buildOverrideProfile(fullName, username string, role types.UserRole) *types.UserProfile {
	profile := &types.UserProfile{
		Username: username,
		Role:     role,
		FullName: fullName,
		Age:      35,
		Phone:    "9000000000",
	}

	if role == types.RoleDoctor {
		profile.Fee = "1200"
		profile.ClinicAddress = "City General Hospital, Wing B, Suite 102"
	}

	return profile
}
