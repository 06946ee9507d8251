package interfaces

import "github.com/yuvasree15/healthpuls/pkg/types"

// SessionService manages the portal's active identity: login against the fixed
// credential table, one level of impersonation with revert, and profile edits.
// Every mutation persists the identity synchronously.
type SessionService interface {
	// Login authenticates against the credential table and activates the
	// matching profile, clearing any stacked override.
	Login(creds *types.Credentials) (*types.Session, error)

	// Impersonate stacks the current doctor identity and activates an override
	// profile. A second impersonation while overridden is rejected.
	Impersonate(fullName, username string, role types.UserRole) (*types.UserProfile, error)

	// Revert restores the stacked identity and clears the override slot.
	// Reverting with no override is a no-op returning the current identity.
	Revert() (*types.UserProfile, error)

	// Logout clears current and stacked identity and their persisted keys.
	Logout() error

	// Current returns the active identity, or nil when logged out.
	Current() *types.UserProfile

	// Original returns the stacked identity under an override, or nil.
	Original() *types.UserProfile

	// UpdateProfile merges non-empty fields into the active identity.
	UpdateProfile(updates *types.ProfileUpdates) (*types.UserProfile, error)

	// Theme preference, persisted under its own key.
	SetTheme(theme string) error
	Theme() string
}
