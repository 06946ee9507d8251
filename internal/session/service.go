package session

import (
	"fmt"
	"sync"

	"github.com/yuvasree15/healthpuls/pkg/interfaces"
	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/monitoring"
	"github.com/yuvasree15/healthpuls/pkg/store"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

// Service manages the portal's active identity with one level of
// impersonation. The current and stacked identities persist under their own
// store keys and are reloaded on startup.
type Service struct {
	mu       sync.RWMutex
	current  *types.UserProfile
	original *types.UserProfile
	theme    string

	table   *credentialTable
	tokens  *TokenIssuer
	store   store.Store
	logger  *logger.Logger
	metrics *monitoring.MetricsCollector
}

// New creates the session service, loading any persisted identity state.
func New(st store.Store, tokens *TokenIssuer, log *logger.Logger, metrics *monitoring.MetricsCollector) (*Service, error) {
	table, err := newCredentialTable()
	if err != nil {
		return nil, fmt.Errorf("failed to build credential table: %w", err)
	}

	s := &Service{
		table:   table,
		tokens:  tokens,
		store:   st,
		logger:  log,
		metrics: metrics,
	}

	if err := st.Get(store.KeyIdentity, &s.current); err != nil && err != store.ErrKeyNotFound {
		return nil, fmt.Errorf("failed to load identity: %w", err)
	}
	if err := st.Get(store.KeyOriginalIdentity, &s.original); err != nil && err != store.ErrKeyNotFound {
		return nil, fmt.Errorf("failed to load stacked identity: %w", err)
	}
	if err := st.Get(store.KeyTheme, &s.theme); err != nil && err != store.ErrKeyNotFound {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	}

	return s, nil
}

// Login authenticates against the credential table and activates the matching
// demo profile, replacing any current identity and clearing the override slot.
func (s *Service) Login(creds *types.Credentials) (*types.Session, error) {
	if creds == nil || creds.Username == "" || creds.Password == "" {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "username and password are required", nil)
	}

	username, role, err := s.table.Authenticate(creds.Username, creds.Password)
	if err != nil {
		s.metrics.RecordAuthAttempt("failure")
		s.logger.Audit(creds.Username, "login", "session", false, map[string]interface{}{})
		return nil, err
	}

	profile := buildProfile(username, role)

	token, err := s.tokens.Issue(profile)
	if err != nil {
		return nil, types.NewInternalError(types.ErrCodeInternalError, "failed to issue access token", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Put(store.KeyIdentity, profile); err != nil {
		return nil, fmt.Errorf("failed to persist identity: %w", err)
	}
	if err := s.store.Delete(store.KeyOriginalIdentity); err != nil {
		return nil, fmt.Errorf("failed to clear stacked identity: %w", err)
	}
	s.current = profile
	s.original = nil

	s.metrics.RecordAuthAttempt("success")
	s.logger.Audit(username, "login", "session", true, map[string]interface{}{
		"role": string(role),
	})

	return &types.Session{User: profile, Token: token}, nil
}

// Impersonate stacks the current doctor identity and activates an override
// profile. Only doctors may impersonate, and only one level is supported.
func (s *Service) Impersonate(fullName, username string, role types.UserRole) (*types.UserProfile, error) {
	if fullName == "" || username == "" || !role.Valid() {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "full name, username and a valid role are required", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, types.NewAuthenticationError(types.ErrCodeUnauthorized, "no active session")
	}
	if s.original != nil {
		return nil, types.NewConflictError(types.ErrCodeConflict, "already impersonating; revert first")
	}
	if s.current.Role != types.RoleDoctor {
		return nil, types.NewConflictError(types.ErrCodeUnauthorized, "only doctors can impersonate")
	}

	override := buildOverrideProfile(fullName, username, role)

	if err := s.store.Put(store.KeyOriginalIdentity, s.current); err != nil {
		return nil, fmt.Errorf("failed to persist stacked identity: %w", err)
	}
	if err := s.store.Put(store.KeyIdentity, override); err != nil {
		return nil, fmt.Errorf("failed to persist identity: %w", err)
	}

	s.original = s.current
	s.current = override

	s.logger.Audit(s.original.Username, "impersonate", username, true, map[string]interface{}{
		"target_role": string(role),
	})

	return override, nil
}

// Revert restores the stacked identity. With no override active it returns
// the current identity unchanged.
func (s *Service) Revert() (*types.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.original == nil {
		return s.current, nil
	}

	if err := s.store.Put(store.KeyIdentity, s.original); err != nil {
		return nil, fmt.Errorf("failed to persist identity: %w", err)
	}
	if err := s.store.Delete(store.KeyOriginalIdentity); err != nil {
		return nil, fmt.Errorf("failed to clear stacked identity: %w", err)
	}

	restored := s.original
	s.current = restored
	s.original = nil

	s.logger.Audit(restored.Username, "revert", "session", true, map[string]interface{}{})

	return restored, nil
}

// Logout clears the current and stacked identities and their persisted keys.
func (s *Service) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(store.KeyIdentity); err != nil {
		return fmt.Errorf("failed to clear identity: %w", err)
	}
	if err := s.store.Delete(store.KeyOriginalIdentity); err != nil {
		return fmt.Errorf("failed to clear stacked identity: %w", err)
	}

	if s.current != nil {
		s.logger.Audit(s.current.Username, "logout", "session", true, map[string]interface{}{})
	}
	s.current = nil
	s.original = nil

	return nil
}

// Current returns the active identity, or nil when logged out.
func (s *Service) Current() *types.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Original returns the stacked identity under an override, or nil.
func (s *Service) Original() *types.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.original
}

// UpdateProfile merges non-empty fields into the active identity and
// persists the result.
func (s *Service) UpdateProfile(updates *types.ProfileUpdates) (*types.UserProfile, error) {
	if updates == nil {
		return nil, types.NewValidationError(types.ErrCodeInvalidInput, "updates are required", nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, types.NewAuthenticationError(types.ErrCodeUnauthorized, "no active session")
	}

	updated := *s.current
	applyUpdates(&updated, updates)

	if err := s.store.Put(store.KeyIdentity, &updated); err != nil {
		return nil, fmt.Errorf("failed to persist identity: %w", err)
	}
	s.current = &updated

	s.logger.WithUser(s.current.Username).Info("Profile updated")

	return s.current, nil
}

// SetTheme persists the theme preference under its own key.
func (s *Service) SetTheme(theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Put(store.KeyTheme, theme); err != nil {
		return fmt.Errorf("failed to persist theme: %w", err)
	}
	s.theme = theme
	return nil
}

// Theme returns the persisted theme preference.
func (s *Service) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Tokens exposes the token issuer for the HTTP auth middleware.
func (s *Service) Tokens() *TokenIssuer {
	return s.tokens
}

func applyUpdates(profile *types.UserProfile, updates *types.ProfileUpdates) {
	if updates.FullName != "" {
		profile.FullName = updates.FullName
	}
	if updates.Age != 0 {
		profile.Age = updates.Age
	}
	if updates.Phone != "" {
		profile.Phone = updates.Phone
	}
	if updates.Email != "" {
		profile.Email = updates.Email
	}
	if updates.Fee != "" {
		profile.Fee = updates.Fee
	}
	if updates.ClinicAddress != "" {
		profile.ClinicAddress = updates.ClinicAddress
	}
	if updates.Specialty != "" {
		profile.Specialty = updates.Specialty
	}
	if updates.Experience != "" {
		profile.Experience = updates.Experience
	}
	if updates.Bio != "" {
		profile.Bio = updates.Bio
	}
	if updates.DOB != "" {
		profile.DOB = updates.DOB
	}
	if updates.Address != "" {
		profile.Address = updates.Address
	}
	if updates.BloodGroup != "" {
		profile.BloodGroup = updates.BloodGroup
	}
	if updates.EmergencyContact != "" {
		profile.EmergencyContact = updates.EmergencyContact
	}
	if updates.Allergies != "" {
		profile.Allergies = updates.Allergies
	}
}

var _ interfaces.SessionService = (*Service)(nil)
