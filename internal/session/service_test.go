package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvasree15/healthpuls/pkg/config"
	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/monitoring"
	"github.com/yuvasree15/healthpuls/pkg/store"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

func testTokenIssuer() *TokenIssuer {
	return NewTokenIssuer(config.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenTTL: 3600,
		Issuer:         "healthpuls",
		Audience:       "healthpuls-portal",
	})
}

func setupTestService(t *testing.T) (*Service, store.Store) {
	t.Helper()
	st := store.NewMemory()
	svc, err := New(st, testTokenIssuer(), logger.New("error"), monitoring.NewMetricsCollector("session-test"))
	require.NoError(t, err)
	return svc, st
}

func TestLoginKnownDoctor(t *testing.T) {
	svc, _ := setupTestService(t)

	session, err := svc.Login(&types.Credentials{Username: "doctor1", Password: "doctor123"})
	require.NoError(t, err)
	require.NotNil(t, session.User)
	require.NotNil(t, session.Token)

	assert.Equal(t, "Dr. Gokul Nair", session.User.FullName)
	assert.Equal(t, types.RoleDoctor, session.User.Role)
	assert.Equal(t, "800", session.User.Fee)
	assert.Equal(t, "Bearer", session.Token.TokenType)
	assert.NotEmpty(t, session.Token.AccessToken)
}

func TestLoginEmailAlias(t *testing.T) {
	svc, _ := setupTestService(t)

	session, err := svc.Login(&types.Credentials{Username: "yuva@gmail.com", Password: "user123"})
	require.NoError(t, err)

	assert.Equal(t, "user1", session.User.Username)
	assert.Equal(t, "Yuvashree", session.User.FullName)
	assert.Equal(t, "O+", session.User.BloodGroup)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Login(&types.Credentials{Username: "nobody", Password: "whatever"})
	require.Error(t, err)

	pe, ok := err.(*types.PortalError)
	require.True(t, ok)
	assert.Equal(t, types.ErrorTypeAuthentication, pe.Type)
	assert.Nil(t, svc.Current())
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Login(&types.Credentials{Username: "doctor1", Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, svc.Current())
}

func TestLoginClearsOverride(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Login(&types.Credentials{Username: "doctor1", Password: "doctor123"})
	require.NoError(t, err)
	_, err = svc.Impersonate("Sarah Jones", "user2", types.RolePatient)
	require.NoError(t, err)
	require.NotNil(t, svc.Original())

	_, err = svc.Login(&types.Credentials{Username: "doctor2", Password: "doctor123"})
	require.NoError(t, err)
	assert.Nil(t, svc.Original())
	assert.Equal(t, "doctor2", svc.Current().Username)
}

func TestImpersonateAndRevert(t *testing.T) {
	svc, _ := setupTestService(t)

	session, err := svc.Login(&types.Credentials{Username: "doctor1", Password: "doctor123"})
	require.NoError(t, err)
	doctor := session.User

	override, err := svc.Impersonate("Sarah Jones", "user2", types.RolePatient)
	require.NoError(t, err)
	assert.Equal(t, "Sarah Jones", override.FullName)
	assert.Equal(t, types.RolePatient, override.Role)
	assert.Equal(t, doctor.Username, svc.Original().Username)

	restored, err := svc.Revert()
	require.NoError(t, err)
	assert.Equal(t, doctor.Username, restored.Username)
	assert.Equal(t, doctor.FullName, restored.FullName)
	assert.Nil(t, svc.Original())
}

func TestImpersonateWhileOverriddenRejected(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Login(&types.Credentials{Username: "doctor1", Password: "doctor123"})
	require.NoError(t, err)
	_, err = svc.Impersonate("Sarah Jones", "user2", types.RolePatient)
	require.NoError(t, err)

	_, err = svc.Impersonate("Another Patient", "user3", types.RolePatient)
	require.Error(t, err)

	pe, ok := err.(*types.PortalError)
	require.True(t, ok)
	assert.Equal(t, types.ErrorTypeConflict, pe.Type)
	// The original doctor identity is still recoverable.
	assert.Equal(t, "doctor1", svc.Original().Username)
}

func TestImpersonateRequiresDoctor(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Login(&types.Credentials{Username: "user1", Password: "user123"})
	require.NoError(t, err)

	_, err = svc.Impersonate("Dr. Someone", "doctor9", types.RoleDoctor)
	require.Error(t, err)
}

func TestRevertWithoutOverrideIsNoOp(t *testing.T) {
	svc, _ := setupTestService(t)

	session, err := svc.Login(&types.Credentials{Username: "doctor1", Password: "doctor123"})
	require.NoError(t, err)

	current, err := svc.Revert()
	require.NoError(t, err)
	assert.Equal(t, session.User.Username, current.Username)
}

func TestLogoutClearsPersistedIdentity(t *testing.T) {
	svc, st := setupTestService(t)

	_, err := svc.Login(&types.Credentials{Username: "doctor1", Password: "doctor123"})
	require.NoError(t, err)
	_, err = svc.Impersonate("Sarah Jones", "user2", types.RolePatient)
	require.NoError(t, err)

	require.NoError(t, svc.Logout())
	assert.Nil(t, svc.Current())
	assert.Nil(t, svc.Original())

	var stored types.UserProfile
	assert.ErrorIs(t, st.Get(store.KeyIdentity, &stored), store.ErrKeyNotFound)
	assert.ErrorIs(t, st.Get(store.KeyOriginalIdentity, &stored), store.ErrKeyNotFound)
}

func TestIdentitySurvivesRestart(t *testing.T) {
	st := store.NewMemory()
	log := logger.New("error")
	metrics := monitoring.NewMetricsCollector("session-test")

	svc, err := New(st, testTokenIssuer(), log, metrics)
	require.NoError(t, err)
	_, err = svc.Login(&types.Credentials{Username: "user1", Password: "user123"})
	require.NoError(t, err)

	reloaded, err := New(st, testTokenIssuer(), log, metrics)
	require.NoError(t, err)
	require.NotNil(t, reloaded.Current())
	assert.Equal(t, "Yuvashree", reloaded.Current().FullName)
}

func TestUpdateProfileMergesFields(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Login(&types.Credentials{Username: "user1", Password: "user123"})
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(&types.ProfileUpdates{Phone: "+91 9999999999", Allergies: "Penicillin"})
	require.NoError(t, err)

	assert.Equal(t, "+91 9999999999", updated.Phone)
	assert.Equal(t, "Penicillin", updated.Allergies)
	// Untouched fields survive the merge.
	assert.Equal(t, "Yuvashree", updated.FullName)
	assert.Equal(t, "O+", updated.BloodGroup)
}

func TestThemePersists(t *testing.T) {
	st := store.NewMemory()
	svc, err := New(st, testTokenIssuer(), logger.New("error"), monitoring.NewMetricsCollector("session-test"))
	require.NoError(t, err)

	require.NoError(t, svc.SetTheme("dark"))
	assert.Equal(t, "dark", svc.Theme())

	reloaded, err := New(st, testTokenIssuer(), logger.New("error"), monitoring.NewMetricsCollector("session-test"))
	require.NoError(t, err)
	assert.Equal(t, "dark", reloaded.Theme())
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := testTokenIssuer()

	token, err := issuer.Issue(&types.UserProfile{
		Username: "doctor1",
		Role:     types.RoleDoctor,
		FullName: "Dr. Gokul Nair",
	})
	require.NoError(t, err)

	claims, err := issuer.Validate(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "doctor1", claims.Username)
	assert.Equal(t, "doctor", claims.Role)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	issuer := testTokenIssuer()

	token, err := issuer.Issue(&types.UserProfile{Username: "user1", Role: types.RolePatient})
	require.NoError(t, err)

	_, err = issuer.Validate(token.AccessToken + "x")
	require.Error(t, err)
}
