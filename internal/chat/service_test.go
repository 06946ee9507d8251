package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/store"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

var (
	testDoctor = &types.UserProfile{
		Username: "doctor1",
		Role:     types.RoleDoctor,
		FullName: "Dr. Gokul Nair",
	}
	testPatient = &types.UserProfile{
		Username: "user1",
		Role:     types.RolePatient,
		FullName: "Yuvashree",
	}
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(store.NewMemory(), logger.New("error"))
	require.NoError(t, err)
	return svc
}

func TestHistoryIsDirectionAgnostic(t *testing.T) {
	svc := setupTestService(t)

	sent, err := svc.Send(testDoctor, "Yuvashree", "Please share your reports.")
	require.NoError(t, err)

	forward, err := svc.History("Dr. Gokul Nair", "Yuvashree")
	require.NoError(t, err)
	reverse, err := svc.History("Yuvashree", "Dr. Gokul Nair")
	require.NoError(t, err)

	require.Len(t, forward, 1)
	require.Len(t, reverse, 1)
	assert.Equal(t, sent.ID, forward[0].ID)
	assert.Equal(t, sent.ID, reverse[0].ID)
}

func TestHistoryPreservesInsertionOrder(t *testing.T) {
	svc := setupTestService(t)

	first, err := svc.Send(testDoctor, "Yuvashree", "Hello")
	require.NoError(t, err)
	second, err := svc.Send(testPatient, "Dr. Gokul Nair", "Hi doctor")
	require.NoError(t, err)
	third, err := svc.Send(testDoctor, "Yuvashree", "How are you feeling?")
	require.NoError(t, err)

	history, err := svc.History("Yuvashree", "Dr. Gokul Nair")
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, first.ID, history[0].ID)
	assert.Equal(t, second.ID, history[1].ID)
	assert.Equal(t, third.ID, history[2].ID)
}

func TestHistoryExcludesOtherConversations(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.Send(testDoctor, "Yuvashree", "For Yuvashree")
	require.NoError(t, err)
	_, err = svc.Send(testDoctor, "Sarah Jones", "For Sarah")
	require.NoError(t, err)

	history, err := svc.History("Dr. Gokul Nair", "Sarah Jones")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "For Sarah", history[0].Text)
}

func TestHistorySeparatesNamesContainingPipe(t *testing.T) {
	svc := setupTestService(t)

	oddSender := &types.UserProfile{
		Username: "user3",
		Role:     types.RolePatient,
		FullName: "a|b",
	}

	// "a|b" -> "c" and "a" -> "b|c" must stay distinct conversations.
	_, err := svc.Send(oddSender, "c", "first pair")
	require.NoError(t, err)

	plainSender := &types.UserProfile{
		Username: "user4",
		Role:     types.RolePatient,
		FullName: "a",
	}
	_, err = svc.Send(plainSender, "b|c", "second pair")
	require.NoError(t, err)

	first, err := svc.History("a|b", "c")
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, "first pair", first[0].Text)

	second, err := svc.History("a", "b|c")
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "second pair", second[0].Text)
}

func TestSendCapturesSenderIdentity(t *testing.T) {
	svc := setupTestService(t)

	msg, err := svc.Send(testPatient, "Dr. Gokul Nair", "Hello")
	require.NoError(t, err)

	assert.Equal(t, "Yuvashree", msg.SenderName)
	assert.Equal(t, types.RolePatient, msg.SenderRole)
	assert.NotEmpty(t, msg.ID)
	assert.NotEmpty(t, msg.Timestamp)
	assert.False(t, msg.SentAt.IsZero())
}

func TestSendValidation(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.Send(nil, "Yuvashree", "text")
	require.Error(t, err)

	_, err = svc.Send(testDoctor, "", "text")
	require.Error(t, err)

	_, err = svc.Send(testDoctor, "Yuvashree", "   ")
	require.Error(t, err)
}

func TestIndexRebuiltAfterRestart(t *testing.T) {
	st := store.NewMemory()
	log := logger.New("error")

	svc, err := New(st, log)
	require.NoError(t, err)
	_, err = svc.Send(testDoctor, "Yuvashree", "Survives a restart")
	require.NoError(t, err)

	reloaded, err := New(st, log)
	require.NoError(t, err)

	history, err := reloaded.History("Yuvashree", "Dr. Gokul Nair")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Survives a restart", history[0].Text)

	all, err := reloaded.All()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
