package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvasree15/healthpuls/internal/notification"
	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/monitoring"
	"github.com/yuvasree15/healthpuls/pkg/store"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

func setupTestService(t *testing.T) (*Service, *notification.Service) {
	t.Helper()

	st := store.NewMemory()
	log := logger.New("error")

	notifications, err := notification.New(st, log)
	require.NoError(t, err)

	repo, err := NewRepository(st)
	require.NoError(t, err)

	svc := New(repo, notifications, log, monitoring.NewMetricsCollector("scheduling-test"), "doctor1")
	return svc, notifications
}

func validBooking() *types.BookingRequest {
	return &types.BookingRequest{
		DoctorName:      "Dr. Gokul Nair",
		PatientName:     "Yuvashree",
		PatientUsername: "user1",
		PatientPhone:    "+91 6369151414",
		PatientAge:      20,
		City:            "Chennai",
		Date:            "2024-06-20",
		Time:            "10:00 AM",
	}
}

func TestBookCreatesPendingAndNotifiesDoctor(t *testing.T) {
	svc, notifications := setupTestService(t)

	apt, err := svc.Book(validBooking())
	require.NoError(t, err)

	assert.Equal(t, types.StatusPending, apt.Status)
	assert.Equal(t, "doctor1", apt.DoctorUsername)
	assert.NotEmpty(t, apt.ID)

	inbox, err := notifications.ListForUser("doctor1")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "New Appointment Request", inbox[0].Title)
	assert.Equal(t, types.SeverityInfo, inbox[0].Severity)
}

func TestAcceptNotifiesPatientOnce(t *testing.T) {
	svc, notifications := setupTestService(t)

	apt, err := svc.Book(validBooking())
	require.NoError(t, err)

	accepted, err := svc.Accept(apt.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusAccepted, accepted.Status)

	unread, err := notifications.UnreadCount("user1")
	require.NoError(t, err)
	assert.Equal(t, 1, unread)

	patientInbox, err := notifications.ListForUser("user1")
	require.NoError(t, err)
	require.Len(t, patientInbox, 1)
	assert.Equal(t, "Appointment Confirmed", patientInbox[0].Title)
	assert.Equal(t, types.SeveritySuccess, patientInbox[0].Severity)

	// The doctor only has the original booking notice.
	doctorInbox, err := notifications.ListForUser("doctor1")
	require.NoError(t, err)
	assert.Len(t, doctorInbox, 1)
}

func TestConfirmFromPending(t *testing.T) {
	svc, _ := setupTestService(t)

	apt, err := svc.Book(validBooking())
	require.NoError(t, err)

	confirmed, err := svc.Confirm(apt.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusConfirmed, confirmed.Status)
}

func TestRescheduleUpdatesDateAndNotifies(t *testing.T) {
	svc, notifications := setupTestService(t)

	apt, err := svc.Book(validBooking())
	require.NoError(t, err)

	rescheduled, err := svc.Reschedule(apt.ID, "2024-07-01")
	require.NoError(t, err)
	assert.Equal(t, types.StatusRescheduled, rescheduled.Status)
	assert.Equal(t, "2024-07-01", rescheduled.Date)

	inbox, err := notifications.ListForUser("user1")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "Appointment Rescheduled", inbox[0].Title)
}

func TestCancelNotifiesWithWarning(t *testing.T) {
	svc, notifications := setupTestService(t)

	apt, err := svc.Book(validBooking())
	require.NoError(t, err)

	cancelled, err := svc.Cancel(apt.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusCancelled, cancelled.Status)

	inbox, err := notifications.ListForUser("user1")
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	assert.Equal(t, "Appointment Cancelled", inbox[0].Title)
	assert.Equal(t, types.SeverityWarning, inbox[0].Severity)
}

func TestCompleteEmitsNoNotification(t *testing.T) {
	svc, notifications := setupTestService(t)

	apt, err := svc.Book(validBooking())
	require.NoError(t, err)
	_, err = svc.Accept(apt.ID)
	require.NoError(t, err)

	before, err := notifications.ListForUser("user1")
	require.NoError(t, err)

	completed, err := svc.Complete(apt.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusCompleted, completed.Status)

	after, err := notifications.ListForUser("user1")
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestTerminalStatesRejectTransitions(t *testing.T) {
	svc, _ := setupTestService(t)

	cancelled, err := svc.Book(validBooking())
	require.NoError(t, err)
	_, err = svc.Cancel(cancelled.ID)
	require.NoError(t, err)

	completed, err := svc.Book(validBooking())
	require.NoError(t, err)
	_, err = svc.Accept(completed.ID)
	require.NoError(t, err)
	_, err = svc.Complete(completed.ID)
	require.NoError(t, err)

	for _, id := range []string{cancelled.ID, completed.ID} {
		for name, fn := range map[string]func(string) (*types.Appointment, error){
			"accept":   svc.Accept,
			"confirm":  svc.Confirm,
			"cancel":   svc.Cancel,
			"complete": svc.Complete,
		} {
			_, err := fn(id)
			require.Error(t, err, "transition %s should be rejected", name)

			pe, ok := err.(*types.PortalError)
			require.True(t, ok)
			assert.Equal(t, types.ErrCodeInvalidTransition, pe.Code)
		}

		_, err := svc.Reschedule(id, "2024-08-01")
		require.Error(t, err)
	}
}

func TestCompleteRequiresAcceptedOrConfirmed(t *testing.T) {
	svc, _ := setupTestService(t)

	apt, err := svc.Book(validBooking())
	require.NoError(t, err)

	// Pending has no edge straight to Completed.
	_, err = svc.Complete(apt.ID)
	require.Error(t, err)
}

func TestBookValidation(t *testing.T) {
	svc, _ := setupTestService(t)

	req := validBooking()
	req.PatientUsername = ""
	_, err := svc.Book(req)
	require.Error(t, err)

	pe, ok := err.(*types.PortalError)
	require.True(t, ok)
	assert.Equal(t, types.ErrorTypeValidation, pe.Type)
}

func TestTransitionUnknownID(t *testing.T) {
	svc, _ := setupTestService(t)

	_, err := svc.Accept("no-such-id")
	require.Error(t, err)

	pe, ok := err.(*types.PortalError)
	require.True(t, ok)
	assert.Equal(t, types.ErrorTypeNotFound, pe.Type)
}

func TestRepositorySeedsDemoRows(t *testing.T) {
	repo, err := NewRepository(store.NewMemory())
	require.NoError(t, err)

	all, err := repo.List(nil)
	require.NoError(t, err)
	require.Len(t, all, 3)

	forYuva, err := repo.List(&types.AppointmentFilters{PatientUsername: "user1"})
	require.NoError(t, err)
	assert.Len(t, forYuva, 2)
}

func TestRepositoryPersistsAcrossRestart(t *testing.T) {
	st := store.NewMemory()

	repo, err := NewRepository(st)
	require.NoError(t, err)
	seeded, err := repo.List(nil)
	require.NoError(t, err)

	apt := seeded[0]
	apt.Status = types.StatusConfirmed
	require.NoError(t, repo.Update(apt))

	reloaded, err := NewRepository(st)
	require.NoError(t, err)
	got, err := reloaded.GetByID(apt.ID)
	require.NoError(t, err)
	assert.Equal(t, types.StatusConfirmed, got.Status)

	// Re-opening an already-seeded store does not re-seed.
	all, err := reloaded.List(nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
