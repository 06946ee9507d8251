package records

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuvasree15/healthpuls/pkg/logger"
	"github.com/yuvasree15/healthpuls/pkg/store"
	"github.com/yuvasree15/healthpuls/pkg/types"
)

func setupTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(store.NewMemory(), logger.New("error"))
	require.NoError(t, err)
	return svc
}

func TestSeedsDemoReports(t *testing.T) {
	svc := setupTestService(t)

	recs, err := svc.ListForPatient("user1")
	require.NoError(t, err)
	require.Len(t, recs, 2)

	cbc, err := svc.Get("101")
	require.NoError(t, err)
	assert.Equal(t, "Complete Blood Count (CBC)", cbc.Title)
	assert.Equal(t, types.RecordReviewed, cbc.Status)

	mri, err := svc.Get("102")
	require.NoError(t, err)
	assert.Equal(t, types.RecordSigned, mri.Status)
}

func TestAddDefaultsStatusNew(t *testing.T) {
	svc := setupTestService(t)

	rec, err := svc.Add(&types.HealthRecord{
		Title:           "Lipid Profile",
		Date:            "2024-06-01",
		Type:            types.RecordReport,
		DoctorName:      "Dr. Pooja Sharma",
		PatientUsername: "user2",
		Content:         "Total cholesterol within normal range.",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, types.RecordNew, rec.Status)

	recs, err := svc.ListForPatient("user2")
	require.NoError(t, err)
	assert.Len(t, recs, 1)
}

func TestSetStatusIsUnconditional(t *testing.T) {
	svc := setupTestService(t)

	// Signed back to New: any marker is reachable from any other.
	rec, err := svc.SetStatus("102", types.RecordNew)
	require.NoError(t, err)
	assert.Equal(t, types.RecordNew, rec.Status)

	rec, err = svc.SetStatus("102", types.RecordSigned)
	require.NoError(t, err)
	assert.Equal(t, types.RecordSigned, rec.Status)
}

func TestSetStatusRejectsUnknownMarker(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.SetStatus("101", types.RecordStatus("Archived"))
	require.Error(t, err)
}

func TestSetStatusUnknownID(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.SetStatus("999", types.RecordReviewed)
	require.Error(t, err)

	pe, ok := err.(*types.PortalError)
	require.True(t, ok)
	assert.Equal(t, types.ErrorTypeNotFound, pe.Type)
}

func TestAddValidation(t *testing.T) {
	svc := setupTestService(t)

	_, err := svc.Add(&types.HealthRecord{Title: "", PatientUsername: "user1"})
	require.Error(t, err)

	_, err = svc.Add(nil)
	require.Error(t, err)
}

func TestRecordsPersistAcrossRestart(t *testing.T) {
	st := store.NewMemory()
	log := logger.New("error")

	svc, err := New(st, log)
	require.NoError(t, err)
	added, err := svc.Add(&types.HealthRecord{
		Title:           "X-Ray Chest",
		PatientUsername: "user1",
		DoctorName:      "Dr. Gokul Nair",
	})
	require.NoError(t, err)

	reloaded, err := New(st, log)
	require.NoError(t, err)

	got, err := reloaded.Get(added.ID)
	require.NoError(t, err)
	assert.Equal(t, "X-Ray Chest", got.Title)

	// The seed is not re-applied over existing data.
	recs, err := reloaded.ListForPatient("user1")
	require.NoError(t, err)
	assert.Len(t, recs, 3)
}

func TestExportRendersPlainText(t *testing.T) {
	svc := setupTestService(t)

	artifact, err := svc.Export("101")
	require.NoError(t, err)

	assert.True(t, strings.Contains(artifact, "Complete Blood Count (CBC)"))
	assert.True(t, strings.Contains(artifact, "Dr. Gokul Nair"))
	assert.True(t, strings.Contains(artifact, "Hemoglobin"))

	_, err = svc.Export("999")
	require.Error(t, err)
}
