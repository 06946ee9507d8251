package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T, log *Logger, emit func()) map[string]interface{} {
	t.Helper()

	var buf bytes.Buffer
	log.SetOutput(&buf)
	emit()

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithUserAttachesUsernameField(t *testing.T) {
	log := New("info")

	entry := captureLog(t, log, func() {
		log.WithUser("doctor1").Info("Profile updated")
	})

	assert.Equal(t, "doctor1", entry["username"])
	assert.Equal(t, "Profile updated", entry["message"])
}

func TestWithComponentAttachesComponentField(t *testing.T) {
	log := New("info")

	entry := captureLog(t, log, func() {
		log.WithComponent("gateway").WithField("addr", ":8080").Info("Starting portal server")
	})

	assert.Equal(t, "gateway", entry["component"])
	assert.Equal(t, ":8080", entry["addr"])
}

func TestNewFallsBackToInfoOnBadLevel(t *testing.T) {
	log := New("not-a-level")

	entry := captureLog(t, log, func() {
		log.Info("still logs")
	})

	assert.Equal(t, "info", entry["level"])
}
