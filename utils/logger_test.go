package utils

import (
	"bytes"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	t.Cleanup(func() {
		SetQuiet(false)
		SetOutput(os.Stdout, os.Stderr)
	})

	LogInfo("info %d", 1)
	LogWarn("warn %s", "x")
	LogError("error")

	assert.Contains(t, out.String(), "INFO: ")
	assert.Contains(t, out.String(), "info 1")
	assert.Contains(t, out.String(), "WARN: ")
	assert.Contains(t, out.String(), "warn x")
	assert.Contains(t, errOut.String(), "ERROR: ")
	assert.NotContains(t, out.String(), "ERROR: ")
}

func TestSetQuietSuppressesInfo(t *testing.T) {
	var out, errOut bytes.Buffer
	SetOutput(&out, &errOut)
	SetQuiet(true)
	t.Cleanup(func() {
		SetQuiet(false)
		SetOutput(os.Stdout, os.Stderr)
	})

	LogInfo("hidden")
	TrackTime(time.Now(), "step")
	LogWarn("visible")

	assert.NotContains(t, out.String(), "hidden")
	assert.NotContains(t, out.String(), "step")
	assert.Contains(t, out.String(), "visible")
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
	clock := FixedClock(instant)

	assert.Equal(t, instant, clock())
	assert.Equal(t, instant, clock())
}
