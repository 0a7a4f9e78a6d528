package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	orig := stderr
	stderr = &buf
	t.Cleanup(func() {
		stderr = orig
	})
	return &buf
}

func TestEcho(t *testing.T) {
	buf := captureStderr(t)
	Echo("value: %d", 5)
	Echo("already terminated\n")
	assert.Equal(t, "value: 5\nalready terminated\n", buf.String())
}

func TestFatal(t *testing.T) {
	buf := captureStderr(t)
	var code int
	orig := exit
	exit = func(c int) {
		code = c
	}
	defer func() {
		exit = orig
	}()

	Fatal("Failed to do the thing: %v", "reason")
	assert.Equal(t, 1, code)
	assert.Equal(t, "Failed to do the thing: reason\n", buf.String())
}

func TestLogger(t *testing.T) {
	buf := captureStderr(t)
	quiet := Logger(false)
	quiet.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	loud := Logger(true)
	loud.Debug().Int("len", 256).Msg("decoded blob")
	assert.Contains(t, buf.String(), "decoded blob")
	assert.Contains(t, buf.String(), "len=256")
}
