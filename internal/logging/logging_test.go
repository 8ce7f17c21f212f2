package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestSetup_Levels(t *testing.T) {
	t.Cleanup(func() { Setup(false, false, false) })

	Setup(false, false, false)
	assert.Equal(t, LevelInfo, log.GetLevel())

	Setup(true, false, false)
	assert.Equal(t, LevelDebug, log.GetLevel())

	Setup(false, true, false)
	assert.Equal(t, LevelError, log.GetLevel())

	// Quiet wins over verbose.
	Setup(true, true, false)
	assert.Equal(t, LevelError, log.GetLevel())
}

func TestNew_ComponentPrefix(t *testing.T) {
	t.Cleanup(func() {
		Setup(false, false, false)
		SetOutput(os.Stderr)
	})

	var buf bytes.Buffer
	Setup(false, false, false)
	SetOutput(&buf)

	New("resolver").Info("dropped unresolvable task ids", "count", 2)

	out := buf.String()
	assert.Contains(t, out, "resolver")
	assert.Contains(t, out, "dropped unresolvable task ids")
	assert.Contains(t, out, "count=2")
}

func TestSetup_JSONFormat(t *testing.T) {
	t.Cleanup(func() {
		Setup(false, false, false)
		SetOutput(os.Stderr)
	})

	var buf bytes.Buffer
	Setup(false, false, true)
	SetOutput(&buf)

	New("table").Info("table loaded", "questions", 11)

	out := buf.String()
	assert.Contains(t, out, `"msg":"table loaded"`)
	assert.Contains(t, out, `"questions":11`)
}
