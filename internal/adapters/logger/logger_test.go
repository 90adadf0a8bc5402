package logger_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gotobuild/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_InfoSuppressedByDefault(t *testing.T) {
	buf := new(bytes.Buffer)
	lg := logger.NewWithWriter(buf)

	lg.Info("some message")

	assert.Empty(t, buf.String())
}

func TestLogger_Verbose(t *testing.T) {
	buf := new(bytes.Buffer)
	lg := logger.NewWithWriter(buf)
	lg.SetVerbose(true)

	lg.Info("some message")

	output := buf.String()
	assert.Contains(t, output, "some message")
	assert.Contains(t, output, "INFO")

	buf.Reset()
	lg.SetVerbose(false)
	lg.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestLogger_Warn(t *testing.T) {
	buf := new(bytes.Buffer)
	lg := logger.NewWithWriter(buf)

	lg.Warn("some warning")

	output := buf.String()
	assert.Contains(t, output, "some warning")
	assert.Contains(t, output, "WARN")
}

func TestLogger_Error(t *testing.T) {
	buf := new(bytes.Buffer)
	lg := logger.NewWithWriter(buf)

	lg.Error(os.ErrPermission)

	output := buf.String()
	assert.Contains(t, output, "permission denied")
	assert.Contains(t, output, "ERROR")
}

func TestLogger_ErrorMetadata(t *testing.T) {
	buf := new(bytes.Buffer)
	lg := logger.NewWithWriter(buf)

	err := zerr.With(zerr.Wrap(os.ErrNotExist, "failed to open file"), "path", "/tmp/missing")
	lg.Error(err)

	output := buf.String()
	assert.Contains(t, output, "failed to open file")
	assert.Contains(t, output, "path=/tmp/missing")
}

func TestLogger_ErrorNil(t *testing.T) {
	buf := new(bytes.Buffer)
	lg := logger.NewWithWriter(buf)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetOutput(t *testing.T) {
	first := new(bytes.Buffer)
	second := new(bytes.Buffer)
	lg := logger.NewWithWriter(first)

	lg.SetOutput(second)
	lg.Warn("moved")

	assert.Empty(t, first.String())
	assert.True(t, strings.Contains(second.String(), "moved"))
}

func TestNew(t *testing.T) {
	lg := logger.New()
	if lg == nil {
		t.Fatal("Expected New() to return a non-nil logger")
	}
}
