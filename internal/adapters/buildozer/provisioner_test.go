package buildozer_test

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gotobuild/internal/adapters/buildozer"
	"go.trai.ch/gotobuild/internal/adapters/fs"
	"go.trai.ch/gotobuild/internal/core/domain"
	"go.trai.ch/gotobuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const (
	toolURL     = "https://example.invalid/buildozer"
	toolContent = "#!/bin/sh\necho fake buildozer\n"
)

// MockRoundTripper is a helper to mock http.Client behavior.
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

func newMockClient(handler func(req *http.Request) (*http.Response, error)) *http.Client {
	return &http.Client{
		Transport: &MockRoundTripper{RoundTripFunc: handler},
	}
}

func sha(data string) string {
	sum := sha256.Sum256([]byte(data))
	return hex.EncodeToString(sum[:])
}

func okResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

func newSettings(t *testing.T) *domain.Settings {
	t.Helper()
	s := domain.DefaultSettings(filepath.Join(t.TempDir(), "nested", ".goto_build"))
	s.ToolURL = toolURL
	s.ToolSHA256 = sha(toolContent)
	return s
}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return log
}

func TestProvisioner_EnsureReady_DownloadsWhenMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := newSettings(t)

	calls := 0
	client := newMockClient(func(req *http.Request) (*http.Response, error) {
		calls++
		assert.Equal(t, toolURL, req.URL.String())
		return okResponse(toolContent), nil
	})

	p := buildozer.NewProvisionerWithClient(settings, fs.NewHasher(), quietLogger(ctrl), client)

	path, err := p.EnsureReady(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.ToolPath(), path)
	assert.Equal(t, 1, calls)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, toolContent, string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	// No temp files left behind.
	entries, err := os.ReadDir(settings.HomeDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestProvisioner_EnsureReady_ValidBinarySkipsDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := newSettings(t)
	require.NoError(t, os.MkdirAll(settings.HomeDir, 0o750))
	require.NoError(t, os.WriteFile(settings.ToolPath(), []byte(toolContent), 0o755))

	checksum := mocks.NewMockChecksummer(ctrl)
	checksum.EXPECT().Checksum(settings.ToolPath()).Return(settings.ToolSHA256, nil).Times(1)

	client := newMockClient(func(_ *http.Request) (*http.Response, error) {
		t.Fatal("download should not happen for a valid binary")
		return nil, nil
	})

	p := buildozer.NewProvisionerWithClient(settings, checksum, quietLogger(ctrl), client)

	path, err := p.EnsureReady(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.ToolPath(), path)
}

func TestProvisioner_EnsureReady_MismatchRedownloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := newSettings(t)
	require.NoError(t, os.MkdirAll(settings.HomeDir, 0o750))
	require.NoError(t, os.WriteFile(settings.ToolPath(), []byte("stale"), 0o600))

	calls := 0
	client := newMockClient(func(_ *http.Request) (*http.Response, error) {
		calls++
		return okResponse(toolContent), nil
	})

	p := buildozer.NewProvisionerWithClient(settings, fs.NewHasher(), quietLogger(ctrl), client)

	_, err := p.EnsureReady(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	data, err := os.ReadFile(settings.ToolPath())
	require.NoError(t, err)
	assert.Equal(t, toolContent, string(data))

	info, err := os.Stat(settings.ToolPath())
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o100, "owner execute bit should be set")
}

func TestProvisioner_EnsureReady_DownloadedChecksumMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := newSettings(t)

	client := newMockClient(func(_ *http.Request) (*http.Response, error) {
		return okResponse("tampered"), nil
	})

	p := buildozer.NewProvisionerWithClient(settings, fs.NewHasher(), quietLogger(ctrl), client)

	_, err := p.EnsureReady(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrToolChecksumMismatch.Error())

	_, statErr := os.Stat(settings.ToolPath())
	assert.True(t, os.IsNotExist(statErr), "unverified binary must not be installed")
}

func TestProvisioner_EnsureReady_HTTPStatusError(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := newSettings(t)

	client := newMockClient(func(_ *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(bytes.NewBufferString("not found")),
		}, nil
	})

	p := buildozer.NewProvisionerWithClient(settings, fs.NewHasher(), quietLogger(ctrl), client)

	_, err := p.EnsureReady(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrToolDownloadFailed.Error())
}

func TestProvisioner_EnsureReady_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := newSettings(t)

	calls := 0
	client := newMockClient(func(_ *http.Request) (*http.Response, error) {
		calls++
		return nil, errors.New("connection refused")
	})

	p := buildozer.NewProvisionerWithClient(settings, fs.NewHasher(), quietLogger(ctrl), client)

	_, err := p.EnsureReady(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
	assert.Equal(t, 1, calls, "downloads are never retried")
}

func TestProvisioner_EnsureReady_ChecksumError(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := newSettings(t)
	require.NoError(t, os.MkdirAll(settings.HomeDir, 0o750))
	require.NoError(t, os.WriteFile(settings.ToolPath(), []byte(toolContent), 0o755))

	checksum := mocks.NewMockChecksummer(ctrl)
	checksum.EXPECT().Checksum(settings.ToolPath()).Return("", errors.New("read failure"))

	p := buildozer.NewProvisionerWithClient(settings, checksum, quietLogger(ctrl), http.DefaultClient)

	_, err := p.EnsureReady(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read failure")
}

func TestProvisioner_Remove(t *testing.T) {
	ctrl := gomock.NewController(t)
	settings := newSettings(t)
	require.NoError(t, os.MkdirAll(settings.HomeDir, 0o750))
	require.NoError(t, os.WriteFile(settings.ToolPath(), []byte(toolContent), 0o755))

	p := buildozer.NewProvisioner(settings, fs.NewHasher(), quietLogger(ctrl))

	require.NoError(t, p.Remove())
	_, err := os.Stat(settings.ToolPath())
	assert.True(t, os.IsNotExist(err))

	// Removing again is not an error.
	require.NoError(t, p.Remove())
}

func TestMakeExecutable(t *testing.T) {
	tests := []struct {
		name     string
		initial  os.FileMode
		expected os.FileMode
	}{
		{name: "world readable", initial: 0o644, expected: 0o755},
		{name: "owner only", initial: 0o600, expected: 0o700},
		{name: "group readable", initial: 0o640, expected: 0o750},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "tool")
			require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
			require.NoError(t, os.Chmod(path, tt.initial))

			require.NoError(t, buildozer.MakeExecutable(path))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, info.Mode().Perm())
		})
	}
}
