// Package buildozer provisions the build-introspection binary.
package buildozer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"go.trai.ch/gotobuild/internal/core/domain"
	"go.trai.ch/gotobuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolProvisioner = (*Provisioner)(nil)

// Provisioner implements ports.ToolProvisioner by downloading a pinned binary over HTTP.
type Provisioner struct {
	settings   *domain.Settings
	checksum   ports.Checksummer
	logger     ports.Logger
	httpClient *http.Client
}

// NewProvisioner creates a Provisioner using an HTTP client bounded by the download timeout.
func NewProvisioner(settings *domain.Settings, checksum ports.Checksummer, logger ports.Logger) *Provisioner {
	return newProvisionerWithClient(settings, checksum, logger, &http.Client{
		Timeout: settings.DownloadTimeout,
	})
}

func newProvisionerWithClient(
	settings *domain.Settings,
	checksum ports.Checksummer,
	logger ports.Logger,
	client *http.Client,
) *Provisioner {
	return &Provisioner{
		settings:   settings,
		checksum:   checksum,
		logger:     logger,
		httpClient: client,
	}
}

// EnsureReady returns the path of a verified binary, downloading it when it is
// absent or its digest does not match the expected one.
func (p *Provisioner) EnsureReady(ctx context.Context) (string, error) {
	path := p.settings.ToolPath()

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		p.logger.Info("introspection tool not found, downloading")
		return path, p.fetch(ctx, path)
	case err != nil:
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}

	sum, err := p.checksum.Checksum(path)
	if err != nil {
		return "", err
	}
	if sum != p.settings.ToolSHA256 {
		p.logger.Warn("introspection tool checksum mismatch, downloading again")
		return path, p.fetch(ctx, path)
	}

	return path, nil
}

// Remove deletes the provisioned binary.
func (p *Provisioner) Remove() error {
	path := p.settings.ToolPath()
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrCleanFailed.Error()), "path", path)
	}
	return nil
}

// fetch downloads the binary next to path, verifies it and renames it into place.
func (p *Provisioner) fetch(ctx context.Context, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", dir)
	}

	url := p.settings.ToolURL
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrToolDownloadFailed.Error()), "url", url)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrToolDownloadFailed.Error()), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(domain.ErrToolDownloadFailed, "status_code", resp.StatusCode)
		return zerr.With(statusErr, "url", url)
	}

	return p.install(resp.Body, path)
}

// install streams r into a temp file, checks its digest, marks it executable
// and atomically replaces path.
func (p *Provisioner) install(r io.Reader, path string) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, domain.ToolFileName+"-*.tmp")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrToolWriteFailed.Error()), "path", dir)
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	hasher := sha256.New()
	if _, err := io.Copy(io.MultiWriter(tmpFile, hasher), r); err != nil {
		_ = tmpFile.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrToolDownloadFailed.Error()), "url", p.settings.ToolURL)
	}
	if err := tmpFile.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrToolWriteFailed.Error()), "path", tmpName)
	}

	if sum := hex.EncodeToString(hasher.Sum(nil)); sum != p.settings.ToolSHA256 {
		mismatch := zerr.With(domain.ErrToolChecksumMismatch, "expected", p.settings.ToolSHA256)
		mismatch = zerr.With(mismatch, "actual", sum)
		return zerr.With(mismatch, "url", p.settings.ToolURL)
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrToolChmodFailed.Error()), "path", tmpName)
	}
	if err := makeExecutable(tmpName); err != nil {
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrToolWriteFailed.Error()), "path", path)
	}

	p.logger.Info("introspection tool installed at " + path)
	return nil
}

// makeExecutable copies the read permission bits of path into its execute bits.
func makeExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrToolChmodFailed.Error()), "path", path)
	}
	mode := info.Mode().Perm()
	mode |= (mode & 0o444) >> 2
	if err := os.Chmod(path, mode); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrToolChmodFailed.Error()), "path", path)
	}
	return nil
}
