// Package fs provides filesystem adapters.
package fs

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"go.trai.ch/gotobuild/internal/core/domain"
	"go.trai.ch/gotobuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// chunkSize is the read buffer used when streaming files through the digest.
const chunkSize = 128 * 1024

var _ ports.Checksummer = (*Hasher)(nil)

// Hasher computes SHA-256 digests of files.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Checksum streams the file at path through SHA-256 in fixed-size chunks and
// returns the lowercase hex digest.
func (h *Hasher) Checksum(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	return digest(f, path)
}

func digest(r io.Reader, path string) (string, error) {
	hasher := sha256.New()
	buf := make([]byte, chunkSize)
	if _, err := io.CopyBuffer(hasher, r, buf); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
