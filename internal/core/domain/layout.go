package domain

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/zerr"
)

const (
	// CacheDirName is the name of the cache directory under the user's home directory.
	CacheDirName = ".goto_build"

	// HomeEnvVar overrides the cache directory location.
	HomeEnvVar = "GOTO_BUILD_HOME"

	// ToolFileName is the name of the provisioned introspection binary.
	ToolFileName = "buildozer"

	// IndexFileName is the name of the persisted reverse index.
	IndexFileName = "build_lookup.json"

	// ConfigFileName is the name of the optional settings file.
	ConfigFileName = "config.yaml"

	// DefaultToolURL is where the patched buildozer binary is downloaded from.
	DefaultToolURL = "https://github.com/kentsommer/buildtools/releases/download/4.2.0-1/buildozer"

	// DefaultToolSHA256 is the expected SHA-256 digest of the binary at DefaultToolURL.
	DefaultToolSHA256 = "9a9193b77f51dcff416cdc5039a7a78e7b7ace7b019c1c952ab8028e6ee3303f"

	// DefaultDownloadTimeout bounds the tool download.
	DefaultDownloadTimeout = 5 * time.Minute

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultQuery returns the introspection arguments requesting line, path, srcs and hdrs
// for every target in the tree.
func DefaultQuery() []string {
	return []string{"print startline path srcs hdrs", "//...:*"}
}

// DefaultHomePath returns the cache directory, honoring GOTO_BUILD_HOME.
func DefaultHomePath() (string, error) {
	if dir := os.Getenv(HomeEnvVar); dir != "" {
		return filepath.Clean(dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", zerr.Wrap(err, ErrHomeDirUnavailable.Error())
	}
	return filepath.Join(home, CacheDirName), nil
}
