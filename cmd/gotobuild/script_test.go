package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
	"go.trai.ch/gotobuild/internal/core/domain"
)

// fakeBuildozer replays $WORK/buildozer.out with @WORK@ replaced and counts its runs.
const fakeBuildozer = `#!/bin/sh
echo "$(pwd)" >> "$GOTO_BUILD_HOME/calls"
if [ -f "$WORK/fail" ]; then
	echo "buildozer: failure" >&2
	exit 2
fi
sed "s#@WORK@#$WORK#g" "$WORK/buildozer.out"
`

func TestMain(m *testing.M) {
	testscript.RunMain(m, map[string]func() int{
		"gotobuild": func() int {
			return run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, defaultProvider)
		},
	})
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   filepath.Join("testdata", "script"),
		Setup: setupScript,
	})
}

func setupScript(env *testscript.Env) error {
	home := filepath.Join(env.WorkDir, ".goto_build")
	if err := os.MkdirAll(home, domain.DirPerm); err != nil {
		return err
	}
	env.Setenv(domain.HomeEnvVar, home)

	tool := filepath.Join(home, domain.ToolFileName)
	//nolint:gosec // test binary must be executable
	if err := os.WriteFile(tool, []byte(fakeBuildozer), 0o755); err != nil {
		return err
	}

	sum := sha256.Sum256([]byte(fakeBuildozer))
	cfg := "tool_url: http://127.0.0.1:1/unreachable\n" +
		"tool_sha256: " + hex.EncodeToString(sum[:]) + "\n"
	return os.WriteFile(filepath.Join(home, domain.ConfigFileName), []byte(cfg), 0o600)
}
