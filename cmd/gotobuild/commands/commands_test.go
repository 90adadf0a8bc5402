package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gotobuild/cmd/gotobuild/commands"
	"go.trai.ch/gotobuild/internal/app"
	"go.trai.ch/gotobuild/internal/build"
	"go.trai.ch/gotobuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	resolveFunc func(ctx context.Context, path string) (string, bool, error)
	rebuildFunc func(ctx context.Context, dir string) (int, error)
	cleanFunc   func(ctx context.Context, opts app.CleanOptions) error
}

func (m *mockApp) Resolve(ctx context.Context, path string) (string, bool, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, path)
	}
	return "", false, nil
}

func (m *mockApp) Rebuild(ctx context.Context, dir string) (int, error) {
	if m.rebuildFunc != nil {
		return m.rebuildFunc(ctx, dir)
	}
	return 0, nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a, nil)
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Resolve(t *testing.T) {
	t.Run("prints location when found", func(t *testing.T) {
		var captured string
		mock := &mockApp{
			resolveFunc: func(_ context.Context, path string) (string, bool, error) {
				captured = path
				return "/repo/pkg/BUILD:12", true, nil
			},
		}

		out, err := execute(t, mock, "--input", "pkg/a.cc")
		require.NoError(t, err)
		assert.Equal(t, "pkg/a.cc", captured)
		assert.Equal(t, "/repo/pkg/BUILD:12\n", out)
	})

	t.Run("prints nothing when absent", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "-i", "orphan.cc")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ string) (string, bool, error) {
				return "", false, errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "-i", "a.cc")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("requires input", func(t *testing.T) {
		_, err := execute(t, &mockApp{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "input")
	})
}

func TestCommands_Verbose(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "short flag on root", args: []string{"-v", "-i", "a.cc"}},
		{name: "long flag on root", args: []string{"--verbose", "-i", "a.cc"}},
		{name: "short flag on version", args: []string{"-v", "version"}},
		{name: "short flag on rebuild", args: []string{"rebuild", "-v"}},
		{name: "short flag on clean", args: []string{"clean", "-v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			log := mocks.NewMockLogger(ctrl)
			log.EXPECT().SetVerbose(true)

			cli := commands.New(&mockApp{}, log)
			cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
		})
	}
}

func TestCommands_VersionFlagHasNoShorthand(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().SetVerbose(true)

	var resolved bool
	mock := &mockApp{
		resolveFunc: func(_ context.Context, _ string) (string, bool, error) {
			resolved = true
			return "/repo/BUILD:1", true, nil
		},
	}

	cli := commands.New(mock, log)
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	cli.SetArgs([]string{"-v", "-i", "a.cc"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, resolved)
	assert.Equal(t, "/repo/BUILD:1\n", out.String())
	assert.NotContains(t, out.String(), "version")
}

func TestCommands_Rebuild(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantDir string
	}{
		{name: "default directory", args: []string{"rebuild"}, wantDir: "."},
		{name: "explicit directory", args: []string{"rebuild", "/repo"}, wantDir: "/repo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured string
			mock := &mockApp{
				rebuildFunc: func(_ context.Context, dir string) (int, error) {
					captured = dir
					return 42, nil
				},
			}

			out, err := execute(t, mock, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDir, captured)
			assert.Equal(t, "indexed 42 files\n", out)
		})
	}
}

func TestCommands_Clean(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want app.CleanOptions
	}{
		{name: "default", args: []string{"clean"}, want: app.CleanOptions{Index: true}},
		{name: "tools", args: []string{"clean", "--tools"}, want: app.CleanOptions{Tools: true}},
		{name: "all", args: []string{"clean", "--all"}, want: app.CleanOptions{Index: true, Tools: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured app.CleanOptions
			mock := &mockApp{
				cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
					captured = opts
					return nil
				},
			}

			_, err := execute(t, mock, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, captured)
		})
	}
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}
