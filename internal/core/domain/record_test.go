package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gotobuild/internal/core/domain"
)

func TestRecord_Location(t *testing.T) {
	r := domain.Record{Line: 12, BuildFile: "/repo/pkg/BUILD"}
	assert.Equal(t, "/repo/pkg/BUILD:12", r.Location())
}

func TestRecord_Prefix(t *testing.T) {
	tests := []struct {
		name      string
		buildFile string
		expected  string
	}{
		{name: "nested", buildFile: "/repo/pkg/BUILD", expected: "/repo/pkg/"},
		{name: "bazel suffix", buildFile: "/repo/pkg/BUILD.bazel", expected: "/repo/pkg/"},
		{name: "root", buildFile: "/BUILD", expected: "/"},
		{name: "directory named like a build file", buildFile: "/repo/BUILD_tools/BUILD", expected: "/repo/BUILD_tools/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := domain.Record{BuildFile: tt.buildFile}
			assert.Equal(t, tt.expected, r.Prefix())
		})
	}
}

func TestRecord_Files(t *testing.T) {
	t.Run("explicit lists", func(t *testing.T) {
		r := domain.Record{
			Line:      3,
			BuildFile: "/repo/lib/BUILD",
			Srcs:      domain.FileList{"a.cc", "sub/b.cc"},
			Hdrs:      domain.FileList{"a.h"},
		}
		assert.Equal(t, []string{"/repo/lib/a.cc", "/repo/lib/sub/b.cc", "/repo/lib/a.h"}, r.Files())
	})

	t.Run("glob and missing contribute nothing", func(t *testing.T) {
		r := domain.Record{
			Line:      3,
			BuildFile: "/repo/lib/BUILD",
			Srcs:      domain.Missing{},
			Hdrs:      domain.GlobExpr(`["*.h"]`),
		}
		assert.Empty(t, r.Files())
	})

	t.Run("nil groups", func(t *testing.T) {
		r := domain.Record{Line: 1, BuildFile: "/repo/BUILD"}
		assert.Empty(t, r.Files())
	})
}

func TestIndexRecords(t *testing.T) {
	records := []domain.Record{
		{Line: 12, BuildFile: "/repo/pkg/BUILD", Srcs: domain.FileList{"a.cc", "b.cc"}, Hdrs: domain.Missing{}},
		{Line: 30, BuildFile: "/repo/pkg/BUILD", Srcs: domain.FileList{"b.cc"}, Hdrs: domain.GlobExpr(`["*.h"]`)},
	}

	idx := domain.IndexRecords(records)

	assert.Len(t, idx, 2)
	loc, ok := idx.Lookup("/repo/pkg/a.cc")
	assert.True(t, ok)
	assert.Equal(t, "/repo/pkg/BUILD:12", loc)

	// Later records win.
	loc, ok = idx.Lookup("/repo/pkg/b.cc")
	assert.True(t, ok)
	assert.Equal(t, "/repo/pkg/BUILD:30", loc)

	_, ok = idx.Lookup("/repo/pkg/a.h")
	assert.False(t, ok)
}
