package domain

import (
	"strconv"
	"strings"
)

// FileGroup is one of the two file fields (srcs or hdrs) of an introspection record.
// It is a closed set: FileList, GlobExpr or Missing.
type FileGroup interface {
	isFileGroup()
}

// FileList is an explicit bracketed list of file names relative to the BUILD file.
type FileList []string

// GlobExpr is the raw argument text of a glob(...) call. It is never expanded.
type GlobExpr string

// Missing marks a field that is not set on the target.
type Missing struct{}

func (FileList) isFileGroup() {}
func (GlobExpr) isFileGroup() {}
func (Missing) isFileGroup()  {}

// Record is a single target as reported by the introspection tool.
type Record struct {
	Line      int
	BuildFile string
	Srcs      FileGroup
	Hdrs      FileGroup
}

// Location returns the "<build-file>:<line>" string used as the index value.
func (r Record) Location() string {
	return FormatLocation(r.BuildFile, r.Line)
}

// Prefix returns everything preceding the BUILD file name in its path.
func (r Record) Prefix() string {
	idx := strings.LastIndex(r.BuildFile, "/")
	if idx < 0 {
		return ""
	}
	return r.BuildFile[:idx+1]
}

// Files resolves the explicit entries of both groups against the record's prefix.
// Globs and missing groups contribute nothing.
func (r Record) Files() []string {
	prefix := r.Prefix()
	var files []string
	for _, group := range []FileGroup{r.Srcs, r.Hdrs} {
		list, ok := group.(FileList)
		if !ok {
			continue
		}
		for _, name := range list {
			files = append(files, prefix+name)
		}
	}
	return files
}

// FormatLocation joins a BUILD file path and a line number.
func FormatLocation(buildFile string, line int) string {
	return buildFile + ":" + strconv.Itoa(line)
}
