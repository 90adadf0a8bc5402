package indexer

import (
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/gotobuild/internal/core/domain"
)

// recordPattern matches one target of `print startline path srcs hdrs` output.
// Each field group is a bracketed list, a glob(...) call or the (missing) marker.
// The pattern runs over the whole output since a record may span several lines.
var recordPattern = regexp.MustCompile(
	`(?ms)^(\d+) (/\S*?BUILD(?:\.bazel)?)\s` +
		`.*?(?:\[(.*?)\]|glob\((.*?)\)|(\(missing\)))` +
		`.*?(?:\[(.*?)\]|glob\((.*?)\)|(\(missing\)))`,
)

// Submatch indices of recordPattern.
const (
	groupLine = 1
	groupPath = 2
	groupSrcs = 3
	groupHdrs = 6
)

// ParseRecords extracts every target record from the introspection output.
func ParseRecords(output string) []domain.Record {
	matches := recordPattern.FindAllStringSubmatchIndex(output, -1)
	records := make([]domain.Record, 0, len(matches))

	for _, m := range matches {
		line, err := strconv.Atoi(submatch(output, m, groupLine))
		if err != nil {
			continue
		}
		records = append(records, domain.Record{
			Line:      line,
			BuildFile: submatch(output, m, groupPath),
			Srcs:      fileGroup(output, m, groupSrcs),
			Hdrs:      fileGroup(output, m, groupHdrs),
		})
	}

	return records
}

// fileGroup decodes the three alternatives starting at group first.
func fileGroup(output string, m []int, first int) domain.FileGroup {
	switch {
	case participated(m, first):
		return domain.FileList(strings.Fields(submatch(output, m, first)))
	case participated(m, first+1):
		return domain.GlobExpr(submatch(output, m, first+1))
	default:
		return domain.Missing{}
	}
}

func participated(m []int, group int) bool {
	return m[2*group] >= 0
}

func submatch(output string, m []int, group int) string {
	if !participated(m, group) {
		return ""
	}
	return output[m[2*group]:m[2*group+1]]
}
