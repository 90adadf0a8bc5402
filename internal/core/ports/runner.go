package ports

import "context"

// ProcessRunner runs external programs and captures their standard output.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type ProcessRunner interface {
	// Output runs name with args in dir and returns everything written to stdout.
	// Standard error is discarded. A non-zero exit is returned as an error.
	Output(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}
