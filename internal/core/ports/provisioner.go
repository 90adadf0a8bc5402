// Package ports defines the core interfaces for the application.
package ports

import "context"

// ToolProvisioner makes the introspection binary available on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=provisioner.go -destination=mocks/mock_provisioner.go -package=mocks
type ToolProvisioner interface {
	// EnsureReady downloads the binary if it is absent or its digest does not match,
	// and returns its path.
	EnsureReady(ctx context.Context) (string, error)

	// Remove deletes the provisioned binary. A missing binary is not an error.
	Remove() error
}
