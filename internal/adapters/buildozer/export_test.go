package buildozer

import (
	"net/http"

	"go.trai.ch/gotobuild/internal/core/domain"
	"go.trai.ch/gotobuild/internal/core/ports"
)

// NewProvisionerWithClient exports newProvisionerWithClient for testing.
func NewProvisionerWithClient(
	settings *domain.Settings,
	checksum ports.Checksummer,
	logger ports.Logger,
	client *http.Client,
) *Provisioner {
	return newProvisionerWithClient(settings, checksum, logger, client)
}

// MakeExecutable exports makeExecutable for testing.
var MakeExecutable = makeExecutable
