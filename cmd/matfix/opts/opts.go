package opts

import (
	"github.com/my-pwa-apps/matfix/pkg/config"
	"github.com/my-pwa-apps/matfix/pkg/status"
	"github.com/my-pwa-apps/matfix/pkg/stripper"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	Stripper   *stripper.PropertyStripper
	UserLogger *status.UserLogger
	Formatter  status.FileFormatter
}
