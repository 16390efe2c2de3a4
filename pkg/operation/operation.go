// Package operation provides the file pipeline for fixing material properties
package operation

import (
	"context"

	"gitlab.com/tozd/go/errors"

	"github.com/my-pwa-apps/matfix/pkg/config"
	"github.com/my-pwa-apps/matfix/pkg/stripper"
)

// 🎯 Operator defines the main interface for matfix operations
type Operator interface {
	// Fix strips unsupported material properties from the target file
	// and overwrites it in place
	Fix(ctx context.Context) (*stripper.Result, error)
	// Check is a read-only operation reporting whether the target file
	// still carries unsupported properties
	Check(ctx context.Context) (*stripper.Result, error)
}

// 🔧 Options contains configuration for the operator
type Options struct {
	// Config is the matfix run configuration
	Config *config.Config
	// Stripper is the property removal engine
	Stripper *stripper.PropertyStripper
}

// 🏭 New creates a new operator with the given options
func New(opts Options) (Operator, error) {
	if opts.Config == nil {
		return nil, errors.Errorf("config is required")
	}
	if opts.Stripper == nil {
		return nil, errors.Errorf("stripper is required")
	}
	return &operator{
		config:   opts.Config,
		stripper: opts.Stripper,
	}, nil
}

// 🎮 operator implements the Operator interface
type operator struct {
	config   *config.Config
	stripper *stripper.PropertyStripper
}

// Fix and Check are implemented in fix.go and check.go
