package operation

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/my-pwa-apps/matfix/pkg/stripper"
)

// 🔍 Check runs the strip pipeline in memory only and reports what a
// fix run would change. The file on disk is never written.
func (o *operator) Check(ctx context.Context) (*stripper.Result, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("file", o.config.File).Msg("checking for unsupported material properties")

	result, err := o.process(ctx)
	if err != nil {
		return nil, err
	}

	if result.WasModified {
		logger.Debug().Int("removed", result.RemovedCount).Msg("file needs fixing")
	} else {
		logger.Debug().Msg("file is clean")
	}

	return result, nil
}
