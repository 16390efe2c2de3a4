// Copyright 2025 my-pwa-apps
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"bytes"
	"context"
	"os"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/my-pwa-apps/matfix/pkg/stripper"
)

// BackupSuffix is appended to the target path when --backup is set
const BackupSuffix = ".orig"

// 🔧 Fix reads the target file, strips unsupported material properties,
// and overwrites the file in place. The write is a plain overwrite: no
// temp file, no rename. A failed write can leave the file truncated,
// which matches the tool's all-or-nothing failure contract.
func (o *operator) Fix(ctx context.Context) (*stripper.Result, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("file", o.config.File).Msg("fixing material properties")

	result, err := o.process(ctx)
	if err != nil {
		return nil, err
	}

	if o.config.DryRun {
		logger.Info().Str("file", o.config.File).Bool("would_modify", result.WasModified).Msg("dry run, skipping write")
		return result, nil
	}

	if o.config.Backup {
		backupPath := o.config.File + BackupSuffix
		if err := os.WriteFile(backupPath, result.OriginalContent, 0644); err != nil {
			return nil, errors.Errorf("writing backup file: %w", err)
		}
		logger.Debug().Str("backup", backupPath).Msg("wrote backup")
	}

	if err := os.WriteFile(o.config.File, result.ModifiedContent, 0644); err != nil {
		return nil, errors.Errorf("writing file: %w", err)
	}

	logger.Debug().
		Int("removed", result.RemovedCount).
		Bool("modified", result.WasModified).
		Msg("wrote fixed file")

	return result, nil
}

// 📖 process runs the full read+strip pipeline without touching disk
// on the write side
func (o *operator) process(ctx context.Context) (*stripper.Result, error) {
	content, err := os.ReadFile(o.config.File)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}

	result, err := o.stripper.Process(ctx, bytes.NewReader(content))
	if err != nil {
		return nil, errors.Errorf("stripping properties: %w", err)
	}

	return result, nil
}
