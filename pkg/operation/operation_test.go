package operation

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/my-pwa-apps/matfix/pkg/config"
	"github.com/my-pwa-apps/matfix/pkg/stripper"
)

func newTestOperator(t *testing.T, cfg *config.Config) Operator {
	t.Helper()

	s, err := stripper.New(stripper.DefaultRules())
	require.NoError(t, err)

	op, err := New(Options{Config: cfg, Stripper: s})
	require.NoError(t, err)
	return op
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	logger := zerolog.New(zerolog.NewTestWriter(t))
	return logger.WithContext(context.Background())
}

func TestNew(t *testing.T) {
	s, err := stripper.New(stripper.DefaultRules())
	require.NoError(t, err)

	tests := []struct {
		name      string
		opts      Options
		wantError string
	}{
		{
			name: "valid_options",
			opts: Options{Config: config.Default(), Stripper: s},
		},
		{
			name:      "missing_config",
			opts:      Options{Stripper: s},
			wantError: "config is required",
		},
		{
			name:      "missing_stripper",
			opts:      Options{Config: config.Default()},
			wantError: "stripper is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, err := New(tt.opts)

			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, op)
		})
	}
}

func TestOperator_Fix(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		want         string
		wantModified bool
	}{
		{
			name:         "strips_properties_in_place",
			content:      `<a-box material="color: #ff0000; metalness: 0.8; roughness: 0.3"></a-box>`,
			want:         `<a-box material="color: #ff0000"></a-box>`,
			wantModified: true,
		},
		{
			name:         "clean_file_rewritten_unchanged",
			content:      `<a-box material="color: blue"></a-box>`,
			want:         `<a-box material="color: blue"></a-box>`,
			wantModified: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "index.html")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			op := newTestOperator(t, &config.Config{File: path})

			result, err := op.Fix(testContext(t))
			require.NoError(t, err)
			assert.Equal(t, tt.wantModified, result.WasModified, "modified flag should match")

			onDisk, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(onDisk), "file content should match")
		})
	}
}

func TestOperator_Fix_dryRun(t *testing.T) {
	content := `material="metalness: 1.0"`
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	op := newTestOperator(t, &config.Config{File: path, DryRun: true})

	result, err := op.Fix(testContext(t))
	require.NoError(t, err)
	assert.True(t, result.WasModified, "result should report the pending change")
	assert.Equal(t, `material=""`, string(result.ModifiedContent))

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(onDisk), "dry run must not touch the file")
}

func TestOperator_Fix_backup(t *testing.T) {
	content := `material="roughness: 0.5; color: red"`
	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	op := newTestOperator(t, &config.Config{File: path, Backup: true})

	_, err := op.Fix(testContext(t))
	require.NoError(t, err)

	backup, err := os.ReadFile(path + BackupSuffix)
	require.NoError(t, err)
	assert.Equal(t, content, string(backup), "backup should hold the original content")

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `material="color: red"`, string(onDisk), "target should hold the fixed content")
}

func TestOperator_Fix_missingFile(t *testing.T) {
	op := newTestOperator(t, &config.Config{File: filepath.Join(t.TempDir(), "missing.html")})

	_, err := op.Fix(testContext(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading file")
}

func TestOperator_Check(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		wantNeedsFix  bool
		wantRemovedBy map[string]int
	}{
		{
			name:         "dirty_file",
			content:      `material="metalness: 0.2; emissive: #112233; color: red"`,
			wantNeedsFix: true,
			wantRemovedBy: map[string]int{
				"metalness": 1,
				"emissive":  1,
			},
		},
		{
			name:          "clean_file",
			content:       `material="color: red"`,
			wantNeedsFix:  false,
			wantRemovedBy: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "index.html")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			op := newTestOperator(t, &config.Config{File: path})

			result, err := op.Check(testContext(t))
			require.NoError(t, err)
			assert.Equal(t, tt.wantNeedsFix, result.WasModified, "needs-fix flag should match")
			assert.Equal(t, tt.wantRemovedBy, result.RemovedByProperty, "per-property counts should match")

			onDisk, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(onDisk), "check must not touch the file")
		})
	}
}
