package status

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserLogger(t *testing.T, buf *bytes.Buffer) *UserLogger {
	t.Helper()
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())
	return NewUserLogger(ctx).WithWriter(buf)
}

func TestUserLogger_LogCompletion(t *testing.T) {
	var buf bytes.Buffer
	u := newTestUserLogger(t, &buf)

	u.LogCompletion([]string{"metalness", "roughness", "emissive", "emissiveIntensity"})

	want := "✅ Fixed all unsupported material properties!\n" +
		"Removed: metalness, roughness, emissive, emissiveIntensity\n"
	assert.Equal(t, want, buf.String(), "success lines must be byte-exact")
}

func TestUserLogger_LogFileChange(t *testing.T) {
	tests := []struct {
		name     string
		change   FileChange
		contains []string
	}{
		{
			name:     "fixed_with_count",
			change:   FileChange{Type: FileFixed, Path: "index.html", RemovedCount: 3},
			contains: []string{"Fixed index.html", "(3 properties removed)"},
		},
		{
			name:     "unchanged",
			change:   FileChange{Type: FileUnchanged, Path: "index.html"},
			contains: []string{"Unchanged index.html"},
		},
		{
			name:     "skipped",
			change:   FileChange{Type: FileSkipped, Path: "index.html"},
			contains: []string{"Skipped index.html"},
		},
		{
			name:     "unknown_change_type",
			change:   FileChange{Type: FileChangeType(42), Path: "index.html"},
			contains: []string{"Processed index.html"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			u := newTestUserLogger(t, &buf)

			u.LogFileChange(tt.change)

			require.NotEmpty(t, buf.String())
			for _, want := range tt.contains {
				assert.True(t, strings.Contains(buf.String(), want), "output %q should contain %q", buf.String(), want)
			}
		})
	}
}
