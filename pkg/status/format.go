package status

import (
	"fmt"

	"github.com/fatih/color"
)

// FileFormatter defines how check results should be formatted
type FileFormatter interface {
	// FormatCheckResult formats the headline of a check run
	FormatCheckResult(path string, needsFix bool, total int) string

	// FormatArtifactsOnly formats the headline when no properties
	// remain but a fix run would still rewrite formatting artifacts
	FormatArtifactsOnly(path string) string

	// FormatPropertyCount formats one property's removal count
	FormatPropertyCount(property string, count int) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatCheckResult formats the headline of a check run with emojis
func (f *DefaultFileFormatter) FormatCheckResult(path string, needsFix bool, total int) string {
	if needsFix {
		return fmt.Sprintf("⚠️  %s carries %d unsupported material %s",
			color.YellowString(path), total, pluralize(total, "property", "properties"))
	}
	return fmt.Sprintf("✅ %s is clean", color.GreenString(path))
}

// FormatArtifactsOnly formats the normalization-only headline
func (f *DefaultFileFormatter) FormatArtifactsOnly(path string) string {
	return fmt.Sprintf("⚠️  %s has no unsupported material properties, but a fix run would clean up whitespace artifacts",
		color.YellowString(path))
}

// FormatPropertyCount formats one property's removal count
func (f *DefaultFileFormatter) FormatPropertyCount(property string, count int) string {
	return fmt.Sprintf("  %s %s: %d", color.CyanString("-"), property, count)
}

// FormatError formats an error message with emoji
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	return plural
}
