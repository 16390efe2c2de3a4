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

package status

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

func init() {
	// Debug-level printers stay silent otherwise
	pterm.EnableDebugMessages()
}

// 📢 UserLogger provides user-friendly feedback about fix runs
type UserLogger struct {
	log zerolog.Logger // for debug/error logging
	out io.Writer
}

// 🎨 FileChangeType represents the type of change made to a file
type FileChangeType int

const (
	FileFixed FileChangeType = iota
	FileUnchanged
	FileSkipped
	FileError
)

// 🖼️ FileChange represents the outcome of processing a file
type FileChange struct {
	Type         FileChangeType
	Path         string
	RemovedCount int
	Error        error
}

// 🎯 NewUserLogger creates a new user logger writing to stdout
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
		out: os.Stdout,
	}
}

// 🔧 WithWriter returns a copy of the logger writing to w
func (u *UserLogger) WithWriter(w io.Writer) *UserLogger {
	clone := *u
	clone.out = w
	return &clone
}

// 📝 LogFileChange logs a file change with appropriate emoji and formatting
func (u *UserLogger) LogFileChange(change FileChange) {
	var prefix, action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case FileFixed:
		prefix = "🔧"
		action = "Fixed"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: prefix})
	case FileUnchanged:
		prefix = "👍"
		action = "Unchanged"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	case FileSkipped:
		prefix = "⏭️"
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: prefix})
	case FileError:
		prefix = "❌"
		action = "Error"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: prefix})
	default:
		prefix = "ℹ️"
		action = "Processed"
		printer = pterm.Info.WithPrefix(pterm.Prefix{Text: prefix})
	}

	msg := fmt.Sprintf("%s %s", action, change.Path)
	if change.RemovedCount > 0 {
		msg += fmt.Sprintf(" (%d properties removed)", change.RemovedCount)
	}
	if change.Error != nil {
		msg += fmt.Sprintf(": %v", change.Error)
		u.log.Error().Err(change.Error).Str("path", change.Path).Msg("file change failed")
	}

	printer.WithWriter(u.out).Println(msg)
}

// ✅ LogCompletion prints the literal success lines after a completed
// fix run. The wording is part of the tool's contract, so no printer
// decoration is applied.
func (u *UserLogger) LogCompletion(properties []string) {
	fmt.Fprintln(u.out, "✅ Fixed all unsupported material properties!")
	fmt.Fprintf(u.out, "Removed: %s\n", strings.Join(properties, ", "))
}
