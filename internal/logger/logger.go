// Package logger provides leveled, colored console output for the CLI.
package logger

import (
	"github.com/fatih/color"
)

// Level printers behave like fmt.Printf with a colored prefix glyph.
// Success and Error use the conventional green check / red cross so the
// operator can scan install output at a glance.

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	cyan   = color.New(color.FgCyan)
)

// Info prints an indented informational message.
func Info(format string, a ...any) {
	color.New().Printf("  "+format+"\n", a...)
}

// Success prints a message prefixed with a green check mark.
func Success(format string, a ...any) {
	green.Print("✓ ")
	color.New().Printf(format+"\n", a...)
}

// Warn prints a message prefixed with a yellow warning sign.
func Warn(format string, a ...any) {
	yellow.Print("⚠ ")
	color.New().Printf(format+"\n", a...)
}

// Error prints a message prefixed with a red cross.
func Error(format string, a ...any) {
	red.Print("✗ ")
	color.New().Printf(format+"\n", a...)
}

// Debug logs debug messages in cyan if enabled, otherwise is a no-op.
// It is assigned during Init based on the debug flag.
var Debug func(format string, a ...any) = func(format string, a ...any) {}

// Init enables or disables debug logging.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = func(format string, a ...any) {
			cyan.Printf(format+"\n", a...)
		}
	} else {
		Debug = func(format string, a ...any) {}
	}
}
