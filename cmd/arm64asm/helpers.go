package main

import (
	"bytes"
	"io"
	"strings"

	"arm64asm/internal/asmerr"
)

// asmDiagnostic renders any error the pipeline returns as the "ERROR: ..."
// line expected on the diagnostic channel.
func asmDiagnostic(err error) string {
	return asmerr.Diagnostic(err)
}

func wrapIOErr(err error) error {
	return asmerr.Wrap(asmerr.IO, "could not read input", err)
}

func newByteReader(src []byte) io.Reader {
	return bytes.NewReader(src)
}

// colorize wraps each line of text in a yellow ANSI escape when enabled.
// Disabled by default, matching the plain diagnostic channel.
func colorize(text string, enabled bool) string {
	if !enabled || text == "" {
		return text
	}
	const yellow, reset = "\x1b[33m", "\x1b[0m"
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, l := range lines {
		lines[i] = yellow + l + reset
	}
	return strings.Join(lines, "\n") + "\n"
}
