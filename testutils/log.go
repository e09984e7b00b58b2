package testutils

import (
	"bytes"
	"log"
)

// NewLogger returns a logger and the buffer it writes to, so tests can
// assert on diagnostic output.
func NewLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf, "", log.Lshortfile), &buf
}
