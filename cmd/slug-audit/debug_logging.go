package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

func debugLog(format string, a ...any) {
	if Debug {
		s := fmt.Sprintf(format, a...)
		fmt.Fprintf(os.Stderr, "[slug-audit] %s", s)
	}
}

// debugLogger returns the logger injected into the core packages: stderr
// when --debug is set, discarded otherwise.
func debugLogger() *log.Logger {
	if Debug {
		return log.New(os.Stderr, "[slug-audit] ", log.LstdFlags)
	}
	return log.New(io.Discard, "", 0)
}
