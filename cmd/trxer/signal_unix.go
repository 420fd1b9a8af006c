//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals stop a conversion. SIGHUP covers a closed CI terminal.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP}
