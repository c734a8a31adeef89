// Package log is a thin wrapper over the standard logger with a verbose switch.
package log

import (
	"fmt"
	stdlog "log"
)

// F is the verbose log function, a no-op until Set enables it.
var F = func(string, ...any) {}

// Set sets the verbose mode and the output flags of the logger.
func Set(verbose bool, flag int) {
	if verbose {
		F = Debugf
	} else {
		F = func(string, ...any) {}
	}
	stdlog.SetFlags(flag)
}

// Debugf prints debug log.
func Debugf(f string, v ...any) {
	stdlog.Output(2, fmt.Sprintf(f, v...))
}

// Print prints log.
func Print(v ...any) {
	stdlog.Print(v...)
}

// Printf prints log.
func Printf(f string, v ...any) {
	stdlog.Printf(f, v...)
}

// Fatal log and exit.
func Fatal(v ...any) {
	stdlog.Fatal(v...)
}

// Fatalf log and exit.
func Fatalf(f string, v ...any) {
	stdlog.Fatalf(f, v...)
}
