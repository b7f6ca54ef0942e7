package main

import (
	"log"
	"os"
	"strings"

	"codedump/cmd"
	"codedump/pkg/logging"

	"golang.org/x/term"
)

func main() {
	err := cmd.Execute()
	flushLogs()
	if err != nil {
		os.Exit(1)
	}
}

// flushLogs syncs the global logger when it writes somewhere that supports
// fsync. Pipes and most character devices reject it with EINVAL.
func flushLogs() {
	if logging.Logger == nil || !syncable(os.Stderr) {
		return
	}
	if err := logging.Logger.Sync(); err != nil && !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
		log.Printf("Logger sync failed: %v", err)
	}
}

// syncable reports whether f is a terminal or a regular file.
func syncable(f *os.File) bool {
	if term.IsTerminal(int(f.Fd())) {
		return true
	}
	info, err := f.Stat()
	return err == nil && info.Mode().IsRegular()
}
