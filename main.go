package main

import (
	"log"
	"os"
	"strings"

	"headerdump/cmd"
	"headerdump/pkg/config"
	"headerdump/pkg/logging"
	"headerdump/pkg/version"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	if err := logging.Setup(false, config.AppName, version.Get().Version); err != nil {
		log.Printf("Failed to initialize logger, using fallback: %v", err)
	}

	if err := cmd.Execute(); err != nil {
		logging.L().Error("headerdump execution failed", zap.Error(err))
		syncLogger()
		os.Exit(1)
	}
	syncLogger()
}

// syncLogger flushes the logger when stderr can be synced; terminals and
// pipes on some platforms reject fsync with "invalid argument".
func syncLogger() {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logging.L().Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			log.Printf("Logger sync failed: %v", err)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
