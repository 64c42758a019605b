package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lixenwraith/vi-rain/parameter"
)

var (
	logDir      = parameter.LogDir
	logFileName = parameter.LogFileName
	maxLogSize  = int64(parameter.MaxLogSize)
)

// setupLogging routes the standard logger to logs/vi-rain.log when debug is set
// Without debug all log output is discarded so the terminal stays clean
// An oversized log is rotated to a timestamped sibling before opening
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "log dir: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		base := strings.TrimSuffix(logFileName, filepath.Ext(logFileName))
		rotated := filepath.Join(logDir, fmt.Sprintf("%s-%s.log", base, time.Now().Format("20060102-150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "log rotate: %v\n", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "log open: %v\n", err)
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// closeLogging detaches the standard logger from f and closes it; nil is a no-op
func closeLogging(f *os.File) {
	if f == nil {
		return
	}
	log.SetOutput(io.Discard)
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "log close: %v\n", err)
	}
}
