package sloggger

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

var (
	logFile   *os.File
	logWriter *bufio.Writer
)

// NewLogger builds the process-wide logger. Output goes to stdout and,
// buffered, to a timestamped file under saveDirectory.
func NewLogger(debug bool, saveDirectory, suffix string) (*slog.Logger, error) {
	if saveDirectory == "" {
		saveDirectory = "logs"
	}
	if err := os.MkdirAll(saveDirectory, 0o755); err != nil {
		return nil, fmt.Errorf("error creating log directory: %w", err)
	}

	name := fmt.Sprintf("lilybot-log-%s", time.Now().Format("2006-01-02-15_04_05"))
	if suffix != "" {
		name += "-" + suffix
	}

	f, err := os.Create(filepath.Join(saveDirectory, name+".txt"))
	if err != nil {
		return nil, fmt.Errorf("error creating log file: %w", err)
	}
	logFile = f
	logWriter = bufio.NewWriterSize(f, 32*1024)

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(io.MultiWriter(os.Stdout, logWriter), &slog.HandlerOptions{
		Level: level,
	})

	return slog.New(handler), nil
}

func FlushLog() {
	if logWriter != nil {
		logWriter.Flush()
	}
}

func FlushAndClose() {
	FlushLog()
	if logFile != nil {
		logFile.Close()
		logFile = nil
		logWriter = nil
	}
}
