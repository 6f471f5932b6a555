package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger returns a JSON slog logger writing to stdout and, when LogFile is
// set, to a size-rotated file. The returned closer releases the file.
func NewLogger(cfg Config) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	var out io.Writer = os.Stdout
	var closer io.Closer = io.NopCloser(nil)
	if cfg.LogFile != "" {
		file := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     28,
			Compress:   true,
		}
		out = io.MultiWriter(os.Stdout, file)
		closer = file
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})), closer, nil
}
