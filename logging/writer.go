package logging

import (
	"os"
	"sync"

	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// terminalSyncer returns the terminal stream named by target, or nil for "none".
// stdout is only used when asked for since it carries the command's result.
func terminalSyncer(target string) zapcore.WriteSyncer {
	switch target {
	case "none":
		return nil
	case "stdout":
		return zapcore.Lock(os.Stdout)
	default:
		return zapcore.Lock(os.Stderr)
	}
}

// fileSyncer returns a rotating file writer registered for CloseAllWriters.
func fileSyncer(config Config) zapcore.WriteSyncer {
	writer := &lumberjack.Logger{
		Filename:   config.File,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
		LocalTime:  true,
	}
	registerWriter(writer)
	return zapcore.AddSync(writer)
}

var (
	writerRegistry   []*lumberjack.Logger
	writerRegistryMu sync.Mutex
)

func registerWriter(w *lumberjack.Logger) {
	writerRegistryMu.Lock()
	defer writerRegistryMu.Unlock()
	writerRegistry = append(writerRegistry, w)
}

// CloseAllWriters closes every log file opened by loggers in this process.
func CloseAllWriters() error {
	writerRegistryMu.Lock()
	defer writerRegistryMu.Unlock()

	var lastErr error
	for _, w := range writerRegistry {
		if err := w.Close(); err != nil {
			lastErr = err
		}
	}
	writerRegistry = nil
	return lastErr
}
