package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DefaultMaxSize is the size above which an existing log file is rotated at startup
const DefaultMaxSize = 10 * 1024 * 1024

// Config selects the log sink and encoding
type Config struct {
	Level       string // debug, info, warn, error; unknown values fall back to info
	Format      string // console or json
	File        string // Empty disables logging
	Development bool
	MaxSize     int64 // Rotation threshold in bytes, 0 uses DefaultMaxSize
}

// Logger is a zap logger bound to its file sink
type Logger struct {
	*zap.Logger
	RunID string
	file  *os.File
}

// New builds a logger writing to cfg.File
// The terminal owns stdout, so there is no console fallback; an empty path yields a no-op logger
func New(cfg Config) (*Logger, error) {
	runID := uuid.NewString()
	if cfg.File == "" {
		return &Logger{Logger: zap.NewNop(), RunID: runID}, nil
	}

	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	if err := rotate(cfg.File, maxSize); err != nil {
		return nil, fmt.Errorf("rotate log: %w", err)
	}

	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	core := zapcore.NewCore(newEncoder(cfg), zapcore.AddSync(f), ParseLevel(cfg.Level))
	opts := []zap.Option{
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	}
	if cfg.Development {
		opts = append(opts, zap.Development())
	}

	z := zap.New(core, opts...).With(zap.String("run", runID))
	return &Logger{Logger: z, RunID: runID, file: f}, nil
}

// Close flushes buffered entries and closes the file sink
func (l *Logger) Close() error {
	// Sync on a no-op core is always nil
	syncErr := l.Sync()
	if l.file == nil {
		return syncErr
	}
	closeErr := l.file.Close()
	l.file = nil
	if syncErr != nil {
		return syncErr
	}
	return closeErr
}

// ParseLevel converts a level name, defaulting to info
func ParseLevel(name string) zapcore.Level {
	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

func newEncoder(cfg Config) zapcore.Encoder {
	var encCfg zapcore.EncoderConfig
	if cfg.Development {
		encCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.Format == "console" {
		return zapcore.NewConsoleEncoder(encCfg)
	}
	return zapcore.NewJSONEncoder(encCfg)
}

// rotate renames path aside when it exceeds maxSize
func rotate(path string, maxSize int64) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if info.Size() <= maxSize {
		return nil
	}

	ext := filepath.Ext(path)
	base := path[:len(path)-len(ext)]
	rotated := fmt.Sprintf("%s_%s%s", base, time.Now().Format("20060102_150405"), ext)
	return os.Rename(path, rotated)
}
