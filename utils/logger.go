package utils

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel enumerates severity tiers.
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l LogLevel) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "UNKNOWN"
}

// ParseLogLevel maps a config string to a LogLevel. Unknown values map to INFO.
func ParseLogLevel(s string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	case "fatal":
		return FATAL
	default:
		return INFO
	}
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	case FATAL:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger is a concurrency-safe, levelled logger used across the pipeline.
// Console output is human readable; the optional log file receives JSON.
type Logger struct {
	mu    sync.Mutex
	level LogLevel
	sugar *zap.SugaredLogger
	file  *os.File
}

var (
	globalLogger *Logger
	logOnce      sync.Once
)

// NewLogger builds a logger writing to console and, when logFilePath is set,
// to that file as well.
func NewLogger(minLevel LogLevel, logFilePath string, console io.Writer) (*Logger, error) {
	lvl := zap.NewAtomicLevelAt(minLevel.zapLevel())

	consoleCfg := zap.NewProductionEncoderConfig()
	consoleCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000")
	consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.AddSync(console), lvl),
	}

	var f *os.File
	if logFilePath != "" {
		var err error
		f, err = os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file %s: %w", logFilePath, err)
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(f), lvl))
	}

	z := zap.New(zapcore.NewTee(cores...))
	return &Logger{level: minLevel, sugar: z.Sugar(), file: f}, nil
}

// InitLogger creates the singleton logger on stderr. Call once at startup.
func InitLogger(minLevel LogLevel, logFilePath string) *Logger {
	logOnce.Do(func() {
		l, err := NewLogger(minLevel, logFilePath, os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "[WARN] %v; logging to stderr only\n", err)
			l, _ = NewLogger(minLevel, "", os.Stderr)
		}
		globalLogger = l
	})
	return globalLogger
}

// L returns the global logger, initialising a stderr-only INFO logger if
// InitLogger has not been called. Safe for concurrent first use.
func L() *Logger {
	return InitLogger(INFO, "")
}

// Level returns the minimum level this logger emits.
func (l *Logger) Level() LogLevel { return l.level }

// Close flushes and closes the log file, if any.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.sugar.Sync()
	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}

func (l *Logger) Debug(f string, a ...any) { l.sugar.Debugf(f, a...) }
func (l *Logger) Info(f string, a ...any)  { l.sugar.Infof(f, a...) }
func (l *Logger) Warn(f string, a ...any)  { l.sugar.Warnf(f, a...) }
func (l *Logger) Error(f string, a ...any) { l.sugar.Errorf(f, a...) }
func (l *Logger) Fatal(f string, a ...any) { l.sugar.Fatalf(f, a...) }
