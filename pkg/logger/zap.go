package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls InitLogger.
type Options struct {
	Development bool
	Level       string
	// Path of the rotated JSON log file, production only.
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

var (
	// Logger is a no-op until InitLogger runs, so packages can log from tests.
	Logger = zap.NewNop()
	// wrapped backs Info/Warn/Error/Debug; it skips the wrapper frame.
	wrapped     = Logger
	atomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
)

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return zap.InfoLevel
	}
	return level
}

// InitLogger initializes the global logger
func InitLogger(opts Options) error {
	var (
		l   *zap.Logger
		err error
	)

	atomicLevel.SetLevel(ParseLevel(opts.Level))

	if opts.Development {
		config := zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		config.EncoderConfig.EncodeLevel = fixedWidthLevel
		config.EncoderConfig.EncodeDuration = zapcore.MillisDurationEncoder
		config.EncoderConfig.CallerKey = "caller"
		config.EncoderConfig.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(formatCallerPath(caller))
		}
		config.Level = atomicLevel
		l, err = config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	} else {
		l, err = NewProductionLogger(opts)
	}
	if err != nil {
		return err
	}

	setLogger(l)
	zap.ReplaceGlobals(l)
	return nil
}

func setLogger(l *zap.Logger) {
	Logger = l
	wrapped = l.WithOptions(zap.AddCallerSkip(1))
}

// NewProductionLogger writes JSON to a rotated file and mirrors it to stdout.
func NewProductionLogger(opts Options) (*zap.Logger, error) {
	if opts.Path == "" {
		opts.Path = "./logs/frotaweb.log"
	}
	if opts.MaxSizeMB == 0 {
		opts.MaxSizeMB = 100
	}
	if opts.MaxBackups == 0 {
		opts.MaxBackups = 5
	}
	if opts.MaxAgeDays == 0 {
		opts.MaxAgeDays = 30
	}

	if err := createLogDir(opts.Path); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	fileSink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   opts.Compress,
	})

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = fixedWidthLevel
	encoderConfig.EncodeDuration = zapcore.MillisDurationEncoder
	encoderConfig.MessageKey = "msg"
	encoderConfig.LevelKey = "level"
	encoderConfig.CallerKey = "caller"
	encoderConfig.EncodeCaller = func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(formatCallerPath(caller))
	}

	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), fileSink, atomicLevel),
		zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.Lock(os.Stdout), atomicLevel),
	)

	return zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}

func fixedWidthLevel(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(fmt.Sprintf("%-5s", level.CapitalString()))
}

// Info logs a message at InfoLevel
func Info(msg string, fields ...zap.Field) {
	wrapped.Info(msg, fields...)
}

// Error logs a message at ErrorLevel
func Error(msg string, fields ...zap.Field) {
	wrapped.Error(msg, fields...)
}

// Warn logs a message at WarnLevel
func Warn(msg string, fields ...zap.Field) {
	wrapped.Warn(msg, fields...)
}

// Debug logs a message at DebugLevel
func Debug(msg string, fields ...zap.Field) {
	wrapped.Debug(msg, fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	return Logger.Sync()
}

// SetLevel dynamically changes the log level
func SetLevel(level string) {
	atomicLevel.SetLevel(ParseLevel(level))
}

// GetLevel returns the current log level
func GetLevel() string {
	return atomicLevel.Level().String()
}

func createLogDir(logPath string) error {
	dir := filepath.Dir(logPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

func formatCallerPath(caller zapcore.EntryCaller) string {
	result := caller.TrimmedPath()
	if i := strings.LastIndex(result, "/"); i >= 0 {
		result = result[i+1:]
	}

	const callerWidth = 24
	if len(result) > callerWidth {
		result = "..." + result[len(result)-(callerWidth-3):]
	}
	return fmt.Sprintf("%-*s", callerWidth, result)
}
