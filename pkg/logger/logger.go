package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Logger printf-логгер поверх logrus
type Logger struct {
	log  *logrus.Logger
	file *os.File
}

// New создает логгер, пишущий в stdout и, если указан filePath, в файл
func New(filePath, level string) (*Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: invalid level %q: %w", level, err)
	}

	l := logrus.New()
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})

	var file *os.File
	if filePath != "" {
		if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
			return nil, fmt.Errorf("logger: create log dir: %w", err)
		}
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		l.SetOutput(io.MultiWriter(os.Stdout, file))
	} else {
		l.SetOutput(os.Stdout)
	}

	return &Logger{log: l, file: file}, nil
}

// NewWithWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWithWriter(w io.Writer, level logrus.Level) *Logger {
	l := logrus.New()
	l.SetLevel(level)
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return &Logger{log: l}
}

// NewNop создает логгер, который ничего не пишет
func NewNop() *Logger {
	return NewWithWriter(io.Discard, logrus.PanicLevel)
}

// Debug пишет отладочное сообщение
func (l *Logger) Debug(format string, v ...interface{}) { l.log.Debugf(format, v...) }

// Info пишет информационное сообщение
func (l *Logger) Info(format string, v ...interface{}) { l.log.Infof(format, v...) }

// Warn пишет предупреждение
func (l *Logger) Warn(format string, v ...interface{}) { l.log.Warnf(format, v...) }

// Error пишет ошибку
func (l *Logger) Error(format string, v ...interface{}) { l.log.Errorf(format, v...) }

// Fatal пишет ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) { l.log.Fatalf(format, v...) }

// WithField возвращает запись logrus с полем (для middleware)
func (l *Logger) WithField(key string, value interface{}) *logrus.Entry {
	return l.log.WithField(key, value)
}

// Close закрывает файл логов
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
