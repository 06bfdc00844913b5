// Package log writes structured entries to a daily file under where.Logs.
// Nothing is emitted unless logs.write is enabled.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/vidgrab/vidgrab/constant"
	"github.com/vidgrab/vidgrab/filesystem"
	"github.com/vidgrab/vidgrab/key"
	"github.com/vidgrab/vidgrab/where"
)

var enabled bool

// Setup reads the logs.* settings and opens today's log file.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		logrus.SetOutput(io.Discard)
		return nil
	}

	name := fmt.Sprintf("%s-%s.log", constant.Vidgrab, time.Now().Format(time.DateOnly))
	file, err := filesystem.API().OpenFile(
		filepath.Join(where.Logs(), name),
		os.O_WRONLY|os.O_CREATE|os.O_APPEND,
		0o644,
	)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(file)

	var formatter logrus.Formatter = &logrus.TextFormatter{DisableColors: true, FullTimestamp: true}
	if viper.GetBool(key.LogsJson) {
		formatter = &logrus.JSONFormatter{}
	}
	logrus.SetFormatter(formatter)

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return nil
}

type Fields = logrus.Fields

// Entry carries fields attached to every line it writes.
type Entry struct {
	entry *logrus.Entry
}

func With(fields Fields) *Entry {
	return &Entry{entry: logrus.WithFields(fields)}
}

func (e *Entry) logf(level logrus.Level, format string, args ...any) {
	if enabled {
		e.entry.Logf(level, format, args...)
	}
}

func (e *Entry) Errorf(format string, args ...any) { e.logf(logrus.ErrorLevel, format, args...) }
func (e *Entry) Warnf(format string, args ...any)  { e.logf(logrus.WarnLevel, format, args...) }
func (e *Entry) Infof(format string, args ...any)  { e.logf(logrus.InfoLevel, format, args...) }
func (e *Entry) Debugf(format string, args ...any) { e.logf(logrus.DebugLevel, format, args...) }

func log(level logrus.Level, args ...any) {
	if enabled {
		logrus.StandardLogger().Log(level, args...)
	}
}

func logf(level logrus.Level, format string, args ...any) {
	if enabled {
		logrus.StandardLogger().Logf(level, format, args...)
	}
}

func Error(args ...any)                 { log(logrus.ErrorLevel, args...) }
func Errorf(format string, args ...any) { logf(logrus.ErrorLevel, format, args...) }
func Warn(args ...any)                  { log(logrus.WarnLevel, args...) }
func Warnf(format string, args ...any)  { logf(logrus.WarnLevel, format, args...) }
func Info(args ...any)                  { log(logrus.InfoLevel, args...) }
func Infof(format string, args ...any)  { logf(logrus.InfoLevel, format, args...) }
func Debugf(format string, args ...any) { logf(logrus.DebugLevel, format, args...) }
