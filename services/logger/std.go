package logsvc

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/Vovadm/exammath.ru/core"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

var levels = map[string]level{
	"debug": levelDebug,
	"info":  levelInfo,
	"warn":  levelWarn,
	"error": levelError,
}

func parseLevel(s string) level {
	if lvl, ok := levels[strings.ToLower(core.CleanString(s))]; ok {
		return lvl
	}
	return levelInfo
}

// StdLogger writes to a log.Logger, dropping messages below the configured level.
type StdLogger struct {
	std      *log.Logger
	min      level
	exitFunc func(int) // mockable
}

var _ core.Logger = (*StdLogger)(nil)

func NewStdLogger(std *log.Logger, lvl string) *StdLogger {
	return &StdLogger{std: std, min: parseLevel(lvl), exitFunc: os.Exit}
}

// NewWriterLogger is a StdLogger writing to w with the usual CLI prefix and flags.
func NewWriterLogger(w io.Writer, prefix, lvl string) *StdLogger {
	return NewStdLogger(log.New(w, prefix, log.LstdFlags|log.Lmicroseconds|log.Lshortfile), lvl)
}

func (l StdLogger) print(lvl level, tag, msg string, args []interface{}) {
	if lvl < l.min {
		return
	}
	_ = l.std.Output(3, tag+" "+msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}

func (l StdLogger) Debug(msg string, args ...interface{}) { l.print(levelDebug, "DEBUG", msg, args) }
func (l StdLogger) Info(msg string, args ...interface{})  { l.print(levelInfo, "INFO", msg, args) }
func (l StdLogger) Warn(msg string, args ...interface{})  { l.print(levelWarn, "WARN", msg, args) }
func (l StdLogger) Error(msg string, args ...interface{}) { l.print(levelError, "ERROR", msg, args) }

func (l StdLogger) Fatal(msg string, args ...interface{}) {
	l.print(levelError, "FATAL", msg, args)
	l.exitFunc(1)
}
