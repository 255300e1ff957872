package bridge

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
)

// Level identifies which of the three native log functions produced a
// message.
type Level int

const (
	LevelLog Level = iota
	LevelWarn
	LevelPanic
)

func (l Level) String() string {
	switch l {
	case LevelLog:
		return "log"
	case LevelWarn:
		return "warn"
	case LevelPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Sink receives native log output. It has the same method set as the sink
// built by the logging package.
type Sink interface {
	Log(msg string)
	Warn(msg string)
	Panic(msg string)
}

type sinkBox struct {
	sink Sink
}

var activeSink atomic.Pointer[sinkBox]

// SetSink makes s the process-wide active sink and returns the previous one.
// A nil s clears the slot.
func SetSink(s Sink) Sink {
	var next *sinkBox
	if s != nil {
		next = &sinkBox{sink: s}
	}
	prev := activeSink.Swap(next)
	if prev == nil {
		return nil
	}
	return prev.sink
}

// ActiveSink returns the current sink or nil.
func ActiveSink() Sink {
	if b := activeSink.Load(); b != nil {
		return b.sink
	}
	return nil
}

// DispatchLog delivers msg to the active sink. With no sink installed the
// message goes to slog.Default. A panicking sink is recovered.
func DispatchLog(level Level, msg string) {
	msg = strings.TrimRight(msg, "\r\n")
	s := ActiveSink()
	if s == nil {
		fallbackLog(level, msg)
		return
	}
	defer func() {
		if r := recover(); r != nil {
			fallbackLog(LevelWarn, "log sink panicked: "+msg)
		}
	}()
	switch level {
	case LevelWarn:
		s.Warn(msg)
	case LevelPanic:
		s.Panic(msg)
	default:
		s.Log(msg)
	}
}

func fallbackLog(level Level, msg string) {
	var lvl slog.Level
	switch level {
	case LevelWarn:
		lvl = slog.LevelWarn
	case LevelPanic:
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.Default().Log(context.Background(), lvl, msg, "source", "native", "level", level.String())
}
