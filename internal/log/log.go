// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/apex/log"
)

// traceField marks debug entries emitted by Tracef. The handler prints them
// with level T and drops the field.
const traceField = "trace"

var traceEnabled bool

// levels maps BREWFMT_LOG values to apex levels. Trace is debug plus Tracef.
var levels = map[string]log.Level{
	"trace": log.DebugLevel,
	"debug": log.DebugLevel,
	"info":  log.InfoLevel,
	"warn":  log.WarnLevel,
	"error": log.ErrorLevel,
	"fatal": log.FatalLevel,
}

var letters = map[log.Level]string{
	log.DebugLevel: "D",
	log.InfoLevel:  "I",
	log.WarnLevel:  "W",
	log.ErrorLevel: "E",
	log.FatalLevel: "F",
}

// InitLogger logs to stderr at the level named by BREWFMT_LOG, warn by
// default.
func InitLogger() {
	InitLoggerTo(os.Stderr, os.Getenv("BREWFMT_LOG"))
}

// InitLoggerTo is InitLogger with an explicit destination and level name.
// Unknown names fall back to warn.
func InitLoggerTo(w io.Writer, level string) {
	name := strings.ToLower(level)
	apexLevel, ok := levels[name]
	if !ok {
		apexLevel = log.WarnLevel
	}
	traceEnabled = name == "trace"

	log.SetHandler(&CustomHandler{Writer: w})
	log.SetLevel(apexLevel)
}

// CustomHandler writes "<timestamp> <level letter> <message> key=value...".
type CustomHandler struct {
	Writer io.Writer
}

// HandleLog implements log.Handler.
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	level, ok := letters[e.Level]
	if !ok {
		level = "?"
	}

	var b strings.Builder
	b.WriteString(e.Message)
	for _, name := range e.Fields.Names() {
		if name == traceField {
			level = "T"
			continue
		}
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}

	w := h.Writer
	if w == nil {
		w = os.Stderr
	}
	_, err := fmt.Fprintf(w, "%s %s %s\n", time.Now().Format("2006-01-02 15:04:05"), level, b.String())
	return err
}

// Tracef logs below debug; only BREWFMT_LOG=trace shows it.
func Tracef(format string, args ...interface{}) {
	if traceEnabled {
		log.WithField(traceField, true).Debugf(format, args...)
	}
}

func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	log.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// WithError returns an entry carrying err as the "error" field.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}
