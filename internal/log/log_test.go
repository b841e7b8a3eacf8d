// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevels(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		emit      func()
		wantLevel string
		wantEmpty bool
	}{
		{
			name:      "warn shown by default",
			level:     "",
			emit:      func() { Warnf("there are no installed versions: %s", "curl") },
			wantLevel: " W there are no installed versions: curl",
		},
		{
			name:      "debug hidden by default",
			level:     "",
			emit:      func() { Debugf("running %s", "brew") },
			wantEmpty: true,
		},
		{
			name:      "debug shown at debug",
			level:     "DEBUG",
			emit:      func() { Debugf("running %s", "brew") },
			wantLevel: " D running brew",
		},
		{
			name:      "trace shown at trace",
			level:     "trace",
			emit:      func() { Tracef("tokens=%d", 3) },
			wantLevel: " T tokens=3",
		},
		{
			name:      "trace hidden at debug",
			level:     "debug",
			emit:      func() { Tracef("tokens=%d", 3) },
			wantEmpty: true,
		},
		{
			name:      "info hidden at error",
			level:     "error",
			emit:      func() { Infof("hello") },
			wantEmpty: true,
		},
		{
			name:      "error with fields",
			level:     "error",
			emit:      func() { WithError(errors.New("boom")).Error("run failed") },
			wantLevel: " E run failed error=boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			InitLoggerTo(&buf, tt.level)
			tt.emit()

			if tt.wantEmpty {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.wantLevel+"\n")
		})
	}
}

func TestTraceFieldIsNotPrinted(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "trace")
	Tracef("filtered out: %s", "rust")

	assert.Contains(t, buf.String(), " T filtered out: rust\n")
	assert.NotContains(t, buf.String(), "trace=")
}

func TestUnknownLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerTo(&buf, "verbose")
	Infof("hidden")
	Warnf("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), " W shown\n")
}
