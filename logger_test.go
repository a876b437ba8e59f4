// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package dial

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultIsSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger should discard even error-level records")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	Logger().Info("adapter selected", "name", "test")
	if !strings.Contains(buf.String(), "adapter selected") {
		t.Errorf("log output missing record: %q", buf.String())
	}
}

func TestSetLoggerNilRestoresSilent(t *testing.T) {
	SetLogger(slog.Default())
	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent default")
	}
}
