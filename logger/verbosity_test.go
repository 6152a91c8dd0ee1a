package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{0, zapcore.WarnLevel},
		{1, zapcore.InfoLevel},
		{2, zapcore.DebugLevel},
		{3, zapcore.DebugLevel},
		{10, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		if got := VerbosityToLevel(tt.verbosity); got != tt.want {
			t.Errorf("VerbosityToLevel(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestLevelName(t *testing.T) {
	tests := []struct {
		verbosity int
		want      string
	}{
		{0, "User"},
		{1, "Info (-v)"},
		{2, "Debug (-vv)"},
		{5, "Debug (-vv+)"},
	}

	for _, tt := range tests {
		if got := LevelName(tt.verbosity); got != tt.want {
			t.Errorf("LevelName(%d) = %q, want %q", tt.verbosity, got, tt.want)
		}
	}
}

func TestInitialize(t *testing.T) {
	if err := Initialize(false, VerbosityInfo); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after Initialize")
	}

	if err := Initialize(true, VerbosityUser); err != nil {
		t.Fatalf("Initialize(json) error = %v", err)
	}
	if !JSONOutput {
		t.Error("JSONOutput should be true after Initialize(true, ...)")
	}
}
