package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		quiet, verbose bool
		want           log.Level
	}{
		{"default", false, false, log.InfoLevel},
		{"quiet", true, false, log.ErrorLevel},
		{"verbose", false, true, log.DebugLevel},
		{"quiet wins", true, true, log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			l := newLogger(&bytes.Buffer{}, tt.quiet, tt.verbose)
			if l.GetLevel() != tt.want {
				t.Errorf("level = %v, want %v", l.GetLevel(), tt.want)
			}
		})
	}
}

func TestNewLogger_Output(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := newLogger(&buf, false, false)
	l.Debug("hidden")
	l.Info("shown", "assets", 2)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message logged at info level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "assets=2") {
		t.Errorf("output = %q", out)
	}
}

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{nil, false},
		{[]string{"generate", "-v"}, true},
		{[]string{"--verbose", "-i", "web"}, true},
		{[]string{"--verbose=true"}, true},
		{[]string{"-q"}, false},
		{[]string{"--", "-v"}, false},
	}

	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
