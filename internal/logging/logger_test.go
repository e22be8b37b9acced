package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/backmassage/watchhabits/internal/config"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, termenv.Ascii, false)
	l.Info("read %d records", 12)
	l.Success("wrote %s", "output.csv")
	l.Warn("unknown profile %q", "Carol")
	l.Debug("hidden")

	out := buf.String()
	for _, want := range []string{"INFO", "read 12 records", "DONE", "wrote output.csv", "WARN", `unknown profile "Carol"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written without verbose:\n%s", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("ascii profile wrote escape codes:\n%q", out)
	}
}

func TestLogger_Verbose(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, termenv.Ascii, true)
	l.Debug("rule %s", "Bleach")
	if !strings.Contains(buf.String(), "rule Bleach") {
		t.Errorf("debug line missing with verbose: %q", buf.String())
	}
}

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogFile = ""
	l, err := NewLogger(&cfg, termenv.Ascii)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	l.Info("test message")
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogFile = filepath.Join(dir, "logs", "watchhabits.log")
	l, err := NewLogger(&cfg, termenv.ANSI256)
	if err != nil {
		t.Fatal(err)
	}
	l.Error("to file")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}
	b, _ := os.ReadFile(cfg.LogFile)
	if !bytes.Contains(b, []byte("ERRO")) || !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file content: %s", string(b))
	}
	if bytes.Contains(b, []byte("\x1b[")) {
		t.Errorf("log file has escape codes: %q", string(b))
	}
}
