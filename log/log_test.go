package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupLogDir(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	SetDir(tmp)
	t.Cleanup(func() { Close(); SetDir("") })
	return tmp
}

func TestResolveDirFlag(t *testing.T) {
	got, err := ResolveDir("/tmp/mylog")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/mylog" {
		t.Errorf("got %q, want /tmp/mylog", got)
	}
}

func TestResolveDirFlagRelative(t *testing.T) {
	got, err := ResolveDir("logs")
	if err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(wd, "logs")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveDirEnv(t *testing.T) {
	t.Setenv("VOICETYPE_LOG_PATH", "/tmp/voicetype-env-log")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/voicetype-env-log" {
		t.Errorf("got %q, want /tmp/voicetype-env-log", got)
	}
}

func TestResolveDirDefault(t *testing.T) {
	t.Setenv("VOICETYPE_LOG_PATH", "")
	got, err := ResolveDir("")
	if err != nil {
		t.Fatal(err)
	}
	if got == "" {
		t.Error("default dir is empty")
	}
	if !strings.Contains(got, "voicetype") {
		t.Errorf("default dir %q does not mention the app", got)
	}
}

func TestInitCreatesFiles(t *testing.T) {
	tmp := setupLogDir(t)

	if err := Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Info("hello from test")
	TranscriptionText("some words")
	Close()

	diag, err := os.ReadFile(filepath.Join(tmp, "diagnostics_log.txt"))
	if err != nil {
		t.Fatalf("diagnostics log missing: %v", err)
	}
	if !strings.Contains(string(diag), "hello from test") {
		t.Errorf("diagnostics log lacks message: %s", diag)
	}

	transcript, err := os.ReadFile(filepath.Join(tmp, "transcribe_log.txt"))
	if err != nil {
		t.Fatalf("transcript log missing: %v", err)
	}
	if !strings.Contains(string(transcript), "some words") {
		t.Errorf("transcript log lacks text: %s", transcript)
	}
}

func TestConsoleOnlyWhenNoDir(t *testing.T) {
	SetDir("")
	t.Cleanup(Close)
	if err := Init(); err != nil {
		t.Fatalf("Init without dir: %v", err)
	}
	Info("console only")
	TranscriptionText("dropped silently")
}

func TestSetLevel(t *testing.T) {
	if err := SetLevel("debug"); err != nil {
		t.Errorf("SetLevel(debug): %v", err)
	}
	if err := SetLevel("nope"); err == nil {
		t.Error("expected error for unknown level")
	}
	SetLevel("info")
}
