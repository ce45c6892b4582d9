package lockfile

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

func TestAcquireRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vt.lock")

	lock, err := Acquire(path)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading lock: %v", err)
	}
	if got, want := string(data), strconv.Itoa(os.Getpid()); got != want {
		t.Fatalf("lock holds pid %q, want %q", got, want)
	}

	lock.Release()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("lock file still present after Release")
	}
	lock.Release() // second release is a no-op
}

func TestAcquireRejectsLiveProcess(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vt.lock")
	// our own pid is certainly alive
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Acquire(path)
	if err == nil {
		t.Fatal("expected acquisition to fail against a live pid")
	}
	if !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("err = %v, want ErrAlreadyRunning", err)
	}
}

func TestAcquireReclaimsStale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vt.lock")
	for _, stale := range []string{"garbage", "999999999", ""} {
		if err := os.WriteFile(path, []byte(stale), 0o644); err != nil {
			t.Fatal(err)
		}
		lock, err := Acquire(path)
		if err != nil {
			t.Fatalf("Acquire over stale %q: %v", stale, err)
		}
		lock.Release()
	}
}
