package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (r *recorder) add(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.paths)
}

func (r *recorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.paths) == 0 {
		return ""
	}
	return r.paths[len(r.paths)-1]
}

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal(msg)
}

func start(t *testing.T, w *Watcher) *recorder {
	t.Helper()
	w.Logger = zaptest.NewLogger(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	rec := &recorder{}
	go func() { done <- w.Run(ctx, rec.add) }()
	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Run() error = %v", err)
		}
	})
	time.Sleep(100 * time.Millisecond)
	return rec
}

func TestWatcher_MarkdownChangeFires(t *testing.T) {
	dir := t.TempDir()
	rec := start(t, &Watcher{Recursive: []string{dir}, Extensions: []string{".md"}, Debounce: 50 * time.Millisecond})

	target := filepath.Join(dir, "page.md")
	if err := os.WriteFile(target, []byte("# Page"), 0o644); err != nil {
		t.Fatal(err)
	}
	eventually(t, 5*time.Second, func() bool { return rec.count() > 0 }, "change not reported")
	if got := rec.last(); got != target {
		t.Errorf("last = %q, want %q", got, target)
	}
}

func TestWatcher_IgnoresOtherExtensions(t *testing.T) {
	dir := t.TempDir()
	rec := start(t, &Watcher{Recursive: []string{dir}, Extensions: []string{".md"}, Debounce: 50 * time.Millisecond})

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	time.Sleep(300 * time.Millisecond)
	if n := rec.count(); n != 0 {
		t.Errorf("count = %d, want 0", n)
	}
}

func TestWatcher_NewSubdirectoryWatched(t *testing.T) {
	dir := t.TempDir()
	rec := start(t, &Watcher{Recursive: []string{dir}, Extensions: []string{".md"}, Debounce: 50 * time.Millisecond})

	sub := filepath.Join(dir, "guides")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(filepath.Join(sub, "intro.md"), []byte("# Intro"), 0o644); err != nil {
		t.Fatal(err)
	}
	eventually(t, 5*time.Second, func() bool { return rec.last() == filepath.Join(sub, "intro.md") }, "change in new subdirectory not reported")
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	rec := start(t, &Watcher{Recursive: []string{dir}, Extensions: []string{".md"}, Debounce: 300 * time.Millisecond})

	for _, name := range []string{"a.md", "b.md", "c.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	eventually(t, 5*time.Second, func() bool { return rec.count() > 0 }, "burst not reported")
	time.Sleep(500 * time.Millisecond)
	if n := rec.count(); n != 1 {
		t.Errorf("count = %d, want 1", n)
	}
}

func TestWatcher_MissingDirsSkipped(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "nope")
	rec := start(t, &Watcher{Recursive: []string{missing}, Flat: []string{missing, dir}, Extensions: []string{".md"}, Debounce: 50 * time.Millisecond})

	if err := os.WriteFile(filepath.Join(dir, "top.md"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	eventually(t, 5*time.Second, func() bool { return rec.count() > 0 }, "flat dir change not reported")
}
