package blob

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestFileLoadMissing(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "data", "state.json"))
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}

	data, ok, err := f.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Fatalf("Load on missing file: ok = true, data = %q", data)
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	f, err := NewFile(path)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	ctx := context.Background()

	if err := f.Store(ctx, []byte(`{"v":1}`)); err != nil {
		t.Fatalf("Store: %v", err)
	}
	data, ok, err := f.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if string(data) != `{"v":1}` {
		t.Fatalf("Load = %q, want %q", data, `{"v":1}`)
	}

	// Overwrites replace the whole snapshot.
	if err := f.Store(ctx, []byte(`{"v":2}`)); err != nil {
		t.Fatalf("Store overwrite: %v", err)
	}
	data, _, err = f.Load(ctx)
	if err != nil {
		t.Fatalf("Load after overwrite: %v", err)
	}
	if string(data) != `{"v":2}` {
		t.Fatalf("Load after overwrite = %q, want %q", data, `{"v":2}`)
	}

	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind after commit: %v", err)
	}
}
