package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadImageFromDir(t *testing.T) {
	dir := t.TempDir()
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	src.SetGray(1, 2, color.Gray{Y: 64})
	writePNG(t, filepath.Join(dir, "heightmaps", "flat64.png"), src)

	m := NewManager(dir)
	defer m.Close()

	img, err := m.LoadImage("heightmaps/flat64.png")
	if err != nil {
		t.Fatalf("LoadImage failed: %v", err)
	}
	if r, _, _, _ := img.At(1, 2).RGBA(); r>>8 != 64 {
		t.Errorf("pixel = %d, want 64", r>>8)
	}
}

func TestLoadMissing(t *testing.T) {
	m := NewManager(t.TempDir())

	_, err := m.Load("textures/none.png")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
	if _, err := m.LoadImage("textures/none.png"); err == nil {
		t.Error("expected LoadImage error for missing file")
	}
}

func TestLoadUndecodable(t *testing.T) {
	m := NewManager()
	m.AddFS("mem", fstest.MapFS{"bad.png": {Data: []byte("garbage")}})

	if _, err := m.LoadImage("bad.png"); err == nil {
		t.Error("expected decode error")
	}
}

func TestRootPriority(t *testing.T) {
	m := NewManager()
	m.AddFS("base", fstest.MapFS{
		"a.txt": {Data: []byte("base")},
		"b.txt": {Data: []byte("only base")},
	})
	m.AddFS("override", fstest.MapFS{"a.txt": {Data: []byte("override")}})

	if data, _ := m.Load("a.txt"); string(data) != "override" {
		t.Errorf("a.txt = %q, want override", data)
	}
	if data, _ := m.Load("b.txt"); string(data) != "only base" {
		t.Errorf("b.txt = %q, want fallback to base", data)
	}
}

func TestLoadCaches(t *testing.T) {
	m := NewManager()
	m.AddFS("mem", fstest.MapFS{"sky/up.jpg": {Data: []byte("x")}})

	for range 3 {
		if _, err := m.Load("sky/up.jpg"); err != nil {
			t.Fatalf("Load failed: %v", err)
		}
	}
	// cleaned paths share the cache entry
	if _, err := m.Load("sky/../sky/up.jpg"); err != nil {
		t.Fatalf("Load of uncleaned path failed: %v", err)
	}

	hits, misses := m.cache.Stats()
	if hits != 3 || misses != 1 {
		t.Errorf("stats = %d hits / %d misses, want 3 / 1", hits, misses)
	}
}

func TestAddDir(t *testing.T) {
	m := NewManager()
	if err := m.AddDir(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing dir")
	}

	file := filepath.Join(t.TempDir(), "f")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := m.AddDir(file); err == nil {
		t.Error("expected error for non-directory")
	}
}

func TestLoadAbsolutePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "abs.bin")
	if err := os.WriteFile(path, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}

	m := NewManager()
	data, err := m.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != "abc" {
		t.Errorf("data = %q", data)
	}
}
