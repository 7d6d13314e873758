package fileutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Error("FileExists(file) = false")
	}
	if FileExists(dir) {
		t.Error("FileExists(dir) = true, directories do not count")
	}
	if FileExists(filepath.Join(dir, "absent.txt")) {
		t.Error("FileExists(absent) = true")
	}
}

func TestDirExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !DirExists(dir) {
		t.Error("DirExists(dir) = false")
	}
	if DirExists(file) {
		t.Error("DirExists(file) = true, files do not count")
	}
	if DirExists(filepath.Join(dir, "absent")) {
		t.Error("DirExists(absent) = true")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"md2site", false},
		{"./md2site.yaml", true},
		{"conf/md2site.yaml", true},
		{`conf\md2site.yaml`, true},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsFilePath(tt.input); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWriteFileIfChanged(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "out.html")

	written, err := WriteFileIfChanged(path, []byte("v1"), 0o644)
	if err != nil {
		t.Fatalf("initial write error = %v", err)
	}
	if !written {
		t.Error("initial write reported no change")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	firstMod := info.ModTime()

	// Same content: no write, mtime preserved.
	time.Sleep(10 * time.Millisecond)
	written, err = WriteFileIfChanged(path, []byte("v1"), 0o644)
	if err != nil {
		t.Fatalf("identical write error = %v", err)
	}
	if written {
		t.Error("identical content reported a write")
	}
	info, err = os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(firstMod) {
		t.Error("identical write touched the mtime")
	}

	// Changed content: written.
	written, err = WriteFileIfChanged(path, []byte("v2"), 0o644)
	if err != nil {
		t.Fatalf("changed write error = %v", err)
	}
	if !written {
		t.Error("changed content reported no write")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "v2" {
		t.Errorf("content = %q, want %q", data, "v2")
	}
}
