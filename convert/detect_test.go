package convert

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

func TestIsArchiveFile(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	if _, err := w.Create("a.less"); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	tests := []struct {
		name    string
		file    string
		content []byte
		want    bool
	}{
		{"valid archive", "styles.zip", buf.Bytes(), true},
		{"upper case extension", "STYLES.ZIP", buf.Bytes(), true},
		{"zip extension but invalid content", "fake.zip", []byte("not a real zip file"), false},
		{"archive with other extension", "styles.less", buf.Bytes(), false},
		{"empty file", "empty.zip", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			if err := os.WriteFile(path, tt.content, 0644); err != nil {
				t.Fatalf("WriteFile() error = %v", err)
			}
			got, err := isArchiveFile(path)
			if err != nil {
				t.Fatalf("isArchiveFile() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("isArchiveFile() = %v, want %v", got, tt.want)
			}
		})
	}

	if _, err := isArchiveFile(filepath.Join(dir, "missing.zip")); err == nil {
		t.Error("isArchiveFile() expected error for missing file")
	}
}

func TestIsLessFile(t *testing.T) {
	tests := map[string]bool{
		"main.less":       true,
		"dir/THEME.LESS":  true,
		"main.less.bak":   false,
		"styles.css":      false,
		"less":            false,
		"archive.zip/a.l": false,
	}
	for in, want := range tests {
		if got := isLessFile(in); got != want {
			t.Errorf("isLessFile(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestSelectReader(t *testing.T) {
	// "ширина" in windows-1251
	src := []byte{0xF8, 0xE8, 0xF0, 0xE8, 0xED, 0xE0}

	got, err := io.ReadAll(selectReader(bytes.NewReader(src), charmap.Windows1251))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "ширина" {
		t.Errorf("decoded = %q, want %q", got, "ширина")
	}

	plain, err := io.ReadAll(selectReader(strings.NewReader("@a: 1;"), nil))
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(plain) != "@a: 1;" {
		t.Errorf("plain = %q", plain)
	}
}
