package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestQuarantineArchiveEmptyDirErrors(t *testing.T) {
	if _, err := QuarantineArchive("x.zip", ""); err == nil {
		t.Fatalf("expected error for empty quarantine dir")
	}
}

func TestQuarantineArchiveAvoidsNameCollision(t *testing.T) {
	tmp := t.TempDir()
	srcDir := filepath.Join(tmp, "src")
	dstDir := filepath.Join(tmp, "bad")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		t.Fatal(err)
	}

	// A previous quarantined archive already holds the base name.
	base := "2024q1_form345.zip"
	if err := os.WriteFile(filepath.Join(dstDir, base), []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	srcPath := filepath.Join(srcDir, base)
	if err := os.WriteFile(srcPath, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}

	dstPath, err := QuarantineArchive(srcPath, dstDir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(dstPath) == base {
		t.Fatalf("expected collision-avoiding filename, got %q", dstPath)
	}
	if !strings.HasPrefix(filepath.Base(dstPath), strings.TrimSuffix(base, filepath.Ext(base))+"-") {
		t.Fatalf("expected collision-avoiding suffix, got %q", dstPath)
	}

	if _, err := os.Stat(srcPath); err == nil {
		t.Fatalf("expected source removed: %s", srcPath)
	}
	b, err := os.ReadFile(dstPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "payload" {
		t.Fatalf("unexpected content: %q", string(b))
	}
}
