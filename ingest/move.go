package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// QuarantineArchive moves a bad archive into dstDir so re-runs stop tripping
// over it. An existing file with the same name gets a timestamp suffix
// instead of being clobbered.
func QuarantineArchive(srcPath string, dstDir string) (string, error) {
	if strings.TrimSpace(dstDir) == "" {
		return "", fmt.Errorf("quarantine dir is empty")
	}
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return "", fmt.Errorf("create quarantine dir: %w", err)
	}
	dstPath := quarantineDest(dstDir, filepath.Base(srcPath))

	if err := os.Rename(srcPath, dstPath); err == nil {
		return dstPath, nil
	}
	// Rename fails across filesystems; fall back to copy + remove.
	if err := copyThenRemove(srcPath, dstPath); err != nil {
		return "", fmt.Errorf("quarantine %s: %w", srcPath, err)
	}
	return dstPath, nil
}

// quarantineDest picks a destination name, suffixing with nanoseconds when a
// previously quarantined archive already holds the base name.
func quarantineDest(dstDir, base string) string {
	dstPath := filepath.Join(dstDir, base)
	if _, err := os.Stat(dstPath); err != nil {
		return dstPath
	}
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dstDir, fmt.Sprintf("%s-%d%s", stem, time.Now().UnixNano(), ext))
}

func copyThenRemove(srcPath, dstPath string) error {
	in, err := os.Open(srcPath)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	_, copyErr := io.Copy(out, in)
	if err := out.Close(); copyErr == nil {
		copyErr = err
	}
	if copyErr != nil {
		_ = os.Remove(dstPath)
		return copyErr
	}
	return os.Remove(srcPath)
}
