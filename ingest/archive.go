package ingest

import (
	"archive/zip"
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

// SourceArchive is one discovered archive file. Never mutated after discovery;
// deletion and dedup of downloads belong to the download layer, not here.
type SourceArchive struct {
	Path       string
	Family     string
	Period     string
	Discovered time.Time
}

// TableMember is one named table artifact inside an archive or extracted
// quarter directory. Exists only transiently during extraction.
type TableMember struct {
	Name string
	Size int64
	open func() (io.ReadCloser, error)
}

func (m TableMember) Open() (io.ReadCloser, error) { return m.open() }

var periodRe = regexp.MustCompile(`(20\d{2})[._\-]?[qQ]([1-4])`)

// ParsePeriodLabel pulls a quarter label like "2024q1" out of an archive file
// name. Empty when the name carries no recognizable period.
func ParsePeriodLabel(name string) string {
	m := periodRe.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return ""
	}
	return m[1] + "q" + m[2]
}

// LocateArchives walks a source root recursively and returns every .zip file
// as a SourceArchive, sorted by path so runs are restartable and reproducible.
func LocateArchives(root string, family string) ([]SourceArchive, error) {
	pattern := filepath.Join(root, "**", "*.zip")
	paths, err := expandGlobWithDoubleStar(pattern)
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	now := time.Now().UTC()
	out := make([]SourceArchive, 0, len(paths))
	for _, p := range paths {
		out = append(out, SourceArchive{
			Path:       p,
			Family:     family,
			Period:     ParsePeriodLabel(p),
			Discovered: now,
		})
	}
	return out, nil
}

func expandGlobWithDoubleStar(pattern string) ([]string, error) {
	// Go's filepath.Glob doesn't support **; implement a minimal recursive matcher.
	if !strings.Contains(pattern, "**") {
		return filepath.Glob(pattern)
	}

	idx := strings.Index(pattern, "**")
	basePart := strings.TrimRight(pattern[:idx], string(filepath.Separator)+"/")
	if basePart == "" {
		basePart = "."
	}
	basePart = filepath.Clean(basePart)

	suffix := pattern[idx+2:]
	suffix = strings.TrimLeft(suffix, string(filepath.Separator)+"/")
	if suffix == "" {
		suffix = "*"
	}

	baseSlash := filepath.ToSlash(basePart)
	suffixSlash := filepath.ToSlash(suffix)
	matchBasenameOnly := !strings.Contains(suffixSlash, "/")

	var matches []string
	err := filepath.WalkDir(basePart, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		pSlash := filepath.ToSlash(p)
		rel := strings.TrimPrefix(pSlash, baseSlash)
		rel = strings.TrimLeft(rel, "/")
		candidate := rel
		if matchBasenameOnly {
			candidate = path.Base(rel)
		}
		ok, matchErr := path.Match(suffixSlash, candidate)
		if matchErr != nil {
			return matchErr
		}
		if ok {
			matches = append(matches, p)
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	return matches, nil
}

// OpenArchive opens a flat archive and lists its table members. The returned
// closer owns the zip handle; members must be read before closing it.
func OpenArchive(archivePath string) ([]TableMember, io.Closer, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, nil, fmt.Errorf("open archive %s: %w", archivePath, err)
	}
	members := make([]TableMember, 0, len(zr.File))
	for _, f := range zr.File {
		if f.FileInfo().IsDir() || strings.Contains(f.Name, "..") {
			continue
		}
		f := f
		members = append(members, TableMember{
			Name: f.Name,
			Size: int64(f.UncompressedSize64),
			open: func() (io.ReadCloser, error) { return f.Open() },
		})
	}
	return members, zr, nil
}

// ExtractQuarterPackage unpacks a quarter-package archive into a working
// directory named after the archive (its stem), next to the archive itself.
// Extraction is idempotent at the filesystem level: an existing directory is
// reused without re-extracting. Returns the true table directory, which sits
// one level below the extraction directory.
func ExtractQuarterPackage(archivePath string) (string, error) {
	stem := strings.TrimSuffix(filepath.Base(archivePath), filepath.Ext(archivePath))
	extractDir := filepath.Join(filepath.Dir(archivePath), stem)

	if _, err := os.Stat(extractDir); os.IsNotExist(err) {
		// Extract into a staging directory and rename into place, so a
		// failed extraction never leaves a directory a later run would
		// mistake for a complete one.
		tmpDir := extractDir + ".extracting"
		if err := os.RemoveAll(tmpDir); err != nil {
			return "", err
		}
		if err := extractZipTo(archivePath, tmpDir); err != nil {
			_ = os.RemoveAll(tmpDir)
			return "", err
		}
		if err := os.Rename(tmpDir, extractDir); err != nil {
			_ = os.RemoveAll(tmpDir)
			return "", err
		}
	}
	return findTableDir(extractDir)
}

func extractZipTo(archivePath, dstDir string) error {
	zr, err := zip.OpenReader(archivePath)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return fmt.Errorf("open quarter package %s: %w", archivePath, err)
	}
	defer zr.Close()

	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return err
	}
	for _, f := range zr.File {
		rel := filepath.FromSlash(f.Name)
		if strings.Contains(rel, "..") {
			continue
		}
		dst := filepath.Join(dstDir, rel)
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(dst, 0o755); err != nil {
				return err
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		if err := copyZipMember(f, dst); err != nil {
			return fmt.Errorf("extract %s from %s: %w", f.Name, archivePath, err)
		}
	}
	return nil
}

func copyZipMember(f *zip.File, dst string) error {
	in, err := f.Open()
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	_, copyErr := io.Copy(out, in)
	closeErr := out.Close()
	if copyErr != nil {
		return copyErr
	}
	return closeErr
}

// findTableDir locates the directory actually holding the tables: the single
// subdirectory of the extraction directory when one exists, otherwise the
// extraction directory itself when tables sit at its top level. Older quarter
// packages nest once; newer ones ship flat.
func findTableDir(extractDir string) (string, error) {
	entries, err := os.ReadDir(extractDir)
	if err != nil {
		return "", err
	}
	var subdirs []string
	hasFiles := false
	for _, e := range entries {
		if e.IsDir() {
			subdirs = append(subdirs, filepath.Join(extractDir, e.Name()))
		} else {
			hasFiles = true
		}
	}
	if len(subdirs) == 1 {
		return subdirs[0], nil
	}
	if hasFiles {
		return extractDir, nil
	}
	return "", fmt.Errorf("no table directory found under %s", extractDir)
}

// DirTableMembers lists the files of an extracted table directory as members.
func DirTableMembers(dir string) ([]TableMember, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var members []TableMember
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		p := filepath.Join(dir, e.Name())
		members = append(members, TableMember{
			Name: e.Name(),
			Size: info.Size(),
			open: func() (io.ReadCloser, error) { return os.Open(p) },
		})
	}
	return members, nil
}

// sniffDelimiter infers tab vs comma from the header line. Tab wins ties:
// EDGAR table members are tab-separated unless they are plainly CSV.
func sniffDelimiter(header string) rune {
	tabs := strings.Count(header, "\t")
	commas := strings.Count(header, ",")
	if commas > tabs {
		return ','
	}
	return '\t'
}

// tableReader reads one member as delimited rows, first row = header.
type tableReader struct {
	Header []string
	cr     *csv.Reader
	rc     io.ReadCloser
}

// openTable opens a member, infers its delimiter, and consumes the header row.
func openTable(m TableMember) (*tableReader, error) {
	rc, err := m.Open()
	if err != nil {
		return nil, err
	}
	br := bufio.NewReaderSize(rc, 64*1024)
	peek, _ := br.Peek(64 * 1024)
	line := string(peek)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}

	cr := csv.NewReader(br)
	cr.Comma = sniffDelimiter(line)
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		_ = rc.Close()
		if err == io.EOF {
			return nil, fmt.Errorf("member %s is empty", m.Name)
		}
		return nil, fmt.Errorf("read header of %s: %w", m.Name, err)
	}
	// Strip a UTF-8 BOM if the vendor left one on the first header token.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return &tableReader{Header: header, cr: cr, rc: rc}, nil
}

// Next returns the next data row, io.EOF at end. A row with a stray parse
// problem surfaces as an error the caller counts and skips.
func (t *tableReader) Next() ([]string, error) {
	return t.cr.Read()
}

func (t *tableReader) Close() error { return t.rc.Close() }
