package ingest

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type RunnerConfig struct {
	DBPath  string
	Sources map[string]SourceConfig
	// BatchSize is rows per insert statement; zero means the default.
	BatchSize int
	// Workers bounds how many archives load concurrently; zero means 1.
	Workers int
	// Force reprocesses archives already in the ledger.
	Force bool
	// CIKs restricts loading to the listed registrants on tables that
	// carry a CIK column. Empty means load everything.
	CIKs  []string
	Debug bool
	// Progress defaults to log output when nil.
	Progress Progress
}

type Runner struct {
	cfg      RunnerConfig
	db       *gorm.DB
	reg      *Registry
	aliases  *AliasSet
	router   *Router
	cikSet   map[string]struct{}
	progress Progress
}

func (r *Runner) debugf(format string, args ...any) {
	if r == nil || !r.cfg.Debug {
		return
	}
	log.Printf(format, args...)
}

func NewRunner(cfg RunnerConfig) (*Runner, error) {
	if strings.TrimSpace(cfg.DBPath) == "" {
		return nil, fmt.Errorf("DBPath is required")
	}
	if len(cfg.Sources) == 0 {
		return nil, fmt.Errorf("at least one source is required")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}

	reg := DefaultRegistry()
	aliases := DefaultAliases()
	for family := range cfg.Sources {
		if len(reg.Tables(family)) == 0 {
			return nil, fmt.Errorf("unknown form family %q", family)
		}
		if err := reg.Validate(family, aliases); err != nil {
			return nil, fmt.Errorf("family %s: %w", family, err)
		}
	}

	db, err := OpenDB(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	cikSet := make(map[string]struct{}, len(cfg.CIKs))
	for _, c := range cfg.CIKs {
		c = strings.TrimSpace(c)
		if c != "" {
			cikSet[c] = struct{}{}
		}
	}

	progress := cfg.Progress
	if progress == nil {
		progress = logProgress{}
	}

	return &Runner{
		cfg:      cfg,
		db:       db,
		reg:      reg,
		aliases:  aliases,
		router:   NewRouter(reg),
		cikSet:   cikSet,
		progress: progress,
	}, nil
}

func (r *Runner) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	err = sqlDB.Close()
	r.db = nil
	return err
}

// DB exposes the open handle for callers that query after a run.
func (r *Runner) DB() *gorm.DB { return r.db }

// RunAll runs every configured family in name order.
func (r *Runner) RunAll(ctx context.Context) ([]RunSummary, error) {
	families := make([]string, 0, len(r.cfg.Sources))
	for f := range r.cfg.Sources {
		families = append(families, f)
	}
	sort.Strings(families)

	var out []RunSummary
	for _, family := range families {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		sum, err := r.RunFamily(ctx, family)
		out = append(out, sum)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// RunFamily discovers and loads every archive under the family's source dir.
// Archive failures are recorded in the summary, not returned; the error
// return covers discovery and cancellation only.
func (r *Runner) RunFamily(ctx context.Context, family string) (RunSummary, error) {
	sum := RunSummary{
		RunID:   uuid.NewString(),
		Family:  family,
		Started: time.Now().UTC(),
	}
	src, ok := r.cfg.Sources[family]
	if !ok {
		return sum, fmt.Errorf("no source configured for family %q", family)
	}

	archives, err := LocateArchives(src.Dir, family)
	if err != nil {
		return sum, err
	}
	r.debugf("run family=%s id=%s dir=%q archives=%d workers=%d", family, sum.RunID, src.Dir, len(archives), r.cfg.Workers)

	results := make([]ArchiveResult, len(archives))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, a := range archives {
		i, a := i, a
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r.progress.ArchiveStarted(a)
			res := r.processArchive(a, src.QuarantineDir)
			r.progress.ArchiveFinished(res)
			results[i] = res
			return nil
		})
	}
	err = g.Wait()

	sum.Archives = results
	sum.Finished = time.Now().UTC()
	r.progress.RunFinished(sum)
	return sum, err
}

// processArchive loads one archive end to end. All failures land in the
// result; a sibling archive never sees them.
func (r *Runner) processArchive(a SourceArchive, quarantineDir string) ArchiveResult {
	res := ArchiveResult{Archive: a}

	sha, size, err := fileSHA256(a.Path)
	if err != nil {
		res.Err = fmt.Errorf("checksum %s: %w", a.Path, err)
		return res
	}
	res.SHA256 = sha

	if !r.cfg.Force {
		done, err := r.alreadyProcessed(a.Path, sha)
		if err != nil {
			res.Err = err
			return res
		}
		if done {
			r.debugf("skip already processed path=%q sha=%s", a.Path, sha)
			res.Skipped = true
			return res
		}
	}

	members, closer, err := r.openMembers(a)
	if err != nil {
		res.Err = err
		// A zip that cannot be opened will fail the same way next run;
		// move it aside when a quarantine dir is configured.
		if quarantineDir != "" {
			if moved, qerr := QuarantineArchive(a.Path, quarantineDir); qerr == nil {
				r.debugf("quarantined path=%q to=%q", a.Path, moved)
			}
		}
		return res
	}
	if closer != nil {
		defer closer.Close()
	}

	byName := make(map[string]TableMember, len(members))
	names := make([]string, 0, len(members))
	for _, m := range members {
		byName[m.Name] = m
		names = append(names, m.Name)
	}

	loader := NewLoader(r.db, r.aliases, r.cfg.BatchSize)
	filter := cikFilter(r.cikSet)
	for _, name := range r.router.OrderMembers(a.Family, names) {
		schema, ok := r.router.Route(a.Family, name)
		if !ok {
			continue
		}
		tr := loader.LoadMember(schema, byName[name], filter)
		r.progress.TableLoaded(a.Path, tr)
		res.Tables = append(res.Tables, tr)
	}

	if err := r.recordProcessed(a, sha, size, res); err != nil {
		res.Err = err
	}
	return res
}

// openMembers returns the archive's table members. Quarter packages extract
// to disk first; everything else streams straight out of the zip.
func (r *Runner) openMembers(a SourceArchive) ([]TableMember, io.Closer, error) {
	if a.Family == FamilyFormD {
		dir, err := ExtractQuarterPackage(a.Path)
		if err != nil {
			return nil, nil, err
		}
		members, err := DirTableMembers(dir)
		return members, nil, err
	}
	return OpenArchive(a.Path)
}

func (r *Runner) alreadyProcessed(path, sha string) (bool, error) {
	var n int64
	err := r.db.Model(&ProcessedArchive{}).
		Where("path = ? AND sha256 = ?", path, sha).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// recordProcessed writes the ledger row. One row per path; reprocessing a
// changed or forced archive replaces the old row.
func (r *Runner) recordProcessed(a SourceArchive, sha string, size int64, res ArchiveResult) error {
	row := ProcessedArchive{
		Path:          a.Path,
		SHA256:        sha,
		Family:        a.Family,
		Period:        a.Period,
		SizeBytes:     size,
		ProcessedAt:   time.Now().UTC(),
		RowsLoaded:    res.RowsLoaded(),
		RowsSkipped:   res.RowsSkipped(),
		RowsFiltered:  res.RowsFiltered(),
		TablesErrored: res.TablesErrored(),
	}
	if err := res.firstError(); err != nil {
		row.LastError = err.Error()
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("path = ?", a.Path).Delete(&ProcessedArchive{}).Error; err != nil {
			return err
		}
		return tx.Create(&row).Error
	})
}

func fileSHA256(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()
	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return "", 0, err
	}
	return hex.EncodeToString(h.Sum(nil)), n, nil
}

// cikFilterFields lists the columns a CIK restriction checks, in order.
var cikFilterFields = []string{"cik", "issuer_cik", "rptowner_cik"}

// cikFilter keeps rows whose CIK is in the set. Tables without a CIK column
// pass through untouched.
func cikFilter(set map[string]struct{}) RowFilter {
	if len(set) == 0 {
		return nil
	}
	return func(s *Schema, rec Record) bool {
		for _, name := range cikFilterFields {
			if _, ok := s.FieldNamed(name); !ok {
				continue
			}
			v, ok := rec[name].(string)
			if !ok {
				return false
			}
			_, hit := set[v]
			return hit
		}
		return true
	}
}
