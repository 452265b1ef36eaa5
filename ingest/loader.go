package ingest

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gorm.io/gorm"
)

// RowFilter decides whether a coerced row is kept. Filtered rows count as
// skipped, not as errors.
type RowFilter func(s *Schema, rec Record) bool

// Loader writes coerced records into the store. Each table member loads
// inside its own transaction so a bad member never leaves partial rows
// behind or poisons its siblings.
type Loader struct {
	db        *gorm.DB
	aliases   *AliasSet
	batchSize int
	now       func() time.Time
}

const defaultBatchSize = 1000

func NewLoader(db *gorm.DB, aliases *AliasSet, batchSize int) *Loader {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Loader{db: db, aliases: aliases, batchSize: batchSize, now: time.Now}
}

// LoadMember streams one member through header normalization, coercion, and a
// single transaction of batched writes. The returned result carries any
// table-level error instead of propagating it; on error the counts are reset
// because the rollback discarded the rows.
func (l *Loader) LoadMember(s *Schema, m TableMember, filter RowFilter) LoadResult {
	res := LoadResult{Table: s.Table, Member: m.Name}

	tr, err := openTable(m)
	if err != nil {
		res.Err = fmt.Errorf("open %s: %w", m.Name, err)
		return res
	}
	defer tr.Close()

	header := NormalizeHeader(tr.Header, l.aliases, s.Family, s.Table)

	txErr := l.db.Transaction(func(tx *gorm.DB) error {
		batch := make([]map[string]any, 0, l.batchSize)
		flush := func() error {
			if len(batch) == 0 {
				return nil
			}
			if err := tx.Table(s.Table).Create(batch).Error; err != nil {
				return fmt.Errorf("insert into %s: %w", s.Table, err)
			}
			res.RowsLoaded += int64(len(batch))
			res.Inserted += int64(len(batch))
			batch = batch[:0]
			return nil
		}

		for {
			cells, err := tr.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				// Malformed row past the header. Drop it and keep reading.
				res.RowsSkipped++
				continue
			}
			res.RowsRead++

			rec, err := CoerceRow(header, cells, s)
			if err != nil {
				res.RowsSkipped++
				continue
			}
			if filter != nil && !filter(s, rec) {
				res.RowsFiltered++
				continue
			}

			if s.Mode == LoadUpsert {
				inserted, err := l.upsertRow(tx, s, rec)
				if err != nil {
					return err
				}
				if inserted {
					res.Inserted++
				} else {
					res.Updated++
				}
				res.RowsLoaded++
				continue
			}

			batch = append(batch, map[string]any(rec))
			if len(batch) >= l.batchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		return flush()
	})
	if txErr != nil {
		res.Err = txErr
		res.RowsLoaded = 0
		res.Inserted = 0
		res.Updated = 0
	}
	return res
}

// upsertRow merges one record by its natural key. Later rows in read order
// win over earlier ones, including within a single member. Only non-null
// incoming values overwrite; absent fields keep their stored value.
func (l *Loader) upsertRow(tx *gorm.DB, s *Schema, rec Record) (inserted bool, err error) {
	where := make(map[string]any, 1)
	for _, k := range s.NaturalKey() {
		v, ok := rec[k]
		if !ok {
			return false, fmt.Errorf("upsert into %s: key field %s is null", s.Table, k)
		}
		where[k] = v
	}

	var n int64
	if err := tx.Table(s.Table).Where(where).Count(&n).Error; err != nil {
		return false, fmt.Errorf("lookup in %s: %w", s.Table, err)
	}

	vals := make(map[string]any, len(rec)+1)
	for k, v := range rec {
		vals[k] = v
	}
	vals["last_updated"] = l.now().UTC()

	if n == 0 {
		if err := tx.Table(s.Table).Create(vals).Error; err != nil {
			return false, fmt.Errorf("insert into %s: %w", s.Table, err)
		}
		return true, nil
	}
	if err := tx.Table(s.Table).Where(where).Updates(vals).Error; err != nil {
		return false, fmt.Errorf("update %s: %w", s.Table, err)
	}
	return false, nil
}

// LoadRecord writes a single pre-built record, honoring the schema's load
// mode. Used by callers that do not go through a table member, such as
// registry refreshes assembled in code.
func (l *Loader) LoadRecord(s *Schema, rec Record) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		if s.Mode == LoadUpsert {
			_, err := l.upsertRow(tx, s, rec)
			return err
		}
		return tx.Table(s.Table).Create(map[string]any(rec)).Error
	})
}
