package ingest

import "time"

// LoadResult reports the outcome of loading one table member. A non-nil Err
// means the member's transaction rolled back and nothing from it persisted.
// RowsSkipped counts malformed or unusable rows; RowsFiltered counts rows
// excluded by the caller's RowFilter. The two are reported separately so a
// heavily filtered run is distinguishable from a dirty input file.
type LoadResult struct {
	Table        string
	Member       string
	RowsRead     int64
	RowsLoaded   int64
	RowsSkipped  int64
	RowsFiltered int64
	Inserted     int64
	Updated      int64
	Err          error
}

// ArchiveResult reports the outcome of one source archive.
type ArchiveResult struct {
	Archive SourceArchive
	SHA256  string
	Skipped bool
	Tables  []LoadResult
	Err     error
}

func (r ArchiveResult) RowsLoaded() int64 {
	var n int64
	for _, t := range r.Tables {
		n += t.RowsLoaded
	}
	return n
}

func (r ArchiveResult) RowsSkipped() int64 {
	var n int64
	for _, t := range r.Tables {
		n += t.RowsSkipped
	}
	return n
}

func (r ArchiveResult) RowsFiltered() int64 {
	var n int64
	for _, t := range r.Tables {
		n += t.RowsFiltered
	}
	return n
}

func (r ArchiveResult) TablesErrored() int {
	var n int
	for _, t := range r.Tables {
		if t.Err != nil {
			n++
		}
	}
	return n
}

// firstError returns the first table-level error, or the archive-level error.
func (r ArchiveResult) firstError() error {
	if r.Err != nil {
		return r.Err
	}
	for _, t := range r.Tables {
		if t.Err != nil {
			return t.Err
		}
	}
	return nil
}

// RunSummary aggregates one pipeline run across all of its archives.
type RunSummary struct {
	RunID    string
	Family   string
	Started  time.Time
	Finished time.Time
	Archives []ArchiveResult
}

func (s RunSummary) ArchivesProcessed() int {
	var n int
	for _, a := range s.Archives {
		if !a.Skipped && a.Err == nil {
			n++
		}
	}
	return n
}

func (s RunSummary) ArchivesSkipped() int {
	var n int
	for _, a := range s.Archives {
		if a.Skipped {
			n++
		}
	}
	return n
}

func (s RunSummary) ArchivesErrored() int {
	var n int
	for _, a := range s.Archives {
		if a.Err != nil {
			n++
		}
	}
	return n
}

func (s RunSummary) RowsLoaded() int64 {
	var n int64
	for _, a := range s.Archives {
		n += a.RowsLoaded()
	}
	return n
}

func (s RunSummary) RowsSkipped() int64 {
	var n int64
	for _, a := range s.Archives {
		n += a.RowsSkipped()
	}
	return n
}

func (s RunSummary) RowsFiltered() int64 {
	var n int64
	for _, a := range s.Archives {
		n += a.RowsFiltered()
	}
	return n
}
