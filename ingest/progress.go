package ingest

import "log"

// Progress receives pipeline milestones. Injectable so tests can capture the
// sequence of events without scraping log output.
type Progress interface {
	ArchiveStarted(a SourceArchive)
	TableLoaded(archivePath string, r LoadResult)
	ArchiveFinished(r ArchiveResult)
	RunFinished(s RunSummary)
}

// logProgress writes milestones to the process log.
type logProgress struct{}

func (logProgress) ArchiveStarted(a SourceArchive) {
	log.Printf("archive start family=%s path=%q period=%s", a.Family, a.Path, a.Period)
}

func (logProgress) TableLoaded(archivePath string, r LoadResult) {
	if r.Err != nil {
		log.Printf("table error archive=%q member=%q table=%s err=%v", archivePath, r.Member, r.Table, r.Err)
		return
	}
	log.Printf("table done archive=%q table=%s rows=%d skipped=%d filtered=%d",
		archivePath, r.Table, r.RowsLoaded, r.RowsSkipped, r.RowsFiltered)
}

func (logProgress) ArchiveFinished(r ArchiveResult) {
	switch {
	case r.Skipped:
		log.Printf("archive skip path=%q sha=%s", r.Archive.Path, r.SHA256)
	case r.Err != nil:
		log.Printf("archive error path=%q err=%v", r.Archive.Path, r.Err)
	default:
		log.Printf("archive done path=%q rowsLoaded=%d rowsSkipped=%d tablesErrored=%d",
			r.Archive.Path, r.RowsLoaded(), r.RowsSkipped(), r.TablesErrored())
	}
}

func (logProgress) RunFinished(s RunSummary) {
	log.Printf("run done id=%s family=%s archives=%d skipped=%d errored=%d rowsLoaded=%d rowsSkipped=%d elapsed=%s",
		s.RunID, s.Family, s.ArchivesProcessed(), s.ArchivesSkipped(), s.ArchivesErrored(),
		s.RowsLoaded(), s.RowsSkipped(), s.Finished.Sub(s.Started))
}
