package ingest

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// memberFromString builds a TableMember backed by a literal instead of a zip.
func memberFromString(name, content string) TableMember {
	return TableMember{
		Name: name,
		Size: int64(len(content)),
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func TestLoadMemberAppend(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	reg := DefaultRegistry()
	s, ok := reg.Schema(FamilyInsider, "insider_submissions")
	require.True(t, ok)

	content := strings.Join([]string{
		"ACCESSION_NUMBER\tFILING_DATE\tISSUER_CIK\tISSUER_NAME",
		"acc-1\t2024-03-31\t0000320193\tAPPLE INC",
		"\t2024-03-31\t0000789019\tBROKEN ROW", // empty natural key: dropped
		"acc-2\t31-Mar-2024\t0000789019\tMICROSOFT CORP",
		"",
	}, "\n")

	loader := NewLoader(db, DefaultAliases(), 2)
	res := loader.LoadMember(s, memberFromString("SUBMISSION.tsv", content), nil)
	require.NoError(t, res.Err)
	require.Equal(t, int64(3), res.RowsRead)
	require.Equal(t, int64(2), res.RowsLoaded)
	require.Equal(t, int64(1), res.RowsSkipped)

	var rows []InsiderSubmission
	require.NoError(t, db.Order("accession_number").Find(&rows).Error)
	require.Len(t, rows, 2)
	require.Equal(t, "acc-1", rows[0].AccessionNumber)
	require.Equal(t, "APPLE INC", rows[0].IssuerName)
	want := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	require.NotNil(t, rows[0].FilingDate)
	require.True(t, rows[0].FilingDate.Equal(want), "filing_date = %v", rows[0].FilingDate)
	// Old-vintage date format lands on the same value.
	require.NotNil(t, rows[1].FilingDate)
	require.True(t, rows[1].FilingDate.Equal(want), "filing_date = %v", rows[1].FilingDate)
}

func TestLoadMemberRollsBackOnTableError(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	// A schema pointing at a table that was never migrated: the insert fails,
	// the transaction rolls back, and the result reports zero loaded rows.
	s := schemaDef("test", "missing_table", LoadAppend,
		auto("id"),
		nk("accession_number", TypeString),
	)
	content := "ACCESSION_NUMBER\nacc-1\nacc-2\n"

	loader := NewLoader(db, nil, 10)
	res := loader.LoadMember(s, memberFromString("MISSING.tsv", content), nil)
	require.Error(t, res.Err)
	require.Equal(t, int64(0), res.RowsLoaded)
	require.Equal(t, int64(0), res.Inserted)
}

func TestLoadMemberUpsert(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	reg := DefaultRegistry()
	s, ok := reg.Schema(FamilySwapReg, "swap_dealers")
	require.True(t, ok)

	loader := NewLoader(db, DefaultAliases(), 10)

	first := strings.Join([]string{
		"LEI,NAME,REGISTRATION_STATUS,CITY",
		"LEI00000000000000001,ALPHA SWAPS LLC,Provisional,New York",
		"LEI00000000000000002,BETA DERIVATIVES,Registered,Chicago",
	}, "\n")
	res := loader.LoadMember(s, memberFromString("CFTC_DEALERS.csv", first), nil)
	require.NoError(t, res.Err)
	require.Equal(t, int64(2), res.Inserted)
	require.Equal(t, int64(0), res.Updated)

	// Second vintage: one existing LEI with a changed status, one new LEI.
	// The refresh must update in place, never duplicate.
	second := strings.Join([]string{
		"LEI,NAME,REGISTRATION_STATUS,CITY",
		"LEI00000000000000001,ALPHA SWAPS LLC,Registered,New York",
		"LEI00000000000000003,GAMMA CLEARING,Provisional,London",
	}, "\n")
	res = loader.LoadMember(s, memberFromString("CFTC_DEALERS.csv", second), nil)
	require.NoError(t, res.Err)
	require.Equal(t, int64(1), res.Inserted)
	require.Equal(t, int64(1), res.Updated)

	var rows []SwapDealer
	require.NoError(t, db.Order("lei").Find(&rows).Error)
	require.Len(t, rows, 3)
	require.Equal(t, "Registered", rows[0].RegistrationStatus)
	require.False(t, rows[0].LastUpdated.IsZero())
}

// Within one member, the later row wins for a repeated natural key.
func TestLoadMemberUpsertLastRowWins(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	reg := DefaultRegistry()
	s, _ := reg.Schema(FamilySwapReg, "swap_dealers")
	loader := NewLoader(db, DefaultAliases(), 10)

	content := strings.Join([]string{
		"LEI,NAME,REGISTRATION_STATUS",
		"LEI00000000000000009,DUP CO,Provisional",
		"LEI00000000000000009,DUP CO,Registered",
	}, "\n")
	res := loader.LoadMember(s, memberFromString("CFTC_DEALERS.csv", content), nil)
	require.NoError(t, res.Err)
	require.Equal(t, int64(1), res.Inserted)
	require.Equal(t, int64(1), res.Updated)

	var rows []SwapDealer
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	require.Equal(t, "Registered", rows[0].RegistrationStatus)
}

func TestLoadMemberRowFilter(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	reg := DefaultRegistry()
	s, _ := reg.Schema(FamilyInsider, "insider_submissions")
	loader := NewLoader(db, DefaultAliases(), 10)

	content := strings.Join([]string{
		"ACCESSION_NUMBER\tFILING_DATE\tISSUER_CIK",
		"acc-1\t2024-03-31\t0000320193",
		"acc-2\t2024-03-31\t0000789019",
	}, "\n")
	filter := cikFilter(map[string]struct{}{"0000320193": {}})
	res := loader.LoadMember(s, memberFromString("SUBMISSION.tsv", content), filter)
	require.NoError(t, res.Err)
	require.Equal(t, int64(1), res.RowsLoaded)
	require.Equal(t, int64(1), res.RowsFiltered)
	require.Equal(t, int64(0), res.RowsSkipped)

	var rows []InsiderSubmission
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	require.Equal(t, "0000320193", rows[0].IssuerCIK)
}

func TestLoadRecord(t *testing.T) {
	db, err := OpenDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)

	reg := DefaultRegistry()
	s, _ := reg.Schema(FamilySwapReg, "swap_data_repositories")
	loader := NewLoader(db, nil, 10)

	rec, err := RecordFromMap(s, map[string]any{
		"lei":  "LEI00000000000000111",
		"name": "DELTA REPOSITORY",
	})
	require.NoError(t, err)
	require.NoError(t, loader.LoadRecord(s, rec))

	// Same key again refreshes instead of duplicating.
	rec["name"] = "DELTA REPOSITORY LTD"
	require.NoError(t, loader.LoadRecord(s, rec))

	var rows []SwapDataRepository
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	require.Equal(t, "DELTA REPOSITORY LTD", rows[0].Name)
}
