package ingest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAliasSetResolve(t *testing.T) {
	a := NewAliasSet()
	a.Add(FamilyInsider, "insider_submissions", "accessionnumber", "accession_number")

	require.Equal(t, "accession_number", a.Resolve(FamilyInsider, "insider_submissions", "accessionnumber"))
	// Unmapped tokens pass through unchanged.
	require.Equal(t, "filing_date", a.Resolve(FamilyInsider, "insider_submissions", "filing_date"))
	// Scoping: the same raw token in another table is untouched.
	require.Equal(t, "accessionnumber", a.Resolve(FamilyInsider, "insider_footnotes", "accessionnumber"))
	require.Equal(t, "accessionnumber", a.Resolve(FamilyForm13F, "insider_submissions", "accessionnumber"))
}

// Every shipped alias row must target a real schema field; a typo here would
// otherwise silently shunt a column into the dropped bucket.
func TestDefaultAliasesValidateAgainstDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()
	aliases := DefaultAliases()
	for _, family := range reg.Families() {
		require.NoError(t, reg.Validate(family, aliases), "family %s", family)
	}
}

func TestRegistryValidateRejectsBrokenConfig(t *testing.T) {
	reg := DefaultRegistry()

	bad := NewAliasSet()
	bad.Add(FamilyInsider, "insider_submissions", "foo", "no_such_field")
	require.Error(t, reg.Validate(FamilyInsider, bad))

	missing := NewAliasSet()
	missing.Add(FamilyInsider, "no_such_table", "foo", "bar")
	require.Error(t, reg.Validate(FamilyInsider, missing))

	require.Error(t, reg.Validate("no_such_family", nil))

	// Upsert without a natural key must not validate.
	broken := NewRegistry([]*Schema{
		schemaDef("x", "x_rows", LoadUpsert,
			auto("id"),
			str("name", 10),
		),
	})
	require.Error(t, broken.Validate("x", nil))
}

func TestRegistryLookups(t *testing.T) {
	reg := DefaultRegistry()

	require.ElementsMatch(t, []string{
		FamilyInsider, FamilyForm13F, FamilyNPORT, FamilyNMFP,
		FamilyFormD, FamilyExchange, FamilySwapReg,
	}, reg.Families())

	s, ok := reg.Schema(FamilySwapReg, "swap_dealers")
	require.True(t, ok)
	require.Equal(t, LoadUpsert, s.Mode)
	require.Equal(t, []string{"lei"}, s.NaturalKey())

	s, ok = reg.Schema(FamilyInsider, "insider_nonderiv_transactions")
	require.True(t, ok)
	require.Equal(t, LoadAppend, s.Mode)
	require.Equal(t, []string{"accession_number", "nonderiv_trans_sk"}, s.NaturalKey())

	_, ok = reg.Schema(FamilyInsider, "swap_dealers")
	require.False(t, ok)
}
