package ingest

import "testing"

func TestNormalizeToken(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Filing Date", "filing_date"},
		{"  FILING-DATE  ", "filing_date"},
		{"CIK", "cik"},
		{"ACCESSION_NUMBER", "accession_number"},
		{"Trans. Price / Share", "trans_price_share"},
		{"  __already_clean__  ", "already_clean"},
		{"Value (x$1000)", "value_x_1000"},
		{"", ""},
		{"###", ""},
	}
	for _, c := range cases {
		got := NormalizeToken(c.in)
		if got != c.want {
			t.Errorf("NormalizeToken(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeTokenIsIdempotent(t *testing.T) {
	inputs := []string{"Filing Date", "CIK#", "a--b__c", "  x  ", "Qtr.1 (Est.)"}
	for _, in := range inputs {
		once := NormalizeToken(in)
		twice := NormalizeToken(once)
		if once != twice {
			t.Errorf("NormalizeToken not idempotent on %q: %q vs %q", in, once, twice)
		}
	}
}

func TestNormalizeHeaderAppliesAliases(t *testing.T) {
	aliases := NewAliasSet()
	aliases.Add(FamilyForm13F, "form13f_submissions", "central_index_key", "cik")

	raw := []string{"CENTRAL INDEX KEY", "ACCESSION_NUMBER", "Some Vendor Extra"}
	got := NormalizeHeader(raw, aliases, FamilyForm13F, "form13f_submissions")

	want := []string{"cik", "accession_number", "some_vendor_extra"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

// Two vendor spellings of the same column must land on the same canonical
// name, so downstream queries never see both.
func TestNormalizeHeaderConvergesVendorSpellings(t *testing.T) {
	aliases := DefaultAliases()

	a := NormalizeHeader([]string{"EXCERCISE_DATE"}, aliases, FamilyInsider, "insider_deriv_transactions")
	b := NormalizeHeader([]string{"ExcerciseDate"}, aliases, FamilyInsider, "insider_deriv_transactions")
	if a[0] != "exercise_date" || b[0] != "exercise_date" {
		t.Fatalf("expected both spellings to map to exercise_date, got %q and %q", a[0], b[0])
	}
}
