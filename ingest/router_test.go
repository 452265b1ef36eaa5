package ingest

import (
	"reflect"
	"testing"
)

func TestRouteExactMembers(t *testing.T) {
	r := NewRouter(DefaultRegistry())

	cases := []struct {
		family string
		member string
		table  string
	}{
		{FamilyInsider, "SUBMISSION.tsv", "insider_submissions"},
		{FamilyInsider, "submission.tsv", "insider_submissions"},
		{FamilyInsider, "NONDERIV_TRANS.tsv", "insider_nonderiv_transactions"},
		{FamilyForm13F, "INFOTABLE.tsv", "form13f_info_tables"},
		{FamilyForm13F, "OTHERMANAGER2.tsv", "form13f_other_managers2"},
		{FamilyNMFP, "SERIESLEVELINFO.tsv", "nmfp_series_level_info"},
		{FamilyFormD, "FORMDSUBMISSION.tsv", "formd_submissions"},
		{FamilyFormD, "RELATEDPERSONS.tsv", "formd_related_persons"},
	}
	for _, c := range cases {
		s, ok := r.Route(c.family, c.member)
		if !ok {
			t.Errorf("Route(%s, %s) not recognized", c.family, c.member)
			continue
		}
		if s.Table != c.table {
			t.Errorf("Route(%s, %s) = %s, want %s", c.family, c.member, s.Table, c.table)
		}
	}
}

func TestRouteSuffixMembers(t *testing.T) {
	r := NewRouter(DefaultRegistry())

	// N-PORT vintages prefix members with the period label.
	s, ok := r.Route(FamilyNPORT, "2019q2_NPORT_HOLDING.tsv")
	if !ok || s.Table != "nport_holdings" {
		t.Fatalf("period-prefixed holding: ok=%v table=%v", ok, s)
	}
	s, ok = r.Route(FamilyNPORT, "HOLDING.tsv")
	if !ok || s.Table != "nport_holdings" {
		t.Fatalf("bare holding: ok=%v", ok)
	}

	// Exchange archives route every CSV member to the one metrics table.
	s, ok = r.Route(FamilyExchange, "batch_2024_03.csv")
	if !ok || s.Table != "exchange_metrics" {
		t.Fatalf("exchange csv: ok=%v", ok)
	}
	if _, ok := r.Route(FamilyExchange, "readme.txt"); ok {
		t.Error("non-CSV exchange member should be unrecognized")
	}

	s, ok = r.Route(FamilySwapReg, "CFTC_SWAP_DEALERS.csv")
	if !ok || s.Table != "swap_dealers" {
		t.Fatalf("swap dealers: ok=%v", ok)
	}
}

func TestRouteUnrecognizedMember(t *testing.T) {
	r := NewRouter(DefaultRegistry())
	if _, ok := r.Route(FamilyInsider, "README.txt"); ok {
		t.Error("unrecognized member must be skipped, not routed")
	}
	if _, ok := r.Route("no_such_family", "SUBMISSION.tsv"); ok {
		t.Error("unknown family must route nothing")
	}
}

func TestRouteStripsMemberDirectories(t *testing.T) {
	r := NewRouter(DefaultRegistry())
	s, ok := r.Route(FamilyInsider, "2024q1_form345/SUBMISSION.tsv")
	if !ok || s.Table != "insider_submissions" {
		t.Fatalf("nested member: ok=%v", ok)
	}
	s, ok = r.Route(FamilyInsider, `2024q1_form345\SUBMISSION.tsv`)
	if !ok || s.Table != "insider_submissions" {
		t.Fatalf("windows-nested member: ok=%v", ok)
	}
}

func TestOrderMembersLoadsParentsFirst(t *testing.T) {
	r := NewRouter(DefaultRegistry())
	in := []string{
		"FOOTNOTES.tsv",
		"NONDERIV_TRANS.tsv",
		"SUBMISSION.tsv",
		"random_junk.dat",
		"REPORTINGOWNER.tsv",
	}
	got := r.OrderMembers(FamilyInsider, in)
	want := []string{
		"SUBMISSION.tsv",
		"REPORTINGOWNER.tsv",
		"NONDERIV_TRANS.tsv",
		"FOOTNOTES.tsv",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("OrderMembers = %v, want %v", got, want)
	}
}
