package ingest

import (
	"path"
	"strings"
)

// route maps one member file name inside an archive to a destination table.
// Exact entries match the member's base name; suffix entries match its tail,
// which covers vintages that prefix members with the period (2019q2_NPORT_HOLDING.tsv).
type route struct {
	member string
	suffix bool
	table  string
}

// routingTables is the single place declaring which form family produces which
// destination tables. Slice order is the intra-archive load order: parent
// submission tables come first so child rows can reference a parent that is
// already committed.
var routingTables = map[string][]route{
	FamilyInsider: {
		{member: "SUBMISSION.tsv", table: "insider_submissions"},
		{member: "REPORTINGOWNER.tsv", table: "insider_reporting_owners"},
		{member: "NONDERIV_TRANS.tsv", table: "insider_nonderiv_transactions"},
		{member: "NONDERIV_HOLDING.tsv", table: "insider_nonderiv_holdings"},
		{member: "DERIV_TRANS.tsv", table: "insider_deriv_transactions"},
		{member: "DERIV_HOLDING.tsv", table: "insider_deriv_holdings"},
		{member: "FOOTNOTES.tsv", table: "insider_footnotes"},
		{member: "OWNER_SIGNATURE.tsv", table: "insider_owner_signatures"},
	},
	FamilyForm13F: {
		{member: "SUBMISSION.tsv", table: "form13f_submissions"},
		{member: "COVERPAGE.tsv", table: "form13f_cover_pages"},
		{member: "OTHERMANAGER.tsv", table: "form13f_other_managers"},
		{member: "SIGNATURE.tsv", table: "form13f_signatures"},
		{member: "SUMMARYPAGE.tsv", table: "form13f_summary_pages"},
		{member: "OTHERMANAGER2.tsv", table: "form13f_other_managers2"},
		{member: "INFOTABLE.tsv", table: "form13f_info_tables"},
	},
	FamilyNPORT: {
		{member: "SUBMISSION.tsv", suffix: true, table: "nport_submissions"},
		{member: "GENERAL_INFO.tsv", suffix: true, table: "nport_general_info"},
		{member: "GEN_INFO.tsv", suffix: true, table: "nport_general_info"},
		{member: "HOLDING.tsv", suffix: true, table: "nport_holdings"},
		{member: "DERIVATIVE.tsv", suffix: true, table: "nport_derivatives"},
	},
	FamilyNMFP: {
		{member: "SUBMISSION.tsv", table: "nmfp_submissions"},
		{member: "FUND.tsv", table: "nmfp_funds"},
		{member: "SERIESLEVELINFO.tsv", table: "nmfp_series_level_info"},
		{member: "ADVISER.tsv", table: "nmfp_advisers"},
		{member: "ADMINISTRATOR.tsv", table: "nmfp_administrators"},
		{member: "TRANSFERAGENT.tsv", table: "nmfp_transfer_agents"},
	},
	FamilyFormD: {
		{member: "FORMDSUBMISSION.tsv", table: "formd_submissions"},
		{member: "ISSUERS.tsv", table: "formd_issuers"},
		{member: "OFFERING.tsv", table: "formd_offerings"},
		{member: "RECIPIENTS.tsv", table: "formd_recipients"},
		{member: "RELATEDPERSONS.tsv", table: "formd_related_persons"},
		{member: "SIGNATURES.tsv", table: "formd_signatures"},
	},
	FamilyExchange: {
		{member: ".csv", suffix: true, table: "exchange_metrics"},
	},
	FamilySwapReg: {
		{member: "DEALERS.csv", suffix: true, table: "swap_dealers"},
		{member: "EXECUTION_FACILITIES.csv", suffix: true, table: "swap_execution_facilities"},
		{member: "DATA_REPOSITORIES.csv", suffix: true, table: "swap_data_repositories"},
	},
}

// Router decides which archive members are recognized and where they load.
type Router struct {
	reg *Registry
}

func NewRouter(reg *Registry) *Router {
	return &Router{reg: reg}
}

// Route resolves one member name to its canonical schema. ok=false means the
// member is unrecognized and must be skipped without error.
func (r *Router) Route(family, member string) (*Schema, bool) {
	base := strings.ToUpper(path.Base(strings.ReplaceAll(member, "\\", "/")))
	for _, rt := range routingTables[family] {
		want := strings.ToUpper(rt.member)
		if rt.suffix {
			if strings.HasSuffix(base, want) {
				return r.reg.Schema(family, rt.table)
			}
			continue
		}
		if base == want {
			return r.reg.Schema(family, rt.table)
		}
	}
	return nil, false
}

// OrderMembers sorts recognized members into the family's declared load order,
// dropping unrecognized ones. Members mapping to the same table keep their
// input order relative to each other.
func (r *Router) OrderMembers(family string, members []string) []string {
	var out []string
	for _, rt := range routingTables[family] {
		for _, m := range members {
			s, ok := r.Route(family, m)
			if ok && s.Table == rt.table && !contains(out, m) {
				out = append(out, m)
			}
		}
	}
	return out
}

func contains(xs []string, x string) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}
