package ingest

import (
	"regexp"
	"strings"
)

var (
	nonAlnumRun    = regexp.MustCompile(`[^0-9a-z]+`)
	edgeUnderscore = regexp.MustCompile(`^_+|_+$`)
)

// NormalizeToken turns one raw vendor header into a normalized token:
// trim, lowercase, collapse every run of non-alphanumerics into a single
// underscore, strip leading/trailing underscores. Total and idempotent:
// NormalizeToken(NormalizeToken(h)) == NormalizeToken(h) for any h.
func NormalizeToken(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = nonAlnumRun.ReplaceAllString(s, "_")
	s = edgeUnderscore.ReplaceAllString(s, "")
	return s
}

// NormalizeHeader maps a raw header row onto canonical field names, one per
// input column: mechanical token cleanup first, then table-driven alias
// substitution. Tokens with no alias entry pass through normalized; whether
// they match a schema field is decided at coercion time.
func NormalizeHeader(raw []string, aliases *AliasSet, family, table string) []string {
	out := make([]string, len(raw))
	for i, h := range raw {
		token := NormalizeToken(h)
		if aliases != nil {
			token = aliases.Resolve(family, table, token)
		}
		out[i] = token
	}
	return out
}
