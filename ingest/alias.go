package ingest

// AliasSet maps raw vendor header tokens onto canonical field names, scoped per
// (form family, table). The data lives in alias_data.go; new vendor header
// variants are handled by adding rows there, never by touching normalization
// logic. Read-only after process start.
type AliasSet struct {
	byFamily map[string]map[string]map[string]string
}

func NewAliasSet() *AliasSet {
	return &AliasSet{byFamily: make(map[string]map[string]map[string]string)}
}

// Add registers one raw -> canonical mapping. Raw tokens are expected in
// normalized form (lowercase, underscored); see NormalizeToken.
func (a *AliasSet) Add(family, table, raw, canonical string) {
	fam := a.byFamily[family]
	if fam == nil {
		fam = make(map[string]map[string]string)
		a.byFamily[family] = fam
	}
	tbl := fam[table]
	if tbl == nil {
		tbl = make(map[string]string)
		fam[table] = tbl
	}
	tbl[raw] = canonical
}

// Resolve maps a normalized token to its canonical field name. Unmapped tokens
// come back unchanged; the schema lookup at coercion time decides whether they
// are usable.
func (a *AliasSet) Resolve(family, table, token string) string {
	if fam, ok := a.byFamily[family]; ok {
		if tbl, ok := fam[table]; ok {
			if canonical, ok := tbl[token]; ok {
				return canonical
			}
		}
	}
	return token
}

func (a *AliasSet) tablesFor(family string) map[string]map[string]string {
	return a.byFamily[family]
}
