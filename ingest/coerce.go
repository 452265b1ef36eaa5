package ingest

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Record is one coerced row: canonical field name -> typed value. A field that
// failed coercion or arrived empty is simply absent, which the store treats as
// null. Produced by CoerceRow, consumed once by the Load Executor.
type Record map[string]any

// dateLayouts are the textual date formats observed across form vintages,
// tried in order. Older EDGAR vintages ship DD-Mon-YYYY; newer ones ISO.
var dateLayouts = []string{
	"02-Jan-2006",
	"2006-01-02",
	"01/02/2006",
	"20060102",
}

var numericScrub = strings.NewReplacer(",", "", "$", "", " ", "")

// CoerceDate parses a date cell against the accepted vintage formats.
func CoerceDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}

// CoerceInteger parses an integer cell, tolerating thousands separators and
// currency symbols.
func CoerceInteger(s string) (int64, bool) {
	s = numericScrub.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// CoerceFloat parses a float cell, tolerating thousands separators and
// currency symbols.
func CoerceFloat(s string) (float64, bool) {
	s = numericScrub.Replace(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// CoerceBoolean maps the fixed token set to true/false. Anything outside the
// set is null, never a silent false: ambiguous flags must stay distinguishable
// from an explicit "N".
func CoerceBoolean(s string) (bool, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "Y", "YES", "TRUE", "1":
		return true, true
	case "N", "NO", "FALSE", "0":
		return false, true
	default:
		return false, false
	}
}

// CoerceRow converts one raw row into a Record using the canonical header
// produced by NormalizeHeader. Columns absent from the schema are dropped;
// autokey fields are always stripped; string fields are truncated to their
// declared maximum length.
//
// A non-nil error marks the row unusable: a natural-key field failed coercion,
// or a required field is missing from the header entirely. Unusable rows are
// dropped and counted; a null in any other field degrades only that field.
func CoerceRow(header []string, cells []string, s *Schema) (Record, error) {
	for _, f := range s.Fields {
		if !f.Required {
			continue
		}
		found := false
		for _, h := range header {
			if h == f.Name {
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("required field %q missing from row", f.Name)
		}
	}

	rec := make(Record, len(header))
	for i, name := range header {
		f, ok := s.FieldNamed(name)
		if !ok || f.Key == KeyAuto {
			continue
		}
		var cell string
		if i < len(cells) {
			cell = strings.TrimSpace(cells[i])
		}
		if cell == "" {
			if f.Key == KeyNaturalPart {
				return nil, fmt.Errorf("natural-key field %q is empty", name)
			}
			continue
		}
		v, ok := coerceValue(cell, f)
		if !ok {
			if f.Key == KeyNaturalPart {
				return nil, fmt.Errorf("natural-key field %q unparsable: %q", name, cell)
			}
			continue
		}
		rec[name] = v
	}
	return rec, nil
}

func coerceValue(cell string, f Field) (any, bool) {
	switch f.Type {
	case TypeDate:
		return firstOK(CoerceDate(cell))
	case TypeInteger:
		return firstOK(CoerceInteger(cell))
	case TypeFloat:
		return firstOK(CoerceFloat(cell))
	case TypeBoolean:
		return firstOK(CoerceBoolean(cell))
	case TypeString:
		return truncate(cell, f.MaxLen), true
	case TypeText:
		return cell, true
	default:
		return nil, false
	}
}

// truncate cuts s to at most max bytes without splitting a multi-byte rune.
// Issuer and registrant names are routinely non-ASCII.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func firstOK[T any](v T, ok bool) (any, bool) {
	if !ok {
		return nil, false
	}
	return v, true
}

// RecordFromMap builds a validated Record from an arbitrary mapping: keys
// absent from the schema are dropped, autokey fields stripped, and a mapping
// missing a required field is refused.
func RecordFromMap(s *Schema, m map[string]any) (Record, error) {
	rec := make(Record, len(m))
	for k, v := range m {
		f, ok := s.FieldNamed(k)
		if !ok || f.Key == KeyAuto || v == nil {
			continue
		}
		rec[k] = v
	}
	for _, f := range s.Fields {
		if f.Required {
			if _, ok := rec[f.Name]; !ok {
				return nil, fmt.Errorf("required field %q missing", f.Name)
			}
		}
	}
	return rec, nil
}
