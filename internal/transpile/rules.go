package transpile

import "strings"

// TypeConversion is the outcome of mapping one source type.
type TypeConversion struct {
	Type       string // target-dialect type expression
	Normalized string // trimmed, uppercased source type used for matching
	Note       string // diagnostic issue text, empty when the mapping is clean
	Known      bool   // false when no rule matched and the type passed through
}

// typeRule maps one family of source types onto the target dialect.
// convert returns the target type and, for lossy or ambiguous mappings, a
// diagnostic note.
type typeRule struct {
	match   func(t string) bool
	convert func(t string) (target, note string)
}

func prefixAny(prefixes ...string) func(string) bool {
	return func(t string) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(t, p) {
				return true
			}
		}
		return false
	}
}

func oneOf(names ...string) func(string) bool {
	return func(t string) bool {
		for _, n := range names {
			if t == n {
				return true
			}
		}
		return false
	}
}

func keep(t string) (string, string) { return t, "" }

func rename(target, note string) func(string) (string, string) {
	return func(string) (string, string) { return target, note }
}

// typeRules is evaluated top to bottom; the first match wins. Order
// matters: FOR BIT DATA must run before the character rules, and the
// timestamp-with-zone form before bare TIMESTAMP.
var typeRules = []typeRule{
	{
		match:   func(t string) bool { return strings.Contains(t, "FOR BIT DATA") },
		convert: rename("BINARY", "mapped to BINARY from FOR BIT DATA"),
	},
	{
		match: prefixAny("DECIMAL", "NUMERIC"),
		convert: func(t string) (string, string) {
			// Precision and scale carry over verbatim.
			t = strings.Replace(t, "DECIMAL", "NUMBER", 1)
			t = strings.Replace(t, "NUMERIC", "NUMBER", 1)
			return t, ""
		},
	},
	{match: oneOf("SMALLINT", "INTEGER", "BIGINT"), convert: keep},
	{match: oneOf("REAL", "DOUBLE", "DECFLOAT"), convert: rename("FLOAT", "")},
	{match: prefixAny("CHAR", "VARCHAR"), convert: keep},
	{
		match: prefixAny("GRAPHIC", "VARGRAPHIC"),
		convert: func(t string) (string, string) {
			t = strings.Replace(t, "VARGRAPHIC", "VARCHAR", 1)
			t = strings.Replace(t, "GRAPHIC", "VARCHAR", 1)
			return t, "mapped (VAR)GRAPHIC to VARCHAR"
		},
	},
	{match: prefixAny("CLOB"), convert: rename("VARCHAR", "CLOB mapped to VARCHAR (possible size loss)")},
	{match: prefixAny("BLOB"), convert: rename("BINARY", "")},
	{match: oneOf("XML"), convert: rename("VARIANT", "XML mapped to VARIANT")},
	{match: oneOf("DATE", "TIME"), convert: keep},
	{match: oneOf("TIMESTAMP WITH TIME ZONE"), convert: rename("TIMESTAMP_TZ", "")},
	{match: oneOf("TIMESTAMP"), convert: rename("TIMESTAMP_NTZ", "")},
}

// ConvertType maps a DB2 type expression onto its Snowflake equivalent.
// The FOR SBCS DATA annotation is dropped before matching; it has no
// target-dialect counterpart and its removal is not worth a diagnostic.
// An unknown type passes through unchanged with Known=false so the caller
// can flag it for review.
func ConvertType(raw string) TypeConversion {
	t := strings.ToUpper(strings.TrimSpace(raw))
	if strings.Contains(t, "FOR SBCS DATA") {
		t = strings.Join(strings.Fields(strings.ReplaceAll(t, "FOR SBCS DATA", " ")), " ")
	}

	for _, rule := range typeRules {
		if rule.match(t) {
			target, note := rule.convert(t)
			return TypeConversion{Type: target, Normalized: t, Note: note, Known: true}
		}
	}
	return TypeConversion{Type: t, Normalized: t, Known: false}
}
