package transpile

import (
	"regexp"
	"strings"

	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/diag"
)

var (
	qualifiedTableRe = regexp.MustCompile(`(?i)CREATE\s+TABLE\s+(\w+)\.(\w+)`)
	bareTableRe      = regexp.MustCompile(`(?i)CREATE\s+TABLE\s+(\w+)`)
)

// constraintPrefixes open table-level constraint lines, which are handled
// separately from column definitions.
var constraintPrefixes = []string{"CONSTRAINT", "PRIMARY KEY", "UNIQUE", "CHECK"}

// tableOptionKeywords mark DB2 physical table options with no Snowflake
// counterpart; lines carrying them are dropped.
var tableOptionKeywords = []string{"PARTITION BY", "AUDIT", "DATA CAPTURE", "CCSID"}

func hasAnyPrefix(upper string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(upper, p) {
			return true
		}
	}
	return false
}

func containsAny(upper string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(upper, kw) {
			return true
		}
	}
	return false
}

// expandBody flattens a statement into one line per definition. A CREATE
// line carrying body text after its opening parenthesis is split up, so a
// one-line statement scans the same way as a multi-line one.
func expandBody(statement string) []string {
	var lines []string
	for _, raw := range strings.Split(statement, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(strings.ToUpper(line), "CREATE TABLE") {
			lines = append(lines, line)
			continue
		}

		open := strings.Index(line, "(")
		if open == -1 || strings.TrimSpace(line[open+1:]) == "" {
			lines = append(lines, line)
			continue
		}

		lines = append(lines, strings.TrimSpace(line[:open+1]))
		rest := strings.TrimSpace(line[open+1:])
		closer := ""
		for _, suffix := range []string{");", ")"} {
			if strings.HasSuffix(rest, suffix) {
				rest = strings.TrimSpace(strings.TrimSuffix(rest, suffix))
				closer = suffix
				break
			}
		}
		lines = append(lines, splitTopLevel(rest)...)
		if closer != "" {
			lines = append(lines, closer)
		}
	}
	return lines
}

// splitTopLevel splits a column list on commas outside parentheses, so
// precision arguments like DECIMAL(18,2) stay whole.
func splitTopLevel(s string) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				if p := strings.TrimSpace(s[start:i]); p != "" {
					parts = append(parts, p)
				}
				start = i + 1
			}
		}
	}
	if p := strings.TrimSpace(s[start:]); p != "" {
		parts = append(parts, p)
	}
	return parts
}

// Rewrite converts one DB2 CREATE TABLE statement into Snowflake DDL.
// table is the qualified SCHEMA.TABLE identity used in diagnostics and in
// the trailing ALTER TABLE statement. Any primary key, inline or
// table-level, is emitted as a separate post-creation statement.
func Rewrite(statement, table string, sink diag.Sink) string {
	primaryKeys := PrimaryKeyColumns(statement)

	var (
		out     []string
		columns []string
		inBody  bool
	)

	for _, line := range expandBody(statement) {
		if strings.HasPrefix(line, "--") {
			continue
		}
		upper := strings.ToUpper(line)

		if strings.HasPrefix(upper, "CREATE TABLE") {
			if m := qualifiedTableRe.FindStringSubmatch(line); m != nil {
				out = append(out, "CREATE TABLE "+m[1]+"."+m[2]+" (")
				inBody = true
			} else if m := bareTableRe.FindStringSubmatch(line); m != nil {
				out = append(out, "CREATE TABLE "+m[1]+" (")
				inBody = true
			}
			continue
		}

		if containsAny(upper, tableOptionKeywords) {
			continue
		}

		if line == ")" || line == ");" {
			inBody = false
			for i, col := range columns {
				comma := ","
				if i == len(columns)-1 {
					comma = ""
				}
				out = append(out, "  "+col+comma)
			}
			out = append(out, ");")
			break
		}

		if !inBody {
			continue
		}
		if hasAnyPrefix(upper, constraintPrefixes) {
			continue
		}

		def, ok := ParseColumn(line)
		if !ok {
			continue
		}
		columns = append(columns, ConvertColumn(def, table, sink).Render())
	}

	if len(primaryKeys) > 0 {
		out = append(out, AddPrimaryKeyStatement(table, primaryKeys))
	}
	return strings.Join(out, "\n")
}
