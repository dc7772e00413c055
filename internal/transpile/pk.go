package transpile

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// A column line carrying the marker after its type and constraints,
	// anchored at the column name so the match cannot start inside a
	// keyword elsewhere on the line.
	inlinePKRe = regexp.MustCompile(`(?i)^(\w+)\s+[^,\n]+\s+PRIMARY\s+KEY`)
	tablePKRe  = regexp.MustCompile(`(?is)PRIMARY\s+KEY\s*\(([^)]+)\)`)
)

// PrimaryKeyColumns returns the ordered column list forming the primary
// key declared in a statement, or nil when none is declared. An inline
// per-column marker takes precedence over a table-level clause when both
// appear. The inline match runs per column definition, so CREATE lines
// and table-level constraint lines can never pose as a key column.
func PrimaryKeyColumns(statement string) []string {
	for _, line := range expandBody(statement) {
		upper := strings.ToUpper(line)
		if strings.HasPrefix(upper, "CREATE TABLE") || hasAnyPrefix(upper, constraintPrefixes) {
			continue
		}
		if m := inlinePKRe.FindStringSubmatch(line); m != nil {
			return []string{m[1]}
		}
	}
	if m := tablePKRe.FindStringSubmatch(statement); m != nil {
		parts := strings.Split(m[1], ",")
		cols := make([]string, 0, len(parts))
		for _, p := range parts {
			cols = append(cols, strings.TrimSpace(p))
		}
		return cols
	}
	return nil
}

// AddPrimaryKeyStatement renders the post-creation key declaration; the
// target dialect does not accept inline key declarations at creation time.
func AddPrimaryKeyStatement(table string, columns []string) string {
	return fmt.Sprintf("ALTER TABLE %s ADD PRIMARY KEY (%s);", table, strings.Join(columns, ", "))
}
