// Package transpile rewrites DB2 CREATE TABLE statements as Snowflake DDL,
// reporting every lossy or ambiguous mapping for review.
package transpile

import (
	"regexp"
	"strings"

	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/diag"
)

// boundaryKeywords end the type expression of a column definition; the
// leftmost occurrence wins.
var boundaryKeywords = []string{
	"NOT NULL",
	"WITH DEFAULT",
	"NULL",
	"CONSTRAINT",
	"PRIMARY KEY",
	"UNIQUE",
	"CHECK",
}

// The expression runs greedily to the next comma or end of line, so
// multi-token defaults like CURRENT TIMESTAMP are captured whole. A bare
// WITH DEFAULT with no expression also matches.
var defaultClauseRe = regexp.MustCompile(`(?i)WITH\s+DEFAULT(?:\s+([^,]+))?`)

// ColumnDefinition is one parsed source-dialect column line.
type ColumnDefinition struct {
	Name       string
	RawType    string
	NotNull    bool
	Nullable   bool   // explicit NULL without NOT NULL
	RawDefault string // full "WITH DEFAULT ..." text, empty when absent
}

// ParseColumn splits one statement body line into a column definition.
// Constraint lines are filtered out before this point. ok is false for a
// line that is empty once its trailing comma is trimmed.
func ParseColumn(line string) (ColumnDefinition, bool) {
	line = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(line), ","))
	if line == "" {
		return ColumnDefinition{}, false
	}

	name := strings.Fields(line)[0]

	// The type expression spans from the end of the column name to the
	// leftmost boundary keyword, so the search starts after the name; a
	// keyword substring inside the name itself is not a boundary.
	upper := strings.ToUpper(line[len(name):])
	end := len(line)
	for _, kw := range boundaryKeywords {
		if pos := strings.Index(upper, kw); pos != -1 && len(name)+pos < end {
			end = len(name) + pos
		}
	}

	def := ColumnDefinition{
		Name:    name,
		RawType: strings.TrimSpace(line[len(name):end]),
	}

	rest := strings.ToUpper(line[end:])
	def.NotNull = strings.Contains(rest, "NOT NULL")
	def.Nullable = !def.NotNull && strings.Contains(rest, "NULL")
	def.RawDefault = strings.TrimSpace(defaultClauseRe.FindString(line[end:]))
	return def, true
}

// ConvertedColumn is a column rendered for the target dialect. It is built
// once by ConvertColumn and never mutated.
type ConvertedColumn struct {
	Name     string
	Type     string
	NotNull  bool
	Nullable bool
	Default  string // full DEFAULT clause, empty when none
}

// Render returns the column as it appears in the rewritten statement.
func (c ConvertedColumn) Render() string {
	parts := []string{c.Name, c.Type}
	switch {
	case c.NotNull:
		parts = append(parts, "NOT NULL")
	case c.Nullable:
		parts = append(parts, "NULL")
	}
	if c.Default != "" {
		parts = append(parts, c.Default)
	}
	return strings.Join(parts, " ")
}

// ConvertColumn runs one parsed column through the type and default rules,
// reporting every lossy or ambiguous mapping to the sink. table is the
// qualified identity used in diagnostics.
func ConvertColumn(def ColumnDefinition, table string, sink diag.Sink) ConvertedColumn {
	tc := ConvertType(def.RawType)
	if tc.Note != "" {
		sink.Record(diag.Diagnostic{
			Table:   table,
			Section: def.Name,
			Issue:   tc.Note,
			Snippet: tc.Normalized,
		})
	}
	if !tc.Known {
		sink.Record(diag.Diagnostic{
			Table:   table,
			Section: def.Name,
			Issue:   "unrecognized type passed through (manual review)",
			Snippet: tc.Normalized,
		})
	}

	dc := ConvertDefault(def.RawDefault)
	if dc.Note != "" {
		sink.Record(diag.Diagnostic{
			Table:   table,
			Section: def.Name,
			Issue:   dc.Note,
			Snippet: dc.Snippet,
		})
	}

	return ConvertedColumn{
		Name:     def.Name,
		Type:     tc.Type,
		NotNull:  def.NotNull,
		Nullable: def.Nullable,
		Default:  dc.Clause,
	}
}
