package convert

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/diag"
)

// printSummary renders one row per converted table with its issue count,
// so a reviewer can see at a glance which tables need attention.
func printSummary(w io.Writer, tables []string, entries []diag.Diagnostic) {
	issues := make(map[string]int)
	for _, d := range entries {
		issues[d.Table]++
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Table", "Issues"})
	for _, name := range tables {
		t.AppendRow(table.Row{name, issues[name]})
	}
	t.Render()
}
