// Package extract locates CREATE TABLE statements inside comment-stripped
// DDL dumps and writes them out one file per table.
package extract

import (
	"regexp"
	"strings"
)

var (
	createTableRe   = regexp.MustCompile(`(?i)^CREATE\s+TABLE\s+\w+(?:\.\w+)?`)
	qualifiedNameRe = regexp.MustCompile(`(?i)CREATE\s+TABLE\s+(\w+)\.(\w+)`)
	bareNameRe      = regexp.MustCompile(`(?i)CREATE\s+TABLE\s+(\w+)`)
)

// Statement is one CREATE TABLE construct captured from a dump. Schema is
// "DEFAULT" when the statement carries no schema prefix, and empty when no
// identity could be derived at all.
type Statement struct {
	Schema string
	Table  string
	Lines  []string
}

// Text joins the captured lines back into one statement.
func (s Statement) Text() string {
	return strings.Join(s.Lines, "\n")
}

// QualifiedName returns SCHEMA.TABLE.
func (s Statement) QualifiedName() string {
	return s.Schema + "." + s.Table
}

// scanState is the segmenter's position in the dump: idle between
// statements, or inside one with a running parenthesis depth.
type scanState struct {
	inStatement bool
	depth       int
	lines       []string
}

// begin opens a new statement at a CREATE TABLE line. The depth starts at
// the opening line's own parenthesis balance, so a body-less statement
// still tracks correctly.
func (st *scanState) begin(line string) {
	st.inStatement = true
	st.lines = []string{line}
	st.depth = strings.Count(line, "(") - strings.Count(line, ")")
}

// accumulate adds a line to the open statement and reports whether the
// line closed it.
func (st *scanState) accumulate(line string) bool {
	st.lines = append(st.lines, line)
	st.depth += strings.Count(line, "(") - strings.Count(line, ")")
	return st.closed(line)
}

// closed reports whether the statement ends on this line: all parentheses
// balanced and a trailing semicolon.
func (st *scanState) closed(line string) bool {
	return st.depth <= 0 && strings.HasSuffix(line, ";")
}

// take emits the accumulated statement, if any, and resets to idle.
func (st *scanState) take() (Statement, bool) {
	if !st.inStatement || len(st.lines) == 0 {
		return Statement{}, false
	}
	stmt := newStatement(st.lines)
	*st = scanState{}
	return stmt, true
}

// Segment walks comment-stripped dump text and returns every CREATE TABLE
// statement it can delimit. A new CREATE TABLE flushes any statement still
// open (the prior one never closed), and a statement still open at end of
// input is flushed as-is rather than dropped.
func Segment(content string) []Statement {
	var (
		stmts []Statement
		state scanState
	)

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		switch {
		case createTableRe.MatchString(line):
			if stmt, ok := state.take(); ok {
				stmts = append(stmts, stmt)
			}
			state.begin(line)
			// A one-line statement opens and closes on the same line.
			if state.closed(line) {
				if stmt, ok := state.take(); ok {
					stmts = append(stmts, stmt)
				}
			}
		case state.inStatement:
			if state.accumulate(line) {
				if stmt, ok := state.take(); ok {
					stmts = append(stmts, stmt)
				}
			}
		}
	}

	// Best-effort recovery for input that ends mid-statement.
	if stmt, ok := state.take(); ok {
		stmts = append(stmts, stmt)
	}
	return stmts
}

func newStatement(lines []string) Statement {
	s := Statement{Lines: lines}
	s.Schema, s.Table, _ = Identify(s.Text())
	return s
}

// Identify extracts the schema and table identity from a CREATE TABLE
// statement. A bare table name lands in the DEFAULT schema; ok is false
// when neither form matches.
func Identify(statement string) (schema, table string, ok bool) {
	if m := qualifiedNameRe.FindStringSubmatch(statement); m != nil {
		return m[1], m[2], true
	}
	if m := bareNameRe.FindStringSubmatch(statement); m != nil {
		return "DEFAULT", m[1], true
	}
	return "", "", false
}
