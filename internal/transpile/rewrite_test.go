package transpile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/diag"
)

func TestRewriteAccountTable(t *testing.T) {
	statement := `CREATE TABLE APP.ACCOUNT (
  ACCOUNT_ID INTEGER NOT NULL CONSTRAINT PK_ACC PRIMARY KEY,
  NAME VARCHAR(100) FOR SBCS DATA NOT NULL WITH DEFAULT '',
  CRT_TS TIMESTAMP NOT NULL WITH DEFAULT CURRENT TIMESTAMP,
  BAL DECIMAL(18,2) WITH DEFAULT 0,
  NOTES CLOB(1M),
  CODE CHAR(3) WITH DEFAULT
);`

	rec := &diag.Recorder{}
	got := Rewrite(statement, "APP.ACCOUNT", rec)

	want := strings.Join([]string{
		"CREATE TABLE APP.ACCOUNT (",
		"  ACCOUNT_ID INTEGER NOT NULL,",
		"  NAME VARCHAR(100) NOT NULL DEFAULT '',",
		"  CRT_TS TIMESTAMP_NTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,",
		"  BAL NUMBER(18,2) DEFAULT 0,",
		"  NOTES VARCHAR,",
		"  CODE CHAR(3)",
		");",
		"ALTER TABLE APP.ACCOUNT ADD PRIMARY KEY (ACCOUNT_ID);",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rewrite() mismatch (-want +got):\n%s", diff)
	}

	wantDiags := []diag.Diagnostic{
		{Table: "APP.ACCOUNT", Section: "NOTES", Issue: "CLOB mapped to VARCHAR (possible size loss)", Snippet: "CLOB(1M)"},
		{Table: "APP.ACCOUNT", Section: "CODE", Issue: "ambiguous default removed", Snippet: "WITH DEFAULT"},
	}
	if diff := cmp.Diff(wantDiags, rec.Entries()); diff != "" {
		t.Errorf("diagnostics mismatch (-want +got):\n%s", diff)
	}
}

func TestRewriteOneLineStatement(t *testing.T) {
	statement := `CREATE TABLE APP.ACCOUNT (ACCOUNT_ID INTEGER NOT NULL CONSTRAINT PK_ACC PRIMARY KEY, BAL DECIMAL(18,2) WITH DEFAULT 0);`

	rec := &diag.Recorder{}
	got := Rewrite(statement, "APP.ACCOUNT", rec)

	want := strings.Join([]string{
		"CREATE TABLE APP.ACCOUNT (",
		"  ACCOUNT_ID INTEGER NOT NULL,",
		"  BAL NUMBER(18,2) DEFAULT 0",
		");",
		"ALTER TABLE APP.ACCOUNT ADD PRIMARY KEY (ACCOUNT_ID);",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rewrite() mismatch (-want +got):\n%s", diff)
	}
	if rec.Len() != 0 {
		t.Errorf("expected no diagnostics, got %v", rec.Entries())
	}
}

func TestSplitTopLevel(t *testing.T) {
	got := splitTopLevel("A INTEGER NOT NULL, BAL DECIMAL(18,2) WITH DEFAULT 0, NAME VARCHAR(100)")
	want := []string{"A INTEGER NOT NULL", "BAL DECIMAL(18,2) WITH DEFAULT 0", "NAME VARCHAR(100)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("splitTopLevel() mismatch (-want +got):\n%s", diff)
	}
}

func TestRewriteSchemalessTable(t *testing.T) {
	statement := `CREATE TABLE WIDGETS (
  ID INTEGER NOT NULL,
  LABEL VARCHAR(40)
);`

	rec := &diag.Recorder{}
	got := Rewrite(statement, "DEFAULT.WIDGETS", rec)

	want := strings.Join([]string{
		"CREATE TABLE WIDGETS (",
		"  ID INTEGER NOT NULL,",
		"  LABEL VARCHAR(40)",
		");",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rewrite() mismatch (-want +got):\n%s", diff)
	}
	if rec.Len() != 0 {
		t.Errorf("expected no diagnostics, got %v", rec.Entries())
	}
}

func TestRewriteSkipsTableOptionsAndConstraints(t *testing.T) {
	statement := `CREATE TABLE APP.EVENTS (
  ID BIGINT NOT NULL,
  KIND CHAR(4),
  CONSTRAINT CK_KIND CHECK (KIND <> ''),
  PRIMARY KEY (ID)
)
PARTITION BY RANGE (ID)
DATA CAPTURE CHANGES
AUDIT NONE
CCSID EBCDIC;`

	rec := &diag.Recorder{}
	got := Rewrite(statement, "APP.EVENTS", rec)

	want := strings.Join([]string{
		"CREATE TABLE APP.EVENTS (",
		"  ID BIGINT NOT NULL,",
		"  KIND CHAR(4)",
		");",
		"ALTER TABLE APP.EVENTS ADD PRIMARY KEY (ID);",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Rewrite() mismatch (-want +got):\n%s", diff)
	}
}

func TestRewriteUnknownTypeIsFlagged(t *testing.T) {
	statement := `CREATE TABLE APP.ODD (
  RID ROWID NOT NULL
);`

	rec := &diag.Recorder{}
	got := Rewrite(statement, "APP.ODD", rec)

	if !strings.Contains(got, "RID ROWID NOT NULL") {
		t.Errorf("unknown type must pass through, got:\n%s", got)
	}
	entries := rec.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(entries))
	}
	if entries[0].Issue != "unrecognized type passed through (manual review)" {
		t.Errorf("Issue = %q", entries[0].Issue)
	}
}
