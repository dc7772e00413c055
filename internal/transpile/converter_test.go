package transpile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/diag"
)

func TestConvertFile(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()

	input := `-- Source file: data/input/sample.sql
-- Extracted: 2025-10-20T00:00:00Z

CREATE TABLE APP.ACCOUNT (
  ACCOUNT_ID INTEGER NOT NULL CONSTRAINT PK_ACC PRIMARY KEY,
  NAME VARCHAR(100) FOR SBCS DATA NOT NULL WITH DEFAULT '',
  CODE CHAR(3) WITH DEFAULT
);`
	src := filepath.Join(inDir, "APP__ACCOUNT.sql")
	if err := os.WriteFile(src, []byte(input), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	rec := &diag.Recorder{}
	conv := &Converter{OutDir: outDir, Sink: rec}
	if err := conv.ConvertFile(src); err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(outDir, "APP__ACCOUNT.sql"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	want := strings.Join([]string{
		"-- Source file: data/input/sample.sql",
		"-- Extracted: 2025-10-20T00:00:00Z",
		"",
		"CREATE TABLE APP.ACCOUNT (",
		"  ACCOUNT_ID INTEGER NOT NULL,",
		"  NAME VARCHAR(100) NOT NULL DEFAULT '',",
		"  CODE CHAR(3)",
		");",
		"ALTER TABLE APP.ACCOUNT ADD PRIMARY KEY (ACCOUNT_ID);",
		"",
	}, "\n")
	if diff := cmp.Diff(want, string(content)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}

	// The bare default on CODE is the only issue in this table.
	entries := rec.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(entries), entries)
	}
	if entries[0].Table != "APP.ACCOUNT" || entries[0].Section != "CODE" {
		t.Errorf("diagnostic = %+v", entries[0])
	}
}

func TestConvertFileMissingInput(t *testing.T) {
	rec := &diag.Recorder{}
	conv := &Converter{OutDir: t.TempDir(), Sink: rec}

	err := conv.ConvertFile(filepath.Join(t.TempDir(), "APP__GONE.sql"))
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	entries := rec.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(entries))
	}
	if entries[0].Section != "file_read" {
		t.Errorf("Section = %q, want file_read", entries[0].Section)
	}
}
