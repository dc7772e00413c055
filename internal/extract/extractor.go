package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/artifact"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/ignore"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/logger"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/manifest"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/sqltext"
)

// Result summarizes the extraction of one dump file.
type Result struct {
	SourceFile string
	Tables     int // statements written out
	Skipped    int // statements excluded by ignore patterns or missing identity
}

// Extractor splits raw DDL dump files into per-table artifacts.
type Extractor struct {
	OutDir string
	Ignore *ignore.Config

	// Now stamps the extraction header; tests override it.
	Now func() time.Time
}

// New creates an Extractor writing artifacts into outDir. ig may be nil.
func New(outDir string, ig *ignore.Config) *Extractor {
	return &Extractor{
		OutDir: outDir,
		Ignore: ig,
		Now:    time.Now,
	}
}

// ExtractFile reads one dump file, strips comments, segments its CREATE
// TABLE statements, and writes each out with a provenance header, adding a
// manifest entry per written table. sourceLabel is the identity recorded in
// headers and manifest entries.
//
// A file with no statements is not an error; it contributes nothing and a
// warning is logged. Statements without a derivable identity are skipped
// the same way. Only the initial read fails the file as a whole.
func (e *Extractor) ExtractFile(path, sourceLabel string, m *manifest.Manifest) (Result, error) {
	log := logger.Get()
	res := Result{SourceFile: sourceLabel}

	content, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("read %s: %w", path, err)
	}

	stmts := Segment(sqltext.StripComments(string(content)))
	if len(stmts) == 0 {
		log.Warn("no CREATE TABLE statements found", "file", path)
		return res, nil
	}

	for _, stmt := range stmts {
		if stmt.Schema == "" || stmt.Table == "" {
			log.Warn("could not extract schema/table from statement", "file", path)
			res.Skipped++
			continue
		}
		if e.Ignore.Match(stmt.Schema, stmt.Table) {
			log.Debug("table ignored", "table", stmt.QualifiedName())
			res.Skipped++
			continue
		}

		outPath := filepath.Join(e.OutDir, artifact.FileName(stmt.Schema, stmt.Table))
		header := artifact.Header(sourceLabel, e.Now())
		if err := os.WriteFile(outPath, []byte(header+stmt.Text()), 0o644); err != nil {
			log.Error("write failed", "path", outPath, "error", err)
			continue
		}

		m.Append(manifest.Entry{
			Schema:     stmt.Schema,
			Table:      stmt.Table,
			Path:       outPath,
			SourceFile: sourceLabel,
		})
		res.Tables++
		log.Info("extracted table", "table", stmt.QualifiedName(), "path", outPath)
	}
	return res, nil
}
