package transpile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/artifact"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/diag"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/logger"
)

// Converter rewrites extracted per-table artifacts as Snowflake DDL files.
// It is safe for concurrent ConvertFile calls as long as the Sink is.
type Converter struct {
	OutDir string
	Sink   diag.Sink
}

// ConvertFile converts one artifact, carrying its provenance header over
// verbatim. Failures are reported to the sink and returned; they fail this
// file only, never the batch.
func (c *Converter) ConvertFile(path string) error {
	log := logger.Get()

	content, err := os.ReadFile(path)
	if err != nil {
		c.Sink.Record(diag.Diagnostic{
			Table:   "parse_error",
			Section: "file_read",
			Issue:   err.Error(),
			Snippet: path,
		})
		return fmt.Errorf("read %s: %w", path, err)
	}

	table := artifact.TableFromFileName(path)
	header, body := artifact.Split(string(content))
	converted := Rewrite(body, table, c.Sink)

	var buf strings.Builder
	for _, line := range header {
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	buf.WriteString("\n")
	buf.WriteString(converted)
	buf.WriteString("\n")

	outPath := filepath.Join(c.OutDir, filepath.Base(path))
	if err := os.WriteFile(outPath, []byte(buf.String()), 0o644); err != nil {
		c.Sink.Record(diag.Diagnostic{
			Table:   table,
			Section: "file_write",
			Issue:   err.Error(),
			Snippet: path,
		})
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	log.Info("converted table", "table", table, "path", outPath)
	return nil
}
