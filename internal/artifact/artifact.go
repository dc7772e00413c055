// Package artifact owns the per-table file format shared by the split and
// convert stages: the SCHEMA__TABLE.sql naming convention and the two-line
// provenance header preceding every extracted statement.
package artifact

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// FileName returns the canonical per-table file name.
func FileName(schema, table string) string {
	return schema + "__" + table + ".sql"
}

// TableFromFileName derives the qualified table identity from a per-table
// file name: SCHEMA__TABLE.sql becomes SCHEMA.TABLE.
func TableFromFileName(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return strings.Replace(stem, "__", ".", 1)
}

// Header renders the provenance header written above every extracted
// statement: the originating dump file and the extraction time in UTC.
func Header(sourceFile string, extractedAt time.Time) string {
	return fmt.Sprintf("-- Source file: %s\n-- Extracted: %s\n\n",
		sourceFile, extractedAt.UTC().Format(time.RFC3339))
}

// Split separates the leading comment header from the statement body. The
// header is every consecutive comment line from the top of the file; the
// body is everything after it.
func Split(content string) (header []string, body string) {
	lines := strings.Split(content, "\n")
	i := 0
	for ; i < len(lines); i++ {
		if strings.HasPrefix(strings.TrimSpace(lines[i]), "--") {
			header = append(header, lines[i])
			continue
		}
		break
	}
	return header, strings.Join(lines[i:], "\n")
}
