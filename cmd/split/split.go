package split

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/cmd/util"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/extract"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/ignore"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/logger"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/manifest"
)

var SplitCmd = &cobra.Command{
	Use:   "split",
	Short: "Split DB2 DDL dumps into one file per table",
	Long: "Scan a directory of DB2 DDL dump files, extract every CREATE TABLE " +
		"statement, and write each one to its own SCHEMA__TABLE.sql file with a " +
		"provenance header, plus a JSON manifest of everything extracted.",
	RunE: runSplit,
}

func init() {
	SplitCmd.Flags().String("in", "data/input", "Input directory containing .sql/.txt dump files")
	SplitCmd.Flags().String("out", "data/output/original_db2_table_creation", "Output directory for per-table files")
	SplitCmd.Flags().String("manifest", "data/output/manifest.json", "Manifest file path")
	SplitCmd.Flags().String("ignore-file", ignore.FileName, "Ignore file listing table patterns to skip")

	viper.BindPFlag("split.in", SplitCmd.Flags().Lookup("in"))
	viper.BindPFlag("split.out", SplitCmd.Flags().Lookup("out"))
	viper.BindPFlag("split.manifest", SplitCmd.Flags().Lookup("manifest"))
	viper.BindPFlag("split.ignore-file", SplitCmd.Flags().Lookup("ignore-file"))
}

// Options configures one split run.
type Options struct {
	InDir        string
	OutDir       string
	ManifestPath string
	IgnoreFile   string
}

// OptionsFromConfig resolves options with flag > config file > default
// precedence.
func OptionsFromConfig() Options {
	return Options{
		InDir:        viper.GetString("split.in"),
		OutDir:       viper.GetString("split.out"),
		ManifestPath: viper.GetString("split.manifest"),
		IgnoreFile:   viper.GetString("split.ignore-file"),
	}
}

func runSplit(cmd *cobra.Command, args []string) error {
	return Run(OptionsFromConfig())
}

// Run executes the extraction stage. It returns an error wrapping
// util.ErrNoInputFiles or util.ErrNoTables when there was nothing to do,
// so the caller can exit with a distinct code.
func Run(opts Options) error {
	log := logger.Get()

	files, err := util.ListInputFiles(opts.InDir, ".sql", ".txt")
	if err != nil {
		return err
	}

	ig, err := ignore.Load(opts.IgnoreFile)
	if err != nil {
		return fmt.Errorf("load ignore file %s: %w", opts.IgnoreFile, err)
	}

	if err := util.EnsureDir(opts.OutDir); err != nil {
		return err
	}

	extractor := extract.New(opts.OutDir, ig)
	var m manifest.Manifest
	tables := 0

	for _, file := range files {
		sourceLabel := filepath.ToSlash(file)
		res, err := extractor.ExtractFile(file, sourceLabel, &m)
		if err != nil {
			// One unreadable file must not sink the batch.
			log.Error("extraction failed", "file", file, "error", err)
			continue
		}
		tables += res.Tables
	}

	if tables == 0 {
		return fmt.Errorf("%w: no CREATE TABLE statements found in any input file", util.ErrNoTables)
	}

	if err := util.EnsureDir(filepath.Dir(opts.ManifestPath)); err != nil {
		return err
	}
	if err := m.WriteFile(opts.ManifestPath); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	log.Info("split complete", "files", len(files), "tables", tables)
	return nil
}
