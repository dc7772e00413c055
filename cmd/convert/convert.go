package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/cmd/util"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/artifact"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/diag"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/logger"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/transpile"
)

var ConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert extracted DB2 table files to Snowflake DDL",
	Long: "Convert each extracted per-table file to Snowflake DDL, preserving " +
		"provenance headers, moving primary keys into ALTER TABLE statements, and " +
		"logging every lossy or ambiguous conversion for manual review.",
	RunE: runConvert,
}

func init() {
	ConvertCmd.Flags().String("in", "data/output/original_db2_table_creation", "Input directory containing per-table DB2 files")
	ConvertCmd.Flags().String("out", "data/output/new_snowflake_table_creation", "Output directory for Snowflake files")
	ConvertCmd.Flags().String("issues", "data/output/issues.txt", "Issues log file")
	ConvertCmd.Flags().Int("jobs", 1, "Number of files to convert in parallel")
	ConvertCmd.Flags().Bool("summary", false, "Print a per-table summary after the run")

	viper.BindPFlag("convert.in", ConvertCmd.Flags().Lookup("in"))
	viper.BindPFlag("convert.out", ConvertCmd.Flags().Lookup("out"))
	viper.BindPFlag("convert.issues", ConvertCmd.Flags().Lookup("issues"))
	viper.BindPFlag("convert.jobs", ConvertCmd.Flags().Lookup("jobs"))
	viper.BindPFlag("convert.summary", ConvertCmd.Flags().Lookup("summary"))
}

// Options configures one convert run.
type Options struct {
	InDir      string
	OutDir     string
	IssuesPath string
	Jobs       int
	Summary    bool
}

// OptionsFromConfig resolves options with flag > config file > default
// precedence.
func OptionsFromConfig() Options {
	return Options{
		InDir:      viper.GetString("convert.in"),
		OutDir:     viper.GetString("convert.out"),
		IssuesPath: viper.GetString("convert.issues"),
		Jobs:       viper.GetInt("convert.jobs"),
		Summary:    viper.GetBool("convert.summary"),
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	return Run(OptionsFromConfig())
}

// Run executes the transpilation stage. Files convert independently; a
// failure in one is logged and recorded but never aborts the rest. The
// issues log is rewritten from scratch on every run.
func Run(opts Options) error {
	log := logger.Get()

	files, err := util.ListInputFiles(opts.InDir, ".sql")
	if err != nil {
		return err
	}

	if err := util.EnsureDir(opts.OutDir); err != nil {
		return err
	}

	recorder := &diag.Recorder{}
	converter := &transpile.Converter{OutDir: opts.OutDir, Sink: recorder}

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	var (
		mu        sync.Mutex
		converted []string
	)

	var eg errgroup.Group
	eg.SetLimit(jobs)
	for _, file := range files {
		file := file
		eg.Go(func() error {
			if err := converter.ConvertFile(file); err != nil {
				log.Error("conversion failed", "file", file, "error", err)
				return nil
			}
			mu.Lock()
			converted = append(converted, artifact.TableFromFileName(file))
			mu.Unlock()
			return nil
		})
	}
	// Workers swallow per-file errors, so Wait only synchronizes.
	_ = eg.Wait()

	if err := util.EnsureDir(filepath.Dir(opts.IssuesPath)); err != nil {
		return err
	}
	if err := recorder.WriteFile(opts.IssuesPath); err != nil {
		return fmt.Errorf("write issues log: %w", err)
	}

	if len(converted) == 0 {
		return fmt.Errorf("%w: no tables were successfully converted", util.ErrNoTables)
	}

	if opts.Summary {
		sort.Strings(converted)
		printSummary(os.Stdout, converted, recorder.Entries())
	}

	log.Info("convert complete", "tables", len(converted), "issues", recorder.Len())
	return nil
}
