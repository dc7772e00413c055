package run

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/cmd/convert"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/cmd/split"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/ignore"
)

var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Split and convert in one pass",
	Long: "Run the full pipeline: split DB2 DDL dumps into per-table files, " +
		"then convert every extracted table to Snowflake DDL.",
	RunE: runPipeline,
}

func init() {
	RunCmd.Flags().String("in", "data/input", "Input directory containing .sql/.txt dump files")
	RunCmd.Flags().String("work", "data/output/original_db2_table_creation", "Working directory for extracted per-table files")
	RunCmd.Flags().String("out", "data/output/new_snowflake_table_creation", "Output directory for Snowflake files")
	RunCmd.Flags().String("manifest", "data/output/manifest.json", "Manifest file path")
	RunCmd.Flags().String("issues", "data/output/issues.txt", "Issues log file")
	RunCmd.Flags().String("ignore-file", ignore.FileName, "Ignore file listing table patterns to skip")
	RunCmd.Flags().Int("jobs", 1, "Number of files to convert in parallel")
	RunCmd.Flags().Bool("summary", false, "Print a per-table summary after the run")

	viper.BindPFlag("run.in", RunCmd.Flags().Lookup("in"))
	viper.BindPFlag("run.work", RunCmd.Flags().Lookup("work"))
	viper.BindPFlag("run.out", RunCmd.Flags().Lookup("out"))
	viper.BindPFlag("run.manifest", RunCmd.Flags().Lookup("manifest"))
	viper.BindPFlag("run.issues", RunCmd.Flags().Lookup("issues"))
	viper.BindPFlag("run.ignore-file", RunCmd.Flags().Lookup("ignore-file"))
	viper.BindPFlag("run.jobs", RunCmd.Flags().Lookup("jobs"))
	viper.BindPFlag("run.summary", RunCmd.Flags().Lookup("summary"))
}

func runPipeline(cmd *cobra.Command, args []string) error {
	work := viper.GetString("run.work")

	if err := split.Run(split.Options{
		InDir:        viper.GetString("run.in"),
		OutDir:       work,
		ManifestPath: viper.GetString("run.manifest"),
		IgnoreFile:   viper.GetString("run.ignore-file"),
	}); err != nil {
		return err
	}

	return convert.Run(convert.Options{
		InDir:      work,
		OutDir:     viper.GetString("run.out"),
		IssuesPath: viper.GetString("run.issues"),
		Jobs:       viper.GetInt("run.jobs"),
		Summary:    viper.GetBool("run.summary"),
	})
}
