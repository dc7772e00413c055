package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/cmd/convert"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/cmd/run"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/cmd/split"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/cmd/util"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/logger"
	"github.com/JoshKCIT/db2-tables-to-snowflake-tables-app/internal/version"
)

var (
	debug   bool
	cfgFile string
)

var RootCmd = &cobra.Command{
	Use:   "db2snow",
	Short: "DB2 to Snowflake table DDL conversion tool",
	Long: fmt.Sprintf(`db2snow extracts CREATE TABLE statements from DB2 DDL dumps and
rewrites them as Snowflake DDL, logging every lossy conversion for review.

Version: %s@%s %s %s

Commands:
  split    Split DDL dumps into one file per table
  convert  Convert extracted tables to Snowflake DDL
  run      Split and convert in one pass

Use "db2snow [command] --help" for more information about a command.`,
		version.App(), version.GitCommit, platform(), version.BuildDate),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Setup(debug)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default is ./db2snow.yaml)")

	RootCmd.AddCommand(split.SplitCmd)
	RootCmd.AddCommand(convert.ConvertCmd)
	RootCmd.AddCommand(run.RunCmd)
}

// initConfig reads in the config file and matching environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("db2snow")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		logger.Get().Debug("using config file", "path", viper.ConfigFileUsed())
	}
}

// platform returns the OS/architecture combination
func platform() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(util.ExitCode(err))
	}
}
