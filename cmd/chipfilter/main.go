package main

import (
	"fmt"
	"os"

	"github.com/ruminaider/chipfilter/internal/paths"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var (
	configPath  string
	dataPath    string
	verbose     bool
	logFilePath string
)

var rootCmd = &cobra.Command{
	Use:   "chipfilter",
	Short: "Filter record collections with toggleable chips",
	Long:  "chipfilter narrows a JSON or YAML record collection with a row of filter chips, interactively or from the command line.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(verbose, logFilePath)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: interactive filter
		return runCmd.RunE(cmd, args)
	},
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "chipfilter %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", paths.ConfigFile(), "Chip config file")
	rootCmd.PersistentFlags().StringVarP(&dataPath, "data", "d", "", "Record file (overrides the config's data entry)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log chip activity to stderr")
	rootCmd.PersistentFlags().StringVar(&logFilePath, "log-file", "", "Append debug logs to this file")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(filterCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(chipsCmd)
	rootCmd.AddCommand(initCmd)
}

// execute runs the root command and returns the process exit code. The log
// file is closed on every path, including failed commands.
func execute(args []string) int {
	defer closeLogging()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:]))
}
