// Package main implements the spamatch CLI: a thin wrapper around the
// grammar/catalog/matching/diagnostics/metrics/report packages (spec.md
// §6.3).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	studentsPath    string
	topicsPath      string
	supervisorsPath string
	outPath         string
	configPath      string
	jsonLog         bool
	verbose         bool
	format          string
)

var rootCmd = &cobra.Command{
	Use:   "spamatch",
	Short: "Student-project allocation matcher",
	Long: `spamatch runs the round-based student-project allocation matching
engine over a students/topics/supervisors input triple and emits a
structured assignment report.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "optional YAML configuration file")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "emit structured JSON logs instead of console output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	runCmd.Flags().StringVar(&studentsPath, "students", "", "path to the students input file (required)")
	runCmd.Flags().StringVar(&topicsPath, "topics", "", "path to the topics input file (required)")
	runCmd.Flags().StringVar(&supervisorsPath, "supervisors", "", "path to the supervisors input file (required)")
	runCmd.Flags().StringVar(&outPath, "out", "", "output report path (default: stdout)")
	runCmd.Flags().StringVar(&format, "format", "json", "report format: json or yaml")
	_ = runCmd.MarkFlagRequired("students")
	_ = runCmd.MarkFlagRequired("topics")
	_ = runCmd.MarkFlagRequired("supervisors")

	validateCmd.Flags().StringVar(&studentsPath, "students", "", "path to the students input file (required)")
	validateCmd.Flags().StringVar(&topicsPath, "topics", "", "path to the topics input file (required)")
	validateCmd.Flags().StringVar(&supervisorsPath, "supervisors", "", "path to the supervisors input file (required)")
	_ = validateCmd.MarkFlagRequired("students")
	_ = validateCmd.MarkFlagRequired("topics")
	_ = validateCmd.MarkFlagRequired("supervisors")

	rootCmd.AddCommand(runCmd, validateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
