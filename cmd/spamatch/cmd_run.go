package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkowalik/spamatch/catalog"
	"github.com/dkowalik/spamatch/grammar"
	"github.com/dkowalik/spamatch/internal/config"
	"github.com/dkowalik/spamatch/internal/spalog"
	"github.com/dkowalik/spamatch/matching"
	"github.com/dkowalik/spamatch/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the matching engine over a students/topics/supervisors triple",
	RunE:  runRun,
}

// runRun implements spec.md §6.3: exit 0 on success even with unmatched
// students (unmatched is not an error). A validation failure returns an
// error (non-zero exit), as do an unreadable config or input file and a
// failure to marshal or write the report.
func runRun(cmd *cobra.Command, args []string) error {
	spalog.Init(jsonLog, verbose)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	studentsSrc, topicsSrc, supervisorsSrc, err := readInputs(studentsPath, topicsPath, supervisorsPath)
	if err != nil {
		return err
	}

	in, perr := grammar.Parse(studentsSrc, topicsSrc, supervisorsSrc, cfg.GrammarOptions()...)
	if perr != nil {
		spalog.ValidationFailed(perr)
		return perr
	}

	cat := catalog.Build(in.Supervisors)
	res := matching.Run(in, cat, cfg.MatchingOptions()...)
	rep := report.Build(in, cat, res)

	spalog.RunStarted(rep.RunID, len(in.Students), len(in.Topics), len(in.Supervisors))
	for _, entry := range res.RoundLog {
		spalog.Round(rep.RunID, entry)
	}
	spalog.RunFinished(rep.RunID, len(res.MatchedStudents()), len(in.Students))

	var out []byte
	switch format {
	case "yaml":
		out, err = rep.ToYAML()
	default:
		out, err = rep.ToJSON()
	}
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	return writeOutput(outPath, out)
}

func readInputs(studentsFile, topicsFile, supervisorsFile string) (students, topics, supervisors string, err error) {
	sb, err := os.ReadFile(studentsFile)
	if err != nil {
		return "", "", "", fmt.Errorf("read students file: %w", err)
	}
	tb, err := os.ReadFile(topicsFile)
	if err != nil {
		return "", "", "", fmt.Errorf("read topics file: %w", err)
	}
	vb, err := os.ReadFile(supervisorsFile)
	if err != nil {
		return "", "", "", fmt.Errorf("read supervisors file: %w", err)
	}

	return string(sb), string(tb), string(vb), nil
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
