package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkowalik/spamatch/grammar"
	"github.com/dkowalik/spamatch/internal/config"
	"github.com/dkowalik/spamatch/internal/spalog"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a students/topics/supervisors triple without running the matcher",
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	spalog.Init(jsonLog, verbose)

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	studentsSrc, topicsSrc, supervisorsSrc, err := readInputs(studentsPath, topicsPath, supervisorsPath)
	if err != nil {
		return err
	}

	if _, perr := grammar.Parse(studentsSrc, topicsSrc, supervisorsSrc, cfg.GrammarOptions()...); perr != nil {
		spalog.ValidationFailed(perr)
		return perr
	}

	fmt.Println("ok")
	return nil
}
