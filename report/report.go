package report

import (
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dkowalik/spamatch/catalog"
	"github.com/dkowalik/spamatch/diagnostics"
	"github.com/dkowalik/spamatch/grammar"
	"github.com/dkowalik/spamatch/matching"
	"github.com/dkowalik/spamatch/metrics"
	"github.com/dkowalik/spamatch/model"
)

// AssignmentRow is one row of the assignment table (spec.md §6.2). Topic,
// Supervisor and Rank are zero-valued for an unmatched student; Student and
// Program are always set.
type AssignmentRow struct {
	Student    model.StudentID    `json:"student" yaml:"student"`
	Program    model.Program      `json:"program" yaml:"program"`
	Topic      model.TopicID      `json:"topic,omitempty" yaml:"topic,omitempty"`
	Supervisor model.SupervisorID `json:"supervisor,omitempty" yaml:"supervisor,omitempty"`
	Rank       int                `json:"rank,omitempty" yaml:"rank,omitempty"`
}

// DiagnosticRow is one row of the diagnostics table (spec.md §6.2): a
// student id, a reason code, and a free-form details string.
type DiagnosticRow struct {
	Student model.StudentID `json:"student" yaml:"student"`
	Reason  string          `json:"reason" yaml:"reason"`
	Details string          `json:"details,omitempty" yaml:"details,omitempty"`
}

// Report is the complete session output (spec.md §6.2). RunID identifies one
// matching session for callers comparing reports across runs; the core
// itself persists nothing between sessions (spec.md §5).
type Report struct {
	RunID         string                       `json:"run_id" yaml:"run_id"`
	Assignments   []AssignmentRow              `json:"assignments" yaml:"assignments"`
	Diagnostics   []DiagnosticRow              `json:"diagnostics" yaml:"diagnostics"`
	Unmatched     []diagnostics.Classification `json:"unmatched" yaml:"unmatched"`
	BlockingPairs []diagnostics.BlockingPair   `json:"blocking_pairs" yaml:"blocking_pairs"`
	Metrics       metrics.Report               `json:"metrics" yaml:"metrics"`
	RoundLog      []matching.RoundLogEntry     `json:"round_log" yaml:"round_log"`
}

// Build assembles a Report from a completed matching session. in and cat
// must be the grammar.Input/catalog.Catalog res was produced from.
func Build(in *grammar.Input, cat *catalog.Catalog, res *matching.Result) *Report {
	students := make(map[model.StudentID]model.Student, len(in.Students))
	for _, s := range in.Students {
		students[s.ID] = s
	}

	owners := make(map[model.StudentID]model.SupervisorID, len(res.Assignment))
	for sid, topic := range res.Assignment {
		if owner, ok := cat.Owner(topic, students[sid].Program); ok {
			owners[sid] = owner
		}
	}

	rows := make([]AssignmentRow, 0, len(in.Students))
	for _, sid := range sortedStudentIDs(in.Students) {
		s := students[sid]
		row := AssignmentRow{Student: sid, Program: s.Program}
		if topic, ok := res.Assignment[sid]; ok {
			row.Topic = topic
			row.Supervisor = owners[sid]
			row.Rank = s.Rank(topic) + 1
		}
		rows = append(rows, row)
	}

	diagRows := make([]DiagnosticRow, 0, len(res.Diagnostics))
	for _, d := range res.Diagnostics {
		diagRows = append(diagRows, DiagnosticRow{
			Student: d.Student,
			Reason:  d.Kind.String(),
			Details: diagnosticDetails(d),
		})
	}

	return &Report{
		RunID:         uuid.NewString(),
		Assignments:   rows,
		Diagnostics:   diagRows,
		Unmatched:     diagnostics.ClassifyUnmatched(in, cat, res),
		BlockingPairs: diagnostics.FindBlockingPairs(in, cat, res),
		Metrics:       metrics.Compute(in, res),
		RoundLog:      res.RoundLog,
	}
}

func diagnosticDetails(d matching.DiagnosticEvent) string {
	if d.Kind == matching.EvictedInRound {
		return "round " + strconv.Itoa(d.Round) + ", topic " + string(d.Topic)
	}

	return "topic " + string(d.Topic)
}

func sortedStudentIDs(students []model.Student) []model.StudentID {
	out := make([]model.StudentID, len(students))
	for i, s := range students {
		out[i] = s.ID
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}

	return out
}

// ToJSON renders the report as indented JSON.
func (r *Report) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// ToYAML renders the report as YAML, grounded on the same library
// internal/config uses for its file format.
func (r *Report) ToYAML() ([]byte, error) {
	return yaml.Marshal(r)
}
