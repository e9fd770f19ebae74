package metrics

import (
	"math"
	"sort"

	"github.com/dkowalik/spamatch/grammar"
	"github.com/dkowalik/spamatch/matching"
	"github.com/dkowalik/spamatch/model"
)

// SupervisorUtilization is one supervisor's Load/Capacity ratio (spec.md
// §4.E).
type SupervisorUtilization struct {
	Supervisor model.SupervisorID
	Load       int
	Capacity   int
	Ratio      float64
}

// ConstraintViolation is a concrete instance of an I1/I2/I4 violation
// spec.md §4.E's "constraint verification" step asks metrics to re-check
// externally, independent of the engine's own internal assertions.
type ConstraintViolation struct {
	Description string
}

// Report is the full evaluation-metrics payload for one matching.Result
// (spec.md §4.E, §6.2).
type Report struct {
	MatchRate              float64
	AverageRank            float64
	RankHistogram          [model.MaxPreferences]int // index i holds the count at rank i+1
	SupervisorUtilizations []SupervisorUtilization
	MeanUtilization        float64
	Gini                   float64
	ConstraintViolations   []ConstraintViolation
}

// Compute derives a Report from in and res. in must be the same
// grammar.Input res was produced from.
func Compute(in *grammar.Input, res *matching.Result) Report {
	var r Report

	students := make(map[model.StudentID]model.Student, len(in.Students))
	for _, s := range in.Students {
		students[s.ID] = s
	}

	if len(in.Students) > 0 {
		r.MatchRate = float64(len(res.Assignment)) / float64(len(in.Students))
	}

	r.AverageRank = averageRank(students, res, &r.RankHistogram)
	r.SupervisorUtilizations, r.MeanUtilization = utilizations(in, res)
	r.Gini = giniCoefficient(satisfactionScores(in.Students, res))
	r.ConstraintViolations = verifyConstraints(in, res)

	return r
}

func averageRank(students map[model.StudentID]model.Student, res *matching.Result, hist *[model.MaxPreferences]int) float64 {
	if len(res.Assignment) == 0 {
		return 0
	}

	sum := 0
	for sid, topic := range res.Assignment {
		rank1 := students[sid].Rank(topic) + 1
		sum += rank1
		if rank1 >= 1 && rank1 <= model.MaxPreferences {
			hist[rank1-1]++
		}
	}

	return float64(sum) / float64(len(res.Assignment))
}

func utilizations(in *grammar.Input, res *matching.Result) ([]SupervisorUtilization, float64) {
	out := make([]SupervisorUtilization, 0, len(in.Supervisors))

	var sum float64
	for _, sup := range in.Supervisors {
		load := res.Load[sup.ID]
		ratio := 0.0
		if sup.Capacity > 0 {
			ratio = float64(load) / float64(sup.Capacity)
		}
		out = append(out, SupervisorUtilization{
			Supervisor: sup.ID,
			Load:       load,
			Capacity:   sup.Capacity,
			Ratio:      ratio,
		})
		sum += ratio
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Supervisor < out[j].Supervisor })

	mean := 0.0
	if len(out) > 0 {
		mean = sum / float64(len(out))
	}

	return out, mean
}

// satisfactionScores computes (|prefs| - rank + 1) per student, 0 for
// unmatched (spec.md §4.E).
func satisfactionScores(students []model.Student, res *matching.Result) []float64 {
	out := make([]float64, 0, len(students))
	for _, s := range students {
		topic, ok := res.Assignment[s.ID]
		if !ok {
			out = append(out, 0)
			continue
		}
		score := len(s.Preferences) - s.Rank(topic)
		out = append(out, float64(score))
	}

	return out
}

// giniCoefficient computes the Gini coefficient of scores using the mean
// absolute difference formula. Returns 0 for 0 or 1 scores, or when every
// score is equal.
func giniCoefficient(scores []float64) float64 {
	n := len(scores)
	if n < 2 {
		return 0
	}

	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)

	var sumOfAbsDiffs, sum float64
	for i, si := range sorted {
		sum += si
		for _, sj := range sorted[i+1:] {
			sumOfAbsDiffs += math.Abs(si - sj)
		}
	}

	if sum == 0 {
		return 0
	}

	return sumOfAbsDiffs / (float64(n) * sum)
}

// verifyConstraints re-asserts I1, I2 and I4 externally, independent of the
// engine's own internal checks (spec.md §4.E).
func verifyConstraints(in *grammar.Input, res *matching.Result) []ConstraintViolation {
	var violations []ConstraintViolation

	students := make(map[model.StudentID]model.Student, len(in.Students))
	for _, s := range in.Students {
		students[s.ID] = s
	}

	capacity := make(map[model.SupervisorID]int, len(in.Supervisors))
	for _, sup := range in.Supervisors {
		capacity[sup.ID] = sup.Capacity
	}

	seen := make(map[model.StudentID]bool, len(res.Assignment))
	for sid, topic := range res.Assignment {
		if seen[sid] {
			violations = append(violations, ConstraintViolation{Description: "I4: duplicate assignment for " + string(sid)})
		}
		seen[sid] = true

		if students[sid].Rank(topic) < 0 {
			violations = append(violations, ConstraintViolation{Description: "I1: " + string(sid) + " assigned to unpreferenced topic " + string(topic)})
		}
	}

	for sup, load := range res.Load {
		if load > capacity[sup] {
			violations = append(violations, ConstraintViolation{Description: "I2: supervisor " + string(sup) + " over capacity"})
		}
	}

	return violations
}
