package spalog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/dkowalik/spamatch/matching"
)

// Init configures the global zerolog logger. json selects structured JSON
// output for machine consumption; otherwise a human-readable console writer
// is used.
func Init(json bool, verbose bool) {
	var w io.Writer = os.Stderr
	if !json {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	log.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// RunStarted logs the beginning of a matching session.
func RunStarted(runID string, students, topics, supervisors int) {
	log.Info().
		Str("run_id", runID).
		Int("students", students).
		Int("topics", topics).
		Int("supervisors", supervisors).
		Msg("matching session started")
}

// Round logs one RoundLogEntry emitted by the engine.
func Round(runID string, entry matching.RoundLogEntry) {
	log.Debug().
		Str("run_id", runID).
		Int("round", entry.RoundNumber).
		Int("newly_matched", entry.NewlyMatched).
		Int("cumulative_matched", entry.CumulativeMatched).
		Int("evictions", entry.Evictions).
		Msg("round complete")
}

// RunFinished logs the end of a matching session.
func RunFinished(runID string, matched, total int) {
	log.Info().
		Str("run_id", runID).
		Int("matched", matched).
		Int("total", total).
		Msg("matching session finished")
}

// ValidationFailed logs a grammar validation failure before the engine runs.
func ValidationFailed(err error) {
	log.Error().Err(err).Msg("input validation failed")
}
