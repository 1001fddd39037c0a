// Package stats records per-generation population figures as CSV and
// summarizes a run.
package stats

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"life-ca/pkg/core"
	"life-ca/pkg/life"
)

// Row is one generation's figures.
type Row struct {
	Generation int `csv:"generation"`
	Score      int `csv:"score"`
	Births     int `csv:"births"`
	Deaths     int `csv:"deaths"`
	Changed    int `csv:"changed"`
}

// Summary aggregates the rows seen by a Recorder.
type Summary struct {
	Generations int
	MeanScore   float64
	StdDevScore float64
	MinScore    int
	MaxScore    int
	Changed     int
}

// LogValue renders the summary as structured log attributes.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("generations", s.Generations),
		slog.Float64("mean_score", s.MeanScore),
		slog.Float64("stddev_score", s.StdDevScore),
		slog.Int("min_score", s.MinScore),
		slog.Int("max_score", s.MaxScore),
		slog.Int("changed", s.Changed),
	)
}

// Recorder collects rows and streams them to an optional CSV writer. A nil
// writer keeps rows in memory only.
type Recorder struct {
	out           io.Writer
	headerWritten bool
	scores        []float64
	changed       int
	err           error
}

// NewRecorder returns a recorder writing CSV to out.
func NewRecorder(out io.Writer) *Recorder {
	return &Recorder{out: out}
}

// Observe records the generation the grid just reached. It matches the
// session's step observer signature; write errors are kept and reported by Err.
func (r *Recorder) Observe(g *life.Grid, changed []core.Pos) {
	row := Row{Generation: g.Generation(), Score: g.Score(), Changed: len(changed)}
	for _, p := range changed {
		if g.Alive(p) {
			row.Births++
		} else {
			row.Deaths++
		}
	}
	if err := r.Record(row); err != nil && r.err == nil {
		r.err = err
	}
}

// Record appends one row.
func (r *Recorder) Record(row Row) error {
	r.scores = append(r.scores, float64(row.Score))
	r.changed += row.Changed
	if r.out == nil {
		return nil
	}
	records := []Row{row}
	if !r.headerWritten {
		if err := gocsv.Marshal(records, r.out); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, r.out); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// Err returns the first write error seen by Observe.
func (r *Recorder) Err() error { return r.err }

// Summary aggregates everything recorded so far.
func (r *Recorder) Summary() Summary {
	s := Summary{Generations: len(r.scores), Changed: r.changed}
	if len(r.scores) == 0 {
		return s
	}
	s.MeanScore, s.StdDevScore = stat.MeanStdDev(r.scores, nil)
	if len(r.scores) == 1 {
		s.StdDevScore = 0
	}
	s.MinScore = int(floats.Min(r.scores))
	s.MaxScore = int(floats.Max(r.scores))
	return s
}
