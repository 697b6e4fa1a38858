// Package sim generates levels in bulk and runs the solver over them to
// measure how clearable each level size is.
package sim

import (
	"context"
	"errors"
	"io"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/tui-triplets/internal/games/triplets/core"
)

// Options configures a simulation batch.
type Options struct {
	From    int   // First level, inclusive
	To      int   // Last level, inclusive
	Runs    int   // Boards generated per level
	Budget  int   // Solver node budget per board, <= 0 for unlimited
	Seed    int64 // Base seed; each board derives its own from it
	Workers int   // Parallel solvers, defaults to GOMAXPROCS

	ShowProgress bool
	Output       io.Writer // Progress bar destination, defaults to stderr
}

// LevelReport aggregates all runs of one level.
type LevelReport struct {
	Level     int
	Dims      core.Dimensions
	Runs      int
	Solved    int
	Exhausted int // Runs where the budget ran out
	WinRate   float64

	MeanMoves   float64
	MeanNodes   float64
	StdNodes    float64
	MedianNodes float64
	MaxNodes    float64
}

// Report is the result of Run.
type Report struct {
	Levels  []LevelReport
	Runs    int
	Elapsed time.Duration
}

type job struct {
	level int
	run   int
}

type outcome struct {
	job
	res core.SolveResult
	err error
}

// Run simulates every level in [From, To]. It stops early when ctx is
// cancelled and returns what was measured so far together with ctx.Err().
func Run(ctx context.Context, opts Options) (*Report, error) {
	if opts.From < 1 {
		opts.From = 1
	}
	if opts.To < opts.From {
		return nil, errors.New("sim: --to must not be below --from")
	}
	if opts.Runs <= 0 {
		opts.Runs = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}

	levels := opts.To - opts.From + 1
	total := levels * opts.Runs

	// The writer must be set before Start launches the refresher.
	var w io.Writer = io.Discard
	if opts.ShowProgress {
		w = opts.Output
	}
	bar := pb.New(total).SetWriter(w).Start()

	jobs := make(chan job)
	results := make(chan outcome, opts.Workers)

	var wg sync.WaitGroup
	for range opts.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				res, err := solveOne(j, opts)
				results <- outcome{job: j, res: res, err: err}
				bar.Increment()
			}
		}()
	}

	go func() {
		defer close(jobs)
		for lvl := opts.From; lvl <= opts.To; lvl++ {
			for run := 0; run < opts.Runs; run++ {
				select {
				case jobs <- job{level: lvl, run: run}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	byLevel := make(map[int][]core.SolveResult, levels)
	var firstErr error
	for o := range results {
		if o.err != nil {
			if firstErr == nil {
				firstErr = o.err
			}
			continue
		}
		byLevel[o.level] = append(byLevel[o.level], o.res)
	}

	used := time.Since(bar.StartTime())
	bar.Finish()

	report := &Report{Runs: opts.Runs, Elapsed: used}
	for lvl := opts.From; lvl <= opts.To; lvl++ {
		if rs, ok := byLevel[lvl]; ok {
			report.Levels = append(report.Levels, summarize(lvl, rs))
		}
	}

	if firstErr != nil {
		return report, firstErr
	}
	return report, ctx.Err()
}

// boardSeed derives a stable, non-zero seed for one board.
func boardSeed(base int64, level, run int) int64 {
	seed := base*1_000_003 + int64(level)*10_007 + int64(run) + 1
	if seed == 0 {
		seed = 1
	}
	return seed
}

func solveOne(j job, opts Options) (core.SolveResult, error) {
	s := core.NewSession(core.Options{
		Rand: core.NewRand(boardSeed(opts.Seed, j.level, j.run)),
	})
	if err := s.StartLevel(j.level); err != nil {
		return core.SolveResult{}, err
	}
	return core.Solve(s, opts.Budget), nil
}

func summarize(level int, rs []core.SolveResult) LevelReport {
	r := LevelReport{
		Level: level,
		Dims:  core.DimensionsFor(level),
		Runs:  len(rs),
	}

	nodes := make([]float64, 0, len(rs))
	var moves []float64
	for _, res := range rs {
		nodes = append(nodes, float64(res.Nodes))
		if res.Solved {
			r.Solved++
			moves = append(moves, float64(len(res.Moves)))
		}
		if res.Exhausted {
			r.Exhausted++
		}
	}

	if r.Runs > 0 {
		r.WinRate = float64(r.Solved) / float64(r.Runs)
	}
	if len(moves) > 0 {
		r.MeanMoves = stat.Mean(moves, nil)
	}
	if len(nodes) > 0 {
		sort.Float64s(nodes)
		if len(nodes) > 1 {
			r.MeanNodes, r.StdNodes = stat.MeanStdDev(nodes, nil)
		} else {
			r.MeanNodes = nodes[0]
		}
		r.MedianNodes = stat.Quantile(0.5, stat.Empirical, nodes, nil)
		r.MaxNodes = nodes[len(nodes)-1]
	}
	return r
}
