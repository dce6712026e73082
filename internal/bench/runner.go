// Package bench drives the search engines over demoproblem instances
// and reports comparable statistics across algorithms, adapted from
// the teacher's flow-shop benchmark harness to the permutation-QAP
// demo problem and the core's context-free engines.
package bench

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-logr/logr"

	"gomets/internal/demoproblem"
	"gomets/search"
	"gomets/solution"
	"gomets/termination"
)

// Engine is the common surface every search engine exposes to the
// benchmark harness. All three concrete engines (TabuSearch,
// SimulatedAnnealing, LocalSearch) satisfy it structurally.
type Engine interface {
	Search() error
	BestCost() float64
}

// EngineFactory builds a search engine over perm, using rng for any
// randomness the engine needs and term as its termination chain.
type EngineFactory func(perm *solution.Permutation, rng *rand.Rand, term termination.Node) (Engine, error)

// Algorithm names an engine factory for reporting purposes.
type Algorithm struct {
	Name    string
	Factory EngineFactory
}

// Case describes one benchmark instance to generate and solve.
type Case struct {
	Size         int
	MaxWeight    int
	InstanceSeed int64
	MaxIters     int
}

// Record is one row of a benchmark report: an algorithm's statistics
// over Runs independent trials against the same Case.
type Record struct {
	Algo string
	Size int
	Runs int

	TimeBestMs float64
	TimeMeanMs float64
	TimeStdMs  float64

	CostBest float64
	CostMean float64
	CostStd  float64
}

// Runner executes a Case against an Algorithm Runs times, with
// per-run seeds derived from BaseSeed.
type Runner struct {
	Runs          int
	BaseSeed      int64
	PerRunTimeout time.Duration // 0 = no timeout
	Logger        logr.Logger
}

// RunCase generates a fixed QAP instance from c.InstanceSeed and runs
// algo.Factory against it Runs times, returning aggregate statistics.
// ctx is translated into a termination.Context node at each run's
// engine construction boundary; the core engines themselves take no
// context.Context.
func (r Runner) RunCase(ctx context.Context, c Case, algo Algorithm) (Record, error) {
	instRng := rand.New(rand.NewSource(c.InstanceSeed))
	qap, err := demoproblem.RandomQAP(c.Size, c.MaxWeight, instRng)
	if err != nil {
		return Record{}, fmt.Errorf("bench: building instance: %w", err)
	}

	costs := make([]float64, 0, r.Runs)
	timesMs := make([]float64, 0, r.Runs)

	for i := 0; i < r.Runs; i++ {
		runSeed := r.BaseSeed + int64(i)
		runRng := rand.New(rand.NewSource(runSeed))

		perm, err := solution.NewPermutation(c.Size, qap)
		if err != nil {
			return Record{}, fmt.Errorf("bench: run %d: building permutation: %w", i, err)
		}
		perm.Shuffle(runRng)

		runCtx := ctx
		cancel := func() {}
		if r.PerRunTimeout > 0 {
			runCtx, cancel = context.WithTimeout(ctx, r.PerRunTimeout)
		}

		iterCap, ierr := termination.NewIterationCount(c.MaxIters)
		if ierr != nil {
			cancel()
			return Record{}, fmt.Errorf("bench: run %d: %w", i, ierr)
		}
		term := termination.Chain(iterCap, termination.NewContext(runCtx))

		engine, err := algo.Factory(perm, runRng, term)
		if err != nil {
			cancel()
			return Record{}, fmt.Errorf("bench: run %d: building engine: %w", i, err)
		}

		start := time.Now()
		err = engine.Search()
		dur := time.Since(start)
		cancel()

		if err != nil && !errors.Is(err, search.ErrNoAdmissibleMove) {
			return Record{}, fmt.Errorf("bench: run %d: search error: %w", i, err)
		}
		if errors.Is(err, search.ErrNoAdmissibleMove) {
			r.Logger.V(1).Info("run stopped on empty neighborhood", "run", i)
		}

		costs = append(costs, engine.BestCost())
		timesMs = append(timesMs, float64(dur.Microseconds())/1000.0)
	}

	costStats := CalcStats(costs)
	timeStats := CalcStats(timesMs)

	return Record{
		Algo: algo.Name,
		Size: c.Size,
		Runs: r.Runs,

		TimeBestMs: timeStats.Best,
		TimeMeanMs: timeStats.Mean,
		TimeStdMs:  timeStats.Std,

		CostBest: costStats.Best,
		CostMean: costStats.Mean,
		CostStd:  costStats.Std,
	}, nil
}

// WriteCSV writes records to path, creating parent directories as
// needed.
func WriteCSV(path string, records []Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"algo", "size", "runs",
		"time_best_ms", "time_mean_ms", "time_std_ms",
		"cost_best", "cost_mean", "cost_std",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	formatCost := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }

	for _, rec := range records {
		row := []string{
			rec.Algo,
			strconv.Itoa(rec.Size),
			strconv.Itoa(rec.Runs),

			formatCost(rec.TimeBestMs),
			formatCost(rec.TimeMeanMs),
			formatCost(rec.TimeStdMs),

			formatCost(rec.CostBest),
			formatCost(rec.CostMean),
			formatCost(rec.CostStd),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
