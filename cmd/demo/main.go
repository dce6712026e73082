// Command demo drives the three core search engines (Tabu Search,
// Simulated Annealing, Local Search) over randomly generated QAP
// instances and reports comparable statistics, in the same spirit as
// the teacher's cmd/bench driver but against this module's own core.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"k8s.io/klog/v2"

	"gomets/aspiration"
	"gomets/cooling"
	"gomets/internal/bench"
	"gomets/internal/config"
	"gomets/move"
	"gomets/search"
	"gomets/solution"
	"gomets/tabu"
	"gomets/termination"
)

func newTabuFactory(capacity int) bench.EngineFactory {
	return func(perm *solution.Permutation, rng *rand.Rand, term termination.Node) (bench.Engine, error) {
		manager := move.NewStochasticSwapNeighborhood(minInt(30, maxPairs(perm.Size())), rng)
		tabuList, err := tabu.NewSimpleList[*solution.Permutation, *move.SwapMove](capacity)
		if err != nil {
			return nil, err
		}
		return search.NewTabuSearch[*solution.Permutation, *move.SwapMove](perm, manager, tabuList, aspiration.NewBestEver(), term)
	}
}

func newAnnealingFactory(cfg search.AnnealingConfig) bench.EngineFactory {
	return func(perm *solution.Permutation, rng *rand.Rand, term termination.Node) (bench.Engine, error) {
		manager := move.NewStochasticSwapNeighborhood(minInt(30, maxPairs(perm.Size())), rng)
		schedule, err := cooling.NewExponential[*solution.Permutation](0.995)
		if err != nil {
			return nil, err
		}
		return search.NewSimulatedAnnealing[*solution.Permutation, *move.SwapMove](perm, manager, term, schedule, cfg, rng)
	}
}

func newLocalSearchFactory() bench.EngineFactory {
	return func(perm *solution.Permutation, _ *rand.Rand, term termination.Node) (bench.Engine, error) {
		manager := move.NewFullSwapNeighborhood(perm.Size())
		return search.NewLocalSearch[*solution.Permutation, *move.SwapMove](perm, manager, term), nil
	}
}

func maxPairs(n int) int {
	if n < 2 {
		return 1
	}
	return n * (n - 1) / 2
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func main() {
	klog.InitFlags(nil)
	defaults := config.Default()
	var (
		configPath   = flag.String("config", "", "optional JSON config file whose tabu and annealing sections replace the TS/SA flags below")
		out          = flag.String("out", "artifacts/results.csv", "output CSV path")
		sizesFlag    = flag.String("sizes", "10,20,40", "comma-separated QAP instance sizes")
		algosFlag    = flag.String("algos", "TS,SA,LS", "comma-separated algorithms: TS, SA, LS")
		runs         = flag.Int("runs", 10, "number of runs per algorithm/case")
		baseSeed     = flag.Int64("seed", 1000, "base seed for run RNGs")
		instanceSeed = flag.Int64("instance_seed", defaults.Case.InstanceSeed, "base seed for instance generation")
		maxWeight    = flag.Int("max_weight", defaults.Case.MaxWeight, "max flow/distance matrix entry")
		maxIters     = flag.Int("max_iters", defaults.Case.MaxIters, "iteration cap for every engine's termination chain")
		tabuCapacity = flag.Int("tabu_capacity", defaults.Tabu.TabuCapacity, "tabu memory capacity")
		saTStart     = flag.Float64("sa_t0", defaults.Annealing.TStart, "simulated annealing starting temperature")
		saTStop      = flag.Float64("sa_tmin", defaults.Annealing.TStop, "simulated annealing stop temperature")
		saK          = flag.Float64("sa_k", defaults.Annealing.K, "simulated annealing Boltzmann constant")
	)
	flag.Parse()

	logger := klog.Background()
	ctx := context.Background()

	sizes, err := parseInts(*sizesFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bad -sizes:", err)
		os.Exit(2)
	}

	saCfg := search.AnnealingConfig{TStart: *saTStart, TStop: *saTStop, K: *saK}
	tsCfg := search.TabuConfig{TabuCapacity: *tabuCapacity}

	if *configPath != "" {
		fileCfg, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "bad -config:", err)
			os.Exit(2)
		}
		logger.V(0).Info("loaded config file", "path", *configPath)
		saCfg = fileCfg.Annealing
		tsCfg = fileCfg.Tabu
	}

	if err := saCfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "bad SA config:", err)
		os.Exit(2)
	}
	if err := tsCfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "bad TS config:", err)
		os.Exit(2)
	}

	available := map[string]bench.Algorithm{
		"TS": {Name: "TS", Factory: newTabuFactory(tsCfg.TabuCapacity)},
		"SA": {Name: "SA", Factory: newAnnealingFactory(saCfg)},
		"LS": {Name: "LS", Factory: newLocalSearchFactory()},
	}

	selected := lo.FilterMap(splitCSV(*algosFlag), func(name string, _ int) (bench.Algorithm, bool) {
		a, ok := available[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "unknown algorithm %q; available: %v\n", name, keys(available))
			os.Exit(2)
		}
		return a, true
	})

	runner := bench.Runner{Runs: *runs, BaseSeed: *baseSeed, Logger: logger}

	var records []bench.Record
	for i, size := range sizes {
		c := bench.Case{
			Size:         size,
			MaxWeight:    *maxWeight,
			InstanceSeed: *instanceSeed + int64(i)*10_000,
			MaxIters:     *maxIters,
		}
		for _, algo := range selected {
			logger.V(0).Info("running case", "algo", algo.Name, "size", c.Size, "runs", runner.Runs)

			rec, err := runner.RunCase(ctx, c, algo)
			if err != nil {
				fmt.Fprintln(os.Stderr, "error:", err)
				os.Exit(1)
			}
			records = append(records, rec)

			fmt.Printf("  cost: best=%.2f mean=%.2f std=%.2f | time: mean=%.2fms std=%.2fms\n",
				rec.CostBest, rec.CostMean, rec.CostStd,
				rec.TimeMeanMs, rec.TimeStdMs,
			)
		}
	}

	if err := bench.WriteCSV(*out, records); err != nil {
		fmt.Fprintln(os.Stderr, "error writing CSV:", err)
		os.Exit(1)
	}
	fmt.Println("saved:", *out)
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, p := range splitCSV(s) {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func splitCSV(s string) []string {
	return lo.Filter(lo.Map(strings.Split(s, ","), func(p string, _ int) string {
		return strings.TrimSpace(p)
	}), func(p string, _ int) bool {
		return p != ""
	})
}

func keys(m map[string]bench.Algorithm) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
