package main

import (
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/g-m-twostay/bstree/Trees"
	"github.com/urfave/cli/v2"
)

func main() {
	newApp().RunAndExitOnError()
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "measure",
		Usage: "measure the shape and speed of a BSTree under a random workload",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:    "n",
				Usage:   "number of values to insert",
				Value:   100000,
				EnvVars: []string{"MEASURE_N"},
			},
			&cli.IntFlag{
				Name:    "range",
				Usage:   "values are drawn from [0, range)",
				Value:   1 << 20,
				EnvVars: []string{"MEASURE_RANGE"},
			},
			&cli.Float64Flag{
				Name:  "remove",
				Usage: "fraction of the inserted values to remove afterwards",
				Value: 0.5,
			},
			&cli.BoolFlag{
				Name:  "sorted",
				Usage: "insert in ascending order, the worst case for an unbalanced tree",
			},
			&cli.BoolFlag{
				Name:  "build",
				Usage: "bulk build from the sorted values instead of inserting one by one",
			},
			&cli.BoolFlag{
				Name:  "print",
				Usage: "print the final tree",
			},
			&cli.Int64Flag{
				Name:  "seed",
				Value: 0,
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log at debug level",
			},
		},
		Action: runMeasure,
	}
}

func runMeasure(cctx *cli.Context) error {
	level := slog.LevelInfo
	if cctx.Bool("verbose") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	n, valRange, frac := cctx.Uint("n"), cctx.Int("range"), cctx.Float64("remove")
	if valRange <= 0 {
		return cli.Exit("--range must be positive", 1)
	}
	if frac < 0 || frac > 1 {
		return cli.Exit("--remove must be in [0, 1]", 1)
	}
	r := rand.New(rand.NewSource(cctx.Int64("seed")))
	all := make([]int, n)
	for i := range all {
		all[i] = r.Intn(valRange)
	}
	if cctx.Bool("sorted") || cctx.Bool("build") {
		slices.Sort(all)
	}
	logger.Debug("generated values", "n", n, "range", valRange)

	var tree *Trees.BSTree[int]
	start := time.Now()
	if cctx.Bool("build") {
		tree = Trees.From(all, false)
	} else {
		tree = Trees.New[int]()
		for _, v := range all {
			tree.Insert(v)
		}
	}
	insertTook := time.Since(start)
	logger.Info("inserted", "size", tree.Size(), "height", tree.Height(), "avgDepth", tree.AverageDepth(), "took", insertTook)

	r.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})
	var failed int
	start = time.Now()
	for _, v := range all[:int(float64(len(all))*frac)] {
		if _, err := tree.Remove(v); err != nil {
			failed++
		}
	}
	removeTook := time.Since(start)
	if failed > 0 {
		logger.Warn("removals failed", "count", failed)
	}
	logger.Info("removed", "size", tree.Size(), "height", tree.Height(), "avgDepth", tree.AverageDepth(), "took", removeTook)

	if tree.Corrupt() {
		return cli.Exit("tree is corrupt", 2)
	}
	if cctx.Bool("print") {
		fmt.Fprintln(cctx.App.Writer, tree.String())
	}
	return nil
}
