// Command gridlab lays out a board, optionally generates a maze on it, runs
// a path search from start to end and prints the board with the result.
//
// Settings come from config.Resolve (YAML file, .env file, GRIDLAB_*
// variables); flags given on the command line win over all of them.
//
//	gridlab -rows 21 -cols 51 -maze kruskal -search astar
//	gridlab -config gridlab.yaml -all
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/katalvlaran/gridlab/config"
	"github.com/katalvlaran/gridlab/maze"
	"github.com/katalvlaran/gridlab/search"
	"github.com/katalvlaran/gridlab/trace"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "gridlab:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gridlab", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgPath   = fs.String("config", "", "YAML config file")
		envFile   = fs.String("env", "", "dotenv file to load before reading GRIDLAB_* variables")
		rows      = fs.Int("rows", 0, "board rows")
		cols      = fs.Int("cols", 0, "board columns")
		mazeAlg   = fs.String("maze", "", "maze generator, e.g. kruskal, wilson, labyrinth")
		searchAlg = fs.String("search", "", "search algorithm, e.g. bfs, astar, bidirectional-swarm")
		heuristic = fs.String("heuristic", "", "manhattan, euclidean or chebyshev")
		seed      = fs.Int64("seed", 0, "maze seed (0 picks the fixed default)")
		all       = fs.Bool("all", false, "run every search algorithm and print a summary")
		colorMode = fs.String("color", "auto", "auto, always or never")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	color, err := useColor(*colorMode, stdout)
	if err != nil {
		return err
	}

	var envFiles []string
	if *envFile != "" {
		envFiles = append(envFiles, *envFile)
	}
	cfg, err := config.Resolve(*cfgPath, envFiles...)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Cols = *cols
		case "maze":
			cfg.Maze.Algorithm = *mazeAlg
		case "search":
			cfg.Search.Algorithm = *searchAlg
		case "heuristic":
			cfg.Search.Heuristic = *heuristic
		case "seed":
			cfg.Maze.Seed = *seed
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := cfg.Logger(stderr)
	tracer := trace.NewSlog(logger)

	g, err := cfg.NewGrid()
	if err != nil {
		return err
	}
	alg, ok, err := cfg.MazeAlgorithm()
	if err != nil {
		return err
	}
	if ok {
		st, err := maze.Build(g, alg, append(cfg.MazeOptions(), maze.WithTracer(tracer))...)
		if err != nil {
			return fmt.Errorf("maze %s: %w", alg, err)
		}
		logger.Info("maze built", "algorithm", alg, "applied", st.Applied, "skipped", st.Skipped)
	}

	opts, err := cfg.SearchOptions()
	if err != nil {
		return err
	}
	opts = append(opts, search.WithContext(ctx), search.WithTracer(tracer))

	if *all {
		results, err := search.All(g, opts...)
		if err != nil {
			return err
		}
		return summarize(stdout, results)
	}

	sa, err := cfg.SearchAlgorithm()
	if err != nil {
		return err
	}
	res, err := search.Search(g, sa, opts...)
	if err != nil {
		return fmt.Errorf("search %s: %w", sa, err)
	}
	p := newPalette(color)
	fmt.Fprintln(stdout, p.render(g, res))
	fmt.Fprintf(stdout, "%s: found=%t steps=%d cost=%d visited=%d\n",
		sa, res.Found(), res.Steps(), res.Cost(), len(res.Visited))
	return nil
}

// summarize prints one row per algorithm in canonical order.
func summarize(w io.Writer, results map[search.Algorithm]*search.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ALGORITHM\tFOUND\tSTEPS\tCOST\tVISITED")
	for _, a := range search.Algorithms() {
		r, ok := results[a]
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%t\t%d\t%d\t%d\n", a, r.Found(), r.Steps(), r.Cost(), len(r.Visited))
	}
	return tw.Flush()
}
