// Command geosolve is a thin CLI front end over solver.Solve: it reads
// a problem document as JSON, runs the best-first search, and writes
// the JSON result and, with -svg, also an SVG diagram of the
// construction.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/YX-hueimie/geometric-solver/geomio"
	"github.com/YX-hueimie/geometric-solver/internal/parallel"
	"github.com/YX-hueimie/geometric-solver/internal/render"
	"github.com/YX-hueimie/geometric-solver/search"
	"github.com/YX-hueimie/geometric-solver/solver"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "geosolve",
		Short: "Find the shortest compass-and-straightedge construction to a target figure",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")

	root.AddCommand(newSolveCmd(&configPath))
	root.AddCommand(newRenderCmd())

	return root
}

func newSolveCmd(configPath *string) *cobra.Command {
	var (
		inputPath   string
		svgPath     string
		maxSteps    int
		openListCap int
		logLevel    string
		batch       bool
		workers     int
	)
	hFlag := newHeuristicFlag()

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a geometric problem document and print the result as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			fileCfg, err := loadFileConfig(*configPath)
			if err != nil {
				return fmt.Errorf("geosolve: loading config: %w", err)
			}

			if !cmd.Flags().Changed("max-steps") && fileCfg.MaxSteps > 0 {
				maxSteps = fileCfg.MaxSteps
			}
			if !cmd.Flags().Changed("open-list-cap") && fileCfg.OpenListCap > 0 {
				openListCap = fileCfg.OpenListCap
			}
			if !cmd.Flags().Changed("log-level") && fileCfg.LogLevel != "" {
				logLevel = fileCfg.LogLevel
			}
			if !cmd.Flags().Changed("heuristic") && fileCfg.Strengthened {
				_ = hFlag.Set("strengthened")
			}

			logger := newZerologLogger(logLevel)

			in, err := openInput(inputPath)
			if err != nil {
				return err
			}
			defer in.Close()

			opts := []search.Option{
				search.WithMaxSteps(maxSteps),
				search.WithOpenListCap(openListCap),
				search.WithHeuristic(hFlag.fn),
				search.WithLogger(solver.NewZerologLogger(logger)),
			}

			if batch {
				return runBatch(in, os.Stdout, workers, opts)
			}

			doc, err := geomio.DecodeProblem(in)
			if err != nil {
				return err
			}

			initial, target, err := geomio.Parse(doc)
			if err != nil {
				return err
			}

			path, stats, err := solver.Solve(initial, target, opts...)
			if err != nil {
				return err
			}

			if err := geomio.EncodeResult(os.Stdout, path, stats.StatesExplored, float64(stats.Elapsed)/1e6); err != nil {
				return err
			}

			if svgPath != "" {
				final := render.Replay(initial, path)
				out, err := os.Create(svgPath)
				if err != nil {
					return fmt.Errorf("geosolve: creating svg output: %w", err)
				}
				defer out.Close()

				if err := render.Diagram(out, final, render.DefaultOptions()); err != nil {
					return fmt.Errorf("geosolve: rendering svg: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "problem document path (default stdin)")
	cmd.Flags().StringVar(&svgPath, "svg", "", "also render the solved construction to this SVG path")
	cmd.Flags().IntVar(&maxSteps, "max-steps", search.DefaultMaxSteps, "maximum construction path length")
	cmd.Flags().IntVar(&openListCap, "open-list-cap", search.DefaultOpenListCap, "open-set admission cap")
	cmd.Flags().Var(hFlag, "heuristic", "admissible heuristic strategy: baseline or strengthened")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "zerolog level: debug, info, warn, error")
	cmd.Flags().BoolVar(&batch, "batch", false, "read a JSON array of problem documents and solve them concurrently")
	cmd.Flags().IntVar(&workers, "workers", 0, "batch worker count (0 = number of CPUs)")

	return cmd
}

// runBatch decodes a JSON array of problem documents from r, solves
// each one on a bounded worker pool, and writes the JSON array of
// results to w in input order.
func runBatch(r io.Reader, w io.Writer, workers int, opts []search.Option) error {
	docs, err := geomio.DecodeProblems(r)
	if err != nil {
		return err
	}

	results := make([]geomio.ResultDoc, len(docs))
	tasks := make([]func(), len(docs))
	for i, doc := range docs {
		i, doc := i, doc
		tasks[i] = func() {
			initial, target, err := geomio.Parse(doc)
			if err != nil {
				results[i] = geomio.ErrorResult(err)
				return
			}

			path, stats, err := solver.Solve(initial, target, opts...)
			if err != nil {
				results[i] = geomio.ErrorResult(err)
				return
			}

			results[i] = geomio.BuildResult(path, stats.StatesExplored, float64(stats.Elapsed)/1e6)
		}
	}

	parallel.NewPool(workers).Run(tasks)

	return geomio.EncodeResults(w, results)
}

func newRenderCmd() *cobra.Command {
	var (
		inputPath string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a problem document's known figures to an SVG diagram",
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := openInput(inputPath)
			if err != nil {
				return err
			}
			defer in.Close()

			doc, err := geomio.DecodeProblem(in)
			if err != nil {
				return err
			}

			initial, _, err := geomio.Parse(doc)
			if err != nil {
				return err
			}

			out, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("geosolve: creating svg output: %w", err)
			}
			defer out.Close()

			return render.Diagram(out, initial, render.DefaultOptions())
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "problem document path (default stdin)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "construction.svg", "SVG output path")

	return cmd
}

func openInput(path string) (*os.File, error) {
	if path == "" || path == "-" {
		return os.Stdin, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geosolve: opening input: %w", err)
	}

	return f, nil
}

func newZerologLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stderr).With().Timestamp().Logger().Level(lvl)
}
