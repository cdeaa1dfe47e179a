// Command distgrid reads bitmap test cases from stdin and prints, for each
// one, the distance from every cell to its nearest high cell.
//
// Usage:
//
//	distgrid [-config FILE] [-strict] [-order lifo|fifo|random] [-summary] [-heatmap DIR] [-no-color] < input
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/distgrid/distance"
	"github.com/katalvlaran/distgrid/grid"
	"github.com/katalvlaran/distgrid/heatmap"
	"github.com/katalvlaran/distgrid/internal/config"
	"github.com/katalvlaran/distgrid/internal/monitoring"
	"github.com/katalvlaran/distgrid/reader"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.LookupEnv)
	stop()
	os.Exit(code)
}

// isTerminal decides whether a stream gets ANSI styling.
var isTerminal = monitoring.IsTerminal

type cliFlags struct {
	configPath string
	strict     bool
	order      string
	summary    bool
	heatmapDir string
	noColor    bool
	set        map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*cliFlags, error) {
	f := &cliFlags{set: make(map[string]bool)}
	fs := flag.NewFlagSet("distgrid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.configPath, "config", "", "path to a TOML or YAML config file")
	fs.BoolVar(&f.strict, "strict", false, "reject tokens that are not plain unsigned integers")
	fs.StringVar(&f.order, "order", "", "worklist order: lifo, fifo or random")
	fs.BoolVar(&f.summary, "summary", false, "print statistics after each distance grid")
	fs.StringVar(&f.heatmapDir, "heatmap", "", "write one HTML heatmap per case into this directory")
	fs.BoolVar(&f.noColor, "no-color", false, "disable ANSI colours")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, nil
}

// resolveConfig layers defaults, file, environment and flags.
func resolveConfig(f *cliFlags, lookup func(string) (string, bool)) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(lookup); err != nil {
		return nil, err
	}
	if f.set["strict"] {
		cfg.Strict = f.strict
	}
	if f.set["order"] {
		cfg.Order = f.order
	}
	if f.set["summary"] {
		cfg.Summary = f.summary
	}
	if f.set["heatmap"] {
		cfg.HeatmapDir = f.heatmapDir
	}
	if f.noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, lookup func(string) (string, bool)) int {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return 1
	}
	cfg, err := resolveConfig(f, lookup)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	outStyle := monitoring.Styler{Color: cfg.Color && isTerminal(stdout)}
	st := monitoring.Styler{Color: cfg.Color && isTerminal(stderr)}
	monitoring.SetLogger(log.New(stderr, "", 0).Printf)

	var (
		caseNo  int
		failure error
	)
	onBitmap := func(b *grid.Bitmap) {
		caseNo++
		dist, err := distance.Transform(b,
			distance.WithContext(ctx),
			distance.WithOrder(cfg.DistanceOrder()),
		)
		if err != nil {
			monitoring.Logf("%s", st.Red(fmt.Sprintf("case %d: %v", caseNo, err)))
			if failure == nil {
				failure = err
			}
			return
		}
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, outStyle.Bold("Distance matrix:"))
		fmt.Fprintln(stdout, dist)
		if cfg.Summary {
			fmt.Fprintln(stdout, distance.Summarize(dist))
		}
		fmt.Fprintln(stdout)
		if cfg.HeatmapDir != "" {
			path, err := heatmap.WriteFile(cfg.HeatmapDir, caseNo, dist)
			if err != nil {
				monitoring.Logf("%s", st.Red(err.Error()))
				if failure == nil {
					failure = err
				}
				return
			}
			monitoring.Logf("heatmap written to %s", path)
		}
	}

	opts := []reader.Option{
		reader.WithContext(ctx),
		reader.WithOnFault(func(flt *reader.Fault) {
			monitoring.Logf("%s", st.Red(flt.Error()))
		}),
	}
	if cfg.Strict {
		opts = append(opts, reader.WithStrictTokens())
	}
	if cfg.MaxLineBytes > 0 {
		opts = append(opts, reader.WithMaxLineBytes(cfg.MaxLineBytes))
	}
	r, err := reader.New(grid.BitmapFactory, onBitmap, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stderr, st.Bold("Enter test cases:"))
	if err := r.Run(stdin); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if failure != nil {
		return 1
	}

	return 0
}
