// Command sandpile relaxes an Abelian sandpile and writes the stable grid as
// an image.
//
// Usage:
//
//	sandpile run   [-config file] [-height n] [-width n] [-workers n]
//	               [-variant serial|shared|distributed] [-seed uniform|center]
//	               [-grains n] [-out file.(ppm|png|bmp|tiff)] [-log file] [-caption]
//	sandpile bench [same flags] [-repeats n] [-csv file] [-chart file.png] [-max-workers n]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/sandpile/analysis"
	"github.com/katalvlaran/sandpile/bench"
	"github.com/katalvlaran/sandpile/config"
	"github.com/katalvlaran/sandpile/logging"
	"github.com/katalvlaran/sandpile/relax"
	"github.com/katalvlaran/sandpile/render"
)

var errUsage = errors.New("usage: sandpile run|bench [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sandpile: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "run":
		return runCmd(ctx, args[1:], stdout, stderr)
	case "bench":
		return benchCmd(ctx, args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprintln(stdout, errUsage.Error())
		return nil
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}

// settings are the flags shared by every subcommand. Flags given on the
// command line override the config file.
type settings struct {
	fs         *flag.FlagSet
	configPath *string
	height     *int
	width      *int
	workers    *int
	variant    *string
	seed       *string
	grains     *int
	out        *string
	logPath    *string
}

func newSettings(name string, stderr io.Writer) *settings {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	return &settings{
		fs:         fs,
		configPath: fs.String("config", "", "YAML config file"),
		height:     fs.Int("height", relax.DefaultHeight, "interior rows"),
		width:      fs.Int("width", relax.DefaultWidth, "interior columns"),
		workers:    fs.Int("workers", 0, "goroutines or ranks (default: one per CPU)"),
		variant:    fs.String("variant", "", "serial, shared or distributed"),
		seed:       fs.String("seed", "", "initial configuration: uniform or center (values only from -config)"),
		grains:     fs.Int("grains", 0, "grains per cell (uniform) or on the centre cell (center)"),
		out:        fs.String("out", "", "output image; extension picks ppm, png, bmp or tiff"),
		logPath:    fs.String("log", "", "log file (default: stderr)"),
	}
}

// load parses args and merges them over the config file.
func (s *settings) load(args []string) (config.File, error) {
	if err := s.fs.Parse(args); err != nil {
		return config.File{}, err
	}
	f := config.Default()
	if *s.configPath != "" {
		var err error
		if f, err = config.Load(*s.configPath); err != nil {
			return config.File{}, err
		}
	}
	s.fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "height":
			f.Grid.Height = *s.height
		case "width":
			f.Grid.Width = *s.width
		case "workers":
			f.Workers = *s.workers
		case "variant":
			f.Variant = strings.ToLower(*s.variant)
		case "seed":
			f.Seed.Kind = strings.ToLower(*s.seed)
		case "grains":
			f.Seed.Grains = *s.grains
		case "out":
			f.Output.Path = *s.out
		case "log":
			f.Log.Path = *s.logPath
		}
	})
	if err := f.Validate(); err != nil {
		return config.File{}, err
	}
	return f, nil
}

func openLogger(f config.File, stderr io.Writer) (*logging.Logger, error) {
	if f.Log.Path == "" {
		return logging.New(stderr), nil
	}
	return logging.Open(f.Log.Path)
}

func runCmd(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	s := newSettings("run", stderr)
	caption := s.fs.Bool("caption", false, "stamp grid size and sweep count on the image")
	f, err := s.load(args)
	if err != nil {
		return err
	}
	logger, err := openLogger(f, stderr)
	if err != nil {
		return err
	}
	defer logger.Close()

	cfg, variant, err := f.RelaxConfig()
	if err != nil {
		return err
	}
	cfg.Logger = logger
	res, err := relax.Run(ctx, cfg, variant)
	if err != nil {
		return err
	}

	if f.Output.Path != "" {
		img, err := render.Image(res.Cells, res.Width, res.Height)
		if err != nil {
			return err
		}
		if *caption {
			render.Caption(img, fmt.Sprintf("%dx%d sweeps=%d", res.Width, res.Height, res.Sweeps))
		}
		if err = render.WriteImage(f.Output.Path, img); err != nil {
			return err
		}
		logger.Printf("Wrote %s (%dx%d)", f.Output.Path, res.Width, res.Height)
	}

	fmt.Fprintln(stdout, summary(res, analysis.Summarize(res.Cells)))
	return nil
}

func benchCmd(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	s := newSettings("bench", stderr)
	repeats := s.fs.Int("repeats", 3, "runs per measurement")
	csvPath := s.fs.String("csv", "", "CSV report (default: stdout)")
	chartPath := s.fs.String("chart", "", "PNG chart of mean time against worker count")
	maxWorkers := s.fs.Int("max-workers", 0, "largest worker count in the chart (default: -workers)")
	f, err := s.load(args)
	if err != nil {
		return err
	}
	logger, err := openLogger(f, stderr)
	if err != nil {
		return err
	}
	defer logger.Close()

	cfg, variant, err := f.RelaxConfig()
	if err != nil {
		return err
	}
	report, err := bench.Measure(ctx, cfg, variant, *repeats)
	if err != nil {
		return err
	}
	logger.Printf("%s %dx%d workers=%d: mean %.6fs stddev %.6fs over %d runs",
		variant, cfg.Width, cfg.Height, cfg.Workers, report.Mean, report.StdDev, len(report.Times))
	if err = writeTo(*csvPath, stdout, func(w io.Writer) error { return bench.WriteCSV(w, report) }); err != nil {
		return err
	}

	if *chartPath == "" {
		return nil
	}
	top := *maxWorkers
	if top < 1 {
		top = cfg.Workers
	}
	workers := make([]int, top)
	for i := range workers {
		workers[i] = i + 1
	}
	points, err := bench.Scaling(ctx, cfg, variant, workers, *repeats)
	if err != nil {
		return err
	}
	for _, p := range points {
		logger.Printf("workers=%d mean=%.6fs speedup=%.2f", p.Workers, p.Report.Mean, p.Speedup)
	}
	title := fmt.Sprintf("%dx%d %s", cfg.Width, cfg.Height, variant)
	return writeTo(*chartPath, stdout, func(w io.Writer) error { return bench.Chart(w, title, points) })
}

// writeTo runs write against path, or against fallback when path is empty.
func writeTo(path string, fallback io.Writer, write func(io.Writer) error) error {
	if path == "" {
		return write(fallback)
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func summary(res *relax.Result, s analysis.Summary) string {
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF"))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1)

	lines := []string{
		head.Render(fmt.Sprintf("sandpile · %s", res.Variant)),
		body.Render(fmt.Sprintf("grid     %dx%d", res.Width, res.Height)),
		body.Render(fmt.Sprintf("workers  %d", res.Workers)),
		body.Render(fmt.Sprintf("sweeps   %d", res.Sweeps)),
		body.Render(fmt.Sprintf("elapsed  %.6fs", res.Elapsed.Seconds())),
		body.Render(fmt.Sprintf("heights  0:%d 1:%d 2:%d 3:%d", s.Counts[0], s.Counts[1], s.Counts[2], s.Counts[3])),
		body.Render(fmt.Sprintf("grains   %d", s.Mass)),
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
