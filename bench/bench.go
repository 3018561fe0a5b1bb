// Package bench times repeated sandpile runs and reports them as CSV and as a
// worker-scaling chart.
package bench

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/sandpile/relax"
)

// Chart size in pixels.
const (
	ChartWidth  = 640
	ChartHeight = 400
)

var (
	// ErrBadRepeats indicates fewer than one repetition.
	ErrBadRepeats = errors.New("bench: repeats must be > 0")
	// ErrTooFewPoints indicates a scaling chart with fewer than two points.
	ErrTooFewPoints = errors.New("bench: chart needs at least two points")
)

// Report holds the relaxation time of each repetition, in seconds.
type Report struct {
	Times  []float64
	Mean   float64
	StdDev float64
	Sweeps int
}

// Measure runs cfg with v repeats times and collects the engine's elapsed
// time of each run.
func Measure(ctx context.Context, cfg relax.Config, v relax.Variant, repeats int) (Report, error) {
	if repeats < 1 {
		return Report{}, fmt.Errorf("Measure(%d): %w", repeats, ErrBadRepeats)
	}
	r := Report{Times: make([]float64, 0, repeats)}
	for i := 0; i < repeats; i++ {
		res, err := relax.Run(ctx, cfg, v)
		if err != nil {
			return Report{}, fmt.Errorf("Measure: run %d: %w", i+1, err)
		}
		r.Times = append(r.Times, res.Elapsed.Seconds())
		r.Sweeps = res.Sweeps
	}
	r.Mean, r.StdDev = stat.MeanStdDev(r.Times, nil)
	if len(r.Times) < 2 {
		r.StdDev = 0
	}

	return r, nil
}

// WriteCSV writes one row per run under a "Test Case,Time (s)" header,
// followed by an "Average" row.
func WriteCSV(w io.Writer, r Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Test Case", "Time (s)"}); err != nil {
		return err
	}
	for i, t := range r.Times {
		if err := cw.Write([]string{strconv.Itoa(i + 1), formatSeconds(t)}); err != nil {
			return err
		}
	}
	if err := cw.Write([]string{"Average", formatSeconds(r.Mean)}); err != nil {
		return err
	}
	cw.Flush()

	return cw.Error()
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', 6, 64)
}

// Point is the timing of one worker count.
type Point struct {
	Workers int
	Report  Report
	// Speedup is the first point's mean divided by this point's mean.
	Speedup float64
}

// Scaling measures cfg for every worker count in workers, in order.
func Scaling(ctx context.Context, cfg relax.Config, v relax.Variant, workers []int, repeats int) ([]Point, error) {
	points := make([]Point, 0, len(workers))
	for _, n := range workers {
		c := cfg
		c.Workers = n
		r, err := Measure(ctx, c, v, repeats)
		if err != nil {
			return nil, fmt.Errorf("Scaling(workers=%d): %w", n, err)
		}
		points = append(points, Point{Workers: n, Report: r})
	}
	for i := range points {
		if points[i].Report.Mean > 0 {
			points[i].Speedup = points[0].Report.Mean / points[i].Report.Mean
		}
	}

	return points, nil
}

// Chart renders mean time against worker count as a PNG.
func Chart(w io.Writer, title string, points []Point) error {
	if len(points) < 2 {
		return fmt.Errorf("Chart(%d points): %w", len(points), ErrTooFewPoints)
	}
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = float64(p.Workers)
		ys[i] = p.Report.Mean
	}

	graph := chart.Chart{
		Title:  title,
		Width:  ChartWidth,
		Height: ChartHeight,
		XAxis: chart.XAxis{
			Name:  "workers",
			Style: chart.Style{FontSize: 10.0},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "time (s)",
			Style: chart.Style{FontSize: 10.0},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "mean relaxation time",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 3.0},
			},
		},
	}

	return graph.Render(chart.PNG, w)
}
