package mission

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/san-kum/rover/internal/logging"
	"github.com/san-kum/rover/internal/metrics"
	"github.com/san-kum/rover/internal/rover"
)

type RoverResult struct {
	Name     string             `json:"name"`
	Start    rover.Pose         `json:"start"`
	Final    rover.Pose         `json:"final"`
	Commands string             `json:"commands"`
	Trace    []rover.Step       `json:"trace"`
	Metrics  map[string]float64 `json:"metrics"`
}

type Result struct {
	Grid   rover.Bounds  `json:"grid"`
	Rovers []RoverResult `json:"rovers"`
}

// Positions returns the final "x y H" of every rover in mission order.
func (r *Result) Positions() []string {
	out := make([]string, len(r.Rovers))
	for i, rr := range r.Rovers {
		out[i] = rr.Final.String()
	}
	return out
}

// Runner executes missions. The zero value runs rovers one at a time
// without logging and with the default metrics.
type Runner struct {
	Workers int
	Logger  *log.Logger
	Metrics func() []metrics.Metric
}

func (r *Runner) workers() int {
	if r.Workers <= 0 {
		return 1
	}
	return r.Workers
}

func (r *Runner) newMetrics() []metrics.Metric {
	if r.Metrics == nil {
		return metrics.Default()
	}
	return r.Metrics()
}

// Run deploys every rover of m on its own grid copy and processes its
// commands. A malformed grid or start position aborts the run.
func (r *Runner) Run(ctx context.Context, m *Mission) (*Result, error) {
	bounds, err := m.Bounds()
	if err != nil {
		return nil, err
	}
	if len(m.Rovers) == 0 {
		return nil, ErrNoRovers
	}

	results := make([]RoverResult, len(m.Rovers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers())

	for i, d := range m.Rovers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := r.runOne(m.Grid, bounds, d)
			if err != nil {
				return fmt.Errorf("rover %d (%s): %w", i+1, d.Name, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{Grid: bounds, Rovers: results}, nil
}

func (r *Runner) runOne(grid string, bounds rover.Bounds, d Deployment) (RoverResult, error) {
	rec := metrics.NewRecorder(r.newMetrics()...)
	opts := []rover.Option{rover.WithObserver(rec)}

	var logger *log.Logger
	if r.Logger != nil {
		logger = r.Logger.With("rover", d.Name)
		opts = append(opts, rover.WithObserver(logging.RejectedMoves(logger, bounds)))
	}

	rv, err := rover.New(grid, opts...)
	if err != nil {
		return RoverResult{}, err
	}
	if err := rv.SetPosition(d.Position); err != nil {
		return RoverResult{}, err
	}

	start := rv.Pose()
	if logger != nil {
		if !bounds.Contains(start.X, start.Y) {
			logger.Warn("start position outside grid", "pose", start.String(), "bounds", bounds.String())
		}
		logger.Debug("deployed", "pose", start.String(), "commands", len(d.Commands))
	}

	rv.ProcessInput(d.Commands)

	if logger != nil {
		logger.Debug("finished", "pose", rv.Position())
	}

	return RoverResult{
		Name:     d.Name,
		Start:    start,
		Final:    rv.Pose(),
		Commands: d.Commands,
		Trace:    rec.Trace(),
		Metrics:  rec.Values(),
	}, nil
}
