// Package lookahead ranks the places a piece could be dropped.
//
// Every candidate is evaluated on its own deep copy of the field, so the
// candidates can run on separate goroutines and the live field is never
// written to.
package lookahead

import (
	"cmp"
	"context"
	"runtime"
	"slices"

	"github.com/plus3/blockfield/field"
	"golang.org/x/sync/errgroup"
)

// Weights scale the metrics of a resulting field into a single cost.
// Height, Holes and Bumpiness add to the cost; Cleared subtracts from it.
type Weights struct {
	Height    float64
	Holes     float64
	Bumpiness float64
	Cleared   float64
}

// DefaultWeights returns weights that favour flat, hole-free fields.
func DefaultWeights() Weights {
	return Weights{
		Height:    0.51,
		Holes:     0.36,
		Bumpiness: 0.18,
		Cleared:   0.76,
	}
}

// Cost folds m into a single score; lower is better.
func (w Weights) Cost(m Metrics) float64 {
	return w.Height*float64(m.AggregateHeight) +
		w.Holes*float64(m.Holes) +
		w.Bumpiness*float64(m.Bumpiness) -
		w.Cleared*float64(m.Cleared)
}

// Candidate is one resting position together with the field it produces.
type Candidate struct {
	Position field.Position
	Metrics  Metrics
	Cost     float64
}

// Evaluator scores candidate placements concurrently. A zero Workers value
// means one worker per CPU.
type Evaluator struct {
	Weights Weights
	Workers int
}

// Option configures an Evaluator built by New.
type Option func(*Evaluator)

// WithWorkers limits how many candidates are evaluated at once.
func WithWorkers(n int) Option {
	return func(e *Evaluator) {
		e.Workers = n
	}
}

// WithWeights replaces DefaultWeights.
func WithWeights(w Weights) Option {
	return func(e *Evaluator) {
		e.Weights = w
	}
}

// New creates an evaluator with DefaultWeights and one worker per CPU.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		Weights: DefaultWeights(),
		Workers: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.Workers < 1 {
		e.Workers = 1
	}
	return e
}

// Evaluate drops shape straight down from row from.Y in every column where
// it fits and returns the candidates ordered by ascending cost, ties broken
// by column. f is only read.
func (e *Evaluator) Evaluate(ctx context.Context, f *field.Field, shape field.Shape, from field.Position) ([]Candidate, error) {
	var starts []field.Position
	for x := -shape.Width() + 1; x < f.Columns(); x++ {
		start := field.Position{X: x, Y: from.Y}
		if f.CanMove(shape, start) {
			starts = append(starts, start)
		}
	}

	candidates := make([]Candidate, len(starts))

	workers := e.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, start := range starts {
		// Each goroutine gets its own copy before it starts.
		scratch := field.DeepCopy(f)

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			candidates[i] = e.place(scratch, shape, start)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(a.Cost, b.Cost); c != 0 {
			return c
		}
		return cmp.Compare(a.Position.X, b.Position.X)
	})
	return candidates, nil
}

// Best returns the cheapest candidate. ok is false when the shape fits
// nowhere.
func (e *Evaluator) Best(ctx context.Context, f *field.Field, shape field.Shape, from field.Position) (best Candidate, ok bool, err error) {
	candidates, err := e.Evaluate(ctx, f, shape, from)
	if err != nil || len(candidates) == 0 {
		return Candidate{}, false, err
	}
	return candidates[0], true, nil
}

func (e *Evaluator) place(scratch *field.Field, shape field.Shape, start field.Position) Candidate {
	rest := scratch.Drop(shape, start)
	scratch.Update(shape, rest)
	cleared := scratch.ClearRows()

	m := Measure(scratch)
	m.Cleared = cleared

	return Candidate{
		Position: rest,
		Metrics:  m,
		Cost:     e.Weights.Cost(m),
	}
}
