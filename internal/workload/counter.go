package workload

import (
	"iter"
	"math"

	"github.com/nao1215/writedist/internal/model"
)

// CounterOption configures AnalyticCounter and ZipfCounter.
type CounterOption func(*counterOptions)

type counterOptions struct {
	rounding Rounding
}

// WithRounding sets the rounding mode. The default is RoundHalfAway.
func WithRounding(r Rounding) CounterOption {
	return func(o *counterOptions) {
		o.rounding = r
	}
}

func newCounterOptions(opts []CounterOption) counterOptions {
	o := counterOptions{rounding: RoundHalfAway}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Counter is a write-count model that can be evaluated per rank index.
type Counter interface {
	// Name returns the model name.
	Name() string

	// Validate reports a *model.DomainError if any index of the
	// configured range would leave the model's domain.
	Validate() error

	// Count returns the write count for rank index i.
	Count(i int) (int64, error)

	// Records returns the records for indices 1..n-1 in ascending order.
	Records() iter.Seq2[model.WriteCountRecord, error]
}

// Expressions named by the DomainErrors of the scale factor.
const (
	exprScaleDivisor = "1/(1.33t)"
	exprScaleSign    = "scale(t)"
)

// scale returns the factor shared by both models, 1.5*t / (1 + 1/(1.33*t)).
// t == 0 divides by zero and is a DomainError.
func scale(name string, t int) (float64, error) {
	if t == 0 {
		return 0, &model.DomainError{Model: name, Expr: exprScaleDivisor, Value: 0}
	}
	tf := float64(t)
	return 1.5 * tf / (1 + 1/(1.33*tf)), nil
}

// lnN returns ln(N), or a DomainError when N is not positive.
func lnN(name string, n int) (float64, error) {
	if n <= 0 {
		return 0, &model.DomainError{Model: name, Expr: "ln(N)", Value: float64(n)}
	}
	return math.Log(float64(n)), nil
}

// toCount rounds v and converts it to int64, rejecting values that have no
// integer representation.
func toCount(name string, i int, v float64, r Rounding) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &model.DomainError{Model: name, Index: i, Expr: "write count", Value: v}
	}
	rounded := r.Round(v)
	if rounded < math.MinInt64 || rounded >= math.MaxInt64 {
		return 0, &model.DomainError{Model: name, Index: i, Expr: "write count", Value: v}
	}
	return int64(rounded), nil
}

// records yields count(i) for i in 1..lines-1 and stops at the first error.
func records(lines int, count func(int) (int64, error)) iter.Seq2[model.WriteCountRecord, error] {
	return func(yield func(model.WriteCountRecord, error) bool) {
		for i := 1; i < lines; i++ {
			c, err := count(i)
			if err != nil {
				yield(model.WriteCountRecord{}, err)
				return
			}
			if !yield(model.WriteCountRecord{Index: i, Count: c}, nil) {
				return
			}
		}
	}
}

// Collect drains a record sequence into a slice.
// It returns the records produced before the first error together with
// that error.
func Collect(seq iter.Seq2[model.WriteCountRecord, error]) ([]model.WriteCountRecord, error) {
	var out []model.WriteCountRecord
	for rec, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, nil
}
