package workload

import (
	"iter"
	"math"

	"github.com/nao1215/writedist/internal/model"
)

// ZipfCounter evaluates the power-law write-count model:
//
//	count = round(1.5*t * ln(N) / (1 + 1/(1.33*t)) * i^Alpha)
//
// with Alpha = model.Alpha.
type ZipfCounter struct {
	params model.Params
	opts   counterOptions
}

var _ Counter = (*ZipfCounter)(nil)

// NewZipfCounter creates a ZipfCounter for the given parameters.
func NewZipfCounter(params model.Params, opts ...CounterOption) *ZipfCounter {
	return &ZipfCounter{
		params: params,
		opts:   newCounterOptions(opts),
	}
}

// Name returns "zipf".
func (c *ZipfCounter) Name() string {
	return model.KindZipf.String()
}

// Validate checks t and ln(N); the power term is defined for every
// index >= 1.
func (c *ZipfCounter) Validate() error {
	_, err := c.Base()
	return err
}

// Base returns the write count predicted for rank 1 before rounding.
// t must be positive: t == 0 divides by zero, and a negative t flips the
// sign of the base so that counts grow with the rank index.
func (c *ZipfCounter) Base() (float64, error) {
	if c.params.T < 0 {
		return 0, &model.DomainError{Model: c.Name(), Expr: exprScaleSign, Value: float64(c.params.T)}
	}
	k, err := scale(c.Name(), c.params.T)
	if err != nil {
		return 0, err
	}
	ln, err := lnN(c.Name(), c.params.N)
	if err != nil {
		return 0, err
	}
	return k * ln, nil
}

// Count returns the write count for rank index i.
func (c *ZipfCounter) Count(i int) (int64, error) {
	base, err := c.Base()
	if err != nil {
		return 0, err
	}
	wc := base * math.Pow(float64(i), model.Alpha)
	return toCount(c.Name(), i, wc, c.opts.rounding)
}

// Records returns the write counts for indices 1..n-1.
func (c *ZipfCounter) Records() iter.Seq2[model.WriteCountRecord, error] {
	return records(c.params.Lines, c.Count)
}
