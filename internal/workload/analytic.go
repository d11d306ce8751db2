package workload

import (
	"iter"
	"math"

	"github.com/nao1215/writedist/internal/model"
)

// AnalyticCounter evaluates the logarithmic-decay write-count model:
//
//	x0    = (1.33*t - 1) * (i - 1) + 1
//	count = round(1.5*t * (ln(N) - ln(x0)) / (1 + 1/(1.33*t)))
type AnalyticCounter struct {
	params model.Params
	opts   counterOptions
}

var _ Counter = (*AnalyticCounter)(nil)

// NewAnalyticCounter creates an AnalyticCounter for the given parameters.
func NewAnalyticCounter(params model.Params, opts ...CounterOption) *AnalyticCounter {
	return &AnalyticCounter{
		params: params,
		opts:   newCounterOptions(opts),
	}
}

// Name returns "analytic".
func (c *AnalyticCounter) Name() string {
	return model.KindAnalytic.String()
}

// x0 returns the logarithm argument for rank index i.
func (c *AnalyticCounter) x0(i int) float64 {
	return (1.33*float64(c.params.T)-1)*float64(i-1) + 1
}

// Validate checks the scale factor, ln(N) and ln(x0) over the whole
// index range. x0 is linear in i and equals 1 at i=1, so checking the
// last index is enough. Negative t is the inverted regime: it fails at
// i=2, where x0 first drops to zero or below.
func (c *AnalyticCounter) Validate() error {
	if _, err := scale(c.Name(), c.params.T); err != nil {
		return err
	}
	if _, err := lnN(c.Name(), c.params.N); err != nil {
		return err
	}
	last := c.params.Lines - 1
	if last < 1 {
		return nil
	}
	if x := c.x0(last); x <= 0 {
		return c.firstNonPositive()
	}
	return nil
}

// firstNonPositive returns the DomainError for the smallest index whose
// x0 is not positive.
func (c *AnalyticCounter) firstNonPositive() error {
	for i := 2; i < c.params.Lines; i++ {
		if x := c.x0(i); x <= 0 {
			return &model.DomainError{Model: c.Name(), Index: i, Expr: "ln(x0)", Value: x}
		}
	}
	return nil
}

// Count returns the write count for rank index i.
func (c *AnalyticCounter) Count(i int) (int64, error) {
	k, err := scale(c.Name(), c.params.T)
	if err != nil {
		return 0, err
	}
	ln, err := lnN(c.Name(), c.params.N)
	if err != nil {
		return 0, err
	}
	x := c.x0(i)
	if x <= 0 {
		return 0, &model.DomainError{Model: c.Name(), Index: i, Expr: "ln(x0)", Value: x}
	}
	wc := k * (ln - math.Log(x))
	return toCount(c.Name(), i, wc, c.opts.rounding)
}

// Records returns the write counts for indices 1..n-1.
// Index n itself is not produced.
func (c *AnalyticCounter) Records() iter.Seq2[model.WriteCountRecord, error] {
	return records(c.params.Lines, c.Count)
}
