package demo

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wildfunctions/lazy_series/pkg/series"
)

// Product is one enumerated q and its product with p.
type Product struct {
	A, B, C, D int
	Q          *series.Series
	PQ         *series.Series
}

// Engine enumerates q = a + b·x + c·x^3 + d·x^4 over a, b, c, d in [0, Range)
// and multiplies each by p = x^2 + x + 1.
type Engine struct {
	cfg Config
	log *slog.Logger
	x   *series.Series
	x3  *series.Series
	x4  *series.Series
	p   *series.Series
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for run progress. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New creates an engine from the given config.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	x := series.X()
	x2, err := x.Pow(2)
	if err != nil {
		return nil, err
	}
	x3, err := x.Pow(3)
	if err != nil {
		return nil, err
	}
	x4, err := x.Pow(4)
	if err != nil {
		return nil, err
	}
	p, err := series.Add(x2.Plus(x), 1)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg: cfg,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
		x:   x,
		x3:  x3,
		x4:  x4,
		p:   p,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// P returns the fixed left-hand factor x^2 + x + 1.
func (e *Engine) P() *series.Series { return e.p }

// Run evaluates every product in enumeration order. Products are computed by
// a pool of workers that all share x, x^3, x^4 and p, so their caches are
// filled once.
func (e *Engine) Run(ctx context.Context) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	start := time.Now()
	n := e.cfg.Range
	total := n * n * n * n
	e.log.Info("starting demo", "range", n, "products", total, "terms", e.cfg.Terms, "workers", e.cfg.Workers)

	products := make([]Product, total)
	rendered := make([]ProductReport, total)

	workers := e.cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	type job struct {
		idx        int
		a, b, c, d int
	}

	jobs := make(chan job)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < total; i++ {
			j := job{idx: i, a: i / (n * n * n), b: i / (n * n) % n, c: i / n % n, d: i % n}
			select {
			case jobs <- j:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for j := range jobs {
				prod, err := e.product(j.a, j.b, j.c, j.d)
				if err != nil {
					return err
				}
				pr, err := e.render(prod)
				if err != nil {
					return err
				}
				products[j.idx] = prod
				rendered[j.idx] = pr
				e.log.Debug("evaluated product", "a", j.a, "b", j.b, "c", j.c, "d", j.d)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	e.log.Info("demo finished", "products", total, "elapsed", time.Since(start),
		"x_cache", e.x.Stats().Entries, "p_cache", e.p.Stats().Entries)

	return Report{
		Config:   e.cfg,
		P:        series.Format(e.p, e.cfg.Terms),
		Products: rendered,
		products: products,
	}, nil
}

// product builds q = a + b·x + c·x^3 + d·x^4 and p·q.
func (e *Engine) product(a, b, c, d int) (Product, error) {
	bx, err := series.Mul(b, e.x)
	if err != nil {
		return Product{}, err
	}
	cx3, err := series.Mul(c, e.x3)
	if err != nil {
		return Product{}, err
	}
	dx4, err := series.Mul(d, e.x4)
	if err != nil {
		return Product{}, err
	}
	q, err := series.Add(a, bx)
	if err != nil {
		return Product{}, err
	}
	q = q.Plus(cx3).Plus(dx4)

	return Product{A: a, B: b, C: c, D: d, Q: q, PQ: e.p.Times(q)}, nil
}

func (e *Engine) render(prod Product) (ProductReport, error) {
	qTerms, err := prod.Q.Terms(e.cfg.Terms)
	if err != nil {
		return ProductReport{}, err
	}
	pqTerms, err := prod.PQ.Terms(e.cfg.Terms)
	if err != nil {
		return ProductReport{}, err
	}
	return ProductReport{
		A: prod.A, B: prod.B, C: prod.C, D: prod.D,
		Q:       series.Format(prod.Q, e.cfg.Terms),
		PQ:      series.Format(prod.PQ, e.cfg.Terms),
		QTerms:  qTerms,
		PQTerms: pqTerms,
		PQLaTeX: series.FormatLaTeX(prod.PQ, e.cfg.Terms),
	}, nil
}
