package explore

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/guiguan/caster"
	"github.com/npillmayer/prefixsum/revisions"
	"golang.org/x/sync/errgroup"
)

// Config configures an Explorer.
type Config struct {
	// Generators produce the inputs, run in order. Defaults to Corners().
	Generators []Generator
	// StopAfter ends an exploration after this many findings. 0 means never.
	StopAfter int
}

func (cfg Config) normalized() Config {
	if len(cfg.Generators) == 0 {
		cfg.Generators = []Generator{Corners()}
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.StopAfter < 0 {
		return fmt.Errorf("%w: StopAfter must not be negative", ErrInvalidConfig)
	}
	for i, g := range cfg.Generators {
		if g == nil {
			return fmt.Errorf("%w: generator #%d is nil", ErrInvalidConfig, i)
		}
	}
	return nil
}

// Explorer runs summers on generated inputs and broadcasts findings.
//
// An Explorer may run several explorations concurrently. Subscribers must
// drain their channels, as publishing a finding waits for delivery.
type Explorer struct {
	config Config
	cast   *caster.Caster
	closed atomic.Bool
}

// New creates an explorer for a configuration.
func New(config Config) (*Explorer, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	return &Explorer{
		config: config.normalized(),
		cast:   caster.New(context.Background()),
	}, nil
}

// Subscribe returns a channel receiving a Finding for every non-passing
// case of every subsequent exploration. The subscription ends when ctx is
// done or the explorer is closed.
func (ex *Explorer) Subscribe(ctx context.Context, capacity uint) (<-chan interface{}, bool) {
	ch, ok := ex.cast.Sub(ctx, capacity)
	if !ok {
		return nil, false
	}
	return ch, true
}

// Close ends all subscriptions. Explorations started after Close fail.
func (ex *Explorer) Close() {
	ex.closed.Store(true)
	ex.cast.Close()
}

// Explore checks s on every generated input and condenses the outcomes in
// a report. If ctx is cancelled, the partial report is returned together
// with the context's error.
func (ex *Explorer) Explore(ctx context.Context, subject string, s revisions.Summer) (*Report, error) {
	if s == nil {
		return nil, ErrNoSubject
	}
	if ex.closed.Load() {
		return nil, ErrExplorerClosed
	}
	rep := newReport(subject)
	findings := 0
	var err error
	for _, g := range ex.config.Generators {
		for buf, n := range g.Inputs() {
			if err = ctx.Err(); err != nil {
				break
			}
			c := Check(s, buf, n)
			rep.add(c)
			if c.Outcome == Pass {
				continue
			}
			findings++
			ex.cast.Pub(Finding{Subject: subject, Case: c})
			if ex.config.StopAfter > 0 && findings >= ex.config.StopAfter {
				break
			}
		}
		if err != nil || ex.config.StopAfter > 0 && findings >= ex.config.StopAfter {
			break
		}
	}
	rep.finish()
	tracer().Infof("explore: %s: %d cases, %d findings, %d paths",
		subject, rep.Cases, rep.Findings(), len(rep.Paths()))
	return rep, err
}

// ExploreAll explores several revisions concurrently. Reports are returned in
// the order of revs. The first failing exploration cancels the others.
func ExploreAll(ctx context.Context, ex *Explorer, revs []revisions.Revision) ([]*Report, error) {
	g, ctx := errgroup.WithContext(ctx)
	reports := make([]*Report, len(revs))
	for i, rev := range revs {
		g.Go(func() error {
			rep, err := ex.Explore(ctx, rev.Name, rev.Sum)
			if err != nil {
				return fmt.Errorf("exploring %s: %w", rev.Name, err)
			}
			reports[i] = rep
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// ExploreFinal explores the final revision and reports whether it is free of
// defects on all configured generators.
func ExploreFinal(ctx context.Context, ex *Explorer) (bool, error) {
	rev := revisions.Final()
	rep, err := ex.Explore(ctx, rev.Name, rev.Sum)
	if err != nil {
		return false, err
	}
	if !rep.Passed() {
		tracer().Errorf("final revision %s has %d findings", rev.Name, rep.Findings())
	}
	return rep.Passed(), nil
}
