// Package fleet collects many targets concurrently and assembles the
// results, in input order, into one report.FleetReport.
package fleet

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/vallentes/OneFS-Dashboard/internal/collector"
	"github.com/vallentes/OneFS-Dashboard/internal/report"
)

// ErrNoTargets is returned when Collect is given nothing to do.
var ErrNoTargets = errors.New("no targets to collect")

// Target is one cluster to collect.
type Target = collector.Target

// Config tunes a fleet run.
type Config struct {
	Name        string
	Description string
	// Parallelism caps concurrent targets. Zero or less means no cap.
	Parallelism int
	// DialRate limits new connections per second across the fleet. Zero
	// means unlimited.
	DialRate float64
}

// Aggregator fans collection out across targets.
type Aggregator struct {
	Collector *collector.Collector
	Config    Config
	Log       logrus.FieldLogger
}

// Collect gathers every target and returns the report with one
// TargetReport per target, in input order. Unreachable or failing targets
// are part of the report. The error is ErrNoTargets for empty input or the
// context error when ctx ends first; partial results are then discarded.
func (a *Aggregator) Collect(ctx context.Context, targets []Target) (*report.FleetReport, error) {
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	log := a.logger()
	fr := report.NewFleetReport(a.Config.Name, a.Config.Description, a.Collector.Selected())

	hosts := make([]string, len(targets))
	for i, t := range targets {
		hosts[i] = t.Endpoint.Host()
		if t.Name != "" {
			hosts[i] = t.Name
		}
	}
	ids := report.UniqueIDs(hosts)

	var limiter *rate.Limiter
	if a.Config.DialRate > 0 {
		limiter = rate.NewLimiter(rate.Limit(a.Config.DialRate), 1)
	}

	g, gctx := errgroup.WithContext(ctx)
	if a.Config.Parallelism > 0 {
		g.SetLimit(a.Config.Parallelism)
	}
	slots := make([]report.TargetReport, len(targets))
	for i, t := range targets {
		g.Go(func() error {
			if limiter != nil {
				if err := limiter.Wait(gctx); err != nil {
					// The slot lies past the deadline; nothing can be
					// collected before ctx ends.
					<-gctx.Done()
					return gctx.Err()
				}
			}
			tr, err := a.Collector.Collect(gctx, ids[i], t)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"target":   tr.ID,
				"status":   tr.Status,
				"failed":   tr.FailedCount(),
				"duration": tr.Duration.Round(time.Millisecond),
			}).Info("target collected")
			slots[i] = tr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}

	fr.Targets = slots
	counts := fr.Counts()
	log.WithFields(logrus.Fields{
		"run_id":           fr.RunID,
		"targets":          len(slots),
		"ok":               counts[report.StatusOK],
		"partially_failed": counts[report.StatusPartiallyFailed],
		"unreachable":      counts[report.StatusUnreachable],
	}).Info("fleet collected")
	return fr, nil
}

func (a *Aggregator) logger() logrus.FieldLogger {
	if a.Log != nil {
		return a.Log
	}
	return logrus.StandardLogger()
}
