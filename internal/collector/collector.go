// Package collector drives one target through connect, helper staging and
// the domain battery, producing a report.TargetReport.
package collector

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vallentes/OneFS-Dashboard/internal/helper"
	"github.com/vallentes/OneFS-Dashboard/internal/metrics"
	"github.com/vallentes/OneFS-Dashboard/internal/report"
	"github.com/vallentes/OneFS-Dashboard/internal/runner"
	"github.com/vallentes/OneFS-Dashboard/internal/session"
)

// State is a step of a target's collection.
type State string

const (
	StateConnecting     State = "connecting"
	StateEnsuringHelper State = "ensuring_helper"
	StateCollecting     State = "collecting"
	StateDone           State = "done"
	StateUnreachable    State = "unreachable"
)

// Target is one cluster to collect.
type Target struct {
	// Name seeds the report id. Empty means the endpoint host.
	Name     string
	Endpoint session.Endpoint
	// HelperPath overrides helper.DefaultAuditRatesPath.
	HelperPath string
}

// Collector collects one target at a time and is safe for concurrent use
// across targets.
type Collector struct {
	Opener session.Opener
	Runner *runner.Runner
	// Domains to collect. Empty means report.DefaultDomains.
	Domains []report.Domain
	// CommandTimeout applies to commands without a timeout of their own.
	CommandTimeout time.Duration
	Log            logrus.FieldLogger
	Metrics        *metrics.Recorder
}

// Selected returns the domains Collect gathers, in order.
func (c *Collector) Selected() []report.Domain {
	if len(c.Domains) == 0 {
		return report.DefaultDomains
	}
	return c.Domains
}

// Collect runs the battery against t. Connect failures and per-domain
// failures are recorded in the returned report. The error is non-nil only
// when ctx is done, in which case the report is discarded.
func (c *Collector) Collect(ctx context.Context, id string, t Target) (report.TargetReport, error) {
	domains := c.Selected()
	specs := Battery(domains, t.HelperPath)
	log := c.logger().WithFields(logrus.Fields{"target": id, "address": t.Endpoint.Address()})
	start := time.Now()

	c.enter(log, StateConnecting)
	sess, err := c.Opener.Open(ctx, t.Endpoint)
	c.Metrics.ObserveConnect(outcome(err), time.Since(start).Seconds())
	if err != nil {
		if ctx.Err() != nil {
			return report.TargetReport{}, ctx.Err()
		}
		c.enter(log.WithError(err), StateUnreachable)
		tr := report.Unreachable(id, t.Endpoint.Address(), t.Endpoint.Username(), domains, err)
		return c.finish(tr, start), nil
	}
	defer func() {
		if err := sess.Close(); err != nil && !errors.Is(err, session.ErrClosed) {
			log.WithError(err).Debug("session close failed")
		}
	}()

	tr := report.TargetReport{
		ID:       id,
		Address:  t.Endpoint.Address(),
		User:     t.Endpoint.Username(),
		Sections: make([]report.Section, 0, len(specs)),
	}
	run := c.runner(log)

	var helperErr error
	if needsHelper(specs) {
		c.enter(log, StateEnsuringHelper)
		payload := helper.AuditRates(t.HelperPath)
		pr := run.EnsureHelper(ctx, sess, payload)
		if ctx.Err() != nil {
			return report.TargetReport{}, ctx.Err()
		}
		tr.Helper = &report.HelperResult{Path: pr.Path, Presence: string(pr.Presence)}
		if !pr.OK() {
			helperErr = fmt.Errorf("helper %s unavailable: %w", payload.Path, pr.Err)
			tr.Helper.Error = pr.Err.Error()
		}
	}

	c.enter(log, StateCollecting)
	for _, s := range specs {
		if ctx.Err() != nil {
			return report.TargetReport{}, ctx.Err()
		}
		if s.NeedsHelper && helperErr != nil {
			tr.Sections = append(tr.Sections, report.Failure(s.Domain, report.StageHelper, nil, helperErr))
			continue
		}
		cmd := s.Command
		if cmd.Timeout <= 0 {
			cmd.Timeout = c.CommandTimeout
		}
		res := run.Execute(ctx, sess, cmd)
		if ctx.Err() != nil {
			return report.TargetReport{}, ctx.Err()
		}
		if !res.OK() {
			tr.Sections = append(tr.Sections, report.Failure(s.Domain, report.StageCommand, res.Output, errors.New(res.Reason)))
			continue
		}
		tr.Sections = append(tr.Sections, parseSection(s, res.Output))
	}

	tr.Finalize(nil)
	c.enter(log.WithField("status", tr.Status), StateDone)
	return c.finish(tr, start), nil
}

// parseSection runs the domain parser, turning a panic into a parse
// failure.
func parseSection(s DomainSpec, raw []byte) (sec report.Section) {
	defer func() {
		if p := recover(); p != nil {
			sec = report.Failure(s.Domain, report.StageParse, raw, fmt.Errorf("parser panic: %v", p))
		}
	}()
	sec = s.Parse(raw)
	sec.Domain = s.Domain
	if sec.Failure != nil {
		sec.Failure.Domain = s.Domain
	}
	return sec
}

func (c *Collector) finish(tr report.TargetReport, start time.Time) report.TargetReport {
	tr.Started = start.UTC()
	tr.Duration = time.Since(start)
	for _, s := range tr.Sections {
		if s.Failed() {
			c.Metrics.SectionFailed(string(s.Domain), string(s.Failure.Stage))
		}
	}
	c.Metrics.TargetDone(string(tr.Status))
	return tr
}

func (c *Collector) enter(log logrus.FieldLogger, s State) {
	log.WithField("state", s).Debug("state change")
}

func (c *Collector) runner(log logrus.FieldLogger) *runner.Runner {
	if c.Runner != nil {
		return c.Runner
	}
	return &runner.Runner{Log: log, Metrics: c.Metrics}
}

func (c *Collector) logger() logrus.FieldLogger {
	if c.Log != nil {
		return c.Log
	}
	return logrus.StandardLogger()
}

func needsHelper(specs []DomainSpec) bool {
	for _, s := range specs {
		if s.NeedsHelper {
			return true
		}
	}
	return false
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	var ce *session.ConnectError
	if errors.As(err, &ce) {
		return string(ce.Reason)
	}
	return "failed"
}
