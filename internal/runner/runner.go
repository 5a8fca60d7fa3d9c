// Package runner executes diagnostic commands over a session and turns
// every outcome, including timeouts and panics in the transport, into a
// CommandResult value. Nothing in this package returns an error to the
// collector.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vallentes/OneFS-Dashboard/internal/metrics"
	"github.com/vallentes/OneFS-Dashboard/internal/session"
)

// DefaultTimeout applies to specs without their own timeout.
const DefaultTimeout = 5 * time.Minute

// Format hints at the shape of a command's output. FormatJSON commands keep
// stderr out of successful output so warnings cannot break decoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// CommandSpec describes one command of the battery.
type CommandSpec struct {
	Name    string
	Line    string
	Format  Format
	Timeout time.Duration
	// Until ends the command early once a full output line containing it
	// has been read.
	Until string
}

// Outcome is the result class of a command.
type Outcome string

const (
	Success Outcome = "success"
	Failed  Outcome = "failed"
)

// CommandResult is produced once per executed command and never mutated.
type CommandResult struct {
	Name     string
	Command  string
	Output   []byte
	Outcome  Outcome
	Reason   string
	ExitCode int
	Duration time.Duration
}

// OK reports whether the command succeeded.
func (r CommandResult) OK() bool { return r.Outcome == Success }

// Runner executes commands. The zero value logs to the standard logrus
// logger and records no metrics.
type Runner struct {
	Log     logrus.FieldLogger
	Metrics *metrics.Recorder
}

// Execute runs spec over sess bounded by spec.Timeout. Non-zero exits,
// timeouts, transport errors and empty output all yield a Failed result that
// still carries the output captured before the failure.
func (r *Runner) Execute(ctx context.Context, sess session.Session, spec CommandSpec) (res CommandResult) {
	start := time.Now()
	res = CommandResult{Name: spec.Name, Command: spec.Line, ExitCode: -1, Outcome: Failed}
	log := r.logger().WithFields(logrus.Fields{"command": spec.Name, "format": spec.Format})

	defer func() {
		if p := recover(); p != nil {
			res.Outcome = Failed
			res.Reason = fmt.Sprintf("panic during command: %v", p)
		}
		res.Duration = time.Since(start)
		r.Metrics.ObserveCommand(spec.Name, string(res.Outcome), res.Duration.Seconds())
		if res.OK() {
			log.WithField("duration", res.Duration).Debug("command succeeded")
		} else {
			log.WithField("reason", res.Reason).Warn("command failed")
		}
	}()

	timeout := spec.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log.WithField("timeout", timeout).Debug("executing")
	out, code, err := sess.Run(cctx, session.Command{
		Line:            spec.Line,
		Until:           spec.Until,
		StderrOnFailure: spec.Format == FormatJSON,
	})
	res.Output = out
	res.ExitCode = code

	switch {
	case err != nil && ctx.Err() != nil:
		res.Reason = fmt.Sprintf("canceled: %v", ctx.Err())
	case errors.Is(err, context.DeadlineExceeded):
		res.Reason = fmt.Sprintf("timed out after %s", timeout)
	case err != nil && code > 0:
		res.Reason = fmt.Sprintf("exit status %d", code)
	case err != nil:
		res.Reason = err.Error()
	case code != 0:
		res.Reason = fmt.Sprintf("exit status %d", code)
	case len(bytes.TrimSpace(out)) == 0:
		res.Reason = "empty output"
	default:
		res.Outcome = Success
	}
	return res
}

func (r *Runner) logger() logrus.FieldLogger {
	if r.Log != nil {
		return r.Log
	}
	return logrus.StandardLogger()
}
