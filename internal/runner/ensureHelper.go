package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vallentes/OneFS-Dashboard/internal/helper"
	"github.com/vallentes/OneFS-Dashboard/internal/session"
)

// HelperTimeout bounds each step of EnsureHelper.
const HelperTimeout = 30 * time.Second

// Presence is the result of a helper check.
type Presence string

const (
	PresenceAlready   Presence = "already_present"
	PresenceInstalled Presence = "installed"
	PresenceFailed    Presence = "failed"
)

// PresenceResult reports what EnsureHelper did.
type PresenceResult struct {
	Path     string
	Presence Presence
	Err      error
}

// OK reports whether the helper is usable.
func (p PresenceResult) OK() bool { return p.Presence != PresenceFailed }

// EnsureHelper makes sure p is installed and executable on the target. It
// checks first and uploads only when missing, so calling it on every run is
// safe. The check after upload guards against a silently failed write.
func (r *Runner) EnsureHelper(ctx context.Context, sess session.Session, p helper.Payload) (res PresenceResult) {
	res = PresenceResult{Path: p.Path, Presence: PresenceFailed}
	log := r.logger().WithField("helper", p.Path)
	defer func() {
		if rec := recover(); rec != nil {
			res = PresenceResult{Path: p.Path, Presence: PresenceFailed, Err: fmt.Errorf("panic during helper check: %v", rec)}
		}
		r.Metrics.HelperChecked(string(res.Presence))
		if res.OK() {
			log.WithField("presence", res.Presence).Debug("helper ready")
		} else {
			log.WithError(res.Err).Warn("helper unavailable")
		}
	}()

	present, err := r.helperPresent(ctx, sess, p.Path)
	if err != nil {
		res.Err = err
		return res
	}
	if present {
		res.Presence = PresenceAlready
		return res
	}

	uctx, cancel := context.WithTimeout(ctx, HelperTimeout)
	defer cancel()
	if err := sess.Upload(uctx, p.Path, p.Body, p.Mode); err != nil {
		res.Err = err
		return res
	}

	present, err = r.helperPresent(ctx, sess, p.Path)
	switch {
	case err != nil:
		res.Err = err
	case !present:
		res.Err = fmt.Errorf("%s not executable after upload", p.Path)
	default:
		res.Presence = PresenceInstalled
	}
	return res
}

// helperPresent runs `test -x`. Exit status 1 means absent; anything else
// unexpected is an error.
func (r *Runner) helperPresent(ctx context.Context, sess session.Session, path string) (bool, error) {
	cctx, cancel := context.WithTimeout(ctx, HelperTimeout)
	defer cancel()
	_, code, err := sess.Run(cctx, session.Command{Line: "test -x " + session.ShellQuote(path)})
	switch {
	case code == 0 && err == nil:
		return true, nil
	case code == 1:
		return false, nil
	case err != nil:
		r.logger().WithFields(logrus.Fields{"helper": path, "exit": code}).Debug("presence check errored")
		return false, fmt.Errorf("check %s: %w", path, err)
	}
	return false, fmt.Errorf("check %s: exit status %d", path, code)
}
