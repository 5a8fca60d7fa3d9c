package session

import (
	"context"
	"errors"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/ssh"
)

const (
	// DefaultConnectTimeout bounds TCP connect plus SSH handshake.
	DefaultConnectTimeout = 15 * time.Second
	defaultRetryDelay     = 2 * time.Second
	maxRetryDelay         = 30 * time.Second
)

// dialFunc is swapped in tests.
var dialFunc = dialSSH

// Dialer opens SSH sessions with password authentication.
type Dialer struct {
	// ConnectTimeout bounds each attempt. Zero means DefaultConnectTimeout.
	ConnectTimeout time.Duration
	// KnownHostsPath is consulted when StrictHostKey is set.
	KnownHostsPath string
	StrictHostKey  bool
	// Attempts is the number of connect attempts for retryable failures.
	// Zero and one both mean a single attempt.
	Attempts   uint
	RetryDelay time.Duration
	Log        logrus.FieldLogger
}

// Open dials ep and returns a ready Session or a *ConnectError.
func (d *Dialer) Open(ctx context.Context, ep Endpoint) (Session, error) {
	log := d.logger().WithField("target", ep.Address())

	hostKeyCB, err := hostKeyCallback(d.KnownHostsPath, d.StrictHostKey)
	if err != nil {
		return nil, &ConnectError{Address: ep.Address(), Reason: ReasonHostKey, Err: err}
	}

	timeout := d.ConnectTimeout
	if timeout <= 0 {
		timeout = DefaultConnectTimeout
	}
	attempts := d.Attempts
	if attempts == 0 {
		attempts = 1
	}
	delay := d.RetryDelay
	if delay <= 0 {
		delay = defaultRetryDelay
	}

	var client *ssh.Client
	err = retry.Do(func() error {
		c, err := dialFunc(ctx, ep, hostKeyCB, timeout)
		if err != nil {
			return classify(ep.Address(), err)
		}
		client = c
		return nil
	},
		retry.Attempts(attempts),
		retry.Delay(delay),
		retry.MaxDelay(maxRetryDelay),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			var ce *ConnectError
			return errors.As(err, &ce) && ce.Retryable()
		}),
		retry.OnRetry(func(n uint, err error) {
			log.WithError(err).WithField("attempt", n+1).Warn("connect failed, retrying")
		}),
	)
	if err != nil {
		return nil, classify(ep.Address(), err)
	}
	log.Debug("ssh session established")
	return newSSHSession(client), nil
}

func (d *Dialer) logger() logrus.FieldLogger {
	if d.Log != nil {
		return d.Log
	}
	return logrus.StandardLogger()
}
