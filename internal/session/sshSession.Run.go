package session

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/ssh"
)

// Run executes cmd on a fresh exec channel. On context expiry the remote
// process is signalled, the channel closed, and whatever output arrived so
// far is returned together with ctx.Err().
func (s *sshSession) Run(ctx context.Context, cmd Command) ([]byte, int, error) {
	if s.closed.Load() {
		return nil, -1, ErrClosed
	}
	if s.c == nil {
		return nil, -1, errors.New("nil ssh client")
	}
	sess, err := s.c.NewSession()
	if err != nil {
		return nil, -1, fmt.Errorf("open exec channel: %w", err)
	}
	defer func() { _ = sess.Close() }()

	out := newCapture(cmd.Until)
	errOut := out
	if cmd.StderrOnFailure {
		errOut = newCapture("")
	}
	sess.Stdout = out
	sess.Stderr = errOut
	if err := sess.Start(cmd.Line); err != nil {
		return nil, -1, fmt.Errorf("start command: %w", err)
	}
	output := func(failed bool) []byte {
		b := out.Bytes()
		if failed && errOut != out {
			b = append(b, errOut.Bytes()...)
		}
		return b
	}

	done := make(chan error, 1)
	go func() { done <- sess.Wait() }()

	select {
	case err := <-done:
		return output(err != nil), exitCode(err), err
	case <-out.Seen():
		_ = sess.Signal(ssh.SIGTERM)
		return output(false), 0, nil
	case <-ctx.Done():
		_ = sess.Signal(ssh.SIGKILL)
		return output(true), -1, ctx.Err()
	}
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ssh.ExitError
	if errors.As(err, &ee) {
		return ee.ExitStatus()
	}
	return -1
}
