package session

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
)

// Upload streams body into path through `cat` on the remote side and then
// applies mode. No SFTP subsystem is needed, which OneFS may have disabled.
func (s *sshSession) Upload(ctx context.Context, path string, body []byte, mode os.FileMode) error {
	if s.closed.Load() {
		return ErrClosed
	}
	sess, err := s.c.NewSession()
	if err != nil {
		return fmt.Errorf("open upload channel: %w", err)
	}
	defer func() { _ = sess.Close() }()

	var stderr bytes.Buffer
	sess.Stdin = bytes.NewReader(body)
	sess.Stderr = &stderr
	q := ShellQuote(path)
	line := fmt.Sprintf("cat > %s && chmod %o %s", q, mode.Perm(), q)

	done := make(chan error, 1)
	go func() { done <- sess.Run(line) }()
	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("upload %s: %w: %s", path, err, strings.TrimSpace(stderr.String()))
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("upload %s: %w", path, ctx.Err())
	}
}
