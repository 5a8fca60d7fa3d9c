package session

import (
	"context"
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// hostKeyCallback returns knownhosts verification when strict, otherwise a
// callback that accepts any key.
func hostKeyCallback(knownHostsPath string, strict bool) (ssh.HostKeyCallback, error) {
	if !strict {
		return ssh.InsecureIgnoreHostKey(), nil
	}
	if _, err := os.Stat(knownHostsPath); err != nil {
		return nil, fmt.Errorf("known_hosts file not found at %s and strict-host-key is enabled", knownHostsPath)
	}
	cb, err := knownhosts.New(knownHostsPath)
	if err != nil {
		return nil, fmt.Errorf("known_hosts: %w", err)
	}
	return cb, nil
}

// dialSSH establishes a password-authenticated SSH client connection. The
// whole TCP connect plus handshake is bounded by dialTimeout and by ctx.
func dialSSH(ctx context.Context, ep Endpoint, hostKeyCB ssh.HostKeyCallback, dialTimeout time.Duration) (*ssh.Client, error) {
	secret := ep.Secret()
	cfg := &ssh.ClientConfig{
		User: ep.Username(),
		Auth: []ssh.AuthMethod{
			ssh.Password(secret),
			// OneFS PAM setups often only offer keyboard-interactive.
			ssh.KeyboardInteractive(func(_, _ string, questions []string, _ []bool) ([]string, error) {
				answers := make([]string, len(questions))
				for i := range answers {
					answers[i] = secret
				}
				return answers, nil
			}),
		},
		HostKeyCallback: hostKeyCB,
		Timeout:         dialTimeout,
	}

	if dialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, dialTimeout)
		defer cancel()
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", ep.Address())
	if err != nil {
		return nil, err
	}
	if dl, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(dl)
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	c, chans, reqs, err := ssh.NewClientConn(conn, ep.Address(), cfg)
	if !stop() {
		// ctx fired during the handshake and the conn is gone.
		if err == nil {
			_ = c.Close()
		}
		return nil, ctx.Err()
	}
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	_ = conn.SetDeadline(time.Time{})
	return ssh.NewClient(c, chans, reqs), nil
}
