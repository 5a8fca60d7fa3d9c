package session

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

func stubDial(t *testing.T, fn func(ctx context.Context, ep Endpoint, cb ssh.HostKeyCallback, timeout time.Duration) (*ssh.Client, error)) {
	t.Helper()
	orig := dialFunc
	t.Cleanup(func() { dialFunc = orig })
	dialFunc = fn
}

func TestDialer_RetriesUnreachable(t *testing.T) {
	calls := 0
	stubDial(t, func(context.Context, Endpoint, ssh.HostKeyCallback, time.Duration) (*ssh.Client, error) {
		calls++
		return nil, &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("no route to host")}
	})
	ep, _ := NewEndpoint("c1", "u", "p")
	d := &Dialer{Attempts: 3, RetryDelay: time.Millisecond}
	s, err := d.Open(context.Background(), ep)
	require.Nil(t, s)
	require.Equal(t, 3, calls)
	var ce *ConnectError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ReasonUnreachable, ce.Reason)
}

func TestDialer_DoesNotRetryAuth(t *testing.T) {
	calls := 0
	stubDial(t, func(context.Context, Endpoint, ssh.HostKeyCallback, time.Duration) (*ssh.Client, error) {
		calls++
		return nil, errors.New("ssh: handshake failed: ssh: unable to authenticate")
	})
	ep, _ := NewEndpoint("c1", "u", "p")
	d := &Dialer{Attempts: 5, RetryDelay: time.Millisecond}
	_, err := d.Open(context.Background(), ep)
	require.Equal(t, 1, calls)
	var ce *ConnectError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ReasonAuth, ce.Reason)
}

func TestDialer_StrictHostKeyWithoutKnownHosts(t *testing.T) {
	ep, _ := NewEndpoint("c1", "u", "p")
	d := &Dialer{StrictHostKey: true, KnownHostsPath: t.TempDir() + "/missing"}
	_, err := d.Open(context.Background(), ep)
	var ce *ConnectError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, ReasonHostKey, ce.Reason)
}
