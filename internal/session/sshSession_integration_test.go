package session

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vallentes/OneFS-Dashboard/tools/sshserv"
)

func startServer(t *testing.T, cfg sshserv.Config) *sshserv.Server {
	t.Helper()
	srv, err := sshserv.Start("127.0.0.1:0", cfg)
	if err != nil {
		t.Skipf("cannot start test ssh server: %v", err)
	}
	t.Cleanup(srv.Stop)
	return srv
}

func openTest(t *testing.T, srv *sshserv.Server, password string) (Session, error) {
	t.Helper()
	ep, err := NewEndpoint(srv.Addr(), "monitor", password)
	require.NoError(t, err)
	d := &Dialer{ConnectTimeout: 3 * time.Second}
	return d.Open(context.Background(), ep)
}

func TestDialer_Open_RunAndClose(t *testing.T) {
	srv := startServer(t, sshserv.Config{
		Password: "s3cret",
		Responses: map[string]sshserv.Response{
			"isi version": {Output: "Isilon OneFS v9.5.0.0\n"},
			"false":       {Output: "nope\n", Exit: 3},
		},
	})
	s, err := openTest(t, srv, "s3cret")
	require.NoError(t, err)

	out, code, err := s.Run(context.Background(), Command{Line: "isi version"})
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Equal(t, "Isilon OneFS v9.5.0.0\n", string(out))

	out, code, err = s.Run(context.Background(), Command{Line: "false"})
	require.Error(t, err)
	require.Equal(t, 3, code)
	require.Equal(t, "nope\n", string(out))

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	_, _, err = s.Run(context.Background(), Command{Line: "isi version"})
	require.ErrorIs(t, err, ErrClosed)
}

func TestDialer_Open_WrongPasswordIsAuth(t *testing.T) {
	srv := startServer(t, sshserv.Config{Password: "right"})
	s, err := openTest(t, srv, "wrong")
	require.Nil(t, s)
	var ce *ConnectError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, ReasonAuth, ce.Reason)
}

func TestDialer_Open_ClosedPortIsUnreachable(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	ep, err := NewEndpoint(addr, "u", "p")
	require.NoError(t, err)
	d := &Dialer{ConnectTimeout: time.Second}
	_, err = d.Open(context.Background(), ep)
	var ce *ConnectError
	require.True(t, errors.As(err, &ce))
	require.Equal(t, ReasonUnreachable, ce.Reason)
}

func TestSSHSession_Run_UntilMarkerStopsHangingCommand(t *testing.T) {
	srv := startServer(t, sshserv.Config{Responses: map[string]sshserv.Response{
		"bash /root/auditrates.sh": {Output: "node 1:\nEvents: 10\nTotal average: 0.5 evts/s\n", Hang: true},
	}})
	s, err := openTest(t, srv, "")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	out, code, err := s.Run(ctx, Command{Line: "bash /root/auditrates.sh", Until: "Total average:"})
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Contains(t, string(out), "Total average: 0.5 evts/s")
}

func TestSSHSession_Run_TimeoutKeepsPartialOutput(t *testing.T) {
	srv := startServer(t, sshserv.Config{Responses: map[string]sshserv.Response{
		"isi status": {Output: "Cluster Name: c1\n", Hang: true},
	}})
	s, err := openTest(t, srv, "")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	out, code, err := s.Run(ctx, Command{Line: "isi status"})
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Equal(t, -1, code)
	require.Equal(t, "Cluster Name: c1\n", string(out))
}

func TestSSHSession_Run_StderrOnFailure(t *testing.T) {
	srv := startServer(t, sshserv.Config{Responses: map[string]sshserv.Response{
		"isi quota quotas list --format json": {Stderr: "Warning: license expires soon\n", Output: "[]\n"},
		"isi smb shares list --format json":   {Stderr: "Error: smb service down\n", Output: "partial\n", Exit: 2},
	}})
	s, err := openTest(t, srv, "")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()
	ctx := context.Background()

	out, code, err := s.Run(ctx, Command{Line: "isi quota quotas list --format json", StderrOnFailure: true})
	require.NoError(t, err)
	require.Equal(t, 0, code)
	require.Equal(t, "[]\n", string(out))

	out, code, err = s.Run(ctx, Command{Line: "isi smb shares list --format json", StderrOnFailure: true})
	require.Error(t, err)
	require.Equal(t, 2, code)
	require.Equal(t, "partial\nError: smb service down\n", string(out))

	out, _, err = s.Run(ctx, Command{Line: "isi quota quotas list --format json"})
	require.NoError(t, err)
	require.Contains(t, string(out), "license expires soon")
	require.Contains(t, string(out), "[]")
}

func TestSSHSession_Upload(t *testing.T) {
	srv := startServer(t, sshserv.Config{})
	s, err := openTest(t, srv, "")
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	require.NoError(t, s.Upload(context.Background(), "/root/my helper.sh", []byte("#!/bin/sh\necho hi\n"), 0o755))
	body, ok := srv.File("/root/my helper.sh")
	require.True(t, ok)
	require.Equal(t, "#!/bin/sh\necho hi\n", string(body))
	require.Contains(t, srv.Execs(), "cat > '/root/my helper.sh' && chmod 755 '/root/my helper.sh'")

	_, code, err := s.Run(context.Background(), Command{Line: "test -x '/root/my helper.sh'"})
	require.NoError(t, err)
	require.Equal(t, 0, code)
}
