package session

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassify_Reasons(t *testing.T) {
	cases := []struct {
		err  error
		want Reason
	}{
		{errors.New("ssh: handshake failed: ssh: unable to authenticate, attempted methods [none password]"), ReasonAuth},
		{&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, ReasonUnreachable},
		{fmt.Errorf("wrapped: %w", context.DeadlineExceeded), ReasonTimeout},
		{context.Canceled, ReasonCanceled},
		{timeoutErr{}, ReasonTimeout},
		{errors.New("ssh: handshake failed: knownhosts: key mismatch host key"), ReasonHostKey},
		{errors.New("ssh: unexpected packet"), ReasonProtocol},
	}
	for _, tc := range cases {
		ce := classify("h:22", tc.err)
		require.Equal(t, tc.want, ce.Reason, tc.err.Error())
		require.ErrorIs(t, ce, tc.err)
		require.Contains(t, ce.Error(), "connect h:22")
	}
}

func TestClassify_KeepsExistingConnectError(t *testing.T) {
	orig := &ConnectError{Address: "a:22", Reason: ReasonAuth, Err: errors.New("denied")}
	require.Same(t, orig, classify("b:22", fmt.Errorf("retry: %w", orig)))
}

func TestConnectError_Retryable(t *testing.T) {
	require.False(t, (&ConnectError{Reason: ReasonAuth}).Retryable())
	require.False(t, (&ConnectError{Reason: ReasonHostKey}).Retryable())
	require.True(t, (&ConnectError{Reason: ReasonUnreachable}).Retryable())
	require.True(t, (&ConnectError{Reason: ReasonTimeout}).Retryable())
}
