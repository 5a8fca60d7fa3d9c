package session

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"

	"golang.org/x/crypto/ssh/knownhosts"
)

// Reason classifies a connect failure.
type Reason string

const (
	ReasonAuth        Reason = "auth"
	ReasonUnreachable Reason = "unreachable"
	ReasonTimeout     Reason = "timeout"
	ReasonHostKey     Reason = "host_key"
	ReasonCanceled    Reason = "canceled"
	ReasonProtocol    Reason = "protocol"
)

// ConnectError is the only error an Opener returns.
type ConnectError struct {
	Address string
	Reason  Reason
	Err     error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("connect %s: %s: %v", e.Address, e.Reason, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// Retryable reports whether another attempt could succeed. Credentials and
// host keys do not change between attempts.
func (e *ConnectError) Retryable() bool {
	switch e.Reason {
	case ReasonUnreachable, ReasonTimeout, ReasonProtocol:
		return true
	}
	return false
}

// classify wraps err in a ConnectError for address.
func classify(address string, err error) *ConnectError {
	var ce *ConnectError
	if errors.As(err, &ce) {
		return ce
	}
	return &ConnectError{Address: address, Reason: reasonOf(err), Err: err}
}

func reasonOf(err error) Reason {
	if errors.Is(err, context.Canceled) {
		return ReasonCanceled
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return ReasonTimeout
	}
	var keyErr *knownhosts.KeyError
	var revoked *knownhosts.RevokedError
	if errors.As(err, &keyErr) || errors.As(err, &revoked) {
		return ReasonHostKey
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return ReasonTimeout
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "unable to authenticate"), strings.Contains(msg, "no supported methods remain"):
		return ReasonAuth
	case strings.Contains(msg, "known_hosts"), strings.Contains(msg, "host key"):
		return ReasonHostKey
	}
	var op *net.OpError
	if errors.As(err, &op) && op.Op == "dial" {
		return ReasonUnreachable
	}
	var dns *net.DNSError
	if errors.As(err, &dns) {
		return ReasonUnreachable
	}
	return ReasonProtocol
}
