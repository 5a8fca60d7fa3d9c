package session

import (
	"sync"
	"sync/atomic"

	"golang.org/x/crypto/ssh"
)

// sshSession adapts *ssh.Client to Session. Each Run opens its own exec
// channel on the shared connection so exit codes come back natively.
type sshSession struct {
	c         *ssh.Client
	closed    atomic.Bool
	closeOnce sync.Once
	closeErr  error
}

func newSSHSession(c *ssh.Client) *sshSession {
	return &sshSession{c: c}
}
