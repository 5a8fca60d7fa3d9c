package session

import (
	"context"
	"errors"
	"os"
)

// ErrClosed is returned by operations on a closed Session.
var ErrClosed = errors.New("session closed")

// Command is one remote command line. When Until is set the command is
// considered finished as soon as a complete output line containing Until
// has been received, even if the remote process keeps running.
//
// Stderr normally interleaves with stdout. With StderrOnFailure it is held
// apart and appended after stdout only when the command fails, keeping
// machine-readable output clean of warnings.
type Command struct {
	Line            string
	Until           string
	StderrOnFailure bool
}

// Session is a live channel to one target. Run is not safe for concurrent
// use; callers issue one command at a time.
type Session interface {
	// Run executes cmd and returns the combined output captured so far, the
	// exit code (-1 when unknown) and an error for non-zero exits, transport
	// failures or context expiry.
	Run(ctx context.Context, cmd Command) ([]byte, int, error)
	// Upload writes body to path on the target with the given mode.
	Upload(ctx context.Context, path string, body []byte, mode os.FileMode) error
	// Close releases the connection. It is safe to call more than once.
	Close() error
}

// Opener establishes sessions. Implementations return a *ConnectError on
// failure and never a usable Session alongside an error.
type Opener interface {
	Open(ctx context.Context, ep Endpoint) (Session, error)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(ctx context.Context, ep Endpoint) (Session, error)

// Open calls f.
func (f OpenerFunc) Open(ctx context.Context, ep Endpoint) (Session, error) { return f(ctx, ep) }
