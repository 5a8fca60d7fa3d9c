// Package sessiontest provides in-memory Session and Opener fakes for tests
// of code that drives sessions.
package sessiontest

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/vallentes/OneFS-Dashboard/internal/session"
)

// Reply is a canned answer for one command line.
type Reply struct {
	Output string
	// Stderr follows Output unless the command asked for it only on
	// failure.
	Stderr string
	Exit   int
	Err    error
	// Delay holds the reply back (honouring ctx); Block waits for ctx.
	Delay time.Duration
	Block bool
	Panic bool
}

// Session is a scripted session. Unknown lines exit 127.
type Session struct {
	mu        sync.Mutex
	Replies   map[string]Reply
	Files     map[string][]byte
	UploadErr error
	calls     []string
	closes    int
}

// NewSession returns a session answering from replies.
func NewSession(replies map[string]Reply) *Session {
	return &Session{Replies: replies, Files: map[string][]byte{}}
}

// Run implements session.Session.
func (s *Session) Run(ctx context.Context, cmd session.Command) ([]byte, int, error) {
	s.mu.Lock()
	s.calls = append(s.calls, cmd.Line)
	closed := s.closes > 0
	s.mu.Unlock()
	if closed {
		return nil, -1, session.ErrClosed
	}

	if p, ok := strings.CutPrefix(cmd.Line, "test -x "); ok {
		s.mu.Lock()
		_, present := s.Files[strings.Trim(p, "'")]
		s.mu.Unlock()
		if present {
			return nil, 0, nil
		}
		return nil, 1, errors.New("exit status 1")
	}

	r, ok := s.Replies[cmd.Line]
	if !ok {
		return []byte("command not found\n"), 127, errors.New("exit status 127")
	}
	if r.Panic {
		panic("transport exploded")
	}
	if r.Delay > 0 {
		select {
		case <-time.After(r.Delay):
		case <-ctx.Done():
			return nil, -1, ctx.Err()
		}
	}
	failed := r.Block || r.Exit != 0 || r.Err != nil
	out := r.Output
	if failed || !cmd.StderrOnFailure {
		out += r.Stderr
	}
	if r.Block {
		<-ctx.Done()
		return []byte(out), -1, ctx.Err()
	}
	return []byte(out), r.Exit, r.Err
}

// Upload implements session.Session.
func (s *Session) Upload(_ context.Context, path string, body []byte, _ os.FileMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, "upload "+path)
	if s.UploadErr != nil {
		return s.UploadErr
	}
	s.Files[path] = append([]byte(nil), body...)
	return nil
}

// Close implements session.Session and counts calls.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closes++
	return nil
}

// Calls returns every command line and upload seen, in order.
func (s *Session) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.calls...)
}

// Closes returns how many times Close was called.
func (s *Session) Closes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closes
}

// Opener hands out sessions by endpoint host, or fails with the configured
// error for that host.
type Opener struct {
	mu       sync.Mutex
	Sessions map[string]*Session
	Errors   map[string]error
	Delays   map[string]time.Duration
	opened   []string
}

// Open implements session.Opener.
func (o *Opener) Open(ctx context.Context, ep session.Endpoint) (session.Session, error) {
	o.mu.Lock()
	o.opened = append(o.opened, ep.Host())
	d := o.Delays[ep.Host()]
	err := o.Errors[ep.Host()]
	s := o.Sessions[ep.Host()]
	o.mu.Unlock()

	if d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, &session.ConnectError{Address: ep.Address(), Reason: session.ReasonCanceled, Err: ctx.Err()}
		}
	}
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, &session.ConnectError{Address: ep.Address(), Reason: session.ReasonUnreachable, Err: errors.New("no route to host")}
	}
	return s, nil
}

// Opened returns the hosts Open was called for.
func (o *Opener) Opened() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.opened...)
}
