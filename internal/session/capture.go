package session

import (
	"bytes"
	"sync"
)

// capture collects stdout and stderr from one command. When until is set,
// Seen is closed once a full line containing it has been written.
type capture struct {
	mu    sync.Mutex
	buf   bytes.Buffer
	until []byte
	fired bool
	seen  chan struct{}
}

func newCapture(until string) *capture {
	c := &capture{seen: make(chan struct{})}
	if until != "" {
		c.until = []byte(until)
	}
	return c
}

func (c *capture) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n, _ := c.buf.Write(p)
	if c.until != nil && !c.fired {
		b := c.buf.Bytes()
		if i := bytes.Index(b, c.until); i >= 0 && bytes.IndexByte(b[i:], '\n') >= 0 {
			c.fired = true
			close(c.seen)
		}
	}
	return n, nil
}

// Bytes returns a copy of everything written so far.
func (c *capture) Bytes() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]byte(nil), c.buf.Bytes()...)
}

// Seen is closed when the until marker line has been received.
func (c *capture) Seen() <-chan struct{} { return c.seen }
