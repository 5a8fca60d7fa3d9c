// Package sshserv is a small in-process SSH server that impersonates a OneFS
// node for tests and local demos. Exec requests are answered from a table of
// canned responses; uploads through `cat > path` and `test -x path` checks
// are served from an in-memory file set.
package sshserv

import (
	"crypto/rand"
	"crypto/rsa"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/ssh"
)

// Response is the canned answer to one exact command line.
type Response struct {
	Output string
	// Stderr is written to the stderr stream before Output.
	Stderr string
	Exit   uint32
	// Delay holds the reply back; Hang keeps the channel open after the
	// output until the client goes away.
	Delay time.Duration
	Hang  bool
}

// Config controls authentication and replies.
type Config struct {
	// Password, when set, is required for password and keyboard-interactive
	// auth. Empty accepts any client without authentication.
	Password  string
	Responses map[string]Response
	// Files pre-seeds the in-memory filesystem (path -> content).
	Files map[string]string
}

// Server is a running test server.
type Server struct {
	ln    net.Listener
	cfg   Config
	files map[string][]byte
	mu    sync.Mutex
	execs []string
	done  chan struct{}
}

// Start launches a server on listenAddr (for example 127.0.0.1:0).
func Start(listenAddr string, cfg Config) (*Server, error) {
	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return nil, err
	}
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		_ = ln.Close()
		return nil, err
	}
	signer, err := ssh.NewSignerFromKey(priv)
	if err != nil {
		_ = ln.Close()
		return nil, err
	}

	sc := &ssh.ServerConfig{NoClientAuth: cfg.Password == ""}
	if cfg.Password != "" {
		sc.PasswordCallback = func(_ ssh.ConnMetadata, pw []byte) (*ssh.Permissions, error) {
			if string(pw) == cfg.Password {
				return nil, nil
			}
			return nil, errDenied
		}
		sc.KeyboardInteractiveCallback = func(_ ssh.ConnMetadata, ask ssh.KeyboardInteractiveChallenge) (*ssh.Permissions, error) {
			ans, err := ask("", "", []string{"Password: "}, []bool{false})
			if err == nil && len(ans) == 1 && ans[0] == cfg.Password {
				return nil, nil
			}
			return nil, errDenied
		}
	}
	sc.AddHostKey(signer)

	s := &Server{ln: ln, cfg: cfg, files: map[string][]byte{}, done: make(chan struct{})}
	for p, body := range cfg.Files {
		s.files[p] = []byte(body)
	}
	go func() {
		defer close(s.done)
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go s.handleConn(conn, sc)
		}
	}()
	return s, nil
}

// Addr returns the listening address.
func (s *Server) Addr() string { return s.ln.Addr().String() }

// Stop closes the listener and waits for the accept loop to exit.
func (s *Server) Stop() {
	_ = s.ln.Close()
	<-s.done
}

// Execs returns every exec line received, in order.
func (s *Server) Execs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.execs...)
}

// File returns the content stored at path.
func (s *Server) File(path string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.files[path]
	return b, ok
}

type deniedError struct{}

func (deniedError) Error() string { return "permission denied" }

var errDenied = deniedError{}

func (s *Server) handleConn(raw net.Conn, cfg *ssh.ServerConfig) {
	sc, chans, reqs, err := ssh.NewServerConn(raw, cfg)
	if err != nil {
		_ = raw.Close()
		return
	}
	defer func() { _ = sc.Close() }()
	go ssh.DiscardRequests(reqs)
	for ch := range chans {
		if ch.ChannelType() != "session" {
			_ = ch.Reject(ssh.UnknownChannelType, "")
			continue
		}
		c, in, err := ch.Accept()
		if err != nil {
			continue
		}
		go s.handleSession(c, in)
	}
}

func (s *Server) handleSession(ch ssh.Channel, in <-chan *ssh.Request) {
	defer func() { _ = ch.Close() }()
	for req := range in {
		if req.Type != "exec" {
			if req.WantReply {
				_ = req.Reply(false, nil)
			}
			continue
		}
		var payload struct{ Command string }
		if err := ssh.Unmarshal(req.Payload, &payload); err != nil {
			_ = req.Reply(false, nil)
			return
		}
		_ = req.Reply(true, nil)
		s.mu.Lock()
		s.execs = append(s.execs, payload.Command)
		s.mu.Unlock()
		code := s.exec(ch, in, payload.Command)
		_, _ = ch.SendRequest("exit-status", false, ssh.Marshal(struct{ Status uint32 }{code}))
		return
	}
}

func (s *Server) exec(ch ssh.Channel, in <-chan *ssh.Request, line string) uint32 {
	switch {
	case strings.HasPrefix(line, "cat > "):
		path := unquote(strings.SplitN(strings.TrimPrefix(line, "cat > "), " && ", 2)[0])
		body, err := io.ReadAll(ch)
		if err != nil {
			return 1
		}
		s.mu.Lock()
		s.files[path] = body
		s.mu.Unlock()
		return 0
	case strings.HasPrefix(line, "test -x "):
		if _, ok := s.File(unquote(strings.TrimPrefix(line, "test -x "))); ok {
			return 0
		}
		return 1
	}

	r, ok := s.cfg.Responses[line]
	if !ok {
		_, _ = ch.Stderr().Write([]byte("sh: " + line + ": command not found\n"))
		return 127
	}
	if r.Delay > 0 {
		time.Sleep(r.Delay)
	}
	if r.Stderr != "" {
		_, _ = ch.Stderr().Write([]byte(r.Stderr))
	}
	_, _ = ch.Write([]byte(r.Output))
	if r.Hang {
		// Requests stop once the client closes the channel.
		for req := range in {
			if req.WantReply {
				_ = req.Reply(false, nil)
			}
		}
	}
	return r.Exit
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return strings.ReplaceAll(s[1:len(s)-1], `'\''`, `'`)
	}
	return s
}
