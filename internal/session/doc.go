// Package session owns the remote-command channel to one cluster.
//
// A Session is opened from an Endpoint by an Opener, runs one command at a
// time, can upload a small file, and is closed exactly once no matter how
// many times Close is called. The SSH implementation (Dialer) maps every
// connect failure onto a *ConnectError with a Reason so callers never see a
// half-connected handle.
package session
