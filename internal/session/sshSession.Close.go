package session

// Close closes the underlying SSH connection once; later calls return the
// first result.
func (s *sshSession) Close() error {
	s.closeOnce.Do(func() {
		s.closed.Store(true)
		if s.c != nil {
			s.closeErr = s.c.Close()
		}
	})
	return s.closeErr
}
