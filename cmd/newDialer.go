package cmd

import (
	"github.com/sirupsen/logrus"

	"github.com/vallentes/OneFS-Dashboard/internal/session"
)

// newDialer builds the SSH opener from the connection flags.
func newDialer(l logrus.FieldLogger) session.Opener {
	return &session.Dialer{
		ConnectTimeout: cfgConnTimeout,
		KnownHostsPath: cfgKnownHosts,
		StrictHostKey:  cfgStrictHost,
		Attempts:       cfgConnectAttempts,
		Log:            l,
	}
}
