package session

import (
	"errors"
	"net"
	"strings"
)

const defaultPort = "22"

// Endpoint identifies one cluster and the credentials for it. It is
// immutable once built; use NewEndpoint.
type Endpoint struct {
	address  string
	username string
	secret   string
}

// NewEndpoint validates and normalizes an endpoint. An address without a
// port gets port 22.
func NewEndpoint(address, username, secret string) (Endpoint, error) {
	address = strings.TrimSpace(address)
	username = strings.TrimSpace(username)
	if address == "" {
		return Endpoint{}, errors.New("endpoint address is required")
	}
	if username == "" {
		return Endpoint{}, errors.New("endpoint username is required")
	}
	if _, _, err := net.SplitHostPort(address); err != nil {
		address = net.JoinHostPort(strings.Trim(address, "[]"), defaultPort)
	}
	return Endpoint{address: address, username: username, secret: secret}, nil
}

// Address returns host:port.
func (e Endpoint) Address() string { return e.address }

// Host returns the address without its port.
func (e Endpoint) Host() string {
	h, _, err := net.SplitHostPort(e.address)
	if err != nil {
		return e.address
	}
	return h
}

// Username returns the login name.
func (e Endpoint) Username() string { return e.username }

// Secret returns the password.
func (e Endpoint) Secret() string { return e.secret }

// String never includes the secret.
func (e Endpoint) String() string { return e.username + "@" + e.address }
