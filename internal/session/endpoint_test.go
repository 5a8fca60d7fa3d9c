package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewEndpoint_DefaultsPort(t *testing.T) {
	ep, err := NewEndpoint(" 10.0.0.1 ", "monitor", "pw")
	require.NoError(t, err)
	require.Equal(t, "10.0.0.1:22", ep.Address())
	require.Equal(t, "10.0.0.1", ep.Host())
	require.Equal(t, "monitor", ep.Username())
	require.Equal(t, "pw", ep.Secret())
	require.Equal(t, "monitor@10.0.0.1:22", ep.String())
	require.NotContains(t, ep.String(), "pw")
}

func TestNewEndpoint_KeepsPortAndIPv6(t *testing.T) {
	ep, err := NewEndpoint("isilon01:2222", "u", "")
	require.NoError(t, err)
	require.Equal(t, "isilon01:2222", ep.Address())

	ep, err = NewEndpoint("fe80::1", "u", "")
	require.NoError(t, err)
	require.Equal(t, "[fe80::1]:22", ep.Address())
	require.Equal(t, "fe80::1", ep.Host())
}

func TestNewEndpoint_RequiresAddressAndUser(t *testing.T) {
	_, err := NewEndpoint("", "u", "p")
	require.Error(t, err)
	_, err = NewEndpoint("h", " ", "p")
	require.Error(t, err)
}
