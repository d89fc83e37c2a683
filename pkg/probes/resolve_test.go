package probes

import (
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mt-inside/print-ip/pkg/state"
)

const cannedV4 = "HTTP/1.1 200 OK\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n203.0.113.7\n"
const cannedV6 = "HTTP/1.1 200 OK\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n2001:db8::1\n"

// Minimal stand-in for the echo service: read the request, write a canned
// response, hang up.
func serveCanned(t *testing.T, network, addr, payload string) *net.TCPAddr {
	t.Helper()

	l, err := net.Listen(network, addr)
	if err != nil {
		t.Skipf("can't listen on %s %s: %v", network, addr, err)
	}
	t.Cleanup(func() { l.Close() })

	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			buf := make([]byte, 1024)
			_, _ = conn.Read(buf)
			_, _ = conn.Write([]byte(payload))
			conn.Close()
		}
	}()

	return l.Addr().(*net.TCPAddr)
}

func TestResolve(t *testing.T) {
	addr := serveCanned(t, "tcp4", "127.0.0.1:0", cannedV4)

	rD := &state.RequestData{ServiceHost: "127.0.0.1", ServicePort: uint16(addr.Port)}
	pD := state.NewResponseData()

	got, err := Resolve(rD, pD, state.Version4)

	require.NoError(t, err)
	require.Equal(t, "203.0.113.7", got)
	require.Equal(t, state.Version4, pD.AddressVersion)
	require.Equal(t, 200, pD.HttpStatusCode)
	require.Equal(t, "HTTP/1.1", pD.HttpProto)
	require.False(t, pD.ResponseTruncated)
}

func TestResolveConnectionRefused(t *testing.T) {
	// Grab a free port, then close it again so nothing answers there.
	l, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	rD := &state.RequestData{ServiceHost: "127.0.0.1", ServicePort: uint16(port)}
	pD := state.NewResponseData()

	_, err = Resolve(rD, pD, state.Version4)

	require.Error(t, err)
	require.Equal(t, []state.IPVersion{state.Version4}, pD.AttemptedVersions)
	require.Error(t, pD.AttemptErrors[0])
}

func TestResolveNoAddressLine(t *testing.T) {
	addr := serveCanned(t, "tcp4", "127.0.0.1:0", "\r\n\r\n\n")

	rD := &state.RequestData{ServiceHost: "127.0.0.1", ServicePort: uint16(addr.Port)}
	pD := state.NewResponseData()

	_, err := Resolve(rD, pD, state.Version4)

	require.Error(t, err)
}

func TestResolveAutoFallsBackToV4(t *testing.T) {
	// The v6 leg can't dial an IPv4 literal, so it fails without any
	// server involvement and auto must fall through to v4.
	addr := serveCanned(t, "tcp4", "127.0.0.1:0", cannedV4)

	rD := &state.RequestData{ServiceHost: "127.0.0.1", ServicePort: uint16(addr.Port)}
	pD := state.NewResponseData()

	got, err := ResolveAuto(rD, pD)

	require.NoError(t, err)
	require.Equal(t, "203.0.113.7", got)
	require.Equal(t, []state.IPVersion{state.Version6, state.Version4}, pD.AttemptedVersions)
	require.Error(t, pD.AttemptErrors[0])
	require.NoError(t, pD.AttemptErrors[1])
	require.Equal(t, state.Version4, pD.AddressVersion)
}

func TestResolveAutoShortCircuits(t *testing.T) {
	// Skips where loopback has no v6.
	addr := serveCanned(t, "tcp6", "[::1]:0", cannedV6)

	rD := &state.RequestData{ServiceHost: "::1", ServicePort: uint16(addr.Port)}
	pD := state.NewResponseData()

	got, err := ResolveAuto(rD, pD)

	require.NoError(t, err)
	require.Equal(t, "2001:db8::1", got)
	require.Equal(t, []state.IPVersion{state.Version6}, pD.AttemptedVersions)
	require.Equal(t, state.Version6, pD.AddressVersion)
}

func TestResolveAutoBothFail(t *testing.T) {
	l, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())

	rD := &state.RequestData{ServiceHost: "127.0.0.1", ServicePort: uint16(port)}
	pD := state.NewResponseData()

	_, err = ResolveAuto(rD, pD)

	require.Error(t, err)
	require.Equal(t, []state.IPVersion{state.Version6, state.Version4}, pD.AttemptedVersions)
	require.Empty(t, pD.Address)
}
