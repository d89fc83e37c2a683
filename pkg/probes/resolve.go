package probes

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/mt-inside/print-ip/pkg/parser"
	"github.com/mt-inside/print-ip/pkg/state"
)

// One recv only; a response needing more than one buffer comes back
// truncated. Only the last line read matters, so this is accepted.
const readBufLen = 2048

// Resolve makes one attempt over the given family: dial the echo service,
// send a fixed HTTP/1.1 GET, read one buffer, take the last body line.
// Every failure mode (resolution, refusal, timeout, garbled response)
// collapses into a flat error; callers only care whether to try the next
// family or fall back to the canned message.
func Resolve(rD *state.RequestData, pD *state.ResponseData, version state.IPVersion) (addr string, err error) {
	defer func() {
		pD.AttemptedVersions = append(pD.AttemptedVersions, version)
		pD.AttemptErrors = append(pD.AttemptErrors, err)
	}()

	d := net.Dialer{Timeout: rD.Timeout}
	conn, err := d.Dial(version.Network(), net.JoinHostPort(rD.ServiceHost, strconv.Itoa(int(rD.ServicePort))))
	if err != nil {
		return "", err
	}
	defer conn.Close()

	pD.TransportConnTime = time.Now()
	pD.TransportRemoteAddr = conn.RemoteAddr()
	pD.TransportLocalAddr = conn.LocalAddr()

	if rD.Timeout != 0 {
		if err = conn.SetDeadline(time.Now().Add(rD.Timeout)); err != nil {
			return "", err
		}
	}

	if _, err = fmt.Fprintf(conn, "GET / HTTP/1.1\r\nHost: %s\r\n\r\n", rD.ServiceHost); err != nil {
		return "", err
	}

	buf := make([]byte, readBufLen)
	n, err := conn.Read(buf)
	if err != nil {
		return "", err
	}
	pD.RawResponse = buf[:n]
	pD.ResponseTruncated = n == readBufLen

	if proto, code, msg, ok := parser.StatusLine(pD.RawResponse); ok {
		pD.HttpProto = proto
		pD.HttpStatusCode = code
		pD.HttpStatusMessage = msg
	}

	addr, ok := parser.LastLine(pD.RawResponse)
	if !ok {
		return "", errors.New("no address line in response")
	}

	pD.Address = addr
	pD.AddressVersion = version
	return addr, nil
}

// ResolveAuto tries IPv6 then IPv4. First success wins; the v4 leg is never
// dialled if v6 answers.
func ResolveAuto(rD *state.RequestData, pD *state.ResponseData) (string, error) {
	for _, version := range []state.IPVersion{state.Version6, state.Version4} {
		if addr, err := Resolve(rD, pD, version); err == nil {
			return addr, nil
		}
	}
	return "", errors.New("unreachable over both IPv6 and IPv4")
}
