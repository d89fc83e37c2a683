package probes

import (
	"errors"
	"fmt"
	"net"

	"github.com/miekg/dns"

	"github.com/mt-inside/print-ip/pkg/state"
	"github.com/mt-inside/print-ip/pkg/utils"
)

// Var so tests can point it at a fixture.
var resolvConfPath = "/etc/resolv.conf"

// dnsServer picks the server to ask: the first nameserver in the conf.
// ClientConfigFromFile succeeds on a conf with no nameserver lines, so the
// empty case needs its own error.
func dnsServer(path string) (string, error) {
	dnsConfig, err := dns.ClientConfigFromFile(path)
	if err != nil {
		return "", err
	}
	if len(dnsConfig.Servers) == 0 {
		return "", errors.New("no nameservers in " + path)
	}
	return net.JoinHostPort(dnsConfig.Servers[0], dnsConfig.Port), nil
}

// DNSInfo prints what the echo service's name resolves to, v6 and v4.
// Purely informative; the resolve path uses the system resolver via
// net.Dialer, which also consults /etc/hosts etc, so answers can differ.
func DNSInfo(rD *state.RequestData) {
	utils.Banner("DNS (information only)")

	server, err := dnsServer(resolvConfPath)
	if ok := utils.CheckWarn(err); !ok {
		return
	}
	fmt.Fprintf(utils.Out, "DNS server: %s\n", utils.AddrStyle.Render(server))

	c := dns.Client{
		Dialer: &net.Dialer{Timeout: rD.Timeout},
	}

	for _, qtype := range []uint16{dns.TypeAAAA, dns.TypeA} {
		m := new(dns.Msg)
		m.SetQuestion(dns.Fqdn(rD.ServiceHost), qtype)

		in, _, err := c.Exchange(m, server)
		if ok := utils.CheckWarn(err); !ok {
			continue
		}

		var ips []net.IP
		for _, ans := range in.Answer {
			switch t := ans.(type) {
			case *dns.AAAA:
				ips = append(ips, t.AAAA)
			case *dns.A:
				ips = append(ips, t.A)
			}
		}

		fmt.Fprintf(utils.Out, "%s %s: %s\n",
			utils.AddrStyle.Render(rD.ServiceHost),
			utils.NounStyle.Render(dns.TypeToString[qtype]),
			utils.RenderIPList(ips),
		)
	}
}
