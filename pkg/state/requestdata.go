package state

import (
	"time"

	"github.com/spf13/viper"
)

// IPVersion selects the address family for a resolution attempt.
// VersionAuto means try 6 then 4, first success wins.
type IPVersion int

const (
	VersionAuto IPVersion = 0
	Version4    IPVersion = 4
	Version6    IPVersion = 6
)

// Network gives the name understood by net.Dial.
func (v IPVersion) Network() string {
	switch v {
	case Version4:
		return "tcp4"
	case Version6:
		return "tcp6"
	default:
		return "tcp"
	}
}

func (v IPVersion) String() string {
	switch v {
	case Version4:
		return "IPv4"
	case Version6:
		return "IPv6"
	default:
		return "auto"
	}
}

// RequestData is the run's immutable config, built once from the flags.
type RequestData struct {
	ServiceHost string
	ServicePort uint16

	// 0 means no deadline; the OS socket defaults apply. A status-bar
	// widget host typically wants a small non-zero value here.
	Timeout time.Duration

	FailureMessage string

	PrintDns bool
	Verbose  bool
	Debug    bool
}

func RequestDataFromViper() *RequestData {
	return &RequestData{
		ServiceHost:    viper.GetString("service"),
		ServicePort:    uint16(viper.GetUint32("port")),
		Timeout:        viper.GetDuration("timeout"),
		FailureMessage: viper.GetString("failure_message"),
		PrintDns:       viper.GetBool("dns"),
		Verbose:        viper.GetBool("verbose"),
		Debug:          viper.GetBool("debug"),
	}
}
