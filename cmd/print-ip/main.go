package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mt-inside/print-ip/internal/build"
	"github.com/mt-inside/print-ip/pkg/probes"
	"github.com/mt-inside/print-ip/pkg/state"
)

func init() {
	spew.Config.DisableMethods = true
	spew.Config.DisablePointerMethods = true
}

func main() {

	cmd := &cobra.Command{
		Use:     build.Name,
		Short:   "Print the public IP address of this host",
		Version: build.Version,
		Args:    cobra.NoArgs,
		Run:     appMain,
	}

	cmd.Flags().BoolP("auto", "a", false, "Try IPv6 first, fall back to IPv4 (the default)")
	cmd.Flags().BoolP("ipv4", "4", false, "Resolve the IPv4 address only")
	cmd.Flags().BoolP("ipv6", "6", false, "Resolve the IPv6 address only")
	cmd.Flags().StringP("failure_message", "f", "service unreachable", "Line to print when no address can be resolved")
	cmd.Flags().DurationP("timeout", "t", 0, "Timeout per network operation; 0 leaves the OS socket defaults")
	cmd.Flags().StringP("service", "s", "icanhazip.com", "Echo service host")
	cmd.Flags().Uint16P("port", "P", 80, "Echo service port")
	cmd.Flags().Bool("dns", false, "Print what the service host resolves to (stderr)")
	cmd.Flags().BoolP("verbose", "v", false, "Print a transport/HTTP summary (stderr)")
	cmd.Flags().Bool("debug", false, "Dump internal state (stderr)")
	cmd.MarkFlagsMutuallyExclusive("auto", "ipv4", "ipv6")
	err := viper.BindPFlags(cmd.Flags())
	if err != nil {
		panic(errors.New("Can't set up flags"))
	}

	err = cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error during execution:", err)
	}

	// A widget host must never see a non-zero exit, whatever happened.
	os.Exit(0)
}

func appMain(cmd *cobra.Command, args []string) {

	rD := state.RequestDataFromViper()
	pD := state.NewResponseData()

	version := state.VersionAuto
	if viper.GetBool("ipv4") {
		version = state.Version4
	} else if viper.GetBool("ipv6") {
		version = state.Version6
	}

	if rD.PrintDns {
		probes.DNSInfo(rD)
	}

	addr := resolveLine(rD, pD, version)

	if rD.Verbose {
		pD.Print(rD)
	}
	if rD.Debug {
		spew.Fdump(os.Stderr, pD)
	}

	// The one line the status bar consumes. Nothing else may reach stdout.
	fmt.Println(addr)
}

// resolveLine gives the line to print: the resolved address, or the canned
// failure message when the requested resolution fails.
func resolveLine(rD *state.RequestData, pD *state.ResponseData, version state.IPVersion) string {
	var addr string
	var err error
	if version == state.VersionAuto {
		addr, err = probes.ResolveAuto(rD, pD)
	} else {
		addr, err = probes.Resolve(rD, pD, version)
	}
	if err != nil {
		return rD.FailureMessage
	}
	return addr
}
