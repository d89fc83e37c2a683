package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	dmp "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mt-inside/print-ip/pkg/probes"
	"github.com/mt-inside/print-ip/pkg/state"
	"github.com/mt-inside/print-ip/pkg/utils"
)

/* Ask two different echo services for our public address and diff the
 * answers. Disagreement usually means split routing, a NAT pool, or an
 * intercepting proxy on one of the paths.
 */

func main() {

	cmd := &cobra.Command{
		Use:  "compare-ip refService testService",
		Args: cobra.ExactArgs(2),
		Run:  appMain,
	}

	cmd.Flags().Uint16P("port", "P", 80, "Echo service port (both services)")
	cmd.Flags().DurationP("timeout", "t", 5*time.Second, "Timeout for each individual network operation")
	err := viper.BindPFlags(cmd.Flags())
	if err != nil {
		panic(errors.New("Can't set up flags"))
	}

	err = cmd.Execute()
	if err != nil {
		fmt.Println("Error during execution:", err)
	}
}

func appMain(cmd *cobra.Command, args []string) {

	refAddr := fetch(args[0])
	testAddr := fetch(args[1])

	fmt.Printf("\n%s\n\n", utils.BrightStyle.Render("== Differences =="))

	differ := dmp.New()
	diffs := differ.DiffMain(refAddr, testAddr, true)

	if !(len(diffs) == 1 && diffs[0].Type == dmp.DiffEqual) {
		fmt.Printf("%s services disagree about our address\n", utils.SWarning)
		fmt.Println(differ.DiffPrettyText(diffs))
	} else {
		fmt.Printf("%s both services say %s\n", utils.SOk, utils.AddrStyle.Render(refAddr))
	}

	fmt.Println()

	os.Exit(0)
}

func fetch(service string) string {

	rD := &state.RequestData{
		ServiceHost: service,
		ServicePort: uint16(viper.GetUint32("port")),
		Timeout:     viper.GetDuration("timeout"),
	}
	pD := state.NewResponseData()

	fmt.Printf("%s %s\n", utils.STrying, utils.AddrStyle.Render(service))

	addr, err := probes.ResolveAuto(rD, pD)
	if !utils.CheckWarn(err) {
		return "<unreachable>"
	}

	return addr
}
