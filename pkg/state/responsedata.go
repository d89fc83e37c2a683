package state

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/mt-inside/print-ip/pkg/utils"
)

// ResponseData accumulates what happened during one run: every family tried,
// the transport details of the attempt that connected, and whatever we could
// parse out of the response. One instance is threaded through all attempts of
// a run, so a failed v6 leg leaves its error here even after v4 succeeds.
type ResponseData struct {
	StartTime time.Time

	AttemptedVersions []IPVersion
	AttemptErrors     []error

	TransportConnTime   time.Time
	TransportRemoteAddr net.Addr
	TransportLocalAddr  net.Addr

	HttpProto         string
	HttpStatusCode    int
	HttpStatusMessage string

	RawResponse       []byte
	ResponseTruncated bool

	Address        string
	AddressVersion IPVersion
}

func NewResponseData() *ResponseData {
	return &ResponseData{StartTime: time.Now()}
}

// Print renders the verbose report. Stderr only; the caller owns stdout.
func (pD *ResponseData) Print(rD *RequestData) {
	utils.Banner("Attempts")

	for i, v := range pD.AttemptedVersions {
		if pD.AttemptErrors[i] == nil {
			fmt.Fprintf(utils.Out, "\t%s %s\n", utils.NounStyle.Render(v.String()), utils.SOk)
		} else {
			fmt.Fprintf(utils.Out, "\t%s %s %v\n", utils.NounStyle.Render(v.String()), utils.SWarning, pD.AttemptErrors[i])
		}
	}

	if pD.TransportRemoteAddr != nil {
		utils.Banner("TCP")

		fmt.Fprintf(utils.Out, "Stream established with %s (from %s) after %s\n",
			utils.AddrStyle.Render(pD.TransportRemoteAddr.String()),
			utils.AddrStyle.Render(pD.TransportLocalAddr.String()),
			utils.BrightStyle.Render(pD.TransportConnTime.Sub(pD.StartTime).String()),
		)
	}

	if pD.HttpProto != "" {
		utils.Banner("HTTP")

		fmt.Fprintf(utils.Out, "%s", utils.NounStyle.Render(pD.HttpProto))
		if pD.HttpStatusCode < 400 {
			fmt.Fprintf(utils.Out, " %s", utils.OkStyle.Render(pD.HttpStatusMessage))
		} else if pD.HttpStatusCode < 500 {
			fmt.Fprintf(utils.Out, " %s", utils.WarnStyle.Render(pD.HttpStatusMessage))
		} else {
			fmt.Fprintf(utils.Out, " %s", utils.FailStyle.Render(pD.HttpStatusMessage))
		}
		fmt.Fprintln(utils.Out)
		fmt.Fprintf(utils.Out, "\tread %s bytes (single recv); buffer filled (answer may be cut)? %s\n",
			utils.BrightStyle.Render(strconv.Itoa(len(pD.RawResponse))),
			utils.RenderYesNo(pD.ResponseTruncated),
		)
	}

	utils.Banner("Answer")

	if pD.Address != "" {
		fmt.Fprintf(utils.Out, "%s via %s\n", utils.AddrStyle.Render(pD.Address), utils.NounStyle.Render(pD.AddressVersion.String()))
	} else {
		fmt.Fprintf(utils.Out, "%s no address resolved; falling back to %s\n", utils.SWarning, utils.NounStyle.Render(rD.FailureMessage))
	}
}
