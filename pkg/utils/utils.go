package utils

import (
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// All diagnostic rendering goes to stderr; stdout is reserved for the single
// answer line.
var Out = os.Stderr

var (
	InfoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	FailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	OkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	WarnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	AddrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	VerbStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	NounStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	BrightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))

	SInfo    = InfoStyle.Copy().Bold(true).Render("Info:")
	STrying  = BrightStyle.Copy().Bold(true).Render("Trying:")
	SOk      = OkStyle.Copy().Bold(true).Render("Ok:")
	SWarning = WarnStyle.Copy().Bold(true).Render("Warning:")
	SError   = FailStyle.Copy().Bold(true).Render("Error:")

	SYes = OkStyle.Copy().Bold(true).Render("yes")
	SNo  = FailStyle.Copy().Bold(true).Render("no")
)

func RenderYesNo(test bool) string {
	if test {
		return SYes
	}
	return SNo
}

func RenderList(ss []string) string {
	if len(ss) == 0 {
		return InfoStyle.Render("<none>")
	}
	return strings.Join(ss, ", ")
}

func RenderIPList(ips []net.IP) string {
	var ss []string
	for _, ip := range ips {
		ss = append(ss, AddrStyle.Render(ip.String()))
	}
	return RenderList(ss)
}

func CheckInfo(err error) bool {
	if err != nil {
		fmt.Fprintf(Out, "%s %v\n", SInfo, err)
		return false
	}
	return true
}

func CheckWarn(err error) bool {
	if err != nil {
		fmt.Fprintf(Out, "%s %v\n", SWarning, err)
		return false
	}
	return true
}

func CheckErr(err error) {
	if err != nil {
		fmt.Fprintf(Out, "%s %v\n", SError, err)
		panic(err)
	}
}

func Banner(s string) {
	fmt.Fprintln(Out)
	fmt.Fprintln(Out, BrightStyle.Render(fmt.Sprintf("== %s ==", s)))
	fmt.Fprintln(Out)
}
