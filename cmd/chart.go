package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/google/subcommands"
	"github.com/rkaranam/papertrade"
)

type chartCmd struct{}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "open the Yahoo Finance chart for a symbol" }
func (*chartCmd) Usage() string {
	return `papertrade chart <SYMBOL>

  Opens the Yahoo Finance chart page for a symbol in the default browser,
  or prints the URL when no browser can be started.
`
}

func (*chartCmd) SetFlags(f *flag.FlagSet) {}

func (c *chartCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol := f.Arg(0)
	if symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: missing <SYMBOL> argument.")
		return subcommands.ExitUsageError
	}

	addr := papertrade.ChartURL(symbol)
	if err := openBrowser(addr); err != nil {
		fmt.Println(addr)
	}
	return subcommands.ExitSuccess
}

func openBrowser(addr string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", addr)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", addr)
	default:
		cmd = exec.Command("xdg-open", addr)
	}
	return cmd.Start()
}
