package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type resetCmd struct {
	username string
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "clear all holdings of a user" }
func (*resetCmd) Usage() string {
	return `papertrade reset -u <username>

  Clears the user's portfolio unconditionally and persists the empty
  snapshot. The trade ledger is kept: it is append-only history.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "u", "", "username whose portfolio to reset")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	user, users, err := login(c.username)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	user.Portfolio.Reset()
	if err := saveUser(user, users); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Println("Portfolio has been reset.")
	return subcommands.ExitSuccess
}
