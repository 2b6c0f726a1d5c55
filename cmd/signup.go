package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rkaranam/papertrade"
)

type signupCmd struct{}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "create a new user with an empty portfolio" }
func (*signupCmd) Usage() string {
	return `papertrade signup <username>

  Creates a new user in the user store. The password is prompted without
  echo and only its bcrypt hash is persisted.
`
}

func (*signupCmd) SetFlags(f *flag.FlagSet) {}

func (c *signupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	username := f.Arg(0)
	if username == "" {
		fmt.Fprintln(os.Stderr, "Error: missing <username> argument.")
		return subcommands.ExitUsageError
	}

	users, err := userStore().LoadAll()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, exists := users[username]; exists {
		fmt.Fprintf(os.Stderr, "Username %q already exists.\n", username)
		return subcommands.ExitFailure
	}

	secret, err := readSecret("Enter a password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	confirm, err := readSecret("Confirm password: ")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if secret != confirm {
		fmt.Fprintln(os.Stderr, "Passwords do not match.")
		return subcommands.ExitFailure
	}

	user, err := papertrade.NewUser(username, secret, papertrade.BcryptHasher{})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveUser(user, users); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Sign-up successful for %q.\n", username)
	return subcommands.ExitSuccess
}
