// Package cmd implements the CLI application to manage a simulated
// equity portfolio.
package cmd

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rkaranam/papertrade"
	"golang.org/x/term"
)

// Register the subcommands.
// A main package calls Register() and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&signupCmd{}, "users")
	c.Register(&resetCmd{}, "users")

	c.Register(newBuyCmd(), "trading")
	c.Register(newSellCmd(), "trading")

	c.Register(&holdingsCmd{}, "reports")
	c.Register(&tradesCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var usersFile = flag.String("users-file", "users.json", "Path to the user store file (JSON)")
var tradesDir = flag.String("trades-dir", ".", "Directory holding the per-user trade ledger files (CSV)")

// prices is the market data provider used by all commands.
var prices papertrade.PriceLookup = papertrade.NewYahooProvider()

func userStore() *papertrade.FileUserStore {
	return papertrade.NewFileUserStore(*usersFile)
}

func tradeLog() *papertrade.FileTradeLog {
	return papertrade.NewFileTradeLog(*tradesDir)
}

// readSecret prompts on stderr and reads a secret without echoing it
// back when stdin is a terminal.
func readSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		secret, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		return string(secret), err
	}
	// piped stdin, as used in scripts
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// login loads the user store and authenticates. It returns the user and
// the full store map, so that callers can write the user back with saveUser.
func login(username string) (*papertrade.User, map[string]papertrade.UserSnapshot, error) {
	if username == "" {
		return nil, nil, errors.New("missing -u <username>")
	}
	users, err := userStore().LoadAll()
	if err != nil {
		return nil, nil, err
	}
	snapshot, exists := users[username]

	secret, err := readSecret("Password: ")
	if err != nil {
		return nil, nil, err
	}
	// verify even for unknown usernames, so both failures look the same
	if !exists || !(papertrade.BcryptHasher{}).Verify(snapshot.CredentialHash, secret) {
		return nil, nil, errors.New("invalid username or password")
	}

	user, err := papertrade.UserFromSnapshot(username, snapshot)
	if err != nil {
		return nil, nil, err
	}
	return user, users, nil
}

// saveUser writes the user snapshot back into the store.
func saveUser(user *papertrade.User, users map[string]papertrade.UserSnapshot) error {
	users[user.Username] = user.Snapshot()
	return userStore().SaveAll(users)
}
