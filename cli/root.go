// Package cli is the terminal surface of the banking client: one cobra
// command per screen of the app.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"go-bank-client/client"
	"go-bank-client/session"
)

// CLI bundles the dependencies the commands share.
type CLI struct {
	api     *client.Client
	store   *session.Store
	txLimit int

	in  io.Reader
	out io.Writer
}

func New(api *client.Client, store *session.Store, txLimit int) *CLI {
	return &CLI{
		api:     api,
		store:   store,
		txLimit: txLimit,
		in:      os.Stdin,
		out:     os.Stdout,
	}
}

// Root builds the command tree.
func (c *CLI) Root() *cobra.Command {
	root := &cobra.Command{
		Use:   "go-bank-client",
		Short: "A terminal client for the personal banking service.",
		Long: `go-bank-client lets you view your accounts, review a grouped
transaction ledger, and move money between accounts. All account and
balance logic lives on the remote service; this client only calls it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.AddCommand(
		c.loginCmd(),
		c.logoutCmd(),
		c.registerCmd(),
		c.accountsCmd(),
		c.overviewCmd(),
		c.openCmd(),
		c.ledgerCmd(),
		c.transferCmd(),
		c.depositCmd(),
		c.withdrawCmd(),
	)
	return root
}

var errNoSession = errors.New("no active session, run 'go-bank-client login' first")

// requireSession gates authenticated commands. An expired token is as
// good as no token: the server would reject it anyway, so the user is
// sent to login without a round trip.
func (c *CLI) requireSession() error {
	token, err := c.store.Load()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return errNoSession
		}
		return err
	}
	if session.IsExpired(token, time.Now()) {
		return errors.New("session expired, run 'go-bank-client login' again")
	}
	return nil
}

// prompt prints a label and reads one trimmed line of input.
func (c *CLI) prompt(scanner *bufio.Scanner, label string) (string, error) {
	fmt.Fprintf(c.out, "%s: ", label)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// notice renders a blocking-notice message.
func (c *CLI) notice(message string) {
	fmt.Fprintf(c.out, "\n[notice] %s\n\n", message)
}
