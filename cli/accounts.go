package cli

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"go-bank-client/model"
	"go-bank-client/service"
)

func (c *CLI) accountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "List your accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			accounts, err := c.api.ListAccounts(cmd.Context())
			if err != nil {
				return fmt.Errorf("could not load accounts: %w", err)
			}
			if len(accounts) == 0 {
				fmt.Fprintln(c.out, "No accounts yet. Open one with 'go-bank-client open'.")
				return nil
			}
			for _, account := range accounts {
				fmt.Fprintf(c.out, "%s  %s  %s\n",
					account.BankName, account.AccountNumber, formatWon(account.Balance))
			}
			return nil
		},
	}
}

// overviewCmd is the home summary: the account list plus the recent
// activity of the first account, built by the ledger aggregator.
func (c *CLI) overviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overview",
		Short: "Home summary: accounts and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}
			accounts, err := c.api.ListAccounts(cmd.Context())
			if err != nil {
				return fmt.Errorf("could not load accounts: %w", err)
			}
			for _, account := range accounts {
				fmt.Fprintf(c.out, "%s  %s  %s\n",
					account.BankName, account.AccountNumber, formatWon(account.Balance))
			}
			if len(accounts) == 0 {
				fmt.Fprintln(c.out, "No accounts yet. Open one with 'go-bank-client open'.")
				return nil
			}

			aggregator := service.NewLedgerAggregator(c.api, c.api, c.txLimit)
			ledger, err := aggregator.Load(cmd.Context(), accounts[0].AccountNumber)
			if err != nil {
				c.notice("Could not load recent activity. Check your network connection.")
				return nil
			}
			fmt.Fprintf(c.out, "\nRecent activity — %s\n", ledger.AccountNumber)
			c.renderSections(ledger.Sections)
			return nil
		},
	}
}

func (c *CLI) openCmd() *cobra.Command {
	var bankName string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a new account at a chosen bank",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}

			directory := service.NewBankDirectory(c.api)
			banks := directory.List(cmd.Context())

			if bankName == "" {
				scanner := bufio.NewScanner(c.in)
				for i, bank := range banks {
					fmt.Fprintf(c.out, "%2d. %s\n", i+1, bank.Name)
				}
				choice, err := c.prompt(scanner, "Bank")
				if err != nil {
					return err
				}
				bankName = resolveBank(banks, choice)
			}

			err := c.api.CreateAccount(cmd.Context(), model.CreateAccountRequest{BankName: bankName})
			if err != nil {
				return fmt.Errorf("could not open account: %w", err)
			}
			fmt.Fprintln(c.out, "Account opened.")
			return nil
		},
	}

	cmd.Flags().StringVar(&bankName, "bank", "", "Bank display name (prompts when omitted)")
	return cmd
}

// resolveBank accepts either a 1-based list index or a bank's display
// name, returning the display name either way. The wire contract is
// name-keyed, so the name is what moves on.
func resolveBank(banks []model.Bank, choice string) string {
	if i, err := strconv.Atoi(choice); err == nil && i >= 1 && i <= len(banks) {
		return banks[i-1].Name
	}
	return choice
}
