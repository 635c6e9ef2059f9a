package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-bank-client/service"
)

func (c *CLI) ledgerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ledger <account-number>",
		Short: "Show an account's transaction history, grouped by date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}

			aggregator := service.NewLedgerAggregator(c.api, c.api, c.txLimit)
			ledger, err := aggregator.Load(cmd.Context(), args[0])
			if err != nil {
				c.notice("Could not load the ledger. Check your network connection.")
				return err
			}

			fmt.Fprintf(c.out, "%s\n%s\n%s\n\n",
				ledger.BankName, ledger.AccountNumber, formatWon(ledger.Balance))
			if len(ledger.Sections) == 0 {
				fmt.Fprintln(c.out, "No transactions yet.")
				return nil
			}
			c.renderSections(ledger.Sections)
			return nil
		},
	}
}

func (c *CLI) renderSections(sections []service.LedgerSection) {
	for _, section := range sections {
		fmt.Fprintf(c.out, "%s\n", section.Title)
		for _, entry := range section.Entries {
			sign := "+"
			if entry.Direction == service.DirectionDebit {
				sign = "-"
			}
			counterparty := entry.Counterparty
			if counterparty == "" {
				counterparty = "(unknown)"
			}
			bank := entry.CounterpartyBank
			if bank == "" {
				bank = "(unknown)"
			}
			fmt.Fprintf(c.out, "  %s  %-20s %-12s %s%s\n",
				entry.Time, counterparty, bank, sign, formatWon(entry.Amount))
		}
	}
}
