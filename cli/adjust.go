package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"go-bank-client/model"
)

func (c *CLI) depositCmd() *cobra.Command {
	return c.adjustCmd("deposit", "Deposit into an account",
		func(cmd *cobra.Command, req model.AdjustRequest) error {
			return c.api.Deposit(cmd.Context(), req)
		})
}

func (c *CLI) withdrawCmd() *cobra.Command {
	return c.adjustCmd("withdraw", "Withdraw from an account",
		func(cmd *cobra.Command, req model.AdjustRequest) error {
			return c.api.Withdraw(cmd.Context(), req)
		})
}

func (c *CLI) adjustCmd(use, short string, call func(*cobra.Command, model.AdjustRequest) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <account-number> <amount>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}

			amount, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil || amount <= 0 {
				return errors.New("enter a valid positive amount")
			}

			req := model.AdjustRequest{AccountNumber: args[0], Amount: amount}
			if err := call(cmd, req); err != nil {
				c.notice("No response from the server. Check your network connection.")
				return err
			}
			fmt.Fprintf(c.out, "Done: %s of %s.\n", use, formatWon(amount))
			return nil
		},
	}
	return cmd
}
