package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"go-bank-client/service"
)

func (c *CLI) transferCmd() *cobra.Command {
	var (
		toAccount string
		toBank    string
		amount    string
	)

	cmd := &cobra.Command{
		Use:   "transfer <from-account>",
		Short: "Move money from one of your accounts",
		Long: `Starts the transfer flow for the given source account. With --to,
--bank and --amount the draft is submitted directly; otherwise an
interactive keypad session runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireSession(); err != nil {
				return err
			}

			directory := service.NewBankDirectory(c.api)
			workflow := service.NewTransferWorkflow(c.api, c.api, directory)
			workflow.Start(cmd.Context(), args[0])

			if toAccount != "" || toBank != "" || amount != "" {
				return c.submitDirect(cmd, workflow, toAccount, toBank, amount)
			}
			return c.runKeypadSession(cmd, workflow)
		},
	}

	cmd.Flags().StringVar(&toAccount, "to", "", "Destination account number")
	cmd.Flags().StringVar(&toBank, "bank", "", "Destination bank display name")
	cmd.Flags().StringVar(&amount, "amount", "", "Amount in won, digits only")
	return cmd
}

// submitDirect drives the workflow from flags: one confirmation, one
// submission, same validation and error classification as the
// interactive path.
func (c *CLI) submitDirect(cmd *cobra.Command, workflow *service.TransferWorkflow, toAccount, toBank, amount string) error {
	workflow.SetDestination(toAccount)
	workflow.SelectBank(resolveBank(workflow.Banks(), toBank))
	for _, digit := range amount {
		workflow.AppendAmount(string(digit))
	}

	confirmation, err := workflow.Confirm(cmd.Context())
	if err != nil {
		var fieldErr *service.FieldError
		var transferErr *service.TransferError
		switch {
		case errors.As(err, &fieldErr):
			c.notice(fieldErr.Message)
		case errors.As(err, &transferErr):
			c.notice(transferErr.Message())
		}
		return err
	}
	c.renderConfirmation(confirmation)
	return nil
}

// runKeypadSession is the interactive transfer screen: destination and
// bank prompts, then a keypad loop until the draft is confirmed or the
// user quits. Validation and submission failures surface as notices and
// leave the draft intact for correction.
func (c *CLI) runKeypadSession(cmd *cobra.Command, workflow *service.TransferWorkflow) error {
	scanner := bufio.NewScanner(c.in)
	draft := workflow.Draft()

	fmt.Fprintf(c.out, "Sending from %s %s\n\n", draft.FromBankName, draft.FromAccount)

	destination, err := c.prompt(scanner, "Destination account")
	if err != nil {
		return err
	}
	workflow.SetDestination(destination)

	for i, bank := range workflow.Banks() {
		fmt.Fprintf(c.out, "%2d. %s\n", i+1, bank.Name)
	}
	choice, err := c.prompt(scanner, "Bank")
	if err != nil {
		return err
	}
	workflow.SelectBank(resolveBank(workflow.Banks(), choice))

	fmt.Fprintln(c.out, "\nKeypad: digits or 00 to append, b backspace, ok confirm, q quit")
	for {
		fmt.Fprintf(c.out, "Amount: %s원\n", draft.Amount.Display())

		key, err := c.prompt(scanner, "Key")
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch key {
		case "q":
			fmt.Fprintln(c.out, "Transfer cancelled.")
			return nil
		case "b":
			workflow.BackspaceAmount()
		case "ok":
			confirmation, err := workflow.Confirm(cmd.Context())
			if err != nil {
				var fieldErr *service.FieldError
				var transferErr *service.TransferError
				switch {
				case errors.As(err, &fieldErr):
					c.notice(fieldErr.Message)
				case errors.As(err, &transferErr):
					c.notice(transferErr.Message())
				default:
					return err
				}
				continue
			}
			c.renderConfirmation(confirmation)
			return nil
		default:
			if isKeypadToken(key) {
				workflow.AppendAmount(key)
			} else {
				c.notice("Unknown key. Use digits, 00, b, ok or q.")
			}
		}
	}
}

// isKeypadToken accepts exactly what the keypad offers: a single digit
// or the 00 convenience token.
func isKeypadToken(key string) bool {
	if key == "00" {
		return true
	}
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}

// renderConfirmation plays the confirmation view's entry transition and
// waits for the single acknowledge action.
func (c *CLI) renderConfirmation(confirmation *service.Confirmation) {
	start := time.Now()
	for {
		elapsed := time.Since(start)
		if confirmation.OpacityAt(elapsed) >= 1 {
			break
		}
		time.Sleep(service.FadeInDuration / 10)
	}

	fmt.Fprintf(c.out, "\nSent %s to %s %s.\n",
		formatWon(confirmation.Amount), confirmation.ToBank, confirmation.ToAccount)

	route := confirmation.Acknowledge()
	fmt.Fprintf(c.out, "Back to %s.\n", route)
}
