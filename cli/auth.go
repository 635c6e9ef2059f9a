package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-bank-client/model"
)

func (c *CLI) loginCmd() *cobra.Command {
	var phone, name string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := c.api.Login(cmd.Context(), model.LoginRequest{
				PhoneNumber: phone,
				Name:        name,
			})
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}
			if err := c.store.Save(resp.AccessToken); err != nil {
				return fmt.Errorf("could not persist session: %w", err)
			}
			fmt.Fprintln(c.out, "Logged in.")
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "Phone number, e.g. 010-1234-5678")
	cmd.Flags().StringVar(&name, "name", "", "Account holder name")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func (c *CLI) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.store.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(c.out, "Logged out.")
			return nil
		},
	}
}

func (c *CLI) registerCmd() *cobra.Command {
	var phone, name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a user, then log in separately",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.api.Register(cmd.Context(), model.RegisterRequest{
				PhoneNumber: phone,
				Name:        name,
			})
			if err != nil {
				return fmt.Errorf("registration failed: %w", err)
			}
			fmt.Fprintln(c.out, "Registered. Log in to continue.")
			return nil
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "Phone number, e.g. 010-1234-5678")
	cmd.Flags().StringVar(&name, "name", "", "Account holder name")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
