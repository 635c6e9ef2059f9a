package client

import (
	"context"
	"fmt"
	"net/http"

	"go-bank-client/common"
	"go-bank-client/logger"
	"go-bank-client/model"
)

// IAccountClient defines the contract for account calls.
type IAccountClient interface {
	ListAccounts(ctx context.Context) ([]model.Account, error)
	GetAccount(ctx context.Context, accountNumber string) (*model.Account, error)
	CreateAccount(ctx context.Context, req model.CreateAccountRequest) error
}

// ListAccounts fetches all accounts of the authenticated user.
func (c *Client) ListAccounts(ctx context.Context) ([]model.Account, error) {
	logger.Log.Debug("Fetching accounts")

	var accounts []model.Account
	if err := c.do(ctx, http.MethodGet, "/accounts/", nil, nil, &accounts); err != nil {
		logger.Log.WithError(err).Error("Failed to fetch accounts")
		return nil, err
	}
	return accounts, nil
}

// GetAccount fetches a single account snapshot.
func (c *Client) GetAccount(ctx context.Context, accountNumber string) (*model.Account, error) {
	log := logger.Log.WithField("account_number", accountNumber)
	log.Debug("Fetching account snapshot")

	var account model.Account
	if err := c.do(ctx, http.MethodGet, "/accounts/"+accountNumber, nil, nil, &account); err != nil {
		log.WithError(err).Error("Failed to fetch account snapshot")
		return nil, err
	}
	return &account, nil
}

// CreateAccount opens a new account at the named bank. The server keys
// on the bank's display name.
func (c *Client) CreateAccount(ctx context.Context, req model.CreateAccountRequest) error {
	if fieldErr := common.ValidateStruct(req); fieldErr != nil {
		return fmt.Errorf("invalid create account request: field %s failed on %s", fieldErr.Field(), fieldErr.Tag())
	}

	log := logger.Log.WithField("bank_name", req.BankName)
	log.Info("Creating account")

	if err := c.do(ctx, http.MethodPost, "/accounts/", nil, req, nil); err != nil {
		log.WithError(err).Error("Failed to create account")
		return err
	}
	return nil
}
