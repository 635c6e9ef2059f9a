package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"

	"go-bank-client/common"
	"go-bank-client/logger"
	"go-bank-client/model"
)

// ITransactionClient defines the contract for transaction calls.
type ITransactionClient interface {
	ListTransactions(ctx context.Context, accountNumber string, limit int) ([]model.Transaction, error)
	Transfer(ctx context.Context, req model.TransferRequest) error
	Deposit(ctx context.Context, req model.AdjustRequest) error
	Withdraw(ctx context.Context, req model.AdjustRequest) error
}

// ListTransactions fetches the latest transactions for an account, in
// the order the server returns them (most recent first).
func (c *Client) ListTransactions(ctx context.Context, accountNumber string, limit int) ([]model.Transaction, error) {
	log := logger.Log.WithFields(logrus.Fields{
		"account_number": accountNumber,
		"limit":          limit,
	})
	log.Debug("Fetching transactions")

	query := url.Values{}
	query.Set("account_number", accountNumber)
	query.Set("limit", strconv.Itoa(limit))

	var transactions []model.Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions/", query, nil, &transactions); err != nil {
		log.WithError(err).Error("Failed to fetch transactions")
		return nil, err
	}
	return transactions, nil
}

// Transfer executes a money transfer. The request is validated once more
// at the wire boundary; the transfer workflow has already produced its
// user-facing validation by the time this runs.
func (c *Client) Transfer(ctx context.Context, req model.TransferRequest) error {
	if fieldErr := common.ValidateStruct(req); fieldErr != nil {
		return fmt.Errorf("invalid transfer request: field %s failed on %s", fieldErr.Field(), fieldErr.Tag())
	}

	log := logger.Log.WithFields(logrus.Fields{
		"from_account": req.FromAccount,
		"to_account":   req.ToAccount,
		"amount":       req.Amount,
	})
	log.Info("Submitting transfer")

	if err := c.do(ctx, http.MethodPost, "/transactions/transfer", nil, req, nil); err != nil {
		log.WithError(err).Warn("Transfer submission failed")
		return err
	}
	log.Info("Transfer accepted by server")
	return nil
}

// Deposit adds funds to a single account.
func (c *Client) Deposit(ctx context.Context, req model.AdjustRequest) error {
	return c.adjust(ctx, "/transactions/deposit", req)
}

// Withdraw removes funds from a single account.
func (c *Client) Withdraw(ctx context.Context, req model.AdjustRequest) error {
	return c.adjust(ctx, "/transactions/withdraw", req)
}

func (c *Client) adjust(ctx context.Context, path string, req model.AdjustRequest) error {
	if fieldErr := common.ValidateStruct(req); fieldErr != nil {
		return fmt.Errorf("invalid request: field %s failed on %s", fieldErr.Field(), fieldErr.Tag())
	}

	log := logger.Log.WithFields(logrus.Fields{
		"account_number": req.AccountNumber,
		"amount":         req.Amount,
	})
	log.Info("Submitting balance adjustment")

	if err := c.do(ctx, http.MethodPost, path, nil, req, nil); err != nil {
		log.WithError(err).Warn("Balance adjustment failed")
		return err
	}
	return nil
}
