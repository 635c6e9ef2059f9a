package client

import (
	"context"
	"net/http"

	"go-bank-client/logger"
	"go-bank-client/model"
)

// IBankClient defines the contract for bank catalog calls.
type IBankClient interface {
	ListBanks(ctx context.Context) (*model.BankCatalog, error)
}

// ListBanks fetches the three categorized bank lists.
func (c *Client) ListBanks(ctx context.Context) (*model.BankCatalog, error) {
	logger.Log.Debug("Fetching bank catalog")

	var catalog model.BankCatalog
	if err := c.do(ctx, http.MethodGet, "/banks/", nil, nil, &catalog); err != nil {
		logger.Log.WithError(err).Error("Failed to fetch bank catalog")
		return nil, err
	}
	return &catalog, nil
}
