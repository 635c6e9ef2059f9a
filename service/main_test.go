package service

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/mock"

	"go-bank-client/logger"
	"go-bank-client/model"
)

// TestMain runs setup before any tests in this package are executed.
func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// MockAccountClient is a mock for client.IAccountClient.
type MockAccountClient struct{ mock.Mock }

func (m *MockAccountClient) ListAccounts(ctx context.Context) ([]model.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Account), args.Error(1)
}

func (m *MockAccountClient) GetAccount(ctx context.Context, accountNumber string) (*model.Account, error) {
	args := m.Called(ctx, accountNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountClient) CreateAccount(ctx context.Context, req model.CreateAccountRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockTransactionClient is a mock for client.ITransactionClient.
type MockTransactionClient struct{ mock.Mock }

func (m *MockTransactionClient) ListTransactions(ctx context.Context, accountNumber string, limit int) ([]model.Transaction, error) {
	args := m.Called(ctx, accountNumber, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Transaction), args.Error(1)
}

func (m *MockTransactionClient) Transfer(ctx context.Context, req model.TransferRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// Unused methods needed to satisfy the interface
func (m *MockTransactionClient) Deposit(context.Context, model.AdjustRequest) error  { return nil }
func (m *MockTransactionClient) Withdraw(context.Context, model.AdjustRequest) error { return nil }

// MockBankClient is a mock for client.IBankClient.
type MockBankClient struct{ mock.Mock }

func (m *MockBankClient) ListBanks(ctx context.Context) (*model.BankCatalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BankCatalog), args.Error(1)
}
