package service

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"go-bank-client/common"
	"go-bank-client/model"
)

func draftWith(from, to, bank, buffer string) *TransferDraft {
	draft := &TransferDraft{
		FromAccount: from,
		ToAccount:   to,
		ToBank:      bank,
	}
	for _, digit := range buffer {
		draft.Amount.Append(string(digit))
	}
	return draft
}

func TestTransferDraft_Validate_Ordering(t *testing.T) {
	tests := []struct {
		name  string
		draft *TransferDraft
		field DraftField
	}{
		{"everything missing reports source first", draftWith("", "", "", ""), FieldSource},
		{"blank source reports source regardless of the rest", draftWith("   ", "200", "X", "5000"), FieldSource},
		{"missing destination", draftWith("100", "", "X", "5000"), FieldDestination},
		{"blank destination", draftWith("100", "  ", "X", "5000"), FieldDestination},
		{"missing bank only after both accounts present", draftWith("100", "200", "", "5000"), FieldBank},
		{"placeholder bank counts as unselected", draftWith("100", "200", BankPlaceholder, "5000"), FieldBank},
		{"empty amount buffer", draftWith("100", "200", "X", ""), FieldAmount},
		{"zero amount", draftWith("100", "200", "X", "0"), FieldAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Validate()
			assert.NotNil(t, err)
			assert.Equal(t, tt.field, err.Field)
			assert.Equal(t, draftMessages[tt.field], err.Message)
		})
	}
}

func TestTransferDraft_Validate_Ok(t *testing.T) {
	assert.Nil(t, draftWith("100", "200", "X", "5000").Validate())
}

func TestClassifyTransferError(t *testing.T) {
	t.Run("insufficient balance detail", func(t *testing.T) {
		err := ClassifyTransferError(common.NewAPIError(400, "Insufficient balance"))
		assert.Equal(t, KindInsufficientBalance, err.Kind)
		assert.Equal(t, "Insufficient balance.", err.Message())
	})

	t.Run("other detail surfaces verbatim", func(t *testing.T) {
		err := ClassifyTransferError(common.NewAPIError(404, "Receiver account not found"))
		assert.Equal(t, KindServerRejected, err.Kind)
		assert.Equal(t, "Receiver account not found", err.Message())
	})

	t.Run("response without usable detail", func(t *testing.T) {
		err := ClassifyTransferError(common.NewAPIError(502, ""))
		assert.Equal(t, KindUnreachable, err.Kind)
	})

	t.Run("transport failure", func(t *testing.T) {
		raw := &url.Error{Op: "Post", URL: "http://localhost", Err: errors.New("connection refused")}
		err := ClassifyTransferError(raw)
		assert.Equal(t, KindUnreachable, err.Kind)
	})

	t.Run("anything else is unknown", func(t *testing.T) {
		err := ClassifyTransferError(errors.New("boom"))
		assert.Equal(t, KindUnknown, err.Kind)
	})
}

func startedWorkflow(t *testing.T, transactions *MockTransactionClient) *TransferWorkflow {
	t.Helper()

	accounts := new(MockAccountClient)
	accounts.On("GetAccount", mock.Anything, "100").
		Return(&model.Account{AccountNumber: "100", BankName: "토스뱅크(비바리퍼블리카 계열)"}, nil)

	banks := new(MockBankClient)
	banks.On("ListBanks", mock.Anything).Return(&model.BankCatalog{
		CommercialBanks: []model.Bank{{Name: "X", Code: "004"}},
	}, nil)

	workflow := NewTransferWorkflow(accounts, transactions, NewBankDirectory(banks))
	workflow.Start(context.Background(), "100")
	return workflow
}

func TestTransferWorkflow_StartSeedsDraft(t *testing.T) {
	workflow := startedWorkflow(t, new(MockTransactionClient))

	assert.Equal(t, StateDrafting, workflow.State())
	assert.Equal(t, "100", workflow.Draft().FromAccount)
	assert.Equal(t, "토스뱅크(비바리퍼블리카 계열)", workflow.Draft().FromBankName)
	assert.Len(t, workflow.Banks(), 1)
}

func TestTransferWorkflow_StartDegradesSourceBankName(t *testing.T) {
	accounts := new(MockAccountClient)
	accounts.On("GetAccount", mock.Anything, "100").Return(nil, errors.New("down"))

	banks := new(MockBankClient)
	banks.On("ListBanks", mock.Anything).Return(nil, errors.New("down"))

	workflow := NewTransferWorkflow(accounts, new(MockTransactionClient), NewBankDirectory(banks))
	workflow.Start(context.Background(), "100")

	assert.Equal(t, StateDrafting, workflow.State())
	assert.Equal(t, fallbackBankLabel, workflow.Draft().FromBankName)
	assert.NotEmpty(t, workflow.Banks(), "directory must degrade to the fallback catalog")
}

func TestTransferWorkflow_ConfirmEndToEnd(t *testing.T) {
	transactions := new(MockTransactionClient)
	transactions.On("Transfer", mock.Anything, model.TransferRequest{
		FromAccount: "100",
		ToAccount:   "200",
		Amount:      5000,
	}).Return(nil).Once()

	workflow := startedWorkflow(t, transactions)
	workflow.SetDestination("200")
	workflow.SelectBank("X")
	workflow.AppendAmount("5")
	workflow.AppendAmount("00")
	workflow.AppendAmount("0")

	confirmation, err := workflow.Confirm(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, StateSucceeded, workflow.State())
	assert.Equal(t, int64(5000), confirmation.Amount)
	assert.Equal(t, "200", confirmation.ToAccount)
	assert.Equal(t, "X", confirmation.ToBank)
	transactions.AssertExpectations(t)

	// Succeeded is terminal for this draft.
	_, err = workflow.Confirm(context.Background())
	assert.ErrorIs(t, err, ErrTransferComplete)
	transactions.AssertNumberOfCalls(t, "Transfer", 1)
}

func TestTransferWorkflow_ConfirmRefusedWhileSubmitting(t *testing.T) {
	transactions := new(MockTransactionClient)
	workflow := startedWorkflow(t, transactions)
	workflow.SetDestination("200")
	workflow.SelectBank("X")
	workflow.AppendAmount("1")

	// a confirmation arriving while the request is in flight is refused
	transactions.On("Transfer", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			_, err := workflow.Confirm(context.Background())
			assert.ErrorIs(t, err, ErrSubmissionInFlight)
		}).
		Return(nil).Once()

	_, err := workflow.Confirm(context.Background())
	assert.NoError(t, err)
	transactions.AssertNumberOfCalls(t, "Transfer", 1)
}

func TestTransferWorkflow_ValidationFailureReturnsToDrafting(t *testing.T) {
	transactions := new(MockTransactionClient)
	workflow := startedWorkflow(t, transactions)
	workflow.SetDestination("200")
	// no bank selected

	_, err := workflow.Confirm(context.Background())

	var fieldErr *FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, FieldBank, fieldErr.Field)
	assert.Equal(t, StateDrafting, workflow.State())
	transactions.AssertNotCalled(t, "Transfer")
}

func TestTransferWorkflow_FailurePreservesDraft(t *testing.T) {
	transactions := new(MockTransactionClient)
	transactions.On("Transfer", mock.Anything, mock.Anything).
		Return(common.NewAPIError(400, "Insufficient balance")).Once()
	transactions.On("Transfer", mock.Anything, mock.Anything).
		Return(nil).Once()

	workflow := startedWorkflow(t, transactions)
	workflow.SetDestination("200")
	workflow.SelectBank("X")
	workflow.AppendAmount("9")
	workflow.AppendAmount("00")

	_, err := workflow.Confirm(context.Background())

	var transferErr *TransferError
	assert.ErrorAs(t, err, &transferErr)
	assert.Equal(t, KindInsufficientBalance, transferErr.Kind)
	assert.Equal(t, StateFailed, workflow.State())

	// the draft, including the amount buffer, survives the failure
	assert.Equal(t, "900", workflow.Draft().Amount.Buffer())
	assert.Equal(t, "200", workflow.Draft().ToAccount)

	// correcting the amount resumes drafting and a resubmission works
	workflow.BackspaceAmount()
	assert.Equal(t, StateDrafting, workflow.State())

	confirmation, err := workflow.Confirm(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(90), confirmation.Amount)
	transactions.AssertExpectations(t)
}
