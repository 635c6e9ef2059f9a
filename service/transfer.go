package service

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"

	"go-bank-client/client"
	"go-bank-client/common"
	"go-bank-client/logger"
	"go-bank-client/model"
)

// BankPlaceholder is the unselected-bank sentinel of the picker. A draft
// whose destination bank still equals it has no bank chosen.
const BankPlaceholder = "은행 선택"

// fallbackBankLabel stands in for the source bank name when the account
// snapshot cannot be fetched while the transfer screen opens.
const fallbackBankLabel = "은행"

func init() {
	_ = common.RegisterValidation("bankchosen", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		return strings.TrimSpace(v) != "" && v != BankPlaceholder
	})
}

// DraftField identifies which draft field failed validation.
type DraftField string

const (
	FieldSource      DraftField = "source"
	FieldDestination DraftField = "destination"
	FieldBank        DraftField = "bank"
	FieldAmount      DraftField = "amount"
)

// FieldError is a local validation failure. It never reaches the network
// and is surfaced as a notice, single-cause, in the fixed priority
// source → destination → bank → amount.
type FieldError struct {
	Field   DraftField
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

var draftMessages = map[DraftField]string{
	FieldSource:      "Check the source account number.",
	FieldDestination: "Enter the destination account number.",
	FieldBank:        "Select a destination bank.",
	FieldAmount:      "Enter a valid amount.",
}

// TransferDraft is the in-progress transfer. It exists only while the
// transfer flow is active and is discarded when the flow ends.
type TransferDraft struct {
	FromAccount  string
	FromBankName string
	ToAccount    string
	ToBank       string
	Amount       AmountEntry
}

// draftPayload exists to validate the draft through struct tags. Field
// declaration order is load-bearing: the validator reports violations in
// this order and only the first one is surfaced.
type draftPayload struct {
	Source      string `validate:"notblank"`
	Destination string `validate:"notblank"`
	Bank        string `validate:"bankchosen"`
	Amount      int64  `validate:"gt=0"`
}

var payloadFields = map[string]DraftField{
	"Source":      FieldSource,
	"Destination": FieldDestination,
	"Bank":        FieldBank,
	"Amount":      FieldAmount,
}

// Validate checks the draft for completeness. An unparsable or empty
// amount buffer validates as zero and therefore fails the amount check.
func (d *TransferDraft) Validate() *FieldError {
	amount, err := d.Amount.Value()
	if err != nil {
		amount = 0
	}

	payload := draftPayload{
		Source:      d.FromAccount,
		Destination: d.ToAccount,
		Bank:        d.ToBank,
		Amount:      amount,
	}
	if fieldErr := common.ValidateStruct(payload); fieldErr != nil {
		field := payloadFields[fieldErr.StructField()]
		return &FieldError{Field: field, Message: draftMessages[field]}
	}
	return nil
}

// TransferErrorKind is the four-way classification of submission failures.
type TransferErrorKind string

const (
	// KindInsufficientBalance is the server's insufficient-funds rule.
	KindInsufficientBalance TransferErrorKind = "insufficient_balance"
	// KindServerRejected is any other structured business rejection.
	KindServerRejected TransferErrorKind = "server_rejected"
	// KindUnreachable covers transport failures and responses without
	// usable detail.
	KindUnreachable TransferErrorKind = "unreachable"
	// KindUnknown is everything else.
	KindUnknown TransferErrorKind = "unknown"
)

// insufficientBalanceDetail is the exact detail string the server emits
// for the insufficient-funds rule.
const insufficientBalanceDetail = "Insufficient balance"

// TransferError is a classified submission failure. Non-fatal: the draft
// survives it and the user may correct and resubmit.
type TransferError struct {
	Kind   TransferErrorKind
	Detail string
}

func (e *TransferError) Error() string {
	return e.Message()
}

// Message returns the user-facing text for the failure.
func (e *TransferError) Message() string {
	switch e.Kind {
	case KindInsufficientBalance:
		return "Insufficient balance."
	case KindServerRejected:
		return e.Detail
	case KindUnreachable:
		return "No response from the server. Check your network connection."
	default:
		return "An unknown error occurred."
	}
}

// ClassifyTransferError maps a raw submission error onto the taxonomy.
func ClassifyTransferError(err error) *TransferError {
	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Detail == insufficientBalanceDetail:
			return &TransferError{Kind: KindInsufficientBalance, Detail: apiErr.Detail}
		case apiErr.Detail != "":
			return &TransferError{Kind: KindServerRejected, Detail: apiErr.Detail}
		default:
			return &TransferError{Kind: KindUnreachable}
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &TransferError{Kind: KindUnreachable}
	}
	return &TransferError{Kind: KindUnknown}
}

// TransferState is the workflow's position in the transfer state machine.
type TransferState string

const (
	StateIdle       TransferState = "idle"
	StateDrafting   TransferState = "drafting"
	StateValidating TransferState = "validating"
	StateSubmitting TransferState = "submitting"
	StateSucceeded  TransferState = "succeeded"
	StateFailed     TransferState = "failed"
)

var (
	// ErrSubmissionInFlight rejects a second Confirm while one request
	// is outstanding. The UI keeps the control inert in this state.
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	// ErrTransferComplete rejects further confirmations of a draft that
	// already succeeded; Succeeded is terminal.
	ErrTransferComplete = errors.New("this transfer has already completed")
)

// TransferWorkflow drives one transfer draft from Idle to a terminal
// state. It is meant for a single interactive flow and is not safe for
// concurrent use.
type TransferWorkflow struct {
	state        TransferState
	draft        TransferDraft
	banks        []model.Bank
	accounts     client.IAccountClient
	transactions client.ITransactionClient
	directory    *BankDirectory
}

func NewTransferWorkflow(accounts client.IAccountClient, transactions client.ITransactionClient, directory *BankDirectory) *TransferWorkflow {
	return &TransferWorkflow{
		state:        StateIdle,
		accounts:     accounts,
		transactions: transactions,
		directory:    directory,
	}
}

// Start seeds the draft with the source account and joins the screen's
// two independent fetches: the source account's bank name and the bank
// directory. Neither fetch can fail the screen; the bank name degrades
// to a generic label and the directory degrades to its fallback catalog.
func (w *TransferWorkflow) Start(ctx context.Context, fromAccount string) {
	w.draft = TransferDraft{FromAccount: fromAccount}
	w.banks = nil

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		account, err := w.accounts.GetAccount(ctx, fromAccount)
		if err != nil || account.BankName == "" {
			logger.Log.WithError(err).WithField("account_number", fromAccount).
				Warn("Source bank name unavailable, using generic label")
			w.draft.FromBankName = fallbackBankLabel
			return nil
		}
		w.draft.FromBankName = account.BankName
		return nil
	})
	g.Go(func() error {
		w.banks = w.directory.List(ctx)
		return nil
	})
	_ = g.Wait()

	w.state = StateDrafting
}

// State reports the workflow's current state.
func (w *TransferWorkflow) State() TransferState {
	return w.state
}

// Draft exposes the current draft for rendering.
func (w *TransferWorkflow) Draft() *TransferDraft {
	return &w.draft
}

// Banks lists the destination choices fetched at Start.
func (w *TransferWorkflow) Banks() []model.Bank {
	return w.banks
}

// SetDestination records the destination account number.
func (w *TransferWorkflow) SetDestination(accountNumber string) {
	w.draft.ToAccount = accountNumber
	w.resumeDrafting()
}

// SelectBank records the destination bank by display name; the name, not
// the code, is what the wire contract transmits.
func (w *TransferWorkflow) SelectBank(name string) {
	w.draft.ToBank = name
	w.resumeDrafting()
}

// AppendAmount feeds one keypad token into the amount buffer.
func (w *TransferWorkflow) AppendAmount(token string) {
	w.draft.Amount.Append(token)
	w.resumeDrafting()
}

// BackspaceAmount removes the last keypad character.
func (w *TransferWorkflow) BackspaceAmount() {
	w.draft.Amount.Backspace()
	w.resumeDrafting()
}

// resumeDrafting keeps editing re-entrant: any edit from Drafting stays
// there, and an edit after a failure returns the flow to Drafting with
// the rest of the draft intact.
func (w *TransferWorkflow) resumeDrafting() {
	if w.state == StateFailed || w.state == StateDrafting {
		w.state = StateDrafting
	}
}

// Confirm runs validation and, when the draft is complete, submits it.
// Exactly one request leaves per call; a call while a submission is in
// flight is refused. On failure the draft, including the amount buffer,
// is preserved and the flow returns to Drafting via StateFailed.
func (w *TransferWorkflow) Confirm(ctx context.Context) (*Confirmation, error) {
	switch w.state {
	case StateSubmitting:
		return nil, ErrSubmissionInFlight
	case StateSucceeded:
		return nil, ErrTransferComplete
	}

	w.state = StateValidating
	if fieldErr := w.draft.Validate(); fieldErr != nil {
		logger.Log.WithField("field", string(fieldErr.Field)).
			Debug("Transfer draft rejected by validation")
		w.state = StateDrafting
		return nil, fieldErr
	}

	amount, _ := w.draft.Amount.Value()
	w.state = StateSubmitting

	err := w.transactions.Transfer(ctx, model.TransferRequest{
		FromAccount: w.draft.FromAccount,
		ToAccount:   w.draft.ToAccount,
		Amount:      amount,
	})
	if err != nil {
		w.state = StateFailed
		return nil, ClassifyTransferError(err)
	}

	w.state = StateSucceeded
	return &Confirmation{
		Amount:    amount,
		ToAccount: w.draft.ToAccount,
		ToBank:    w.draft.ToBank,
	}, nil
}
