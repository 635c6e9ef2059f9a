package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"go-bank-client/client"
	"go-bank-client/logger"
	"go-bank-client/model"
)

// ErrLedgerUnavailable is the single aggregation-level failure: when any
// of the underlying fetches fails the ledger renders nothing rather than
// an inconsistent half-loaded view.
var ErrLedgerUnavailable = errors.New("could not load ledger data")

// DisplayTimeLayout is the minute-precision display form of a
// transaction timestamp. Its date portion doubles as the grouping key.
const DisplayTimeLayout = "2006.01.02 15:04"

// wireTimeLayouts are the timestamp shapes the server has been seen to
// emit. ISO-8601 with and without zone, plus a space-separated variant.
var wireTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Direction classifies a transaction relative to the viewed account.
type Direction string

const (
	// DirectionDebit is money leaving the viewed account.
	DirectionDebit Direction = "debit"
	// DirectionCredit is money entering the viewed account.
	DirectionCredit Direction = "credit"
)

// LedgerEntry is one display-ready transaction: direction-classified,
// counterparty-resolved, with its timestamp already reformatted.
type LedgerEntry struct {
	ID               int64
	Time             string // "15:04" within the section's date
	Direction        Direction
	Counterparty     string
	CounterpartyBank string
	Amount           int64 // always the absolute magnitude
}

// LedgerSection groups entries sharing a display date. Title is the
// "2006.01.02" date string.
type LedgerSection struct {
	Title   string
	Entries []LedgerEntry
}

// Ledger is the aggregated view of one account's history.
type Ledger struct {
	AccountNumber string
	BankName      string
	Balance       int64
	Sections      []LedgerSection
}

// LedgerAggregator builds the ledger view from two independent fetches.
type LedgerAggregator struct {
	accounts     client.IAccountClient
	transactions client.ITransactionClient
	limit        int
}

func NewLedgerAggregator(accounts client.IAccountClient, transactions client.ITransactionClient, limit int) *LedgerAggregator {
	return &LedgerAggregator{
		accounts:     accounts,
		transactions: transactions,
		limit:        limit,
	}
}

// Load fetches the account snapshot and its latest transactions
// concurrently, waits for both, and assembles the grouped ledger. Any
// fetch failure discards whatever arrived and reports ErrLedgerUnavailable.
func (a *LedgerAggregator) Load(ctx context.Context, accountNumber string) (*Ledger, error) {
	var (
		account      *model.Account
		transactions []model.Transaction
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = a.transactions.ListTransactions(ctx, accountNumber, a.limit)
		return err
	})
	g.Go(func() error {
		var err error
		account, err = a.accounts.GetAccount(ctx, accountNumber)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Log.WithError(err).WithField("account_number", accountNumber).
			Error("Ledger aggregation failed")
		return nil, ErrLedgerUnavailable
	}

	return &Ledger{
		AccountNumber: accountNumber,
		BankName:      account.BankName,
		Balance:       account.Balance,
		Sections:      GroupSections(transactions, accountNumber),
	}, nil
}

// GroupSections partitions transactions into date-keyed sections. The
// first time a date is seen establishes its section's position, and
// entries keep the server's order within a section; no re-sorting
// happens at any level.
func GroupSections(transactions []model.Transaction, viewedAccount string) []LedgerSection {
	var sections []LedgerSection
	index := make(map[string]int)

	for _, tx := range transactions {
		display := formatTimestamp(tx.Timestamp)
		date, clock := splitDisplayTimestamp(display)

		i, seen := index[date]
		if !seen {
			i = len(sections)
			index[date] = i
			sections = append(sections, LedgerSection{Title: date})
		}
		sections[i].Entries = append(sections[i].Entries, classify(tx, viewedAccount, clock))
	}
	return sections
}

// classify derives the viewer-relative direction and counterparty.
func classify(tx model.Transaction, viewedAccount, clock string) LedgerEntry {
	entry := LedgerEntry{
		ID:     tx.ID,
		Time:   clock,
		Amount: abs(tx.Amount),
	}
	if tx.FromAccount == viewedAccount {
		entry.Direction = DirectionDebit
		entry.Counterparty = tx.ToAccount
		entry.CounterpartyBank = tx.ToBankName
	} else {
		entry.Direction = DirectionCredit
		entry.Counterparty = tx.FromAccount
		entry.CounterpartyBank = tx.FromBankName
	}
	return entry
}

// formatTimestamp converts a wire timestamp to DisplayTimeLayout. A
// timestamp in none of the known shapes is passed through untouched so a
// malformed record still renders instead of sinking the whole ledger.
func formatTimestamp(wire string) string {
	for _, layout := range wireTimeLayouts {
		if t, err := time.Parse(layout, wire); err == nil {
			return t.Format(DisplayTimeLayout)
		}
	}
	return wire
}

// splitDisplayTimestamp separates "2006.01.02 15:04" into date and clock.
func splitDisplayTimestamp(display string) (date, clock string) {
	if i := strings.IndexByte(display, ' '); i >= 0 {
		return display[:i], display[i+1:]
	}
	return display, ""
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
