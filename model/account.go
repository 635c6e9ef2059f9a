package model

// Account is a snapshot of one of the user's accounts. Balance is
// authoritative only on the server; the client never mutates it locally,
// it re-fetches after money movement.
type Account struct {
	AccountNumber string `json:"account_number"`
	Balance       int64  `json:"balance"`
	BankName      string `json:"bank_name"`
	OwnerName     string `json:"owner_name,omitempty"`
}
