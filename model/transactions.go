package model

// Transaction is one ledger record as returned by the server. Amount is
// always the non-negative magnitude; whether it reads as money in or
// money out depends on which account is being viewed and is derived at
// display time, never stored.
type Transaction struct {
	ID           int64  `json:"id"`
	FromAccount  string `json:"from_account"`
	ToAccount    string `json:"to_account"`
	Amount       int64  `json:"amount"`
	Timestamp    string `json:"timestamp"`
	FromBankName string `json:"from_bank_name"`
	ToBankName   string `json:"to_bank_name"`
}
