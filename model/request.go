package model

// TransferRequest is the payload for POST /transactions/transfer. Only
// the already-validated account numbers and the integer amount travel on
// the wire; the destination bank name stays client-side.
type TransferRequest struct {
	FromAccount string `json:"from_account" validate:"required"`
	ToAccount   string `json:"to_account" validate:"required"`
	Amount      int64  `json:"amount" validate:"required,gt=0"`
}

// AdjustRequest is the shared payload for POST /transactions/deposit and
// POST /transactions/withdraw.
type AdjustRequest struct {
	AccountNumber string `json:"account_number" validate:"required"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Name        string `json:"name" validate:"required"`
}

// RegisterRequest is the payload for POST /users/.
type RegisterRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required"`
	Name        string `json:"name" validate:"required"`
}

// CreateAccountRequest is the payload for POST /accounts/. The server's
// contract is name-keyed: it receives the bank's display name, not its code.
type CreateAccountRequest struct {
	BankName string `json:"bank_name" validate:"required"`
}

// LoginResponse carries the bearer credential issued by the server.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
