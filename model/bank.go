package model

// Bank is one selectable destination bank. Code is the stable identifier;
// Name is what the user sees and, per the server's contract, what is
// actually transmitted when a transfer or account names a bank.
type Bank struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// BankCatalog mirrors the response of GET /banks/: three category lists
// whose order is meaningful and must be preserved when flattened.
type BankCatalog struct {
	CentralBanks    []Bank `json:"central_banks"`
	CommercialBanks []Bank `json:"commercial_banks"`
	InternetBanks   []Bank `json:"internet_banks"`
}
