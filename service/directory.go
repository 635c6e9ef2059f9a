package service

import (
	"context"

	"go-bank-client/client"
	"go-bank-client/logger"
	"go-bank-client/model"
)

// fallbackCatalog is served when the bank catalog cannot be fetched. The
// directory degrades to static data rather than surfacing an error.
var fallbackCatalog = []model.Bank{
	{Name: "한국은행", Code: "001"},
	{Name: "KB국민은행(KB금융그룹 계열)", Code: "004"},
	{Name: "우리은행(우리금융그룹 계열)", Code: "020"},
	{Name: "SC제일은행", Code: "023"},
	{Name: "한국씨티은행", Code: "027"},
	{Name: "iM뱅크(iM금융그룹 계열)", Code: "031"},
	{Name: "하나은행(하나금융그룹 계열)", Code: "081"},
	{Name: "신한은행(신한금융지주 계열)", Code: "088"},
	{Name: "케이뱅크(KT 계열)", Code: "089"},
	{Name: "카카오뱅크(카카오 계열)", Code: "090"},
	{Name: "토스뱅크(비바리퍼블리카 계열)", Code: "092"},
}

// BankDirectory supplies the list of selectable destination banks. There
// is no caching; every screen that needs banks asks again.
type BankDirectory struct {
	banks client.IBankClient
}

func NewBankDirectory(banks client.IBankClient) *BankDirectory {
	return &BankDirectory{banks: banks}
}

// List returns all selectable banks, concatenated central → commercial →
// internet with order preserved within each category. It never fails.
func (d *BankDirectory) List(ctx context.Context) []model.Bank {
	catalog, err := d.banks.ListBanks(ctx)
	if err != nil {
		logger.Log.WithError(err).Warn("Bank catalog unavailable, using fallback directory")
		return fallbackCatalog
	}

	all := make([]model.Bank, 0, len(catalog.CentralBanks)+len(catalog.CommercialBanks)+len(catalog.InternetBanks))
	all = append(all, catalog.CentralBanks...)
	all = append(all, catalog.CommercialBanks...)
	all = append(all, catalog.InternetBanks...)
	return all
}
