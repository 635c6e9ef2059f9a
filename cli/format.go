package cli

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var amountPrinter = message.NewPrinter(language.Korean)

// formatWon renders an integer amount with thousands grouping and the
// won suffix, e.g. 1234567 → "1,234,567원".
func formatWon(amount int64) string {
	return amountPrinter.Sprintf("%d", amount) + "원"
}
