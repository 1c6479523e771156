package checkout

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatKES renders a whole-shilling amount with locale grouping, e.g.
// FormatKES(15000) == "KES 15,000". Prices are kept in whole units; the shop
// does not quote cents.
func FormatKES(amount int) string {
	return printer.Sprintf("KES %d", amount)
}
