package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var kes = accounting.Accounting{Symbol: "KSh ", Precision: 2, Thousand: ","}

// KES renders a decimal amount as a human-readable shilling figure for
// order summaries.
func KES(amount decimal.Decimal) string {
	return kes.FormatMoneyDecimal(amount)
}
