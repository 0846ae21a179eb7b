package shared

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultCurrencySymbol is used when no symbol is configured.
const DefaultCurrencySymbol = "$"

// MoneyFormatter renders amounts as plain fixed-point values with two
// decimals, a '.' separator and no digit grouping.
type MoneyFormatter struct {
	symbol  string
	printer *message.Printer
}

// NewMoneyFormatter builds a formatter. An empty symbol falls back to
// DefaultCurrencySymbol.
func NewMoneyFormatter(symbol string) *MoneyFormatter {
	if symbol == "" {
		symbol = DefaultCurrencySymbol
	}
	return &MoneyFormatter{symbol: symbol, printer: message.NewPrinter(language.English)}
}

// Amount returns the amount without currency symbol, e.g. "1234.50".
func (f *MoneyFormatter) Amount(v float64) string {
	printer := message.NewPrinter(language.English)
	if f != nil {
		printer = f.printer
	}
	return printer.Sprint(number.Decimal(v, number.Scale(2), number.NoSeparator()))
}

// Format returns the amount prefixed with the currency symbol, e.g. "$2.50".
func (f *MoneyFormatter) Format(v float64) string {
	symbol := DefaultCurrencySymbol
	if f != nil {
		symbol = f.symbol
	}
	return symbol + f.Amount(v)
}
