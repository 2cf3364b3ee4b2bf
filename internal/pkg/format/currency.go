// Package format содержит форматирование сумм, дат и расчёт центроида
// для карточек и сводки дашборда.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	// CurrencySymbol - знак тенге, выводится после суммы
	CurrencySymbol = "₸"
	// CurrencySeparator - неразрывный пробел между суммой и знаком
	CurrencySeparator = "\u00a0"
)

var locale = language.Russian

// Currency форматирует сумму в тенге с разделителями разрядов ru-RU, без дробной части.
// Отсутствующая в каталоге сумма декодируется в ноль и выводится как «0 ₸».
func Currency(amount int64) string {
	p := message.NewPrinter(locale)
	return p.Sprint(number.Decimal(amount, number.MaxFractionDigits(0))) + CurrencySeparator + CurrencySymbol
}
