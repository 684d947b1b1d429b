package kernel

import (
	"fmt"
	"strings"

	"courierapp/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// kopecksPerRuble is the minor-unit scale of the backend's price field.
var kopecksPerRuble = decimal.NewFromInt(100)

// rubPrinter renders grouped amounts with Russian digit grouping
// ("1 500" rather than "1500") for currency display.
var rubPrinter = message.NewPrinter(language.Russian)

// Money is an order price denominated in kopecks, matching the backend wire
// format where prices travel as decimal strings of minor units.
//
// Money is a value object: arithmetic is not exposed because the client never
// computes prices, it only parses and displays backend-confirmed amounts.
type Money struct {
	kopecks int64
}

// NewMoney creates a Money value from an amount in kopecks.
// Negative amounts are invalid.
func NewMoney(kopecks int64) (Money, error) {
	if kopecks < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d kopecks is negative", kopecks))
	}
	return Money{kopecks: kopecks}, nil
}

// MoneyFromString parses the backend's price field: a decimal string of
// kopecks, e.g. "150000" for 1500₽. Fractional kopecks are invalid.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	if !d.IsInteger() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s has fractional kopecks", s))
	}
	return NewMoney(d.IntPart())
}

// Kopecks returns the amount in minor units.
func (m Money) Kopecks() int64 {
	return m.kopecks
}

// Rubles returns the amount in rubles as an exact decimal.
func (m Money) Rubles() decimal.Decimal {
	return decimal.NewFromInt(m.kopecks).Div(kopecksPerRuble)
}

// String returns the wire form: kopecks as a decimal string.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.kopecks)
}

// Format renders the amount the way order cards show it: "1500₽", or
// "1500.50₽" when showDecimals is set.
func (m Money) Format(showDecimals bool) string {
	if showDecimals {
		return m.Rubles().StringFixed(2) + "₽"
	}
	return m.Rubles().Round(0).String() + "₽"
}

// FormatGrouped renders the amount with Russian digit grouping for detail
// views: "1 500 ₽". The printer groups with U+00A0; cards render plain
// spaces, so the separator is normalized.
func (m Money) FormatGrouped() string {
	whole := m.Rubles().Round(0).IntPart()
	return strings.ReplaceAll(rubPrinter.Sprintf("%d ₽", whole), " ", " ")
}

// IsEqual compares two amounts.
func (m Money) IsEqual(other Money) bool {
	return m.kopecks == other.kopecks
}
