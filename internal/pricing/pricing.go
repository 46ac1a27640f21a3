// Package pricing formats whole-unit currency amounts and computes price estimates.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/she110ff/metalcat-sub002/internal/classify"
	"github.com/she110ff/metalcat-sub002/internal/models"
)

// CurrencyGlyph prefixes every formatted amount.
const CurrencyGlyph = "₩"

var printer = message.NewPrinter(language.Korean)

// FormatCurrency renders amount with grouping separators and no decimals, e.g. ₩1,250,000.
func FormatCurrency(amount int64) string {
	s := printer.Sprintf("%d", amount)
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		return "-" + CurrencyGlyph + rest
	}
	return CurrencyGlyph + s
}

// FormatOptionalCurrency renders a nullable amount, falling back to the unknown placeholder.
func FormatOptionalCurrency(amount *int64, locale models.Locale) string {
	if amount == nil {
		return locale.Unknown()
	}
	return FormatCurrency(*amount)
}

// FormatPricePerUnit renders a unit price such as ₩350/kg.
func FormatPricePerUnit(price *int64, unit string, locale models.Locale) string {
	if price == nil {
		return locale.Unknown()
	}
	if strings.TrimSpace(unit) == "" {
		return FormatCurrency(*price)
	}
	return FormatCurrency(*price) + "/" + unit
}

// CurrentPrice is the current bid, or the starting price when nobody has bid.
func CurrentPrice(a models.AuctionRecord) int64 {
	if a.CurrentBid != nil {
		return *a.CurrentBid
	}
	return a.StartingPrice
}

// EstimatedValue multiplies the unit price by the quantity of a scrap or
// materials auction, rounded to whole currency units. ok is false when the
// auction has no unit price or is of another category.
func EstimatedValue(a models.AuctionRecord) (value int64, ok bool) {
	if a.PricePerUnit == nil {
		return 0, false
	}

	var quantity decimal.Decimal
	if d, isScrap := classify.AsScrap(a); isScrap {
		quantity = d.Quantity
	} else if d, isMaterials := classify.AsMaterials(a); isMaterials {
		quantity = d.Quantity
	} else {
		return 0, false
	}

	return decimal.NewFromInt(*a.PricePerUnit).Mul(quantity).Round(0).IntPart(), true
}
