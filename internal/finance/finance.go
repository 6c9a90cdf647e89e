// Package finance normalizes the free-form amount strings stored on
// quotations and contracts and performs the derived money arithmetic.
// Amounts arrive as entered ("₩1,000,000", "1000000원"); parsing never
// fails, an unusable amount simply counts as zero.
package finance

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/labcrm/crm-api/internal/domain"
)

// ParseAmount extracts the numeric value from a formatted amount
// string. Currency symbols, separators and trailing text are stripped;
// the leading numeric run of what remains is the value. Anything
// unparseable yields zero.
func ParseAmount(s string) decimal.Decimal {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	// Longest valid numeric prefix: optional sign, digits, one
	// fractional part. Mirrors how lenient float parsing treats
	// strings like "1.2.3".
	end := 0
	seenDigit := false
	seenDot := false
	for i, r := range cleaned {
		switch {
		case r == '-':
			if i != 0 {
				goto done
			}
		case r == '.':
			if seenDot {
				goto done
			}
			seenDot = true
		default:
			seenDigit = true
		}
		end = i + 1
	}
done:
	if !seenDigit {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(cleaned[:end], "."))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ApplyDiscount returns amount reduced by rate percent. A zero or
// unparseable rate leaves the amount unchanged.
func ApplyDiscount(amount, rate string) decimal.Decimal {
	a := ParseAmount(amount)
	r := ParseAmount(rate)
	if r.IsZero() {
		return a
	}
	factor := decimal.NewFromInt(1).Sub(r.Div(decimal.NewFromInt(100)))
	return a.Mul(factor)
}

// DiscountedAmountString renders the discounted amount as a plain
// numeric string, the form stored on contracts created from a
// quotation.
func DiscountedAmountString(amount, rate string) string {
	d := ApplyDiscount(amount, rate)
	if d.IsInteger() {
		return d.Truncate(0).String()
	}
	return d.String()
}

// TermsTotal sums a structured payment-terms split. Plain-text terms
// have no computable total and sum to zero.
func TermsTotal(pt domain.PaymentTerms) decimal.Decimal {
	if pt.Structured == nil {
		return decimal.Zero
	}
	total := ParseAmount(pt.Structured.Advance)
	for _, interim := range pt.Structured.Interims {
		total = total.Add(ParseAmount(interim))
	}
	return total.Add(ParseAmount(pt.Structured.Balance))
}

// TermsReconcile reports whether structured terms sum to the contract
// amount after the discount. Plain or missing terms reconcile trivially.
func TermsReconcile(pt domain.PaymentTerms, amount, rate string) bool {
	if pt.Structured == nil {
		return true
	}
	return TermsTotal(pt).Equal(ApplyDiscount(amount, rate))
}
