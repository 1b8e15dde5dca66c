package accounting

import (
	"fmt"

	"github.com/Omerhrr/Booklet/internal/apperrors"
	"github.com/Omerhrr/Booklet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceTolerance is the largest debit/credit mismatch a posting group may
// carry, absorbing per-line rounding.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// PaymentEpsilon pads the paid-in-full comparison so a payment rounded a
// fraction of a cent short still settles the document.
var PaymentEpsilon = decimal.NewFromFloat(0.001)

// SignedAmount applies the normal-balance convention: debits increase asset
// and expense accounts, credits increase liability, equity and revenue
// accounts. The returned value is positive when the line increases the
// account's natural balance.
func SignedAmount(debit, credit decimal.Decimal, accountType domain.AccountType) (decimal.Decimal, error) {
	net := debit.Sub(credit)
	switch accountType {
	case domain.Asset, domain.Expense:
		return net, nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return net.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type %q", accountType)
	}
}

// ValidateGroupBalance checks that a draft posting group is well formed: at
// least two lines, no negative amounts, and debits matching credits within
// BalanceTolerance.
func ValidateGroupBalance(lines []domain.DraftLine) error {
	if len(lines) < 2 {
		return apperrors.ErrEmptyEntry
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range lines {
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: negative amount on account %s", apperrors.ErrValidation, line.AccountID)
		}
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}

	if totalDebit.Sub(totalCredit).Abs().GreaterThanOrEqual(BalanceTolerance) {
		return fmt.Errorf("%w: debits %s, credits %s",
			apperrors.ErrUnbalancedEntry, totalDebit.String(), totalCredit.String())
	}
	return nil
}

// ResolvePaymentStatus returns the status for a document given its total and
// the cumulative amount paid.
func ResolvePaymentStatus(total, paid decimal.Decimal) domain.PaymentStatus {
	if paid.GreaterThanOrEqual(total.Sub(PaymentEpsilon)) {
		return domain.StatusPaid
	}
	if paid.IsPositive() {
		return domain.StatusPartiallyPaid
	}
	return domain.StatusUnpaid
}

// ApplyRate computes amount * rate / 100 for percentage rates.
func ApplyRate(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Div(decimal.NewFromInt(100))
}

// ApplyRateCeil is ApplyRate rounded up to the next whole unit, the rounding
// used for statutory payroll amounts.
func ApplyRateCeil(amount, rate decimal.Decimal) decimal.Decimal {
	return ApplyRate(amount, rate).Ceil()
}
