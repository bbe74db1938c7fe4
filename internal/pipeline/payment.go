package pipeline

import (
	"strings"

	"possales/internal"
)

// PaymentTypeFor derives the payment method from the raw cash and e-wallet
// cells. First matching rule wins: a literal zero cash entry is a
// voucher/discount signal and outranks a populated e-wallet value; the
// credit/debit fallback is reached only when both cells are placeholders.
func PaymentTypeFor(cash, gcash string) internal.PaymentType {
	cash = strings.TrimSpace(cash)
	gcash = strings.TrimSpace(gcash)

	switch {
	case cash == "0" || cash == "0.00":
		return internal.PaymentFree
	case cash != "" && cash != "-":
		return internal.PaymentCash
	case gcash != "" && gcash != "-":
		return internal.PaymentGcash
	default:
		return internal.PaymentCredit
	}
}
