package order

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

type PaymentMethod string

const (
	CashOnDelivery PaymentMethod = "cash_on_delivery"
	Card           PaymentMethod = "card"
)

// ParsePaymentMethod also accepts the short form "cod".
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(strings.ToLower(strings.TrimSpace(s)))
	if m == "cod" {
		m = CashOnDelivery
	}
	if m != CashOnDelivery && m != Card {
		return "", errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not supported", s))
	}
	return m, nil
}

func (m PaymentMethod) String() string {
	return string(m)
}
