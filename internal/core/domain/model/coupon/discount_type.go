package coupon

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// DiscountType selects how DiscountAmount is interpreted.
type DiscountType string

const (
	Percentage DiscountType = "percentage"
	Fixed      DiscountType = "fixed"
)

func ParseDiscountType(s string) (DiscountType, error) {
	t := DiscountType(strings.ToLower(strings.TrimSpace(s)))
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t DiscountType) Validate() error {
	if t != Percentage && t != Fixed {
		return errs.NewValueIsInvalidErrorWithCause("discountType",
			fmt.Errorf("%q is not one of percentage, fixed", string(t)))
	}
	return nil
}

func (t DiscountType) String() string {
	return string(t)
}
