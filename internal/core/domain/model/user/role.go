package user

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"
)

// Role is the account type that drives authorization decisions.
type Role string

const (
	Customer    Role = "customer"
	Seller      Role = "seller"
	Admin       Role = "admin"
	DeliveryMan Role = "deliveryman"
)

// ParseRole accepts any casing of a known role name.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case Customer, Seller, Admin, DeliveryMan:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
}

func (r Role) String() string {
	return string(r)
}
