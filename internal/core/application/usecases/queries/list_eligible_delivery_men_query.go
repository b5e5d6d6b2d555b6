package queries

import (
	"errors"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrListEligibleDeliveryMenQueryIsNotConstructed = errors.New(
	"ListEligibleDeliveryMenQuery must be created via NewListEligibleDeliveryMenQuery constructor",
)

// ListEligibleDeliveryMenQuery finds deliverymen who could take an order
// shipped to area under the standard policy.
type ListEligibleDeliveryMenQuery struct {
	area  string
	guard guard.ConstructorGuard
}

func NewListEligibleDeliveryMenQuery(area string) (ListEligibleDeliveryMenQuery, error) {
	area = strings.TrimSpace(area)
	if area == "" {
		return ListEligibleDeliveryMenQuery{}, errs.NewValueIsRequiredError("area")
	}
	return ListEligibleDeliveryMenQuery{area: area, guard: guard.NewConstructorGuard()}, nil
}

func (q ListEligibleDeliveryMenQuery) Validate() error {
	return q.guard.Validate(ErrListEligibleDeliveryMenQueryIsNotConstructed)
}

func (q ListEligibleDeliveryMenQuery) Area() string { return q.area }

type EligibleDeliveryManView struct {
	ID    kernel.UUID `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Area  string      `json:"area"`
	Load  int         `json:"assignedOrders"`
}
