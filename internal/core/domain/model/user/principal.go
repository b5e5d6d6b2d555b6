package user

import (
	"storefront/internal/core/domain/model/kernel"
)

// Principal is the verified identity of the caller. It is produced by the
// authentication middleware and never deserialized from a request body.
type Principal struct {
	UserID kernel.UUID
	Role   Role
}

func NewPrincipal(id kernel.UUID, role Role) (Principal, error) {
	if err := id.Validate(); err != nil {
		return Principal{}, err
	}
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}
	return Principal{UserID: id, Role: role}, nil
}

func (p Principal) IsAdmin() bool       { return p.Role == Admin }
func (p Principal) IsDeliveryMan() bool { return p.Role == DeliveryMan }
func (p Principal) IsSeller() bool      { return p.Role == Seller }

// Is reports whether the principal is the given account.
func (p Principal) Is(id kernel.UUID) bool {
	return p.UserID.IsEqual(id)
}
