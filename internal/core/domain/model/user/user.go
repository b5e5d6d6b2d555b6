package user

import (
	"errors"
	"net/mail"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User is a storefront account. Email is unique and stored lower-case.
type User struct {
	id    kernel.UUID
	name  string
	email string
	role  Role
	guard guard.ConstructorGuard
}

func NewUser(id kernel.UUID, name, email string, role Role) (*User, error) {
	u := &User{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
		u.setRole(role),
	); err != nil {
		return nil, err
	}
	return u, nil
}

// RestoreUser rehydrates a persisted account.
func RestoreUser(id kernel.UUID, name, email string, role Role) (*User, error) {
	return NewUser(id, name, email, role)
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID { return u.id }
func (u *User) Name() string    { return u.name }
func (u *User) Email() string   { return u.email }
func (u *User) Role() Role      { return u.role }

// PromoteToDeliveryMan switches the account role when a delivery profile is
// created for it. Admins cannot be demoted this way.
func (u *User) PromoteToDeliveryMan() error {
	if u.role == Admin {
		return errs.NewStateConflictError("user "+u.id.String(), "admin accounts cannot become deliverymen")
	}
	u.role = DeliveryMan
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
