// Package userrepo persists the account fields the order service reads and
// the role it changes on onboarding.
package userrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"

	"github.com/google/uuid"
)

// UserDTO maps the users table. Authentication data lives with the identity
// provider and is not stored here.
type UserDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Email string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Role  string    `gorm:"type:varchar(32);not null;index"`
}

func (UserDTO) TableName() string {
	return "users"
}

func FromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:    u.ID().Bytes(),
		Name:  u.Name(),
		Email: u.Email(),
		Role:  u.Role().String(),
	}
}

func ToDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}
	return user.RestoreUser(id, dto.Name, dto.Email, role)
}
