// Package deliverymanrepo persists delivery profiles: the profile row, the
// orders currently held and the append-only delivery history.
package deliverymanrepo

import (
	"time"

	"storefront/internal/adapters/out/postgres/userrepo"
	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryManDTO is the delivery_men row. Name and email belong to the
// user account and are read through the User association.
type DeliveryManDTO struct {
	UserID    uuid.UUID        `gorm:"type:uuid;primaryKey"`
	User      userrepo.UserDTO `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Area      string           `gorm:"type:varchar(128);not null;index"`
	Available bool             `gorm:"not null;index"`
	Earnings  decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	Version   int              `gorm:"not null;default:0"`

	Orders  []AssignedOrderDTO  `gorm:"foreignKey:DeliveryManID;references:UserID;constraint:OnDelete:CASCADE"`
	History []DeliveryRecordDTO `gorm:"foreignKey:DeliveryManID;references:UserID;constraint:OnDelete:CASCADE"`
}

func (DeliveryManDTO) TableName() string {
	return "delivery_men"
}

// AssignedOrderDTO is one held order. Position keeps assignment order.
type AssignedOrderDTO struct {
	DeliveryManID uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID `gorm:"type:uuid;primaryKey;uniqueIndex"`
	Position      int       `gorm:"not null"`
}

func (AssignedOrderDTO) TableName() string {
	return "delivery_man_orders"
}

type DeliveryRecordDTO struct {
	DeliveryManID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Seq           int             `gorm:"primaryKey"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	EarnedAmount  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryDate  time.Time       `gorm:"type:timestamptz;not null"`
	Status        string          `gorm:"type:varchar(32);not null"`
}

func (DeliveryRecordDTO) TableName() string {
	return "delivery_records"
}

func fromDomain(d *deliveryman.DeliveryMan) DeliveryManDTO {
	id := d.ID().Bytes()

	orders := make([]AssignedOrderDTO, 0, d.Load())
	for i, orderID := range d.AssignedOrders() {
		orders = append(orders, AssignedOrderDTO{
			DeliveryManID: id,
			OrderID:       orderID.Bytes(),
			Position:      i,
		})
	}

	history := make([]DeliveryRecordDTO, 0, len(d.History()))
	for i, rec := range d.History() {
		history = append(history, DeliveryRecordDTO{
			DeliveryManID: id,
			Seq:           i,
			OrderID:       rec.OrderID.Bytes(),
			EarnedAmount:  rec.EarnedAmount,
			DeliveryDate:  rec.DeliveryDate,
			Status:        rec.Status,
		})
	}

	return DeliveryManDTO{
		UserID:    id,
		Area:      d.Area().String(),
		Available: d.IsAvailable(),
		Earnings:  d.Earnings(),
		Version:   d.Version(),
		Orders:    orders,
		History:   history,
	}
}

func toDomain(dto DeliveryManDTO) (*deliveryman.DeliveryMan, error) {
	id, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	area, err := kernel.NewArea(dto.Area)
	if err != nil {
		return nil, err
	}
	role, err := user.ParseRole(dto.User.Role)
	if err != nil {
		return nil, err
	}

	orders := make([]kernel.UUID, 0, len(dto.Orders))
	for _, o := range dto.Orders {
		orderID, idErr := kernel.UUIDFromBytes(o.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		orders = append(orders, orderID)
	}

	history := make([]deliveryman.DeliveryRecord, 0, len(dto.History))
	for _, h := range dto.History {
		orderID, idErr := kernel.UUIDFromBytes(h.OrderID[:])
		if idErr != nil {
			return nil, idErr
		}
		history = append(history, deliveryman.DeliveryRecord{
			OrderID:      orderID,
			EarnedAmount: h.EarnedAmount,
			DeliveryDate: h.DeliveryDate.UTC(),
			Status:       h.Status,
		})
	}

	return deliveryman.RestoreDeliveryMan(deliveryman.RestoreParams{
		UserID:         id,
		Name:           dto.User.Name,
		Email:          dto.User.Email,
		Role:           role,
		Area:           area,
		Available:      dto.Available,
		AssignedOrders: orders,
		Earnings:       dto.Earnings,
		History:        history,
		Version:        dto.Version,
	})
}
