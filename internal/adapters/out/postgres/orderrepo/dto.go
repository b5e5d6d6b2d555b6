// Package orderrepo maps the order aggregate to the orders table and its
// child tables for items and status history.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// idempotencyIndex is the unique index on (user_id, idempotency_key).
// PostgreSQL treats NULL keys as distinct, so orders without a key never
// collide.
const idempotencyIndex = "idx_orders_user_idempotency"

// OrderDTO is the orders row. Money columns are numeric(12,2).
type OrderDTO struct {
	ID               uuid.UUID           `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID           `gorm:"type:uuid;not null;index;uniqueIndex:idx_orders_user_idempotency,priority:1"`
	IdempotencyKey   *string             `gorm:"type:varchar(128);uniqueIndex:idx_orders_user_idempotency,priority:2"`
	PaymentMethod    string              `gorm:"type:varchar(32);not null"`
	Shipping         ShippingAddressDTO  `gorm:"embedded;embeddedPrefix:shipping_"`
	ItemsPrice       decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	CouponDiscount   decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	TaxPrice         decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	ShippingPrice    decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	TotalPrice       decimal.Decimal     `gorm:"type:numeric(12,2);not null"`
	IsPaid           bool                `gorm:"not null"`
	PaidAt           *time.Time          `gorm:"type:timestamptz"`
	IsDelivered      bool                `gorm:"not null"`
	DeliveredAt      *time.Time          `gorm:"type:timestamptz"`
	CouponID         *uuid.UUID          `gorm:"type:uuid;index"`
	CouponCode       string              `gorm:"type:varchar(64)"`
	DeliveryStatus   string              `gorm:"type:varchar(32);not null;index:idx_orders_status_created,priority:1"`
	DeliveryManID    *uuid.UUID          `gorm:"type:uuid;index"`
	DeliveryEarnings decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Return           ReturnDTO           `gorm:"embedded;embeddedPrefix:return_"`
	Version          int                 `gorm:"not null;default:0"`
	CreatedAt        time.Time           `gorm:"type:timestamptz;not null;index:idx_orders_status_created,priority:2"`

	Items   []ItemDTO         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History []StatusChangeDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ShippingAddressDTO struct {
	FullName   string `gorm:"type:varchar(255);not null"`
	Address    string `gorm:"type:varchar(512);not null"`
	City       string `gorm:"type:varchar(128);not null;index"`
	PostalCode string `gorm:"type:varchar(32);not null"`
	Country    string `gorm:"type:varchar(64);not null"`
	Phone      string `gorm:"type:varchar(64);not null"`
}

type ReturnDTO struct {
	Status        string     `gorm:"type:varchar(32);not null;default:'none'"`
	RequestDate   *time.Time `gorm:"type:timestamptz"`
	Reason        string     `gorm:"type:text"`
	ProcessedDate *time.Time `gorm:"type:timestamptz"`
	ScheduledDate *time.Time `gorm:"type:timestamptz"`
	ProcessedBy   *uuid.UUID `gorm:"type:uuid"`
}

// ItemDTO is one purchased line, keyed by its position in the order.
type ItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Line      int             `gorm:"primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	Price     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Size      string          `gorm:"type:varchar(32)"`
	Color     string          `gorm:"type:varchar(32)"`
	SellerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Image     string          `gorm:"type:varchar(512)"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

// StatusChangeDTO is one history entry. Seq is the entry's position, so
// rewriting the history only ever inserts new positions.
type StatusChangeDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int       `gorm:"primaryKey"`
	Status    string    `gorm:"type:varchar(32);not null"`
	Timestamp time.Time `gorm:"type:timestamptz;not null"`
	UpdatedBy uuid.UUID `gorm:"type:uuid;not null"`
	Note      string    `gorm:"type:text"`
}

func (StatusChangeDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	items := make([]ItemDTO, 0, len(o.Items()))
	for i, item := range o.Items() {
		items = append(items, ItemDTO{
			OrderID:   orderID,
			Line:      i,
			ProductID: item.ProductID().Bytes(),
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
			Size:      item.Size(),
			Color:     item.Color(),
			SellerID:  item.SellerID().Bytes(),
			Image:     item.Image(),
		})
	}

	history := make([]StatusChangeDTO, 0, len(o.StatusHistory()))
	for i, change := range o.StatusHistory() {
		history = append(history, StatusChangeDTO{
			OrderID:   orderID,
			Seq:       i,
			Status:    change.Status.String(),
			Timestamp: change.Timestamp,
			UpdatedBy: change.UpdatedBy.Bytes(),
			Note:      change.Note,
		})
	}

	var key *string
	if k := o.IdempotencyKey(); k != "" {
		key = &k
	}

	var earnings decimal.NullDecimal
	if e := o.DeliveryEarnings(); e != nil {
		earnings = decimal.NewNullDecimal(*e)
	}

	addr := o.ShippingAddress()
	pricing := o.Pricing()
	ret := o.ReturnRequest()

	return OrderDTO{
		ID:             orderID,
		UserID:         o.UserID().Bytes(),
		IdempotencyKey: key,
		PaymentMethod:  o.PaymentMethod().String(),
		Shipping: ShippingAddressDTO{
			FullName:   addr.FullName(),
			Address:    addr.Address(),
			City:       addr.City(),
			PostalCode: addr.PostalCode(),
			Country:    addr.Country(),
			Phone:      addr.Phone(),
		},
		ItemsPrice:       pricing.ItemsPrice,
		CouponDiscount:   pricing.CouponDiscount,
		TaxPrice:         pricing.TaxPrice,
		ShippingPrice:    pricing.ShippingPrice,
		TotalPrice:       pricing.TotalPrice,
		IsPaid:           o.IsPaid(),
		PaidAt:           o.PaidAt(),
		IsDelivered:      o.IsDelivered(),
		DeliveredAt:      o.DeliveredAt(),
		CouponID:         kernel.RawPtr(o.CouponID()),
		CouponCode:       o.CouponCode(),
		DeliveryStatus:   o.DeliveryStatus().String(),
		DeliveryManID:    kernel.RawPtr(o.DeliveryManID()),
		DeliveryEarnings: earnings,
		Return: ReturnDTO{
			Status:        ret.Status.String(),
			RequestDate:   ret.RequestDate,
			Reason:        ret.Reason,
			ProcessedDate: ret.ProcessedDate,
			ScheduledDate: ret.ScheduledDate,
			ProcessedBy:   kernel.RawPtr(ret.ProcessedBy),
		},
		Version:   o.Version(),
		CreatedAt: o.CreatedAt(),
		Items:     items,
		History:   history,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, h := range dto.History {
		status, statusErr := order.ParseDeliveryStatus(h.Status)
		if statusErr != nil {
			return nil, statusErr
		}
		by, byErr := kernel.UUIDFromBytes(h.UpdatedBy[:])
		if byErr != nil {
			return nil, byErr
		}
		history = append(history, order.StatusChange{
			Status:    status,
			Timestamp: h.Timestamp.UTC(),
			UpdatedBy: by,
			Note:      h.Note,
		})
	}

	addr, err := order.NewShippingAddress(
		dto.Shipping.FullName,
		dto.Shipping.Address,
		dto.Shipping.City,
		dto.Shipping.PostalCode,
		dto.Shipping.Country,
		dto.Shipping.Phone,
	)
	if err != nil {
		return nil, err
	}

	method, err := order.ParsePaymentMethod(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}
	status, err := order.ParseDeliveryStatus(dto.DeliveryStatus)
	if err != nil {
		return nil, err
	}
	returnStatus, err := order.ParseReturnStatus(dto.Return.Status)
	if err != nil {
		return nil, err
	}

	couponID, err := kernel.UUIDPtr(dto.CouponID)
	if err != nil {
		return nil, err
	}
	deliveryManID, err := kernel.UUIDPtr(dto.DeliveryManID)
	if err != nil {
		return nil, err
	}
	processedBy, err := kernel.UUIDPtr(dto.Return.ProcessedBy)
	if err != nil {
		return nil, err
	}

	var earnings *decimal.Decimal
	if dto.DeliveryEarnings.Valid {
		e := dto.DeliveryEarnings.Decimal
		earnings = &e
	}

	var key string
	if dto.IdempotencyKey != nil {
		key = *dto.IdempotencyKey
	}

	return order.RestoreOrder(order.RestoreParams{
		NewOrderParams: order.NewOrderParams{
			ID:              id,
			UserID:          userID,
			Items:           items,
			ShippingAddress: addr,
			PaymentMethod:   method,
			Pricing: order.Pricing{
				ItemsPrice:     dto.ItemsPrice,
				CouponDiscount: dto.CouponDiscount,
				TaxPrice:       dto.TaxPrice,
				ShippingPrice:  dto.ShippingPrice,
				TotalPrice:     dto.TotalPrice,
			},
			CouponID:       couponID,
			CouponCode:     dto.CouponCode,
			IdempotencyKey: key,
			CreatedAt:      dto.CreatedAt,
		},
		IsPaid:           dto.IsPaid,
		PaidAt:           utcPtr(dto.PaidAt),
		IsDelivered:      dto.IsDelivered,
		DeliveredAt:      utcPtr(dto.DeliveredAt),
		DeliveryStatus:   status,
		DeliveryManID:    deliveryManID,
		StatusHistory:    history,
		DeliveryEarnings: earnings,
		ReturnRequest: order.ReturnRequest{
			Status:        returnStatus,
			RequestDate:   utcPtr(dto.Return.RequestDate),
			Reason:        dto.Return.Reason,
			ProcessedDate: utcPtr(dto.Return.ProcessedDate),
			ScheduledDate: utcPtr(dto.Return.ScheduledDate),
			ProcessedBy:   processedBy,
		},
		Version: dto.Version,
	})
}

func itemToDomain(dto ItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(order.ItemParams{
		ProductID: productID,
		Name:      dto.Name,
		Quantity:  dto.Quantity,
		Price:     dto.Price,
		Size:      dto.Size,
		Color:     dto.Color,
		SellerID:  sellerID,
		Image:     dto.Image,
	})
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
