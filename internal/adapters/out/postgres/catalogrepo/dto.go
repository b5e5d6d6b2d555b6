// Package catalogrepo persists the catalog side of checkout: product stock,
// shopping carts and the per-seller order lists.
package catalogrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name               string          `gorm:"type:varchar(255);not null"`
	Price              decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	RealPrice          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	DiscountPercentage decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	Stock              int             `gorm:"not null;check:stock >= 0"`
	SellerID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	Image              string          `gorm:"type:varchar(512)"`
	Colors             []string        `gorm:"type:jsonb;serializer:json"`
	Sizes              []string        `gorm:"type:jsonb;serializer:json"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// CartItemDTO is one line of a user's shopping cart.
type CartItemDTO struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int       `gorm:"not null"`
	Size      string    `gorm:"type:varchar(32)"`
	Color     string    `gorm:"type:varchar(32)"`
}

func (CartItemDTO) TableName() string {
	return "cart_items"
}

// SellerOrderDTO links a seller to an order containing their products.
type SellerOrderDTO struct {
	SellerID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null"`
}

func (SellerOrderDTO) TableName() string {
	return "seller_orders"
}

func ProductFromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:                 p.ID().Bytes(),
		Name:               p.Name(),
		Price:              p.Price(),
		RealPrice:          p.RealPrice(),
		DiscountPercentage: p.DiscountPercentage(),
		Stock:              p.Stock(),
		SellerID:           p.SellerID().Bytes(),
		Image:              p.Image(),
		Colors:             p.Colors(),
		Sizes:              p.Sizes(),
	}
}

func productToDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(product.Params{
		ID:                 id,
		Name:               dto.Name,
		Price:              dto.Price,
		RealPrice:          dto.RealPrice,
		DiscountPercentage: dto.DiscountPercentage,
		Stock:              dto.Stock,
		SellerID:           sellerID,
		Image:              dto.Image,
		Colors:             dto.Colors,
		Sizes:              dto.Sizes,
	})
}
