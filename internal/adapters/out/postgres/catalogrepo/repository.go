package catalogrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProductRepository implements ports.ProductRepository.
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
		return nil, err
	}

	return productToDomain(dto)
}

// DecrementStock is a single conditional update: two checkouts racing for
// the last unit cannot both match the stock >= quantity guard.
func (r *GormProductRepository) DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ? AND stock >= ?", id.Bytes(), quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missOr(ctx, id, fmt.Errorf("%w: product %s", product.ErrInsufficientStock, id))
	}
	return nil
}

func (r *GormProductRepository) IncrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	result := r.db.WithContext(ctx).Model(&ProductDTO{}).
		Where("id = ?", id.Bytes()).
		Update("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}
	return nil
}

func (r *GormProductRepository) missOr(ctx context.Context, id kernel.UUID, conflict error) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ProductDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("product", id.String())
	}
	return conflict
}

// GormCartRepository implements ports.CartRepository.
type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) Clear(ctx context.Context, userID kernel.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID.Bytes()).Delete(&CartItemDTO{}).Error
}

// GormSellerOrderRepository implements ports.SellerOrderRepository.
type GormSellerOrderRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormSellerOrderRepository(db *gorm.DB) *GormSellerOrderRepository {
	return &GormSellerOrderRepository{db: db, now: time.Now}
}

// Append is idempotent per (seller, order).
func (r *GormSellerOrderRepository) Append(ctx context.Context, sellerID, orderID kernel.UUID) error {
	dto := SellerOrderDTO{
		SellerID:  sellerID.Bytes(),
		OrderID:   orderID.Bytes(),
		CreatedAt: r.now().UTC(),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&dto).Error
}
