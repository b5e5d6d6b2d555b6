package deliverymanrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/deliveryman"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryManRepository implements ports.DeliveryManRepository using GORM.
type GormDeliveryManRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryManRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryManRepository {
	return &GormDeliveryManRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a profile for an existing user.
func (r *GormDeliveryManRepository) Add(ctx context.Context, aggregate *deliveryman.DeliveryMan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Omit("User").Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the profile when the stored version still matches, replaces
// the held orders and appends new history records.
func (r *GormDeliveryManRepository) Update(ctx context.Context, aggregate *deliveryman.DeliveryMan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&DeliveryManDTO{}).
		Where("user_id = ? AND version = ?", dto.UserID, dto.Version).
		Updates(map[string]any{
			"area":      dto.Area,
			"available": dto.Available,
			"earnings":  dto.Earnings,
			"version":   gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missOrConflict(ctx, aggregate.ID())
	}

	if err := db.Where("delivery_man_id = ?", dto.UserID).Delete(&AssignedOrderDTO{}).Error; err != nil {
		return err
	}
	if len(dto.Orders) > 0 {
		if err := db.Create(&dto.Orders).Error; err != nil {
			return err
		}
	}
	if len(dto.History) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.History).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryManRepository) missOrConflict(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DeliveryManDTO{}).Where("user_id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%w: %s", deliveryman.ErrDeliveryManNotFound, id)
	}
	return fmt.Errorf("%w: deliveryman %s", ports.ErrConcurrentModification, id)
}

func (r *GormDeliveryManRepository) Get(ctx context.Context, userID kernel.UUID) (*deliveryman.DeliveryMan, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	return r.first(ctx, userID.String(), "user_id = ?", userID.Bytes())
}

func (r *GormDeliveryManRepository) GetByEmail(ctx context.Context, email string) (*deliveryman.DeliveryMan, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.first(ctx, email, "user_id = (SELECT id FROM users WHERE email = ?)", email)
}

// ListAvailable returns profiles switched on for delivery whose account still
// holds the deliveryman role, in a stable order.
func (r *GormDeliveryManRepository) ListAvailable(ctx context.Context) ([]*deliveryman.DeliveryMan, error) {
	var dtos []DeliveryManDTO
	err := r.withChildren(ctx).
		Where("available = ?", true).
		Where("user_id IN (SELECT id FROM users WHERE role = ?)", user.DeliveryMan.String()).
		Order("user_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	result := make([]*deliveryman.DeliveryMan, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}

func (r *GormDeliveryManRepository) first(ctx context.Context, ref string, query string, args ...any) (*deliveryman.DeliveryMan, error) {
	var dto DeliveryManDTO
	if err := r.withChildren(ctx).Where(query, args...).Take(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", deliveryman.ErrDeliveryManNotFound, ref)
		}
		return nil, err
	}
	return toDomain(dto)
}

func (r *GormDeliveryManRepository) withChildren(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Orders", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("seq") })
}
