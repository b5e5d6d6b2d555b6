package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/adapters/out/postgres/pgerr"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order with its items and history.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err, idempotencyIndex) {
			return fmt.Errorf("%w: %s", ports.ErrDuplicateIdempotencyKey, aggregate.IdempotencyKey())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the mutable columns when the stored version still matches
// and bumps it. Items never change after checkout; history rows are
// append-only and existing positions are skipped.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"is_paid":               dto.IsPaid,
			"paid_at":               dto.PaidAt,
			"is_delivered":          dto.IsDelivered,
			"delivered_at":          dto.DeliveredAt,
			"delivery_status":       dto.DeliveryStatus,
			"delivery_man_id":       dto.DeliveryManID,
			"delivery_earnings":     dto.DeliveryEarnings,
			"return_status":         dto.Return.Status,
			"return_request_date":   dto.Return.RequestDate,
			"return_reason":         dto.Return.Reason,
			"return_processed_date": dto.Return.ProcessedDate,
			"return_scheduled_date": dto.Return.ScheduledDate,
			"return_processed_by":   dto.Return.ProcessedBy,
			"version":               gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missOrConflict(ctx, aggregate.ID())
	}

	if len(dto.History) > 0 {
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dto.History).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) missOrConflict(ctx context.Context, id kernel.UUID) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).Where("id = ?", id.Bytes()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return fmt.Errorf("%w: order %s", ports.ErrConcurrentModification, id)
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withChildren(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetByIdempotencyKey(ctx context.Context, userID kernel.UUID, key string) (*order.Order, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.withChildren(ctx).
		Where("user_id = ? AND idempotency_key = ?", userID.Bytes(), key).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "idempotency key "+key)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOldestUnassigned locks the oldest waiting order not in exclude. Rows
// locked by another transaction are skipped so concurrent assigners pick
// different orders.
func (r *GormOrderRepository) GetOldestUnassigned(ctx context.Context, exclude []kernel.UUID) (*order.Order, error) {
	query := r.withChildren(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("delivery_status = ?", order.Unassigned.String())
	if len(exclude) > 0 {
		ids := make([]uuid.UUID, 0, len(exclude))
		for _, id := range exclude {
			ids = append(ids, id.Bytes())
		}
		query = query.Where("id NOT IN ?", ids)
	}

	var dto OrderDTO
	err := query.
		Order("created_at ASC, id ASC").
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", "oldest unassigned")
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) withChildren(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("line") }).
		Preload("History", func(db *gorm.DB) *gorm.DB { return db.Order("seq") })
}
