package jobs

import (
	"context"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/ports"
)

const CouponExpiryJobName = "coupon_expiry"

type couponExpiryHandler interface {
	Handle(ctx context.Context, command commands.DeactivateExpiredCouponsCommand) (int64, error)
}

// CouponExpiryJob switches off coupons whose end date has passed.
type CouponExpiryJob struct {
	*lockedJob
	handler couponExpiryHandler
}

func NewCouponExpiryJob(handler couponExpiryHandler, spec string, locker ports.Locker, recorder runRecorder) *CouponExpiryJob {
	j := &CouponExpiryJob{handler: handler}
	j.lockedJob = newLockedJob(CouponExpiryJobName, spec, time.Minute, locker, recorder, j.expire)
	return j
}

func (j *CouponExpiryJob) expire(ctx context.Context) error {
	n, err := j.handler.Handle(ctx, commands.NewDeactivateExpiredCouponsCommand())
	if err != nil {
		return err
	}
	if n > 0 {
		j.logger.WithField("deactivated", n).Info("expired coupons deactivated")
	}
	return nil
}
