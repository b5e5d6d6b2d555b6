package jobs

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

const AutoAssignJobName = "auto_assign"

// maxUnservedPerTick bounds how many orders without an eligible deliveryman
// one tick steps over before giving up.
const maxUnservedPerTick = 100

type autoAssignHandler interface {
	Handle(ctx context.Context, command commands.AutoAssignCommand) (commands.AutoAssignResult, error)
}

type assignmentRecorder interface {
	runRecorder
	OrderAssigned(source string)
}

// AutoAssignJob assigns waiting orders to the least loaded eligible
// deliveryman, oldest order first, up to batch orders per tick. Orders nobody
// can take are stepped over for the rest of the tick and retried on the next.
type AutoAssignJob struct {
	*lockedJob
	handler  autoAssignHandler
	batch    int
	recorder assignmentRecorder
}

func NewAutoAssignJob(
	handler autoAssignHandler,
	spec string,
	batch int,
	locker ports.Locker,
	recorder assignmentRecorder,
) *AutoAssignJob {
	if batch < 1 {
		batch = 1
	}
	j := &AutoAssignJob{handler: handler, batch: batch, recorder: recorder}
	j.lockedJob = newLockedJob(AutoAssignJobName, spec, 30*time.Second, locker, recorder, j.assignBatch)
	return j
}

func (j *AutoAssignJob) assignBatch(ctx context.Context) error {
	assigned := 0
	var unserved []kernel.UUID
	defer func() {
		if assigned > 0 || len(unserved) > 0 {
			j.logger.WithField("assigned", assigned).WithField("unserved", len(unserved)).Info("auto assignment tick")
		}
	}()

	for assigned < j.batch && len(unserved) < maxUnservedPerTick {
		result, err := j.handler.Handle(ctx, commands.NewAutoAssignCommand(unserved...))
		switch {
		case err == nil:
			assigned++
			if j.recorder != nil {
				j.recorder.OrderAssigned("auto")
			}
		case errors.Is(err, commands.ErrNoOrderFound):
			return nil
		case errors.Is(err, services.ErrNoEligibleDeliveryMan):
			j.logger.WithField("orderId", result.OrderID.String()).Debug("no eligible deliveryman")
			unserved = append(unserved, result.OrderID)
		case errors.Is(err, ports.ErrConcurrentModification):
			j.logger.WithError(err).Debug("assignment raced, retrying next tick")
			return nil
		default:
			return err
		}
	}
	return nil
}
