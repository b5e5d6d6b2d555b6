package jobs

import (
	"context"
	"time"

	"storefront/internal/core/ports"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type runRecorder interface {
	JobRun(job string, started time.Time, err error)
	JobSkipped(job string)
}

// lockedJob runs tick on a cron schedule. When a locker is configured a
// tick only runs on the replica that takes the lease named after the job.
type lockedJob struct {
	name     string
	spec     string
	timeout  time.Duration
	locker   ports.Locker
	recorder runRecorder
	tick     func(ctx context.Context) error
	cron     *cron.Cron
	logger   *log.Entry
}

func newLockedJob(
	name, spec string,
	timeout time.Duration,
	locker ports.Locker,
	recorder runRecorder,
	tick func(ctx context.Context) error,
) *lockedJob {
	return &lockedJob{
		name:     name,
		spec:     spec,
		timeout:  timeout,
		locker:   locker,
		recorder: recorder,
		tick:     tick,
		cron:     cron.New(cron.WithSeconds(), cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		logger:   log.WithField("component", name+"_job"),
	}
}

func (j *lockedJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { _ = j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.WithField("schedule", j.spec).Info("job started")
	return nil
}

// Stop waits for a running tick to finish.
func (j *lockedJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("job stopped")
}

// RunOnce executes a single tick under the job's lease and timeout.
func (j *lockedJob) RunOnce(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()

	if j.locker != nil {
		release, acquired, err := j.locker.TryLock(ctx, j.name, j.timeout)
		if err != nil {
			j.logger.WithError(err).Warn("failed to take job lock")
			j.record(time.Now(), err)
			return err
		}
		if !acquired {
			if j.recorder != nil {
				j.recorder.JobSkipped(j.name)
			}
			return nil
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				j.logger.WithError(err).Warn("failed to release job lock")
			}
		}()
	}

	started := time.Now()
	err := j.tick(ctx)
	j.record(started, err)
	if err != nil {
		j.logger.WithError(err).Error("job tick failed")
	}
	return err
}

func (j *lockedJob) record(started time.Time, err error) {
	if j.recorder != nil {
		j.recorder.JobRun(j.name, started, err)
	}
}
