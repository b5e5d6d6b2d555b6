package jobs

import (
	"fmt"
)

type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs    []job
	started []job
}

// NewJobManager takes the jobs to run. Nil jobs are skipped so disabled
// jobs can be passed as is.
func NewJobManager(autoAssign *AutoAssignJob, couponExpiry *CouponExpiryJob) *JobManager {
	jm := &JobManager{}
	if autoAssign != nil {
		jm.jobs = append(jm.jobs, autoAssign)
	}
	if couponExpiry != nil {
		jm.jobs = append(jm.jobs, couponExpiry)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.Start(); err != nil {
			// Stop already started jobs if this one fails
			jm.StopAll()
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
		jm.started = append(jm.started, j)
	}
	return nil
}

// StopAll stops the started jobs in reverse order.
func (jm *JobManager) StopAll() {
	for i := len(jm.started) - 1; i >= 0; i-- {
		jm.started[i].Stop()
	}
	jm.started = nil
}
