// Package jobs provides scheduled background tasks for the storefront.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field specs with
// seconds) and share one runner that adds a per-tick timeout, metrics and,
// when Redis is configured, a lease so a tick runs on one replica only.
//
// # Available Jobs
//
// 1. AutoAssignJob - assigns waiting orders to the least loaded eligible deliveryman
// 2. CouponExpiryJob - deactivates coupons past their end date
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewAutoAssignJob(autoAssignHandler, "*/30 * * * * *", 10, locker, m),
//		jobs.NewCouponExpiryJob(expiryHandler, "0 */5 * * * *", locker, m),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
//   - The assignment job treats "no order waiting" and lost optimistic races
//     as the end of a tick, not as failures
//   - An order nobody can take is stepped over until the next tick
//   - Any other error is logged and counted
//   - A failed start stops the jobs already running
package jobs
