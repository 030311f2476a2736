// Package jobs provides scheduled background tasks for the fulfillment
// system, implemented with github.com/robfig/cron/v3.
//
// The only job today is GeocodeWarmupJob. It periodically walks the known
// restaurant addresses and the delivery addresses of unassigned orders and
// resolves them through the caching resolver, so routing requests mostly hit
// a warm cache instead of paying for external geocoder calls inline.
//
// Jobs are managed through JobManager:
//
//	jobManager := jobs.NewJobManager(uowFactory, resolver, logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Warmup failures are logged and never retried within a run; the cache
// itself guarantees each address is resolved at most once, so repeated runs
// are cheap.
package jobs
