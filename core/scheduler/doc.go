// Package scheduler runs a job on a cron schedule and on demand.
//
// Jobs run on the scheduler goroutine, so at most one runs at a time. A
// manual trigger received while a job is running is queued once; further
// triggers are dropped until it is consumed.
//
// # Usage
//
//	s, err := scheduler.New("0 */6 * * *", func(ctx context.Context) error {
//	    _, err := c.Run(ctx, crawler.RunOptions{})
//	    return err
//	}, logger)
//	if err != nil {
//	    return err
//	}
//	go s.Run(ctx)
//	s.Trigger()
package scheduler
