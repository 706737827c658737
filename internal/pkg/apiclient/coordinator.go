package apiclient

import "sync"

// refreshCoordinator collapses concurrent refresh attempts into one call.
// The first caller in a storm executes fn; everyone arriving while it is in
// flight waits for that same result. The check-and-set happens under the
// mutex, before the refresh call begins, so a burst of 401s can never fan out
// into parallel refreshes.
//
// It is owned by a Client instance, never package-level state.
type refreshCoordinator struct {
	mu         sync.Mutex
	refreshing bool
	waiters    []chan error
}

func (rc *refreshCoordinator) do(fn func() error) error {
	rc.mu.Lock()
	if rc.refreshing {
		ch := make(chan error, 1)
		rc.waiters = append(rc.waiters, ch)
		rc.mu.Unlock()
		return <-ch
	}
	rc.refreshing = true
	rc.mu.Unlock()

	err := fn()

	rc.mu.Lock()
	rc.refreshing = false
	waiters := rc.waiters
	rc.waiters = nil
	rc.mu.Unlock()

	for _, ch := range waiters {
		ch <- err
	}
	return err
}
