// Package resource decides whether a buffer of a given byte size may be
// allocated.
//
// A Controller combines two optional limits, both checked without blocking:
//
//   - a cap on the bytes held by live buffers (weighted semaphore)
//   - a token bucket on the bytes reserved per second
//
// Usage:
//
//	c := resource.New(resource.Limits{MaxBytes: 64 << 20})
//
//	if err := c.Reserve(4096); err != nil {
//	    return err // ErrMemoryLimitExceeded or ErrRateLimited
//	}
//	defer c.Refund(4096)
//
// Reserve and Refund may be called from many goroutines. A nil *Controller
// admits everything and holds nothing.
package resource
