package resource

import (
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

var (
	// ErrMemoryLimitExceeded is returned when a reservation does not fit under the byte cap.
	ErrMemoryLimitExceeded = errors.New("memory limit exceeded")
	// ErrRateLimited is returned when the allocation rate limit has no tokens left.
	ErrRateLimited = errors.New("allocation rate limit exceeded")
)

// Limits configures a Controller. Zero disables a limit.
type Limits struct {
	// MaxBytes caps the total bytes reserved at once.
	MaxBytes int64

	// BytesPerSec caps the sustained reservation rate. The bucket holds one
	// second worth of bytes, so a single reservation above BytesPerSec never
	// succeeds.
	BytesPerSec int64
}

// Controller admits or rejects buffer reservations.
//
// Each check is a try: Reserve never waits. A rejected reservation leaves no
// trace in either limit.
type Controller struct {
	limits Limits

	held     atomic.Int64
	capacity *semaphore.Weighted // nil without MaxBytes
	bucket   *rate.Limiter       // nil without BytesPerSec
}

// New returns a Controller enforcing limits.
func New(limits Limits) *Controller {
	c := &Controller{limits: limits}
	if limits.MaxBytes > 0 {
		c.capacity = semaphore.NewWeighted(limits.MaxBytes)
	}
	if limits.BytesPerSec > 0 {
		c.bucket = rate.NewLimiter(rate.Limit(limits.BytesPerSec), int(limits.BytesPerSec))
	}
	return c
}

// Reserve records n bytes as held. The byte cap is checked before the rate:
// a reservation the cap would reject consumes no rate tokens.
func (c *Controller) Reserve(n int64) error {
	if c == nil || n <= 0 {
		return nil
	}

	if c.capacity != nil && !c.capacity.TryAcquire(n) {
		return ErrMemoryLimitExceeded
	}

	if c.bucket != nil && !c.bucket.AllowN(time.Now(), int(n)) {
		if c.capacity != nil {
			c.capacity.Release(n)
		}
		return ErrRateLimited
	}

	c.held.Add(n)
	return nil
}

// Refund returns n previously reserved bytes.
func (c *Controller) Refund(n int64) {
	if c == nil || n <= 0 {
		return
	}
	if c.capacity != nil {
		c.capacity.Release(n)
	}
	c.held.Add(-n)
}

// Held returns the bytes currently reserved.
func (c *Controller) Held() int64 {
	if c == nil {
		return 0
	}
	return c.held.Load()
}

// MaxBytes returns the byte cap, 0 if uncapped.
func (c *Controller) MaxBytes() int64 {
	if c == nil {
		return 0
	}
	return c.limits.MaxBytes
}
