package fixedarray

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/fixedarray/internal/resource"
)

// ErrInvalidBudgetConfig is returned when a BudgetConfig holds negative limits.
var ErrInvalidBudgetConfig = errors.New("invalid budget config")

// BudgetConfig holds the limits of a Budget.
type BudgetConfig struct {
	// MemoryLimitBytes caps the bytes held by live buffers charged to the budget.
	// If 0, usage is tracked but not limited.
	MemoryLimitBytes int64 `yaml:"memory_limit_bytes"`

	// AllocBytesPerSec caps the sustained allocation rate in bytes per second.
	// A single buffer larger than this value is always rejected.
	// If 0, unlimited.
	AllocBytesPerSec int64 `yaml:"alloc_bytes_per_sec"`
}

// Validate reports whether the config holds usable limits.
func (c BudgetConfig) Validate() error {
	if c.MemoryLimitBytes < 0 {
		return fmt.Errorf("%w: memory_limit_bytes %d is negative", ErrInvalidBudgetConfig, c.MemoryLimitBytes)
	}
	if c.AllocBytesPerSec < 0 {
		return fmt.Errorf("%w: alloc_bytes_per_sec %d is negative", ErrInvalidBudgetConfig, c.AllocBytesPerSec)
	}
	return nil
}

// ParseBudgetConfig decodes a YAML budget config.
//
//	memory_limit_bytes: 67108864
//	alloc_bytes_per_sec: 16777216
func ParseBudgetConfig(data []byte) (BudgetConfig, error) {
	var cfg BudgetConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BudgetConfig{}, fmt.Errorf("parse budget config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BudgetConfig{}, err
	}
	return cfg, nil
}

// LoadBudgetConfig reads and decodes a YAML budget config file.
func LoadBudgetConfig(path string) (BudgetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BudgetConfig{}, fmt.Errorf("load budget config: %w", err)
	}
	return ParseBudgetConfig(data)
}

// Budget accounts for the heap memory held by array buffers.
//
// A buffer is charged when it is allocated and refunded exactly once when it
// is released or replaced. The charge follows the buffer through Move and
// Swap. A Budget is safe for concurrent use by many arrays; a nil *Budget
// tracks nothing.
type Budget struct {
	rc *resource.Controller
}

// NewBudget creates a Budget with the given limits.
func NewBudget(cfg BudgetConfig) *Budget {
	return &Budget{
		rc: resource.New(resource.Limits{
			MaxBytes:    cfg.MemoryLimitBytes,
			BytesPerSec: cfg.AllocBytesPerSec,
		}),
	}
}

// Usage returns the bytes currently charged.
func (b *Budget) Usage() int64 {
	if b == nil {
		return 0
	}
	return b.rc.Held()
}

// Limit returns the configured memory limit in bytes (0 if unlimited).
func (b *Budget) Limit() int64 {
	if b == nil {
		return 0
	}
	return b.rc.MaxBytes()
}

func (b *Budget) acquire(bytes int64) error {
	if b == nil {
		return nil
	}
	return b.rc.Reserve(bytes)
}

func (b *Budget) release(bytes int64) {
	if b == nil {
		return
	}
	b.rc.Refund(bytes)
}
