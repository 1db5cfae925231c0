package fixedarray

import "log/slog"

// Option configures the constructors.
//
// An array keeps the options it was built with. Clone, Move and every
// buffer built to replace its contents reuse them.
type Option func(*options)

type options struct {
	budget  *Budget
	metrics MetricsCollector
	logger  *Logger
}

var defaultOptions = options{
	metrics: NoopMetricsCollector{},
	logger:  NoopLogger(),
}

// WithBudget charges each buffer against b. nil disables accounting.
//
//	budget := fixedarray.NewBudget(fixedarray.BudgetConfig{MemoryLimitBytes: 1 << 20})
//	arr, err := fixedarray.Make[float64](1024, fixedarray.WithBudget(budget))
func WithBudget(b *Budget) Option {
	return func(o *options) { o.budget = b }
}

// WithMetricsCollector reports allocations and releases to mc.
// nil restores the no-op collector.
//
//	metrics := &fixedarray.BasicMetricsCollector{}
//	arr, _ := fixedarray.Make[int](10, fixedarray.WithMetricsCollector(metrics))
//	fmt.Println(metrics.GetStats().AllocatedBytes)
func WithMetricsCollector(mc MetricsCollector) Option {
	if mc == nil {
		mc = NoopMetricsCollector{}
	}
	return func(o *options) { o.metrics = mc }
}

// WithLogger logs allocations and releases to logger.
// nil restores the no-op logger.
func WithLogger(logger *Logger) Option {
	if logger == nil {
		logger = NoopLogger()
	}
	return func(o *options) { o.logger = logger }
}

// WithLogLevel is WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return WithLogger(NewTextLogger(level))
}

// applyOptions returns &defaultOptions when optFns is empty.
func applyOptions(optFns []Option) *options {
	if len(optFns) == 0 {
		return &defaultOptions
	}
	o := defaultOptions
	for _, apply := range optFns {
		if apply != nil {
			apply(&o)
		}
	}
	return &o
}
