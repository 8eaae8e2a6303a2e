package partstat

type options struct {
	logger      *Logger
	metrics     MetricsCollector
	parallelism int
	decompose   bool
}

func defaultOptions() options {
	return options{
		logger:    NoopLogger(),
		metrics:   NoopMetricsCollector{},
		decompose: true,
	}
}

// Option configures an Analyzer.
type Option func(*options)

// WithLogger configures structured logging. If nil is passed, logging stays
// disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures metrics collection. If nil is passed,
// collection stays disabled.
func WithMetricsCollector(m MetricsCollector) Option {
	return func(o *options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// WithScanParallelism bounds the number of partitions scanned concurrently
// per request. Values < 1 default to GOMAXPROCS.
func WithScanParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithUnionDecomposition toggles deriving and caching child stats when a
// scanned dataset is a concatenation. Enabled by default; disabling it never
// changes the parent's own stats, only whether children are pre-populated.
func WithUnionDecomposition(enabled bool) Option {
	return func(o *options) {
		o.decompose = enabled
	}
}
