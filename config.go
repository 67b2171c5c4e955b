package glove

// Hyperparameter defaults from the GloVe paper.
const (
	DefaultMaxCount      = 100.0
	DefaultLearningRate  = 0.05
	DefaultAlpha         = 0.75
	DefaultNumComponents = 30
	DefaultEpochs        = 5
	DefaultThreads       = 4

	// gradClip bounds every gradient component applied during
	// training. Occasional extreme costs would otherwise diverge.
	gradClip = 100.0
)

// Config holds all training hyperparameters. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// MaxCount is the cutoff of the weighting function f(w). Pairs
	// with a co-occurrence weight at or above MaxCount get full
	// weight.
	MaxCount float64 `yaml:"max_count"`

	// LearningRate is the initial AdaGrad step size.
	LearningRate float64 `yaml:"learning_rate"`

	// Alpha is the exponent of the weighting function, in (0, 1).
	Alpha float64 `yaml:"alpha"`

	// NumComponents is the embedding dimensionality.
	NumComponents int `yaml:"num_components"`

	// Epochs is the number of passes over the nonzero co-occurrence
	// entries. Zero epochs leaves the initialized vectors untouched.
	Epochs int `yaml:"epochs"`

	// Threads is the worker count used for co-occurrence
	// construction and training.
	Threads int `yaml:"threads"`

	// Deterministic trades throughput for reproducibility: training
	// runs on a single worker with the seeded shuffle, so two runs
	// on identical input produce identical vectors. When false,
	// workers update shared rows lock-free and results vary between
	// runs.
	Deterministic bool `yaml:"deterministic"`

	// Seed seeds vector initialization and entry shuffling. Zero
	// picks a time-based seed.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the configuration with the paper defaults.
func DefaultConfig() Config {
	return Config{
		MaxCount:      DefaultMaxCount,
		LearningRate:  DefaultLearningRate,
		Alpha:         DefaultAlpha,
		NumComponents: DefaultNumComponents,
		Epochs:        DefaultEpochs,
		Threads:       DefaultThreads,
	}
}

// Validate rejects configurations that would allocate degenerate model
// state. It is called before anything is allocated.
func (c Config) Validate() error {
	if c.Threads <= 0 {
		return &ConfigError{Field: "threads", Reason: "must be > 0"}
	}
	if c.NumComponents <= 0 {
		return &ConfigError{Field: "num_components", Reason: "must be > 0"}
	}
	if c.Epochs < 0 {
		return &ConfigError{Field: "epochs", Reason: "must be >= 0"}
	}
	if c.LearningRate <= 0 {
		return &ConfigError{Field: "learning_rate", Reason: "must be > 0"}
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return &ConfigError{Field: "alpha", Reason: "must be in (0, 1)"}
	}
	if c.MaxCount <= 0 {
		return &ConfigError{Field: "max_count", Reason: "must be > 0"}
	}
	return nil
}

// workers returns the effective worker count for training, honoring
// the deterministic flag.
func (c Config) workers() int {
	if c.Deterministic {
		return 1
	}
	return c.Threads
}
