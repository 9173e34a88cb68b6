// Package config holds the tunable knobs that drive a block-finding run
// (spec.md §6 "Configuration"), built with the functional-options pattern
// lvlath uses for its own Graph/Edge construction.
package config

import "github.com/pkg/errors"

// Config collects every knob spec.md §6 names.
type Config struct {
	K               int
	MinBlockSize    int64
	MaxBranchSize   int64
	MaxFlankingSize int64
	LookingDepth    int64
	SampleSize      int64 // inert: accepted for parity, never consulted by dispatch
	Threads         int
	RandSeed        int64
}

// Option configures a Config during construction.
type Option func(*Config)

// WithK sets the k-mer size used to build the junction store.
func WithK(k int) Option { return func(c *Config) { c.K = k } }

// WithMinBlockSize sets the minimum score a block must keep to be reported.
func WithMinBlockSize(n int64) Option { return func(c *Config) { c.MinBlockSize = n } }

// WithMaxBranchSize sets how many bases of bubble a path may tolerate while
// growing.
func WithMaxBranchSize(n int64) Option { return func(c *Config) { c.MaxBranchSize = n } }

// WithMaxFlankingSize sets how much of an instance's length may be trimmed
// away as flank before it stops qualifying as "good".
func WithMaxFlankingSize(n int64) Option { return func(c *Config) { c.MaxFlankingSize = n } }

// WithLookingDepth sets how many junctions ahead the chooser scans for a
// next vertex.
func WithLookingDepth(n int64) Option { return func(c *Config) { c.LookingDepth = n } }

// WithSampleSize sets the (currently inert) sampling knob, preserved for
// command-line compatibility with the reference tool.
func WithSampleSize(n int64) Option { return func(c *Config) { c.SampleSize = n } }

// WithThreads sets how many worker goroutines the dispatcher runs.
func WithThreads(n int) Option { return func(c *Config) { c.Threads = n } }

// WithRandSeed fixes the seed used to shuffle the seed list before
// partitioning it across workers, for reproducible runs.
func WithRandSeed(n int64) Option { return func(c *Config) { c.RandSeed = n } }

// New builds a Config from sane defaults (grounded on the reference
// implementation's command-line defaults) overridden by opts, then validates
// it.
func New(opts ...Option) (Config, error) {
	c := Config{
		K:               15,
		MinBlockSize:    500,
		MaxBranchSize:   50,
		MaxFlankingSize: 30,
		LookingDepth:    50,
		SampleSize:      0,
		Threads:         1,
		RandSeed:        1,
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c, c.Validate()
}

// Validate fails fast on any configuration that cannot produce a sensible
// run, per spec.md §7 "Error Handling Design" (configuration errors surface
// before any work starts).
func (c Config) Validate() error {
	switch {
	case c.K <= 0:
		return errors.New("config: k must be positive")
	case c.MinBlockSize <= 0:
		return errors.New("config: minBlockSize must be positive")
	case c.MaxBranchSize < 0:
		return errors.New("config: maxBranchSize must not be negative")
	case c.MaxFlankingSize < 0:
		return errors.New("config: maxFlankingSize must not be negative")
	case 2*c.MaxFlankingSize >= c.MinBlockSize:
		return errors.New("config: maxFlankingSize must leave a positive minimum chain size")
	case c.LookingDepth <= 0:
		return errors.New("config: lookingDepth must be positive")
	case c.Threads <= 0:
		return errors.New("config: threads must be positive")
	}

	return nil
}
