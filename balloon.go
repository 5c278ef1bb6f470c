// Package balloon provides a pure-Go implementation of Balloon Hashing,
// a memory-hard password hashing function.
//
// Balloon fills a buffer of SpaceCost blocks from the password and salt,
// mixes it TimeCost times with Delta pseudorandomly chosen neighbors per
// block, and returns the last block. Every hash call takes a fresh counter
// value, and each step depends on the one before it, so the work cannot be
// split across cores or traded for less memory cheaply.
//
// Example usage:
//
//	hasher, err := balloon.New(balloon.Config{
//	    SpaceCost: 1024,
//	    TimeCost:  3,
//	    Delta:     3,
//	    Primitive: balloon.SHA256,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	digest := hasher.Sum([]byte("password"), salt)
package balloon

import (
	"encoding/hex"
	"fmt"
	"math"
	"sync"

	"github.com/opd-ai/go-balloon/internal"
)

// Recommended cost parameters used by Hash.
const (
	DefaultSpaceCost = 24
	DefaultTimeCost  = 18
	DefaultDelta     = 5
)

var (
	// ErrInvalidParameter is returned when a cost parameter or the
	// primitive is unusable. No hashing is done in that case.
	ErrInvalidParameter = internal.ErrInvalidParameter

	// ErrInvalidDigest is returned for digest text that is not hex.
	ErrInvalidDigest = internal.ErrInvalidDigest
)

// CounterMode selects how the call counter crosses from expansion into
// mixing.
type CounterMode int

const (
	// CounterThreaded carries the counter from expansion into mixing so
	// no two hash calls in one computation share a counter value.
	CounterThreaded CounterMode = iota

	// CounterPerStage restarts the counter at 1 when mixing begins.
	// Mixing then reuses counter values already spent by expansion.
	// Use it only to reproduce digests from Balloon ports that pass the
	// counter by value (the widely copied PHP and Python versions).
	CounterPerStage
)

// String returns the string representation of the counter mode.
func (m CounterMode) String() string {
	switch m {
	case CounterThreaded:
		return "CounterThreaded"
	case CounterPerStage:
		return "CounterPerStage"
	default:
		return fmt.Sprintf("CounterMode(%d)", m)
	}
}

// Config specifies the parameters for a Balloon hasher.
type Config struct {
	// SpaceCost is the buffer length in blocks. Must be at least 1.
	SpaceCost uint64

	// TimeCost is the number of mixing passes. Must be at least 1.
	TimeCost uint64

	// Delta is the number of random neighbors mixed into each block per
	// pass. Zero gives a purely sequential chain.
	Delta uint64

	// Primitive is the underlying hash. Its output width is the block
	// width.
	Primitive Primitive

	// CounterMode defaults to CounterThreaded.
	CounterMode CounterMode
}

// DefaultConfig returns the parameters used by Hash: SHA-256 with
// SpaceCost 24, TimeCost 18 and Delta 5.
func DefaultConfig() Config {
	return Config{
		SpaceCost: DefaultSpaceCost,
		TimeCost:  DefaultTimeCost,
		Delta:     DefaultDelta,
		Primitive: SHA256,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SpaceCost < 1 {
		return fmt.Errorf("balloon: space cost must be at least 1: %w", ErrInvalidParameter)
	}

	if c.TimeCost < 1 {
		return fmt.Errorf("balloon: time cost must be at least 1: %w", ErrInvalidParameter)
	}

	if c.Primitive.New == nil {
		return fmt.Errorf("balloon: primitive must not be nil: %w", ErrInvalidParameter)
	}

	size := c.Primitive.Size()
	if size <= 0 {
		return fmt.Errorf("balloon: primitive %s has no output: %w", c.Primitive, ErrInvalidParameter)
	}
	if c.SpaceCost > uint64(math.MaxInt/size) {
		return fmt.Errorf("balloon: space cost %d overflows the buffer: %w", c.SpaceCost, ErrInvalidParameter)
	}

	if c.CounterMode != CounterThreaded && c.CounterMode != CounterPerStage {
		return fmt.Errorf("balloon: invalid counter mode: %v: %w", c.CounterMode, ErrInvalidParameter)
	}

	return nil
}

// Hasher computes Balloon digests for a fixed configuration. It is safe
// for concurrent use: every call works on its own buffer and counter.
type Hasher struct {
	config Config
	states sync.Pool // *internal.FieldHasher for config.Primitive
}

// New creates a hasher with the specified configuration.
func New(config Config) (*Hasher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	h := &Hasher{
		config: config,
	}
	h.states.New = func() interface{} {
		return internal.NewFieldHasher(h.config.Primitive.New())
	}

	return h, nil
}

// Config returns the hasher's configuration.
func (h *Hasher) Config() Config {
	return h.config
}

// Size returns the digest length in bytes.
func (h *Hasher) Size() int {
	return h.config.Primitive.Size()
}

// Sum computes the Balloon digest of password and salt.
// This method is safe for concurrent use by multiple goroutines.
func (h *Hasher) Sum(password, salt []byte) []byte {
	fh := h.getFieldHasher()
	defer h.putFieldHasher(fh)

	digest, err := run(fh, &h.config, password, salt)
	if err != nil {
		// The config was validated in New, so the stages cannot fail.
		panic(fmt.Sprintf("balloon: %v", err))
	}
	return digest
}

// SumHex is Sum encoded as lowercase hex.
func (h *Hasher) SumHex(password, salt []byte) string {
	return hex.EncodeToString(h.Sum(password, salt))
}

// Balloon computes the SHA-256 Balloon digest of password and salt with
// the given cost parameters. It returns ErrInvalidParameter if spaceCost
// or timeCost is zero.
func Balloon(password, salt []byte, spaceCost, timeCost, delta uint64) ([]byte, error) {
	h, err := New(Config{
		SpaceCost: spaceCost,
		TimeCost:  timeCost,
		Delta:     delta,
		Primitive: SHA256,
	})
	if err != nil {
		return nil, err
	}
	return h.Sum(password, salt), nil
}

// Hash computes Balloon with DefaultConfig and returns the digest as
// lowercase hex.
func Hash(password, salt []byte) string {
	return defaultHasher.SumHex(password, salt)
}

var defaultHasher = mustNew(DefaultConfig())

func mustNew(config Config) *Hasher {
	h, err := New(config)
	if err != nil {
		panic(err)
	}
	return h
}
