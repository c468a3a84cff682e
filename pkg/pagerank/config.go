package pagerank

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/vertex-lab/linkrank/pkg/models"
	"github.com/vertex-lab/linkrank/pkg/utils/logger"
)

const (
	DefaultDamping   float64 = 0.85
	DefaultSamples   int     = 10000
	DefaultTolerance float64 = 0.001
	DefaultMaxRounds int     = 1000
)

// Config contains the parameters shared by the estimators.
type Config struct {
	// Damping is the probability of following one of the outbound links of the
	// current node, instead of jumping to a random node of the graph.
	Damping float64

	// Samples is the number of steps of the random walk performed by Sample().
	Samples int

	// Tolerance is the maximum per-node change between two rounds of Iterate()
	// for the ranks to be considered converged.
	Tolerance float64

	// MaxRounds is the maximum number of rounds performed by Iterate() before
	// giving up with ErrNotConverged.
	MaxRounds int

	// Seed of the random walk. Zero means seeding from the current time.
	Seed uint64

	Log *logger.Aggregate
}

// NewConfig() returns a config with default parameters.
func NewConfig() Config {
	return Config{
		Damping:   DefaultDamping,
		Samples:   DefaultSamples,
		Tolerance: DefaultTolerance,
		MaxRounds: DefaultMaxRounds,
	}
}

// Validate() returns all the problems with the config, combined in a single error.
func (c Config) Validate() error {
	var err error
	if err2 := validateDamping(c.Damping); err2 != nil {
		err = multierror.Append(err, err2)
	}

	if c.Samples <= 0 {
		err = multierror.Append(err, fmt.Errorf("%w: got %d", models.ErrInvalidSamples, c.Samples))
	}

	if !(c.Tolerance > 0) {
		err = multierror.Append(err, fmt.Errorf("%w: got %v", models.ErrInvalidTolerance, c.Tolerance))
	}

	if c.MaxRounds <= 0 {
		err = multierror.Append(err, fmt.Errorf("%w: got %d", models.ErrInvalidMaxRounds, c.MaxRounds))
	}

	return err
}

// Print() writes the config parameters to w.
func (c Config) Print(w io.Writer) {
	fmt.Fprintln(w, "Pagerank:")
	fmt.Fprintf(w, "  Damping: %v\n", c.Damping)
	fmt.Fprintf(w, "  Samples: %d\n", c.Samples)
	fmt.Fprintf(w, "  Tolerance: %v\n", c.Tolerance)
	fmt.Fprintf(w, "  MaxRounds: %d\n", c.MaxRounds)
	fmt.Fprintf(w, "  Seed: %d\n", c.Seed)
}

// NewRand() returns a random number generator seeded with seed.
// A zero seed is replaced by the current time.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed))
}

func validateDamping(damping float64) error {
	if !(damping > 0 && damping < 1) {
		return fmt.Errorf("%w: got %v", models.ErrInvalidDamping, damping)
	}
	return nil
}
