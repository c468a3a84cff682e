package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vertex-lab/linkrank/pkg/pagerank"
	"github.com/vertex-lab/linkrank/pkg/utils/logger"
)

const (
	MethodBoth string = "both"
)

type SystemConfig struct {
	Log          *logger.Aggregate
	LogWriter    io.Writer
	RedisAddress string // empty means results are not stored
	Method       string
	Top          int // zero means all nodes, sorted by name

	logCloser io.Closer
}

// The configuration parameters for the system and the estimators.
type Config struct {
	SystemConfig
	Pagerank pagerank.Config
}

func NewSystemConfig() SystemConfig {
	return SystemConfig{
		LogWriter: os.Stderr,
		Method:    MethodBoth,
	}
}

// NewConfig() returns a config with default parameters.
func NewConfig() *Config {
	config := &Config{
		SystemConfig: NewSystemConfig(),
		Pagerank:     pagerank.NewConfig(),
	}

	config.Log = logger.New(config.LogWriter)
	config.Pagerank.Log = config.Log
	return config
}

func (c SystemConfig) Print(w io.Writer) {
	fmt.Fprintln(w, "System:")
	fmt.Fprintf(w, "  LogWriter: %T\n", c.LogWriter)
	fmt.Fprintf(w, "  RedisAddress: %q\n", c.RedisAddress)
	fmt.Fprintf(w, "  Method: %s\n", c.Method)
	fmt.Fprintf(w, "  Top: %d\n", c.Top)
}

func (c *Config) Print(w io.Writer) {
	c.SystemConfig.Print(w)
	c.Pagerank.Print(w)
}

// Validate() returns an error if any of the parameters is invalid.
func (c *Config) Validate() error {
	switch c.Method {
	case MethodBoth, pagerank.MethodSample, pagerank.MethodIterate:
	default:
		return fmt.Errorf("%w: %q", pagerank.ErrUnknownMethod, c.Method)
	}

	if c.Top < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTop, c.Top)
	}

	return c.Pagerank.Validate()
}

// LoadConfig() loads the .env file if present, then reads the variables from
// the enviroment and parses them into a config struct.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %v", err)
	}

	return ParseEnv(os.Environ())
}

// ParseEnv() parses the variables (formatted as "KEY=value") into a config struct.
// Unknown variables are ignored.
func ParseEnv(environ []string) (*Config, error) {
	var config = NewConfig()
	var err error

	for _, item := range environ {
		keyVal := strings.SplitN(item, "=", 2)
		if len(keyVal) != 2 {
			continue
		}
		key, val := keyVal[0], keyVal[1]

		switch key {
		case "LOGS":
			// LogWriter gets updated if a .log file is specified; otherwise it remains os.Stderr
			if strings.HasSuffix(val, ".log") {
				var file io.WriteCloser
				config.Log, file = logger.Init(val)
				config.LogWriter = file
				config.logCloser = file
				config.Pagerank.Log = config.Log
			}

		case "DAMPING":
			config.Pagerank.Damping, err = strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "SAMPLES":
			config.Pagerank.Samples, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "TOLERANCE":
			config.Pagerank.Tolerance, err = strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "MAX_ROUNDS":
			config.Pagerank.MaxRounds, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "SEED":
			config.Pagerank.Seed, err = strconv.ParseUint(val, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "METHOD":
			config.Method = val

		case "TOP":
			config.Top, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "REDIS_ADDRESS":
			config.RedisAddress = val
		}
	}

	return config, nil
}

// CloseLogs() closes the log file, if one was opened.
func (c *Config) CloseLogs() {
	if c.logCloser != nil {
		c.logCloser.Close()
	}
}

// ---------------------------------ERROR-CODES--------------------------------

var ErrInvalidTop = errors.New("top should be non-negative")
