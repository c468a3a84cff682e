package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/vertex-lab/linkrank/pkg/models"
	"github.com/vertex-lab/linkrank/pkg/store/redistore"
	"github.com/vertex-lab/linkrank/pkg/utils/redisutils"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd() returns the linkrank command. Flags override the values read
// from the environment, which override the defaults.
func NewRootCmd() *cobra.Command {
	defaults := NewConfig()

	cmd := &cobra.Command{
		Use:   "linkrank <corpus>",
		Short: "linkrank - estimates the PageRank of a corpus of linked documents",
		Long: `linkrank estimates the PageRank of the pages of a corpus, either a directory
of HTML pages or a YAML/JSON file mapping each page to the pages it links to.
The pagerank is computed by sampling a random walk and by iterating the
PageRank equations until convergence.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.Float64("damping", defaults.Pagerank.Damping, "probability of following a link instead of jumping to a random page")
	flags.Int("samples", defaults.Pagerank.Samples, "number of steps of the random walk")
	flags.Float64("tolerance", defaults.Pagerank.Tolerance, "maximum per-page change for the iteration to converge")
	flags.Int("max-rounds", defaults.Pagerank.MaxRounds, "maximum number of rounds of the iteration")
	flags.Uint64("seed", defaults.Pagerank.Seed, "seed of the random walk (0 seeds from the current time)")
	flags.String("method", defaults.Method, "pagerank method: sample, iterate or both")
	flags.Int("top", defaults.Top, "print only the top pages by pagerank (0 prints all pages by name)")
	flags.String("redis", defaults.RedisAddress, "address of the Redis server where results are saved (bare --redis uses "+redisutils.ProdAddress+")")
	flags.Lookup("redis").NoOptDefVal = redisutils.ProdAddress
	flags.Bool("print-config", false, "print the configuration before running")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		config, err := LoadConfig()
		if err != nil {
			return err
		}
		defer config.CloseLogs()

		if err := applyFlags(cmd, config); err != nil {
			return err
		}

		if err := config.Validate(); err != nil {
			return err
		}

		if printConfig, _ := cmd.Flags().GetBool("print-config"); printConfig {
			config.Print(cmd.OutOrStdout())
		}

		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		var RS models.RankStore
		if config.RedisAddress != "" {
			cl := redisutils.SetupClient(config.RedisAddress)
			defer cl.Close()

			if err := redisutils.Ping(ctx, cl); err != nil {
				return fmt.Errorf("failed to connect to redis at %s: %w", config.RedisAddress, err)
			}

			if RS, err = redistore.NewRankStore(cl); err != nil {
				return err
			}
		}

		return Run(ctx, config, args[0], RS, cmd.OutOrStdout())
	}

	return cmd
}

// applyFlags() overwrites the config with the flags explicitly set by the user.
func applyFlags(cmd *cobra.Command, config *Config) error {
	flags := cmd.Flags()
	var err error

	if flags.Changed("damping") {
		if config.Pagerank.Damping, err = flags.GetFloat64("damping"); err != nil {
			return err
		}
	}

	if flags.Changed("samples") {
		if config.Pagerank.Samples, err = flags.GetInt("samples"); err != nil {
			return err
		}
	}

	if flags.Changed("tolerance") {
		if config.Pagerank.Tolerance, err = flags.GetFloat64("tolerance"); err != nil {
			return err
		}
	}

	if flags.Changed("max-rounds") {
		if config.Pagerank.MaxRounds, err = flags.GetInt("max-rounds"); err != nil {
			return err
		}
	}

	if flags.Changed("seed") {
		if config.Pagerank.Seed, err = flags.GetUint64("seed"); err != nil {
			return err
		}
	}

	if flags.Changed("method") {
		if config.Method, err = flags.GetString("method"); err != nil {
			return err
		}
	}

	if flags.Changed("top") {
		if config.Top, err = flags.GetInt("top"); err != nil {
			return err
		}
	}

	if flags.Changed("redis") {
		if config.RedisAddress, err = flags.GetString("redis"); err != nil {
			return err
		}
	}

	return nil
}
