// Command famdiv runs the fair-division protocols on built-in demo
// instances. Each subcommand prints the resulting allocation together
// with the fraction of happy members per family; --trace additionally
// streams the protocol's step-by-step reasoning through a zap logger.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/famdiv/famdiv/family"
	"github.com/famdiv/famdiv/goods"
	"github.com/famdiv/famdiv/trace"
)

var (
	traceRun bool
	verbose  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "famdiv",
	Short: "Democratic fair division of indivisible goods among families",
	Long: `famdiv demonstrates protocols that split indivisible goods between
families so that a guaranteed fraction of every family's members deems
the outcome fair by the family's own criterion.

Available protocols:
  rwav        round-robin bidding with the balance/weight recurrence
  twothirds   two identical families, 2/3 of each family happy
  line        sweep the goods as a line, families accept prefixes
  plurality   families vote over candidate partitions`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewDevelopmentConfig()
		if !verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// protocolSink returns the trace sink for a protocol run: the zap logger
// when --trace is set, silence otherwise.
func protocolSink() trace.Sink {
	if !traceRun {
		return trace.Discard
	}
	return func(msg string) { logger.Info(msg) }
}

// printOutcome reports each family's bundle and happy-member count.
func printOutcome(families []*family.Family, alloc goods.Allocation) error {
	for i, f := range families {
		desc, err := f.AllocationDescription(alloc[i], alloc)
		if err != nil {
			return err
		}
		fmt.Println(desc)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&traceRun, "trace", false, "log each protocol step")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(rwavCmd, twoThirdsCmd, lineCmd, pluralityCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
