package main

import (
	"github.com/spf13/cobra"

	"github.com/famdiv/famdiv/criteria"
	"github.com/famdiv/famdiv/goods"
	"github.com/famdiv/famdiv/rwav"
)

var rwavThreshold float64

var rwavCmd = &cobra.Command{
	Use:   "rwav",
	Short: "Run the round-robin winner-approval-voting protocol",
	Long: `Two families take turns picking the good their members collectively
bid the highest weight for, where a member's bid reflects how close it
is to its fairness target. With --threshold above zero the enhanced
variant first looks for a single good wanted by at least that fraction
of one family and hands the rest to the other family.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		families, universe, err := twoGroupInstance(criteria.OneOfBestC{C: 2})
		if err != nil {
			return err
		}
		opts := rwav.Options{Trace: protocolSink()}
		var alloc goods.Allocation
		if rwavThreshold > 0 {
			alloc, err = rwav.AllocateEnhanced(families, universe, rwavThreshold, opts)
		} else {
			alloc, err = rwav.Allocate(families, universe, opts)
		}
		if err != nil {
			return err
		}
		return printOutcome(families, alloc)
	},
}

var twoThirdsCmd = &cobra.Command{
	Use:   "twothirds",
	Short: "Run the two-thirds protocol on two identical families",
	Long: `Starts from an empty bundle versus everything and repeatedly moves the
good that helps more unsatisfied members than it harms, guaranteeing
that two thirds of each family ends up satisfied. Both families must
have identical member lists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		families, universe, err := identicalTwinInstance()
		if err != nil {
			return err
		}
		alloc, err := rwav.AllocateTwoThirds(families, universe, rwav.Options{Trace: protocolSink()})
		if err != nil {
			return err
		}
		return printOutcome(families, alloc)
	},
}

func init() {
	rwavCmd.Flags().Float64Var(&rwavThreshold, "threshold", 0,
		"enhanced variant: desired-by fraction in (0,1] that lets a family claim a single good")
}
