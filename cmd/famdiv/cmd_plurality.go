package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/famdiv/famdiv/criteria"
	"github.com/famdiv/famdiv/goods"
	"github.com/famdiv/famdiv/plurality"
)

var pluralityCmd = &cobra.Command{
	Use:   "plurality",
	Short: "Run the plurality-voting protocol over candidate partitions",
	Long: `Each family votes for the bundle its weighted plurality of members
ranks best. When the families' winning bundles differ, the matching
permutation of the candidate partition is the allocation; a collision
means no permutation of that partition satisfies both families.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		families, _, err := twoGroupInstance(criteria.EnvyFreeExceptC{C: 1})
		if err != nil {
			return err
		}
		partition := []goods.Bundle{goods.Set("wx"), goods.Set("yz")}
		fmt.Printf("Candidate partition: %s | %s\n", partition[0], partition[1])
		alloc, ok, err := plurality.FindEnvyFreeAllocation(families, partition, plurality.Options{Trace: protocolSink()})
		if err != nil {
			return err
		}
		if !ok {
			fmt.Println("Both families voted for the same bundle; no assignment works.")
			return nil
		}
		return printOutcome(families, alloc)
	},
}
