package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/famdiv/famdiv/criteria"
	"github.com/famdiv/famdiv/goods"
	"github.com/famdiv/famdiv/line"
)

var lineOrder string

var lineCmd = &cobra.Command{
	Use:   "line",
	Short: "Run the line protocol over an ordered sequence of goods",
	Long: `Sweeps the goods from left to right; the first family in which at
least a 1/k fraction of members accepts the current prefix takes it,
and the protocol recurses on the remaining families and goods. The
demo instance uses the envy-free-except-1 criterion, so at least half
of each of the two families is guaranteed happy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		families, universe, err := twoGroupInstance(criteria.EnvyFreeExceptC{C: 1})
		if err != nil {
			return err
		}
		if lineOrder != "" {
			universe, err = parseOrder(lineOrder, universe)
			if err != nil {
				return err
			}
		}
		alloc, err := line.Allocate(families, universe, line.Options{Trace: protocolSink()})
		if err != nil {
			return err
		}
		return printOutcome(families, alloc)
	},
}

// parseOrder turns the --order flag into a sweep order, rejecting any
// string that is not an exact permutation of the instance goods.
func parseOrder(order string, universe []goods.Good) ([]goods.Good, error) {
	reordered := goods.FromRunes(order)
	perm := goods.Allocation{goods.NewBundle(reordered...)}
	if len(reordered) != len(universe) || perm.Validate(universe) != nil {
		return nil, fmt.Errorf("--order %q must permute %s", order, goods.NewBundle(universe...))
	}
	return reordered, nil
}

func init() {
	lineCmd.Flags().StringVar(&lineOrder, "order", "",
		"sweep order for the goods w,x,y,z (default instance order)")
}
