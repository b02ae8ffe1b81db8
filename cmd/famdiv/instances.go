package main

import (
	"sort"

	"github.com/famdiv/famdiv/agent"
	"github.com/famdiv/famdiv/criteria"
	"github.com/famdiv/famdiv/family"
	"github.com/famdiv/famdiv/goods"
)

func binaryMember(desired string, cardinality int) (agent.Agent, error) {
	return agent.NewBinary(goods.Set(desired), cardinality)
}

func binaryFamily(name string, crit criteria.Criterion, members map[string]int) (*family.Family, error) {
	agents := make([]agent.Agent, 0, len(members))
	for _, desired := range sortedKeys(members) {
		a, err := binaryMember(desired, members[desired])
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	return family.New(agents, crit, name)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// twoGroupInstance is the running example used by the rwav, line and
// plurality demos: four goods and two binary families with weighted
// members, judged by the supplied criterion.
func twoGroupInstance(crit criteria.Criterion) ([]*family.Family, []goods.Good, error) {
	f1, err := binaryFamily("Group 1", crit, map[string]int{
		"wx": 1, "xy": 2, "yz": 3, "zw": 4,
	})
	if err != nil {
		return nil, nil, err
	}
	f2, err := binaryFamily("Group 2", crit, map[string]int{
		"wz": 2, "zy": 3,
	})
	if err != nil {
		return nil, nil, err
	}
	return []*family.Family{f1, f2}, goods.FromRunes("wxyz"), nil
}

// identicalTwinInstance builds the two member-identical families the
// two-thirds protocol requires.
func identicalTwinInstance() ([]*family.Family, []goods.Good, error) {
	one := criteria.OneOfBestC{C: 2}
	members := map[string]int{"wx": 1, "xy": 2, "yz": 3, "zw": 4}
	f1, err := binaryFamily("Group 1", one, members)
	if err != nil {
		return nil, nil, err
	}
	f2, err := binaryFamily("Group 2", one, members)
	if err != nil {
		return nil, nil, err
	}
	return []*family.Family{f1, f2}, goods.FromRunes("wxyz"), nil
}
