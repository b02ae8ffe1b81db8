package rwav

// WeightTable memoizes the balance recurrence B(r,s) and the derived vote
// weight w(r,s). The table is a pure function of integer pairs; one table
// is shared across all members, turns and families of a protocol run, and
// its size is bounded by the (r,s) range — at most the good-universe size
// in each coordinate.
type WeightTable struct {
	memo map[[2]int]float64
}

// NewWeightTable returns an empty memo table.
func NewWeightTable() *WeightTable {
	return &WeightTable{memo: make(map[[2]int]float64)}
}

// Balance computes B(r,s), the survival probability bound of a member with
// r remaining desired goods and s still-missing goods. B is always within
// [0,1]; B(r,s)=1 for s ≤ 0 and B(r,s)=0 for s > r.
func (t *WeightTable) Balance(r, s int) float64 {
	if s <= 0 {
		return 1
	}
	if s > r {
		return 0
	}
	key := [2]int{r, s}
	if v, ok := t.memo[key]; ok {
		return v
	}
	v := (t.Balance(r-1, s) + t.Balance(r-1, s-1)) / 2
	if alt := t.Balance(r-2, s-1); alt < v {
		v = alt
	}
	t.memo[key] = v
	return v
}

// Weight computes the vote weight w(r,s) = B(r,s) − B(r−1,s).
func (t *WeightTable) Weight(r, s int) float64 {
	return t.Balance(r, s) - t.Balance(r-1, s)
}
