package agent

import (
	"fmt"

	"github.com/famdiv/famdiv/goods"
)

// Binary represents agents who value a bundle by how many of their desired
// goods it contains: Value(b) = |desired ∩ b|.
type Binary struct {
	base
}

// NewBinary builds a binary agent from its desired-goods set.
//
// Errors: ErrBadCardinality.
func NewBinary(desired goods.Bundle, cardinality int) (*Binary, error) {
	if cardinality < 1 {
		return nil, ErrBadCardinality
	}
	return &Binary{
		base: base{
			desired:     desired.Clone(),
			total:       desired.Len(),
			cardinality: cardinality,
		},
	}, nil
}

// Value counts the desired goods present in the bundle. Never fails.
func (a *Binary) Value(b goods.Bundle) (int, error) {
	n := 0
	for g := range b {
		if a.desired.Contains(g) {
			n++
		}
	}
	return n, nil
}

// ValueExceptBestC uses the binary closed form: removing the c best goods
// removes up to c desired ones.
func (a *Binary) ValueExceptBestC(b goods.Bundle, c int) (int, error) {
	if c <= 0 {
		return a.Value(b)
	}
	if b.Len() <= c {
		return 0, nil
	}
	v, _ := a.Value(b)
	if v <= c {
		return 0, nil
	}
	return v - c, nil
}

// ValueExceptWorstC uses the binary closed form: the removal keeps as many
// desired goods as possible, so only c minus the count of non-desired
// goods in the bundle (when positive) are lost.
func (a *Binary) ValueExceptWorstC(b goods.Bundle, c int) (int, error) {
	if c <= 0 {
		return a.Value(b)
	}
	if b.Len() <= c {
		return 0, nil
	}
	v, _ := a.Value(b)
	if lost := c - (b.Len() - v); lost > 0 {
		return v - lost, nil
	}
	return v, nil
}

// Value1OfCMMS uses the binary closed form floor(totalValue / c).
func (a *Binary) Value1OfCMMS(c int) (int, error) {
	if c < 1 {
		return 0, nil
	}
	return a.total / c, nil
}

// String describes the agent for display purposes.
func (a *Binary) String() string {
	return fmt.Sprintf("%d binary agent%s who want %s",
		a.cardinality, plural(a.cardinality), a.desired)
}
