// core/protein/protein.go
package protein

import (
	"iter"
	"strconv"
	"strings"
)

const loopPrefix = "loop_"

// LoopID returns the identifier of the n-th loop (1-based).
func LoopID(n int) string { return loopPrefix + strconv.Itoa(n) }

// loopIndex accepts only canonical identifiers: "loop_1", never "loop_01".
func loopIndex(id string) (int, bool) {
	if !strings.HasPrefix(id, loopPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(id[len(loopPrefix):])
	if err != nil || n < 1 || LoopID(n) != id {
		return 0, false
	}
	return n - 1, true
}

// Protein is a named, ordered list of loop peptides.
type Protein struct {
	Name     string
	Peptides []string
}

// Loop returns the peptide for a loop identifier.
func (p Protein) Loop(id string) (string, bool) {
	i, ok := loopIndex(id)
	if !ok || i >= len(p.Peptides) {
		return "", false
	}
	return p.Peptides[i], true
}

// LoopIDs lists the loop identifiers this protein carries.
func (p Protein) LoopIDs() []string {
	ids := make([]string, len(p.Peptides))
	for i := range p.Peptides {
		ids[i] = LoopID(i + 1)
	}
	return ids
}

// Collection is an ordered set of proteins keyed by name.
type Collection struct {
	list     []Protein
	index    map[string]int
	replaced []string
}

// NewCollection builds a collection from ps in order; see Add for duplicates.
func NewCollection(ps ...Protein) *Collection {
	c := &Collection{index: make(map[string]int, len(ps))}
	for _, p := range ps {
		c.Add(p)
	}
	return c
}

// Add appends p, or replaces an earlier protein of the same name in place.
func (c *Collection) Add(p Protein) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	p.Peptides = append([]string(nil), p.Peptides...)
	if i, dup := c.index[p.Name]; dup {
		c.list[i] = p
		c.replaced = append(c.replaced, p.Name)
		return
	}
	c.index[p.Name] = len(c.list)
	c.list = append(c.list, p)
}

// Replaced lists names whose earlier entry was overwritten by Add.
func (c *Collection) Replaced() []string { return append([]string(nil), c.replaced...) }

// Len is the number of proteins.
func (c *Collection) Len() int { return len(c.list) }

// Get looks a protein up by name.
func (c *Collection) Get(name string) (Protein, bool) {
	i, ok := c.index[name]
	if !ok {
		return Protein{}, false
	}
	return c.list[i], true
}

// Names returns the protein names in collection order.
func (c *Collection) Names() []string {
	out := make([]string, len(c.list))
	for i, p := range c.list {
		out[i] = p.Name
	}
	return out
}

// All yields the proteins in collection order.
func (c *Collection) All() iter.Seq[Protein] {
	return func(yield func(Protein) bool) {
		for _, p := range c.list {
			if !yield(p) {
				return
			}
		}
	}
}

// CommonLoops lists the loop identifiers present in every protein.
func (c *Collection) CommonLoops() []string {
	if len(c.list) == 0 {
		return nil
	}
	n := len(c.list[0].Peptides)
	for _, p := range c.list[1:] {
		n = min(n, len(p.Peptides))
	}
	ids := make([]string, n)
	for i := range ids {
		ids[i] = LoopID(i + 1)
	}
	return ids
}
