package catalog

import (
	"sort"
	"strings"

	"github.com/derekparker/trie"
	"github.com/npillmayer/exemplars/core"
)

// Entity is a named member of a catalog.
type Entity interface {
	Name() string
	Rank() int
}

// Catalog is an ordered, immutable collection of entities of one domain.
// Lookup is by name, iteration is in catalog order.
type Catalog[E Entity] struct {
	domain   string
	entities []E
	index    *trie.Trie
}

// New creates a catalog for domain (e.g. "language"), calling create for every
// name with its zero-based position. Names must be unique.
func New[E Entity](domain string, names []string, create func(name string, rank int) E) *Catalog[E] {
	c := &Catalog[E]{
		domain:   domain,
		entities: make([]E, 0, len(names)),
		index:    trie.New(),
	}
	for rank, name := range names {
		_, dup := c.index.Find(name)
		mustHold(!dup, "duplicate name in "+domain+" catalog: "+name)
		e := create(name, rank)
		c.index.Add(name, e)
		c.entities = append(c.entities, e)
	}
	tracer().Debugf("%s catalog with %d entries", domain, len(c.entities))
	return c
}

// Domain returns the name of the catalog's domain, e.g. "script".
func (c *Catalog[E]) Domain() string {
	return c.domain
}

// Len returns the number of entities in the catalog.
func (c *Catalog[E]) Len() int {
	return len(c.entities)
}

// All returns the entities in catalog order. The slice is a copy.
func (c *Catalog[E]) All() []E {
	all := make([]E, len(c.entities))
	copy(all, c.entities)
	return all
}

// Lookup finds an entity by name. Unknown names result in an error with code
// core.EMISSING, naming catalog entries with the same initial letters.
func (c *Catalog[E]) Lookup(name string) (E, error) {
	if node, ok := c.index.Find(name); ok {
		return node.Meta().(E), nil
	}
	var none E
	tracer().Errorf("%s %q not in catalog", c.domain, name)
	if s := c.Suggest(name); len(s) > 0 {
		return none, core.Error(core.EMISSING, "unknown %s %q, did you mean %s?",
			c.domain, name, strings.Join(s, " or "))
	}
	return none, core.Error(core.EMISSING, "unknown %s %q", c.domain, name)
}

// Suggest lists catalog names sharing the first two letters with name,
// in catalog order.
func (c *Catalog[E]) Suggest(name string) []string {
	prefix := []rune(name)
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}
	if len(prefix) == 0 {
		return nil
	}
	keys := c.index.PrefixSearch(string(prefix))
	sort.Slice(keys, func(i, j int) bool {
		return c.rankOf(keys[i]) < c.rankOf(keys[j])
	})
	return keys
}

func (c *Catalog[E]) rankOf(name string) int {
	if node, ok := c.index.Find(name); ok {
		return node.Meta().(E).Rank()
	}
	return len(c.entities)
}
