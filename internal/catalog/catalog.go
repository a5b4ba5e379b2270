// Package catalog holds the read-only character reference data: the full
// roster and the tank subset. A Catalog is never mutated after Build, so
// it can be shared across goroutines without locking.
package catalog

import (
	"github.com/KirkDiggler/counterpick-bot/internal/domain/hero"
)

// Catalog is an immutable snapshot of both datasets
type Catalog struct {
	characters map[string]*hero.Character
	tanks      map[string]*hero.TankProfile
	// tankOrder is first-insertion order of tank names; ranking ties keep it
	tankOrder []string
}

// Empty returns a catalog with no entries
func Empty() *Catalog {
	return &Catalog{
		characters: make(map[string]*hero.Character),
		tanks:      make(map[string]*hero.TankProfile),
	}
}

// Character looks up a roster entry by any spelling of its name
func (c *Catalog) Character(name string) (*hero.Character, bool) {
	ch, ok := c.characters[hero.Canonical(name)]
	return ch, ok
}

// Tank looks up a tank entry by any spelling of its name
func (c *Catalog) Tank(name string) (*hero.TankProfile, bool) {
	t, ok := c.tanks[hero.Canonical(name)]
	return t, ok
}

// Tanks returns tank profiles in catalog order
func (c *Catalog) Tanks() []*hero.TankProfile {
	out := make([]*hero.TankProfile, 0, len(c.tankOrder))
	for _, name := range c.tankOrder {
		out = append(out, c.tanks[name])
	}
	return out
}

// CharacterCount returns the roster size
func (c *Catalog) CharacterCount() int {
	return len(c.characters)
}

// TankCount returns the number of tank entries
func (c *Catalog) TankCount() int {
	return len(c.tanks)
}

// CharacterNames returns all roster names (unordered)
func (c *Catalog) CharacterNames() []string {
	out := make([]string, 0, len(c.characters))
	for name := range c.characters {
		out = append(out, name)
	}
	return out
}

// Builder accumulates records before freezing them into a Catalog.
// Duplicate names overwrite silently; the last record wins.
type Builder struct {
	cat *Catalog
}

// NewBuilder starts an empty catalog
func NewBuilder() *Builder {
	return &Builder{cat: Empty()}
}

// AddCharacter stores a roster record
func (b *Builder) AddCharacter(ch *hero.Character) {
	b.cat.characters[ch.Name] = ch
}

// AddTank stores a tank record
func (b *Builder) AddTank(t *hero.TankProfile) {
	if _, exists := b.cat.tanks[t.Name]; !exists {
		b.cat.tankOrder = append(b.cat.tankOrder, t.Name)
	}
	b.cat.tanks[t.Name] = t
}

// Build returns the finished catalog. The builder must not be used afterwards.
func (b *Builder) Build() *Catalog {
	cat := b.cat
	b.cat = nil
	return cat
}
