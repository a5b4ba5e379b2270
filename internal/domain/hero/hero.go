package hero

// Character is a full roster entry
type Character struct {
	Name        string
	Roles       []string
	Counters    NameSet // characters this one defeats
	CounteredBy NameSet
	Synergy     NameSet // characters it pairs well with
}

// HasRole reports whether the character carries the given role tag
func (c *Character) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// TankProfile is a tank dataset entry. Roles is never populated from the
// tank source itself.
type TankProfile struct {
	Name        string
	Roles       []string
	Counters    NameSet
	CounteredBy NameSet
	Synergy     NameSet
}
