// Package draft models a user's in-progress conversation with the bot
package draft

import (
	"slices"
	"time"
)

// Step is where a user is in the wizard
type Step string

const (
	StepNone    Step = ""
	StepHero    Step = "hero_info"
	StepAllies  Step = "allies_input"
	StepEnemies Step = "enemies_input"
)

// IsValid reports whether s is a known step
func (s Step) IsValid() bool {
	switch s {
	case StepNone, StepHero, StepAllies, StepEnemies:
		return true
	}
	return false
}

// Draft holds one user's wizard state. Drafts are keyed by user ID, so each
// user has at most one.
type Draft struct {
	ID        string
	UserID    string
	Step      Step
	Allies    []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New creates a draft at the given step
func New(id, userID string, step Step) *Draft {
	return &Draft{
		ID:     id,
		UserID: userID,
		Step:   step,
		Allies: []string{},
	}
}

// Clone returns a deep copy
func (d *Draft) Clone() *Draft {
	if d == nil {
		return nil
	}
	c := *d
	c.Allies = slices.Clone(d.Allies)
	return &c
}
