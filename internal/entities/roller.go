// Package entities provides core data structures for rpg-roller.
package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// EntityTypeRoller is the rpg-toolkit entity type of a roller
const EntityTypeRoller = "roller"

var _ core.Entity = (*Roller)(nil)

// Roller is whoever asked for a roll: a player, a GM or a bot command.
// It is the source of roll events.
type Roller struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// NewRoller creates a roller entity
func NewRoller(id, name string) *Roller {
	return &Roller{ID: id, Name: name}
}

// GetID returns the roller's ID
func (r *Roller) GetID() string {
	return r.ID
}

// GetType returns the entity type for rpg-toolkit
func (r *Roller) GetType() string {
	return EntityTypeRoller
}
