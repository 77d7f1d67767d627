package roll

import (
	"io"

	rollresult "github.com/KirkDiggler/rpg-roller/internal/entities/roll"
	"github.com/KirkDiggler/rpg-roller/internal/entities/special"
)

// RollActionInput defines the request for an action roll. Nil thresholds
// take the defaults: criticals on 1, complications on 20.
type RollActionInput struct {
	RollerID          string
	RollerName        string
	DiceCount         int
	TargetNumber      int
	CriticalRange     *int
	ComplicationRange *int
}

// RollActionOutput defines the response for an action roll
type RollActionOutput struct {
	RollID        string
	Result        *rollresult.Result
	Complications int
}

// RollCombatInput defines the request for a combat roll. Tokens are
// user-typed specials such as "Vicious(2)"; Specials are already built.
type RollCombatInput struct {
	RollerID   string
	RollerName string
	BaseValue  int
	DiceCount  int
	Tokens     []string
	Specials   []special.Special
}

// RollCombatOutput defines the response for a combat roll
type RollCombatOutput struct {
	RollID       string
	Result       *rollresult.Result
	Effects      int
	SpecialTotal int
	// Degraded lists tokens that were malformed and fell back to a bare name
	Degraded []string
	// Dropped lists tokens that could not be read or resolved and were ignored
	Dropped []string
}

// RegisterTemplateInput defines the request for registering a template.
// Token carries no value, for example "Piercing(s)".
type RegisterTemplateInput struct {
	Token      string
	Derivation string
	Min        *int
	Max        *int
	Persist    bool
}

// RegisterTemplateOutput defines the response for registering a template.
// Registered is false when the name was already taken.
type RegisterTemplateOutput struct {
	Registered bool
	Persisted  bool
	Template   special.Special
}

// UnregisterTemplateInput defines the request for removing a template
type UnregisterTemplateInput struct {
	Name string
}

// UnregisterTemplateOutput defines the response for removing a template
type UnregisterTemplateOutput struct {
	Removed bool
}

// GetTemplateInput defines the request for looking up a template
type GetTemplateInput struct {
	Name string
}

// GetTemplateOutput defines the response for looking up a template
type GetTemplateOutput struct {
	Template special.Special
}

// ListTemplatesInput defines the request for listing templates
type ListTemplatesInput struct{}

// ListTemplatesOutput defines the response for listing templates
type ListTemplatesOutput struct {
	Templates []special.Special
}

// LoadTemplatesInput defines the request for seeding the registry.
// Built-in templates load first, then Seed, then the repository.
type LoadTemplatesInput struct {
	SkipDefaults bool
	Seed         io.Reader
}

// LoadTemplatesOutput defines the response for seeding the registry
type LoadTemplatesOutput struct {
	Loaded  int
	Skipped []string
}
