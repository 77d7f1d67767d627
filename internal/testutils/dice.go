package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

var _ dice.Roller = (*ScriptedRoller)(nil)

// ScriptedRoller implements dice.Roller with predetermined results.
// Each scripted value is the 1-based result of the next Roll call.
type ScriptedRoller struct {
	mu      sync.Mutex
	rolls   []int
	index   int
	history []int
}

// NewScriptedRoller creates a roller that replays rolls in order
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// SetNextRoll appends a result to the script
func (r *ScriptedRoller) SetNextRoll(roll int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rolls = append(r.rolls, roll)
}

// Sizes returns the die size requested by each Roll call so far
func (r *ScriptedRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.history...)
}

// Roll implements dice.Roller
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.index >= len(r.rolls) {
		return 0, fmt.Errorf("no more scripted rolls available (used %d of %d)", r.index, len(r.rolls))
	}
	roll := r.rolls[r.index]
	if roll < 1 || roll > size {
		return 0, fmt.Errorf("scripted roll %d is invalid for d%d", roll, size)
	}
	r.index++
	r.history = append(r.history, size)
	return roll, nil
}

// RollN implements dice.Roller
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		roll, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, roll)
	}
	return out, nil
}
