package testutils

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/void-dice/internal/errors"
)

// ScriptedRoller implements dice.Roller with predetermined faces.
// Faces are handed out in order across Roll and RollN calls.
type ScriptedRoller struct {
	mu    sync.Mutex
	faces []int
	next  int
}

// NewScriptedRoller creates a roller that returns faces in order
func NewScriptedRoller(faces ...int) *ScriptedRoller {
	return &ScriptedRoller{faces: faces}
}

// Ensure ScriptedRoller implements dice.Roller
var _ dice.Roller = (*ScriptedRoller)(nil)

// Append queues more faces
func (r *ScriptedRoller) Append(faces ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faces = append(r.faces, faces...)
}

// Remaining returns how many scripted faces have not been used
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.faces) - r.next
}

// Drawn returns how many faces have been handed out
func (r *ScriptedRoller) Drawn() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next
}

// Roll returns the next scripted face
func (r *ScriptedRoller) Roll(_ int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.next >= len(r.faces) {
		return 0, errors.FailedPreconditionf("scripted roller exhausted after %d faces", len(r.faces))
	}
	face := r.faces[r.next]
	r.next++
	return face, nil
}

// RollN returns the next count scripted faces
func (r *ScriptedRoller) RollN(count, _ int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.next+count > len(r.faces) {
		return nil, errors.FailedPreconditionf("scripted roller has %d faces left, %d requested",
			len(r.faces)-r.next, count)
	}
	out := make([]int, count)
	copy(out, r.faces[r.next:r.next+count])
	r.next += count
	return out, nil
}
