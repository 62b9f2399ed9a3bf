// Package builders provides test data builders for creating test fixtures
package builders

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/void-dice/internal/entities/dicepool"
	poolsession "github.com/KirkDiggler/void-dice/internal/repositories/pool_session"
	"github.com/KirkDiggler/void-dice/internal/testutils"
)

// SessionBuilder provides a fluent interface for building test Session instances
type SessionBuilder struct {
	session *poolsession.Session
}

// NewSessionBuilder creates a new builder with a five-die pool and fixed timestamps
func NewSessionBuilder() *SessionBuilder {
	return &SessionBuilder{
		session: &poolsession.Session{
			ID:        "pool_test-123",
			Pool:      dicepool.State{BaseDice: testutils.DefaultBaseDice},
			CreatedAt: testutils.FixedTime,
			UpdatedAt: testutils.FixedTime,
		},
	}
}

// WithID sets the session ID
func (b *SessionBuilder) WithID(id string) *SessionBuilder {
	b.session.ID = id
	return b
}

// WithPool sets base, void and fury dice
func (b *SessionBuilder) WithPool(baseDice, voidDice, furyDice int) *SessionBuilder {
	b.session.Pool = dicepool.State{
		BaseDice: baseDice,
		VoidDice: voidDice,
		FuryDice: furyDice,
	}
	return b
}

// WithTotals sets the running energy and fury totals
func (b *SessionBuilder) WithTotals(energy, fury int) *SessionBuilder {
	b.session.TotalEnergy = energy
	b.session.TotalFury = fury
	return b
}

// WithRoll appends a recorded roll of the given values as a single sub-round
func (b *SessionBuilder) WithRoll(rollID string, values ...int) *SessionBuilder {
	faces := make([]int, dicepool.Sides)
	energy, fury := 0, 0
	for _, v := range values {
		faces[v-1]++
		if v == dicepool.FuryFace {
			fury++
		} else {
			energy++
		}
	}

	b.session.Rolls = append(b.session.Rolls, poolsession.Roll{
		RollID:   rollID,
		BaseDice: len(values),
		Result: dicepool.RollResult{
			Values: values,
			Faces:  faces,
			Energy: energy,
			Fury:   fury,
		},
		RolledAt: b.session.UpdatedAt,
	})
	b.session.RollCount++
	return b
}

// WithRolls appends n empty rolls with IDs roll_0 through roll_{n-1}
func (b *SessionBuilder) WithRolls(n int) *SessionBuilder {
	for i := 0; i < n; i++ {
		b.WithRoll(fmt.Sprintf("roll_%d", i))
	}
	return b
}

// WithTimestamps sets created and updated timestamps
func (b *SessionBuilder) WithTimestamps(createdAt, updatedAt time.Time) *SessionBuilder {
	b.session.CreatedAt = createdAt
	b.session.UpdatedAt = updatedAt
	return b
}

// Build returns the built session
func (b *SessionBuilder) Build() *poolsession.Session {
	return b.session
}
