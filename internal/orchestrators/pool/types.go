package pool

import (
	poolsession "github.com/KirkDiggler/void-dice/internal/repositories/pool_session"
)

// CreatePoolInput defines the request for starting a pool session
type CreatePoolInput struct {
	BaseDice int
	FuryDice int
}

// CreatePoolOutput defines the response for starting a pool session
type CreatePoolOutput struct {
	Session *poolsession.Session
}

// GetPoolInput defines the request for reading a pool session
type GetPoolInput struct {
	SessionID string
}

// GetPoolOutput defines the response for reading a pool session
type GetPoolOutput struct {
	Session *poolsession.Session
}

// RollPoolInput defines the request for resolving a session's pool
type RollPoolInput struct {
	SessionID string
}

// RollPoolOutput defines the response for resolving a session's pool
type RollPoolOutput struct {
	Roll    *poolsession.Roll
	Session *poolsession.Session
}

// AddDiceInput defines the request for growing a session's base dice
type AddDiceInput struct {
	SessionID string
	Count     int
}

// AddDiceOutput defines the response for growing a session's base dice
type AddDiceOutput struct {
	// Dice actually added after clamping to the maximum
	Added   int
	Session *poolsession.Session
}

// DeletePoolInput defines the request for ending a pool session
type DeletePoolInput struct {
	SessionID string
}

// DeletePoolOutput defines the response for ending a pool session
type DeletePoolOutput struct {
	RollsDeleted int
}
