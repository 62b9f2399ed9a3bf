// Package poolsession provides the repository interface and types for dice pool sessions
package poolsession

import (
	"context"
	"time"

	"github.com/KirkDiggler/void-dice/internal/entities/dicepool"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=poolsessionmock github.com/KirkDiggler/void-dice/internal/repositories/pool_session Repository

// MaxHistory is how many rolls a session keeps, newest last
const MaxHistory = 50

// Session is one game session's dice pool and its roll history
type Session struct {
	// Unique identifier (e.g. "pool_6f1c...")
	ID string

	// The pool this session rolls
	Pool dicepool.State

	// Running totals across every roll in the session
	TotalEnergy int
	TotalFury   int

	// Number of rolls made, including ones trimmed from Rolls
	RollCount int

	// Most recent rolls, oldest first
	Rolls []Roll

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Roll is one recorded resolution
type Roll struct {
	RollID   string
	BaseDice int
	Result   dicepool.RollResult
	RolledAt time.Time
}

// CreateInput contains parameters for creating a session
type CreateInput struct {
	Session *Session
}

// CreateOutput contains the stored session
type CreateOutput struct {
	Session *Session
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	SessionID string
}

// GetOutput contains the result of retrieving a session
type GetOutput struct {
	Session *Session
}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	SessionID string
}

// DeleteOutput contains the result of deleting a session
type DeleteOutput struct {
	RollsDeleted int
}

// Repository defines the storage operations for pool sessions
type Repository interface {
	// Create stores a new session
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing session
	Update(ctx context.Context, session *Session) error

	// Delete removes a session
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
