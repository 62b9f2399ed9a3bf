package poolsession

import (
	"context"
	"sync"

	"github.com/KirkDiggler/void-dice/internal/errors"
)

const (
	errSessionNil   = "session cannot be nil"
	errSessionIDNil = "session ID cannot be empty"
)

// InMemoryRepository implements Repository with a guarded map.
// Sessions are copied on the way in and out.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Session
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string]*Session),
	}
}

// Ensure InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// Create stores a new session
func (r *InMemoryRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument(errSessionIDNil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.Session.ID]; exists {
		return nil, errors.FailedPreconditionf("session %s already exists", input.Session.ID)
	}

	stored := copySession(input.Session)
	trimHistory(stored)
	r.store[stored.ID] = stored

	return &CreateOutput{Session: copySession(stored)}, nil
}

// Get retrieves a session by ID
func (r *InMemoryRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDNil)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	session, exists := r.store[input.SessionID]
	if !exists {
		return nil, errors.NotFound("pool session not found").WithMeta("session_id", input.SessionID)
	}

	return &GetOutput{Session: copySession(session)}, nil
}

// Update replaces an existing session, trimming its history to MaxHistory
func (r *InMemoryRepository) Update(ctx context.Context, session *Session) error {
	if session == nil {
		return errors.InvalidArgument(errSessionNil)
	}
	if session.ID == "" {
		return errors.InvalidArgument(errSessionIDNil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[session.ID]; !exists {
		return errors.NotFound("pool session not found").WithMeta("session_id", session.ID)
	}

	stored := copySession(session)
	trimHistory(stored)
	r.store[session.ID] = stored

	return nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDNil)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	session, exists := r.store[input.SessionID]
	if !exists {
		return nil, errors.NotFound("pool session not found").WithMeta("session_id", input.SessionID)
	}
	delete(r.store, input.SessionID)

	return &DeleteOutput{RollsDeleted: len(session.Rolls)}, nil
}

func trimHistory(s *Session) {
	if over := len(s.Rolls) - MaxHistory; over > 0 {
		s.Rolls = append([]Roll(nil), s.Rolls[over:]...)
	}
}

func copySession(s *Session) *Session {
	out := *s
	if s.Rolls != nil {
		out.Rolls = make([]Roll, len(s.Rolls))
		for i, roll := range s.Rolls {
			out.Rolls[i] = copyRoll(roll)
		}
	}
	return &out
}

func copyRoll(r Roll) Roll {
	out := r
	out.Result.Values = append([]int(nil), r.Result.Values...)
	out.Result.Faces = append([]int(nil), r.Result.Faces...)
	return out
}
