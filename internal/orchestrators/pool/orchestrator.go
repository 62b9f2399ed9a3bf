// Package pool implements the orchestrator for dice pool sessions
package pool

//go:generate mockgen -destination=mock/mock_service.go -package=poolmock github.com/KirkDiggler/void-dice/internal/orchestrators/pool Service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/void-dice/internal/engine/resolver"
	"github.com/KirkDiggler/void-dice/internal/entities/dicepool"
	"github.com/KirkDiggler/void-dice/internal/errors"
	"github.com/KirkDiggler/void-dice/internal/pkg/clock"
	"github.com/KirkDiggler/void-dice/internal/pkg/idgen"
	poolsession "github.com/KirkDiggler/void-dice/internal/repositories/pool_session"
)

const (
	// DefaultMaxDice caps a session's base dice when none is configured
	DefaultMaxDice = 30
)

// Service defines the operations on dice pool sessions
type Service interface {
	CreatePool(ctx context.Context, input *CreatePoolInput) (*CreatePoolOutput, error)
	GetPool(ctx context.Context, input *GetPoolInput) (*GetPoolOutput, error)
	RollPool(ctx context.Context, input *RollPoolInput) (*RollPoolOutput, error)
	AddDice(ctx context.Context, input *AddDiceInput) (*AddDiceOutput, error)
	DeletePool(ctx context.Context, input *DeletePoolInput) (*DeletePoolOutput, error)
}

// Config holds the dependencies for the pool orchestrator
type Config struct {
	SessionRepo        poolsession.Repository
	SessionIDGenerator idgen.Generator
	RollIDGenerator    idgen.Generator
	Clock              clock.Clock
	Roller             dice.Roller

	// MaxDice caps base dice; DefaultMaxDice when zero
	MaxDice int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.SessionIDGenerator == nil {
		vb.RequiredField("SessionIDGenerator")
	}
	if c.RollIDGenerator == nil {
		vb.RequiredField("RollIDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	errors.ValidateMin("MaxDice", c.MaxDice, 0, vb)

	return vb.Build()
}

type orchestrator struct {
	sessionRepo poolsession.Repository
	sessionIDs  idgen.Generator
	rollIDs     idgen.Generator
	clock       clock.Clock
	resolver    *resolver.Resolver
	maxDice     int

	// serializes read-modify-write per session
	locks sync.Map
}

// NewOrchestrator creates a new pool orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	res, err := resolver.New(&resolver.Config{Roller: cfg.Roller})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create resolver")
	}

	maxDice := cfg.MaxDice
	if maxDice == 0 {
		maxDice = DefaultMaxDice
	}

	return &orchestrator{
		sessionRepo: cfg.SessionRepo,
		sessionIDs:  cfg.SessionIDGenerator,
		rollIDs:     cfg.RollIDGenerator,
		clock:       cfg.Clock,
		resolver:    res,
		maxDice:     maxDice,
	}, nil
}

func (o *orchestrator) lock(sessionID string) func() {
	mu, _ := o.locks.LoadOrStore(sessionID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// CreatePool starts a new session with a fresh pool
func (o *orchestrator) CreatePool(ctx context.Context, input *CreatePoolInput) (*CreatePoolOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRange("base_dice", input.BaseDice, 0, o.maxDice, vb)
	errors.ValidateMin("fury_dice", input.FuryDice, 0, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	createOutput, err := o.sessionRepo.Create(ctx, poolsession.CreateInput{
		Session: &poolsession.Session{
			ID: o.sessionIDs.Generate(),
			Pool: dicepool.State{
				BaseDice: input.BaseDice,
				FuryDice: input.FuryDice,
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pool session")
	}

	slog.Info("Pool session created",
		"session_id", createOutput.Session.ID,
		"base_dice", input.BaseDice,
	)

	return &CreatePoolOutput{Session: createOutput.Session}, nil
}

// GetPool retrieves a session
func (o *orchestrator) GetPool(ctx context.Context, input *GetPoolInput) (*GetPoolOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	getOutput, err := o.sessionRepo.Get(ctx, poolsession.GetInput{SessionID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pool session")
	}

	return &GetPoolOutput{Session: getOutput.Session}, nil
}

// RollPool resolves the session's pool, records the roll and updates totals
func (o *orchestrator) RollPool(ctx context.Context, input *RollPoolInput) (*RollPoolOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.FromContext(err)
	}

	unlock := o.lock(input.SessionID)
	defer unlock()

	getOutput, err := o.sessionRepo.Get(ctx, poolsession.GetInput{SessionID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pool session")
	}
	session := getOutput.Session

	result, err := o.resolver.Resolve(&session.Pool)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve pool").WithMeta("session_id", session.ID)
	}

	now := o.clock.Now()
	roll := poolsession.Roll{
		RollID:   o.rollIDs.Generate(),
		BaseDice: session.Pool.BaseDice,
		Result:   *result,
		RolledAt: now,
	}

	session.Rolls = append(session.Rolls, roll)
	if excess := len(session.Rolls) - poolsession.MaxHistory; excess > 0 {
		session.Rolls = session.Rolls[excess:]
	}
	session.RollCount++
	session.TotalEnergy += result.Energy
	session.TotalFury += result.Fury
	session.UpdatedAt = now

	if err := o.sessionRepo.Update(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to update pool session")
	}

	slog.Info("Pool rolled",
		"session_id", session.ID,
		"roll_id", roll.RollID,
		"base_dice", roll.BaseDice,
		"dice_rolled", len(result.Values),
		"sub_rounds", result.SubRounds(),
		"energy", result.Energy,
		"fury", result.Fury,
		"void_dice", session.Pool.VoidDice,
	)

	return &RollPoolOutput{
		Roll:    &roll,
		Session: session,
	}, nil
}

// AddDice grows the session's base dice, clamped to the configured maximum
func (o *orchestrator) AddDice(ctx context.Context, input *AddDiceInput) (*AddDiceOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if input.Count <= 0 {
		return nil, errors.InvalidArgumentf("dice to add must be positive, got %d", input.Count).
			WithMeta("count", input.Count)
	}

	unlock := o.lock(input.SessionID)
	defer unlock()

	getOutput, err := o.sessionRepo.Get(ctx, poolsession.GetInput{SessionID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get pool session")
	}
	session := getOutput.Session

	before := session.Pool.BaseDice
	session.Pool.BaseDice = min(before+input.Count, o.maxDice)
	added := session.Pool.BaseDice - before

	if added > 0 {
		session.UpdatedAt = o.clock.Now()
		if err := o.sessionRepo.Update(ctx, session); err != nil {
			return nil, errors.Wrap(err, "failed to update pool session")
		}
	}

	slog.Debug("Dice added to pool",
		"session_id", session.ID,
		"requested", input.Count,
		"added", added,
		"base_dice", session.Pool.BaseDice,
	)

	return &AddDiceOutput{
		Added:   added,
		Session: session,
	}, nil
}

// DeletePool ends a session
func (o *orchestrator) DeletePool(ctx context.Context, input *DeletePoolInput) (*DeletePoolOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	unlock := o.lock(input.SessionID)
	defer unlock()

	deleteOutput, err := o.sessionRepo.Delete(ctx, poolsession.DeleteInput{SessionID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete pool session")
	}
	o.locks.Delete(input.SessionID)

	slog.Info("Pool session deleted",
		"session_id", input.SessionID,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &DeletePoolOutput{RollsDeleted: deleteOutput.RollsDeleted}, nil
}
