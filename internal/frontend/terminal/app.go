// Package terminal renders dice pool rolls in a terminal with tcell.
//
// Each roll is drawn as a grid of dice boxes stacked from the bottom of the
// screen. Dice from the first sub-round are white and exploded bonus dice
// are light blue. Space or a mouse click adds dice and rolls again, r
// re-rolls the same pool and q, Esc or Ctrl-C quits.
package terminal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/void-dice/internal/errors"
	"github.com/KirkDiggler/void-dice/internal/orchestrators/pool"
	poolsession "github.com/KirkDiggler/void-dice/internal/repositories/pool_session"
)

// Top rows reserved for the status and notice lines
const statusLines = 2

var (
	baseStyle   = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)
	bonusStyle  = tcell.StyleDefault.Background(tcell.ColorLightBlue).Foreground(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	errorStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// Config holds the dependencies for the terminal app
type Config struct {
	Screen tcell.Screen
	Pool   pool.Service

	// Dice in the pool at start
	BaseDice int

	// Dice added per click or space
	AddStep int

	// Defaults to discarding; stderr belongs to the screen
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Screen == nil {
		vb.RequiredField("Screen")
	}
	if c.Pool == nil {
		vb.RequiredField("Pool")
	}
	errors.ValidateMin("BaseDice", c.BaseDice, 0, vb)
	errors.ValidateMin("AddStep", c.AddStep, 1, vb)

	return vb.Build()
}

// App is one terminal session over one dice pool
type App struct {
	screen   tcell.Screen
	pool     pool.Service
	baseDice int
	addStep  int
	logger   *slog.Logger

	layout    Layout
	session   *poolsession.Session
	last      *poolsession.Roll
	mouseDown bool
	notice    string
}

// New creates a terminal app. The screen must already be initialized.
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	w, h := cfg.Screen.Size()
	return &App{
		screen:   cfg.Screen,
		pool:     cfg.Pool,
		baseDice: cfg.BaseDice,
		addStep:  cfg.AddStep,
		logger:   logger,
		layout:   NewLayout(w, h),
	}, nil
}

// Run starts a pool session, rolls it once and then handles input until
// the user quits or ctx is canceled. The session is deleted on return.
func (a *App) Run(ctx context.Context) error {
	err := a.start(ctx)
	defer a.closeSession()
	if err != nil {
		return err
	}

	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	a.draw()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(nil))
		case <-done:
		}
	}()

	for {
		ev := a.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}

		quit, err := a.handleEvent(ctx, ev)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
		a.draw()
	}
}

func (a *App) start(ctx context.Context) error {
	created, err := a.pool.CreatePool(ctx, &pool.CreatePoolInput{BaseDice: a.baseDice})
	if err != nil {
		return errors.Wrap(err, "failed to create pool")
	}
	a.session = created.Session
	a.logger.Debug("Pool session started", "session_id", a.session.ID, "base_dice", a.baseDice)

	return a.roll(ctx)
}

func (a *App) closeSession() {
	if a.session == nil {
		return
	}

	out, err := a.pool.DeletePool(context.Background(), &pool.DeletePoolInput{SessionID: a.session.ID})
	if err != nil {
		a.logger.Warn("Failed to delete pool session", "session_id", a.session.ID, "error", err)
		return
	}
	a.logger.Debug("Pool session closed", "session_id", a.session.ID, "rolls", out.RollsDeleted)
}

// handleEvent applies one input event and reports whether to quit
func (a *App) handleEvent(ctx context.Context, ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true, nil
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true, nil
			case ' ':
				return false, a.moreDice(ctx)
			case 'r', 'R':
				return false, a.roll(ctx)
			}
		}

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.ButtonPrimary != 0
		clicked := pressed && !a.mouseDown
		a.mouseDown = pressed
		if clicked {
			return false, a.moreDice(ctx)
		}

	case *tcell.EventResize:
		a.layout = NewLayout(a.screen.Size())
		a.screen.Sync()

	case *tcell.EventInterrupt:
		return true, nil
	}

	return false, nil
}

func (a *App) moreDice(ctx context.Context) error {
	out, err := a.pool.AddDice(ctx, &pool.AddDiceInput{
		SessionID: a.session.ID,
		Count:     a.addStep,
	})
	if err != nil {
		return errors.Wrap(err, "failed to add dice")
	}
	a.session = out.Session

	if out.Added < a.addStep {
		a.notice = fmt.Sprintf("pool is full at %d dice", out.Session.Pool.BaseDice)
	} else {
		a.notice = ""
	}

	return a.roll(ctx)
}

func (a *App) roll(ctx context.Context) error {
	out, err := a.pool.RollPool(ctx, &pool.RollPoolInput{SessionID: a.session.ID})
	if err != nil {
		return errors.Wrap(err, "failed to roll pool")
	}
	a.session = out.Session
	a.last = out.Roll

	return nil
}

func (a *App) draw() {
	a.screen.Clear()

	if a.last != nil {
		values := a.last.Result.Values
		base := a.last.Result.SubRoundSize(0)
		for i, value := range values {
			style := baseStyle
			if i >= base {
				style = bonusStyle
			}
			x, y := a.layout.Position(i)
			a.drawDie(x, y, value, style)
		}
	}

	a.drawText(0, 0, a.status(), statusStyle)
	if a.notice != "" {
		a.drawText(0, 1, a.notice, errorStyle)
	}

	a.screen.Show()
}

// drawDie fills a die box and centers its value. Cells above the status
// lines are clipped.
func (a *App) drawDie(x, y, value int, style tcell.Style) {
	for dy := 0; dy < a.layout.DieHeight; dy++ {
		row := y + dy
		if row < statusLines || row >= a.layout.Height {
			continue
		}
		for dx := 0; dx < a.layout.DieWidth; dx++ {
			a.screen.SetContent(x+dx, row, ' ', nil, style)
		}
	}

	cx := x + a.layout.DieWidth/2
	cy := y + a.layout.DieHeight/2
	if cy >= statusLines && cy < a.layout.Height {
		a.screen.SetContent(cx, cy, rune('0'+value), nil, style)
	}
}

func (a *App) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		if x+i >= a.layout.Width {
			return
		}
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (a *App) status() string {
	if a.session == nil || a.last == nil {
		return "rolling..."
	}

	result := a.last.Result
	status := fmt.Sprintf("dice %d  energy %d  fury %d  | total energy %d  fury %d  void %d  | space/click +%d  r reroll  q quit",
		len(result.Values), result.Energy, result.Fury,
		a.session.TotalEnergy, a.session.TotalFury, a.session.Pool.VoidDice,
		a.addStep)

	if a.layout.Rows(len(result.Values))*(a.layout.DieHeight+a.layout.MarginY) > a.layout.Height-statusLines {
		status += "  (clipped)"
	}
	return status
}
