package terminal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/void-dice/internal/errors"
	"github.com/KirkDiggler/void-dice/internal/orchestrators/pool"
	poolmock "github.com/KirkDiggler/void-dice/internal/orchestrators/pool/mock"
	"github.com/KirkDiggler/void-dice/internal/pkg/idgen"
	poolsession "github.com/KirkDiggler/void-dice/internal/repositories/pool_session"
	"github.com/KirkDiggler/void-dice/internal/testutils"
)

type AppTestSuite struct {
	suite.Suite
	ctx     context.Context
	screen  tcell.SimulationScreen
	roller  *testutils.ScriptedRoller
	service pool.Service
}

func TestAppTestSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) SetupTest() {
	s.ctx = context.Background()

	s.screen = tcell.NewSimulationScreen("UTF-8")
	s.Require().NoError(s.screen.Init())
	s.screen.SetSize(80, 24)

	s.roller = testutils.NewScriptedRoller()
	service, err := pool.NewOrchestrator(&pool.Config{
		SessionRepo:        poolsession.NewInMemory(),
		SessionIDGenerator: idgen.NewSequential(idgen.PrefixPool),
		RollIDGenerator:    idgen.NewSequential(idgen.PrefixRoll),
		Clock:              testutils.NewFixedClock(),
		Roller:             s.roller,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *AppTestSuite) TearDownTest() {
	s.screen.Fini()
}

func (s *AppTestSuite) newApp(baseDice int) *App {
	app, err := New(&Config{
		Screen:   s.screen,
		Pool:     s.service,
		BaseDice: baseDice,
		AddStep:  2,
	})
	s.Require().NoError(err)
	return app
}

func (s *AppTestSuite) post(events ...tcell.Event) {
	for _, ev := range events {
		s.Require().NoError(s.screen.PostEvent(ev))
	}
}

func (s *AppTestSuite) rowText(y int) string {
	w, _ := s.screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func (s *AppTestSuite) cell(x, y int) (rune, tcell.Color) {
	r, _, style, _ := s.screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return r, bg
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func repeated(face, n int) []int {
	faces := make([]int, n)
	for i := range faces {
		faces[i] = face
	}
	return faces
}

func (s *AppTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = New(&Config{AddStep: 0, BaseDice: -1})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Contains(fields, "Screen")
	s.Contains(fields, "Pool")
	s.Contains(fields, "BaseDice")
	s.Contains(fields, "AddStep")
}

func (s *AppTestSuite) TestRun_QuitKey() {
	s.roller.Append(3, 4)
	app := s.newApp(2)

	s.post(key('q'))
	s.Require().NoError(app.Run(s.ctx))

	s.Equal(1, app.session.RollCount)

	// session is removed on exit
	_, err := s.service.GetPool(s.ctx, &pool.GetPoolInput{SessionID: app.session.ID})
	s.True(errors.IsNotFound(err))
}

func (s *AppTestSuite) TestRun_SpaceAndReroll() {
	s.roller.Append(3, 4)
	s.roller.Append(2, 2, 3, 4)
	s.roller.Append(1, 1, 1, 1)
	app := s.newApp(2)

	s.post(key(' '), key('r'), tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone))
	s.Require().NoError(app.Run(s.ctx))

	s.Equal(4, app.session.Pool.BaseDice)
	s.Equal(3, app.session.RollCount)
	s.Equal(6, app.session.TotalEnergy)
	s.Equal(4, app.session.TotalFury)
	s.Equal([]int{1, 1, 1, 1}, app.last.Result.Values)
	s.Zero(s.roller.Remaining())
}

func (s *AppTestSuite) TestRun_ContextCanceled() {
	s.roller.Append(3, 4)
	app := s.newApp(2)

	ctx, cancel := context.WithCancel(s.ctx)
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Run(ctx)
	}()
	cancel()

	select {
	case err := <-errCh:
		// cancel can land before the first roll
		if err != nil {
			s.True(errors.IsCanceled(err))
		}
	case <-time.After(2 * time.Second):
		s.Fail("run did not stop after cancel")
	}
}

func (s *AppTestSuite) TestRun_ServiceFailures() {
	s.Run("create fails", func() {
		ctrl := gomock.NewController(s.T())
		mockService := poolmock.NewMockService(ctrl)
		mockService.EXPECT().
			CreatePool(gomock.Any(), &pool.CreatePoolInput{BaseDice: 2}).
			Return(nil, errors.Internal("repository unavailable"))

		app, err := New(&Config{Screen: s.screen, Pool: mockService, BaseDice: 2, AddStep: 2})
		s.Require().NoError(err)

		err = app.Run(s.ctx)
		s.Require().Error(err)
		s.True(errors.IsInternal(err))
		s.Contains(err.Error(), "failed to create pool")
	})

	s.Run("first roll fails and session is still deleted", func() {
		ctrl := gomock.NewController(s.T())
		mockService := poolmock.NewMockService(ctrl)
		session := &poolsession.Session{ID: "pool_1"}

		mockService.EXPECT().
			CreatePool(gomock.Any(), gomock.Any()).
			Return(&pool.CreatePoolOutput{Session: session}, nil)
		mockService.EXPECT().
			RollPool(gomock.Any(), &pool.RollPoolInput{SessionID: "pool_1"}).
			Return(nil, errors.FailedPrecondition("no faces left"))
		mockService.EXPECT().
			DeletePool(gomock.Any(), &pool.DeletePoolInput{SessionID: "pool_1"}).
			Return(&pool.DeletePoolOutput{}, nil)

		app, err := New(&Config{Screen: s.screen, Pool: mockService, BaseDice: 2, AddStep: 2})
		s.Require().NoError(err)

		err = app.Run(s.ctx)
		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
		s.Contains(err.Error(), "failed to roll pool")
	})
}

func (s *AppTestSuite) TestHandleEvent_MouseClicks() {
	s.roller.Append(3, 4)
	s.roller.Append(2, 3, 4, 6)
	s.roller.Append(1)
	s.roller.Append(repeated(1, 6)...)
	app := s.newApp(2)
	s.Require().NoError(app.start(s.ctx))

	press := tcell.NewEventMouse(10, 10, tcell.ButtonPrimary, tcell.ModNone)
	release := tcell.NewEventMouse(10, 10, tcell.ButtonNone, tcell.ModNone)

	quit, err := app.handleEvent(s.ctx, press)
	s.Require().NoError(err)
	s.False(quit)
	s.Equal([]int{2, 3, 4, 6, 1}, app.last.Result.Values)

	// a held button only counts once
	_, err = app.handleEvent(s.ctx, tcell.NewEventMouse(12, 10, tcell.ButtonPrimary, tcell.ModNone))
	s.Require().NoError(err)
	_, err = app.handleEvent(s.ctx, release)
	s.Require().NoError(err)
	s.Equal(2, app.session.RollCount)

	_, err = app.handleEvent(s.ctx, press)
	s.Require().NoError(err)
	s.Equal(6, app.session.Pool.BaseDice)
	s.Equal(3, app.session.RollCount)
	s.Equal(1, app.session.Pool.VoidDice)
}

func (s *AppTestSuite) TestHandleEvent_QuitEvents() {
	app := s.newApp(0)

	events := []tcell.Event{
		key('q'),
		key('Q'),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl),
		tcell.NewEventInterrupt(nil),
	}
	for _, ev := range events {
		quit, err := app.handleEvent(s.ctx, ev)
		s.Require().NoError(err)
		s.True(quit)
	}

	quit, err := app.handleEvent(s.ctx, key('x'))
	s.Require().NoError(err)
	s.False(quit)
}

func (s *AppTestSuite) TestHandleEvent_Resize() {
	app := s.newApp(0)
	s.Equal(NewLayout(80, 24), app.layout)

	s.screen.SetSize(200, 60)
	_, err := app.handleEvent(s.ctx, tcell.NewEventResize(200, 60))
	s.Require().NoError(err)

	s.Equal(NewLayout(200, 60), app.layout)
}

func (s *AppTestSuite) TestMoreDice_FullPoolNotice() {
	s.screen.SetSize(40, 24)
	s.roller.Append(repeated(2, 29)...)
	s.roller.Append(repeated(2, 30)...)
	app := s.newApp(29)
	s.Require().NoError(app.start(s.ctx))

	s.Require().NoError(app.moreDice(s.ctx))
	s.Equal(30, app.session.Pool.BaseDice)
	s.Equal("pool is full at 30 dice", app.notice)

	app.draw()
	s.Equal("pool is full at 30 dice", s.rowText(1))
	s.Contains(app.status(), "(clipped)")
}

func (s *AppTestSuite) TestDraw() {
	// [5,3] explodes once into [6], which explodes into [2]
	s.roller.Append(5, 3, 6, 2)
	app := s.newApp(2)
	s.Require().NoError(app.start(s.ctx))

	app.draw()

	s.True(strings.HasPrefix(s.rowText(0), "dice 4  energy 4  fury 0  | total energy 4  fury 0  void 2"))
	s.Empty(s.rowText(1))

	// die centers on the 80x24 grid: x = 5 + 8*i + 3, y = 21
	testCases := []struct {
		x     int
		value rune
		bg    tcell.Color
	}{
		{8, '3', tcell.ColorWhite},
		{16, '5', tcell.ColorWhite},
		{24, '6', tcell.ColorLightBlue},
		{32, '2', tcell.ColorLightBlue},
	}
	for _, tc := range testCases {
		r, bg := s.cell(tc.x, 21)
		s.Equal(tc.value, r, "die at x=%d", tc.x)
		s.Equal(tc.bg, bg, "die at x=%d", tc.x)
	}

	// box corners share the die color
	_, bg := s.cell(5, 20)
	s.Equal(tcell.ColorWhite, bg)
	_, bg = s.cell(4, 20)
	s.NotEqual(tcell.ColorWhite, bg)
}
