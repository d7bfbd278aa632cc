package app

import (
	"context"
	"errors"
	"io"

	"AlienInvasion/internal/invasion/service"
	"AlienInvasion/internal/shared/transport"
	"AlienInvasion/modules/kit/errx"
	"AlienInvasion/modules/kit/logx"
	"AlienInvasion/modules/kit/tracex"

	"go.uber.org/zap"
)

const attackPrompt = "Choose a coordinate to attack (x,y): "

// Session 驱动一局游戏直到分出胜负、玩家退出或输入结束。
// 每回合：输赢判定 -> 生成外星人 -> 展示 -> 读命令 -> 时间步。
type Session struct {
	id     string
	game   *service.Game
	router *transport.Router
	out    Renderer
	in     Prompter
	log    logx.Logger
}

func NewSession(game *service.Game, out Renderer, in Prompter, l logx.Logger) *Session {
	if l == nil {
		l = logx.Nop{}
	}
	s := &Session{
		id:     tracex.NewSessionID(),
		game:   game,
		router: transport.NewRouter(l),
		out:    out,
		in:     in,
		log:    l,
	}
	h := &commandHandler{game: game, out: out}
	h.RegisterRoutes(s.router)
	return s
}

func (s *Session) ID() string {
	return s.id
}

// Run 返回终局结果。读输入出错（io.EOF 除外）或 ctx 取消时返回 error，结果为 Quit。
func (s *Session) Run(ctx context.Context) (service.Outcome, error) {
	ctx = tracex.WithSessionID(ctx, s.id)
	s.log.WithContext(ctx).Info("session started",
		zap.Int("roots", len(s.game.Roots())),
		zap.Int("player_strength", s.game.Player().Strength()))

	for {
		if err := ctx.Err(); err != nil {
			return service.Quit, err
		}
		turnCtx := tracex.WithTurn(ctx, s.game.Player().Turn())
		outcome, err := s.playTurn(turnCtx)
		if err != nil {
			if ctx.Err() == nil {
				logx.ReportSysErrorWithLoggerContext(turnCtx, s.log, logx.NewSysLog("session.run", err))
			}
			return outcome, err
		}
		if outcome.Terminal() {
			p := s.game.Player()
			s.log.WithContext(turnCtx).Info("session finished",
				zap.Stringer("outcome", outcome),
				zap.Int("score", p.Score()),
				zap.Int("strength", p.Strength()))
			return outcome, nil
		}
	}
}

func (s *Session) playTurn(ctx context.Context) (service.Outcome, error) {
	ev := s.game.CheckBeforeTurn(ctx)
	if ev.Outcome.Terminal() {
		s.out.Result(ev)
		if ev.Outcome == service.Nuked {
			s.out.Board(s.game.Board())
		}
		return ev.Outcome, nil
	}

	s.game.SpawnRoot(ctx)
	s.out.Board(s.game.Board())
	s.out.Status(s.game.Player().State())

	for {
		line, err := s.in.Prompt(ctx, attackPrompt)
		if errors.Is(err, io.EOF) {
			s.log.WithContext(ctx).Info("input closed, quitting")
			return service.Quit, nil
		}
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return service.Quit, ctxErr
			}
			return service.Quit, errx.ErrInputClosed.WithCause(err)
		}

		effect := s.dispatch(ctx, line)
		if effect == quitGame {
			return service.Quit, nil
		}
		if effect == endTurn {
			break
		}
	}

	outcome := s.game.EndTurn(ctx)
	if outcome == service.Won {
		s.out.Result(service.Evaluation{Outcome: service.Won})
	}
	return outcome, nil
}

func (s *Session) dispatch(ctx context.Context, line string) turnEffect {
	cmd := ParseCommand(line)
	req := &transport.Request{Name: cmd.Route, Line: line, Args: cmd}
	var resp transport.Response
	s.router.Dispatch(ctx, req, &resp)

	effect, ok := resp.Data.(turnEffect)
	if !ok {
		return endTurn
	}
	return effect
}
