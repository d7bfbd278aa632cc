package app

import (
	"context"
	"errors"

	"AlienInvasion/internal/invasion/service"
	"AlienInvasion/internal/shared/transport"
	"AlienInvasion/modules/kit/errx"
)

// MsgInvalidInput 是输入无法识别时给玩家的提示。
const MsgInvalidInput = "Invalid coordinates. Lose your turn."

// turnEffect 告诉会话循环这条命令之后该做什么，放在 Response.Data 里。
type turnEffect int

const (
	endTurn turnEffect = iota
	stayInTurn
	quitGame
)

type commandHandler struct {
	game *service.Game
	out  Renderer
}

func (h *commandHandler) RegisterRoutes(r *transport.Router) {
	attackGroup := r.Group("attack")
	attackGroup.Handle("cell", h.attack)
	attackGroup.Handle("forfeit", h.forfeit)

	lineageGroup := r.Group("lineage")
	lineageGroup.Handle("trees", h.trees)

	sessionGroup := r.Group("session")
	sessionGroup.Handle("quit", h.quit)
}

func (h *commandHandler) attack(ctx context.Context, req *transport.Request, resp *transport.Response) {
	cmd, ok := req.Args.(Command)
	if !ok {
		h.forfeit(ctx, req, resp)
		return
	}

	res := h.game.Attack(ctx, cmd.Coord)
	resp.Data = endTurn
	if res.Err != nil {
		code, msg := missOf(res.Err)
		transport.SetErrorReason(ctx, code)
		h.out.Message(msg)
		resp.Code = transport.AttackMissed
		resp.Msg = msg
		return
	}
	if res.Bomb != nil {
		h.out.Bomb(*res.Bomb)
	}
	resp.Code = transport.OK
}

func (h *commandHandler) forfeit(ctx context.Context, req *transport.Request, resp *transport.Response) {
	h.game.ForfeitAttack(ctx, req.Line)
	transport.SetErrorReason(ctx, "INPUT_UNPARSABLE")
	h.out.Message(MsgInvalidInput)
	resp.Code = transport.InvalidInput
	resp.Msg = MsgInvalidInput
	resp.Data = endTurn
}

func (h *commandHandler) trees(_ context.Context, _ *transport.Request, resp *transport.Response) {
	h.out.Trees(h.game.Lineage())
	resp.Code = transport.OK
	resp.Data = stayInTurn
}

func (h *commandHandler) quit(_ context.Context, _ *transport.Request, resp *transport.Response) {
	resp.Code = transport.OK
	resp.Data = quitGame
}

func missOf(err error) (string, string) {
	var e *errx.Error
	if errors.As(err, &e) {
		return e.CodeText(), e.Msg()
	}
	return "", err.Error()
}
