package app

import (
	"context"

	"AlienInvasion/internal/invasion/entity"
	"AlienInvasion/internal/invasion/service"
)

// Renderer 负责把一局的状态展示给玩家。
type Renderer interface {
	Board(b *entity.Board)
	Status(p entity.PlayerState)
	Message(msg string)
	Bomb(e entity.AreaEffect)
	Trees(trees [][]service.TreeEntry)
	// Result 展示终局，Nuked 时 ev 里带判定依据。
	Result(ev service.Evaluation)
}

// Prompter 读取玩家的一行输入。输入结束时返回 io.EOF。
type Prompter interface {
	Prompt(ctx context.Context, prompt string) (string, error)
}
