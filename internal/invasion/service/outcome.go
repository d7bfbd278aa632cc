package service

import "AlienInvasion/internal/invasion/entity"

type Outcome int

const (
	Continue Outcome = iota
	// Lost 棋盘被外星人占满。
	Lost
	// Won 一个时间步之后棋盘为空。
	Won
	// Nuked 剩余外星人总力量低于玩家力量，全场清除。
	Nuked
	// Quit 玩家主动退出或输入结束。
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Lost:
		return "lost"
	case Won:
		return "won"
	case Nuked:
		return "nuked"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal 报告游戏是否就此结束。
func (o Outcome) Terminal() bool {
	return o != Continue
}

// Evaluation 是回合开始前的判定结果，Nuked 时带上判定依据。
type Evaluation struct {
	Outcome        Outcome
	AlienStrength  int
	PlayerStrength int
	Killed         int
}

// EvaluateBeforeTurn 回合开始前判定：先看是否满盘（输），
// 再在回合数超过 nukeAfterTurn 后比较总力量，低于玩家力量则清场（赢）。
func EvaluateBeforeTurn(board *entity.Board, player *entity.Player, nukeAfterTurn int) Evaluation {
	if board.IsFull() {
		return Evaluation{Outcome: Lost}
	}
	if player.Turn() <= nukeAfterTurn {
		return Evaluation{Outcome: Continue}
	}
	total := board.TotalStrength()
	ev := Evaluation{Outcome: Continue, AlienStrength: total, PlayerStrength: player.Strength()}
	if total < player.Strength() {
		ev.Killed = board.KillAll()
		ev.Outcome = Nuked
	}
	return ev
}

// EvaluateAfterStep 时间步结束后判定：棋盘为空即赢。
func EvaluateAfterStep(board *entity.Board) Outcome {
	if board.IsEmpty() {
		return Won
	}
	return Continue
}
