package service

import (
	"context"

	"AlienInvasion/internal/invasion/entity"
	"AlienInvasion/internal/shared/gameconfig"
	"AlienInvasion/internal/shared/utils"
	"AlienInvasion/modules/kit/logx"

	"go.uber.org/zap"
)

type Coord = entity.Coord

// Rules 是开局时固定下来的规则参数。
type Rules struct {
	FirstAlienStrength int
	PlayerStrength     int
	NukeAfterTurn      int
	BombThreshold      int
}

func DefaultRules() Rules {
	return RulesFrom(gameconfig.Default().Game)
}

func RulesFrom(c gameconfig.GameConfig) Rules {
	return Rules{
		FirstAlienStrength: c.FirstAlienStrength,
		PlayerStrength:     c.PlayerStrength,
		NukeAfterTurn:      c.NukeAfterTurn,
		BombThreshold:      c.BombThreshold,
	}
}

// Game 持有一局的全部状态，按回合驱动：
// CheckBeforeTurn -> SpawnRoot -> Attack/ForfeitAttack -> EndTurn。
// 全部调用都在同一个 goroutine 里完成。
type Game struct {
	board  *entity.Board
	colony *entity.Colony
	player *entity.Player
	roots  []AlienID
	rng    utils.Rand
	rules  Rules
	log    logx.Logger
}

func NewGame(rng utils.Rand, rules Rules, l logx.Logger) *Game {
	if l == nil {
		l = logx.Nop{}
	}
	colony := entity.NewColony()
	board := entity.NewBoard(colony)
	return &Game{
		board:  board,
		colony: colony,
		player: entity.NewPlayer(board, rules.PlayerStrength, rules.BombThreshold),
		rng:    rng,
		rules:  rules,
		log:    l,
	}
}

func (g *Game) Board() *entity.Board {
	return g.board
}

func (g *Game) Colony() *entity.Colony {
	return g.colony
}

func (g *Game) Player() *entity.Player {
	return g.player
}

func (g *Game) Rules() Rules {
	return g.rules
}

// Roots 返回根登记表的拷贝。
func (g *Game) Roots() []AlienID {
	out := make([]AlienID, len(g.roots))
	copy(out, g.roots)
	return out
}

// AddRoot 放一个新的根外星人并登记，场景开局和 SpawnRoot 都走这里。
func (g *Game) AddRoot(pos Coord, strength int) (*entity.Alien, error) {
	a, err := g.board.NewAlien(pos, strength)
	if err != nil {
		return nil, err
	}
	g.roots = append(g.roots, a.ID())
	return a, nil
}

// CheckBeforeTurn 回合开始前的输赢判定，规则见 EvaluateBeforeTurn。
func (g *Game) CheckBeforeTurn(ctx context.Context) Evaluation {
	ev := EvaluateBeforeTurn(g.board, g.player, g.rules.NukeAfterTurn)
	switch ev.Outcome {
	case Lost:
		g.log.WithContext(ctx).Info("board full, game lost")
	case Nuked:
		g.log.WithContext(ctx).Info("board nuked",
			zap.Int("alien_strength", ev.AlienStrength),
			zap.Int("player_strength", ev.PlayerStrength),
			zap.Int("killed", ev.Killed))
	}
	return ev
}

// SpawnRoot 每回合开始随机挑一个格子和力量，格子为空就放一个新的根外星人。
// 第 0 回合力量固定为 FirstAlienStrength。三次随机数无论是否放置都会消耗。
func (g *Game) SpawnRoot(ctx context.Context) (*entity.Alien, bool) {
	pos := Coord{X: g.rng.Intn(g.board.Width()), Y: g.rng.Intn(g.board.Height())}
	strength := utils.IntRange(g.rng, 1, entity.StrengthMax)
	if g.player.Turn() == 0 {
		strength = g.rules.FirstAlienStrength
	}
	if !g.board.IsEmptyAt(pos) {
		g.log.WithContext(ctx).Debug("spawn skipped, cell occupied", zap.Stringer("coord", pos))
		return nil, false
	}
	a, err := g.AddRoot(pos, strength)
	if err != nil {
		return nil, false
	}
	g.log.WithContext(ctx).Debug("root alien spawned",
		zap.Int64("alien_id", int64(a.ID())),
		zap.Stringer("coord", pos),
		zap.Int("strength", strength))
	return a, true
}

// Attack 用玩家当前力量攻击 c，并按得分调整玩家力量和总分。落空按 MissScore 计。
func (g *Game) Attack(ctx context.Context, c Coord) entity.AttackResult {
	res := g.board.Resolve(c, g.player.Strength())
	g.player.ApplyScore(res.Score)

	l := g.log.WithContext(ctx)
	if res.Err != nil {
		logx.ReportBizWithLoggerContext(ctx, g.log, logx.NewBizLog("attack", reasonOf(res.Err), res.Err.Error()),
			zap.Stringer("coord", c))
	} else {
		l.Debug("attack resolved",
			zap.Stringer("coord", c),
			zap.Int("score", res.Score),
			zap.Int("consecutive_hits", g.player.ConsecutiveHits()))
	}
	if res.Bomb != nil {
		l.Info("area bomb triggered",
			zap.Stringer("epicenter", res.Bomb.Epicenter),
			zap.Int("cells", res.Bomb.Cells),
			zap.Int("killed", res.Bomb.Killed))
	}
	return res
}

// ForfeitAttack 输入无法解析时本回合不攻击，分数和力量都不变。
func (g *Game) ForfeitAttack(ctx context.Context, input string) {
	logx.ReportBizWithLoggerContext(ctx, g.log, logx.NewBizLog("attack", "INPUT_UNPARSABLE", "turn forfeited"),
		zap.String("input", input))
}

// EndTurn 推进一个时间步、回合数加一、回收谱系，然后判定棋盘是否已清空。
func (g *Game) EndTurn(ctx context.Context) Outcome {
	g.board.StepAll(g.rng)
	g.player.AdvanceTurn()

	var stats GCStats
	g.roots, stats = Collect(g.colony, g.roots)
	g.log.WithContext(ctx).Debug("lineage collected",
		zap.Int("roots", len(g.roots)),
		zap.Int("dropped_roots", stats.DroppedRoots),
		zap.Int("pruned", stats.Pruned),
		zap.Int("released", stats.Released),
		zap.Int("arena", g.colony.Len()))

	return EvaluateAfterStep(g.board)
}

func reasonOf(err error) string {
	if e, ok := err.(interface{ CodeText() string }); ok {
		return e.CodeText()
	}
	return ""
}
