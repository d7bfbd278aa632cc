package entity

// AreaEffect 描述一次范围炸弹。
type AreaEffect struct {
	Epicenter Coord
	// Cells 是裁剪到棋盘内之后受影响的格子数。
	Cells  int
	Killed int
}

// PlayerState 是玩家的可见状态，用于展示和场景还原。
type PlayerState struct {
	Strength        int
	Score           int
	Turn            int
	ConsecutiveHits int
}

// entity
type Player struct {
	board         *Board
	strength      int
	score         int
	turn          int
	hits          int
	bombThreshold int
}

// NewPlayer 创建玩家并挂到棋盘上，之后棋盘结算攻击时会回调它的连击和炸弹。
func NewPlayer(board *Board, strength, bombThreshold int) *Player {
	p := &Player{
		board:         board,
		strength:      clampStrength(strength),
		bombThreshold: max(1, bombThreshold),
	}
	board.player = p
	return p
}

func clampStrength(s int) int {
	return max(1, min(s, StrengthMax))
}

func (p *Player) Strength() int {
	return p.strength
}

func (p *Player) Score() int {
	return p.score
}

func (p *Player) Turn() int {
	return p.turn
}

func (p *Player) ConsecutiveHits() int {
	return p.hits
}

func (p *Player) BombThreshold() int {
	return p.bombThreshold
}

func (p *Player) State() PlayerState {
	return PlayerState{
		Strength:        p.strength,
		Score:           p.score,
		Turn:            p.turn,
		ConsecutiveHits: p.hits,
	}
}

// Restore 直接覆盖状态，用于从场景文件开局。
func (p *Player) Restore(s PlayerState) {
	p.strength = clampStrength(s.Strength)
	p.score = s.Score
	p.turn = max(0, s.Turn)
	p.hits = max(0, s.ConsecutiveHits)
}

func (p *Player) AdvanceTurn() {
	p.turn++
}

// RegisterHit 连击加一，返回是否达到炸弹阈值。
func (p *Player) RegisterHit() bool {
	p.hits++
	return p.hits >= p.bombThreshold
}

func (p *Player) ResetHits() {
	p.hits = 0
}

// ApplyScore 按得分调整力量：正分 +1（封顶），零分或负分 -1（保底 1）；得分无论正负都累计。
func (p *Player) ApplyScore(score int) {
	if score > 0 {
		p.strength = min(p.strength+1, StrengthMax)
	} else {
		p.strength = max(p.strength-1, 1)
	}
	p.score += score
}

// TriggerAreaEffect 以 epicenter 为中心的 3x3（裁剪到棋盘内）直接杀死所有外星人，不看剩余力量。
func (p *Player) TriggerAreaEffect(epicenter Coord) AreaEffect {
	eff := AreaEffect{Epicenter: epicenter}
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			c := epicenter.Add(dx, dy)
			if !p.board.InBounds(c) {
				continue
			}
			eff.Cells++
			if a := p.board.AlienAt(c); a != nil && !a.IsDead() {
				a.Die()
				eff.Killed++
			}
		}
	}
	return eff
}
