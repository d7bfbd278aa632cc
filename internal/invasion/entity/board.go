package entity

import "AlienInvasion/internal/shared/utils"

// Board 是固定 Width x Height 的棋盘，每格最多一个活着的外星人。
// 格子里只存编号，外星人的生命周期归 Colony 管。
type Board struct {
	width  int
	height int
	cells  []AlienID
	colony *Colony
	player *Player
}

// AttackResult 是一次攻击结算的完整结果。
type AttackResult struct {
	Score int
	// Bomb 非空表示这次命中引爆了范围炸弹。
	Bomb *AreaEffect
	Err  error
}

func NewBoard(colony *Colony) *Board {
	return &Board{
		width:  Width,
		height: Height,
		cells:  make([]AlienID, Width*Height),
		colony: colony,
	}
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

func (b *Board) Colony() *Colony {
	return b.colony
}

func (b *Board) Player() *Player {
	return b.player
}

func (b *Board) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < b.width && c.Y >= 0 && c.Y < b.height
}

func (b *Board) index(c Coord) int {
	return c.X*b.height + c.Y
}

// AlienAt 越界或空格返回 nil。
func (b *Board) AlienAt(c Coord) *Alien {
	if !b.InBounds(c) {
		return nil
	}
	return b.colony.Get(b.cells[b.index(c)])
}

func (b *Board) IsEmptyAt(c Coord) bool {
	return b.AlienAt(c) == nil
}

// IsEmpty 整个棋盘没有外星人。
func (b *Board) IsEmpty() bool {
	for _, id := range b.cells {
		if id != NoAlien {
			return false
		}
	}
	return true
}

// IsFull 每个格子都有外星人。
func (b *Board) IsFull() bool {
	for _, id := range b.cells {
		if id == NoAlien {
			return false
		}
	}
	return true
}

func (b *Board) ClearCell(c Coord) {
	if b.InBounds(c) {
		b.cells[b.index(c)] = NoAlien
	}
}

// Place 把已创建的外星人登记到它自己的坐标上。
func (b *Board) Place(a *Alien) error {
	if !b.InBounds(a.pos) {
		return ErrOutOfRange.WithData("coord", a.pos.String())
	}
	if !b.IsEmptyAt(a.pos) {
		return ErrCellOccupied.WithData("coord", a.pos.String())
	}
	b.cells[b.index(a.pos)] = a.id
	return nil
}

// NewAlien 创建外星人并放上棋盘；坐标非法或被占时不分配编号。
func (b *Board) NewAlien(pos Coord, strength int) (*Alien, error) {
	if !b.InBounds(pos) {
		return nil, ErrOutOfRange.WithData("coord", pos.String())
	}
	if !b.IsEmptyAt(pos) {
		return nil, ErrCellOccupied.WithData("coord", pos.String())
	}
	a := b.colony.New(b, pos, strength)
	b.cells[b.index(pos)] = a.id
	return a, nil
}

// SpawnChild 实现 Grid。孩子登记到棋盘，挂到父节点由调用方负责。
func (b *Board) SpawnChild(_ *Alien, at Coord, strength int) *Alien {
	a, err := b.NewAlien(at, strength)
	if err != nil {
		return nil
	}
	return a
}

// MoveAlien 只在 from 有人且 to 为空时生效，否则什么都不做。
func (b *Board) MoveAlien(from, to Coord) bool {
	if !b.InBounds(from) || !b.InBounds(to) {
		return false
	}
	a := b.AlienAt(from)
	if a == nil || !b.IsEmptyAt(to) {
		return false
	}
	b.cells[b.index(from)] = NoAlien
	b.cells[b.index(to)] = a.id
	a.pos = to
	return true
}

// Attack 结算一次攻击，返回得分；落空时得分为 MissScore 并带错误。
func (b *Board) Attack(c Coord, strength int) (int, error) {
	res := b.Resolve(c, strength)
	return res.Score, res.Err
}

// Resolve 攻击结算：
//  1. 越界或空格：落空，不改动任何状态
//  2. 有效伤害 = min(攻击力, 目标力量)
//  3. 有效伤害 > 0 计一次连击，连击达到阈值引爆以目标为中心的范围炸弹并清零
//  4. 有效伤害 == 0 连击清零
func (b *Board) Resolve(c Coord, strength int) AttackResult {
	if !b.InBounds(c) {
		return AttackResult{Score: MissScore, Err: ErrOutOfBounds.WithData("coord", c.String())}
	}
	target := b.AlienAt(c)
	if target == nil {
		return AttackResult{Score: MissScore, Err: ErrEmptyCell.WithData("coord", c.String())}
	}

	score := min(strength, target.strength)
	target.ApplyDamage(strength)

	res := AttackResult{Score: score}
	if b.player == nil {
		return res
	}
	if score > 0 {
		if b.player.RegisterHit() {
			bomb := b.player.TriggerAreaEffect(c)
			b.player.ResetHits()
			res.Bomb = &bomb
		}
	} else {
		b.player.ResetHits()
	}
	return res
}

// StepAll 按 x 外层、y 内层升序扫描，扫到的每个活着的外星人走一步。
// 本轮里移动或新生的外星人可能被再次扫到，也可能被跳过；这个顺序决定了同种子下的结果，不要改。
func (b *Board) StepAll(r utils.Rand) {
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			a := b.AlienAt(Coord{X: x, Y: y})
			if a != nil && !a.dead {
				a.Step(r)
			}
		}
	}
}

// LiveAliens 按扫描顺序返回棋盘上活着的外星人。
func (b *Board) LiveAliens() []*Alien {
	var out []*Alien
	for x := 0; x < b.width; x++ {
		for y := 0; y < b.height; y++ {
			if a := b.AlienAt(Coord{X: x, Y: y}); a != nil && !a.dead {
				out = append(out, a)
			}
		}
	}
	return out
}

func (b *Board) TotalStrength() int {
	total := 0
	for _, a := range b.LiveAliens() {
		total += a.strength
	}
	return total
}

// KillAll 直接杀死棋盘上所有外星人（不走伤害结算），返回杀死的数量。
func (b *Board) KillAll() int {
	killed := 0
	for _, a := range b.LiveAliens() {
		a.Die()
		killed++
	}
	return killed
}
