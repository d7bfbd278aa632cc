package entity

import "AlienInvasion/internal/shared/utils"

// AlienID 是外星人在 Colony 里的稳定编号，从 1 开始分配。
type AlienID int64

// NoAlien 表示空格，也用作 GC 时子节点列表里的空槽。
const NoAlien AlienID = 0

// Grid 是外星人能对棋盘做的全部操作。外星人不持有 *Board，测试里可以换成假实现。
type Grid interface {
	InBounds(c Coord) bool
	IsEmptyAt(c Coord) bool
	AlienAt(c Coord) *Alien
	// MoveAlien 只在 from 有人且 to 为空时移动，并更新外星人的坐标。
	MoveAlien(from, to Coord) bool
	ClearCell(c Coord)
	// SpawnChild 在 at 创建并登记一个新外星人，失败返回 nil。
	SpawnChild(parent *Alien, at Coord, strength int) *Alien
}

// entity
type Alien struct {
	id       AlienID
	grid     Grid
	pos      Coord
	strength int
	dead     bool
	children []AlienID
}

func newAlien(id AlienID, grid Grid, pos Coord, strength int) *Alien {
	return &Alien{
		id:       id,
		grid:     grid,
		pos:      pos,
		strength: max(0, min(strength, StrengthMax)),
	}
}

func (a *Alien) ID() AlienID {
	return a.id
}

func (a *Alien) Position() Coord {
	return a.pos
}

func (a *Alien) Strength() int {
	return a.strength
}

func (a *Alien) IsDead() bool {
	return a.dead
}

// Children 返回子节点编号的拷贝，顺序即出生顺序。
func (a *Alien) Children() []AlienID {
	out := make([]AlienID, len(a.children))
	copy(out, a.children)
	return out
}

// SetChildren 替换子节点列表，只给谱系 GC 用。
func (a *Alien) SetChildren(ids []AlienID) {
	a.children = ids
}

// ApplyDamage 扣减力量（不会低于 0），低于 1 时死亡。
func (a *Alien) ApplyDamage(amount int) {
	if a.dead || amount < 1 {
		return
	}
	a.strength = max(0, a.strength-amount)
	if a.strength < 1 {
		a.Die()
	}
}

// Die 标记死亡并清掉自己所在的格子；重复调用无副作用。
func (a *Alien) Die() {
	if a.dead {
		return
	}
	a.dead = true
	if a.grid != nil && a.grid.InBounds(a.pos) && a.grid.AlienAt(a.pos) == a {
		a.grid.ClearCell(a.pos)
	}
}

// Step 推进一个时间步：移动 -> 繁殖 -> 成长。繁殖看的是移动之后的位置。
func (a *Alien) Step(r utils.Rand) {
	if a.dead {
		return
	}
	a.Travel(r)
	a.Spawn(r)
	a.Grow(r)
}

// Travel 每个轴随机偏移 -1/0/1，目标在界内就尝试移动；目标被占则原地不动。
func (a *Alien) Travel(r utils.Rand) {
	dx := utils.IntRange(r, -1, 1)
	dy := utils.IntRange(r, -1, 1)
	to := a.pos.Add(dx, dy)
	if a.grid.InBounds(to) {
		a.grid.MoveAlien(a.pos, to)
	}
}

// Spawn 周围既有空格又有活着的邻居时，3/10 的概率在空格里生一个力量减一（至少 1）的孩子。
func (a *Alien) Spawn(r utils.Rand) {
	empty, hasEmpty := a.findEmptyCell(r)
	hasNeighbor := a.pickNeighbor(r) != nil
	chance := r.Intn(10)
	if !hasEmpty || !hasNeighbor || chance <= 6 {
		return
	}
	child := a.grid.SpawnChild(a, empty, max(1, a.strength-1))
	if child != nil {
		a.children = append(a.children, child.ID())
	}
}

// Grow 2/10 的概率力量加一，到上限不再涨。无论结果如何都会消耗一次随机数。
func (a *Alien) Grow(r utils.Rand) {
	chance := r.Intn(10)
	if !a.dead && a.strength < StrengthMax && chance > 7 {
		a.strength++
	}
}

func (a *Alien) findEmptyCell(r utils.Rand) (Coord, bool) {
	offsets := mooreOffsets
	r.Shuffle(len(offsets), func(i, j int) {
		offsets[i], offsets[j] = offsets[j], offsets[i]
	})
	for _, off := range offsets {
		c := a.pos.Add(off.X, off.Y)
		if a.grid.InBounds(c) && a.grid.IsEmptyAt(c) {
			return c, true
		}
	}
	return Coord{}, false
}

// pickNeighbor 随机挑一个相邻的外星人。结果只用作繁殖的门槛，但挑选本身要消耗随机数。
func (a *Alien) pickNeighbor(r utils.Rand) *Alien {
	var neighbors []*Alien
	for _, off := range mooreOffsets {
		c := a.pos.Add(off.X, off.Y)
		if !a.grid.InBounds(c) {
			continue
		}
		if n := a.grid.AlienAt(c); n != nil && !n.IsDead() {
			neighbors = append(neighbors, n)
		}
	}
	if len(neighbors) == 0 {
		return nil
	}
	return neighbors[r.Intn(len(neighbors))]
}
