package entity

import "testing"

// scriptedRand 按脚本返回 Intn 的结果；Shuffle 保持原顺序且不消耗脚本。
type scriptedRand struct {
	t        *testing.T
	values   []int
	used     int
	shuffles int
}

func newScriptedRand(t *testing.T, values ...int) *scriptedRand {
	return &scriptedRand{t: t, values: values}
}

func (r *scriptedRand) Intn(n int) int {
	r.t.Helper()
	if r.used >= len(r.values) {
		r.t.Fatalf("随机脚本耗尽：第 %d 次 Intn(%d)", r.used+1, n)
	}
	v := r.values[r.used]
	r.used++
	if v < 0 || v >= n {
		r.t.Fatalf("脚本值 %d 超出 Intn(%d) 的范围", v, n)
	}
	return v
}

func (r *scriptedRand) Shuffle(n int, swap func(i, j int)) {
	r.shuffles++
}

func (r *scriptedRand) assertDrained() {
	r.t.Helper()
	if r.used != len(r.values) {
		r.t.Fatalf("期望脚本全部消耗, used=%d total=%d", r.used, len(r.values))
	}
}

// fakeGrid 是 Grid 的内存实现，不做攻击结算，只记录调用。
type fakeGrid struct {
	colony *Colony
	cells  map[Coord]*Alien
	moves  int
	spawns int
}

func newFakeGrid() *fakeGrid {
	return &fakeGrid{colony: NewColony(), cells: map[Coord]*Alien{}}
}

func (g *fakeGrid) add(pos Coord, strength int) *Alien {
	a := g.colony.New(g, pos, strength)
	g.cells[pos] = a
	return a
}

func (g *fakeGrid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < Width && c.Y >= 0 && c.Y < Height
}

func (g *fakeGrid) IsEmptyAt(c Coord) bool {
	return g.cells[c] == nil
}

func (g *fakeGrid) AlienAt(c Coord) *Alien {
	return g.cells[c]
}

func (g *fakeGrid) MoveAlien(from, to Coord) bool {
	g.moves++
	a := g.cells[from]
	if a == nil || g.cells[to] != nil {
		return false
	}
	delete(g.cells, from)
	g.cells[to] = a
	a.pos = to
	return true
}

func (g *fakeGrid) ClearCell(c Coord) {
	delete(g.cells, c)
}

func (g *fakeGrid) SpawnChild(_ *Alien, at Coord, strength int) *Alien {
	g.spawns++
	if g.cells[at] != nil {
		return nil
	}
	return g.add(at, strength)
}

func newTestBoard(playerStrength int) (*Board, *Player) {
	b := NewBoard(NewColony())
	p := NewPlayer(b, playerStrength, 5)
	return b, p
}

func mustAlien(t *testing.T, b *Board, pos Coord, strength int) *Alien {
	t.Helper()
	a, err := b.NewAlien(pos, strength)
	if err != nil {
		t.Fatalf("放置 %v 失败: %v", pos, err)
	}
	return a
}

// assertBoardConsistent 检查：每个格子指向的外星人活着且坐标一致，活着的外星人各占一格。
func assertBoardConsistent(t *testing.T, b *Board) {
	t.Helper()
	seen := map[AlienID]bool{}
	for x := 0; x < b.Width(); x++ {
		for y := 0; y < b.Height(); y++ {
			c := Coord{X: x, Y: y}
			a := b.AlienAt(c)
			if a == nil {
				continue
			}
			if a.IsDead() {
				t.Fatalf("死亡外星人 %d 仍占着 %v", a.ID(), c)
			}
			if a.Position() != c {
				t.Fatalf("外星人 %d 坐标 %v 与格子 %v 不一致", a.ID(), a.Position(), c)
			}
			if seen[a.ID()] {
				t.Fatalf("外星人 %d 占了多个格子", a.ID())
			}
			if a.Strength() < 1 || a.Strength() > StrengthMax {
				t.Fatalf("外星人 %d 力量越界: %d", a.ID(), a.Strength())
			}
			seen[a.ID()] = true
		}
	}
	for _, id := range b.Colony().IDs() {
		a := b.Colony().Get(id)
		if !a.IsDead() && !seen[id] {
			t.Fatalf("活着的外星人 %d 不在棋盘上", id)
		}
		if a.Strength() < 0 {
			t.Fatalf("外星人 %d 力量为负: %d", id, a.Strength())
		}
	}
}
