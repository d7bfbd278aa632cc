package service

import (
	"testing"

	"AlienInvasion/internal/invasion/entity"
)

// scriptedRand 按脚本返回 Intn；Shuffle 保持原顺序且不消耗脚本。
type scriptedRand struct {
	t      *testing.T
	values []int
	used   int
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

func (r *scriptedRand) Shuffle(int, func(i, j int)) {}

func (r *scriptedRand) assertDrained() {
	r.t.Helper()
	if r.used != len(r.values) {
		r.t.Fatalf("期望脚本全部消耗, used=%d total=%d", r.used, len(r.values))
	}
}

func newTestBoard(playerStrength int) (*entity.Board, *entity.Player) {
	b := entity.NewBoard(entity.NewColony())
	p := entity.NewPlayer(b, playerStrength, 5)
	return b, p
}

func mustAlien(t *testing.T, b *entity.Board, x, y, strength int) *entity.Alien {
	t.Helper()
	a, err := b.NewAlien(entity.Coord{X: x, Y: y}, strength)
	if err != nil {
		t.Fatalf("放置 (%d,%d) 失败: %v", x, y, err)
	}
	return a
}

// link 把 kids 依次挂到 parent 下面。
func link(parent *entity.Alien, kids ...*entity.Alien) {
	ids := parent.Children()
	for _, k := range kids {
		ids = append(ids, k.ID())
	}
	parent.SetChildren(ids)
}

func idsOf(aliens ...*entity.Alien) []AlienID {
	out := make([]AlienID, 0, len(aliens))
	for _, a := range aliens {
		out = append(out, a.ID())
	}
	return out
}

func sameIDs(a, b []AlienID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
