package entity

import "fmt"

const (
	Width  = 8
	Height = 8
	// StrengthMax 同时是外星人和玩家的力量上限。
	StrengthMax = 9
	// MissScore 是攻击落空（越界或空格）时的得分。
	MissScore = -1
)

// Coord 是棋盘坐标，X 对应外层扫描轴。
type Coord struct {
	X int
	Y int
}

func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// mooreOffsets 是 8 邻域，顺序固定：空格搜索先打乱它，邻居扫描直接按它走，随机流因此可复现。
var mooreOffsets = [8]Coord{
	{1, 1}, {1, 0}, {1, -1},
	{0, 1}, {0, -1},
	{-1, -1}, {-1, 0}, {-1, 1},
}
