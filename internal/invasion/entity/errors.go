package entity

import "AlienInvasion/modules/kit/errx"

const (
	CodeOutOfBounds  errx.Code = "ATTACK_OUT_OF_BOUNDS"
	CodeEmptyCell    errx.Code = "ATTACK_EMPTY_CELL"
	CodeCellOccupied errx.Code = "CELL_OCCUPIED"
	CodeOutOfRange   errx.Code = "CELL_OUT_OF_RANGE"
)

// 攻击落空的两种情况，文案直接展示给玩家。
var (
	ErrOutOfBounds = errx.NewBiz(CodeOutOfBounds, "Invalid coordinates. Lose your turn.")
	ErrEmptyCell   = errx.NewBiz(CodeEmptyCell, "Cell is empty. Lose your turn.")
)

// 放置外星人时的前置条件错误。
var (
	ErrCellOccupied = errx.NewBiz(CodeCellOccupied, "格子已被占用")
	ErrOutOfRange   = errx.NewBiz(CodeOutOfRange, "坐标超出棋盘")
)
