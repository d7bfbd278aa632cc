package app

import (
	"regexp"
	"strconv"
	"strings"

	"AlienInvasion/internal/invasion/entity"
)

// 路由名，格式为 组标识.处理器标识。
const (
	RouteAttack  = "attack.cell"
	RouteForfeit = "attack.forfeit"
	RouteTrees   = "lineage.trees"
	RouteQuit    = "session.quit"
)

// 允许 "(3,4)"、"3,4"、"3 4" 以及夹在其他文字里的写法，取第一处匹配。
var coordPattern = regexp.MustCompile(`\(?(-?\d+)[, ]+(-?\d+)\)?`)

// Command 是一行输入解析后的结果。
type Command struct {
	Route string
	Coord entity.Coord
	Line  string
}

// ParseCommand 先找坐标，找不到再识别关键字（不区分大小写），都不是就放弃本回合的攻击。
func ParseCommand(line string) Command {
	cmd := Command{Line: line}
	if m := coordPattern.FindStringSubmatch(line); m != nil {
		x, errX := strconv.Atoi(m[1])
		y, errY := strconv.Atoi(m[2])
		if errX == nil && errY == nil {
			cmd.Route = RouteAttack
			cmd.Coord = entity.Coord{X: x, Y: y}
			return cmd
		}
	}

	switch strings.ToUpper(line) {
	case "QUIT", "EXIT":
		cmd.Route = RouteQuit
	case "TREES":
		cmd.Route = RouteTrees
	default:
		cmd.Route = RouteForfeit
	}
	return cmd
}
