package service

import (
	"fmt"
	"strings"

	"AlienInvasion/internal/invasion/entity"
)

// TreeEntry 是谱系树先序遍历里的一个节点。
type TreeEntry struct {
	ID       AlienID
	Strength int
	Depth    int
	Dead     bool
}

// Lineage 按根登记顺序返回每棵谱系树的先序遍历，孩子按出生顺序。
func Lineage(colony *entity.Colony, roots []AlienID) [][]TreeEntry {
	out := make([][]TreeEntry, 0, len(roots))
	for _, rootID := range roots {
		var tree []TreeEntry
		stack := []TreeEntry{{ID: rootID}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			a := colony.Get(top.ID)
			if a == nil {
				continue
			}
			top.Strength = a.Strength()
			top.Dead = a.IsDead()
			tree = append(tree, top)

			kids := a.Children()
			for i := len(kids) - 1; i >= 0; i-- {
				stack = append(stack, TreeEntry{ID: kids[i], Depth: top.Depth + 1})
			}
		}
		out = append(out, tree)
	}
	return out
}

// FormatTree 把一棵树写成 "力量(深度):" 的串联形式，例如 "5(0):4(1):3(2):"。
func FormatTree(tree []TreeEntry) string {
	var sb strings.Builder
	for _, e := range tree {
		fmt.Fprintf(&sb, "%d(%d):", e.Strength, e.Depth)
	}
	return sb.String()
}

func (g *Game) Lineage() [][]TreeEntry {
	return Lineage(g.colony, g.roots)
}

// Trees 每棵树一行。
func (g *Game) Trees() string {
	trees := g.Lineage()
	lines := make([]string, 0, len(trees))
	for _, t := range trees {
		lines = append(lines, FormatTree(t))
	}
	return strings.Join(lines, "\n")
}
