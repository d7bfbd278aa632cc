package service

import "AlienInvasion/internal/invasion/entity"

type AlienID = entity.AlienID

// GCStats 是一次谱系回收的统计。
type GCStats struct {
	Roots        int
	DroppedRoots int
	Visited      int
	Pruned       int
	Released     int
}

type gcFrame struct {
	node   AlienID
	parent AlienID
	idx    int
}

// GarbageCollect 对每棵谱系树做一次迭代式 mark-and-sweep，返回还活着的根。
//   - 死掉的根直接跳过并从结果中去掉，它下面还活着的后代也随之失联
//   - 树里死掉的节点从父节点的子列表里摘掉，它的子树不再遍历（活着的孙辈同样失联）
//   - 所有访问到的活节点的子列表压缩掉空槽，保持原有相对顺序
//
// 失联的活外星人仍在棋盘上正常行动，只是不再出现在谱系里。
func GarbageCollect(colony *entity.Colony, roots []AlienID) []AlienID {
	live, _ := markAndSweep(colony, roots)
	return live
}

// Collect 在 GarbageCollect 之后再清理 arena：释放所有已死的外星人。
// 标记阶段保证了存活的树里不再引用任何死节点。
func Collect(colony *entity.Colony, roots []AlienID) ([]AlienID, GCStats) {
	live, stats := markAndSweep(colony, roots)
	for _, id := range colony.IDs() {
		if a := colony.Get(id); a.IsDead() {
			colony.Release(id)
			stats.Released++
		}
	}
	return live, stats
}

func markAndSweep(colony *entity.Colony, roots []AlienID) ([]AlienID, GCStats) {
	stats := GCStats{Roots: len(roots)}
	live := make([]AlienID, 0, len(roots))

	for _, rootID := range roots {
		root := colony.Get(rootID)
		if root == nil || root.IsDead() {
			stats.DroppedRoots++
			continue
		}

		// 子列表先复制成工作副本，遍历结束后统一压缩写回
		work := make(map[AlienID][]AlienID)
		var order []*entity.Alien

		stack := []gcFrame{{node: rootID, parent: entity.NoAlien}}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stats.Visited++

			cur := colony.Get(top.node)
			if cur == nil || cur.IsDead() {
				if top.parent != entity.NoAlien {
					work[top.parent][top.idx] = entity.NoAlien
				}
				stats.Pruned++
				continue
			}

			kids := cur.Children()
			work[cur.ID()] = kids
			order = append(order, cur)
			for i, child := range kids {
				stack = append(stack, gcFrame{node: child, parent: cur.ID(), idx: i})
			}
		}

		for _, a := range order {
			a.SetChildren(compact(work[a.ID()]))
		}
		live = append(live, rootID)
	}
	return live, stats
}

func compact(ids []AlienID) []AlienID {
	out := ids[:0]
	for _, id := range ids {
		if id != entity.NoAlien {
			out = append(out, id)
		}
	}
	return out
}
