package entity

import "sort"

// Colony 持有一局里所有外星人的生命周期，按 AlienID 索引。
// 棋盘格子、根登记表、父节点的子节点列表里存的都只是编号。
type Colony struct {
	aliens map[AlienID]*Alien
	nextID AlienID
}

func NewColony() *Colony {
	return &Colony{aliens: make(map[AlienID]*Alien)}
}

// New 分配编号并创建外星人，不负责放上棋盘。
func (c *Colony) New(grid Grid, pos Coord, strength int) *Alien {
	c.nextID++
	a := newAlien(c.nextID, grid, pos, strength)
	c.aliens[a.id] = a
	return a
}

// Get 取不到（从未分配或已释放）时返回 nil。
func (c *Colony) Get(id AlienID) *Alien {
	if id == NoAlien {
		return nil
	}
	return c.aliens[id]
}

// Release 从 arena 中移除，只应对已死且不再被引用的外星人调用。
func (c *Colony) Release(id AlienID) {
	delete(c.aliens, id)
}

func (c *Colony) Len() int {
	return len(c.aliens)
}

// IDs 按编号升序返回，保证遍历顺序稳定。
func (c *Colony) IDs() []AlienID {
	ids := make([]AlienID, 0, len(c.aliens))
	for id := range c.aliens {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
