package utils

import "math/rand"

// Rand 是游戏里唯一的随机来源。所有随机决策都按固定顺序从同一个流里取值，
// 同一个种子下整局可复现；测试里可以注入固定序列。
type Rand interface {
	// Intn 返回 [0, n)。
	Intn(n int) int
	// Shuffle 打乱 n 个元素，swap 交换 i、j。
	Shuffle(n int, swap func(i, j int))
}

// PRNG 是带种子的 math/rand 封装。
type PRNG struct {
	rng *rand.Rand
}

// NewPRNG 用固定种子创建随机流。种子 0 也是合法种子，不会退化成按时间取种。
func NewPRNG(seed int64) *PRNG {
	return &PRNG{rng: rand.New(rand.NewSource(seed))}
}

func (p *PRNG) Intn(n int) int {
	return p.rng.Intn(n)
}

func (p *PRNG) Shuffle(n int, swap func(i, j int)) {
	p.rng.Shuffle(n, swap)
}

// IntRange 返回 [lo, hi]，两端都包含。
func IntRange(r Rand, lo, hi int) int {
	return lo + r.Intn(hi-lo+1)
}

// SeedFromText 把种子文本转成种子：各字符码点求和，空串为 0。
func SeedFromText(s string) int64 {
	var sum int64
	for _, c := range s {
		sum += int64(c)
	}
	return sum
}
