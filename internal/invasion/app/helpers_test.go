package app

import (
	"context"
	"io"
	"testing"

	"AlienInvasion/internal/invasion/entity"
	"AlienInvasion/internal/invasion/service"
)

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

// recordRenderer 记录每次展示调用。
type recordRenderer struct {
	boards   int
	statuses []entity.PlayerState
	messages []string
	bombs    []entity.AreaEffect
	trees    [][][]service.TreeEntry
	results  []service.Evaluation
}

func (r *recordRenderer) Board(*entity.Board) {
	r.boards++
}

func (r *recordRenderer) Status(p entity.PlayerState) {
	r.statuses = append(r.statuses, p)
}

func (r *recordRenderer) Message(msg string) {
	r.messages = append(r.messages, msg)
}

func (r *recordRenderer) Bomb(e entity.AreaEffect) {
	r.bombs = append(r.bombs, e)
}

func (r *recordRenderer) Trees(trees [][]service.TreeEntry) {
	r.trees = append(r.trees, trees)
}

func (r *recordRenderer) Result(ev service.Evaluation) {
	r.results = append(r.results, ev)
}

// linePrompter 依次返回预设的输入，读完之后返回 err（默认 io.EOF）。
type linePrompter struct {
	lines   []string
	err     error
	prompts int
}

func newLinePrompter(lines ...string) *linePrompter {
	return &linePrompter{lines: lines, err: io.EOF}
}

func (p *linePrompter) Prompt(_ context.Context, _ string) (string, error) {
	p.prompts++
	if len(p.lines) == 0 {
		return "", p.err
	}
	line := p.lines[0]
	p.lines = p.lines[1:]
	return line, nil
}
