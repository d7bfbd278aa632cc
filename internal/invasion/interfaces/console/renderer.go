package console

import (
	"fmt"
	"io"
	"strings"

	"AlienInvasion/internal/invasion/entity"
	"AlienInvasion/internal/invasion/service"
)

const (
	cellWidth = 11

	ansiRed   = "\033[91m"
	ansiGreen = "\033[92m"
	ansiEnd   = "\033[0m"
)

// Renderer 把棋盘和玩家状态画成终端文本。每行 x 是一排格子，格子里是力量或 "-"，下面一排是坐标。
type Renderer struct {
	w     io.Writer
	color bool
}

func NewRenderer(w io.Writer, color bool) *Renderer {
	return &Renderer{w: w, color: color}
}

func (r *Renderer) paint(code, s string) string {
	if !r.color {
		return s
	}
	return code + s + ansiEnd
}

func separator(cells int) string {
	return strings.Repeat("-", cells*cellWidth+1)
}

func (r *Renderer) Board(b *entity.Board) {
	var sb strings.Builder
	for x := 0; x < b.Width(); x++ {
		sb.WriteString(separator(b.Height()))
		sb.WriteByte('\n')

		var values, coords strings.Builder
		for y := 0; y < b.Height(); y++ {
			a := b.AlienAt(entity.Coord{X: x, Y: y})
			if a != nil && !a.IsDead() {
				fmt.Fprintf(&values, "|    %s     ", r.paint(ansiRed, fmt.Sprint(a.Strength())))
			} else {
				values.WriteString("|    -     ")
			}
			fmt.Fprintf(&coords, "| (%02d,%02d)  ", x, y)
		}
		values.WriteByte('|')
		coords.WriteByte('|')

		sb.WriteString(values.String())
		sb.WriteByte('\n')
		sb.WriteString(coords.String())
		sb.WriteByte('\n')
	}
	sb.WriteString(separator(b.Height()))
	sb.WriteByte('\n')
	fmt.Fprintln(r.w, sb.String())
}

// Status 居中输出一行 "TURN: t	STRENGTH: s	SCORE: n"，正分绿色、负分红色。
func (r *Renderer) Status(p entity.PlayerState) {
	score := fmt.Sprint(p.Score)
	switch {
	case p.Score > 0:
		score = r.paint(ansiGreen, score)
	case p.Score < 0:
		score = r.paint(ansiRed, score)
	}
	line := fmt.Sprintf("TURN: %d\tSTRENGTH: %d\tSCORE: %s", p.Turn, p.Strength, score)
	fmt.Fprintln(r.w, center(line, entity.Width*cellWidth+1))
}

// center 和多数终端一样把多出来的一格空白放在右边。按字节计宽，颜色码也算在内。
func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

func (r *Renderer) Message(msg string) {
	fmt.Fprintln(r.w, msg)
}

func (r *Renderer) Bomb(e entity.AreaEffect) {
	fmt.Fprintf(r.w, "Triggering bomb at (%d, %d) affecting %d cells\n", e.Epicenter.X, e.Epicenter.Y, e.Cells)
}

// Trees 每棵谱系树一行，节点写成 "力量(深度):"。
func (r *Renderer) Trees(trees [][]service.TreeEntry) {
	for _, tree := range trees {
		var sb strings.Builder
		for _, e := range tree {
			fmt.Fprintf(&sb, "%s(%d):", r.paint(ansiRed, fmt.Sprint(e.Strength)), e.Depth)
		}
		fmt.Fprintln(r.w, sb.String())
	}
}

func (r *Renderer) Result(ev service.Evaluation) {
	switch ev.Outcome {
	case service.Lost:
		fmt.Fprintln(r.w, "Game over! The board is full of aliens.")
	case service.Won:
		fmt.Fprintln(r.w, "You win!")
	case service.Nuked:
		fmt.Fprintf(r.w, "The total strength of remaining aliens (%d) is less than the player's strength (%d). You win by nuking the board!\n",
			ev.AlienStrength, ev.PlayerStrength)
	}
}
