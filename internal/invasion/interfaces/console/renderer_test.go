package console

import (
	"bytes"
	"strings"
	"testing"

	"AlienInvasion/internal/invasion/entity"
	"AlienInvasion/internal/invasion/service"
)

func TestRenderer_Board(t *testing.T) {
	b := entity.NewBoard(entity.NewColony())
	if _, err := b.NewAlien(entity.Coord{X: 0, Y: 1}, 5); err != nil {
		t.Fatalf("NewAlien failed: %v", err)
	}
	var buf bytes.Buffer
	NewRenderer(&buf, false).Board(b)

	lines := strings.Split(buf.String(), "\n")
	// 8 行格子各占 3 行，加收尾分隔线，再加 Println 的空行和结尾
	if len(lines) != 8*3+1+2 {
		t.Fatalf("unexpected line count %d:\n%s", len(lines), buf.String())
	}
	sep := strings.Repeat("-", 89)
	if lines[0] != sep || lines[24] != sep {
		t.Fatalf("unexpected separator lines: %q / %q", lines[0], lines[24])
	}
	wantRow := "|    -     |    5     " + strings.Repeat("|    -     ", 6) + "|"
	if lines[1] != wantRow {
		t.Fatalf("row expected=%q got=%q", wantRow, lines[1])
	}
	if !strings.HasPrefix(lines[2], "| (00,00)  | (00,01)  ") || !strings.HasSuffix(lines[2], "| (00,07)  |") {
		t.Fatalf("unexpected coord row: %q", lines[2])
	}
	if !strings.HasPrefix(lines[23], "| (07,00)  ") {
		t.Fatalf("unexpected last coord row: %q", lines[23])
	}
}

func TestRenderer_Board_彩色力量(t *testing.T) {
	b := entity.NewBoard(entity.NewColony())
	if _, err := b.NewAlien(entity.Coord{X: 0, Y: 0}, 7); err != nil {
		t.Fatalf("NewAlien failed: %v", err)
	}
	var buf bytes.Buffer
	NewRenderer(&buf, true).Board(b)
	if !strings.Contains(buf.String(), "|    \033[91m7\033[0m     |") {
		t.Fatalf("expected red strength, got %q", strings.Split(buf.String(), "\n")[1])
	}
}

func TestRenderer_Status(t *testing.T) {
	cases := []struct {
		name  string
		color bool
		state entity.PlayerState
		want  string
	}{
		{"零分", false, entity.PlayerState{Turn: 0, Strength: 1, Score: 0}, "TURN: 0\tSTRENGTH: 1\tSCORE: 0"},
		{"正分绿色", true, entity.PlayerState{Turn: 3, Strength: 4, Score: 7}, "TURN: 3\tSTRENGTH: 4\tSCORE: \033[92m7\033[0m"},
		{"负分红色", true, entity.PlayerState{Turn: 2, Strength: 1, Score: -2}, "TURN: 2\tSTRENGTH: 1\tSCORE: \033[91m-2\033[0m"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			NewRenderer(&buf, tc.color).Status(tc.state)
			line := strings.TrimSuffix(buf.String(), "\n")
			if len(line) != 89 {
				t.Fatalf("status width expected=89 got=%d", len(line))
			}
			if strings.TrimSpace(line) != tc.want {
				t.Fatalf("status expected=%q got=%q", tc.want, strings.TrimSpace(line))
			}
		})
	}
}

func TestCenter_多余空白放右边(t *testing.T) {
	if got := center("ab", 5); got != " ab  " {
		t.Fatalf("expected %q got %q", " ab  ", got)
	}
	if got := center("abcdef", 3); got != "abcdef" {
		t.Fatalf("too long string should be kept, got %q", got)
	}
}

func TestRenderer_消息(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf, false)
	r.Bomb(entity.AreaEffect{Epicenter: entity.Coord{X: 3, Y: 3}, Cells: 9, Killed: 2})
	r.Result(service.Evaluation{Outcome: service.Lost})
	r.Result(service.Evaluation{Outcome: service.Won})
	r.Result(service.Evaluation{Outcome: service.Nuked, AlienStrength: 4, PlayerStrength: 6})
	r.Result(service.Evaluation{Outcome: service.Quit})
	r.Trees([][]service.TreeEntry{
		{{Strength: 5, Depth: 0}, {Strength: 4, Depth: 1}},
		{{Strength: 2, Depth: 0}},
	})

	want := "Triggering bomb at (3, 3) affecting 9 cells\n" +
		"Game over! The board is full of aliens.\n" +
		"You win!\n" +
		"The total strength of remaining aliens (4) is less than the player's strength (6). You win by nuking the board!\n" +
		"5(0):4(1):\n" +
		"2(0):\n"
	if buf.String() != want {
		t.Fatalf("output expected=%q got=%q", want, buf.String())
	}
}
