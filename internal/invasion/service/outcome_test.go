package service

import "testing"

func advance(p interface{ AdvanceTurn() }, n int) {
	for i := 0; i < n; i++ {
		p.AdvanceTurn()
	}
}

func TestEvaluateBeforeTurn_回合超过5才核平(t *testing.T) {
	cases := []struct {
		name string
		turn int
		want Outcome
	}{
		{"第5回合不判定", 5, Continue},
		{"第6回合总力量不足即核平", 6, Nuked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, p := newTestBoard(6)
			a1 := mustAlien(t, b, 1, 1, 2)
			a2 := mustAlien(t, b, 6, 6, 3)
			advance(p, tc.turn)

			ev := EvaluateBeforeTurn(b, p, 5)
			if ev.Outcome != tc.want {
				t.Fatalf("outcome expected=%v got=%v", tc.want, ev.Outcome)
			}
			if tc.want != Nuked {
				if a1.IsDead() || a2.IsDead() {
					t.Fatalf("未核平时不应杀死外星人")
				}
				return
			}
			if ev.AlienStrength != 5 || ev.PlayerStrength != 6 || ev.Killed != 2 {
				t.Fatalf("unexpected evaluation: %+v", ev)
			}
			if !a1.IsDead() || !a2.IsDead() || !b.IsEmpty() {
				t.Fatalf("核平后棋盘应为空")
			}
		})
	}
}

func TestEvaluateBeforeTurn_总力量不低于玩家不核平(t *testing.T) {
	b, p := newTestBoard(5)
	mustAlien(t, b, 1, 1, 2)
	mustAlien(t, b, 6, 6, 3)
	advance(p, 10)

	ev := EvaluateBeforeTurn(b, p, 5)
	if ev.Outcome != Continue {
		t.Fatalf("outcome expected=continue got=%v", ev.Outcome)
	}
	if ev.AlienStrength != 5 || ev.Killed != 0 {
		t.Fatalf("unexpected evaluation: %+v", ev)
	}
}

func TestEvaluateBeforeTurn_满盘判负(t *testing.T) {
	b, p := newTestBoard(9)
	for x := 0; x < b.Width(); x++ {
		for y := 0; y < b.Height(); y++ {
			mustAlien(t, b, x, y, 1)
		}
	}
	advance(p, 10)
	// 满盘先于核平判定
	if ev := EvaluateBeforeTurn(b, p, 5); ev.Outcome != Lost {
		t.Fatalf("outcome expected=lost got=%v", ev.Outcome)
	}
}

func TestEvaluateAfterStep(t *testing.T) {
	b, _ := newTestBoard(1)
	if got := EvaluateAfterStep(b); got != Won {
		t.Fatalf("empty board expected=won got=%v", got)
	}
	mustAlien(t, b, 2, 2, 1)
	if got := EvaluateAfterStep(b); got != Continue {
		t.Fatalf("expected=continue got=%v", got)
	}
}

func TestOutcome_Terminal(t *testing.T) {
	if Continue.Terminal() {
		t.Fatalf("continue should not be terminal")
	}
	for _, o := range []Outcome{Lost, Won, Nuked, Quit} {
		if !o.Terminal() {
			t.Fatalf("%v should be terminal", o)
		}
	}
}
