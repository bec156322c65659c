package problemgen

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/abhisek/mathsprint/internal/difficulty"
)

// scriptRand replays a fixed sequence of draws. Each value is reduced
// modulo the requested bound so scripts stay valid for any range.
type scriptRand struct {
	draws []int
	pos   int
}

func (r *scriptRand) IntN(n int) int {
	if r.pos >= len(r.draws) {
		return 0
	}
	v := r.draws[r.pos] % n
	r.pos++
	return v
}

func testProfile(ops ...difficulty.Operator) difficulty.Profile {
	return difficulty.Profile{Name: "Test", Min: 0, Max: 10, Operators: ops, RoundSeconds: 60}
}

func TestGenerateAddition(t *testing.T) {
	g := New(&scriptRand{draws: []int{0, 3, 4}})
	got := g.Generate(testProfile(difficulty.OpAdd))

	if got.Text != "3 + 4" {
		t.Errorf("Text = %q, want %q", got.Text, "3 + 4")
	}
	if got.Answer != 7 {
		t.Errorf("Answer = %d, want 7", got.Answer)
	}
}

func TestGenerateSubtractionReorders(t *testing.T) {
	// Draw a=2, b=9: operands must swap so the answer stays non-negative.
	g := New(&scriptRand{draws: []int{0, 2, 9}})
	got := g.Generate(testProfile(difficulty.OpSub))

	if got.Text != "9 - 2" {
		t.Errorf("Text = %q, want %q", got.Text, "9 - 2")
	}
	if got.Answer != 7 {
		t.Errorf("Answer = %d, want 7", got.Answer)
	}
}

func TestGenerateSubtractionNeverNegative(t *testing.T) {
	g := New(rand.New(rand.NewPCG(1, 2)))
	p := testProfile(difficulty.OpSub)

	for i := 0; i < 2000; i++ {
		prob := g.Generate(p)
		if prob.Answer < 0 {
			t.Fatalf("subtraction produced negative answer: %q = %d", prob.Text, prob.Answer)
		}
	}
}

func TestGenerateMultiplication(t *testing.T) {
	g := New(&scriptRand{draws: []int{0, 3, 4}})
	got := g.Generate(testProfile(difficulty.OpMul))

	if got.Text != "3 × 4" {
		t.Errorf("Text = %q, want %q", got.Text, "3 × 4")
	}
	if got.Answer != 12 {
		t.Errorf("Answer = %d, want 12", got.Answer)
	}
}

func TestGenerateDivisionScripted(t *testing.T) {
	// Operand draws 9,9 are consumed then superseded by the divisor
	// draw (1+3=4) and quotient draw (5): 5*4=20, so "20 ÷ 4" = 5.
	g := New(&scriptRand{draws: []int{0, 9, 9, 3, 5}})
	got := g.Generate(testProfile(difficulty.OpDiv))

	if got.Text != "20 ÷ 4" {
		t.Errorf("Text = %q, want %q", got.Text, "20 ÷ 4")
	}
	if got.Answer != 5 {
		t.Errorf("Answer = %d, want 5", got.Answer)
	}
}

func TestGenerateDivisionAlwaysExact(t *testing.T) {
	g := New(rand.New(rand.NewPCG(3, 4)))
	// Min 0 exercises the divisor floor: divisors must still be >= 1.
	p := testProfile(difficulty.OpDiv)

	for i := 0; i < 2000; i++ {
		prob := g.Generate(p)
		dividend, divisor := splitOperands(t, prob.Text, " ÷ ")
		if divisor < 1 {
			t.Fatalf("divisor %d < 1 in %q", divisor, prob.Text)
		}
		if dividend%divisor != 0 {
			t.Fatalf("inexact division %q", prob.Text)
		}
		if dividend/divisor != prob.Answer {
			t.Fatalf("%q: quotient %d != answer %d", prob.Text, dividend/divisor, prob.Answer)
		}
	}
}

func TestGenerateOperandsInRange(t *testing.T) {
	g := New(rand.New(rand.NewPCG(5, 6)))
	p := difficulty.Profile{Name: "Test", Min: 1, Max: 20, Operators: []difficulty.Operator{difficulty.OpAdd}, RoundSeconds: 60}

	for i := 0; i < 2000; i++ {
		prob := g.Generate(p)
		a, b := splitOperands(t, prob.Text, " + ")
		for _, n := range []int{a, b} {
			if n < p.Min || n > p.Max {
				t.Fatalf("operand %d outside [%d, %d] in %q", n, p.Min, p.Max, prob.Text)
			}
		}
		if a+b != prob.Answer {
			t.Fatalf("%q: answer %d, want %d", prob.Text, prob.Answer, a+b)
		}
	}
}

func TestGenerateOperatorWeighting(t *testing.T) {
	// Five operator slots with addition in positions 0 and 4: the draw
	// indexes the slot directly, so duplicates get proportional weight.
	ops := []difficulty.Operator{difficulty.OpAdd, difficulty.OpSub, difficulty.OpMul, difficulty.OpDiv, difficulty.OpAdd}

	g := New(&scriptRand{draws: []int{4, 1, 2}})
	got := g.Generate(testProfile(ops...))

	if got.Text != "1 + 2" {
		t.Errorf("slot 4 draw produced %q, want an addition %q", got.Text, "1 + 2")
	}
}

func TestGenerateUnknownOperatorFallsBack(t *testing.T) {
	g := New(&scriptRand{draws: []int{0, 3, 4}})
	got := g.Generate(testProfile(difficulty.Operator("%")))

	if got.Text != "3 + 4" || got.Answer != 7 {
		t.Errorf("fallback produced %q = %d, want %q = 7", got.Text, got.Answer, "3 + 4")
	}
}

// splitOperands parses "a <sep> b" into its two integer operands.
func splitOperands(t *testing.T, text, sep string) (int, int) {
	t.Helper()
	parts := strings.Split(text, sep)
	if len(parts) != 2 {
		t.Fatalf("cannot split %q on %q", text, sep)
	}
	a, err := strconv.Atoi(parts[0])
	if err != nil {
		t.Fatalf("bad left operand in %q: %v", text, err)
	}
	b, err := strconv.Atoi(parts[1])
	if err != nil {
		t.Fatalf("bad right operand in %q: %v", text, err)
	}
	return a, b
}
