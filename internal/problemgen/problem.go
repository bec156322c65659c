package problemgen

// Problem is one arithmetic question ready for display. Problems are
// created fresh per question and discarded after judging.
type Problem struct {
	// Text is the expression shown to the player, e.g. "3 + 4" or
	// "42 ÷ 7". The trailing "= ?" belongs to the prompt, not the text.
	Text string

	// Answer is the exact integer solution of Text.
	Answer int
}
