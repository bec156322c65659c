package problemgen

import (
	"strconv"
	"strings"
)

// CheckAnswer compares the player's raw input against the problem's
// answer. Input is trimmed and parsed as a base-10 integer; anything
// that fails to parse is simply wrong, never an error.
func CheckAnswer(input string, p Problem) bool {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return false
	}
	return n == p.Answer
}
