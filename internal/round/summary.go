package round

import (
	"fmt"
	"time"
)

// NoData is the placeholder shown when a round produced no latencies.
const NoData = "—"

// Summary reduces a finished round to its displayable aggregates.
type Summary struct {
	Questions int
	Score     int
	Avg       time.Duration
	Best      time.Duration
	Worst     time.Duration
	HasData   bool
}

// Summarize computes latency statistics over a finished round. A round
// with no questions yields a Summary whose text accessors return the
// NoData placeholder rather than zeros.
func Summarize(r Result) Summary {
	s := Summary{Questions: r.Asked, Score: r.Score}
	lats := r.Latencies()
	if len(lats) == 0 {
		return s
	}

	s.HasData = true
	s.Best, s.Worst = lats[0], lats[0]
	var total time.Duration
	for _, l := range lats {
		total += l
		if l < s.Best {
			s.Best = l
		}
		if l > s.Worst {
			s.Worst = l
		}
	}
	s.Avg = total / time.Duration(len(lats))
	return s
}

// AvgText returns the mean latency as "1.23s", or NoData.
func (s Summary) AvgText() string { return s.text(s.Avg) }

// BestText returns the fastest answer as "1.23s", or NoData.
func (s Summary) BestText() string { return s.text(s.Best) }

// WorstText returns the slowest answer as "1.23s", or NoData.
func (s Summary) WorstText() string { return s.text(s.Worst) }

func (s Summary) text(d time.Duration) string {
	if !s.HasData {
		return NoData
	}
	return FormatSeconds(d)
}

// FormatSeconds renders a latency with two decimals and the unit, the
// same shape used by per-answer feedback.
func FormatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.2fs", d.Seconds())
}
