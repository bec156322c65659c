package round

import (
	"context"
	"time"

	"github.com/abhisek/mathsprint/internal/difficulty"
	"github.com/abhisek/mathsprint/internal/problemgen"
	"github.com/abhisek/mathsprint/internal/scoring"
)

// Phase represents where the engine is in the round lifecycle.
type Phase int

const (
	PhaseRunning        Phase = iota // Between questions, deadline not yet reached
	PhaseAwaitingAnswer              // Blocked on player input
	PhaseStopped                     // Round over, result produced
)

// Answer is one line of player input plus the time it took to arrive.
type Answer struct {
	Text    string
	Latency time.Duration
}

// AnswerSource supplies one answer per question. Ask blocks until the
// player submits a line and reports the latency from prompt to submit.
// It is the engine's sole suspension point and also its cancellation
// point: Ask returns an error when ctx is canceled or the input stream
// ends, which aborts the round without discarding accumulated state.
type AnswerSource interface {
	Ask(ctx context.Context, p problemgen.Problem, remaining time.Duration) (Answer, error)
}

// AnswerEvent records one judged question. Events are appended in play
// order and never mutated.
type AnswerEvent struct {
	Latency time.Duration
	Correct bool
}

// Verdict describes one judged answer, delivered to the feedback
// callback right after scoring.
type Verdict struct {
	Problem problemgen.Problem
	Input   string
	Correct bool
	Latency time.Duration
	Points  int
	Streak  int // streak after this answer; 0 when wrong
}

// Result is the aggregate outcome of one round. Interrupted rounds are
// ordinary completions for every downstream consumer; the flag only
// drives the optional notice shown to the player.
type Result struct {
	Difficulty  string
	Score       int
	Asked       int
	Events      []AnswerEvent
	Interrupted bool
}

// Latencies returns the per-question latencies in play order.
func (r Result) Latencies() []time.Duration {
	out := make([]time.Duration, len(r.Events))
	for i, ev := range r.Events {
		out[i] = ev.Latency
	}
	return out
}

// Engine drives one time-boxed round: it generates problems, collects
// answers, and accumulates score, streak, and latency history until the
// deadline passes or the source reports an interrupt.
type Engine struct {
	gen   problemgen.Generator
	src   AnswerSource
	now   func() time.Time
	phase Phase
}

// NewEngine returns an engine reading answers from src. The same engine
// can run any number of rounds in sequence.
func NewEngine(gen problemgen.Generator, src AnswerSource) *Engine {
	return &Engine{gen: gen, src: src, now: time.Now}
}

// Phase returns the engine's current lifecycle phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Run plays one round under the given profile and returns its result.
// The deadline is checked only at the top of each iteration, so a
// question issued before the deadline still counts even when its answer
// lands after it. onAnswer, when non-nil, receives a Verdict for every
// judged answer.
func (e *Engine) Run(ctx context.Context, p difficulty.Profile, onAnswer func(Verdict)) Result {
	deadline := e.now().Add(p.Duration())
	res := Result{Difficulty: p.Name}
	streak := 0

	e.phase = PhaseRunning
	for {
		if ctx.Err() != nil {
			res.Interrupted = true
			break
		}
		now := e.now()
		if !now.Before(deadline) {
			break
		}

		prob := e.gen.Generate(p)
		e.phase = PhaseAwaitingAnswer
		ans, err := e.src.Ask(ctx, prob, deadline.Sub(now))
		e.phase = PhaseRunning
		if err != nil {
			res.Interrupted = true
			break
		}

		correct := problemgen.CheckAnswer(ans.Text, prob)
		res.Events = append(res.Events, AnswerEvent{Latency: ans.Latency, Correct: correct})
		res.Asked++

		if correct {
			streak++
		}
		pts := scoring.Points(ans.Latency, correct, streak)
		res.Score += pts
		if !correct {
			streak = 0
		}

		if onAnswer != nil {
			onAnswer(Verdict{
				Problem: prob,
				Input:   ans.Text,
				Correct: correct,
				Latency: ans.Latency,
				Points:  pts,
				Streak:  streak,
			})
		}
	}

	e.phase = PhaseStopped
	return res
}
