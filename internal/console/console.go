package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/abhisek/mathsprint/internal/difficulty"
	"github.com/abhisek/mathsprint/internal/highscore"
	"github.com/abhisek/mathsprint/internal/problemgen"
	"github.com/abhisek/mathsprint/internal/round"
	"github.com/abhisek/mathsprint/internal/ui/theme"
)

// Options wires the session's collaborators. In and Out default to the
// process stdio, Generator to the entropy-backed generator, and Scores
// to the per-user score file.
type Options struct {
	In        io.Reader
	Out       io.Writer
	Generator problemgen.Generator
	Scores    *highscore.Store
}

// Session owns the interactive menu/round/summary loop around the round
// engine. All reads go through a single line reader so blocking input
// stays interruptible.
type Session struct {
	in     *lineReader
	out    io.Writer
	scores *highscore.Store
	engine *round.Engine
}

// Run plays rounds until the player declines a replay or the input
// stream ends.
func Run(opts Options) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Generator == nil {
		opts.Generator = problemgen.NewDefault()
	}
	if opts.Scores == nil {
		opts.Scores = highscore.NewStore(highscore.DefaultPath())
	}

	s := &Session{
		in:     newLineReader(opts.In),
		out:    opts.Out,
		scores: opts.Scores,
	}
	s.engine = round.NewEngine(opts.Generator, &answerSource{in: s.in, out: s.out})
	return s.run()
}

func (s *Session) run() error {
	fmt.Fprintln(s.out, RenderBanner(terminalWidth()))

	for {
		fmt.Fprintln(s.out, theme.Subtitle.Render("🧠 Math Sprint — how fast can you think?"))

		prof, err := s.chooseDifficulty()
		if err != nil {
			return endSession(err)
		}

		fmt.Fprintf(s.out, "\nGo! You have %d seconds on %s…\n", prof.RoundSeconds, prof.Name)
		res := s.playRound(prof)

		if res.Interrupted {
			fmt.Fprintln(s.out)
			fmt.Fprintln(s.out, theme.Hint.Render("⏹ Interrupted — scoring what you have..."))
		}
		s.printSummary(round.Summarize(res))
		s.printHighScore(res.Difficulty, res.Score)

		again, err := s.askReplay()
		if err != nil || !again {
			fmt.Fprintln(s.out, "Thanks for playing!")
			return endSession(err)
		}
		fmt.Fprintln(s.out)
	}
}

// chooseDifficulty prints the menu once, then re-prompts until one of
// the numbered entries is picked.
func (s *Session) chooseDifficulty() (difficulty.Profile, error) {
	profiles := difficulty.All()

	fmt.Fprintln(s.out, "Choose difficulty:")
	for i, p := range profiles {
		fmt.Fprintf(s.out, "  %d. %s  (range %d..%d, ops %s, %ds)\n",
			i+1, p.Name, p.Min, p.Max, p.OpsList(), p.RoundSeconds)
	}

	for {
		fmt.Fprintf(s.out, "Enter 1-%d: ", len(profiles))
		line, err := s.in.ReadLine(context.Background())
		if err != nil {
			return difficulty.Profile{}, err
		}
		choice := strings.TrimSpace(line)
		for i := range profiles {
			if choice == strconv.Itoa(i+1) {
				return profiles[i], nil
			}
		}
		fmt.Fprintln(s.out, "Invalid choice.")
	}
}

// playRound runs one round with interrupt handling scoped to it, so a
// Ctrl-C aborts the round rather than the program.
func (s *Session) playRound(prof difficulty.Profile) round.Result {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return s.engine.Run(ctx, prof, s.printVerdict)
}

func (s *Session) printVerdict(v round.Verdict) {
	if v.Correct {
		line := fmt.Sprintf("✓ Correct in %s  +%d (streak %d)", round.FormatSeconds(v.Latency), v.Points, v.Streak)
		fmt.Fprintln(s.out, theme.Correct.Render(line))
		return
	}
	fmt.Fprintln(s.out, theme.Incorrect.Render(fmt.Sprintf("✗ Wrong (answer: %d)  (+0)", v.Problem.Answer)))
}

func (s *Session) printSummary(sum round.Summary) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, theme.Title.Render("=== Round Summary ==="))
	fmt.Fprintf(s.out, "Questions answered: %d\n", sum.Questions)
	fmt.Fprintf(s.out, "Score: %d\n", sum.Score)
	fmt.Fprintf(s.out, "Avg time/Q: %s\n", sum.AvgText())
	fmt.Fprintf(s.out, "Best: %s   Worst: %s\n", sum.BestText(), sum.WorstText())
	fmt.Fprintln(s.out)
}

// printHighScore compares the round's score against the saved best and
// reports the outcome.
func (s *Session) printHighScore(name string, score int) {
	table := s.scores.Load()
	improved, best := s.scores.UpdateIfBetter(table, name, score)
	if improved {
		fmt.Fprintln(s.out, theme.Highlight.Render(fmt.Sprintf("🏆 NEW %s high score: %d — nice!", name, best)))
		return
	}
	fmt.Fprintf(s.out, "Best %s high score: %d\n", name, best)
}

// askReplay reports whether the player wants another round. Any answer
// starting with "y" counts as yes.
func (s *Session) askReplay() (bool, error) {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Play again? (y/n)")
	fmt.Fprint(s.out, "> ")

	line, err := s.in.ReadLine(context.Background())
	if err != nil {
		return false, err
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y"), nil
}

// endSession maps an exhausted input stream to a clean exit.
func endSession(err error) error {
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// terminalWidth returns the stdout width, defaulting to 80 columns when
// the query fails (pipes, tests).
func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}
