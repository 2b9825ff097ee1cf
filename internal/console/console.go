// Package console runs a quiz over plain line-oriented input and output,
// for terminals where the full-screen interface is not wanted.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/rustquiz/rustquiz/internal/quiz"
	"github.com/rustquiz/rustquiz/internal/selection"
	"github.com/rustquiz/rustquiz/internal/session"
)

const (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

// ErrInvalidChoice is returned by ParseChoice for input that names no choice.
var ErrInvalidChoice = errors.New("invalid choice")

// Runner drives sessions from a reader and prints to a writer.
type Runner struct {
	in      *bufio.Scanner
	out     io.Writer
	bank    *quiz.Bank
	planner *selection.Planner
	log     *slog.Logger
}

// NewRunner creates a Runner. A nil logger discards records.
func NewRunner(in io.Reader, out io.Writer, bank *quiz.Bank, planner *selection.Planner, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{
		in:      bufio.NewScanner(in),
		out:     out,
		bank:    bank,
		planner: planner,
		log:     log,
	}
}

// Run plays rounds of plan until the user declines another one or input
// ends. When askMode is set the user picks the mode first.
func (r *Runner) Run(plan selection.Plan, askMode bool) error {
	if askMode {
		p, ok := r.PromptMode(plan)
		if !ok {
			return r.in.Err()
		}
		plan = p
	}

	sess := session.New(r.planner.Build(r.bank, plan))
	for {
		attempt := uuid.NewString()
		log := r.log.With("attempt_id", attempt)
		log.Info("attempt started", "mode", string(plan.Mode), "items", sess.Len())

		if !r.Play(sess, log) {
			r.printf("\n(input closed)\n")
			log.Info("attempt abandoned", "answered", sess.Index(), "total", sess.Len())
			return r.in.Err()
		}

		sum := session.BuildSummary(sess)
		r.printf("── Summary: %d/%d correct (%d%%) ──\n", sum.Score, sum.Total, sum.Percent())
		log.Info("attempt finished", "score", sum.Score, "total", sum.Total)

		if !r.PromptPlayAgain() {
			return r.in.Err()
		}
		sess.ResetWith(r.planner.Build(r.bank, plan))
	}
}

// Play asks every remaining question of sess. It returns false if input
// ran out before the session finished.
func (r *Runner) Play(sess *session.Session, log *slog.Logger) bool {
	if sess.Finished() && sess.Len() == 0 {
		r.printf("No questions match this selection.\n\n")
		return true
	}

	for {
		item, ok := sess.CurrentQuestion()
		if !ok {
			return true
		}

		answered, total := sess.Progress(sess.Len())
		r.printQuestion(item, answered+1, total)

		choice, ok := r.readChoice(len(item.Choices))
		if !ok {
			return false
		}

		res := sess.Answer(choice)
		log.Debug("answer", "item_id", item.ID, "choice", choice, "result", res.String())
		r.printFeedback(item, res)
	}
}

// PromptMode asks which game mode to play, retrying on invalid input.
// The returned plan keeps def's count and filter. It returns false on EOF.
func (r *Runner) PromptMode(def selection.Plan) (selection.Plan, bool) {
	modes := selection.AllModes()

	r.printf("Pick a game mode:\n")
	for i, m := range modes {
		if m == selection.ModeRandom {
			r.printf("  %d) %s (%d questions)\n", i+1, m.DisplayName(), def.Count)
			continue
		}
		r.printf("  %d) %s\n", i+1, m.DisplayName())
	}

	for {
		r.printf("\nMode: ")
		line, ok := r.readLine()
		if !ok {
			return def, false
		}

		mode, err := selection.ParseMode(line)
		if err != nil {
			i, cerr := ParseChoice(line, len(modes))
			if cerr != nil {
				r.printf("Please enter a number between 1 and %d.\n", len(modes))
				continue
			}
			mode = modes[i]
		}

		plan := def
		plan.Mode = mode
		r.printf("\n")
		return plan, true
	}
}

// PromptPlayAgain asks whether to start another round. Blank input or EOF
// counts as no.
func (r *Runner) PromptPlayAgain() bool {
	for {
		r.printf("\nPlay again? [y/N]: ")
		line, ok := r.readLine()
		if !ok {
			return false
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			r.printf("\n")
			return true
		case "", "n", "no":
			return false
		default:
			r.printf("Please answer y or n.\n")
		}
	}
}

func (r *Runner) printQuestion(item quiz.Item, n, total int) {
	r.printf("── Question %d/%d ──\n", n, total)
	r.printf("%s\n\n", item.Title)
	r.printf("%s\n", item.Question)
	if item.HasCode() {
		r.printf("\n")
		for _, line := range strings.Split(item.Code, "\n") {
			r.printf("    %s\n", line)
		}
	}
	r.printf("\n")
	for i, c := range item.Choices {
		r.printf("  %d) %s\n", i+1, c)
	}
}

func (r *Runner) printFeedback(item quiz.Item, res session.Result) {
	switch res {
	case session.ResultCorrect:
		r.printf("%s✓ Correct!%s\n", green, reset)
	case session.ResultWrong:
		r.printf("%s✗ Wrong.%s Answer: %s\n", red, reset, item.CorrectChoice())
	}
	if item.Explanation != "" {
		r.printf("%sExplanation:%s %s\n", dim, reset, item.Explanation)
	}
	r.printf("\n")
}

// readChoice reads a 1-based choice and returns it 0-based.
func (r *Runner) readChoice(n int) (int, bool) {
	for {
		r.printf("\nYour answer: ")
		line, ok := r.readLine()
		if !ok {
			return 0, false
		}
		choice, err := ParseChoice(line, n)
		if err != nil {
			r.printf("Please enter a number between 1 and %d.\n", n)
			continue
		}
		return choice, true
	}
}

// ParseChoice converts a 1-based answer typed by the user into a 0-based
// index in [0, n).
func ParseChoice(s string, n int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidChoice)
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 1 || v > n {
		return 0, fmt.Errorf("%w: %q not in 1..%d", ErrInvalidChoice, s, n)
	}
	return v - 1, nil
}

func (r *Runner) readLine() (string, bool) {
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

func (r *Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}
