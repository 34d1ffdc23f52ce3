package application

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/bnema/superuser/internal/domain"
	"github.com/bnema/superuser/internal/ports"
	"go.uber.org/zap"
)

// MaxInputLength caps the prompt buffer, in runes.
const MaxInputLength = 70

const (
	winLine          = "All hosts rooted. You win!"
	wrongAnswerLine  = "Access denied: wrong answer"
	grantedLineFmt   = "Access granted: root on %s"
	commandPromptFmt = "root@%s> %s"
	answerPromptFmt  = "hacking %s> %s"
)

// Printer receives manual clones requested by the print command.
type Printer interface {
	RequestPrint(manual domain.Manual)
}

type Console struct {
	network    *domain.Network
	puzzles    domain.PuzzleCatalog
	manuals    domain.ManualCatalog
	printer    Printer
	rng        ports.Random
	logger     *zap.Logger
	scrollback *Scrollback
	buffer     []rune
	state      ConsoleState
	current    string
	lastErr    error
}

func NewConsole(network *domain.Network, puzzles domain.PuzzleCatalog, manuals domain.ManualCatalog, printer Printer, rng ports.Random, logger *zap.Logger) *Console {
	if network == nil {
		network = domain.EmptyNetwork()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Console{
		network:    network,
		puzzles:    puzzles,
		manuals:    manuals,
		printer:    printer,
		rng:        rng,
		logger:     logger,
		scrollback: NewScrollback(DefaultScrollbackCapacity),
		state:      AwaitingCommand{},
		current:    network.Entry(),
	}
}

// PushChar appends a printable rune while the buffer is below MaxInputLength.
func (c *Console) PushChar(r rune) {
	if unicode.IsControl(r) || !unicode.IsPrint(r) || r == utf8.RuneError {
		return
	}
	if len(c.buffer) >= MaxInputLength {
		return
	}
	c.buffer = append(c.buffer, r)
}

func (c *Console) Backspace() {
	if len(c.buffer) == 0 {
		return
	}
	c.buffer = c.buffer[:len(c.buffer)-1]
}

// Submit echoes the prompt line, runs the buffer against the current state and clears
// the buffer. It is the only place where the console state changes.
func (c *Console) Submit() {
	c.scrollback.Push(c.FullPrompt())
	input := string(c.buffer)
	c.buffer = c.buffer[:0]
	c.lastErr = nil

	switch state := c.state.(type) {
	case AwaitingAnswer:
		c.checkAnswer(state, input)
	default:
		c.lastErr = c.dispatch(input)
	}

	if c.lastErr != nil {
		c.println(c.lastErr.Error())
	}
}

func (c *Console) checkAnswer(state AwaitingAnswer, input string) {
	c.state = AwaitingCommand{}

	if input != state.Expected {
		c.logger.Info("puzzle failed", zap.String("host", state.Target))
		c.println(wrongAnswerLine)
		return
	}

	c.network.MarkHacked(state.Target)
	c.logger.Info("host rooted", zap.String("host", state.Target))
	c.println(fmt.Sprintf(grantedLineFmt, state.Target))
	if c.network.AllHacked() {
		c.logger.Info("all hosts rooted", zap.Int("hosts", c.network.Len()))
		c.println(winLine)
	}
}

// FullPrompt renders the live prompt line for the current state.
func (c *Console) FullPrompt() string {
	if state, ok := c.state.(AwaitingAnswer); ok {
		return fmt.Sprintf(answerPromptFmt, state.Target, string(c.buffer))
	}
	return fmt.Sprintf(commandPromptFmt, c.current, string(c.buffer))
}

func (c *Console) println(text string) {
	for _, line := range strings.Split(text, "\n") {
		c.scrollback.Push(line)
	}
}

// TrimTo applies the viewport rule: drop the oldest lines while maxLines or more remain.
func (c *Console) TrimTo(maxLines int) {
	c.scrollback.TrimTo(maxLines)
}

func (c *Console) Lines() []string {
	return c.scrollback.Lines()
}

func (c *Console) LastLine() string {
	line, _ := c.scrollback.Last()
	return line
}

func (c *Console) Buffer() string {
	return string(c.buffer)
}

func (c *Console) State() ConsoleState {
	return c.state
}

func (c *Console) CurrentHost() string {
	return c.current
}

// LastError is the user-facing error reported by the most recent Submit, if any.
func (c *Console) LastError() error {
	return c.lastErr
}

// CaretVisible reports the blink phase: visible during even half-seconds.
func CaretVisible(elapsed time.Duration) bool {
	if elapsed < 0 {
		elapsed = 0
	}
	return int64(elapsed.Seconds()*2)%2 == 0
}
