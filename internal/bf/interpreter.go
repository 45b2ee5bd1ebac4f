package bf

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bfckd/bfckd/internal/logging"
)

// ErrStepLimit is returned by Run when the configured step limit is
// exceeded.
var ErrStepLimit = errors.New("step limit exceeded")

// contextCheckInterval is how many steps Run executes between context
// checks.
const contextCheckInterval = 1024

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithTapeSize sets the number of tape cells.
func WithTapeSize(size int) Option {
	return func(i *Interpreter) {
		i.tape = NewTape(size)
	}
}

// WithDiagnostics sends '#' dumps of width cells either side of the pointer
// to w.
func WithDiagnostics(w io.Writer, width int) Option {
	return func(i *Interpreter) {
		i.diag = w
		i.diagWidth = width
	}
}

// WithMaxSteps makes Run fail with ErrStepLimit after n instructions.
// Zero means no limit.
func WithMaxSteps(n uint64) Option {
	return func(i *Interpreter) {
		i.maxSteps = n
	}
}

// WithLogger sets the logger used for runtime events.
func WithLogger(l *logging.Logger) Option {
	return func(i *Interpreter) {
		i.log = l
	}
}

// Interpreter executes a Program against a tape. It is not safe for
// concurrent use.
type Interpreter struct {
	prog  *Program
	tape  *Tape
	pc    int
	stack []int
	steps uint64

	in  io.ByteReader
	out *bufio.Writer
	eof bool

	diag      io.Writer
	diagWidth int

	maxSteps uint64
	log      *logging.Logger
}

// New creates an Interpreter that reads program input from in and writes
// program output to out.
func New(prog *Program, in io.ByteReader, out io.Writer, opts ...Option) *Interpreter {
	i := &Interpreter{
		prog:      prog,
		in:        in,
		out:       bufio.NewWriter(out),
		diagWidth: DefaultDumpWidth,
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.tape == nil {
		i.tape = NewTape(DefaultTapeSize)
	}
	if i.log == nil {
		i.log = logging.With("component", "interpreter")
	}
	return i
}

// Run executes the program until it ends, ctx is done, the step limit is
// hit, or an I/O error occurs. Buffered output is flushed on every path.
func (i *Interpreter) Run(ctx context.Context) (err error) {
	defer func() {
		if ferr := i.flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	for {
		if i.steps%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if i.maxSteps > 0 && i.steps >= i.maxSteps && i.pc < i.prog.Len() {
			return fmt.Errorf("%w: %d", ErrStepLimit, i.maxSteps)
		}

		more, err := i.Step()
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}

// Step executes one instruction. It returns false once the program counter
// has run off the end of the program. Output written by Step stays buffered
// until Flush or Run returns.
func (i *Interpreter) Step() (bool, error) {
	if i.pc >= i.prog.Len() {
		return false, nil
	}
	i.steps++

	switch i.prog.At(i.pc) {
	case Increment:
		i.tape.Increment()
	case Decrement:
		i.tape.Decrement()
	case MoveRight:
		i.tape.MoveRight()
	case MoveLeft:
		i.tape.MoveLeft()

	case Output:
		if err := i.out.WriteByte(i.tape.Read()); err != nil {
			return false, fmt.Errorf("write output: %w", err)
		}

	case Input:
		if err := i.input(); err != nil {
			return false, err
		}

	case LoopOpen:
		if i.tape.Read() == 0 {
			i.pc = i.prog.skipTarget(i.pc)
			return i.pc < i.prog.Len(), nil
		}
		i.stack = append(i.stack, i.pc)

	case LoopClose:
		if i.tape.Read() != 0 {
			// Jump to the innermost open loop-open, or to the program start
			// when no loop is open. The advance below then moves past the
			// target: the loop-open keeps its stack slot and is not
			// re-evaluated.
			if len(i.stack) == 0 {
				i.log.Debug("unmatched loop-close, restarting program", "pc", i.pc)
				i.pc = 0
			} else {
				i.pc = i.stack[len(i.stack)-1]
			}
			break
		}
		if len(i.stack) > 0 {
			i.stack = i.stack[:len(i.stack)-1]
		}

	case Diagnostic:
		if err := i.dump(); err != nil {
			return false, err
		}
	}

	i.pc++
	return i.pc < i.prog.Len(), nil
}

func (i *Interpreter) input() error {
	if i.eof {
		return nil
	}
	// Make pending output visible before a potentially blocking read.
	if err := i.flush(); err != nil {
		return err
	}

	b, err := i.in.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			i.eof = true
			i.log.Debug("input exhausted", "pc", i.pc)
			return nil
		}
		return fmt.Errorf("read input: %w", err)
	}
	i.tape.Write(b)
	return nil
}

func (i *Interpreter) dump() error {
	if i.diag == nil {
		return nil
	}
	if err := i.flush(); err != nil {
		return err
	}
	if _, err := io.WriteString(i.diag, Dump(i.tape, i.diagWidth)); err != nil {
		return fmt.Errorf("write diagnostics: %w", err)
	}
	return nil
}

func (i *Interpreter) flush() error {
	if err := i.out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Flush writes any buffered output.
func (i *Interpreter) Flush() error {
	return i.flush()
}

// PC returns the index of the next instruction.
func (i *Interpreter) PC() int {
	return i.pc
}

// Steps returns the number of instructions executed so far.
func (i *Interpreter) Steps() uint64 {
	return i.steps
}

// Depth returns the number of loops currently entered.
func (i *Interpreter) Depth() int {
	return len(i.stack)
}

// Tape returns the interpreter's tape.
func (i *Interpreter) Tape() *Tape {
	return i.tape
}
