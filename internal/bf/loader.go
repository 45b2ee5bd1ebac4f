package bf

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// LoadOptions controls which symbols the loader recognizes.
type LoadOptions struct {
	// Diagnostics enables the '#' dump instruction.
	Diagnostics bool
}

// Program is a loaded, immutable instruction sequence.
type Program struct {
	code []Instruction
	// skip[pc] is one past the matching loop-close for a loop-open at pc,
	// or len(code) when the loop-open is unmatched.
	skip []int

	unmatchedOpen  int
	unmatchedClose int
}

// Load reads program text from r until the sentinel is consumed or r is
// exhausted. Bytes outside the alphabet are dropped. On return r is
// positioned on the first byte after the sentinel.
func Load(r io.ByteReader, opts LoadOptions) (*Program, error) {
	var code []Instruction
	for {
		c, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read program: %w", err)
		}
		if c == Sentinel {
			break
		}
		if inst, ok := parseInstruction(c, opts.Diagnostics); ok {
			code = append(code, inst)
		}
	}
	return NewProgram(code), nil
}

// NewProgram builds a Program from an instruction sequence. The slice is
// copied.
func NewProgram(code []Instruction) *Program {
	p := &Program{
		code: append([]Instruction(nil), code...),
		skip: make([]int, len(code)),
	}

	var open []int
	for pc, inst := range p.code {
		switch inst {
		case LoopOpen:
			open = append(open, pc)
		case LoopClose:
			if len(open) == 0 {
				p.unmatchedClose++
				continue
			}
			p.skip[open[len(open)-1]] = pc + 1
			open = open[:len(open)-1]
		}
	}
	for _, pc := range open {
		p.skip[pc] = len(p.code)
	}
	p.unmatchedOpen = len(open)

	return p
}

// Len returns the number of instructions.
func (p *Program) Len() int {
	return len(p.code)
}

// At returns the instruction at pc.
func (p *Program) At(pc int) Instruction {
	return p.code[pc]
}

// Unbalanced returns the number of loop-opens and loop-closes without a
// partner. Unbalanced programs still run.
func (p *Program) Unbalanced() (opens, closes int) {
	return p.unmatchedOpen, p.unmatchedClose
}

// skipTarget returns where a loop-open at pc jumps when the current cell is
// zero.
func (p *Program) skipTarget(pc int) int {
	return p.skip[pc]
}

// String returns the normalized source of the program.
func (p *Program) String() string {
	var sb strings.Builder
	sb.Grow(len(p.code))
	for _, inst := range p.code {
		sb.WriteByte(inst.Symbol())
	}
	return sb.String()
}
