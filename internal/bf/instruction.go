// Package bf implements the execution core of the interpreter: loading a
// program from the combined input stream, the wrapping byte tape, and the
// fetch-decode-execute loop that drives them.
package bf

// Instruction is a single program symbol.
type Instruction byte

// The recognized instruction symbols.
const (
	Increment Instruction = '+'
	Decrement Instruction = '-'
	MoveRight Instruction = '>'
	MoveLeft  Instruction = '<'
	LoopOpen  Instruction = '['
	LoopClose Instruction = ']'
	Output    Instruction = '.'
	Input     Instruction = ','

	// Diagnostic is only recognized when diagnostics are enabled.
	Diagnostic Instruction = '#'
)

// Sentinel separates program text from program input.
const Sentinel = '!'

var instructionNames = map[Instruction]string{
	Increment:  "increment",
	Decrement:  "decrement",
	MoveRight:  "move-right",
	MoveLeft:   "move-left",
	LoopOpen:   "loop-open",
	LoopClose:  "loop-close",
	Output:     "output",
	Input:      "input",
	Diagnostic: "diagnostic",
}

// String returns the instruction's name.
func (i Instruction) String() string {
	if name, ok := instructionNames[i]; ok {
		return name
	}
	return "unknown(" + string(rune(i)) + ")"
}

// Symbol returns the source character for the instruction.
func (i Instruction) Symbol() byte {
	return byte(i)
}

// parseInstruction reports whether c is part of the alphabet. The diagnostic
// symbol only counts when diagnostics is true.
func parseInstruction(c byte, diagnostics bool) (Instruction, bool) {
	switch Instruction(c) {
	case Increment, Decrement, MoveRight, MoveLeft, LoopOpen, LoopClose, Output, Input:
		return Instruction(c), true
	case Diagnostic:
		return Diagnostic, diagnostics
	}
	return 0, false
}
