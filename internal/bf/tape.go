package bf

// DefaultTapeSize is the number of cells when no size is configured.
const DefaultTapeSize = 65536

// Tape is a fixed-size ring of byte cells with a single pointer.
type Tape struct {
	cells []byte
	ptr   int
}

// NewTape allocates a zeroed tape. Sizes below 1 fall back to
// DefaultTapeSize.
func NewTape(size int) *Tape {
	if size < 1 {
		size = DefaultTapeSize
	}
	return &Tape{cells: make([]byte, size)}
}

// Increment adds one to the current cell, wrapping 255 to 0.
func (t *Tape) Increment() {
	t.cells[t.ptr]++
}

// Decrement subtracts one from the current cell, wrapping 0 to 255.
func (t *Tape) Decrement() {
	t.cells[t.ptr]--
}

// MoveRight advances the pointer, wrapping at the end of the tape.
func (t *Tape) MoveRight() {
	t.ptr = (t.ptr + 1) % len(t.cells)
}

// MoveLeft moves the pointer back, wrapping at the start of the tape.
func (t *Tape) MoveLeft() {
	t.ptr = (t.ptr + len(t.cells) - 1) % len(t.cells)
}

// Read returns the current cell.
func (t *Tape) Read() byte {
	return t.cells[t.ptr]
}

// Write sets the current cell.
func (t *Tape) Write(b byte) {
	t.cells[t.ptr] = b
}

// Pointer returns the index of the current cell.
func (t *Tape) Pointer() int {
	return t.ptr
}

// Size returns the number of cells.
func (t *Tape) Size() int {
	return len(t.cells)
}

// Cell returns the cell at i, taken modulo the tape size. Negative indices
// count back from the end.
func (t *Tape) Cell(i int) byte {
	n := len(t.cells)
	return t.cells[((i%n)+n)%n]
}
