package bf

import (
	"strconv"
	"strings"
)

// DefaultDumpWidth is the number of neighbours shown on each side of the
// current cell.
const DefaultDumpWidth = 2

// Dump formats width cells either side of the current cell in decimal, with
// the current cell bracketed: "0 0 [ 0 ] 0 0 ".
func Dump(t *Tape, width int) string {
	var sb strings.Builder
	ptr := t.Pointer()

	for i := width; i > 0; i-- {
		sb.WriteString(strconv.Itoa(int(t.Cell(ptr - i))))
		sb.WriteByte(' ')
	}
	sb.WriteString("[ ")
	sb.WriteString(strconv.Itoa(int(t.Read())))
	sb.WriteString(" ] ")
	for i := 1; i <= width; i++ {
		sb.WriteString(strconv.Itoa(int(t.Cell(ptr + i))))
		sb.WriteByte(' ')
	}

	return sb.String()
}
