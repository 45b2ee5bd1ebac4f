package bf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDump(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		size  int
		setup func(*Tape)
		width int
		want  string
	}{
		{
			name:  "zero tape at origin",
			size:  DefaultTapeSize,
			setup: func(*Tape) {},
			width: 2,
			want:  "0 0 [ 0 ] 0 0 ",
		},
		{
			name: "neighbours in order",
			size: 10,
			setup: func(tp *Tape) {
				for i := 1; i <= 5; i++ {
					for j := 0; j < i; j++ {
						tp.Increment()
					}
					tp.MoveRight()
				}
				// cells 1 2 3 4 5, pointer back on the 3
				tp.MoveLeft()
				tp.MoveLeft()
				tp.MoveLeft()
			},
			width: 2,
			want:  "1 2 [ 3 ] 4 5 ",
		},
		{
			name: "wraps at the left edge",
			size: 4,
			setup: func(tp *Tape) {
				tp.MoveLeft()
				tp.Decrement()
				tp.MoveRight()
			},
			width: 1,
			want:  "255 [ 0 ] 0 ",
		},
		{
			name:  "zero width",
			size:  3,
			setup: func(tp *Tape) { tp.Increment() },
			width: 0,
			want:  "[ 1 ] ",
		},
		{
			name:  "width larger than tape",
			size:  2,
			setup: func(tp *Tape) { tp.Increment() },
			width: 3,
			want:  "0 1 0 [ 1 ] 0 1 0 ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tape := NewTape(tt.size)
			tt.setup(tape)
			assert.Equal(t, tt.want, Dump(tape, tt.width))
		})
	}
}
