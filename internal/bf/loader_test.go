package bf

import (
	"bufio"
	"strings"
	"testing"

	"github.com/bfckd/bfckd/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_StripsNonInstructions(t *testing.T) {
	t.Parallel()

	prog, err := Load(strings.NewReader("ab+c>!"), LoadOptions{})
	require.NoError(t, err)

	require.Equal(t, 2, prog.Len())
	assert.Equal(t, Increment, prog.At(0))
	assert.Equal(t, MoveRight, prog.At(1))
	assert.Equal(t, "+>", prog.String())
}

func TestLoad_Commented(t *testing.T) {
	t.Parallel()

	prog, err := Load(strings.NewReader(testutil.Commented), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "++++++++[>++++++++<-]>.", prog.String())
}

func TestLoad_LeavesInputAfterSentinel(t *testing.T) {
	t.Parallel()

	r := bufio.NewReader(strings.NewReader("+ . ! \tdata\n"))
	prog, err := Load(r, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "+.", prog.String())

	rest, err := r.ReadString(0)
	assert.Error(t, err)
	assert.Equal(t, " \tdata\n", rest)
}

func TestLoad_InstructionsAfterSentinelAreInput(t *testing.T) {
	t.Parallel()

	r := strings.NewReader(",!+++")
	prog, err := Load(r, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, ",", prog.String())
	assert.Equal(t, 3, r.Len())
}

func TestLoad_NoSentinel(t *testing.T) {
	t.Parallel()

	r := strings.NewReader("+-<> no sentinel here")
	prog, err := Load(r, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "+-<>", prog.String())

	_, err = r.ReadByte()
	assert.Error(t, err, "input should be exhausted")
}

func TestLoad_EmptyStream(t *testing.T) {
	t.Parallel()

	prog, err := Load(strings.NewReader(""), LoadOptions{})
	require.NoError(t, err)
	assert.Zero(t, prog.Len())
}

func TestLoad_DiagnosticSymbol(t *testing.T) {
	t.Parallel()

	prog, err := Load(strings.NewReader("+#-!"), LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, "+-", prog.String())

	prog, err = Load(strings.NewReader("+#-!"), LoadOptions{Diagnostics: true})
	require.NoError(t, err)
	assert.Equal(t, "+#-", prog.String())
	assert.Equal(t, Diagnostic, prog.At(1))
}

func TestLoad_ReadError(t *testing.T) {
	t.Parallel()

	_, err := Load(&testutil.FailingReader{Data: []byte("++")}, LoadOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, testutil.ErrDevice)
	assert.Contains(t, err.Error(), "read program")
}

func TestNewProgram_SkipTargets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		skips  map[int]int
		opens  int
		closes int
	}{
		{"simple", "[+]", map[int]int{0: 3}, 0, 0},
		{"nested", "[[-]+]", map[int]int{0: 6, 1: 4}, 0, 0},
		{"siblings", "[][]", map[int]int{0: 2, 2: 4}, 0, 0},
		{"unmatched open", "+[", map[int]int{1: 2}, 1, 0},
		{"unmatched inner open", "[[]", map[int]int{0: 3, 1: 3}, 1, 0},
		{"unmatched close", "]+[]", map[int]int{2: 4}, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := Load(strings.NewReader(tt.source), LoadOptions{})
			require.NoError(t, err)

			for pc, want := range tt.skips {
				assert.Equal(t, want, prog.skipTarget(pc), "skip target of pc %d", pc)
			}
			opens, closes := prog.Unbalanced()
			assert.Equal(t, tt.opens, opens)
			assert.Equal(t, tt.closes, closes)
		})
	}
}

func TestNewProgram_CopiesInput(t *testing.T) {
	t.Parallel()

	code := []Instruction{Increment, Output}
	prog := NewProgram(code)
	code[0] = Decrement
	assert.Equal(t, Increment, prog.At(0))
}

func TestInstructionString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "loop-open", LoopOpen.String())
	assert.Equal(t, "diagnostic", Diagnostic.String())
	assert.Equal(t, "unknown(x)", Instruction('x').String())
}
