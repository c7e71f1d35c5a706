package disasm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bassosimone/synacore/pkg/disasm"
	"github.com/bassosimone/synacore/pkg/vm"
)

func w(vs ...int) []vm.Word {
	out := make([]vm.Word, len(vs))
	for i, v := range vs {
		out[i] = vm.Word(v)
	}
	return out
}

func TestDisassembleOutHalt(t *testing.T) {
	mem := w(19, 72, 0)
	lines := disasm.All(mem)
	require.Len(t, lines, 2)
	assert.Equal(t, "OUT", lines[0].Mnemonic)
	assert.Equal(t, []uint16{72}, lines[0].Operands)
	assert.Equal(t, uint16(0), lines[0].Addr)
	assert.Equal(t, "HALT", lines[1].Mnemonic)
	assert.Equal(t, uint16(2), lines[1].Addr)
	assert.Equal(t, uint16(4), lines[1].Byte())
}

func TestDisassembleUnknownWord(t *testing.T) {
	mem := w(9999, 0)
	lines := disasm.All(mem)
	require.Len(t, lines, 2)
	assert.True(t, lines[0].Unknown)
	assert.Equal(t, uint16(9999), lines[0].Raw)
	assert.Equal(t, uint16(1), lines[1].Addr) // unknown consumes exactly one word
}

func TestDisassembleOutputFormat(t *testing.T) {
	mem := w(19, 72, 0)
	var buf bytes.Buffer
	require.NoError(t, disasm.Disassemble(mem, &buf))
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, disasm.Header, lines[0])
	assert.Equal(t, "0x0000  0x0000   OUT  0x0048", lines[1])
	assert.Equal(t, "0x0004  0x0002  HALT", lines[2])
}

func TestDisassembleIsIdempotent(t *testing.T) {
	mem := w(1, 32769, 2, 9, 32768, 32769, 1, 19, 32768, 0)
	var a, b bytes.Buffer
	require.NoError(t, disasm.Disassemble(mem, &a))
	require.NoError(t, disasm.Disassemble(mem, &b))
	assert.Equal(t, a.String(), b.String())
}

func TestDisassembleGreedyConsumptionDoesNotValidateOperands(t *testing.T) {
	// set r0 <out-of-range operand> — the disassembler prints the raw
	// operand word without resolving or validating it, unlike the
	// execution engine.
	mem := w(1, 32768, 65000, 0)
	lines := disasm.All(mem)
	require.Len(t, lines, 2)
	assert.Equal(t, "SET", lines[0].Mnemonic)
	assert.Equal(t, []uint16{32768, 65000}, lines[0].Operands)
}
