// Package disasm walks a memory image and emits one line per
// instruction or unknown word, sharing the opcode table with pkg/vm
// instead of keeping its own copy of the instruction set.
//
// The disassembler is a batch listing tool: it greedily slices memory
// into instruction-shaped runs left to right, without executing or
// validating anything it reads.
package disasm

import (
	"fmt"
	"io"

	"github.com/bassosimone/synacore/pkg/vm"
)

// Line is one row of the disassembly listing.
type Line struct {
	Addr     uint16
	Mnemonic string // empty when Unknown
	Operands []uint16
	Unknown  bool
	Raw      uint16 // the raw word, meaningful only when Unknown
}

// Byte returns the byte offset of the line (Addr*2).
func (l Line) Byte() uint16 { return l.Addr * 2 }

// Walk linearly scans mem from address 0 to len(mem)-1, calling visit
// for each instruction or unknown word it greedily consumes.
func Walk(mem []vm.Word, visit func(Line)) {
	addr := 0
	for addr < len(mem) {
		op := mem[addr]
		mnemonic, arity, ok := vm.Lookup(op)
		if !ok {
			visit(Line{Addr: uint16(addr), Unknown: true, Raw: uint16(op)})
			addr++
			continue
		}
		line := Line{Addr: uint16(addr), Mnemonic: mnemonic}
		for i := 0; i < arity && addr+1+i < len(mem); i++ {
			line.Operands = append(line.Operands, uint16(mem[addr+1+i]))
		}
		visit(line)
		addr += 1 + arity
	}
}

// All collects the full listing of mem into a slice.
func All(mem []vm.Word) []Line {
	var lines []Line
	Walk(mem, func(l Line) { lines = append(lines, l) })
	return lines
}

// Header is the fixed column header the listing is printed under.
const Header = "Byte    Addr    Inst  Args"

// Format renders one Line in a fixed-width hex format:
// 0xBBBB  0xAAAA  MNEM  0xOOOO[, 0xOOOO]...
func Format(l Line) string {
	if l.Unknown {
		return fmt.Sprintf("0x%04X  0x%04X  Unknown: 0x%04X", l.Byte(), l.Addr, l.Raw)
	}
	out := fmt.Sprintf("0x%04X  0x%04X  %4s", l.Byte(), l.Addr, l.Mnemonic)
	for i, o := range l.Operands {
		if i == 0 {
			out += "  0x" + fmt.Sprintf("%04X", o)
		} else {
			out += fmt.Sprintf(", 0x%04X", o)
		}
	}
	return out
}

// Disassemble writes the full listing of mem to w, header first.
func Disassemble(mem []vm.Word, w io.Writer) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return err
	}
	var werr error
	Walk(mem, func(l Line) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintln(w, Format(l))
	})
	return werr
}
