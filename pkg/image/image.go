// Package image decodes a program image — either a little-endian word
// stream or a comma-separated decimal literal — into the word slice
// that seeds a vm.VM's memory.
package image

import (
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bassosimone/synacore/pkg/vm"
)

// FromBinary decodes a sequence of 16-bit little-endian words from r.
// A trailing odd byte, if any, is ignored. More than vm.MemSize words
// is a fault.
func FromBinary(r io.Reader) ([]vm.Word, error) {
	var words []vm.Word
	buf := make([]byte, 2)
	for {
		_, err := io.ReadFull(r, buf)
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break // clean EOF, or a trailing odd byte ignored
		}
		if err != nil {
			return nil, err
		}
		words = append(words, vm.Word(binary.LittleEndian.Uint16(buf)))
	}
	if len(words) > vm.MemSize {
		return nil, &vm.Fault{Kind: vm.ImageTooLarge,
			Detail: fmt.Sprintf("image has %d words, memory holds %d", len(words), vm.MemSize)}
	}
	return words, nil
}

// FromCSV decodes a comma-separated list of decimal integers, each of
// which must fit in an unsigned 16-bit word.
//
// Fields are split on comma position and converted with a 16-bit-bounded
// parse; an empty field is a parse error since strconv rejects it.
func FromCSV(s string) ([]vm.Word, error) {
	fields := strings.Split(s, ",")
	words := make([]vm.Word, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		v, err := strconv.ParseUint(f, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("image: %w", &vm.Fault{Kind: vm.OperandOverflow,
				Detail: fmt.Sprintf("field %q does not fit in a 16-bit word: %s", f, err)})
		}
		words = append(words, vm.Word(v))
	}
	if len(words) > vm.MemSize {
		return nil, &vm.Fault{Kind: vm.ImageTooLarge,
			Detail: fmt.Sprintf("image has %d words, memory holds %d", len(words), vm.MemSize)}
	}
	return words, nil
}
