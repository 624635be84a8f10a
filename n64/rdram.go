package n64

import "encoding/binary"

// RDRAM is the console's main memory. Reads past the installed size return
// zero and writes there are dropped, which is what lets a DMA engine use an
// out-of-range region as an always-empty source.
type RDRAM struct {
	data []byte
}

func NewRDRAM(size uint32) *RDRAM {
	return &RDRAM{make([]byte, size)}
}

// read reads data
func (r *RDRAM) read(address uint32) byte {
	if address >= uint32(len(r.data)) {
		return 0
	}
	return r.data[address]
}

// write writes data
func (r *RDRAM) write(address uint32, x byte) {
	if address >= uint32(len(r.data)) {
		return
	}
	r.data[address] = x
}

// read32 reads a big-endian 32-bit word.
func (r *RDRAM) read32(address uint32) uint32 {
	if address+4 > uint32(len(r.data)) {
		return 0
	}
	return binary.BigEndian.Uint32(r.data[address:])
}

// write32 writes a big-endian 32-bit word.
func (r *RDRAM) write32(address uint32, x uint32) {
	if address+4 > uint32(len(r.data)) {
		return
	}
	binary.BigEndian.PutUint32(r.data[address:], x)
}

func (r *RDRAM) size() uint32 {
	return uint32(len(r.data))
}
