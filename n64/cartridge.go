package n64

import (
	"encoding/binary"
	"fmt"
)

const (
	// The first header word configures the PI bus timings. Every ROM built
	// by the standard toolchains carries the same value, so it doubles as a
	// magic number. https://n64brew.dev/wiki/ROM_Header
	romMagic uint32 = 0x80371240

	romHeaderSizeBytes = 0x40

	romEntryOffset = 0x08 // application entry address
	romSizeOffset  = 0x10 // flat image size in bytes
)

// https://n64brew.dev/wiki/ROM_Header
type Cartridge struct {
	data []byte
}

// NewCartridge creates a cartridge.
func NewCartridge(data []byte) (*Cartridge, error) {
	if len(data) < romHeaderSizeBytes {
		return nil, fmt.Errorf("The buffer is too short for a ROM header: %d bytes.", len(data))
	}
	if magic := binary.BigEndian.Uint32(data); magic != romMagic {
		return nil, fmt.Errorf("The buffer is not a valid ROM image: 0x%08x.", magic)
	}
	return &Cartridge{data}, nil
}

// read reads a byte from ROM. The cartridge bus has no error path; reads
// past the end of the image float to zero.
func (c *Cartridge) read(offset uint32) byte {
	if offset >= uint32(len(c.data)) {
		return 0
	}
	return c.data[offset]
}

// read32 reads a big-endian 32-bit word from ROM.
func (c *Cartridge) read32(offset uint32) uint32 {
	return uint32(c.read(offset))<<24 | uint32(c.read(offset+1))<<16 |
		uint32(c.read(offset+2))<<8 | uint32(c.read(offset+3))
}

// Entry returns the application entry address declared in the header.
func (c *Cartridge) Entry() uint32 {
	return c.read32(romEntryOffset)
}

// ImageSize returns the flat image size declared in the header.
func (c *Cartridge) ImageSize() uint32 {
	return c.read32(romSizeOffset)
}
