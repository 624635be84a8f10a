package boot

// The loader runs from a reserved region at the end of RDRAM; code and stack
// share the same budget.
const (
	loaderSize        = 32 * 1024
	totalReservedSize = loaderSize
)

// The RDRAM clear drives the SP DMA engine with a length word counting whole
// 1024-byte rows, so the reserved size has to stay a multiple of 1024. This
// constant fails to compile otherwise.
const _ = uint32(0 - totalReservedSize%1024)

// Cartridge bus addresses of the flat image header fields and payload.
const (
	romEntryAddr   = 0x10000008
	romSizeAddr    = 0x10000010
	romPayloadAddr = 0x10001000
)

const (
	// fallbackImageSize is used when the header size is missing or does not
	// fit between the entry address and the reserved region.
	fallbackImageSize = 1 << 20

	// maxMemSize is the largest RDRAM an image can be loaded into.
	maxMemSize = 8 << 20

	// emptyRDRAMAddr is past the largest installed memory size, so it always
	// reads as zero. Used as the source when erasing DMEM.
	emptyRDRAMAddr = 0x00802000
)

// LoaderBase returns the base address of the reserved loader region for the
// given installed memory size.
func LoaderBase(memSize uint32) uint32 {
	return 0x80000000 + memSize - totalReservedSize
}

// StackTop returns the stack pointer handed to the application: 16 bytes
// below the end of RDRAM.
func StackTop(memSize uint32) uint32 {
	return 0x80000000 + memSize - 0x10
}
