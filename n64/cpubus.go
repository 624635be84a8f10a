package n64

import "fmt"

type CPUBus struct {
	rdram *RDRAM
	sp    *SP
	pi    *PI
	si    *SI
	cart  *Cartridge
}

// NewCPUBus creates a new Bus for the CPU.
// Physical memory map (KSEG bits are stripped, so virtual forms work too):
// 0x00000000 - 0x007FFFFF	RDRAM
// 0x04000000 - 0x04000FFF	RSP DMEM
// 0x04001000 - 0x04001FFF	RSP IMEM
// 0x04040000 - 0x04040018	SP registers
// 0x04600000 - 0x04600010	PI registers
// 0x04800000 - 0x04800018	SI registers
// 0x10000000 - 0x1FBFFFFF	Cartridge ROM
// 0x1FC007C0 - 0x1FC007FF	PIF RAM
func NewCPUBus(rdram *RDRAM, sp *SP, pi *PI, si *SI, cart *Cartridge) *CPUBus {
	return &CPUBus{rdram, sp, pi, si, cart}
}

// Read32 reads a 32-bit word.
func (b *CPUBus) Read32(address uint32) (uint32, error) {
	address &= 0x1FFFFFFF
	switch {
	case address < 0x00800000:
		return b.rdram.read32(address), nil
	case SPDMEMBase <= address && address < SPIMEMBase:
		return b.sp.readDMEM32(address - SPDMEMBase), nil
	case SPIMEMBase <= address && address < SPIMEMBase+spMemSize:
		return b.sp.readIMEM32(address - SPIMEMBase), nil
	case address == SPRSPAddrReg:
		return b.sp.rspAddr, nil
	case address == SPDRAMAddrReg:
		return b.sp.dramAddr, nil
	case address == SPStatusReg:
		return b.sp.readStatus(), nil
	case address == SPDMAFullReg:
		return b.sp.readDMAFull(), nil
	case address == SPDMABusyReg:
		return b.sp.readDMABusy(), nil
	case address == PIDRAMAddrReg:
		return b.pi.dramAddr, nil
	case address == PICartAddrReg:
		return b.pi.cartAddr, nil
	case address == PIStatusReg:
		return b.pi.readStatus(), nil
	case address == SIDRAMAddrReg:
		return b.si.dramAddr, nil
	case address == SIStatusReg:
		return b.si.readStatus(), nil
	case cartROMBase <= address && address < 0x1FC00000:
		return b.cart.read32(address - cartROMBase), nil
	case PIFRAMBase <= address && address < PIFRAMBase+pifRAMSize:
		return b.si.readPIF32(address - PIFRAMBase), nil
	default:
		return 0, fmt.Errorf("Unknown CPU bus read: 0x%08x", address)
	}
}

// Write32 writes a 32-bit word.
func (b *CPUBus) Write32(address uint32, data uint32) error {
	address &= 0x1FFFFFFF
	switch {
	case address < 0x00800000:
		b.rdram.write32(address, data)
	case SPDMEMBase <= address && address < SPIMEMBase:
		b.sp.writeDMEM32(address-SPDMEMBase, data)
	case SPIMEMBase <= address && address < SPIMEMBase+spMemSize:
		b.sp.writeIMEM32(address-SPIMEMBase, data)
	case address == SPRSPAddrReg:
		b.sp.writeRSPAddr(data)
	case address == SPDRAMAddrReg:
		b.sp.writeDRAMAddr(data)
	case address == SPRdLenReg:
		b.sp.startDMA(data, false)
	case address == SPWrLenReg:
		b.sp.startDMA(data, true)
	case address == SPStatusReg:
		b.sp.writeStatus(data)
	case address == PIDRAMAddrReg:
		b.pi.writeDRAMAddr(data)
	case address == PICartAddrReg:
		b.pi.writeCartAddr(data)
	case address == PIRdLenReg:
		b.pi.writeRdLen(data)
	case address == PIWrLenReg:
		b.pi.writeWrLen(data)
	case address == PIStatusReg:
		b.pi.writeStatus(data)
	case address == SIDRAMAddrReg:
		b.si.writeDRAMAddr(data)
	case address == SIStatusReg:
		b.si.writeStatus(data)
	case cartROMBase <= address && address < 0x1FC00000:
		return fmt.Errorf("Writing data to cartridge ROM not allowed: address=0x%08x, data=0x%08x", address, data)
	case PIFRAMBase <= address && address < PIFRAMBase+pifRAMSize:
		b.si.writePIF(address-PIFRAMBase, data)
	default:
		return fmt.Errorf("Unknown CPU bus write: address=0x%08x, data=0x%08x", address, data)
	}
	return nil
}
