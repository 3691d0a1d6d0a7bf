package subghz

// Irq is a bitmask of radio interrupt causes.
type Irq uint16

const (
	// Transmission completed.
	IrqTxDone Irq = 1 << 0
	// Reception completed.
	IrqRxDone Irq = 1 << 1
	// Preamble detected.
	IrqPreambleDetected Irq = 1 << 2
	// Sync word valid.
	IrqSyncDetected Irq = 1 << 3
	// Valid LoRa header received.
	IrqHeaderValid Irq = 1 << 4
	// LoRa header CRC error.
	IrqHeaderErr Irq = 1 << 5
	// Packet error: CRC, length or address mismatch.
	IrqErr Irq = 1 << 6
	// Channel activity detection finished.
	IrqCadDone Irq = 1 << 7
	// Channel activity detected.
	IrqCadDetected Irq = 1 << 8
	// RX or TX timeout.
	IrqTimeout Irq = 1 << 9
)

// IrqLine selects where an interrupt cause is routed. Global enables the
// cause; Line1 and Line2 additionally route it to one of the two physical
// interrupt lines.
type IrqLine uint8

const (
	IrqLineGlobal IrqLine = iota
	IrqLine1
	IrqLine2
)

// offset of the line's 16-bit mask inside the CfgDioIrq frame.
func (l IrqLine) offset() int {
	switch l {
	case IrqLine1:
		return 3
	case IrqLine2:
		return 5
	}
	return 1
}

// CfgDioIrq is the interrupt configuration, pre-framed for the CfgDioIrq
// command. Enabling is a bitwise or, so it is commutative and idempotent:
// enabling the same cause twice equals enabling it once. The trailing mask
// slot in the frame has no line attached and is kept at its reset value.
type CfgDioIrq struct {
	buf [9]byte
}

// NewCfgDioIrq returns a configuration with every interrupt masked.
func NewCfgDioIrq() CfgDioIrq {
	return CfgDioIrq{buf: [9]byte{0: byte(opCfgDioIrq)}}
}

// IrqEnable enables irq on the given line and returns the modified copy.
func (c CfgDioIrq) IrqEnable(line IrqLine, irq Irq) CfgDioIrq {
	o := line.offset()
	c.buf[o] |= byte(irq >> 8)
	c.buf[o+1] |= byte(irq)
	return c
}

// IrqDisable disables irq on the given line and returns the modified copy.
func (c CfgDioIrq) IrqDisable(line IrqLine, irq Irq) CfgDioIrq {
	o := line.offset()
	c.buf[o] &^= byte(irq >> 8)
	c.buf[o+1] &^= byte(irq)
	return c
}

// AsSlice returns the complete CfgDioIrq frame.
func (c CfgDioIrq) AsSlice() []byte { return c.buf[:] }
