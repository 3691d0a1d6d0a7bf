package subghz

// SerialRegs gives typed access to the synchronous serial engine's status
// and data registers. It is the once-per-platform seam: an on-chip port
// maps these onto the peripheral's volatile registers, tests use a fake.
type SerialRegs interface {
	// TxEmpty reports whether the transmit buffer can accept a byte.
	TxEmpty() bool
	// RxNotEmpty reports whether a shifted-in byte is waiting.
	RxNotEmpty() bool
	// SetData writes a byte into the transmit data register.
	SetData(b byte)
	// Data reads the receive data register, clearing RxNotEmpty.
	Data() byte
}

// ShiftBus implements SPI on top of a raw register block using the
// two-phase shift protocol: wait for the transmit buffer, write the byte,
// wait for the receive buffer, read the shifted-in byte. The trailing read
// is mandatory even when the result is discarded; skipping it leaves the
// receive flag set and desynchronizes the shift register.
type ShiftBus struct {
	regs SerialRegs
}

// NewShiftBus returns a byte shifter over the given register block.
func NewShiftBus(regs SerialRegs) *ShiftBus {
	return &ShiftBus{regs: regs}
}

// Transfer shifts one byte out and returns the byte shifted in.
func (b *ShiftBus) Transfer(w byte) (byte, error) {
	for !b.regs.TxEmpty() {
	}
	b.regs.SetData(w)
	for !b.regs.RxNotEmpty() {
	}
	return b.regs.Data(), nil
}
