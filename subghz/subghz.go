// Package subghz implements a driver for the STM32WL sub-GHz radio, an
// ultra-low-power transceiver for the 150 - 960 MHz ISM band supporting
// LoRa, (G)FSK, BPSK and MSK modulation.
//
// The radio is controlled through an opcode-based command protocol carried
// over a synchronous serial bus and gated by a hardware busy signal. This
// package implements that protocol: the busy handshake, the command,
// register and buffer framing, and typed encoders and decoders for every
// configuration and status structure the radio understands.
//
// The driver holds no radio mode state. The operating mode lives in
// hardware and is only observed through Status, never cached, so it cannot
// go stale. Commands that depend on the active packet type (modulation
// parameters, packet parameters, stats) are not sequence-checked: callers
// must issue SetPacketType before them, and must decode stats under the
// family they configured.
//
// The driver is synchronous and not safe for concurrent use. A transaction
// that has started shifting bytes runs to completion; callers needing to
// share a Device across goroutines must serialize access around the whole
// instance.
package subghz

import (
	"errors"
	"sync/atomic"
)

// SPI shifts single bytes over the radio's serial bus. Every call both
// writes and reads one byte; implementations must perform the read even
// when the caller discards it. ShiftBus implements SPI for memory-mapped
// serial engines.
type SPI interface {
	Transfer(w byte) (byte, error)
}

// PinOutput sets the logic level of a pin to high (true) or low (false).
type PinOutput func(level bool)

// PinInput reads the logic level of a pin.
type PinInput func() bool

// busyPollBudget bounds the busy-wait handshake. The radio clears busy
// within microseconds once clocked correctly; exhausting the budget means
// the hardware state is unknown and no further transaction is safe.
const busyPollBudget = 100_000

// noppad is the byte shifted out while reading replies.
const noppad = 0xFF

// ErrTaken is returned by New when a driver instance already exists.
var ErrTaken = errors.New("subghz: driver already instantiated")

var taken atomic.Bool

// Device is a driver for the sub-GHz radio. It exclusively owns the serial
// bus and chip select for its lifetime; New enforces that only one instance
// exists per process.
type Device struct {
	// SPI is the byte shifter for the radio's serial bus.
	SPI SPI
	// Busy reads the radio busy signal; true means the radio cannot
	// accept a transaction.
	Busy PinInput
	// NSS drives the chip select level. Low frames a transaction.
	NSS PinOutput
	// DumpRegs optionally reports platform register state, included in
	// the crash report when the busy handshake fails.
	DumpRegs func() string
}

// New creates the radio driver. The caller hands over exclusive ownership
// of the bus; a second call returns ErrTaken until the process restarts.
func New(spi SPI, busy PinInput, nss PinOutput) (*Device, error) {
	if !taken.CompareAndSwap(false, true) {
		return nil, ErrTaken
	}
	return Conjure(spi, busy, nss), nil
}

// Conjure fabricates a driver handle out of thin air, bypassing the single
// instance check in New. This exists for advanced use such as recovering
// the radio after a warm restart. The caller is responsible for
// guaranteeing that no other instance is using the bus.
func Conjure(spi SPI, busy PinInput, nss PinOutput) *Device {
	return &Device{SPI: spi, Busy: busy, NSS: nss}
}

// pollNotBusy spins until the radio busy signal clears. Exhausting the
// retry budget is fatal: the shift protocol would desynchronize on any
// further transaction, so the driver aborts with diagnostics instead of
// returning a recoverable error.
func (d *Device) pollNotBusy() {
	for count := busyPollBudget; d.Busy(); count-- {
		if count == 0 {
			msg := "subghz: radio busy signal stuck high"
			if d.DumpRegs != nil {
				msg += ": " + d.DumpRegs()
			}
			panic(msg)
		}
	}
}

// transact runs one chip-select-framed transaction: the busy handshake,
// cmd shifted out, len(reply) bytes shifted in, then the handshake again,
// since commands may re-assert busy immediately after completion.
func (d *Device) transact(cmd []byte, reply []byte) error {
	d.pollNotBusy()
	d.NSS(false)
	var err error
	for _, b := range cmd {
		// The shifted-in byte is discarded but still read, see SPI.
		if _, err = d.SPI.Transfer(b); err != nil {
			break
		}
	}
	if err == nil {
		for i := range reply {
			if reply[i], err = d.SPI.Transfer(noppad); err != nil {
				break
			}
		}
	}
	d.NSS(true)
	if err != nil {
		return err
	}
	d.pollNotBusy()
	return nil
}

// write sends a plain command frame with no reply.
func (d *Device) write(data []byte) error {
	return d.transact(data, nil)
}

// read sends a get command and shifts the reply into buf. The first reply
// byte of every get command is the current Status.
func (d *Device) read(op opCode, buf []byte) error {
	return d.transact([]byte{byte(op)}, buf)
}

// read1 sends a get command with a single reply byte.
func (d *Device) read1(op opCode) (byte, error) {
	var buf [1]byte
	err := d.read(op, buf[:])
	return buf[0], err
}

// writeRegister writes data starting at a radio register address.
func (d *Device) writeRegister(reg register, data ...byte) error {
	cmd := append([]byte{
		byte(opWriteRegister), byte(reg >> 8), byte(reg),
	}, data...)
	return d.write(cmd)
}

// readRegister reads one byte from a radio register address.
func (d *Device) readRegister(reg register) (byte, error) {
	var buf [1]byte
	err := d.transact([]byte{
		byte(opReadRegister), byte(reg >> 8), byte(reg),
	}, buf[:])
	return buf[0], err
}

// WriteBuffer writes data into the radio packet buffer at offset.
func (d *Device) WriteBuffer(offset uint8, data []byte) error {
	return d.write(append([]byte{byte(opWriteBuffer), offset}, data...))
}

// ReadBuffer reads len(buf) bytes from the radio packet buffer at offset.
func (d *Device) ReadBuffer(offset uint8, buf []byte) (Status, error) {
	reply := make([]byte, len(buf)+1)
	err := d.transact([]byte{byte(opReadBuffer), offset}, reply)
	copy(buf, reply[1:])
	return Status(reply[0]), err
}
