// Package spidev drives an SX126x-compatible sub-GHz radio from a Linux
// host over spidev and GPIO, using periph.io. The chip select is managed
// by the driver rather than the kernel so that multi-phase command frames
// stay inside one chip select window.
package spidev

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/lulf/stm32wl-hal/subghz"
)

// Radio is a subghz.Device bound to a host SPI port.
type Radio struct {
	*subghz.Device
	port spi.PortCloser
}

// conn adapts a periph.io SPI connection to the driver's single-byte
// shift interface. Each shift is a full-duplex one-byte transfer, so the
// mandatory read-after-write happens on every call.
type conn struct {
	c spi.Conn
}

func (b conn) Transfer(w byte) (byte, error) {
	var rx [1]byte
	err := b.c.Tx([]byte{w}, rx[:])
	return rx[0], err
}

// Open claims the SPI port and the busy and chip select pins, and returns
// the radio driver bound to them. Pin names resolve through gpioreg, the
// port through spireg. The driver singleton in subghz.New applies: a
// second Open fails with subghz.ErrTaken until the process restarts.
func Open(spiDev, busyPin, nssPin string) (*Radio, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}

	p, err := spireg.Open(spiDev)
	if err != nil {
		return nil, err
	}

	c, err := p.Connect(8*physic.MegaHertz, spi.Mode0|spi.NoCS, 8)
	if err != nil {
		p.Close()
		return nil, err
	}

	busy := gpioreg.ByName(busyPin)
	if busy == nil {
		p.Close()
		return nil, errors.New("spidev: failed to find BUSY pin " + busyPin)
	}
	if err := busy.In(gpio.PullDown, gpio.NoEdge); err != nil {
		p.Close()
		return nil, err
	}

	nss := gpioreg.ByName(nssPin)
	if nss == nil {
		p.Close()
		return nil, errors.New("spidev: failed to find NSS pin " + nssPin)
	}
	if err := nss.Out(gpio.High); err != nil {
		p.Close()
		return nil, err
	}

	dev, err := subghz.New(
		conn{c: c},
		func() bool { return busy.Read() == gpio.High },
		func(level bool) { nss.Out(gpio.Level(level)) },
	)
	if err != nil {
		p.Close()
		return nil, err
	}
	dev.DumpRegs = func() string {
		return spiDev + " busy=" + busy.Read().String() +
			" nss=" + nss.Read().String()
	}
	return &Radio{Device: dev, port: p}, nil
}

// Close releases the SPI port. The subghz driver singleton stays claimed;
// reuse after Close requires subghz.Conjure.
func (r *Radio) Close() error {
	return r.port.Close()
}
