package subghz

import "periph.io/x/conn/v3/physic"

// SpreadingFactor is the LoRa spreading factor. Higher factors trade data
// rate for sensitivity.
type SpreadingFactor byte

const (
	Sf5  SpreadingFactor = 0x05
	Sf6  SpreadingFactor = 0x06
	Sf7  SpreadingFactor = 0x07
	Sf8  SpreadingFactor = 0x08
	Sf9  SpreadingFactor = 0x09
	Sf10 SpreadingFactor = 0x0A
	Sf11 SpreadingFactor = 0x0B
	Sf12 SpreadingFactor = 0x0C
)

// LoRaBandwidth is the LoRa signal bandwidth.
type LoRaBandwidth byte

const (
	// 7.81 kHz
	LoRaBw7 LoRaBandwidth = 0x00
	// 10.42 kHz
	LoRaBw10 LoRaBandwidth = 0x08
	// 15.63 kHz
	LoRaBw15 LoRaBandwidth = 0x01
	// 20.83 kHz
	LoRaBw20 LoRaBandwidth = 0x09
	// 31.25 kHz
	LoRaBw31 LoRaBandwidth = 0x02
	// 41.67 kHz
	LoRaBw41 LoRaBandwidth = 0x0A
	// 62.50 kHz
	LoRaBw62 LoRaBandwidth = 0x03
	// 125 kHz
	LoRaBw125 LoRaBandwidth = 0x04
	// 250 kHz
	LoRaBw250 LoRaBandwidth = 0x05
	// 500 kHz
	LoRaBw500 LoRaBandwidth = 0x06
)

// Frequency returns the nominal bandwidth. Unknown codes return zero.
func (bw LoRaBandwidth) Frequency() physic.Frequency {
	switch bw {
	case LoRaBw7:
		return 7810 * physic.Hertz
	case LoRaBw10:
		return 10420 * physic.Hertz
	case LoRaBw15:
		return 15630 * physic.Hertz
	case LoRaBw20:
		return 20830 * physic.Hertz
	case LoRaBw31:
		return 31250 * physic.Hertz
	case LoRaBw41:
		return 41670 * physic.Hertz
	case LoRaBw62:
		return 62500 * physic.Hertz
	case LoRaBw125:
		return 125 * physic.KiloHertz
	case LoRaBw250:
		return 250 * physic.KiloHertz
	case LoRaBw500:
		return 500 * physic.KiloHertz
	}
	return 0
}

// CodingRate is the LoRa forward error correction rate.
type CodingRate byte

const (
	// 4/5 coding rate.
	Cr45 CodingRate = 0x01
	// 4/6 coding rate.
	Cr46 CodingRate = 0x02
	// 4/7 coding rate.
	Cr47 CodingRate = 0x03
	// 4/8 coding rate.
	Cr48 CodingRate = 0x04
)

// LoRaModParams are the LoRa modulation parameters, pre-framed for the
// SetModulationParams command. The zero-argument constructor starts from
// SF7, 125 kHz, 4/5 with low data rate optimization off; setters return a
// modified copy, so values can be built once and shared.
//
// Only valid while the LoRa packet type is active.
type LoRaModParams struct {
	buf [5]byte
}

// NewLoRaModParams returns params for SF7, 125 kHz bandwidth, 4/5 coding
// rate and low data rate optimization disabled.
func NewLoRaModParams() LoRaModParams {
	return LoRaModParams{buf: [5]byte{
		byte(opSetModulationParams),
		byte(Sf7),
		byte(LoRaBw125),
		byte(Cr45),
		0x00,
	}}
}

// SetSf sets the spreading factor.
func (p LoRaModParams) SetSf(sf SpreadingFactor) LoRaModParams {
	p.buf[1] = byte(sf)
	return p
}

// SetBw sets the bandwidth.
func (p LoRaModParams) SetBw(bw LoRaBandwidth) LoRaModParams {
	p.buf[2] = byte(bw)
	return p
}

// SetCr sets the coding rate.
func (p LoRaModParams) SetCr(cr CodingRate) LoRaModParams {
	p.buf[3] = byte(cr)
	return p
}

// SetLdroEn enables or disables low data rate optimization. Mandatory when
// the symbol duration exceeds 16 ms.
func (p LoRaModParams) SetLdroEn(en bool) LoRaModParams {
	p.buf[4] = b2u8(en)
	return p
}

// AsSlice returns the complete SetModulationParams frame.
func (p LoRaModParams) AsSlice() []byte { return p.buf[:] }

// GfskPulseShape is the (G)FSK Gaussian pulse shaping filter.
type GfskPulseShape byte

const (
	// No filtering.
	GfskPulseShapeNone GfskPulseShape = 0x00
	GfskPulseShapeBt03 GfskPulseShape = 0x08
	GfskPulseShapeBt05 GfskPulseShape = 0x09
	GfskPulseShapeBt07 GfskPulseShape = 0x0A
	GfskPulseShapeBt10 GfskPulseShape = 0x0B
)

// GfskBandwidth is the (G)FSK receiver bandwidth wire code.
type GfskBandwidth byte

const (
	// 4.8 kHz
	GfskBw4 GfskBandwidth = 0x1F
	// 5.8 kHz
	GfskBw5 GfskBandwidth = 0x17
	// 7.3 kHz
	GfskBw7 GfskBandwidth = 0x0F
	// 9.7 kHz
	GfskBw9 GfskBandwidth = 0x46
	// 11.7 kHz
	GfskBw11 GfskBandwidth = 0x3E
	// 14.6 kHz
	GfskBw14 GfskBandwidth = 0x36
	// 19.5 kHz
	GfskBw19 GfskBandwidth = 0x2E
	// 23.4 kHz
	GfskBw23 GfskBandwidth = 0x45
	// 29.3 kHz
	GfskBw29 GfskBandwidth = 0x3D
	// 39.0 kHz
	GfskBw39 GfskBandwidth = 0x35
	// 46.9 kHz
	GfskBw46 GfskBandwidth = 0x2D
	// 58.6 kHz
	GfskBw58 GfskBandwidth = 0x44
	// 78.2 kHz
	GfskBw78 GfskBandwidth = 0x3C
	// 97.5 kHz
	GfskBw97 GfskBandwidth = 0x34
	// 117.3 kHz
	GfskBw117 GfskBandwidth = 0x2C
	// 156.2 kHz
	GfskBw156 GfskBandwidth = 0x43
	// 187.2 kHz
	GfskBw187 GfskBandwidth = 0x3B
	// 234.3 kHz
	GfskBw234 GfskBandwidth = 0x33
	// 312.0 kHz
	GfskBw312 GfskBandwidth = 0x2B
	// 373.6 kHz
	GfskBw373 GfskBandwidth = 0x42
	// 467.0 kHz
	GfskBw467 GfskBandwidth = 0x3A
)

// GfskBitrate is the (G)FSK bitrate, stored as the raw divider
// 32 * fXtal / bitrate.
type GfskBitrate uint32

// GfskBitrateFromBps converts a bitrate in bits per second, truncating to
// the nearest representable value. Zero returns the zero value.
func GfskBitrateFromBps(bps uint32) GfskBitrate {
	if bps == 0 {
		return 0
	}
	return GfskBitrate(32 * fXtal / bps)
}

// AsBps returns the bitrate in bits per second.
func (br GfskBitrate) AsBps() uint32 {
	if br == 0 {
		return 0
	}
	return 32 * fXtal / uint32(br)
}

// GfskFdev is the (G)FSK frequency deviation, stored in PLL steps.
type GfskFdev uint32

// GfskFdevFromFrequency converts a frequency deviation into PLL steps,
// rounding to the nearest step.
func GfskFdevFromFrequency(fdev physic.Frequency) GfskFdev {
	hz := int64(fdev / physic.Hertz)
	return GfskFdev((hz*pllSteps + fXtal/2) / fXtal)
}

// Frequency returns the deviation the stored step count resolves to.
func (fd GfskFdev) Frequency() physic.Frequency {
	hz := (int64(fd) * fXtal) / pllSteps
	return physic.Frequency(hz) * physic.Hertz
}

// GfskModParams are the (G)FSK modulation parameters, pre-framed for the
// SetModulationParams command. Setters return a modified copy.
//
// Only valid while the FSK packet type is active.
type GfskModParams struct {
	buf [9]byte
}

// NewGfskModParams returns params for 50 kbps, BT 0.5 shaping, 117.3 kHz
// bandwidth and 25 kHz deviation.
func NewGfskModParams() GfskModParams {
	p := GfskModParams{buf: [9]byte{0: byte(opSetModulationParams)}}
	return p.
		SetBitrate(GfskBitrateFromBps(50_000)).
		SetPulseShape(GfskPulseShapeBt05).
		SetBandwidth(GfskBw117).
		SetFdev(GfskFdevFromFrequency(25 * physic.KiloHertz))
}

// SetBitrate sets the bitrate, 3 bytes big-endian.
func (p GfskModParams) SetBitrate(br GfskBitrate) GfskModParams {
	p.buf[1] = byte(br >> 16)
	p.buf[2] = byte(br >> 8)
	p.buf[3] = byte(br)
	return p
}

// SetPulseShape sets the pulse shaping filter.
func (p GfskModParams) SetPulseShape(ps GfskPulseShape) GfskModParams {
	p.buf[4] = byte(ps)
	return p
}

// SetBandwidth sets the receiver bandwidth.
func (p GfskModParams) SetBandwidth(bw GfskBandwidth) GfskModParams {
	p.buf[5] = byte(bw)
	return p
}

// SetFdev sets the frequency deviation, 3 bytes big-endian.
func (p GfskModParams) SetFdev(fd GfskFdev) GfskModParams {
	p.buf[6] = byte(fd >> 16)
	p.buf[7] = byte(fd >> 8)
	p.buf[8] = byte(fd)
	return p
}

// AsSlice returns the complete SetModulationParams frame.
func (p GfskModParams) AsSlice() []byte { return p.buf[:] }

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
