package subghz

import "periph.io/x/conn/v3/physic"

// fXtal is the 32 MHz crystal feeding the radio PLL.
const fXtal = 32_000_000

// pllSteps is the PLL resolution: the tuning word counts steps of
// fXtal / 2^25, about 0.95 Hz.
const pllSteps = 1 << 25

// RfFreq is the 32-bit PLL tuning word for the radio carrier frequency,
// pre-framed for the SetRfFrequency command.
type RfFreq struct {
	buf [5]byte
}

// Carrier frequencies for common ISM bands.
var (
	// 433 MHz.
	RfFreq433 = RfFreqFromRaw(0x1B100000)
	// 868 MHz (Europe).
	RfFreq868 = RfFreqFromRaw(0x36400000)
	// 915 MHz (Australia and North America).
	RfFreq915 = RfFreqFromRaw(0x39300000)
)

// NewRfFreq computes the tuning word for a carrier frequency, rounding to
// the nearest PLL step. The intermediate math is 64-bit so the full
// sub-GHz band encodes without overflow.
func NewRfFreq(freq physic.Frequency) RfFreq {
	hz := int64(freq / physic.Hertz)
	word := uint32((hz*pllSteps + fXtal/2) / fXtal)
	return RfFreqFromRaw(word)
}

// RfFreqFromRaw builds an RfFreq directly from a tuning word.
func RfFreqFromRaw(word uint32) RfFreq {
	return RfFreq{buf: [5]byte{
		byte(opSetRfFrequency),
		byte(word >> 24),
		byte(word >> 16),
		byte(word >> 8),
		byte(word),
	}}
}

// Frequency returns the carrier frequency the tuning word resolves to.
func (f RfFreq) Frequency() physic.Frequency {
	hz := (int64(f.raw()) * fXtal) / pllSteps
	return physic.Frequency(hz) * physic.Hertz
}

func (f RfFreq) raw() uint32 {
	return uint32(f.buf[1])<<24 | uint32(f.buf[2])<<16 |
		uint32(f.buf[3])<<8 | uint32(f.buf[4])
}

// AsSlice returns the complete SetRfFrequency frame.
func (f RfFreq) AsSlice() []byte { return f.buf[:] }
