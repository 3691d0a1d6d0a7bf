package subghz

import "time"

// timeoutStep is one tick of the radio's 64 kHz timeout timer.
const timeoutStep = 15625 * time.Nanosecond // 15.625µs

// timeoutMaxBits is the largest encodable tick count (24 bits).
const timeoutMaxBits = 0xFFFFFF

// TimeoutMax is the longest representable timeout, about 262 seconds.
const TimeoutMax = time.Duration(timeoutMaxBits) * timeoutStep

// Timeout is a radio timeout, stored as a 24-bit count of 15.625µs ticks.
//
// The zero value is the reserved all-zero encoding: for SetTx it disables
// the timeout timer entirely, for SetRx it selects single reception with no
// timeout. Use TimeoutDisabled to make that intent explicit.
type Timeout struct {
	bits uint32
}

// TimeoutDisabled is the sentinel encoding that turns the timeout timer off.
// It never goes through the rounding path.
var TimeoutDisabled = Timeout{}

// NewTimeout converts a duration into a Timeout, rounding to the nearest
// tick and saturating at TimeoutMax. Negative durations clamp to zero, which
// is the disabled sentinel. Round-tripping through AsDuration recovers the
// input within one tick.
func NewTimeout(d time.Duration) Timeout {
	if d <= 0 {
		return Timeout{}
	}
	if d >= TimeoutMax {
		return Timeout{bits: timeoutMaxBits}
	}
	bits := uint32((d + timeoutStep/2) / timeoutStep)
	if bits > timeoutMaxBits {
		bits = timeoutMaxBits
	}
	return Timeout{bits: bits}
}

// TimeoutFromRaw builds a Timeout from a raw tick count, masked to 24 bits.
func TimeoutFromRaw(bits uint32) Timeout {
	return Timeout{bits: bits & timeoutMaxBits}
}

// AsDuration returns the exact duration of the encoded tick count.
func (t Timeout) AsDuration() time.Duration {
	return time.Duration(t.bits) * timeoutStep
}

// IsDisabled reports whether t is the all-zero sentinel.
func (t Timeout) IsDisabled() bool { return t.bits == 0 }

func (t Timeout) intoBits() uint32 { return t.bits }

// asBytes returns the 3-byte big-endian wire encoding.
func (t Timeout) asBytes() [3]byte {
	return [3]byte{byte(t.bits >> 16), byte(t.bits >> 8), byte(t.bits)}
}
