package subghz

import "time"

// RampTime is the power amplifier ramp duration for FSK, MSK and LoRa
// modulation, encoded as a 3-bit wire code.
type RampTime byte

const (
	RampTime10us   RampTime = 0x00
	RampTime20us   RampTime = 0x01
	RampTime40us   RampTime = 0x02
	RampTime80us   RampTime = 0x03
	RampTime200us  RampTime = 0x04
	RampTime800us  RampTime = 0x05
	RampTime1700us RampTime = 0x06
	RampTime3400us RampTime = 0x07
)

var rampDurations = [8]time.Duration{
	10 * time.Microsecond,
	20 * time.Microsecond,
	40 * time.Microsecond,
	80 * time.Microsecond,
	200 * time.Microsecond,
	800 * time.Microsecond,
	1700 * time.Microsecond,
	3400 * time.Microsecond,
}

// AsDuration returns the ramp duration for the wire code. Codes outside the
// 3-bit range return zero.
func (rt RampTime) AsDuration() time.Duration {
	if rt > RampTime3400us {
		return 0
	}
	return rampDurations[rt]
}

// RampTimeFromDuration returns the wire code for an exact ramp duration.
// ok is false when d is not one of the eight defined durations.
func RampTimeFromDuration(d time.Duration) (rt RampTime, ok bool) {
	for i, rd := range rampDurations {
		if rd == d {
			return RampTime(i), true
		}
	}
	return 0, false
}
